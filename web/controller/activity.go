package controller

import (
	"net/http"
	"strconv"

	"edupanel/web/service"

	"github.com/gin-gonic/gin"
)

const defaultActivityLimit = 10

// ActivityController serves the audit trail listing.
type ActivityController struct {
	BaseController

	activityService *service.ActivityLogService
}

func NewActivityController(g *gin.RouterGroup, activityService *service.ActivityLogService) *ActivityController {
	a := &ActivityController{activityService: activityService}
	a.initRouter(g)
	return a
}

func (a *ActivityController) initRouter(g *gin.RouterGroup) {
	g.GET("/activity-logs", a.checkLogin, a.listRecent)
}

func (a *ActivityController) listRecent(c *gin.Context) {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit < 0 {
		limit = defaultActivityLimit
	}

	logs, err := a.activityService.GetRecent(limit)
	if err != nil {
		jsonInternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}
