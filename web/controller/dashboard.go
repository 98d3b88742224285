package controller

import (
	"net/http"
	"strconv"

	"edupanel/logger"
	"edupanel/web/service"

	"github.com/gin-gonic/gin"
)

// DashboardController serves the stats and server status endpoints.
type DashboardController struct {
	BaseController

	dashboardService *service.DashboardService
	serverService    *service.ServerService
}

func NewDashboardController(g *gin.RouterGroup, dashboardService *service.DashboardService, serverService *service.ServerService) *DashboardController {
	a := &DashboardController{
		dashboardService: dashboardService,
		serverService:    serverService,
	}
	a.initRouter(g)
	return a
}

func (a *DashboardController) initRouter(g *gin.RouterGroup) {
	g.GET("/dashboard/stats", a.checkLogin, a.stats)
	g.GET("/server/status", a.checkLogin, a.status)
	g.GET("/server/logs", a.checkLogin, a.logs)
}

func (a *DashboardController) stats(c *gin.Context) {
	stats, err := a.dashboardService.GetStats()
	if err != nil {
		jsonInternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (a *DashboardController) status(c *gin.Context) {
	c.JSON(http.StatusOK, a.serverService.GetStatus())
}

// logs returns recent in-memory log lines, newest first.
func (a *DashboardController) logs(c *gin.Context) {
	count, err := strconv.Atoi(c.Query("count"))
	if err != nil || count <= 0 {
		count = 50
	}
	level := c.DefaultQuery("level", "info")

	c.JSON(http.StatusOK, logger.GetLogs(count, level))
}
