// Package web provides the main web server implementation for the edupanel
// API, including routing, session handling and background job scheduling.
package web

import (
	"context"
	"io"
	"net"
	"net/http"
	"strconv"

	"edupanel/config"
	"edupanel/logger"
	"edupanel/storage"
	"edupanel/util/common"
	"edupanel/web/cache"
	"edupanel/web/controller"
	"edupanel/web/job"
	"edupanel/web/middleware"
	"edupanel/web/service"
	"edupanel/web/session"

	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
)

// Server is the edupanel web server. All request handlers receive their
// store through the services constructed here; nothing reads a process-wide
// store singleton.
type Server struct {
	httpServer *http.Server
	listener   net.Listener

	store storage.Store

	userService      *service.UserService
	activityService  *service.ActivityLogService
	studentService   *service.StudentService
	admissionService *service.AdmissionService
	approvalService  *service.ApprovalService
	adminAuthService *service.AdminAuthService
	dashboardService *service.DashboardService
	serverService    *service.ServerService

	cron *cron.Cron

	ctx    context.Context
	cancel context.CancelFunc
}

// NewServer creates a web server over the given store.
func NewServer(store storage.Store) *Server {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Server{store: store, ctx: ctx, cancel: cancel}

	s.activityService = service.NewActivityLogService(store)
	s.userService = service.NewUserService(store, s.activityService)
	s.studentService = service.NewStudentService(store, s.activityService)
	s.admissionService = service.NewAdmissionService(store, s.activityService)
	s.approvalService = service.NewApprovalService(store)
	s.adminAuthService = service.NewAdminAuthService(store, []byte(config.GetJWTSecret()))
	s.dashboardService = service.NewDashboardService(store)
	s.serverService = service.NewServerService()

	return s
}

// initRouter initializes gin, registers middleware and controllers and
// returns the configured engine.
func (s *Server) initRouter() (*gin.Engine, error) {
	if config.IsDebug() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.DefaultWriter = io.Discard
		gin.DefaultErrorWriter = io.Discard
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.Default()

	engine.Use(middleware.RequestID())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	sessionStore := cache.NewRedisStore(cache.GetClient(), []byte(config.GetSessionSecret()))
	engine.Use(sessions.Sessions(session.SessionName, sessionStore))

	api := engine.Group("/api")
	controller.NewAuthController(api, s.userService)
	controller.NewStudentController(api, s.studentService)
	controller.NewUsersController(api, s.userService)
	controller.NewAdmissionController(api, s.admissionService)
	controller.NewActivityController(api, s.activityService)
	controller.NewDashboardController(api, s.dashboardService, s.serverService)
	controller.NewRegistrationController(api, s.approvalService)
	controller.NewAdminController(api, s.adminAuthService, s.approvalService)

	engine.NoRoute(func(c *gin.Context) {
		c.AbortWithStatus(http.StatusNotFound)
	})

	return engine, nil
}

// startTask schedules the background jobs.
func (s *Server) startTask() {
	s.cron.AddJob("@daily", job.NewActivityCleanupJob(s.activityService))
}

// Start initializes sessions, routing and jobs and begins serving.
func (s *Server) Start() (err error) {
	defer func() {
		if err != nil {
			_ = s.Stop()
		}
	}()

	if err = cache.InitRedis(config.GetRedisAddr()); err != nil {
		return err
	}

	s.cron = cron.New()
	s.cron.Start()

	engine, err := s.initRouter()
	if err != nil {
		return err
	}

	listenAddr := net.JoinHostPort(config.GetListen(), strconv.Itoa(config.GetPort()))
	listener, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return err
	}
	logger.Info("Web server running HTTP on", listener.Addr())

	s.listener = listener
	s.httpServer = &http.Server{Handler: engine}

	go func() {
		_ = s.httpServer.Serve(listener)
	}()

	s.startTask()

	return nil
}

// Stop gracefully shuts down the web server and its background jobs.
func (s *Server) Stop() error {
	s.cancel()
	if s.cron != nil {
		s.cron.Stop()
	}
	var err1, err2, err3 error
	if s.httpServer != nil {
		err1 = s.httpServer.Shutdown(s.ctx)
	}
	if s.listener != nil {
		err2 = s.listener.Close()
	}
	err3 = cache.Close()
	return common.Combine(err1, err2, err3)
}
