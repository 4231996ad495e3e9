// Package web wires the gin engine: sessions, locale, legacy redirects, the
// navigation guard, controllers and scheduled jobs.
package web

import (
	"context"
	"embed"
	"errors"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"go.uber.org/atomic"

	"github.com/tutormatch/tutormatch/config"
	"github.com/tutormatch/tutormatch/logger"
	"github.com/tutormatch/tutormatch/util/common"
	"github.com/tutormatch/tutormatch/util/random"
	"github.com/tutormatch/tutormatch/web/controller"
	"github.com/tutormatch/tutormatch/web/job"
	"github.com/tutormatch/tutormatch/web/locale"
	"github.com/tutormatch/tutormatch/web/middleware"
	"github.com/tutormatch/tutormatch/web/router"
	"github.com/tutormatch/tutormatch/web/session"
)

//go:embed translation/*
var i18nFS embed.FS

const shutdownTimeout = 10 * time.Second

// Server is the tutormatch web server.
type Server struct {
	httpServer *http.Server
	listener   net.Listener

	table *router.Table

	index   *controller.IndexController
	page    *controller.PageController
	address *controller.AddressController
	account *controller.AccountController
	admin   *controller.AdminController

	cron    *cron.Cron
	running atomic.Bool

	ctx    context.Context
	cancel context.CancelFunc
}

// NewServer creates a server for the default route table.
func NewServer() *Server {
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{table: router.Default(), ctx: ctx, cancel: cancel}
}

func (s *Server) sessionStore() cookie.Store {
	secret := []byte(config.GetSessionSecret())
	if len(secret) == 0 {
		logger.Notice("TUTOR_SESSION_SECRET not set, sessions will not survive a restart")
		secret = random.Key(32)
	}
	store := cookie.NewStore(secret)
	store.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return store
}

// initRouter builds the gin engine. Global middleware is registered before
// any group so every route and the 404 handler pass through the guard.
func (s *Server) initRouter() (*gin.Engine, error) {
	if config.IsDebug() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.DefaultWriter = io.Discard
		gin.DefaultErrorWriter = io.Discard
		gin.SetMode(gin.ReleaseMode)
	}

	if err := locale.InitLocalizer(i18nFS); err != nil {
		return nil, err
	}

	engine := gin.New()
	engine.Use(gin.Recovery())

	if webDomain := config.GetWebDomain(); webDomain != "" {
		engine.Use(middleware.DomainValidatorMiddleware(webDomain))
	}

	basePath := config.GetBasePath()
	engine.Use(func(c *gin.Context) {
		c.Set("base_path", basePath)
	})
	engine.Use(gzip.Gzip(gzip.DefaultCompression))
	engine.Use(sessions.Sessions(session.CookieName, s.sessionStore()))
	engine.Use(locale.LocalizerMiddleware())
	engine.Use(middleware.RedirectMiddleware(basePath))
	engine.Use(middleware.Navigate(s.table, basePath))

	g := engine.Group(basePath)
	s.index = controller.NewIndexController(g, s.table)
	s.page = controller.NewPageController(g, s.table)

	api := g.Group("/api")
	s.address = controller.NewAddressController(api.Group("/address"))
	s.account = controller.NewAccountController(api)
	s.admin = controller.NewAdminController(api, s.table)

	engine.NoRoute(s.page.NoRoute())

	return engine, nil
}

func (s *Server) startTask() {
	if _, err := s.cron.AddJob("@daily", job.NewCheckpointJob()); err != nil {
		logger.Warning("add checkpoint job err:", err)
	}
}

// Start builds the engine, starts listening and schedules jobs.
func (s *Server) Start() (err error) {
	defer func() {
		if err != nil {
			_ = s.Stop()
		}
	}()

	s.cron = cron.New(cron.WithLocation(time.Local))
	s.cron.Start()

	engine, err := s.initRouter()
	if err != nil {
		return err
	}

	port, err := config.GetPort()
	if err != nil {
		return err
	}
	listenAddr := net.JoinHostPort(config.GetListen(), strconv.Itoa(port))
	listener, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return err
	}
	logger.Info("Web server running HTTP on", listener.Addr())

	s.listener = listener
	s.httpServer = &http.Server{
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return s.ctx },
	}

	go func() {
		defer common.Recover("web server")
		if err := s.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("web server stopped:", err)
		}
	}()

	s.startTask()
	s.running.Store(true)
	return nil
}

// Stop shuts the HTTP server down and stops scheduled jobs.
func (s *Server) Stop() error {
	s.running.Store(false)
	s.cancel()
	if s.cron != nil {
		s.cron.Stop()
	}
	var err1, err2 error
	if s.httpServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		err1 = s.httpServer.Shutdown(ctx)
	}
	if s.listener != nil {
		// Shutdown already closed it.
		if err2 = s.listener.Close(); errors.Is(err2, net.ErrClosed) {
			err2 = nil
		}
	}
	return common.Combine(err1, err2)
}

func (s *Server) IsRunning() bool { return s.running.Load() }

func (s *Server) Addr() net.Addr {
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// GetCtx returns the server context. Request contexts derive from it and
// are cancelled when the server stops.
func (s *Server) GetCtx() context.Context { return s.ctx }

func (s *Server) GetCron() *cron.Cron { return s.cron }
