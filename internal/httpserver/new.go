package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"smart-task-dashboard/internal/middleware"
	"smart-task-dashboard/internal/task"
	tgDelivery "smart-task-dashboard/internal/task/delivery/telegram"
	"smart-task-dashboard/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	corsOrigins []string
	readiness   []ReadinessCheck

	// Task domain
	taskUC          task.UseCase
	telegramHandler tgDelivery.Handler
	telegramGuard   middleware.WebhookConfig
	middleware      middleware.Middleware
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// CORSAllowedOrigins lists the dashboard origins allowed to call the API.
	// Empty allows any origin.
	CORSAllowedOrigins []string

	// ReadinessChecks back /ready. None means ready once the server is up.
	ReadinessChecks []ReadinessCheck

	// Task domain
	TaskUseCase     task.UseCase
	TelegramHandler tgDelivery.Handler
	TelegramGuard   middleware.WebhookConfig
	Middleware      middleware.Middleware
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		corsOrigins:     cfg.CORSAllowedOrigins,
		readiness:       cfg.ReadinessChecks,
		taskUC:          cfg.TaskUseCase,
		telegramHandler: cfg.TelegramHandler,
		telegramGuard:   cfg.TelegramGuard,
		middleware:      cfg.Middleware,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if srv.middleware == (middleware.Middleware{}) {
		srv.middleware = middleware.New(logger, 0)
	}

	srv.mapHandlers()

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.taskUC == nil {
		return errors.New("task use case is required")
	}
	for _, rc := range srv.readiness {
		if rc.Name == "" || rc.Check == nil {
			return errors.New("readiness checks need a name and a check")
		}
	}
	return nil
}
