package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"propfirm-assistant/internal/assistant"
	tgDelivery "propfirm-assistant/internal/assistant/delivery/telegram"
	"propfirm-assistant/internal/middleware"
	"propfirm-assistant/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	assistantUC     assistant.UseCase
	telegramHandler tgDelivery.Handler
	middleware      middleware.Middleware
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	AssistantUC     assistant.UseCase
	TelegramHandler tgDelivery.Handler
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
		assistantUC:     cfg.AssistantUC,
		telegramHandler: cfg.TelegramHandler,
		middleware:      cfg.Middleware,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.assistantUC == nil {
		return errors.New("assistant usecase is required")
	}
	return nil
}
