package handler

import (
	"github.com/itemkeeper/itemkeeper/internal/config"
	"github.com/itemkeeper/itemkeeper/internal/handler/http"
	"github.com/itemkeeper/itemkeeper/internal/logger"
	"github.com/itemkeeper/itemkeeper/internal/service"
)

// Handlers aggregates the transport handlers of the application.
type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers creates the transport handlers enabled by the server
// configuration.
func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
