package handler

import (
	"reflect"
	"strings"

	playground "github.com/go-playground/validator/v10"

	"github.com/emzola/scribe/config"
	"github.com/emzola/scribe/internal/jsonlog"
	"github.com/emzola/scribe/service"
)

// Handler defines Handler layer.
type Handler struct {
	config   config.Config
	logger   *jsonlog.Logger
	validate *playground.Validate
	service  service.Service
}

// New creates a new instance of Handler.
func New(cfg config.Config, logger *jsonlog.Logger, service service.Service) *Handler {
	validate := playground.New()
	// Report request body fields by their JSON names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Handler{
		config:   cfg,
		logger:   logger,
		validate: validate,
		service:  service,
	}
}
