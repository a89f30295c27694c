package api

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/katakuxiko/abogado-virtual/internal/model"
	"github.com/katakuxiko/abogado-virtual/internal/service"
)

// Details returned to clients. Underlying errors only go to the log.
const (
	detailConfiguration = "La API Key de Gemini no está configurada."
	detailUpstream      = "Error al procesar la consulta con el modelo IA."
	detailInternal      = "Error interno del servidor."
)

const (
	outcomeOK       = "ok"
	outcomeInvalid  = "invalid"
	outcomeConfig   = "config_error"
	outcomeUpstream = "upstream_error"
	outcomeTimeout  = "timeout"
	outcomeInternal = "internal_error"
)

// classify maps a generator error to a metrics outcome and a client detail.
func classify(err error) (outcome, detail string) {
	switch {
	case err == nil:
		return outcomeOK, ""
	case errors.Is(err, service.ErrConfiguration):
		return outcomeConfig, detailConfiguration
	case errors.Is(err, service.ErrUpstream) && errors.Is(err, context.DeadlineExceeded):
		return outcomeTimeout, detailUpstream
	case errors.Is(err, service.ErrUpstream):
		return outcomeUpstream, detailUpstream
	default:
		return outcomeInternal, detailInternal
	}
}

func logAndReturnError(c *fiber.Ctx, log *logrus.Entry, status int, detail string, err error) error {
	log.WithError(err).WithFields(logrus.Fields{
		"method": c.Method(),
		"path":   c.Path(),
		"status": status,
	}).Error(detail)
	return c.Status(status).JSON(model.ErrorResponse{Detail: detail})
}

// ErrorHandler renders errors that escape the handlers, recovered panics
// included, as {"detail": ...}.
func ErrorHandler(log *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
			return c.Status(fe.Code).JSON(model.ErrorResponse{Detail: fe.Message})
		}
		return logAndReturnError(c, logrus.NewEntry(log), fiber.StatusInternalServerError, detailInternal, err)
	}
}
