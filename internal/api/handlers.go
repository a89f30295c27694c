package api

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/katakuxiko/abogado-virtual/internal/logging"
	"github.com/katakuxiko/abogado-virtual/internal/model"
	"github.com/katakuxiko/abogado-virtual/internal/util"
)

const (
	ServiceTitle       = "API de Asistente Legal Virtual"
	ServiceDescription = "API que conecta tu abogado virtual con el modelo Gemini para consultas legales en México."
	ServiceVersion     = "1.1.0"
)

// Answerer produces an answer for a legal question.
type Answerer interface {
	Answer(ctx context.Context, q model.Question) (model.Answer, error)
}

// Handler holds the dependencies of the HTTP handlers.
type Handler struct {
	assistant Answerer
	timeout   time.Duration
	validate  *validator.Validate
	log       *logrus.Logger
}

// NewHandler builds a Handler. A zero timeout leaves consultations unbounded.
func NewHandler(assistant Answerer, timeout time.Duration) *Handler {
	return &Handler{
		assistant: assistant,
		timeout:   timeout,
		validate:  newValidator(),
		log:       logging.GetLogger(),
	}
}

// Info describes the service: title, description and version.
func (h *Handler) Info(c *fiber.Ctx) error {
	return c.JSON(model.ServiceInfo{
		Title:       ServiceTitle,
		Description: ServiceDescription,
		Version:     ServiceVersion,
	})
}

// Health is a liveness probe; it never contacts the model.
func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// ConsultarAbogado sends a legal question to the virtual lawyer.
// The client switches between technical and plain answers with language_style.
func (h *Handler) ConsultarAbogado(c *fiber.Ctx) error {
	var req model.LegalQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		h.log.WithError(err).Warn("invalid request body")
		observeConsultation(outcomeInvalid, 0)
		return c.Status(fiber.StatusUnprocessableEntity).JSON(invalidBody())
	}
	if err := h.validate.Struct(req); err != nil {
		h.log.WithError(err).Warn("request validation failed")
		observeConsultation(outcomeInvalid, 0)
		return c.Status(fiber.StatusUnprocessableEntity).JSON(model.ValidationErrorResponse{
			Detail: validationIssues(err),
		})
	}

	ctx := c.UserContext()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	q := req.ToQuestion()
	start := time.Now()
	ans, err := h.assistant.Answer(ctx, q)
	outcome, detail := classify(err)
	observeConsultation(outcome, time.Since(start))
	if err != nil {
		entry := h.log.WithFields(logrus.Fields{
			"style":    q.Style,
			"question": util.Excerpt(q.Text, 80),
			"outcome":  outcome,
		})
		return logAndReturnError(c, entry, fiber.StatusInternalServerError, detail, err)
	}

	return c.JSON(model.LegalAnswerResponse{Response: ans.Text})
}
