package sessionapi

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/Abraxas-365/counsel/counseling/session"
	"github.com/Abraxas-365/counsel/counseling/session/sessionsrv"
	"github.com/Abraxas-365/counsel/pkg/kernel"
)

// Handlers provides HTTP handlers for session operations
type Handlers struct {
	service *sessionsrv.Service
}

// NewHandlers creates a new session handlers instance
func NewHandlers(service *sessionsrv.Service) *Handlers {
	return &Handlers{
		service: service,
	}
}

// HandleTurn processes one dialogue turn
// POST /webhooks/dialogue/turn
func (h *Handlers) HandleTurn(c *fiber.Ctx) error {
	var req session.TurnRequest
	if err := c.BodyParser(&req); err != nil {
		return session.ErrMissingSessionID().WithDetail("parse_error", err.Error())
	}

	payloads, err := h.service.HandleTurn(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(payloads)
}

// GetSession retrieves a session snapshot
// GET /api/sessions/:id
func (h *Handlers) GetSession(c *fiber.Ctx) error {
	id := kernel.SessionID(c.Params("id"))
	if id.IsEmpty() {
		return session.ErrMissingSessionID()
	}

	snapshot, err := h.service.GetSession(c.Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(snapshot)
}

// UploadResume accepts a resume file and queues its text extraction
// POST /api/sessions/:id/resume
func (h *Handlers) UploadResume(c *fiber.Ctx) error {
	id := kernel.SessionID(c.Params("id"))
	if id.IsEmpty() {
		return session.ErrMissingSessionID()
	}

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		return session.ErrInvalidFileFormat().WithDetail("error", "missing multipart field 'resume'")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return session.ErrInvalidFileFormat().WithDetail("error", err.Error())
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return session.ErrInvalidFileFormat().WithDetail("error", err.Error())
	}

	resp, err := h.service.EnqueueResumeExtraction(c.Context(), id, fileHeader.Filename, data)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusAccepted).JSON(resp)
}

// DownloadReport serves a rendered report
// GET /api/reports/:name
func (h *Handlers) DownloadReport(c *fiber.Ctx) error {
	name := c.Params("name")

	data, err := h.service.ReadReport(c.Context(), name)
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return c.Send(data)
}

// RegisterRoutes wires the session routes behind the service-token
// middleware.
func RegisterRoutes(app *fiber.App, h *Handlers, auth fiber.Handler) {
	app.Post("/webhooks/dialogue/turn", auth, h.HandleTurn)

	api := app.Group("/api", auth)
	api.Get("/sessions/:id", h.GetSession)
	api.Post("/sessions/:id/resume", h.UploadResume)
	api.Get("/reports/:name", h.DownloadReport)
}
