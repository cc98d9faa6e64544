package http

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"tutorboard/internal/service"
)

type ProgressHandler struct {
	progressService *service.ProgressService
	logger          *zap.Logger
}

func NewProgressHandler(progressService *service.ProgressService, logger *zap.Logger) *ProgressHandler {
	return &ProgressHandler{
		progressService: progressService,
		logger:          logger,
	}
}

type recordRequest struct {
	Subject    string  `json:"subject" validate:"required"`
	Notes      *string `json:"notes"`
	RecordDate string  `json:"record_date" validate:"required"`
}

// List возвращает заметки студента, свежие первыми
func (h *ProgressHandler) List(c *fiber.Ctx) error {
	studentID, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	records, err := h.progressService.ListByStudent(c.Context(), ownerID(c), studentID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(records)
}

// Create создаёт заметку о занятии. Пара (предмет, дата) проверяется
// по свежему окну доступности студента
func (h *ProgressHandler) Create(c *fiber.Ctx) error {
	studentID, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	var req recordRequest
	if err := parseAndValidate(c, &req); err != nil {
		return err
	}

	recordDate, err := parseDate(req.RecordDate)
	if err != nil {
		return err
	}

	record, err := h.progressService.CreateRecord(
		c.Context(), ownerID(c), studentID,
		req.Subject, req.Notes, recordDate,
	)
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(record)
}

// Update обновляет заметку с той же проверкой окна
func (h *ProgressHandler) Update(c *fiber.Ctx) error {
	recordID, err := paramUUID(c, "recordId")
	if err != nil {
		return err
	}

	var req recordRequest
	if err := parseAndValidate(c, &req); err != nil {
		return err
	}

	recordDate, err := parseDate(req.RecordDate)
	if err != nil {
		return err
	}

	record, err := h.progressService.UpdateRecord(
		c.Context(), ownerID(c), recordID,
		req.Subject, req.Notes, recordDate,
	)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(record)
}

// Delete удаляет заметку
func (h *ProgressHandler) Delete(c *fiber.Ctx) error {
	recordID, err := paramUUID(c, "recordId")
	if err != nil {
		return err
	}

	if err := h.progressService.DeleteRecord(c.Context(), ownerID(c), recordID); err != nil {
		return serviceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
