package http

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"tutorboard/internal/model"
	"tutorboard/internal/service"
)

type StudentHandler struct {
	studentService *service.StudentService
	logger         *zap.Logger
}

func NewStudentHandler(studentService *service.StudentService, logger *zap.Logger) *StudentHandler {
	return &StudentHandler{
		studentService: studentService,
		logger:         logger,
	}
}

type studentRequest struct {
	FullName       string  `json:"full_name" validate:"required"`
	Email          *string `json:"email" validate:"omitempty,email"`
	Notes          *string `json:"notes"`
	AmountDue      int     `json:"amount_due" validate:"min=0"`
	AlertThreshold int     `json:"alert_threshold" validate:"min=0"`
}

type billingRequest struct {
	AmountDue      int `json:"amount_due" validate:"min=0"`
	AlertThreshold int `json:"alert_threshold" validate:"min=0"`
}

type studentResponse struct {
	*model.Student
	HasBillingAlert bool `json:"has_billing_alert"`
}

func toStudentResponse(student *model.Student) studentResponse {
	return studentResponse{
		Student:         student,
		HasBillingAlert: student.HasBillingAlert(),
	}
}

// List возвращает всех студентов преподавателя
func (h *StudentHandler) List(c *fiber.Ctx) error {
	students, err := h.studentService.ListStudents(c.Context(), ownerID(c))
	if err != nil {
		return serviceError(c, err)
	}

	response := make([]studentResponse, 0, len(students))
	for _, student := range students {
		response = append(response, toStudentResponse(student))
	}

	return c.JSON(response)
}

// Get возвращает одного студента
func (h *StudentHandler) Get(c *fiber.Ctx) error {
	studentID, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	student, err := h.studentService.GetStudent(c.Context(), ownerID(c), studentID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(toStudentResponse(student))
}

// Create создаёт студента
func (h *StudentHandler) Create(c *fiber.Ctx) error {
	var req studentRequest
	if err := parseAndValidate(c, &req); err != nil {
		return err
	}

	student, err := h.studentService.CreateStudent(
		c.Context(), ownerID(c),
		req.FullName, req.Email, req.Notes,
		req.AmountDue, req.AlertThreshold,
	)
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(toStudentResponse(student))
}

// Update обновляет имя, email и заметки студента
func (h *StudentHandler) Update(c *fiber.Ctx) error {
	studentID, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	var req studentRequest
	if err := parseAndValidate(c, &req); err != nil {
		return err
	}

	student, err := h.studentService.UpdateStudent(
		c.Context(), ownerID(c), studentID,
		req.FullName, req.Email, req.Notes,
	)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(toStudentResponse(student))
}

// UpdateBilling обновляет задолженность и порог алерта
func (h *StudentHandler) UpdateBilling(c *fiber.Ctx) error {
	studentID, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	var req billingRequest
	if err := parseAndValidate(c, &req); err != nil {
		return err
	}

	student, err := h.studentService.UpdateBilling(
		c.Context(), ownerID(c), studentID,
		req.AmountDue, req.AlertThreshold,
	)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(toStudentResponse(student))
}

// Delete удаляет студента
func (h *StudentHandler) Delete(c *fiber.Ctx) error {
	studentID, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.studentService.DeleteStudent(c.Context(), ownerID(c), studentID); err != nil {
		return serviceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
