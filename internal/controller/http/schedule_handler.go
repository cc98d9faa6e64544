package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"tutorboard/internal/render"
	"tutorboard/internal/schedule"
	"tutorboard/internal/service"
)

type ScheduleHandler struct {
	scheduleService *service.ScheduleService
	logger          *zap.Logger
}

func NewScheduleHandler(scheduleService *service.ScheduleService, logger *zap.Logger) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleService: scheduleService,
		logger:          logger,
	}
}

type slotRequest struct {
	DayOfWeek       int    `json:"day_of_week" validate:"min=0,max=6"`
	StartTime       string `json:"start_time" validate:"required"`
	DurationMinutes int    `json:"duration_minutes" validate:"required,gt=0"`
	Subject         string `json:"subject" validate:"required"`
}

type assignmentRequest struct {
	TimeSlotID string `json:"time_slot_id" validate:"required,uuid"`
	StudentID  string `json:"student_id" validate:"required,uuid"`
}

// ListSlots возвращает все слоты преподавателя
func (h *ScheduleHandler) ListSlots(c *fiber.Ctx) error {
	slots, err := h.scheduleService.ListSlots(c.Context(), ownerID(c))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(slots)
}

// CreateSlot создаёт еженедельный слот
func (h *ScheduleHandler) CreateSlot(c *fiber.Ctx) error {
	var req slotRequest
	if err := parseAndValidate(c, &req); err != nil {
		return err
	}

	slot, err := h.scheduleService.CreateSlot(
		c.Context(), ownerID(c),
		req.DayOfWeek, req.StartTime, req.DurationMinutes, req.Subject,
	)
	if err != nil {
		// Невалидное время или длительность — ошибка данных запроса
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(slot)
}

// DeleteSlot удаляет слот вместе с привязками
func (h *ScheduleHandler) DeleteSlot(c *fiber.Ctx) error {
	slotID, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.scheduleService.DeleteSlot(c.Context(), ownerID(c), slotID); err != nil {
		return serviceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// CreateAssignment привязывает студента к слоту
func (h *ScheduleHandler) CreateAssignment(c *fiber.Ctx) error {
	var req assignmentRequest
	if err := parseAndValidate(c, &req); err != nil {
		return err
	}

	// uuid-формат уже проверен валидатором
	slotID := uuid.MustParse(req.TimeSlotID)
	studentID := uuid.MustParse(req.StudentID)

	assignment, err := h.scheduleService.AssignStudent(c.Context(), ownerID(c), slotID, studentID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(assignment)
}

// DeleteAssignment удаляет привязку
func (h *ScheduleHandler) DeleteAssignment(c *fiber.Ctx) error {
	assignmentID, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.scheduleService.UnassignStudent(c.Context(), ownerID(c), assignmentID); err != nil {
		return serviceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// WeekGrid возвращает недельную сетку в JSON
func (h *ScheduleHandler) WeekGrid(c *fiber.Ctx) error {
	grid, err := h.scheduleService.WeekGrid(c.Context(), ownerID(c))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(grid)
}

// WeekImage возвращает недельную сетку как PNG
func (h *ScheduleHandler) WeekImage(c *fiber.Ctx) error {
	grid, err := h.scheduleService.WeekGrid(c.Context(), ownerID(c))
	if err != nil {
		return serviceError(c, err)
	}

	data, err := render.WeekImage(grid)
	if err != nil {
		return serviceError(c, err)
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(data)
}

// StudentAvailability возвращает окно доступности студента:
// предметы, дни недели и даты, валидные для заметок
func (h *ScheduleHandler) StudentAvailability(c *fiber.Ctx) error {
	studentID, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	horizonDays := c.QueryInt("horizon_days", schedule.DefaultHorizonDays)
	if horizonDays < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "horizon_days must be non-negative")
	}

	window, err := h.scheduleService.StudentAvailability(
		c.Context(), ownerID(c), studentID,
		horizonDays, time.Now(),
	)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(availabilityResponse(window))
}

type availabilityView struct {
	Subjects []string `json:"subjects"`
	Weekdays []int    `json:"weekdays"` // 0 = понедельник, как в слотах
	Dates    []string `json:"dates"`    // YYYY-MM-DD
}

// availabilityResponse переводит окно в формат API: дни недели обратно
// в нумерацию слотов, даты в ISO-строки
func availabilityResponse(window schedule.Window) availabilityView {
	view := availabilityView{
		Subjects: window.Subjects,
		Weekdays: []int{},
		Dates:    []string{},
	}
	if view.Subjects == nil {
		view.Subjects = []string{}
	}

	for _, wd := range window.Weekdays {
		view.Weekdays = append(view.Weekdays, (int(wd)+6)%7)
	}
	for _, d := range window.Dates {
		view.Dates = append(view.Dates, d.Format(dateLayout))
	}

	return view
}
