package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tutorboard/internal/model"
	"tutorboard/internal/repository"
	"tutorboard/internal/schedule"
)

// DefaultRowHeightPx высота 30-минутной строки недельной сетки
const DefaultRowHeightPx = 48.0

var ErrSlotNotFound = errors.New("time slot not found")

// SlotPlacement слот с его положением на сетке и именами студентов
type SlotPlacement struct {
	Slot      model.TimeSlot     `json:"slot"`
	Placement schedule.Placement `json:"placement"`
	Students  []AssignedStudent  `json:"students"`
}

// AssignedStudent привязанный к слоту студент
type AssignedStudent struct {
	AssignmentID uuid.UUID `json:"assignment_id"`
	StudentID    uuid.UUID `json:"student_id"`
	FullName     string    `json:"full_name"`
}

// WeekGrid недельная сетка целиком: ось, подписи засечек
// и слоты по колонкам понедельник..воскресенье
type WeekGrid struct {
	Axis       schedule.Axis      `json:"axis"`
	TickLabels []string           `json:"tick_labels"`
	Days       [7][]SlotPlacement `json:"days"`
}

type ScheduleService struct {
	slotRepo       *repository.SlotRepository
	assignmentRepo *repository.AssignmentRepository
	studentRepo    *repository.StudentRepository
	logger         *zap.Logger
}

func NewScheduleService(
	slotRepo *repository.SlotRepository,
	assignmentRepo *repository.AssignmentRepository,
	studentRepo *repository.StudentRepository,
	logger *zap.Logger,
) *ScheduleService {
	return &ScheduleService{
		slotRepo:       slotRepo,
		assignmentRepo: assignmentRepo,
		studentRepo:    studentRepo,
		logger:         logger,
	}
}

// CreateSlot создаёт еженедельный слот. Невалидный слот отклоняется
// до обращения к БД
func (s *ScheduleService) CreateSlot(ctx context.Context, ownerID uuid.UUID, dayOfWeek int, startTime string, durationMinutes int, subject string) (*model.TimeSlot, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return nil, fmt.Errorf("subject is required")
	}

	slot := &model.TimeSlot{
		OwnerID:         ownerID,
		DayOfWeek:       dayOfWeek,
		StartTime:       startTime,
		DurationMinutes: durationMinutes,
		Subject:         subject,
	}

	if err := schedule.ValidateSlot(*slot); err != nil {
		return nil, err
	}

	if err := s.slotRepo.Create(ctx, slot); err != nil {
		return nil, fmt.Errorf("create slot: %w", err)
	}

	s.logger.Info("Time slot created",
		zap.String("slot_id", slot.ID.String()),
		zap.Int("day_of_week", dayOfWeek),
		zap.String("start_time", startTime),
		zap.String("subject", subject),
	)

	return slot, nil
}

// ListSlots получает все слоты преподавателя
func (s *ScheduleService) ListSlots(ctx context.Context, ownerID uuid.UUID) ([]model.TimeSlot, error) {
	return s.slotRepo.ListByOwner(ctx, ownerID)
}

// DeleteSlot удаляет слот вместе с привязками
func (s *ScheduleService) DeleteSlot(ctx context.Context, ownerID, slotID uuid.UUID) error {
	if err := s.slotRepo.Delete(ctx, ownerID, slotID); err != nil {
		return err
	}

	s.logger.Info("Time slot deleted",
		zap.String("slot_id", slotID.String()),
	)

	return nil
}

// AssignStudent привязывает студента к слоту
func (s *ScheduleService) AssignStudent(ctx context.Context, ownerID, slotID, studentID uuid.UUID) (*model.Assignment, error) {
	slot, err := s.slotRepo.GetByID(ctx, ownerID, slotID)
	if err != nil {
		return nil, err
	}
	if slot == nil {
		return nil, ErrSlotNotFound
	}

	student, err := s.studentRepo.GetByID(ctx, ownerID, studentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, ErrStudentNotFound
	}

	assignment := &model.Assignment{
		OwnerID:    ownerID,
		TimeSlotID: slotID,
		StudentID:  studentID,
	}
	if err := s.assignmentRepo.Create(ctx, assignment); err != nil {
		return nil, err
	}
	assignment.StudentName = student.FullName

	s.logger.Info("Student assigned to slot",
		zap.String("slot_id", slotID.String()),
		zap.String("student_id", studentID.String()),
	)

	return assignment, nil
}

// UnassignStudent удаляет привязку студента к слоту
func (s *ScheduleService) UnassignStudent(ctx context.Context, ownerID, assignmentID uuid.UUID) error {
	return s.assignmentRepo.Delete(ctx, ownerID, assignmentID)
}

// WeekGrid строит недельную сетку: общую ось времени, положение
// каждого слота и привязанных студентов
func (s *ScheduleService) WeekGrid(ctx context.Context, ownerID uuid.UUID) (*WeekGrid, error) {
	slots, err := s.slotRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	assignments, err := s.assignmentRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	grid, err := BuildWeekGrid(slots, assignments)
	if err != nil {
		return nil, fmt.Errorf("build week grid: %w", err)
	}

	return grid, nil
}

// BuildWeekGrid собирает сетку из уже загруженных слотов и привязок
func BuildWeekGrid(slots []model.TimeSlot, assignments []*model.Assignment) (*WeekGrid, error) {
	axis, err := schedule.ComputeAxis(slots)
	if err != nil {
		return nil, err
	}

	days, err := schedule.GroupByDay(slots)
	if err != nil {
		return nil, err
	}

	bySlot := make(map[uuid.UUID][]AssignedStudent)
	for _, a := range assignments {
		bySlot[a.TimeSlotID] = append(bySlot[a.TimeSlotID], AssignedStudent{
			AssignmentID: a.ID,
			StudentID:    a.StudentID,
			FullName:     a.StudentName,
		})
	}

	grid := &WeekGrid{Axis: axis}
	for _, tick := range axis.Ticks {
		grid.TickLabels = append(grid.TickLabels, schedule.FormatMinutes(tick))
	}

	for day, daySlots := range days {
		for _, slot := range daySlots {
			placement, err := schedule.PlaceSlot(slot, axis, DefaultRowHeightPx)
			if err != nil {
				return nil, err
			}
			grid.Days[day] = append(grid.Days[day], SlotPlacement{
				Slot:      slot,
				Placement: placement,
				Students:  bySlot[slot.ID],
			})
		}
	}

	return grid, nil
}

// StudentAvailability вычисляет окно доступности студента по его
// привязкам: по каким предметам и в какие даты можно записывать заметки
func (s *ScheduleService) StudentAvailability(ctx context.Context, ownerID, studentID uuid.UUID, horizonDays int, today time.Time) (schedule.Window, error) {
	student, err := s.studentRepo.GetByID(ctx, ownerID, studentID)
	if err != nil {
		return schedule.Window{}, err
	}
	if student == nil {
		return schedule.Window{}, ErrStudentNotFound
	}

	slots, err := s.assignmentRepo.ListSlotsByStudent(ctx, ownerID, studentID)
	if err != nil {
		return schedule.Window{}, err
	}

	return schedule.Resolve(slots, horizonDays, today)
}
