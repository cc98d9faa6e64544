package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tutorboard/internal/model"
	"tutorboard/internal/repository"
	"tutorboard/internal/schedule"
)

var (
	// ErrNoAvailability студент не привязан ни к одному слоту —
	// заметки создавать нельзя, пока привязки не появятся
	ErrNoAvailability = errors.New("student has no assigned slots")

	// ErrOutsideWindow предмет или дата вне окна доступности студента
	ErrOutsideWindow = errors.New("subject or date outside the student's availability window")

	ErrRecordNotFound = errors.New("progress record not found")
)

type ProgressService struct {
	progressRepo   *repository.ProgressRepository
	assignmentRepo *repository.AssignmentRepository
	studentRepo    *repository.StudentRepository
	logger         *zap.Logger

	// Подменяется в тестах
	now func() time.Time
}

func NewProgressService(
	progressRepo *repository.ProgressRepository,
	assignmentRepo *repository.AssignmentRepository,
	studentRepo *repository.StudentRepository,
	logger *zap.Logger,
) *ProgressService {
	return &ProgressService{
		progressRepo:   progressRepo,
		assignmentRepo: assignmentRepo,
		studentRepo:    studentRepo,
		logger:         logger,
		now:            time.Now,
	}
}

// ListByStudent получает заметки студента, свежие первыми
func (s *ProgressService) ListByStudent(ctx context.Context, ownerID, studentID uuid.UUID) ([]*model.ProgressRecord, error) {
	return s.progressRepo.ListByStudent(ctx, ownerID, studentID)
}

// CreateRecord создаёт заметку о занятии. Пара (предмет, дата)
// сверяется с окном доступности, пересчитанным в момент сохранения —
// привязки могли измениться после открытия формы
func (s *ProgressService) CreateRecord(ctx context.Context, ownerID, studentID uuid.UUID, subject string, notes *string, recordDate time.Time) (*model.ProgressRecord, error) {
	if err := s.checkWindow(ctx, ownerID, studentID, subject, recordDate); err != nil {
		return nil, err
	}

	record := &model.ProgressRecord{
		OwnerID:    ownerID,
		StudentID:  studentID,
		Subject:    subject,
		Notes:      notes,
		RecordDate: recordDate,
	}
	if err := s.progressRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	s.logger.Info("Progress record created",
		zap.String("record_id", record.ID.String()),
		zap.String("student_id", studentID.String()),
		zap.String("subject", subject),
		zap.String("record_date", recordDate.Format("2006-01-02")),
	)

	return record, nil
}

// UpdateRecord обновляет заметку с той же проверкой окна доступности
func (s *ProgressService) UpdateRecord(ctx context.Context, ownerID, recordID uuid.UUID, subject string, notes *string, recordDate time.Time) (*model.ProgressRecord, error) {
	record, err := s.progressRepo.GetByID(ctx, ownerID, recordID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrRecordNotFound
	}

	if err := s.checkWindow(ctx, ownerID, record.StudentID, subject, recordDate); err != nil {
		return nil, err
	}

	record.Subject = subject
	record.Notes = notes
	record.RecordDate = recordDate

	if err := s.progressRepo.Update(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

// DeleteRecord удаляет заметку
func (s *ProgressService) DeleteRecord(ctx context.Context, ownerID, recordID uuid.UUID) error {
	return s.progressRepo.Delete(ctx, ownerID, recordID)
}

// checkWindow пересчитывает окно доступности студента и проверяет
// пару (предмет, дата)
func (s *ProgressService) checkWindow(ctx context.Context, ownerID, studentID uuid.UUID, subject string, recordDate time.Time) error {
	student, err := s.studentRepo.GetByID(ctx, ownerID, studentID)
	if err != nil {
		return err
	}
	if student == nil {
		return ErrStudentNotFound
	}

	slots, err := s.assignmentRepo.ListSlotsByStudent(ctx, ownerID, studentID)
	if err != nil {
		return err
	}

	window, err := schedule.Resolve(slots, schedule.DefaultHorizonDays, s.now())
	if err != nil {
		return fmt.Errorf("resolve availability: %w", err)
	}

	if len(window.Subjects) == 0 {
		return ErrNoAvailability
	}
	if !schedule.IsAllowed(subject, recordDate, window) {
		return ErrOutsideWindow
	}

	return nil
}
