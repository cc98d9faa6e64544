package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tutorboard/internal/model"
	"tutorboard/internal/repository"
)

var ErrStudentNotFound = errors.New("student not found")

type StudentService struct {
	studentRepo *repository.StudentRepository
	logger      *zap.Logger
}

func NewStudentService(studentRepo *repository.StudentRepository, logger *zap.Logger) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
		logger:      logger,
	}
}

// CreateStudent создаёт студента в ростере преподавателя
func (s *StudentService) CreateStudent(ctx context.Context, ownerID uuid.UUID, fullName string, email, notes *string, amountDue, alertThreshold int) (*model.Student, error) {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return nil, fmt.Errorf("full name is required")
	}

	student := &model.Student{
		OwnerID:        ownerID,
		FullName:       fullName,
		Email:          email,
		Notes:          notes,
		AmountDue:      amountDue,
		AlertThreshold: alertThreshold,
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, fmt.Errorf("create student: %w", err)
	}

	s.logger.Info("Student created",
		zap.String("student_id", student.ID.String()),
		zap.String("owner_id", ownerID.String()),
		zap.String("full_name", fullName),
	)

	return student, nil
}

// ListStudents получает всех студентов преподавателя
func (s *StudentService) ListStudents(ctx context.Context, ownerID uuid.UUID) ([]*model.Student, error) {
	return s.studentRepo.ListByOwner(ctx, ownerID)
}

// GetStudent получает студента преподавателя
func (s *StudentService) GetStudent(ctx context.Context, ownerID, studentID uuid.UUID) (*model.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, ownerID, studentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, ErrStudentNotFound
	}
	return student, nil
}

// UpdateStudent обновляет имя, email и общие заметки студента
func (s *StudentService) UpdateStudent(ctx context.Context, ownerID, studentID uuid.UUID, fullName string, email, notes *string) (*model.Student, error) {
	student, err := s.GetStudent(ctx, ownerID, studentID)
	if err != nil {
		return nil, err
	}

	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return nil, fmt.Errorf("full name is required")
	}

	student.FullName = fullName
	student.Email = email
	student.Notes = notes

	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, fmt.Errorf("update student: %w", err)
	}

	return student, nil
}

// UpdateBilling обновляет задолженность студента и порог алерта
func (s *StudentService) UpdateBilling(ctx context.Context, ownerID, studentID uuid.UUID, amountDue, alertThreshold int) (*model.Student, error) {
	if amountDue < 0 || alertThreshold < 0 {
		return nil, fmt.Errorf("billing amounts must be non-negative")
	}

	if err := s.studentRepo.UpdateBilling(ctx, ownerID, studentID, amountDue, alertThreshold); err != nil {
		return nil, err
	}

	s.logger.Info("Student billing updated",
		zap.String("student_id", studentID.String()),
		zap.Int("amount_due", amountDue),
		zap.Int("alert_threshold", alertThreshold),
	)

	return s.GetStudent(ctx, ownerID, studentID)
}

// DeleteStudent удаляет студента вместе со всеми связанными данными
func (s *StudentService) DeleteStudent(ctx context.Context, ownerID, studentID uuid.UUID) error {
	if err := s.studentRepo.Delete(ctx, ownerID, studentID); err != nil {
		return err
	}

	s.logger.Info("Student deleted",
		zap.String("student_id", studentID.String()),
		zap.String("owner_id", ownerID.String()),
	)

	return nil
}

// BillingAlerts получает студентов всех преподавателей с превышенным
// порогом задолженности. Используется фоновой задачей
func (s *StudentService) BillingAlerts(ctx context.Context) ([]*model.Student, error) {
	return s.studentRepo.ListWithBillingAlert(ctx)
}
