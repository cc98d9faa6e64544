package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"tutorboard/internal/model"
)

type AssignmentRepository struct {
	pool *pgxpool.Pool
}

func NewAssignmentRepository(pool *pgxpool.Pool) *AssignmentRepository {
	return &AssignmentRepository{pool: pool}
}

// Create привязывает студента к слоту
func (r *AssignmentRepository) Create(ctx context.Context, assignment *model.Assignment) error {
	query := `
		INSERT INTO schedule_assignments (owner_id, time_slot_id, student_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		assignment.OwnerID,
		assignment.TimeSlotID,
		assignment.StudentID,
	).Scan(&assignment.ID, &assignment.CreatedAt)
	if err != nil {
		return fmt.Errorf("create assignment: %w", err)
	}

	return nil
}

// ListByOwner получает все привязки преподавателя с именами студентов
func (r *AssignmentRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*model.Assignment, error) {
	query := `
		SELECT a.id, a.owner_id, a.time_slot_id, a.student_id, a.created_at, s.full_name
		FROM schedule_assignments a
		JOIN students s ON s.id = a.student_id
		WHERE a.owner_id = $1
		ORDER BY s.full_name
	`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	defer rows.Close()

	var assignments []*model.Assignment
	for rows.Next() {
		var assignment model.Assignment
		err := rows.Scan(
			&assignment.ID,
			&assignment.OwnerID,
			&assignment.TimeSlotID,
			&assignment.StudentID,
			&assignment.CreatedAt,
			&assignment.StudentName,
		)
		if err != nil {
			return nil, fmt.Errorf("scan assignment: %w", err)
		}
		assignments = append(assignments, &assignment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate assignments: %w", err)
	}

	return assignments, nil
}

// ListSlotsByStudent получает слоты, к которым привязан студент.
// Это вход для вычисления окна доступности
func (r *AssignmentRepository) ListSlotsByStudent(ctx context.Context, ownerID, studentID uuid.UUID) ([]model.TimeSlot, error) {
	query := `
		SELECT t.id, t.owner_id, t.day_of_week, t.start_time, t.duration_minutes, t.subject, t.created_at
		FROM schedule_assignments a
		JOIN time_slots t ON t.id = a.time_slot_id
		WHERE a.owner_id = $1 AND a.student_id = $2
		ORDER BY t.day_of_week, t.start_time
	`

	rows, err := r.pool.Query(ctx, query, ownerID, studentID)
	if err != nil {
		return nil, fmt.Errorf("list slots by student: %w", err)
	}
	defer rows.Close()

	var slots []model.TimeSlot
	for rows.Next() {
		var slot model.TimeSlot
		err := rows.Scan(
			&slot.ID,
			&slot.OwnerID,
			&slot.DayOfWeek,
			&slot.StartTime,
			&slot.DurationMinutes,
			&slot.Subject,
			&slot.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan slot: %w", err)
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate slots: %w", err)
	}

	return slots, nil
}

// Delete удаляет привязку
func (r *AssignmentRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	query := `DELETE FROM schedule_assignments WHERE owner_id = $1 AND id = $2`

	result, err := r.pool.Exec(ctx, query, ownerID, id)
	if err != nil {
		return fmt.Errorf("delete assignment: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("assignment not found: %w", ErrNotFound)
	}

	return nil
}
