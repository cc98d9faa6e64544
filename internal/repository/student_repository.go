package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tutorboard/internal/model"
)

type StudentRepository struct {
	pool *pgxpool.Pool
}

func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{pool: pool}
}

// Create создаёт нового студента
func (r *StudentRepository) Create(ctx context.Context, student *model.Student) error {
	query := `
		INSERT INTO students (owner_id, full_name, email, notes, amount_due, alert_threshold)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		student.OwnerID,
		student.FullName,
		student.Email,
		student.Notes,
		student.AmountDue,
		student.AlertThreshold,
	).Scan(&student.ID, &student.CreatedAt)
	if err != nil {
		return fmt.Errorf("create student: %w", err)
	}

	return nil
}

// GetByID получает студента владельца по ID
func (r *StudentRepository) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*model.Student, error) {
	query := `
		SELECT id, owner_id, full_name, email, notes, amount_due, alert_threshold, created_at
		FROM students
		WHERE owner_id = $1 AND id = $2
	`

	var student model.Student
	err := r.pool.QueryRow(ctx, query, ownerID, id).Scan(
		&student.ID,
		&student.OwnerID,
		&student.FullName,
		&student.Email,
		&student.Notes,
		&student.AmountDue,
		&student.AlertThreshold,
		&student.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get student by id: %w", err)
	}

	return &student, nil
}

// ListByOwner получает всех студентов преподавателя
func (r *StudentRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*model.Student, error) {
	query := `
		SELECT id, owner_id, full_name, email, notes, amount_due, alert_threshold, created_at
		FROM students
		WHERE owner_id = $1
		ORDER BY full_name
	`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	defer rows.Close()

	var students []*model.Student
	for rows.Next() {
		var student model.Student
		err := rows.Scan(
			&student.ID,
			&student.OwnerID,
			&student.FullName,
			&student.Email,
			&student.Notes,
			&student.AmountDue,
			&student.AlertThreshold,
			&student.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan student: %w", err)
		}
		students = append(students, &student)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate students: %w", err)
	}

	return students, nil
}

// Update обновляет данные студента
func (r *StudentRepository) Update(ctx context.Context, student *model.Student) error {
	query := `
		UPDATE students
		SET full_name = $1, email = $2, notes = $3
		WHERE owner_id = $4 AND id = $5
	`

	result, err := r.pool.Exec(
		ctx, query,
		student.FullName,
		student.Email,
		student.Notes,
		student.OwnerID,
		student.ID,
	)
	if err != nil {
		return fmt.Errorf("update student: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("student not found: %w", ErrNotFound)
	}

	return nil
}

// UpdateBilling обновляет задолженность и порог алерта
func (r *StudentRepository) UpdateBilling(ctx context.Context, ownerID, id uuid.UUID, amountDue, alertThreshold int) error {
	query := `
		UPDATE students
		SET amount_due = $1, alert_threshold = $2
		WHERE owner_id = $3 AND id = $4
	`

	result, err := r.pool.Exec(ctx, query, amountDue, alertThreshold, ownerID, id)
	if err != nil {
		return fmt.Errorf("update student billing: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("student not found: %w", ErrNotFound)
	}

	return nil
}

// Delete удаляет студента вместе с привязками, заметками и чатом (каскадом)
func (r *StudentRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	query := `DELETE FROM students WHERE owner_id = $1 AND id = $2`

	result, err := r.pool.Exec(ctx, query, ownerID, id)
	if err != nil {
		return fmt.Errorf("delete student: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("student not found: %w", ErrNotFound)
	}

	return nil
}

// ListWithBillingAlert получает студентов всех преподавателей
// с превышенным порогом задолженности
func (r *StudentRepository) ListWithBillingAlert(ctx context.Context) ([]*model.Student, error) {
	query := `
		SELECT id, owner_id, full_name, email, notes, amount_due, alert_threshold, created_at
		FROM students
		WHERE alert_threshold > 0 AND amount_due > alert_threshold
		ORDER BY full_name
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list billing alerts: %w", err)
	}
	defer rows.Close()

	var students []*model.Student
	for rows.Next() {
		var student model.Student
		err := rows.Scan(
			&student.ID,
			&student.OwnerID,
			&student.FullName,
			&student.Email,
			&student.Notes,
			&student.AmountDue,
			&student.AlertThreshold,
			&student.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan student: %w", err)
		}
		students = append(students, &student)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate students: %w", err)
	}

	return students, nil
}
