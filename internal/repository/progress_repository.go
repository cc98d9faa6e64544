package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tutorboard/internal/model"
)

type ProgressRepository struct {
	pool *pgxpool.Pool
}

func NewProgressRepository(pool *pgxpool.Pool) *ProgressRepository {
	return &ProgressRepository{pool: pool}
}

// Create создаёт заметку о занятии
func (r *ProgressRepository) Create(ctx context.Context, record *model.ProgressRecord) error {
	query := `
		INSERT INTO progress_records (owner_id, student_id, subject, notes, record_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		record.OwnerID,
		record.StudentID,
		record.Subject,
		record.Notes,
		record.RecordDate,
	).Scan(&record.ID, &record.CreatedAt)
	if err != nil {
		return fmt.Errorf("create progress record: %w", err)
	}

	return nil
}

// GetByID получает заметку владельца по ID
func (r *ProgressRepository) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*model.ProgressRecord, error) {
	query := `
		SELECT id, owner_id, student_id, subject, notes, record_date, created_at
		FROM progress_records
		WHERE owner_id = $1 AND id = $2
	`

	var record model.ProgressRecord
	err := r.pool.QueryRow(ctx, query, ownerID, id).Scan(
		&record.ID,
		&record.OwnerID,
		&record.StudentID,
		&record.Subject,
		&record.Notes,
		&record.RecordDate,
		&record.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get progress record by id: %w", err)
	}

	return &record, nil
}

// ListByStudent получает заметки студента, свежие первыми
func (r *ProgressRepository) ListByStudent(ctx context.Context, ownerID, studentID uuid.UUID) ([]*model.ProgressRecord, error) {
	query := `
		SELECT id, owner_id, student_id, subject, notes, record_date, created_at
		FROM progress_records
		WHERE owner_id = $1 AND student_id = $2
		ORDER BY record_date DESC, created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, ownerID, studentID)
	if err != nil {
		return nil, fmt.Errorf("list progress records: %w", err)
	}
	defer rows.Close()

	var records []*model.ProgressRecord
	for rows.Next() {
		var record model.ProgressRecord
		err := rows.Scan(
			&record.ID,
			&record.OwnerID,
			&record.StudentID,
			&record.Subject,
			&record.Notes,
			&record.RecordDate,
			&record.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan progress record: %w", err)
		}
		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate progress records: %w", err)
	}

	return records, nil
}

// Update обновляет предмет, дату и текст заметки
func (r *ProgressRepository) Update(ctx context.Context, record *model.ProgressRecord) error {
	query := `
		UPDATE progress_records
		SET subject = $1, notes = $2, record_date = $3
		WHERE owner_id = $4 AND id = $5
	`

	result, err := r.pool.Exec(
		ctx, query,
		record.Subject,
		record.Notes,
		record.RecordDate,
		record.OwnerID,
		record.ID,
	)
	if err != nil {
		return fmt.Errorf("update progress record: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("progress record not found: %w", ErrNotFound)
	}

	return nil
}

// Delete удаляет заметку
func (r *ProgressRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	query := `DELETE FROM progress_records WHERE owner_id = $1 AND id = $2`

	result, err := r.pool.Exec(ctx, query, ownerID, id)
	if err != nil {
		return fmt.Errorf("delete progress record: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("progress record not found: %w", ErrNotFound)
	}

	return nil
}
