package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tutorboard/internal/model"
)

type SlotRepository struct {
	pool *pgxpool.Pool
}

func NewSlotRepository(pool *pgxpool.Pool) *SlotRepository {
	return &SlotRepository{pool: pool}
}

// Create создаёт новый еженедельный слот
func (r *SlotRepository) Create(ctx context.Context, slot *model.TimeSlot) error {
	query := `
		INSERT INTO time_slots (owner_id, day_of_week, start_time, duration_minutes, subject)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		slot.OwnerID,
		slot.DayOfWeek,
		slot.StartTime,
		slot.DurationMinutes,
		slot.Subject,
	).Scan(&slot.ID, &slot.CreatedAt)
	if err != nil {
		return fmt.Errorf("create time slot: %w", err)
	}

	return nil
}

// GetByID получает слот владельца по ID
func (r *SlotRepository) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*model.TimeSlot, error) {
	query := `
		SELECT id, owner_id, day_of_week, start_time, duration_minutes, subject, created_at
		FROM time_slots
		WHERE owner_id = $1 AND id = $2
	`

	var slot model.TimeSlot
	err := r.pool.QueryRow(ctx, query, ownerID, id).Scan(
		&slot.ID,
		&slot.OwnerID,
		&slot.DayOfWeek,
		&slot.StartTime,
		&slot.DurationMinutes,
		&slot.Subject,
		&slot.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get time slot by id: %w", err)
	}

	return &slot, nil
}

// ListByOwner получает все слоты преподавателя, упорядоченные
// по дню недели и времени начала
func (r *SlotRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.TimeSlot, error) {
	query := `
		SELECT id, owner_id, day_of_week, start_time, duration_minutes, subject, created_at
		FROM time_slots
		WHERE owner_id = $1
		ORDER BY day_of_week, start_time
	`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list time slots: %w", err)
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
			return nil, fmt.Errorf("scan time slot: %w", err)
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate time slots: %w", err)
	}

	return slots, nil
}

// Delete удаляет слот вместе с привязками студентов (каскадом)
func (r *SlotRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	query := `DELETE FROM time_slots WHERE owner_id = $1 AND id = $2`

	result, err := r.pool.Exec(ctx, query, ownerID, id)
	if err != nil {
		return fmt.Errorf("delete time slot: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("time slot not found: %w", ErrNotFound)
	}

	return nil
}
