package model

import (
	"time"

	"github.com/google/uuid"
)

// Assignment привязывает студента к еженедельному слоту
type Assignment struct {
	ID         uuid.UUID `json:"id"`
	OwnerID    uuid.UUID `json:"owner_id"`
	TimeSlotID uuid.UUID `json:"time_slot_id"`
	StudentID  uuid.UUID `json:"student_id"`
	CreatedAt  time.Time `json:"created_at"`

	// Дополнительное поле для удобства (не из БД)
	StudentName string `json:"student_name,omitempty"`
}
