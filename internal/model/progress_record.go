package model

import (
	"time"

	"github.com/google/uuid"
)

// ProgressRecord представляет заметку о занятии со студентом
type ProgressRecord struct {
	ID         uuid.UUID `json:"id"`
	OwnerID    uuid.UUID `json:"owner_id"`
	StudentID  uuid.UUID `json:"student_id"`
	Subject    string    `json:"subject"`
	Notes      *string   `json:"notes"`
	RecordDate time.Time `json:"record_date"` // дата занятия, без времени
	CreatedAt  time.Time `json:"created_at"`
}
