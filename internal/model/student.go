package model

import (
	"time"

	"github.com/google/uuid"
)

// Student представляет студента преподавателя
type Student struct {
	ID             uuid.UUID `json:"id"`
	OwnerID        uuid.UUID `json:"owner_id"`
	FullName       string    `json:"full_name"`
	Email          *string   `json:"email"`
	Notes          *string   `json:"notes"`
	AmountDue      int       `json:"amount_due"`      // в центах
	AlertThreshold int       `json:"alert_threshold"` // в центах, 0 = алерт выключен
	CreatedAt      time.Time `json:"created_at"`
}

// HasBillingAlert проверяет, превышен ли порог задолженности
func (s *Student) HasBillingAlert() bool {
	return s.AlertThreshold > 0 && s.AmountDue > s.AlertThreshold
}
