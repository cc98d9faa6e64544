package model

import (
	"time"

	"github.com/google/uuid"
)

// Нумерация дней недели в слотах: 0 = понедельник, 6 = воскресенье.
// Конвертация в time.Weekday выполняется один раз в пакете schedule.

// TimeSlot представляет еженедельный учебный слот
type TimeSlot struct {
	ID              uuid.UUID `json:"id"`
	OwnerID         uuid.UUID `json:"owner_id"`
	DayOfWeek       int       `json:"day_of_week"` // 0 = понедельник, 6 = воскресенье
	StartTime       string    `json:"start_time"`  // "HH:MM", 24-часовой формат
	DurationMinutes int       `json:"duration_minutes"`
	Subject         string    `json:"subject"`
	CreatedAt       time.Time `json:"created_at"`
}
