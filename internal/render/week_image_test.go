package render

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/google/uuid"

	"tutorboard/internal/model"
	"tutorboard/internal/service"
)

func TestWeekImage(t *testing.T) {
	mathSlot := model.TimeSlot{
		ID:              uuid.New(),
		DayOfWeek:       0,
		StartTime:       "09:00",
		DurationMinutes: 90,
		Subject:         "Mathématiques",
	}
	slots := []model.TimeSlot{
		mathSlot,
		{
			ID:              uuid.New(),
			DayOfWeek:       4,
			StartTime:       "17:30",
			DurationMinutes: 60,
			Subject:         "Anglais",
		},
	}
	assignments := []*model.Assignment{
		{ID: uuid.New(), TimeSlotID: mathSlot.ID, StudentID: uuid.New(), StudentName: "Marie Dupont"},
	}

	grid, err := service.BuildWeekGrid(slots, assignments)
	if err != nil {
		t.Fatalf("BuildWeekGrid: %v", err)
	}

	data, err := WeekImage(grid)
	if err != nil {
		t.Fatalf("WeekImage: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != imageWidth {
		t.Fatalf("expected width %d, got %d", imageWidth, bounds.Dx())
	}
	// Ось 08:00-20:00 — 24 строки по 48px плюс заголовок
	wantHeight := headerHeight + 24*int(service.DefaultRowHeightPx)
	if bounds.Dy() != wantHeight {
		t.Fatalf("expected height %d, got %d", wantHeight, bounds.Dy())
	}
}

func TestWeekImageEmptySchedule(t *testing.T) {
	grid, err := service.BuildWeekGrid(nil, nil)
	if err != nil {
		t.Fatalf("BuildWeekGrid: %v", err)
	}

	data, err := WeekImage(grid)
	if err != nil {
		t.Fatalf("WeekImage: %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(data)); err != nil {
		t.Fatalf("decode png: %v", err)
	}
}
