package schedule

import (
	"testing"

	"tutorboard/internal/model"
)

func TestParseStartTime(t *testing.T) {
	tests := []struct {
		value   string
		want    int
		wantErr bool
	}{
		{value: "00:00", want: 0},
		{value: "08:00", want: 480},
		{value: "09:15", want: 555},
		{value: "23:59", want: 1439},
		{value: "24:00", wantErr: true},
		{value: "12:60", wantErr: true},
		{value: "9:00", wantErr: true},
		{value: "09.00", wantErr: true},
		{value: "ab:cd", wantErr: true},
		{value: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := ParseStartTime(tt.value)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseStartTime(%q): expected error, got %d", tt.value, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseStartTime(%q): %v", tt.value, err)
			}
			if got != tt.want {
				t.Fatalf("ParseStartTime(%q) = %d, want %d", tt.value, got, tt.want)
			}
		})
	}
}

func TestComputeAxisEmpty(t *testing.T) {
	axis, err := ComputeAxis(nil)
	if err != nil {
		t.Fatalf("ComputeAxis: %v", err)
	}
	if axis.StartMinutes != 480 || axis.EndMinutes != 1200 {
		t.Fatalf("expected default axis 480..1200, got %d..%d", axis.StartMinutes, axis.EndMinutes)
	}
	if len(axis.Ticks) != 25 {
		t.Fatalf("expected 25 ticks, got %d", len(axis.Ticks))
	}
	if axis.Ticks[0] != 480 || axis.Ticks[1] != 510 || axis.Ticks[24] != 1200 {
		t.Fatalf("unexpected ticks: %v", axis.Ticks)
	}
}

func TestComputeAxisSingleSlotWithinDefaults(t *testing.T) {
	// Один слот внутри дефолтного диапазона ось не сужает
	axis, err := ComputeAxis([]model.TimeSlot{slot(0, "09:15", 90, "Math")})
	if err != nil {
		t.Fatalf("ComputeAxis: %v", err)
	}
	if axis.StartMinutes != 480 || axis.EndMinutes != 1200 {
		t.Fatalf("expected axis 480..1200, got %d..%d", axis.StartMinutes, axis.EndMinutes)
	}
}

func TestComputeAxisWidensToSlots(t *testing.T) {
	axis, err := ComputeAxis([]model.TimeSlot{
		slot(0, "07:05", 60, "Math"),    // начало 425 -> floor 420
		slot(4, "20:40", 30, "Anglais"), // конец 1270 -> ceil 1290
	})
	if err != nil {
		t.Fatalf("ComputeAxis: %v", err)
	}
	if axis.StartMinutes != 420 {
		t.Fatalf("expected start 420, got %d", axis.StartMinutes)
	}
	if axis.EndMinutes != 1290 {
		t.Fatalf("expected end 1290, got %d", axis.EndMinutes)
	}
	if first, last := axis.Ticks[0], axis.Ticks[len(axis.Ticks)-1]; first != 420 || last != 1290 {
		t.Fatalf("unexpected tick bounds: %d..%d", first, last)
	}
}

func TestComputeAxisRejectsMalformedSlot(t *testing.T) {
	if _, err := ComputeAxis([]model.TimeSlot{slot(9, "09:00", 60, "Math")}); err == nil {
		t.Fatal("expected error for out-of-range day")
	}
	if _, err := ComputeAxis([]model.TimeSlot{slot(0, "25:00", 60, "Math")}); err == nil {
		t.Fatal("expected error for unparseable time")
	}
}

func TestPlaceSlot(t *testing.T) {
	axis := Axis{StartMinutes: 480, EndMinutes: 1200}

	placement, err := PlaceSlot(slot(0, "09:15", 90, "Math"), axis, 48)
	if err != nil {
		t.Fatalf("PlaceSlot: %v", err)
	}
	if placement.Top != 120 {
		t.Fatalf("expected top 120, got %v", placement.Top)
	}
	if placement.Height != 144 {
		t.Fatalf("expected height 144, got %v", placement.Height)
	}
}

func TestPlaceSlotAtAxisStart(t *testing.T) {
	axis := Axis{StartMinutes: 480, EndMinutes: 1200}

	placement, err := PlaceSlot(slot(2, "08:00", 30, "Chimie"), axis, 48)
	if err != nil {
		t.Fatalf("PlaceSlot: %v", err)
	}
	if placement.Top != 0 || placement.Height != 48 {
		t.Fatalf("expected (0, 48), got (%v, %v)", placement.Top, placement.Height)
	}
}

func TestPlaceSlotRejectsMalformedSlot(t *testing.T) {
	axis := Axis{StartMinutes: 480, EndMinutes: 1200}
	if _, err := PlaceSlot(slot(0, "09:00", -15, "Math"), axis, 48); err == nil {
		t.Fatal("expected error for negative duration")
	}
}

func TestGroupByDay(t *testing.T) {
	late := slot(0, "15:00", 60, "Math")
	early := slot(0, "08:30", 60, "Anglais")
	sunday := slot(6, "10:00", 90, "Chimie")

	days, err := GroupByDay([]model.TimeSlot{late, early, sunday})
	if err != nil {
		t.Fatalf("GroupByDay: %v", err)
	}

	if len(days[0]) != 2 {
		t.Fatalf("expected 2 slots on Monday, got %d", len(days[0]))
	}
	if days[0][0].ID != early.ID || days[0][1].ID != late.ID {
		t.Fatal("Monday slots not sorted by start time")
	}
	if len(days[6]) != 1 || days[6][0].ID != sunday.ID {
		t.Fatalf("expected Sunday bucket with 1 slot, got %d", len(days[6]))
	}
	for day := 1; day < 6; day++ {
		if len(days[day]) != 0 {
			t.Fatalf("expected empty bucket for day %d", day)
		}
	}
}

func TestGroupByDayToleratesOverlaps(t *testing.T) {
	// Пересекающиеся слоты одного дня раскладываются независимо
	a := slot(1, "10:00", 120, "Math")
	b := slot(1, "10:30", 60, "Physique")

	days, err := GroupByDay([]model.TimeSlot{b, a})
	if err != nil {
		t.Fatalf("GroupByDay: %v", err)
	}
	if len(days[1]) != 2 {
		t.Fatalf("expected 2 slots on Tuesday, got %d", len(days[1]))
	}
	if days[1][0].ID != a.ID {
		t.Fatal("expected earlier slot first")
	}
}

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "00:00"},
		{480, "08:00"},
		{555, "09:15"},
		{1200, "20:00"},
	}
	for _, tt := range tests {
		if got := FormatMinutes(tt.minutes); got != tt.want {
			t.Fatalf("FormatMinutes(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}
