package schedule

import (
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"tutorboard/internal/model"
)

func slot(day int, start string, duration int, subject string) model.TimeSlot {
	return model.TimeSlot{
		ID:              uuid.New(),
		DayOfWeek:       day,
		StartTime:       start,
		DurationMinutes: duration,
		Subject:         subject,
	}
}

// 5 января 2026 — понедельник
var monday = time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)

func TestResolveEmpty(t *testing.T) {
	window, err := Resolve(nil, DefaultHorizonDays, monday)
	require.NoError(t, err)
	require.Empty(t, window.Subjects)
	require.Empty(t, window.Weekdays)
	require.Empty(t, window.Dates)
}

func TestResolveMondayWednesday(t *testing.T) {
	slots := []model.TimeSlot{
		slot(0, "09:00", 60, "Math"), // понедельник
		slot(2, "14:00", 90, "Math"), // среда
	}

	window, err := Resolve(slots, 13, monday)
	require.NoError(t, err)

	require.Equal(t, []string{"Math"}, window.Subjects)
	require.Equal(t, []time.Weekday{time.Monday, time.Wednesday}, window.Weekdays)

	// Две недели: два понедельника и две среды
	want := []time.Time{
		monday,
		monday.AddDate(0, 0, 2),
		monday.AddDate(0, 0, 7),
		monday.AddDate(0, 0, 9),
	}
	require.Equal(t, want, window.Dates)
}

func TestResolveDatesMatchWeekdays(t *testing.T) {
	slots := []model.TimeSlot{
		slot(0, "09:00", 60, "Math"),
		slot(2, "14:00", 90, "Physique"),
		slot(5, "10:30", 120, "Chimie"),
	}

	window, err := Resolve(slots, DefaultHorizonDays, monday)
	require.NoError(t, err)

	allowed := make(map[time.Weekday]bool)
	for _, wd := range window.Weekdays {
		allowed[wd] = true
	}

	last := monday.AddDate(0, 0, DefaultHorizonDays)
	for _, d := range window.Dates {
		require.True(t, allowed[d.Weekday()], "date %s has unexpected weekday", d)
		require.False(t, d.Before(monday), "date %s before today", d)
		require.False(t, d.After(last), "date %s past horizon", d)
	}
}

func TestResolveDedupesAndSkipsBlankSubjects(t *testing.T) {
	duplicated := slot(1, "09:00", 60, "Anglais")
	slots := []model.TimeSlot{
		duplicated,
		duplicated,
		slot(1, "11:00", 60, "  "),
		slot(3, "11:00", 60, ""),
	}

	window, err := Resolve(slots, 6, monday)
	require.NoError(t, err)
	require.Equal(t, []string{"Anglais"}, window.Subjects)
	require.Equal(t, []time.Weekday{time.Tuesday, time.Thursday}, window.Weekdays)
}

func TestResolveSubjectsFrenchOrder(t *testing.T) {
	slots := []model.TimeSlot{
		slot(0, "09:00", 60, "Physique"),
		slot(1, "09:00", 60, "Éducation musicale"),
		slot(2, "09:00", 60, "Anglais"),
		slot(3, "09:00", 60, "Espagnol"),
	}

	window, err := Resolve(slots, 6, monday)
	require.NoError(t, err)
	require.Equal(t,
		[]string{"Anglais", "Éducation musicale", "Espagnol", "Physique"},
		window.Subjects)
}

func TestResolveHorizonZero(t *testing.T) {
	window, err := Resolve([]model.TimeSlot{slot(0, "09:00", 60, "Math")}, 0, monday)
	require.NoError(t, err)
	require.Equal(t, []time.Time{monday}, window.Dates)

	// Сегодня вторник, слот только по понедельникам — дат нет
	window, err = Resolve([]model.TimeSlot{slot(0, "09:00", 60, "Math")}, 0, monday.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Empty(t, window.Dates)
}

func TestResolveIgnoresTimeOfDay(t *testing.T) {
	lateEvening := time.Date(2026, 1, 5, 23, 45, 12, 0, time.UTC)

	fromMidnight, err := Resolve([]model.TimeSlot{slot(0, "09:00", 60, "Math")}, 13, monday)
	require.NoError(t, err)
	fromEvening, err := Resolve([]model.TimeSlot{slot(0, "09:00", 60, "Math")}, 13, lateEvening)
	require.NoError(t, err)

	require.Equal(t, fromMidnight.Dates, fromEvening.Dates)
}

func TestResolveIdempotent(t *testing.T) {
	slots := []model.TimeSlot{
		slot(0, "09:00", 60, "Math"),
		slot(4, "18:30", 45, "Anglais"),
	}

	first, err := Resolve(slots, 30, monday)
	require.NoError(t, err)
	second, err := Resolve(slots, 30, monday)
	require.NoError(t, err)
	require.True(t, reflect.DeepEqual(first, second))
}

func TestResolveRejectsMalformedSlots(t *testing.T) {
	tests := []struct {
		name string
		slot model.TimeSlot
	}{
		{"day below range", slot(-1, "09:00", 60, "Math")},
		{"day above range", slot(7, "09:00", 60, "Math")},
		{"zero duration", slot(0, "09:00", 0, "Math")},
		{"negative duration", slot(0, "09:00", -30, "Math")},
		{"bad time", slot(0, "9h00", 60, "Math")},
		{"past midnight", slot(0, "23:30", 60, "Math")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve([]model.TimeSlot{tt.slot}, 7, monday)
			require.Error(t, err)
		})
	}
}

func TestResolveRejectsNegativeHorizon(t *testing.T) {
	_, err := Resolve(nil, -1, monday)
	require.Error(t, err)
}

func TestIsAllowed(t *testing.T) {
	window, err := Resolve([]model.TimeSlot{
		slot(0, "09:00", 60, "Math"),
		slot(2, "14:00", 90, "Math"),
	}, 13, monday)
	require.NoError(t, err)

	wednesday := monday.AddDate(0, 0, 2)

	require.True(t, IsAllowed("Math", monday, window))
	require.True(t, IsAllowed("Math", wednesday, window))
	require.False(t, IsAllowed("Physique", monday, window))
	require.False(t, IsAllowed("Math", monday.AddDate(0, 0, 1), window))
	require.False(t, IsAllowed("Math", monday.AddDate(0, 0, -7), window))

	// Время суток не влияет на принадлежность даты
	require.True(t, IsAllowed("Math", wednesday.Add(16*time.Hour+45*time.Minute), window))
}

func TestIsAllowedEmptyWindowDeniesEverything(t *testing.T) {
	require.False(t, IsAllowed("Math", monday, Window{}))
}

func TestIsAllowedRoundTrip(t *testing.T) {
	window, err := Resolve([]model.TimeSlot{
		slot(0, "09:00", 60, "Math"),
		slot(3, "17:00", 60, "Anglais"),
	}, 27, monday)
	require.NoError(t, err)
	require.NotEmpty(t, window.Dates)

	for _, d := range window.Dates {
		require.True(t, IsAllowed("Math", d, window))
		// Сдвиг на день выводит дату из окна: понедельник и четверг не смежны
		require.False(t, IsAllowed("Math", d.AddDate(0, 0, 1), window))
	}
}
