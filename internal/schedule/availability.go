// Package schedule содержит чистую логику недельного расписания:
// вычисление доступных дат для заметок студента и раскладку слотов
// на временной сетке. Пакет не обращается к БД и к системным часам —
// текущая дата всегда передаётся параметром.
package schedule

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"tutorboard/internal/model"
)

// DefaultHorizonDays горизонт генерации дат по умолчанию
const DefaultHorizonDays = 120

// Window описывает, по каким предметам и датам студенту можно
// записывать заметки о занятиях. Пересчитывается заново при каждом
// изменении привязок — не кешируется
type Window struct {
	Subjects []string       `json:"subjects"`
	Weekdays []time.Weekday `json:"weekdays"`
	Dates    []time.Time    `json:"dates"`
}

var frenchCollator = collate.New(language.French)

// slotWeekday конвертирует нумерацию дней слота (0 = понедельник)
// в time.Weekday (0 = воскресенье). Единственное место конвертации
func slotWeekday(dayOfWeek int) time.Weekday {
	return time.Weekday((dayOfWeek + 1) % 7)
}

// truncateToDay отбрасывает время суток, оставляя локальную дату
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Resolve вычисляет окно доступности студента по привязанным к нему
// слотам: множество предметов, дни недели и конкретные даты в горизонте
// [today, today+horizonDays]. Дубликаты слотов по ID допустимы и
// отбрасываются. Пустой вход даёт пустое окно — это валидный сигнал
// "доступности нет", а не ошибка
func Resolve(assignedSlots []model.TimeSlot, horizonDays int, today time.Time) (Window, error) {
	if horizonDays < 0 {
		return Window{}, fmt.Errorf("horizon days must be non-negative, got %d", horizonDays)
	}

	seen := make(map[uuid.UUID]bool, len(assignedSlots))
	subjectSeen := make(map[string]bool)
	daySeen := make(map[int]bool)

	var window Window
	var days []int

	for _, slot := range assignedSlots {
		if _, err := validateSlot(slot); err != nil {
			return Window{}, err
		}
		if slot.ID != uuid.Nil && seen[slot.ID] {
			continue
		}
		seen[slot.ID] = true

		if subject := slot.Subject; strings.TrimSpace(subject) != "" && !subjectSeen[subject] {
			subjectSeen[subject] = true
			window.Subjects = append(window.Subjects, subject)
		}
		if !daySeen[slot.DayOfWeek] {
			daySeen[slot.DayOfWeek] = true
			days = append(days, slot.DayOfWeek)
		}
	}

	// Сортировка предметов с учётом локали; при равенстве сохраняется
	// порядок первого вхождения
	sort.SliceStable(window.Subjects, func(i, j int) bool {
		return frenchCollator.CompareString(window.Subjects[i], window.Subjects[j]) < 0
	})

	sort.Ints(days)
	allowed := make(map[time.Weekday]bool, len(days))
	for _, day := range days {
		wd := slotWeekday(day)
		window.Weekdays = append(window.Weekdays, wd)
		allowed[wd] = true
	}

	base := truncateToDay(today)
	for i := 0; i <= horizonDays; i++ {
		candidate := base.AddDate(0, 0, i)
		if allowed[candidate.Weekday()] {
			window.Dates = append(window.Dates, candidate)
		}
	}

	return window, nil
}

// IsAllowed проверяет, что пара (предмет, дата) входит в окно
// доступности. Пустое окно означает "ничего не разрешено": для
// студента без привязок заметки создавать нельзя. Проверка должна
// выполняться по свежему окну в момент сохранения заметки, а не по
// снимку, сделанному при открытии формы
func IsAllowed(subject string, date time.Time, window Window) bool {
	subjectOK := false
	for _, s := range window.Subjects {
		if s == subject {
			subjectOK = true
			break
		}
	}
	if !subjectOK {
		return false
	}

	for _, d := range window.Dates {
		if sameDay(d, date) {
			return true
		}
	}
	return false
}

// sameDay проверяет, что две даты приходятся на один календарный день
func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
