package schedule

import (
	"fmt"
	"sort"

	"tutorboard/internal/model"
)

// Константы временной оси
const (
	// AxisStepMinutes шаг засечек и округления границ оси
	AxisStepMinutes = 30

	// DefaultAxisStartMinutes нижняя граница оси по умолчанию (08:00)
	DefaultAxisStartMinutes = 8 * 60

	// DefaultAxisEndMinutes верхняя граница оси по умолчанию (20:00)
	DefaultAxisEndMinutes = 20 * 60

	minutesPerDay = 24 * 60
)

// Axis описывает общую временную ось недельной сетки
type Axis struct {
	StartMinutes int   `json:"start_minutes"`
	EndMinutes   int   `json:"end_minutes"`
	Ticks        []int `json:"ticks"` // засечки каждые 30 минут, включая обе границы
}

// Placement описывает вертикальное положение слота на сетке
type Placement struct {
	Top    float64 `json:"top"`
	Height float64 `json:"height"`
}

// ParseStartTime парсит время начала слота в формате "HH:MM" (24 часа)
// и возвращает минуты от полуночи
func ParseStartTime(value string) (int, error) {
	if len(value) != 5 || value[2] != ':' {
		return 0, fmt.Errorf("invalid start time %q: expected HH:MM", value)
	}
	for _, i := range []int{0, 1, 3, 4} {
		if value[i] < '0' || value[i] > '9' {
			return 0, fmt.Errorf("invalid start time %q: expected HH:MM", value)
		}
	}

	hours := int(value[0]-'0')*10 + int(value[1]-'0')
	minutes := int(value[3]-'0')*10 + int(value[4]-'0')
	if hours > 23 {
		return 0, fmt.Errorf("invalid start time %q: hour out of range", value)
	}
	if minutes > 59 {
		return 0, fmt.Errorf("invalid start time %q: minute out of range", value)
	}

	return hours*60 + minutes, nil
}

// FormatMinutes форматирует минуты от полуночи как "HH:MM"
func FormatMinutes(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// validateSlot проверяет поля слота и возвращает минуты начала.
// Невалидный слот — ошибка программиста выше по стеку, поэтому
// никакие значения не подрезаются молча.
func validateSlot(slot model.TimeSlot) (int, error) {
	if slot.DayOfWeek < 0 || slot.DayOfWeek > 6 {
		return 0, fmt.Errorf("slot %s: day of week %d out of range [0..6]", slot.ID, slot.DayOfWeek)
	}
	if slot.DurationMinutes <= 0 {
		return 0, fmt.Errorf("slot %s: duration must be positive, got %d", slot.ID, slot.DurationMinutes)
	}

	start, err := ParseStartTime(slot.StartTime)
	if err != nil {
		return 0, fmt.Errorf("slot %s: %w", slot.ID, err)
	}

	if start+slot.DurationMinutes > minutesPerDay {
		return 0, fmt.Errorf("slot %s: ends past midnight (%s + %d min)", slot.ID, slot.StartTime, slot.DurationMinutes)
	}

	return start, nil
}

// ValidateSlot проверяет поля слота перед сохранением или раскладкой
func ValidateSlot(slot model.TimeSlot) error {
	_, err := validateSlot(slot)
	return err
}

// ComputeAxis вычисляет границы и засечки общей временной оси.
// Границы покрывают минимальное начало и максимальный конец всех слотов,
// расширенные наружу до ближайших 30 минут; при пустом наборе слотов
// ось по умолчанию 08:00-20:00
func ComputeAxis(slots []model.TimeSlot) (Axis, error) {
	minStart := DefaultAxisStartMinutes
	maxEnd := DefaultAxisEndMinutes

	for _, slot := range slots {
		start, err := validateSlot(slot)
		if err != nil {
			return Axis{}, err
		}

		end := start + slot.DurationMinutes
		if start < minStart {
			minStart = start
		}
		if end > maxEnd {
			maxEnd = end
		}
	}

	axis := Axis{
		StartMinutes: minStart / AxisStepMinutes * AxisStepMinutes,
		EndMinutes:   (maxEnd + AxisStepMinutes - 1) / AxisStepMinutes * AxisStepMinutes,
	}
	for t := axis.StartMinutes; t <= axis.EndMinutes; t += AxisStepMinutes {
		axis.Ticks = append(axis.Ticks, t)
	}

	return axis, nil
}

// PlaceSlot вычисляет вертикальное положение слота на сетке с заданной
// высотой 30-минутной строки. Пересечения слотов не разрешаются:
// пересекающиеся по времени слоты позиционируются независимо
func PlaceSlot(slot model.TimeSlot, axis Axis, rowHeightPx float64) (Placement, error) {
	start, err := validateSlot(slot)
	if err != nil {
		return Placement{}, err
	}

	return Placement{
		Top:    float64(start-axis.StartMinutes) / AxisStepMinutes * rowHeightPx,
		Height: float64(slot.DurationMinutes) / AxisStepMinutes * rowHeightPx,
	}, nil
}

// GroupByDay раскладывает слоты по семи колонкам недели (0 = понедельник).
// День без слотов даёт пустую колонку. Внутри колонки слоты отсортированы
// по времени начала
func GroupByDay(slots []model.TimeSlot) ([7][]model.TimeSlot, error) {
	var days [7][]model.TimeSlot
	starts := make(map[string]int, len(slots))

	for _, slot := range slots {
		start, err := validateSlot(slot)
		if err != nil {
			return days, err
		}
		starts[slot.ID.String()] = start
		days[slot.DayOfWeek] = append(days[slot.DayOfWeek], slot)
	}

	for day := range days {
		bucket := days[day]
		sort.SliceStable(bucket, func(i, j int) bool {
			return starts[bucket[i].ID.String()] < starts[bucket[j].ID.String()]
		})
	}

	return days, nil
}
