package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"

	"tutorboard/internal/model"
	"tutorboard/internal/render"
	"tutorboard/internal/service"
)

// Генерирует пример недельной сетки и сохраняет её в week.png.
// Удобно для проверки вёрстки картинки без поднятия сервера.
func main() {
	mathSlot := model.TimeSlot{
		ID:              uuid.New(),
		DayOfWeek:       0, // понедельник
		StartTime:       "09:00",
		DurationMinutes: 60,
		Subject:         "Mathématiques",
	}
	physSlot := model.TimeSlot{
		ID:              uuid.New(),
		DayOfWeek:       0,
		StartTime:       "14:00",
		DurationMinutes: 90,
		Subject:         "Physique",
	}
	engSlot := model.TimeSlot{
		ID:              uuid.New(),
		DayOfWeek:       2, // среда
		StartTime:       "10:30",
		DurationMinutes: 60,
		Subject:         "Anglais",
	}
	lateSlot := model.TimeSlot{
		ID:              uuid.New(),
		DayOfWeek:       4, // пятница
		StartTime:       "19:30",
		DurationMinutes: 90,
		Subject:         "Espagnol",
	}

	slots := []model.TimeSlot{mathSlot, physSlot, engSlot, lateSlot}

	assignments := []*model.Assignment{
		{
			ID:          uuid.New(),
			TimeSlotID:  mathSlot.ID,
			StudentID:   uuid.New(),
			StudentName: "Alice Martin",
		},
		{
			ID:          uuid.New(),
			TimeSlotID:  mathSlot.ID,
			StudentID:   uuid.New(),
			StudentName: "Bruno Leroy",
		},
		{
			ID:          uuid.New(),
			TimeSlotID:  engSlot.ID,
			StudentID:   uuid.New(),
			StudentName: "Chloé Dubois",
		},
	}

	grid, err := service.BuildWeekGrid(slots, assignments)
	if err != nil {
		fmt.Printf("Ошибка построения сетки: %v\n", err)
		os.Exit(1)
	}

	imageData, err := render.WeekImage(grid)
	if err != nil {
		fmt.Printf("Ошибка генерации изображения: %v\n", err)
		os.Exit(1)
	}

	filename := "week.png"
	if err := os.WriteFile(filename, imageData, 0644); err != nil {
		fmt.Printf("Ошибка сохранения файла: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Изображение успешно сохранено в %s\n", filename)
	fmt.Printf("📊 Слотов: %d\n", len(slots))
}
