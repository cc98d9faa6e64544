// Package render рисует недельную сетку расписания в PNG.
// Геометрия слотов целиком приходит из пакета schedule — здесь
// только перевод готовой раскладки в пиксели на холсте.
package render

import (
	"bytes"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"tutorboard/internal/service"
)

// Константы размеров и отступов
const (
	imageWidth      = 1400
	headerHeight    = 80
	leftLabelsWidth = 80
	dayPaddingX     = 8
	slotPaddingY    = 2
	borderRadius    = 6.0
	totalDays       = 7
)

// Цветовая схема
var (
	bgColor        = color.RGBA{245, 246, 248, 255}
	textColor      = color.RGBA{80, 85, 90, 220}
	tickLabelColor = color.RGBA{110, 115, 120, 200}
	tickLineColor  = color.NRGBA{150, 150, 150, 255}
	evenDayColor   = color.NRGBA{240, 240, 240, 255}
	oddDayColor    = color.NRGBA{220, 220, 220, 255}

	slotColor     = color.RGBA{133, 193, 85, 220}
	slotEdgeColor = color.RGBA{106, 154, 68, 220}
	slotTextColor = color.RGBA{20, 24, 28, 230}
)

// Дни недели в порядке колонок сетки (0 = понедельник)
var dayLabels = [totalDays]string{
	"Lundi",
	"Mardi",
	"Mercredi",
	"Jeudi",
	"Vendredi",
	"Samedi",
	"Dimanche",
}

// WeekImage рисует недельную сетку в PNG. Высота холста зависит от
// диапазона оси: одна 30-минутная строка = DefaultRowHeightPx
func WeekImage(grid *service.WeekGrid) ([]byte, error) {
	rows := len(grid.Axis.Ticks) - 1
	if rows < 1 {
		rows = 1
	}

	rowHeight := service.DefaultRowHeightPx
	gridHeight := float64(rows) * rowHeight
	imageHeight := headerHeight + int(gridHeight)

	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetFontFace(basicfont.Face7x13)
	dc.SetColor(bgColor)
	dc.Clear()

	dayWidth := float64(imageWidth-leftLabelsWidth) / totalDays

	drawTickLabels(dc, grid, rowHeight)
	for day := 0; day < totalDays; day++ {
		x := float64(leftLabelsWidth) + float64(day)*dayWidth
		drawDayColumn(dc, grid, day, x, dayWidth, gridHeight, rowHeight)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// drawTickLabels рисует колонку подписей времени слева
func drawTickLabels(dc *gg.Context, grid *service.WeekGrid, rowHeight float64) {
	dc.SetColor(tickLabelColor)
	for i, label := range grid.TickLabels {
		y := float64(headerHeight) + float64(i)*rowHeight
		dc.DrawStringAnchored(label, leftLabelsWidth-10, y, 1, 0.5)
	}
}

// drawDayColumn рисует фон, заголовок, линии часов и слоты одного дня
func drawDayColumn(dc *gg.Context, grid *service.WeekGrid, day int, x, dayWidth, gridHeight, rowHeight float64) {
	y := float64(headerHeight)

	if day%2 == 0 {
		dc.SetColor(evenDayColor)
	} else {
		dc.SetColor(oddDayColor)
	}
	dc.DrawRectangle(x, y, dayWidth, gridHeight)
	dc.Fill()

	dc.SetColor(textColor)
	dc.DrawStringAnchored(dayLabels[day], x+dayWidth/2, y-20, 0.5, 0.5)

	dc.SetLineWidth(0.3)
	dc.SetColor(tickLineColor)
	for i := range grid.TickLabels {
		ty := y + float64(i)*rowHeight
		dc.DrawLine(x, ty, x+dayWidth, ty)
		dc.Stroke()
	}

	for _, placed := range grid.Days[day] {
		drawSlot(dc, placed, x, y, dayWidth)
	}
}

// drawSlot рисует карточку одного слота
func drawSlot(dc *gg.Context, placed service.SlotPlacement, x, y, dayWidth float64) {
	slotX := x + dayPaddingX
	slotY := y + placed.Placement.Top + slotPaddingY
	slotW := dayWidth - dayPaddingX*2
	slotH := placed.Placement.Height - slotPaddingY*2

	dc.SetColor(slotColor)
	dc.DrawRoundedRectangle(slotX, slotY, slotW, slotH, borderRadius)
	dc.Fill()

	dc.SetColor(slotEdgeColor)
	dc.SetLineWidth(1)
	dc.DrawRoundedRectangle(slotX, slotY, slotW, slotH, borderRadius)
	dc.Stroke()

	dc.SetColor(slotTextColor)
	txtX := slotX + 8
	txtY := slotY + 14
	dc.DrawStringAnchored(placed.Slot.StartTime+" "+placed.Slot.Subject, txtX, txtY, 0, 0)

	// Имена студентов, пока хватает места
	for i, student := range placed.Students {
		lineY := txtY + float64(i+1)*14
		if lineY > slotY+slotH-4 {
			break
		}
		dc.DrawStringAnchored(student.FullName, txtX, lineY, 0, 0)
	}
}
