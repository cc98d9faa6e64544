package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"tutorboard/internal/model"
	"tutorboard/internal/service"
)

// Notifier канал доставки уведомлений (Telegram в продакшене)
type Notifier interface {
	Send(ctx context.Context, text string) error
}

// BillingWatcher управляет фоновой проверкой задолженностей
type BillingWatcher struct {
	studentService *service.StudentService
	notifier       Notifier
	logger         *zap.Logger
	stopChan       chan struct{}
}

// NewBillingWatcher создаёт наблюдатель. notifier может быть nil —
// тогда алерты только логируются
func NewBillingWatcher(studentService *service.StudentService, notifier Notifier, logger *zap.Logger) *BillingWatcher {
	return &BillingWatcher{
		studentService: studentService,
		notifier:       notifier,
		logger:         logger,
		stopChan:       make(chan struct{}),
	}
}

// Start запускает фоновую проверку
func (w *BillingWatcher) Start(ctx context.Context) {
	w.logger.Info("Starting billing watcher")
	go w.run(ctx)
}

// Stop останавливает фоновую проверку
func (w *BillingWatcher) Stop() {
	w.logger.Info("Stopping billing watcher")
	close(w.stopChan)
}

// run периодически проверяет задолженности студентов
func (w *BillingWatcher) run(ctx context.Context) {
	// Первый запуск сразу при старте
	w.checkAlerts(ctx)

	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.checkAlerts(ctx)
		case <-w.stopChan:
			w.logger.Info("Billing watcher stopped")
			return
		case <-ctx.Done():
			w.logger.Info("Billing watcher cancelled")
			return
		}
	}
}

// checkAlerts находит студентов с превышенным порогом задолженности
func (w *BillingWatcher) checkAlerts(ctx context.Context) {
	students, err := w.studentService.BillingAlerts(ctx)
	if err != nil {
		w.logger.Error("Failed to check billing alerts", zap.Error(err))
		return
	}

	if len(students) == 0 {
		w.logger.Info("No billing alerts")
		return
	}

	w.logger.Warn("Billing alerts found",
		zap.Int("count", len(students)),
	)

	if w.notifier == nil {
		return
	}

	if err := w.notifier.Send(ctx, FormatBillingAlert(students)); err != nil {
		w.logger.Error("Failed to send billing notification", zap.Error(err))
	}
}

// FormatBillingAlert форматирует сводку по задолженностям
func FormatBillingAlert(students []*model.Student) string {
	var sb strings.Builder
	sb.WriteString("💰 Students over billing threshold:\n")

	for _, student := range students {
		sb.WriteString(fmt.Sprintf("• %s: %s due (threshold %s)\n",
			student.FullName,
			formatAmount(student.AmountDue),
			formatAmount(student.AlertThreshold),
		))
	}

	return sb.String()
}

// formatAmount форматирует сумму в центах как "12.50 €"
func formatAmount(cents int) string {
	return fmt.Sprintf("%d.%02d €", cents/100, cents%100)
}
