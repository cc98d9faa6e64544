package app

import (
	"context"
	"strings"
	"testing"

	"tutorboard/internal/model"
)

// Start принимает контекст процесса — так его вызывает main
var _ func(context.Context) = (&BillingWatcher{}).Start

func TestFormatBillingAlert(t *testing.T) {
	students := []*model.Student{
		{FullName: "Marie Dupont", AmountDue: 12550, AlertThreshold: 10000},
		{FullName: "Jean Martin", AmountDue: 500, AlertThreshold: 100},
	}

	text := FormatBillingAlert(students)

	if !strings.Contains(text, "Marie Dupont: 125.50 € due (threshold 100.00 €)") {
		t.Fatalf("unexpected alert text: %q", text)
	}
	if !strings.Contains(text, "Jean Martin: 5.00 € due (threshold 1.00 €)") {
		t.Fatalf("unexpected alert text: %q", text)
	}
}
