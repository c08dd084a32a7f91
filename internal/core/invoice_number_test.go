package core_test

import (
	"testing"
	"time"

	"invoice-builder/internal/core"
)

func TestDefaultInvoiceNumber(t *testing.T) {
	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{
			name: "Afternoon",
			at:   time.Date(2024, 3, 11, 14, 25, 1, 0, time.Local),
			want: "20240311-142501",
		},
		{
			name: "Single-digit components zero-pad",
			at:   time.Date(2024, 1, 2, 3, 4, 5, 0, time.Local),
			want: "20240102-030405",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := core.DefaultInvoiceNumber(tt.at); got != tt.want {
				t.Errorf("DefaultInvoiceNumber(%v) = %q, want %q", tt.at, got, tt.want)
			}
		})
	}
}

func TestDefaultInvoiceDate(t *testing.T) {
	at := time.Date(2024, 9, 7, 23, 59, 0, 0, time.Local)
	if got := core.DefaultInvoiceDate(at); got != "2024-09-07" {
		t.Errorf("DefaultInvoiceDate = %q, want 2024-09-07", got)
	}
}
