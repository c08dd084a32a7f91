package render_test

import (
	"testing"

	"invoice-builder/internal/render"
)

func TestMoney(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"Zero", "0", "$0.00"},
		{"Cents only", "0.5", "$0.50"},
		{"Thousands grouping", "1234.5", "$1,234.50"},
		{"Millions grouping", "1234567.89", "$1,234,567.89"},
		{"Rounds half up to cents", "30.285", "$30.29"},
		{"Truncates nothing below cents", "2.999", "$3.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := render.Money(dec(tt.value)); got != tt.want {
				t.Errorf("Money(%s) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestQuantity(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"2", "2"},
		{"2.50", "2.5"},
		{"0", "0"},
	}

	for _, tt := range tests {
		if got := render.Quantity(dec(tt.value)); got != tt.want {
			t.Errorf("Quantity(%s) = %q, want %q", tt.value, got, tt.want)
		}
	}
}
