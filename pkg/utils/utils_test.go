package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *time.Time
		wantErr  bool
	}{
		{name: "Vazio", input: "", expected: nil},
		{name: "Data completa", input: "2024-01-15", expected: datePtr(2024, time.January, 15)},
		{name: "Apenas mês", input: "2024-02", expected: datePtr(2024, time.February, 1)},
		{name: "Formato inválido", input: "15/01/2024", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseMonth(t *testing.T) {
	month, err := ParseMonth("2024-03")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), month)

	_, err = ParseMonth("2024-13")
	assert.Error(t, err)
}

func TestMonthKey(t *testing.T) {
	assert.Equal(t, "2024-01", MonthKey(time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC)))
	assert.Equal(t, "0999-12", MonthKey(time.Date(999, time.December, 1, 0, 0, 0, 0, time.UTC)))
}

func TestFirstDayOfMonth(t *testing.T) {
	got := FirstDayOfMonth(time.Date(2024, time.May, 31, 23, 59, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "30.00", FormatMoney(30))
	assert.Equal(t, "0.30", FormatMoney(0.1+0.2))
	assert.Equal(t, "0.00", FormatMoney(0))
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()
	require.NoError(t, err)
	assert.Len(t, id, sessionIDLength)
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}
