package utils

import (
	"fmt"
	"strings"
	"time"
)

const (
	MonthLayout = "2006-01"
	DateLayout  = time.DateOnly
)

// ParseDate aceita datas no formato YYYY-MM-DD ou YYYY-MM (primeiro dia do mês).
// String vazia retorna nil, sem erro.
func ParseDate(dateStr string) (*time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return nil, nil
	}

	if date, err := time.Parse(DateLayout, dateStr); err == nil {
		return &date, nil
	}

	date, err := time.Parse(MonthLayout, dateStr)
	if err != nil {
		return nil, fmt.Errorf("data inválida %q: use YYYY-MM-DD ou YYYY-MM", dateStr)
	}

	return &date, nil
}

// ParseMonth converte YYYY-MM para o primeiro dia do mês em UTC
func ParseMonth(monthStr string) (time.Time, error) {
	month, err := time.Parse(MonthLayout, strings.TrimSpace(monthStr))
	if err != nil {
		return time.Time{}, fmt.Errorf("mês inválido %q: use YYYY-MM", monthStr)
	}
	return month, nil
}

// FirstDayOfMonth normaliza uma data para o primeiro dia do seu mês
func FirstDayOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// MonthKey retorna a chave YYYY-MM usada para agrupar vendas por mês
func MonthKey(t time.Time) string {
	return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
}
