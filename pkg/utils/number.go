package utils

import (
	"fmt"
	"math"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// FormatMoney formata um valor monetário para exibição com duas casas decimais
func FormatMoney(f float64) string {
	return fmt.Sprintf("%.2f", RoundWithTwoDecimalPlace(f))
}
