package utils

import (
	"math"
	"strconv"
)

func RoundWithOneDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*10) / 10
}

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// FormatThousands formata um inteiro com separador de milhar (1234567 -> "1,234,567")
func FormatThousands(n int) string {
	s := strconv.Itoa(n)

	start := 0
	if n < 0 {
		start = 1
	}

	out := make([]byte, 0, len(s)+len(s)/3)
	for i := 0; i < len(s); i++ {
		if i > start && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, s[i])
	}

	return string(out)
}
