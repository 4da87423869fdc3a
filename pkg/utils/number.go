package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// PercentChange calcula a variação percentual de prev para cur; 0 quando prev é 0
func PercentChange(prev, cur float64) float64 {
	if prev == 0 {
		return 0
	}
	return RoundWithTwoDecimalPlace((cur - prev) / prev * 100)
}

// MicrosToUnits converte valores em micros do Google Ads para a moeda da conta
func MicrosToUnits(micros int64) float64 {
	return RoundWithTwoDecimalPlace(float64(micros) / 1_000_000)
}
