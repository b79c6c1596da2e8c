package catalog

import (
	"math"
	"time"
)

// DiffPercent compara o estoque Marsil contra o Boraceia em percentual.
// Marsil 100 x Boraceia 20 resulta em 400 (Marsil tem 400% a mais).
// Com ambos zerados o resultado é 0; com só o Boraceia zerado, 100.
func DiffPercent(marsil, boraceia int) float64 {
	if marsil == 0 && boraceia == 0 {
		return 0
	}
	if boraceia == 0 {
		return 100
	}
	diff := (float64(marsil-boraceia) / float64(boraceia)) * 100
	return math.Round(diff*100) / 100
}

// WithinLast7Days informa se o timestamp ISO cai dentro dos últimos 7 dias
// em relação a now. Timestamps ilegíveis contam como fora da janela.
func WithinLast7Days(isoTimestamp string, now time.Time) bool {
	t, err := time.Parse(time.RFC3339, isoTimestamp)
	if err != nil {
		return false
	}
	diff := now.Sub(t)
	if diff < 0 {
		diff = -diff
	}
	return diff <= 7*24*time.Hour
}
