// Package progress вычисляет прогресс воспроизведения для отображения
package progress

import "time"

// Snapshot содержит прошедшее время и долю проигранного трека
type Snapshot struct {
	Elapsed  time.Duration
	Total    time.Duration
	Fraction float64 // Всегда в диапазоне [0, 1]
}

// Fraction возвращает долю elapsed от total, ограниченную диапазоном [0, 1].
// Позиция движка у конца трека может ненадолго превысить известную длительность.
func Fraction(elapsed, total time.Duration) float64 {
	if total <= 0 || elapsed <= 0 {
		return 0
	}
	f := float64(elapsed) / float64(total)
	if f > 1 {
		return 1
	}
	return f
}

// Compute строит снимок прогресса по позиции движка
func Compute(position, total time.Duration) Snapshot {
	if position < 0 {
		position = 0
	}
	return Snapshot{
		Elapsed:  position,
		Total:    total,
		Fraction: Fraction(position, total),
	}
}

// Complete возвращает снимок полностью проигранного трека
func Complete(total time.Duration) Snapshot {
	return Snapshot{Elapsed: total, Total: total, Fraction: 1}
}
