// Package data содержит базовые типы данных приложения
package data

import (
	"path/filepath"
	"strings"
	"time"
)

// Track описывает один аудиотрек плейлиста.
// Значение неизменяемо после создания.
type Track struct {
	Title    string        // Отображаемое название
	Duration time.Duration // Длительность трека
	Path     string        // Путь к медиафайлу, передается движку
}

// NewTrack создает трек, выводя название из имени файла
func NewTrack(path string, duration time.Duration) Track {
	if duration < 0 {
		duration = 0
	}
	return Track{
		Title:    TitleFromPath(path),
		Duration: duration,
		Path:     path,
	}
}

// TitleFromPath возвращает имя файла без расширения
func TitleFromPath(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}
