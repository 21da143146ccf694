// Package track содержит логику получения списка треков
package track

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/hazadus/go-ricarmix/internal/data"
	"github.com/hazadus/go-ricarmix/internal/metadata"
)

// Manager собирает треки из папки с музыкой
type Manager struct {
	dir        string
	extensions []string
	extractor  *metadata.Extractor
}

// NewManager создает новый экземпляр Manager
func NewManager(dir string, extensions []string, extractor *metadata.Extractor) *Manager {
	return &Manager{
		dir: dir,
		extensions: lo.Map(extensions, func(ext string, _ int) string {
			return strings.ToLower(ext)
		}),
		extractor: extractor,
	}
}

// Dir возвращает папку, из которой читаются треки
func (m *Manager) Dir() string {
	return m.dir
}

// ListTracks возвращает треки папки в порядке имен файлов.
// Файлы, которые не удалось прочитать, пропускаются.
func (m *Manager) ListTracks() ([]data.Track, error) {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения папки с треками: %w", err)
	}

	files := lo.Filter(entries, func(entry os.DirEntry, _ int) bool {
		return !entry.IsDir() && m.isSupported(entry.Name())
	})

	tracks := make([]data.Track, 0, len(files))
	for _, file := range files {
		path := filepath.Join(m.dir, file.Name())
		title, duration, err := m.extractor.GetFileInfo(path)
		if err != nil {
			log.Printf("Пропускаем %s: %v", path, err)
			continue
		}
		tracks = append(tracks, data.Track{
			Title:    title,
			Duration: duration,
			Path:     path,
		})
	}

	return tracks, nil
}

func (m *Manager) isSupported(name string) bool {
	return lo.Contains(m.extensions, strings.ToLower(filepath.Ext(name)))
}

// TotalDuration возвращает суммарную длительность треков
func TotalDuration(tracks []data.Track) time.Duration {
	return lo.SumBy(tracks, func(t data.Track) time.Duration {
		return t.Duration
	})
}
