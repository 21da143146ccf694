// Package metadata предоставляет функционал для извлечения метаданных из аудио файлов
package metadata

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dhowden/tag"

	"github.com/hazadus/go-ricarmix/internal/player"
)

// unknownArtist подставляется, когда исполнителя не удалось определить
const unknownArtist = "Unknown Artist"

// TrackMetadata хранит метаданные трека
type TrackMetadata struct {
	Artist string
	Title  string
	Album  string
}

// Extractor извлекает метаданные из аудио файлов
type Extractor struct {
	useTags bool
}

// NewExtractor создает новый экстрактор метаданных.
// При useTags название трека берется из тегов файла, иначе из имени файла.
func NewExtractor(useTags bool) *Extractor {
	return &Extractor{useTags: useTags}
}

// ExtractFromReader извлекает метаданные из io.Reader
func (e *Extractor) ExtractFromReader(reader io.ReadSeeker, source string) TrackMetadata {
	// Сбрасываем reader в начало
	if _, err := reader.Seek(0, io.SeekStart); err != nil {
		return e.getDefaultMetadata(source)
	}

	metadata, err := tag.ReadFrom(reader)
	if err != nil {
		return e.getDefaultMetadata(source)
	}

	// Теги есть, но без названия
	if strings.TrimSpace(metadata.Title()) == "" {
		return e.getDefaultMetadata(source)
	}

	return TrackMetadata{
		Artist: metadata.Artist(),
		Title:  metadata.Title(),
		Album:  metadata.Album(),
	}
}

// ExtractFromFile извлекает метаданные из файла
func (e *Extractor) ExtractFromFile(filePath string) TrackMetadata {
	file, err := os.Open(filePath)
	if err != nil {
		return e.getDefaultMetadata(filePath)
	}
	defer file.Close()

	return e.ExtractFromReader(file, filePath)
}

// DisplayTitle возвращает название трека для плейлиста
func (e *Extractor) DisplayTitle(filePath string) string {
	fileName := filepath.Base(filePath)
	nameWithoutExt := strings.TrimSuffix(fileName, filepath.Ext(fileName))
	if !e.useTags {
		return nameWithoutExt
	}

	metadata := e.ExtractFromFile(filePath)
	if metadata.Artist == "" || metadata.Artist == unknownArtist {
		return metadata.Title
	}
	return metadata.Artist + " - " + metadata.Title
}

// GetDuration получает длительность аудио файла
func (e *Extractor) GetDuration(filePath string) (time.Duration, error) {
	streamer, format, err := player.Decode(filePath)
	if err != nil {
		return 0, err
	}
	defer streamer.Close()

	// Вычисляем длительность
	return format.SampleRate.D(streamer.Len()), nil
}

// GetFileInfo возвращает название и длительность файла
func (e *Extractor) GetFileInfo(filePath string) (string, time.Duration, error) {
	if _, err := os.Stat(filePath); err != nil {
		return "", 0, fmt.Errorf("ошибка получения информации о файле: %w", err)
	}

	duration, err := e.GetDuration(filePath)
	if err != nil {
		return "", 0, fmt.Errorf("ошибка получения длительности: %w", err)
	}

	return e.DisplayTitle(filePath), duration, nil
}

// getDefaultMetadata возвращает метаданные по умолчанию на основе имени файла
func (e *Extractor) getDefaultMetadata(source string) TrackMetadata {
	fileName := filepath.Base(source)
	nameWithoutExt := strings.TrimSuffix(fileName, filepath.Ext(fileName))

	// Пытаемся разобрать имя файла в формате "Artist - Title"
	parts := strings.Split(nameWithoutExt, " - ")
	if len(parts) >= 2 {
		return TrackMetadata{
			Artist: strings.TrimSpace(parts[0]),
			Title:  strings.TrimSpace(strings.Join(parts[1:], " - ")),
			Album:  "",
		}
	}

	// Если не удалось разобрать, используем имя файла как название
	return TrackMetadata{
		Artist: unknownArtist,
		Title:  nameWithoutExt,
		Album:  "",
	}
}
