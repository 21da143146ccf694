// Package audiotest содержит вспомогательные функции для тестов, работающих с аудиофайлами
package audiotest

import (
	"os"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

// Format формат генерируемых тестовых файлов
var Format = beep.Format{
	SampleRate:  beep.SampleRate(44100),
	NumChannels: 2,
	Precision:   2,
}

// WriteSilentWAV записывает WAV файл с тишиной указанной длительности
func WriteSilentWAV(t *testing.T, path string, duration time.Duration) {
	t.Helper()

	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("Ошибка создания тестового файла: %v", err)
	}
	defer file.Close()

	samples := Format.SampleRate.N(duration)
	if err := wav.Encode(file, beep.Silence(samples), Format); err != nil {
		t.Fatalf("Ошибка записи WAV: %v", err)
	}
}
