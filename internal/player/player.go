// Package player содержит компоненты для управления воспроизведением аудио
package player

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

// SpeakerSampleRate частота, с которой работает аудиовывод.
// Треки с другой частотой передискретизируются.
const SpeakerSampleRate = beep.SampleRate(44100)

// BeepEngine реализует Engine поверх beep/speaker
type BeepEngine struct {
	mutex         sync.Mutex
	closeOnce     sync.Once
	isInitialized bool

	// Компоненты для воспроизведения
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	started  bool
	finished *atomic.Bool
}

// NewBeepEngine создает новый движок. Перед воспроизведением нужно вызвать Init.
func NewBeepEngine() *BeepEngine {
	return &BeepEngine{}
}

// Init инициализирует динамики (только один раз)
func (e *BeepEngine) Init() error {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	if e.isInitialized {
		return nil
	}

	err := speaker.Init(SpeakerSampleRate, SpeakerSampleRate.N(time.Second/10))
	if err != nil {
		return fmt.Errorf("ошибка инициализации динамиков: %w", err)
	}
	e.isInitialized = true
	return nil
}

// Load декодирует файл и готовит его к воспроизведению
func (e *BeepEngine) Load(path string) error {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	// Останавливаем текущее воспроизведение, если есть
	e.stopInternal()

	streamer, format, err := Decode(path)
	if err != nil {
		return err
	}

	e.streamer = streamer
	e.format = format
	return nil
}

// Play начинает воспроизведение загруженного трека
func (e *BeepEngine) Play() error {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	if e.streamer == nil {
		return ErrNothingLoaded
	}
	if !e.isInitialized {
		return ErrSpeakerNotReady
	}
	if e.started {
		return nil
	}

	// Колбэк выполняется в горутине динамиков под их блокировкой,
	// поэтому он трогает только атомарный флаг
	finished := &atomic.Bool{}
	e.finished = finished

	resampled := beep.Resample(4, e.format.SampleRate, SpeakerSampleRate, e.streamer)
	e.ctrl = &beep.Ctrl{Streamer: resampled, Paused: false}
	e.started = true

	speaker.Play(beep.Seq(e.ctrl, beep.Callback(func() {
		finished.Store(true)
	})))

	return nil
}

// Pause приостанавливает воспроизведение
func (e *BeepEngine) Pause() {
	e.setPaused(true)
}

// Resume возобновляет воспроизведение
func (e *BeepEngine) Resume() {
	e.setPaused(false)
}

func (e *BeepEngine) setPaused(paused bool) {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	if e.ctrl != nil {
		speaker.Lock()
		e.ctrl.Paused = paused
		speaker.Unlock()
	}
}

// Stop останавливает воспроизведение и выгружает трек
func (e *BeepEngine) Stop() {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	e.stopInternal()
}

// stopInternal внутренний метод остановки (должен вызываться под мьютексом)
func (e *BeepEngine) stopInternal() {
	if e.ctrl != nil {
		speaker.Clear()
		e.ctrl = nil
	}

	if e.streamer != nil {
		e.streamer.Close()
		e.streamer = nil
	}

	e.started = false
	e.finished = nil
}

// IsAudible возвращает true, если трек сейчас звучит
func (e *BeepEngine) IsAudible() bool {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	if e.ctrl == nil || e.finished.Load() {
		return false
	}

	speaker.Lock()
	paused := e.ctrl.Paused
	speaker.Unlock()
	return !paused
}

// Position возвращает позицию воспроизведения от начала трека
func (e *BeepEngine) Position() time.Duration {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	if e.streamer == nil || !e.started || e.finished.Load() {
		return NoPosition
	}

	speaker.Lock()
	pos := e.streamer.Position()
	speaker.Unlock()

	return e.format.SampleRate.D(pos)
}

// Close останавливает воспроизведение и освобождает динамики.
// Повторные вызовы ничего не делают.
func (e *BeepEngine) Close() error {
	e.closeOnce.Do(func() {
		e.mutex.Lock()
		defer e.mutex.Unlock()

		e.stopInternal()
		if e.isInitialized {
			speaker.Close()
			e.isInitialized = false
		}
	})
	return nil
}

// Decode открывает файл и выбирает декодер по расширению
func Decode(path string) (beep.StreamSeekCloser, beep.Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".mp3" && ext != ".wav" {
		return nil, beep.Format{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, fmt.Errorf("ошибка открытия файла: %w", err)
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext {
	case ".mp3":
		streamer, format, err = mp3.Decode(file)
	case ".wav":
		streamer, format, err = wav.Decode(file)
	}
	if err != nil {
		file.Close()
		return nil, beep.Format{}, fmt.Errorf("ошибка декодирования %s: %w", ext, err)
	}

	return streamer, format, nil
}
