// Package playertest содержит движок-заглушку для тестов
package playertest

import (
	"errors"
	"sync"
	"time"

	"github.com/hazadus/go-ricarmix/internal/player"
)

// ErrBroken возвращается при загрузке файла, отмеченного через FailOn
var ErrBroken = errors.New("файл поврежден")

// Engine реализует player.Engine в памяти.
// Методы безопасны для вызова из нескольких горутин.
type Engine struct {
	mutex    sync.Mutex
	failOn   map[string]bool
	path     string
	audible  bool
	position time.Duration
	closed   int
}

var _ player.Engine = (*Engine)(nil)

// NewEngine создает пустой движок
func NewEngine() *Engine {
	return &Engine{
		failOn:   make(map[string]bool),
		position: player.NoPosition,
	}
}

func (e *Engine) Load(path string) error {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	e.audible = false
	e.position = player.NoPosition
	if e.failOn[path] {
		e.path = ""
		return ErrBroken
	}
	e.path = path
	return nil
}

func (e *Engine) Play() error {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	if e.path == "" {
		return player.ErrNothingLoaded
	}
	e.audible = true
	e.position = 0
	return nil
}

func (e *Engine) Pause() {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	e.audible = false
}

func (e *Engine) Resume() {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	if e.path != "" {
		e.audible = true
	}
}

func (e *Engine) Stop() {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	e.audible = false
	e.position = player.NoPosition
	e.path = ""
}

func (e *Engine) IsAudible() bool {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	return e.audible
}

func (e *Engine) Position() time.Duration {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	return e.position
}

func (e *Engine) Close() error {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	e.closed++
	e.audible = false
	return nil
}

// FailOn заставляет Load завершаться ошибкой для path (или снимает отметку)
func (e *Engine) FailOn(path string, fail bool) {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	if fail {
		e.failOn[path] = true
	} else {
		delete(e.failOn, path)
	}
}

// Seek выставляет позицию воспроизведения
func (e *Engine) Seek(position time.Duration) {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	e.position = position
}

// Finish имитирует окончание трека
func (e *Engine) Finish() {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	e.audible = false
	e.position = player.NoPosition
}

// Path возвращает путь загруженного файла
func (e *Engine) Path() string {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	return e.path
}

// Closed возвращает число вызовов Close
func (e *Engine) Closed() int {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	return e.closed
}
