package player

import (
	"fmt"
	"time"

	"github.com/hazadus/go-ricarmix/internal/data"
)

// State представляет состояние контроллера воспроизведения
type State int

const (
	// Stopped - ничего не загружено
	Stopped State = iota
	// Loaded - трек загружен, но не звучит
	Loaded
	// Playing - трек воспроизводится
	Playing
	// Paused - трек на паузе
	Paused
)

// String возвращает название состояния для отображения
func (s State) String() string {
	switch s {
	case Stopped:
		return "Остановлено"
	case Loaded:
		return "Готово"
	case Playing:
		return "Воспроизведение"
	case Paused:
		return "Пауза"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Controller управляет состоянием воспроизведения поверх движка.
// Controller не синхронизирован: вызывающий код сериализует доступ.
type Controller struct {
	engine Engine
	state  State
	loaded *data.Track
}

// NewController создает контроллер в состоянии Stopped
func NewController(engine Engine) *Controller {
	return &Controller{
		engine: engine,
		state:  Stopped,
	}
}

// State возвращает текущее состояние
func (c *Controller) State() State {
	return c.state
}

// Loaded возвращает загруженный в движок трек
func (c *Controller) Loaded() (data.Track, bool) {
	if c.loaded == nil {
		return data.Track{}, false
	}
	return *c.loaded, true
}

// Position возвращает позицию воспроизведения загруженного трека
func (c *Controller) Position() time.Duration {
	return c.engine.Position()
}

// Load загружает трек в движок без запуска звука
func (c *Controller) Load(track data.Track) error {
	if err := c.engine.Load(track.Path); err != nil {
		c.state = Stopped
		c.loaded = nil
		return fmt.Errorf("%w %q: %w", ErrLoadFailed, track.Title, err)
	}

	c.loaded = &track
	c.state = Loaded
	return nil
}

// Play запускает загруженный трек или возобновляет его после паузы
func (c *Controller) Play() error {
	switch c.state {
	case Loaded:
		if err := c.engine.Play(); err != nil {
			c.engine.Stop()
			c.state = Stopped
			title := ""
			if c.loaded != nil {
				title = c.loaded.Title
			}
			c.loaded = nil
			return fmt.Errorf("%w %q: %w", ErrPlayFailed, title, err)
		}
		c.state = Playing
	case Paused:
		c.engine.Resume()
		c.state = Playing
	case Playing:
		// Уже играет
	case Stopped:
		return ErrNothingLoaded
	}
	return nil
}

// Pause ставит воспроизведение на паузу; в остальных состояниях ничего не делает
func (c *Controller) Pause() {
	if c.state != Playing {
		return
	}
	c.engine.Pause()
	c.state = Paused
}

// TogglePlayPause переключает паузу так же, как кнопка в интерфейсе.
// Позиция движка отличает "еще не запускался" от "на паузе посреди трека".
func (c *Controller) TogglePlayPause() error {
	if c.engine.IsAudible() {
		c.Pause()
		return nil
	}

	if c.engine.Position() == NoPosition {
		if c.loaded == nil {
			return ErrNothingLoaded
		}
		// Трек доиграл до конца: загружаем его заново
		if c.state != Loaded {
			if err := c.Load(*c.loaded); err != nil {
				return err
			}
		}
		return c.Play()
	}

	if c.state == Playing {
		// Движок молчит, хотя должен играть: выравниваем состояние и возобновляем
		c.state = Paused
	}
	return c.Play()
}

// ChangeTrack загружает трек и сразу запускает его.
// Пауза при переключении не сохраняется.
func (c *Controller) ChangeTrack(track data.Track) error {
	if err := c.Load(track); err != nil {
		return err
	}
	return c.Play()
}

// Stop останавливает воспроизведение и выгружает трек
func (c *Controller) Stop() {
	c.engine.Stop()
	c.state = Stopped
	c.loaded = nil
}

// IsPlaying возвращает true, если контроллер в состоянии Playing и движок звучит
func (c *Controller) IsPlaying() bool {
	return c.state == Playing && c.engine.IsAudible()
}

// Finished сообщает, что трек доиграл до конца
func (c *Controller) Finished() bool {
	return c.state == Playing && !c.engine.IsAudible() && c.engine.Position() == NoPosition
}
