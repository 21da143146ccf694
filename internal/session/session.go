// Package session связывает плейлист и контроллер воспроизведения
// и превращает события ввода и тики прогресса в команды отображения
package session

import (
	"log"
	"sync"

	"github.com/hazadus/go-ricarmix/internal/data"
	"github.com/hazadus/go-ricarmix/internal/player"
	"github.com/hazadus/go-ricarmix/internal/playlist"
	"github.com/hazadus/go-ricarmix/internal/progress"
)

// Session хранит общее состояние приложения.
// Все методы выполняются под одним мьютексом, поэтому навигация
// и опрос прогресса никогда не пересекаются.
type Session struct {
	mutex  sync.Mutex
	store  *playlist.Store
	ctrl   *player.Controller
	engine player.Engine

	// Конец трека уже показан
	finishedShown bool

	closeOnce sync.Once
	closeErr  error
}

// New создает сессию над заполненным плейлистом
func New(store *playlist.Store, engine player.Engine) *Session {
	return &Session{
		store:  store,
		ctrl:   player.NewController(engine),
		engine: engine,
	}
}

// IsEmpty сообщает, что в плейлисте нет треков
func (s *Session) IsEmpty() bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.store.IsEmpty()
}

// Tracks возвращает треки плейлиста по порядку
func (s *Session) Tracks() []data.Track {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.store.Tracks()
}

// State возвращает состояние контроллера воспроизведения
func (s *Session) State() player.State {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.ctrl.State()
}

// Start готовит начальное отображение: загружает текущий трек без запуска
// или сообщает, что треков нет
func (s *Session) Start() []Command {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	track, ok := s.store.Current()
	if !ok {
		return []Command{StatusChanged{Text: NoTracksMessage}}
	}

	commands := []Command{
		trackChanged(s.store.Index(), track),
		ProgressChanged{},
	}
	if err := s.ctrl.Load(track); err != nil {
		log.Printf("Ошибка загрузки трека: %v", err)
		commands = append(commands, StatusChanged{Text: err.Error()})
	}
	return append(commands, PlayStateChanged{Playing: false})
}

// Dispatch обрабатывает одно событие ввода и возвращает команды отображения
func (s *Session) Dispatch(event Event) []Command {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	switch event {
	case NavigateNext:
		return s.navigate(s.store.Advance)
	case NavigatePrevious:
		return s.navigate(s.store.Retreat)
	case TogglePlayPause:
		return s.toggle()
	case Quit:
		return []Command{QuitRequested{}}
	default:
		return nil
	}
}

// navigate сдвигает курсор и запускает новый трек (под мьютексом)
func (s *Session) navigate(move func() (data.Track, bool)) []Command {
	track, ok := move()
	if !ok {
		return nil
	}
	s.finishedShown = false

	commands := []Command{
		trackChanged(s.store.Index(), track),
		ProgressChanged{},
	}
	if err := s.ctrl.ChangeTrack(track); err != nil {
		log.Printf("Ошибка переключения трека: %v", err)
		return append(commands, StatusChanged{Text: err.Error()}, PlayStateChanged{Playing: false})
	}
	return append(commands, StatusChanged{}, PlayStateChanged{Playing: true})
}

// toggle переключает паузу (под мьютексом)
func (s *Session) toggle() []Command {
	track, ok := s.store.Current()
	if !ok {
		return nil
	}

	var commands []Command
	if s.finishedShown {
		// Трек начнется заново
		s.finishedShown = false
		commands = append(commands, ProgressChanged{})
	}

	var err error
	if s.ctrl.State() == player.Stopped {
		// Предыдущая загрузка не удалась: пробуем еще раз
		err = s.ctrl.ChangeTrack(track)
	} else {
		err = s.ctrl.TogglePlayPause()
	}
	if err != nil {
		log.Printf("Ошибка переключения паузы: %v", err)
		return append(commands, StatusChanged{Text: err.Error()}, PlayStateChanged{Playing: false})
	}

	return append(commands, StatusChanged{}, PlayStateChanged{Playing: s.ctrl.State() == player.Playing})
}

// SampleProgress выполняет один тик синхронизации прогресса.
// Пока ничего не играет, команд нет и отображение не меняется.
func (s *Session) SampleProgress() []Command {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	track, ok := s.ctrl.Loaded()
	if !ok {
		return nil
	}

	if s.ctrl.Finished() {
		if s.finishedShown {
			return nil
		}
		s.finishedShown = true
		snap := progress.Complete(track.Duration)
		return []Command{
			ProgressChanged{Elapsed: snap.Elapsed, Fraction: snap.Fraction},
			PlayStateChanged{Playing: false},
		}
	}

	if !s.ctrl.IsPlaying() {
		return nil
	}

	snap := progress.Compute(s.ctrl.Position(), track.Duration)
	return []Command{ProgressChanged{Elapsed: snap.Elapsed, Fraction: snap.Fraction}}
}

// Close останавливает воспроизведение и освобождает движок.
// Движок закрывается ровно один раз.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		s.mutex.Lock()
		defer s.mutex.Unlock()

		s.ctrl.Stop()
		s.closeErr = s.engine.Close()
	})
	return s.closeErr
}

func trackChanged(index int, track data.Track) TrackChanged {
	return TrackChanged{
		Index:    index,
		Title:    track.Title,
		Duration: track.Duration,
	}
}
