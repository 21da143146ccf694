package session

import "time"

// Event дискретное событие пользовательского ввода
type Event int

const (
	// NavigateNext - перейти к следующему треку
	NavigateNext Event = iota
	// NavigatePrevious - перейти к предыдущему треку
	NavigatePrevious
	// TogglePlayPause - пауза/воспроизведение
	TogglePlayPause
	// Quit - завершить работу
	Quit
)

// String возвращает имя события для логов
func (e Event) String() string {
	switch e {
	case NavigateNext:
		return "next"
	case NavigatePrevious:
		return "previous"
	case TogglePlayPause:
		return "toggle"
	case Quit:
		return "quit"
	default:
		return "unknown"
	}
}

// NoTracksMessage показывается, когда в папке нет ни одного трека
const NoTracksMessage = "Нет доступных треков"

// Command команда для отображения, которую выдает сессия
type Command interface {
	command()
}

// TrackChanged сообщает, что под курсором новый трек
type TrackChanged struct {
	Index    int
	Title    string
	Duration time.Duration
}

// ProgressChanged содержит новое значение прогресса
type ProgressChanged struct {
	Elapsed  time.Duration
	Fraction float64
}

// PlayStateChanged сообщает, какую иконку показать
type PlayStateChanged struct {
	Playing bool
}

// StatusChanged содержит текст строки состояния.
// Пустой текст очищает строку.
type StatusChanged struct {
	Text string
}

// QuitRequested сообщает, что пользователь завершает работу
type QuitRequested struct{}

func (TrackChanged) command()     {}
func (ProgressChanged) command()  {}
func (PlayStateChanged) command() {}
func (StatusChanged) command()    {}
func (QuitRequested) command()    {}

// Sink получает команды отображения
type Sink interface {
	Publish(commands ...Command)
}

// SinkFunc позволяет использовать функцию как Sink
type SinkFunc func(commands ...Command)

// Publish вызывает f(commands...)
func (f SinkFunc) Publish(commands ...Command) {
	f(commands...)
}
