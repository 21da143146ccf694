// Package app содержит основную логику TUI приложения
package app

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hazadus/go-ricarmix/internal/session"
	tuiPlayer "github.com/hazadus/go-ricarmix/internal/tui/player"
	"github.com/hazadus/go-ricarmix/internal/tui/tracklist"
)

var (
	playerPaneStyle = lipgloss.NewStyle().Padding(1, 2)
	helpStyle       = lipgloss.NewStyle().PaddingLeft(4).PaddingBottom(1)
	quitTextStyle   = lipgloss.NewStyle().Margin(1, 0, 2, 4)
)

// playerPaneHeight высота панели плеера вместе с отступами
const playerPaneHeight = 14

// tickMsg запускает очередную синхронизацию прогресса
type tickMsg time.Time

// MainModel представляет главную модель TUI
type MainModel struct {
	session          *session.Session
	progressInterval time.Duration
	tracklistModel   *tracklist.Model
	playerModel      *tuiPlayer.Model
	keys             keyMap
	help             help.Model
	quitting         bool
}

// NewMainModel создает главную модель над сессией
func NewMainModel(s *session.Session, progressInterval time.Duration) *MainModel {
	return &MainModel{
		session:          s,
		progressInterval: progressInterval,
		tracklistModel:   tracklist.NewModel(s.Tracks()),
		playerModel:      tuiPlayer.NewModel(),
		keys:             defaultKeyMap(),
		help:             help.New(),
	}
}

// Init показывает начальное состояние и запускает синхронизацию прогресса.
// Для пустого плейлиста синхронизация не запускается.
func (m *MainModel) Init() tea.Cmd {
	cmd := m.apply(m.session.Start())
	if m.session.IsEmpty() {
		return cmd
	}
	return tea.Batch(cmd, m.tick())
}

// Update обрабатывает сообщения
func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, m.dispatch(session.Quit)
		case key.Matches(msg, m.keys.Next):
			return m, m.dispatch(session.NavigateNext)
		case key.Matches(msg, m.keys.Previous):
			return m, m.dispatch(session.NavigatePrevious)
		case key.Matches(msg, m.keys.Toggle):
			return m, m.dispatch(session.TogglePlayPause)
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
		return m, nil

	case tickMsg:
		if m.quitting {
			return m, nil
		}
		return m, tea.Batch(m.apply(m.session.SampleProgress()), m.tick())

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.tracklistModel.SetSize(msg.Width, msg.Height-playerPaneHeight)
		var cmd tea.Cmd
		m.playerModel, cmd = m.playerModel.Update(msg)
		return m, cmd

	case progress.FrameMsg:
		var cmd tea.Cmd
		m.playerModel, cmd = m.playerModel.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View отображает интерфейс
func (m *MainModel) View() string {
	if m.quitting {
		return quitTextStyle.Render("До свидания!")
	}

	sections := []string{playerPaneStyle.Render(m.playerModel.View())}
	if m.tracklistModel.Len() > 0 {
		sections = append(sections, m.tracklistModel.View())
	}
	sections = append(sections, helpStyle.Render(m.help.View(m.keys)))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// Close освобождает аудиодвижок
func (m *MainModel) Close() error {
	return m.session.Close()
}

// dispatch передает событие сессии и применяет результат
func (m *MainModel) dispatch(event session.Event) tea.Cmd {
	return m.apply(m.session.Dispatch(event))
}

// apply переносит команды сессии на экран
func (m *MainModel) apply(commands []session.Command) tea.Cmd {
	var cmds []tea.Cmd
	for _, c := range commands {
		switch c := c.(type) {
		case session.TrackChanged:
			m.tracklistModel.Select(c.Index)
			m.playerModel.SetTrack(c.Title, c.Duration)
		case session.ProgressChanged:
			cmds = append(cmds, m.playerModel.SetProgress(c.Elapsed, c.Fraction))
		case session.PlayStateChanged:
			m.playerModel.SetPlaying(c.Playing)
		case session.StatusChanged:
			m.playerModel.SetStatus(c.Text)
		case session.QuitRequested:
			m.quitting = true
			cmds = append(cmds, tea.Quit)
		}
	}
	return tea.Batch(cmds...)
}

func (m *MainModel) tick() tea.Cmd {
	return tea.Tick(m.progressInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
