// Package player содержит панель воспроизведения для TUI
package player

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hazadus/go-ricarmix/internal/utils"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#0000ff")).
			MarginBottom(1)

	trackInfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))

	statusStyle = lipgloss.NewStyle().
			Bold(true).
			MarginTop(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff0000")).
			Bold(true)
)

const (
	playIcon  = "▶️"
	pauseIcon = "⏸️"
)

// Model представляет панель текущего трека
type Model struct {
	title       string
	duration    time.Duration
	elapsed     time.Duration
	fraction    float64
	isPlaying   bool
	status      string
	progressBar progress.Model
	width       int
}

// NewModel создает пустую панель
func NewModel() *Model {
	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 40

	return &Model{
		progressBar: prog,
	}
}

// SetTrack показывает новый трек и сбрасывает прогресс
func (m *Model) SetTrack(title string, duration time.Duration) {
	m.title = title
	m.duration = duration
	m.elapsed = 0
	m.fraction = 0
}

// SetProgress обновляет время и прогресс-бар
func (m *Model) SetProgress(elapsed time.Duration, fraction float64) tea.Cmd {
	m.elapsed = elapsed
	m.fraction = fraction
	return m.progressBar.SetPercent(fraction)
}

// SetPlaying выбирает иконку воспроизведения или паузы
func (m *Model) SetPlaying(playing bool) {
	m.isPlaying = playing
}

// SetStatus задает текст строки состояния; пустая строка ее скрывает
func (m *Model) SetStatus(text string) {
	m.status = text
}

// IsPlaying возвращает true, если показана иконка воспроизведения
func (m *Model) IsPlaying() bool {
	return m.isPlaying
}

// Elapsed возвращает показанное прошедшее время
func (m *Model) Elapsed() time.Duration {
	return m.elapsed
}

// Fraction возвращает показанную долю прогресса
func (m *Model) Fraction() float64 {
	return m.fraction
}

// Status возвращает текст строки состояния
func (m *Model) Status() string {
	return m.status
}

// Update обрабатывает изменение размеров окна и анимацию прогресс-бара
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.progressBar.Width = max(10, min(60, msg.Width-10))
		return m, nil

	case progress.FrameMsg:
		progressModel, cmd := m.progressBar.Update(msg)
		m.progressBar = progressModel.(progress.Model)
		return m, cmd
	}

	return m, nil
}

// View отображает панель
func (m *Model) View() string {
	title := titleStyle.Render("🎵 Ricarmix")

	if m.title == "" {
		// Трек так и не был выбран: остается только сообщение
		return fmt.Sprintf("%s\n\n%s", title, errorStyle.Render(m.status))
	}

	trackInfo := trackInfoStyle.Render("🎤 " + m.title)

	icon := pauseIcon
	if m.isPlaying {
		icon = playIcon
	}
	statusText := statusStyle.Render(fmt.Sprintf("%s %s", icon, formatStatus(m.isPlaying)))

	timeText := fmt.Sprintf(
		"%s / %s",
		utils.FormatClock(m.elapsed),
		utils.FormatClock(m.duration),
	)

	view := fmt.Sprintf(
		"%s\n\n%s\n%s\n\n%s\n%s",
		title,
		trackInfo,
		statusText,
		m.progressBar.View(),
		timeText,
	)
	if m.status != "" {
		view += "\n\n" + errorStyle.Render(m.status)
	}
	return view
}

func formatStatus(isPlaying bool) string {
	if isPlaying {
		return "Воспроизведение"
	}
	return "Пауза"
}
