// Package tui содержит компоненты для текстового пользовательского интерфейса
package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hazadus/go-ricarmix/internal/session"
	"github.com/hazadus/go-ricarmix/internal/tui/app"
)

// App представляет основное TUI приложение
type App struct {
	session          *session.Session
	progressInterval time.Duration
}

// NewApp создает новый экземпляр TUI приложения
func NewApp(s *session.Session, progressInterval time.Duration) *App {
	return &App{
		session:          s,
		progressInterval: progressInterval,
	}
}

// Run запускает TUI приложение и блокируется до выхода.
// Отмена ctx завершает программу без ошибки.
func (tuiApp *App) Run(ctx context.Context) error {
	model := app.NewMainModel(tuiApp.session, tuiApp.progressInterval)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		err = nil
	}

	// Освобождаем движок после завершения программы
	if closeErr := model.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	return err
}
