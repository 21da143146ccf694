package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-ricarmix/internal/playlist"
	"github.com/hazadus/go-ricarmix/internal/session"
	"github.com/hazadus/go-ricarmix/internal/tui"
)

// createTUICommand создает команду tui с привязкой к экземпляру приложения
func (app *Application) createTUICommand(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Launch TUI (Terminal User Interface)",
		Long:  `Launch interactive terminal user interface with the playlist and the player.`,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return app.launchTUI(ctx)
		},
	}
}

func (app *Application) launchTUI(ctx context.Context) error {
	closeLog, err := setupLogging(app.Config.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	engine, err := app.openEngine()
	if err != nil {
		return err
	}

	s := session.New(playlist.New(app.Tracks...), engine)
	defer s.Close()

	// Создаем экземпляр TUI приложения и запускаем его
	return tui.NewApp(s, app.Config.ProgressInterval).Run(ctx)
}
