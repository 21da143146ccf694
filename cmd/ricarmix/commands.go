package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-ricarmix/internal/config"
	"github.com/hazadus/go-ricarmix/internal/metadata"
	"github.com/hazadus/go-ricarmix/internal/player"
	"github.com/hazadus/go-ricarmix/internal/track"
)

// createRootCommand создает корневую команду с настроенными подкомандами.
// Без подкоманды запускается TUI.
func (app *Application) createRootCommand(ctx context.Context) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ricarmix",
		Short: "A terminal music player for a local folder",
		Long:  `A terminal music player: browse the tracks of a local folder and control playback from the keyboard.`,
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return app.prepare()
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return app.launchTUI(ctx)
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&app.configPath, "config", "c", defaultConfigPath, "path to the config file")
	rootCmd.PersistentFlags().StringVarP(&app.musicDir, "dir", "d", "", "folder with tracks (overrides music_dir)")

	// Добавляем команды, передавая в них экземпляр приложения и контекст
	rootCmd.AddCommand(app.createListCommand())
	rootCmd.AddCommand(app.createPlayCommand(ctx))
	rootCmd.AddCommand(app.createTUICommand(ctx))

	return rootCmd
}

// prepare загружает конфигурацию и собирает каталог треков.
// Заранее заданные Config и Tracks не перезаписываются.
func (app *Application) prepare() error {
	if app.Config == nil {
		cfg, err := config.LoadConfig(app.configPath)
		if err != nil {
			return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
		}
		app.Config = cfg
	}

	if app.musicDir != "" {
		dir, err := config.ExpandHome(app.musicDir)
		if err != nil {
			return err
		}
		app.Config.MusicDir = dir
	}

	if app.Tracks != nil {
		return nil
	}

	manager := track.NewManager(app.Config.MusicDir, app.Config.Extensions, metadata.NewExtractor(app.Config.UseTags))
	tracks, err := manager.ListTracks()
	if err != nil {
		return err
	}
	app.Tracks = tracks
	return nil
}

// openEngine создает и инициализирует аудиодвижок.
// Ошибка инициализации динамиков фатальна для запуска.
func (app *Application) openEngine() (player.Engine, error) {
	if app.newEngine != nil {
		return app.newEngine()
	}

	engine := player.NewBeepEngine()
	if err := engine.Init(); err != nil {
		return nil, err
	}
	return engine, nil
}
