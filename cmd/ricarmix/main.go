package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/hazadus/go-ricarmix/internal/config"
	"github.com/hazadus/go-ricarmix/internal/data"
	"github.com/hazadus/go-ricarmix/internal/player"
)

const (
	defaultConfigPath = "~/.ricarmix.yaml"
)

// Application хранит конфигурацию и каталог треков для всех команд
type Application struct {
	Config *config.Config
	Tracks []data.Track

	// Флаги командной строки
	configPath string
	musicDir   string

	// newEngine создает аудиодвижок; nil означает динамики через beep
	newEngine func() (player.Engine, error)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	app := &Application{}
	err := app.createRootCommand(ctx).ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
