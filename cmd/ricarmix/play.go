package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/hazadus/go-ricarmix/internal/playlist"
	"github.com/hazadus/go-ricarmix/internal/session"
	"github.com/hazadus/go-ricarmix/internal/utils"
)

// createPlayCommand создает команду play с привязкой к экземпляру приложения
func (app *Application) createPlayCommand(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play the folder in the console",
		Long:  `Play the tracks of the music folder with single-key console controls, without the full-screen interface.`,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return app.playConsole(ctx, os.Stdin, os.Stdout)
		},
	}
}

func (app *Application) playConsole(ctx context.Context, in io.Reader, out io.Writer) error {
	closeLog, err := setupLogging(app.Config.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	engine, err := app.openEngine()
	if err != nil {
		return fmt.Errorf("ошибка инициализации аудио: %w", err)
	}

	fmt.Fprintf(out, "🎵 Треков в плейлисте: %d\r\n", len(app.Tracks))
	fmt.Fprintf(out, "🎮 Управление:\r\n")
	fmt.Fprintf(out, "   [Пробел] - пауза/воспроизведение\r\n")
	fmt.Fprintf(out, "   [n/→/↓] - следующий, [p/←/↑] - предыдущий\r\n")
	fmt.Fprintf(out, "   [q] - выход\r\n\r\n")

	// Включаем raw режим для чтения одиночных клавиш
	restore := enableRawMode(in)
	defer restore()

	events := make(chan session.Event, 16)
	go readKeys(ctx, in, events)

	s := session.New(playlist.New(app.Tracks...), engine)
	runner := session.NewRunner(s, events, newConsolePrinter(out), app.Config.ProgressInterval, app.Config.InputInterval)
	return runner.Run(ctx)
}

// enableRawMode переводит терминал в raw режим, если in является терминалом.
// Возвращает функцию восстановления.
func enableRawMode(in io.Reader) func() {
	f, ok := in.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return func() {}
	}

	oldState, err := term.MakeRaw(int(f.Fd()))
	if err != nil {
		return func() {}
	}
	return func() { _ = term.Restore(int(f.Fd()), oldState) }
}

// readKeys читает клавиши и превращает их в события.
// Канал закрывается, когда ввод закончился.
func readKeys(ctx context.Context, in io.Reader, events chan<- session.Event) {
	defer close(events)

	var decoder keyDecoder
	buf := make([]byte, 1)
	for {
		n, err := in.Read(buf)
		if err != nil {
			return
		}
		if n == 0 {
			continue
		}

		event, ok := decoder.feed(buf[0])
		if !ok {
			continue
		}

		select {
		case events <- event:
		case <-ctx.Done():
			return
		}
		if event == session.Quit {
			return
		}
	}
}

// keyDecoder разбирает одиночные клавиши и стрелки (ESC [ A..D)
type keyDecoder struct {
	escape int
}

func (d *keyDecoder) feed(b byte) (session.Event, bool) {
	switch d.escape {
	case 1:
		if b == '[' {
			d.escape = 2
			return 0, false
		}
		d.escape = 0
	case 2:
		d.escape = 0
		switch b {
		case 'C', 'B': // вправо, вниз
			return session.NavigateNext, true
		case 'D', 'A': // влево, вверх
			return session.NavigatePrevious, true
		}
		return 0, false
	}

	switch b {
	case 27:
		d.escape = 1
		return 0, false
	case 'n', 'N', 'l':
		return session.NavigateNext, true
	case 'p', 'P', 'h':
		return session.NavigatePrevious, true
	case ' ', '\r', '\n':
		return session.TogglePlayPause, true
	case 'q', 'Q', 3: // q, Q или Ctrl+C
		return session.Quit, true
	}
	return 0, false
}

// consolePrinter выводит команды сессии в консоль одной обновляемой строкой
type consolePrinter struct {
	mutex    sync.Mutex
	out      io.Writer
	bar      progress.Model
	duration time.Duration
	elapsed  time.Duration
	fraction float64
	playing  bool
	hasTrack bool
}

func newConsolePrinter(out io.Writer) *consolePrinter {
	return &consolePrinter{
		out: out,
		bar: progress.New(progress.WithDefaultGradient(), progress.WithWidth(30)),
	}
}

// Publish реализует session.Sink
func (p *consolePrinter) Publish(commands ...session.Command) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	for _, c := range commands {
		switch c := c.(type) {
		case session.TrackChanged:
			p.hasTrack = true
			p.duration = c.Duration
			p.elapsed, p.fraction = 0, 0
			fmt.Fprintf(p.out, "\r\033[K🎵 %d. %s [%s]\r\n", c.Index+1, c.Title, utils.FormatClock(c.Duration))
		case session.ProgressChanged:
			p.elapsed, p.fraction = c.Elapsed, c.Fraction
			p.render()
		case session.PlayStateChanged:
			p.playing = c.Playing
			p.render()
		case session.StatusChanged:
			if c.Text != "" {
				fmt.Fprintf(p.out, "\r\033[K⚠️  %s\r\n", c.Text)
			}
		case session.QuitRequested:
			fmt.Fprint(p.out, "\r\n⏹️  Воспроизведение остановлено\r\n")
		}
	}
}

// render перерисовывает строку прогресса
func (p *consolePrinter) render() {
	if !p.hasTrack {
		return
	}
	icon := "⏸️"
	if p.playing {
		icon = "▶️"
	}
	fmt.Fprintf(p.out, "\r\033[K%s  %s / %s %s",
		icon,
		utils.FormatClock(p.elapsed),
		utils.FormatClock(p.duration),
		p.bar.ViewAs(p.fraction))
}
