package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/hazadus/go-ricarmix/internal/session"
	"github.com/hazadus/go-ricarmix/internal/track"
	"github.com/hazadus/go-ricarmix/internal/utils"
)

// createListCommand создает команду list с привязкой к экземпляру приложения
func (app *Application) createListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all tracks of the music folder",
		Long:  `Display the playlist built from the music folder in playback order.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			app.listTracks(cmd.OutOrStdout())
		},
	}
}

func (app *Application) listTracks(out io.Writer) {
	if len(app.Tracks) == 0 {
		fmt.Fprintf(out, "📚 %s: %s\n", session.NoTracksMessage, app.Config.MusicDir)
		return
	}

	fmt.Fprintf(out, "📚 Найдено треков: %d\n\n", len(app.Tracks))

	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Название", "Длительность", "Файл", "Размер"})

	for i, tr := range app.Tracks {
		t.AppendRow(table.Row{
			i + 1,
			utils.TruncateString(tr.Title, 50),
			utils.FormatClock(tr.Duration),
			filepath.Base(tr.Path),
			fileSize(tr.Path),
		})
	}

	t.AppendFooter(table.Row{"", "Всего", utils.FormatDuration(track.TotalDuration(app.Tracks)), "", ""})
	t.Render()

	fmt.Fprintln(out)
	fmt.Fprintln(out, "💡 Используйте 'ricarmix' или 'ricarmix play' для воспроизведения")
}

// fileSize возвращает размер файла для таблицы или "N/A"
func fileSize(path string) string {
	info, err := os.Stat(path)
	if err != nil {
		return "N/A"
	}
	return utils.FormatFileSize(info.Size())
}
