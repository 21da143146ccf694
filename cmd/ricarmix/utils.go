package main

import (
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"
)

// setupLogging перенаправляет лог в файл, пока интерфейс занимает терминал.
// Без файла лог отбрасывается. Возвращает функцию закрытия.
func setupLogging(logFile string) (func(), error) {
	if logFile == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	f, err := tea.LogToFile(logFile, "ricarmix")
	if err != nil {
		return nil, err
	}
	return func() { _ = f.Close() }, nil
}
