package app

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hazadus/go-ricarmix/internal/data"
	"github.com/hazadus/go-ricarmix/internal/player/playertest"
	"github.com/hazadus/go-ricarmix/internal/playlist"
	"github.com/hazadus/go-ricarmix/internal/session"
)

func newTestModel(tracks ...data.Track) (*MainModel, *playertest.Engine) {
	engine := playertest.NewEngine()
	s := session.New(playlist.New(tracks...), engine)
	return NewMainModel(s, time.Second), engine
}

func testTracks() []data.Track {
	return []data.Track{
		{Title: "Test Track A", Duration: 180 * time.Second, Path: "/music/a.mp3"},
		{Title: "Test Track B", Duration: 200 * time.Second, Path: "/music/b.mp3"},
	}
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestInitLoadsFirstTrack(t *testing.T) {
	model, engine := newTestModel(testTracks()...)

	if cmd := model.Init(); cmd == nil {
		t.Error("Expected tick command from Init")
	}

	if engine.Path() != "/music/a.mp3" {
		t.Errorf("Expected first track loaded, got %q", engine.Path())
	}
	if engine.IsAudible() {
		t.Error("Track should not play before user presses play")
	}
	if model.playerModel.IsPlaying() {
		t.Error("Expected pause icon initially")
	}
	if view := model.View(); !strings.Contains(view, "Test Track A") {
		t.Errorf("Expected first track in view, got:\n%s", view)
	}
}

func TestInitEmptyCatalog(t *testing.T) {
	model, _ := newTestModel()

	if cmd := model.Init(); cmd != nil {
		t.Error("Expected no progress ticks for empty catalog")
	}

	if model.playerModel.Status() != session.NoTracksMessage {
		t.Errorf("Expected status %q, got %q", session.NoTracksMessage, model.playerModel.Status())
	}
	if view := model.View(); !strings.Contains(view, session.NoTracksMessage) {
		t.Errorf("Expected no tracks message in view, got:\n%s", view)
	}

	// Навигация по пустому плейлисту ничего не ломает
	model.Update(keyPress("right"))
	model.Update(keyPress(" "))
	if model.quitting {
		t.Error("Navigation should not quit")
	}
}

func TestNavigationKeys(t *testing.T) {
	model, engine := newTestModel(testTracks()...)
	model.Init()

	model.Update(keyPress("down"))

	if model.tracklistModel.Index() != 1 {
		t.Errorf("Expected cursor on second track, got %d", model.tracklistModel.Index())
	}
	if engine.Path() != "/music/b.mp3" || !engine.IsAudible() {
		t.Error("Expected second track to play")
	}
	if !model.playerModel.IsPlaying() {
		t.Error("Expected play icon after navigation")
	}

	model.Update(keyPress("up"))
	if model.tracklistModel.Index() != 0 {
		t.Errorf("Expected cursor on first track, got %d", model.tracklistModel.Index())
	}
	if model.playerModel.Elapsed() != 0 {
		t.Errorf("Expected elapsed reset, got %v", model.playerModel.Elapsed())
	}
}

func TestToggleKey(t *testing.T) {
	model, engine := newTestModel(testTracks()...)
	model.Init()

	model.Update(keyPress(" "))
	if !engine.IsAudible() || !model.playerModel.IsPlaying() {
		t.Fatal("Expected playback to start")
	}

	engine.Seek(20 * time.Second)
	model.Update(keyPress(" "))
	if engine.IsAudible() || model.playerModel.IsPlaying() {
		t.Error("Expected playback to pause")
	}
}

func TestTickUpdatesProgress(t *testing.T) {
	model, engine := newTestModel(testTracks()...)
	model.Init()
	model.Update(keyPress(" "))
	engine.Seek(90 * time.Second)

	_, cmd := model.Update(tickMsg(time.Now()))

	if cmd == nil {
		t.Error("Expected next tick to be scheduled")
	}
	if model.playerModel.Elapsed() != 90*time.Second {
		t.Errorf("Expected elapsed 90s, got %v", model.playerModel.Elapsed())
	}
	if model.playerModel.Fraction() != 0.5 {
		t.Errorf("Expected fraction 0.5, got %v", model.playerModel.Fraction())
	}
	if view := model.View(); !strings.Contains(view, "01:30 / 03:00") {
		t.Errorf("Expected time in view, got:\n%s", view)
	}
}

func TestTickWhilePausedKeepsDisplay(t *testing.T) {
	model, engine := newTestModel(testTracks()...)
	model.Init()

	engine.Seek(90 * time.Second)
	model.Update(tickMsg(time.Now()))

	if model.playerModel.Elapsed() != 0 {
		t.Errorf("Expected display to stay frozen, got %v", model.playerModel.Elapsed())
	}
}

func TestLoadFailureShowsStatus(t *testing.T) {
	model, engine := newTestModel(testTracks()...)
	engine.FailOn("/music/b.mp3", true)
	model.Init()

	model.Update(keyPress("n"))

	if model.playerModel.Status() == "" {
		t.Error("Expected error status after failed load")
	}
	if model.playerModel.IsPlaying() {
		t.Error("Expected pause icon after failed load")
	}

	model.Update(keyPress("left"))
	if model.playerModel.Status() != "" {
		t.Errorf("Expected status to be cleared, got %q", model.playerModel.Status())
	}
}

func TestQuitKeys(t *testing.T) {
	for _, k := range []string{"q", "ctrl+c"} {
		t.Run(k, func(t *testing.T) {
			model, engine := newTestModel(testTracks()...)
			model.Init()

			_, cmd := model.Update(keyPress(k))
			if cmd == nil {
				t.Fatal("Expected tea.Quit command")
			}
			if !model.quitting {
				t.Error("Expected model to be quitting")
			}

			if err := model.Close(); err != nil {
				t.Fatalf("Close returned error: %v", err)
			}
			_ = model.Close()
			if engine.Closed() != 1 {
				t.Errorf("Expected engine closed once, got %d", engine.Closed())
			}
		})
	}
}

func TestHelpToggle(t *testing.T) {
	model, _ := newTestModel(testTracks()...)
	model.Init()

	model.Update(keyPress("?"))
	if !model.help.ShowAll {
		t.Error("Expected full help after '?'")
	}
	if view := model.View(); !strings.Contains(view, "справка") {
		t.Errorf("Expected full help in view, got:\n%s", view)
	}
}
