package player

import (
	"errors"
	"testing"
	"time"

	"github.com/hazadus/go-ricarmix/internal/data"
)

// fakeEngine имитирует аудиодвижок в памяти
type fakeEngine struct {
	loadErr  error
	playErr  error
	path     string
	audible  bool
	position time.Duration
	calls    []string
	closed   int
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{position: NoPosition}
}

func (f *fakeEngine) Load(path string) error {
	f.calls = append(f.calls, "load")
	f.audible = false
	f.position = NoPosition
	if f.loadErr != nil {
		f.path = ""
		return f.loadErr
	}
	f.path = path
	return nil
}

func (f *fakeEngine) Play() error {
	f.calls = append(f.calls, "play")
	if f.playErr != nil {
		return f.playErr
	}
	f.audible = true
	f.position = 0
	return nil
}

func (f *fakeEngine) Pause() {
	f.calls = append(f.calls, "pause")
	f.audible = false
}

func (f *fakeEngine) Resume() {
	f.calls = append(f.calls, "resume")
	f.audible = true
}

func (f *fakeEngine) Stop() {
	f.calls = append(f.calls, "stop")
	f.audible = false
	f.position = NoPosition
	f.path = ""
}

func (f *fakeEngine) IsAudible() bool         { return f.audible }
func (f *fakeEngine) Position() time.Duration { return f.position }

func (f *fakeEngine) Close() error {
	f.closed++
	return nil
}

// finish имитирует окончание трека
func (f *fakeEngine) finish() {
	f.audible = false
	f.position = NoPosition
}

var (
	trackA = data.Track{Title: "A", Duration: 180 * time.Second, Path: "/music/a.mp3"}
	trackB = data.Track{Title: "B", Duration: 200 * time.Second, Path: "/music/b.mp3"}
)

func TestControllerInitialState(t *testing.T) {
	ctrl := NewController(newFakeEngine())

	if ctrl.State() != Stopped {
		t.Errorf("Ожидалось состояние Stopped, получено %v", ctrl.State())
	}
	if _, ok := ctrl.Loaded(); ok {
		t.Error("В начальном состоянии не должно быть загруженного трека")
	}
	if ctrl.IsPlaying() {
		t.Error("Контроллер не должен воспроизводить в начальном состоянии")
	}
	if err := ctrl.Play(); !errors.Is(err, ErrNothingLoaded) {
		t.Errorf("Ожидалась ErrNothingLoaded, получено %v", err)
	}
}

func TestControllerLoad(t *testing.T) {
	engine := newFakeEngine()
	ctrl := NewController(engine)

	if err := ctrl.Load(trackA); err != nil {
		t.Fatalf("Ошибка загрузки: %v", err)
	}

	if ctrl.State() != Loaded {
		t.Errorf("Ожидалось состояние Loaded, получено %v", ctrl.State())
	}
	if engine.path != trackA.Path {
		t.Errorf("Движок получил путь %q вместо %q", engine.path, trackA.Path)
	}
	if engine.audible {
		t.Error("Load не должен запускать звук")
	}
	if loaded, _ := ctrl.Loaded(); loaded != trackA {
		t.Errorf("Ожидался загруженный трек %q, получено %q", trackA.Title, loaded.Title)
	}
}

func TestControllerTransitions(t *testing.T) {
	engine := newFakeEngine()
	ctrl := NewController(engine)
	_ = ctrl.Load(trackA)

	if err := ctrl.Play(); err != nil {
		t.Fatalf("Ошибка Play: %v", err)
	}
	if ctrl.State() != Playing || !ctrl.IsPlaying() {
		t.Fatalf("Ожидалось Playing, получено %v", ctrl.State())
	}

	// Повторный Play ничего не делает
	calls := len(engine.calls)
	if err := ctrl.Play(); err != nil {
		t.Errorf("Повторный Play вернул ошибку: %v", err)
	}
	if len(engine.calls) != calls {
		t.Errorf("Повторный Play не должен обращаться к движку: %v", engine.calls[calls:])
	}

	ctrl.Pause()
	if ctrl.State() != Paused || ctrl.IsPlaying() {
		t.Fatalf("Ожидалось Paused, получено %v", ctrl.State())
	}

	if err := ctrl.Play(); err != nil {
		t.Fatalf("Ошибка возобновления: %v", err)
	}
	if ctrl.State() != Playing {
		t.Errorf("Ожидалось Playing после возобновления, получено %v", ctrl.State())
	}
	if last := engine.calls[len(engine.calls)-1]; last != "resume" {
		t.Errorf("Play из паузы должен вызвать resume, вызвано %s", last)
	}
}

func TestControllerPauseIsNoopOutsidePlaying(t *testing.T) {
	engine := newFakeEngine()
	ctrl := NewController(engine)

	ctrl.Pause()
	if ctrl.State() != Stopped {
		t.Errorf("Pause в Stopped изменил состояние на %v", ctrl.State())
	}

	_ = ctrl.Load(trackA)
	ctrl.Pause()
	if ctrl.State() != Loaded {
		t.Errorf("Pause в Loaded изменил состояние на %v", ctrl.State())
	}

	for _, call := range engine.calls {
		if call == "pause" {
			t.Error("Движок не должен получать pause вне состояния Playing")
		}
	}
}

func TestControllerLoadFailure(t *testing.T) {
	engine := newFakeEngine()
	ctrl := NewController(engine)
	_ = ctrl.ChangeTrack(trackA)

	engine.loadErr = errors.New("файл поврежден")
	err := ctrl.Load(trackB)

	if !errors.Is(err, ErrLoadFailed) {
		t.Errorf("Ожидалась ErrLoadFailed, получено %v", err)
	}
	if ctrl.State() != Stopped {
		t.Errorf("После ошибки загрузки ожидалось Stopped, получено %v", ctrl.State())
	}
	if _, ok := ctrl.Loaded(); ok {
		t.Error("После ошибки загрузки не должно быть загруженного трека")
	}
}

func TestControllerPlayFailure(t *testing.T) {
	engine := newFakeEngine()
	engine.playErr = errors.New("нет устройства")
	ctrl := NewController(engine)

	err := ctrl.ChangeTrack(trackA)

	if !errors.Is(err, ErrPlayFailed) {
		t.Errorf("Ожидалась ErrPlayFailed, получено %v", err)
	}
	if ctrl.State() != Stopped {
		t.Errorf("После ошибки запуска ожидалось Stopped, получено %v", ctrl.State())
	}
}

func TestChangeTrackAlwaysPlays(t *testing.T) {
	tests := []struct {
		name  string
		setup func(c *Controller)
	}{
		{"from stopped", func(c *Controller) {}},
		{"from loaded", func(c *Controller) { _ = c.Load(trackA) }},
		{"from playing", func(c *Controller) { _ = c.ChangeTrack(trackA) }},
		{"from paused", func(c *Controller) {
			_ = c.ChangeTrack(trackA)
			c.Pause()
		}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			engine := newFakeEngine()
			ctrl := NewController(engine)
			test.setup(ctrl)

			if err := ctrl.ChangeTrack(trackB); err != nil {
				t.Fatalf("Ошибка ChangeTrack: %v", err)
			}
			if ctrl.State() != Playing {
				t.Errorf("Ожидалось Playing, получено %v", ctrl.State())
			}
			if loaded, _ := ctrl.Loaded(); loaded != trackB {
				t.Errorf("Ожидался трек %q, получено %q", trackB.Title, loaded.Title)
			}
			if engine.position != 0 {
				t.Errorf("Позиция должна начинаться с нуля, получено %v", engine.position)
			}
		})
	}
}

func TestTogglePlayPause(t *testing.T) {
	engine := newFakeEngine()
	ctrl := NewController(engine)

	if err := ctrl.TogglePlayPause(); !errors.Is(err, ErrNothingLoaded) {
		t.Errorf("Ожидалась ErrNothingLoaded без трека, получено %v", err)
	}

	_ = ctrl.Load(trackA)

	// Свежезагруженный трек запускается
	if err := ctrl.TogglePlayPause(); err != nil {
		t.Fatalf("Ошибка запуска: %v", err)
	}
	if ctrl.State() != Playing {
		t.Fatalf("Ожидалось Playing, получено %v", ctrl.State())
	}

	// Звучащий трек ставится на паузу
	engine.position = 42 * time.Second
	if err := ctrl.TogglePlayPause(); err != nil {
		t.Fatalf("Ошибка паузы: %v", err)
	}
	if ctrl.State() != Paused {
		t.Fatalf("Ожидалось Paused, получено %v", ctrl.State())
	}

	// Трек на паузе возобновляется, а не запускается заново
	if err := ctrl.TogglePlayPause(); err != nil {
		t.Fatalf("Ошибка возобновления: %v", err)
	}
	if ctrl.State() != Playing {
		t.Errorf("Ожидалось Playing, получено %v", ctrl.State())
	}
	if engine.position != 42*time.Second {
		t.Errorf("Возобновление не должно сбрасывать позицию, получено %v", engine.position)
	}
	if last := engine.calls[len(engine.calls)-1]; last != "resume" {
		t.Errorf("Ожидался вызов resume, получено %s", last)
	}
}

func TestToggleAfterTrackFinished(t *testing.T) {
	engine := newFakeEngine()
	ctrl := NewController(engine)
	_ = ctrl.ChangeTrack(trackA)

	engine.finish()
	if !ctrl.Finished() {
		t.Fatal("Ожидалось, что трек доиграл")
	}
	if ctrl.IsPlaying() {
		t.Error("IsPlaying должен учитывать, что движок молчит")
	}

	if err := ctrl.TogglePlayPause(); err != nil {
		t.Fatalf("Ошибка перезапуска: %v", err)
	}
	if ctrl.State() != Playing || !engine.audible {
		t.Errorf("Трек должен запуститься заново, состояние %v", ctrl.State())
	}
	if engine.path != trackA.Path {
		t.Errorf("Ожидался перезагруженный трек %q, получено %q", trackA.Path, engine.path)
	}
}

func TestControllerStop(t *testing.T) {
	engine := newFakeEngine()
	ctrl := NewController(engine)
	_ = ctrl.ChangeTrack(trackA)

	ctrl.Stop()

	if ctrl.State() != Stopped {
		t.Errorf("Ожидалось Stopped, получено %v", ctrl.State())
	}
	if _, ok := ctrl.Loaded(); ok {
		t.Error("После Stop трек должен быть выгружен")
	}
	if ctrl.IsPlaying() {
		t.Error("После Stop воспроизведение должно прекратиться")
	}
}

func TestStateString(t *testing.T) {
	if Playing.String() != "Воспроизведение" {
		t.Errorf("Ожидалось 'Воспроизведение', получено %q", Playing.String())
	}
	if Paused.String() != "Пауза" {
		t.Errorf("Ожидалось 'Пауза', получено %q", Paused.String())
	}
	if State(99).String() != "State(99)" {
		t.Errorf("Неожиданное представление неизвестного состояния: %q", State(99).String())
	}
}
