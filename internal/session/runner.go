package session

import (
	"context"
	"log"
	"time"

	"golang.org/x/sync/errgroup"
)

// Runner крутит два цикла над сессией: синхронизацию прогресса
// и разбор событий ввода. Оба цикла работают до события Quit.
type Runner struct {
	session          *Session
	events           <-chan Event
	sink             Sink
	progressInterval time.Duration
	inputInterval    time.Duration
}

// NewRunner создает Runner. Закрытие канала events равносильно Quit.
func NewRunner(session *Session, events <-chan Event, sink Sink, progressInterval, inputInterval time.Duration) *Runner {
	return &Runner{
		session:          session,
		events:           events,
		sink:             sink,
		progressInterval: progressInterval,
		inputInterval:    inputInterval,
	}
}

// Run показывает начальное состояние и обслуживает циклы до выхода.
// Если треков нет, выводится сообщение и циклы не запускаются.
// По завершении движок освобождается.
func (r *Runner) Run(ctx context.Context) error {
	r.sink.Publish(r.session.Start()...)

	if r.session.IsEmpty() {
		return r.session.Close()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return r.inputLoop(ctx, cancel)
	})
	group.Go(func() error {
		return r.progressLoop(ctx)
	})

	err := group.Wait()
	if closeErr := r.session.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	return err
}

// inputLoop каждые inputInterval разбирает все накопившиеся события
func (r *Runner) inputLoop(ctx context.Context, cancel context.CancelFunc) error {
	ticker := time.NewTicker(r.inputInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if r.drainEvents() {
				cancel()
				return nil
			}
		}
	}
}

// drainEvents обрабатывает события до опустошения канала.
// Возвращает true, если нужно завершить работу.
func (r *Runner) drainEvents() bool {
	for {
		select {
		case event, ok := <-r.events:
			if !ok {
				r.sink.Publish(QuitRequested{})
				return true
			}
			log.Printf("Событие: %s", event)
			r.sink.Publish(r.session.Dispatch(event)...)
			if event == Quit {
				return true
			}
		default:
			return false
		}
	}
}

// progressLoop раз в progressInterval обновляет прогресс
func (r *Runner) progressLoop(ctx context.Context) error {
	ticker := time.NewTicker(r.progressInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if commands := r.session.SampleProgress(); len(commands) > 0 {
				r.sink.Publish(commands...)
			}
		}
	}
}
