package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"
)

// Run sets up the terminal and runs the event loop until Stop is called,
// SIGINT arrives, a render fails or a task started with Go fails. Background
// tasks are cancelled and waited for before Run returns.
func (a *App) Run() (err error) {
	if err := a.terminal.Setup(); err != nil {
		return fmt.Errorf("terminal setup: %w", err)
	}
	defer func() {
		if rerr := a.terminal.Restore(); rerr != nil && err == nil {
			err = fmt.Errorf("terminal restore: %w", rerr)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	go func() {
		select {
		case <-sigCh:
			a.Stop()
		case <-a.stopCh:
		}
		signal.Stop(sigCh)
	}()

	if rn, ok := a.terminal.(ResizeNotifier); ok {
		stop := rn.NotifyResize(func() {
			a.Post(a.handleResize)
		})
		defer stop()
	}

	a.MarkDirty()
	loopErr := a.loop()

	a.Stop()
	if gerr := a.group.Wait(); gerr != nil && !errors.Is(gerr, context.Canceled) && loopErr == nil {
		loopErr = gerr
	}
	return loopErr
}

// loop processes queued work, advances animations and renders when dirty.
// Each turn drains every queued message first so any number of mutations
// cost a single render.
func (a *App) loop() error {
	var tick *time.Timer
	defer func() {
		if tick != nil {
			tick.Stop()
		}
	}()

	for {
		if a.isStopped() {
			return nil
		}
		turnStart := time.Now()
		a.drain()
		a.tree.Tick(a.now())

		if a.dirty.Swap(false) {
			if err := a.Render(); err != nil {
				return err
			}
		}

		var tickCh <-chan time.Time
		if a.tree.anim.Active() {
			wait := max(0, a.frameDuration-time.Since(turnStart))
			if tick == nil {
				tick = time.NewTimer(wait)
			} else {
				tick.Reset(wait)
			}
			tickCh = tick.C
		}

		select {
		case fn := <-a.eventQueue:
			fn()
		case <-tickCh:
		case <-a.stopCh:
			return nil
		case <-a.groupCtx.Done():
			// A task without a result callback failed.
			return nil
		}
	}
}

// drain runs every queued message without blocking.
func (a *App) drain() {
	for {
		select {
		case fn := <-a.eventQueue:
			fn()
		default:
			return
		}
	}
}

// Stop ends the event loop and cancels background tasks. It is safe to call
// more than once and from any goroutine.
func (a *App) Stop() {
	a.stopOnce.Do(func() {
		close(a.stopCh)
		a.cancel()
	})
}

func (a *App) isStopped() bool {
	select {
	case <-a.stopCh:
		return true
	default:
		return false
	}
}

// Post queues fn to run on the event loop. It is the only way to touch the
// tree from another goroutine. Post never blocks: it returns ErrQueueFull
// when the queue has no room and ErrStopped after Stop.
func (a *App) Post(fn func()) error {
	if a.isStopped() {
		return ErrStopped
	}
	select {
	case a.eventQueue <- fn:
		return nil
	default:
		return ErrQueueFull
	}
}

// Go runs task in the background. done, if set, receives task's error on
// the event loop. A task without done that fails cancels the other tasks
// and its error is returned by Run. ctx is cancelled when the app stops.
//
// Go never blocks. When WithMaxTasks is set and every slot is busy, task
// waits in a queue and starts when a running task finishes.
func (a *App) Go(ctx context.Context, task func(ctx context.Context) error, done func(error)) {
	run := func() error {
		taskCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		stop := context.AfterFunc(a.groupCtx, cancel)
		defer stop()

		err := task(taskCtx)
		if done == nil {
			return err
		}
		if perr := a.Post(func() { done(err) }); perr != nil && !errors.Is(perr, ErrStopped) {
			return fmt.Errorf("deliver task result: %w", perr)
		}
		return nil
	}

	a.taskMu.Lock()
	defer a.taskMu.Unlock()
	if a.maxTasks > 0 && a.running >= a.maxTasks {
		a.queued = append(a.queued, run)
		return
	}
	a.running++
	a.group.Go(func() error { return a.runTasks(run) })
}

// runTasks runs run and then queued tasks in the same slot until the queue
// is empty. After a failure the rest of the queue moves to a new goroutine
// so the error reaches the group right away.
func (a *App) runTasks(run func() error) error {
	for run != nil {
		err := run()
		run = a.nextTask()
		if err != nil {
			if next := run; next != nil {
				a.group.Go(func() error { return a.runTasks(next) })
			}
			return err
		}
	}
	return nil
}

// nextTask pops the oldest queued task, or frees the caller's slot when the
// queue is empty.
func (a *App) nextTask() func() error {
	a.taskMu.Lock()
	defer a.taskMu.Unlock()
	if len(a.queued) == 0 {
		a.running--
		return nil
	}
	run := a.queued[0]
	a.queued[0] = nil
	a.queued = a.queued[1:]
	return run
}
