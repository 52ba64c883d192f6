package daemon

import (
	"context"
	"sync"
	"time"
)

// debouncer collapses bursts of trigger calls into a single request that
// fires once no call has arrived for the configured delay.
type debouncer struct {
	delay time.Duration
	out   chan string

	mu      sync.Mutex
	timer   *time.Timer
	trigger string
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{delay: delay, out: make(chan string, 1)}
}

// Trigger (re)starts the delay. The last trigger name wins.
func (d *debouncer) Trigger(name string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.trigger = name
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.fire)
}

func (d *debouncer) fire() {
	d.mu.Lock()
	name := d.trigger
	d.mu.Unlock()
	select {
	case d.out <- name:
	default:
	}
}

// Requests delivers one value per quiet period.
func (d *debouncer) Requests() <-chan string { return d.out }

func (d *debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
}

// rebuildWorker runs at most one rebuild at a time. A request that arrives
// while a rebuild is running is remembered and runs once the current one
// finishes; further requests in the meantime are merged into it.
type rebuildWorker struct {
	run func(ctx context.Context, trigger string)

	mu      sync.Mutex
	running bool
	pending string
	queued  bool
	wg      sync.WaitGroup
}

func newRebuildWorker(run func(ctx context.Context, trigger string)) *rebuildWorker {
	return &rebuildWorker{run: run}
}

// Submit starts a rebuild, or queues one if a rebuild is in progress.
func (w *rebuildWorker) Submit(ctx context.Context, trigger string) {
	w.mu.Lock()
	if w.running {
		w.pending, w.queued = trigger, true
		w.mu.Unlock()
		return
	}
	w.running = true
	w.wg.Add(1)
	w.mu.Unlock()

	go w.loop(ctx, trigger)
}

func (w *rebuildWorker) loop(ctx context.Context, trigger string) {
	defer w.wg.Done()
	for {
		w.run(ctx, trigger)

		w.mu.Lock()
		if !w.queued || ctx.Err() != nil {
			w.running, w.queued = false, false
			w.mu.Unlock()
			return
		}
		trigger, w.queued = w.pending, false
		w.mu.Unlock()
	}
}

// Wait blocks until the in-flight rebuild, if any, returns.
func (w *rebuildWorker) Wait() { w.wg.Wait() }
