// Package driver runs a pendulum at a fixed cadence and hands every frame
// to a renderer.
package driver

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/san-kum/pendulum/internal/physics"
	"github.com/san-kum/pendulum/internal/render"
)

var ErrRunning = errors.New("driver already running")

// Stepper advances a simulation by one time step.
type Stepper interface {
	Step() physics.BobPosition
}

// Interval converts a time step in seconds to the tick period of the
// animation: one step per dt*1000 milliseconds.
func Interval(dt float64) time.Duration {
	return time.Duration(dt * 1000 * float64(time.Millisecond))
}

type Option func(*Driver)

func WithLogger(l *zap.Logger) Option {
	return func(d *Driver) { d.log = l }
}

// WithMaxFrames stops the driver after n frames. Zero means no limit.
func WithMaxFrames(n int) Option {
	return func(d *Driver) { d.maxFrames = n }
}

// Driver calls Step then Render once per tick from a single goroutine.
// Missed ticks are dropped, not caught up: the cadence is fixed and the
// simulation does not track wall-clock time.
type Driver struct {
	stepper   Stepper
	renderer  render.Renderer
	interval  time.Duration
	maxFrames int
	log       *zap.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
	err    error
	frames int
}

func New(stepper Stepper, renderer render.Renderer, interval time.Duration, opts ...Option) *Driver {
	d := &Driver{
		stepper:  stepper,
		renderer: renderer,
		interval: interval,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run ticks until ctx is done, the frame limit is reached, or the renderer
// fails. Only a renderer failure is reported as an error.
func (d *Driver) Run(ctx context.Context) error {
	if d.interval <= 0 {
		return fmt.Errorf("driver: interval must be positive, got %s", d.interval)
	}

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	d.log.Debug("driver started", zap.Duration("interval", d.interval))
	frames := 0
	defer func() {
		d.mu.Lock()
		d.frames += frames
		d.mu.Unlock()
		d.log.Debug("driver stopped", zap.Int("frames", frames))
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			pos := d.stepper.Step()
			if err := d.renderer.Render(pos); err != nil {
				return fmt.Errorf("render frame %d: %w", frames, err)
			}
			frames++
			if d.maxFrames > 0 && frames >= d.maxFrames {
				return nil
			}
		}
	}
}

// Start runs the driver in the background until Stop is called or ctx is
// done.
func (d *Driver) Start(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.done != nil {
		return ErrRunning
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	d.cancel = cancel
	d.done = done
	d.err = nil

	go func() {
		defer close(done)
		err := d.Run(ctx)
		if err != nil {
			d.log.Warn("driver halted", zap.Error(err))
		}
		d.mu.Lock()
		d.err = err
		d.mu.Unlock()
	}()
	return nil
}

// Stop halts a started driver and waits for its goroutine to exit. It
// returns the error that ended the run, if any. Stopping a driver that is
// not running is a no-op.
func (d *Driver) Stop() error {
	d.mu.Lock()
	cancel, done := d.cancel, d.done
	d.mu.Unlock()

	if done == nil {
		return nil
	}
	cancel()
	<-done

	d.mu.Lock()
	defer d.mu.Unlock()
	d.cancel = nil
	d.done = nil
	return d.err
}

// Done is closed when a started driver exits. It is nil before Start.
func (d *Driver) Done() <-chan struct{} {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.done
}

// Frames is the number of frames rendered by completed runs.
func (d *Driver) Frames() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.frames
}
