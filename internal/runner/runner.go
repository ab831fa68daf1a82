// Package runner supplies the external exclusion discipline the engine
// itself asks for: a single goroutine that owns the book exclusively and
// serializes concurrent callers' Execute requests through a command
// channel, the same shape as the teacher's worker pool and session handler
// (internal/worker.go, internal/net/server.go in the upstream exchange this
// was adapted from).
//
// Runner adds no network surface, wire codec, or persistence — it is purely
// the in-process serialization point spec §5 names as the engine's
// collaborator contract.
package runner

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	tomb "gopkg.in/tomb.v2"

	"ironbook/internal/engine"
)

// ErrStopped is returned by Submit once the Runner has stopped accepting
// work, either because Stop was called or the supervising context was
// canceled.
var ErrStopped = errors.New("runner: stopped")

// DefaultQueueSize bounds how many outstanding commands may queue ahead of
// the single matching goroutine before Submit blocks.
const DefaultQueueSize = 256

type command struct {
	order engine.Order
	reply chan engine.OrderEvent
}

// Runner owns one *engine.Engine exclusively for its lifetime and is the
// only goroutine that ever calls Execute on it.
type Runner struct {
	eng  *engine.Engine
	cmds chan command
	t    *tomb.Tomb
}

// New wraps eng in a Runner with the default queue size.
func New(eng *engine.Engine) *Runner {
	return NewWithQueueSize(eng, DefaultQueueSize)
}

// NewWithQueueSize wraps eng in a Runner whose command queue holds up to
// queueSize pending submissions.
func NewWithQueueSize(eng *engine.Engine, queueSize int) *Runner {
	return &Runner{
		eng:  eng,
		cmds: make(chan command, queueSize),
	}
}

// Run starts the matching goroutine and blocks until ctx is canceled or
// Stop is called, then returns. Commands still queued at that point are not
// executed; their Submit calls return ErrStopped. Callers typically run this
// in its own goroutine.
func (r *Runner) Run(ctx context.Context) error {
	t, ctx := tomb.WithContext(ctx)
	r.t = t

	r.t.Go(func() error {
		log.Info().Msg("runner starting")
		defer log.Info().Msg("runner stopped")

		for {
			select {
			case <-r.t.Dying():
				return nil
			case cmd := <-r.cmds:
				evt := r.eng.Execute(cmd.order)
				cmd.reply <- evt
			}
		}
	})

	<-r.t.Dying()
	return r.t.Wait()
}

// Stop signals the matching goroutine to exit without executing any
// still-queued commands. It is a no-op if Run has not been called yet.
func (r *Runner) Stop() {
	if r.t != nil {
		r.t.Kill(nil)
	}
}

// dying returns the supervising tomb's death channel, or nil (which blocks
// forever in a select) if Run has not started yet.
func (r *Runner) dying() <-chan struct{} {
	if r.t == nil {
		return nil
	}
	return r.t.Dying()
}

// Submit hands order to the matching goroutine and blocks for its
// OrderEvent. It is the only way external callers interact with the
// wrapped engine; concurrent Submit calls are safe and are serialized in
// FIFO order at the channel.
func (r *Runner) Submit(ctx context.Context, order engine.Order) (engine.OrderEvent, error) {
	// Checked up front so a Runner that has already been stopped rejects
	// new work deterministically instead of racing a buffered send against
	// the death of the matching goroutine.
	select {
	case <-r.dying():
		return engine.OrderEvent{}, ErrStopped
	default:
	}

	reply := make(chan engine.OrderEvent, 1)

	select {
	case r.cmds <- command{order: order, reply: reply}:
	case <-r.dying():
		return engine.OrderEvent{}, ErrStopped
	case <-ctx.Done():
		return engine.OrderEvent{}, ctx.Err()
	}

	select {
	case evt := <-reply:
		return evt, nil
	case <-r.dying():
		return engine.OrderEvent{}, ErrStopped
	case <-ctx.Done():
		return engine.OrderEvent{}, ctx.Err()
	}
}
