// Command lobdemo wires an engine.Engine into a runner.Runner and submits a
// short scripted order sequence, logging each resulting event. It exists
// only to exercise the package graph end to end; it is not a network or
// persistence surface.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"ironbook/internal/engine"
	"ironbook/internal/runner"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	eng, err := engine.New(engine.DefaultConfig())
	if err != nil {
		log.Fatal().Err(err).Msg("unable to construct engine")
	}

	r := runner.New(eng)
	runCtx, cancelRun := context.WithCancel(ctx)
	defer cancelRun()

	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := r.Run(runCtx); err != nil {
			log.Error().Err(err).Msg("runner exited with error")
		}
	}()

	for _, order := range scriptedOrders() {
		evt, err := r.Submit(ctx, order)
		if err != nil {
			log.Error().Err(err).Msg("submit failed")
			continue
		}
		logEvent(evt)
	}

	r.Stop()
	<-done
}

func scriptedOrders() []engine.Order {
	askID, bidID := uuid.New(), uuid.New()
	return []engine.Order{
		engine.NewLimitOrder(askID, engine.Ask, 120.0, 3.0),
		engine.NewMarketOrder(bidID, engine.Bid, 1.0),
		engine.NewCancelOrder(askID),
	}
}

func logEvent(evt engine.OrderEvent) {
	entry := log.Info().
		Str("id", evt.ID.String()).
		Int("kind", int(evt.Kind)).
		Float64("filledQty", evt.FilledQty).
		Int("fills", len(evt.Fills))
	if evt.Kind == engine.EventRejected {
		entry = entry.Str("reason", evt.Reason.String())
	}
	entry.Msg("order event")

	// Slow the demo down so the scripted sequence reads clearly on a
	// terminal rather than flashing past.
	time.Sleep(10 * time.Millisecond)
}
