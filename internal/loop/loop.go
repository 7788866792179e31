// Package loop runs the fixed-rate tick that drives the brain. The loop is
// the single writer of brain state: it reads one sensor sample per tick,
// advances the brain, and hands the resulting snapshot to the publisher.
// Ticking is independent of viewer count; with zero viewers connected the
// brain still advances.
package loop

import (
	"context"
	"log"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/Hulupeep/mbot-ruvector/internal/brain"
	"github.com/Hulupeep/mbot-ruvector/internal/sensor"
)

// Publisher receives each tick's snapshot. Delivery is fire-and-forget;
// implementations must not block the tick.
type Publisher interface {
	Publish(snap *brain.Snapshot)
}

type Loop struct {
	brain    *brain.Brain
	source   sensor.Source
	pub      Publisher
	interval time.Duration
	clock    clockwork.Clock
}

func New(b *brain.Brain, src sensor.Source, pub Publisher, interval time.Duration, clock clockwork.Clock) *Loop {
	return &Loop{
		brain:    b,
		source:   src,
		pub:      pub,
		interval: interval,
		clock:    clock,
	}
}

// Start launches the tick loop in a goroutine. The loop never stops on its
// own; it runs until ctx is cancelled.
func (l *Loop) Start(ctx context.Context) {
	go l.run(ctx)
}

func (l *Loop) run(ctx context.Context) {
	ticker := l.clock.NewTicker(l.interval)
	defer ticker.Stop()

	log.Printf("tick loop started: source=%s interval=%s", l.source.Name(), l.interval)

	for {
		select {
		case <-ctx.Done():
			log.Printf("tick loop stopped after %d ticks", l.brain.TickCount())
			return
		case <-ticker.Chan():
			l.tick()
		}
	}
}

func (l *Loop) tick() {
	reading, err := l.source.Read()
	if err != nil {
		// A failed read skips this tick; the brain keeps its state.
		log.Printf("sensor read error: %v", err)
		return
	}
	l.pub.Publish(l.brain.Advance(reading))
}
