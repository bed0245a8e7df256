// Package simulate produces inbound chat traffic on a fixed interval so the
// community view has something to react to.
package simulate

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/matheus3301/flock/internal/bus"
	"github.com/matheus3301/flock/internal/metrics"
	"github.com/matheus3301/flock/internal/store"
	"go.uber.org/zap"
)

// SenderID marks messages produced by the simulator.
const SenderID = "simulated"

// Senders and Texts are the canned pools the simulator draws from.
var (
	Senders = []string{"Pastor Chiwenga", "Sister Rudo", "Elder Banda", "Chipo", "Blessing"}
	Texts   = []string{
		"Praise God! See you all on Sunday.",
		"Can someone share the notes from yesterday?",
		"Sending prayers for the family.",
		"The worship practice has been moved to 6 PM.",
		"Amen!",
		"Who is leading intercession today?",
	}
)

// GroupLister reads the current group list. It is consulted on every tick.
type GroupLister interface {
	ListGroups() ([]store.Group, error)
}

// Rand picks a uniform index in [0, n).
type Rand interface {
	IntN(n int) int
}

// NewRand returns a PCG source. A zero seed picks one from the clock.
func NewRand(seed uint64) Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Simulator publishes one inbound message per interval into a random group.
type Simulator struct {
	groups   GroupLister
	bus      *bus.Bus
	interval time.Duration
	logger   *zap.Logger
	now      func() time.Time

	mu     sync.Mutex // guards rand
	rand   Rand
	cancel context.CancelFunc
	done   chan struct{}
}

// New creates a simulator. It does nothing until Start or Tick is called.
func New(groups GroupLister, b *bus.Bus, r Rand, interval time.Duration, logger *zap.Logger) *Simulator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Simulator{
		groups:   groups,
		bus:      b,
		rand:     r,
		interval: interval,
		logger:   logger,
		now:      time.Now,
	}
}

// Start runs the timer loop until Stop is called or ctx is cancelled.
func (s *Simulator) Start(ctx context.Context) {
	if s.interval <= 0 {
		s.logger.Warn("simulation interval not positive, timer not started", zap.Duration("interval", s.interval))
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})
	go s.loop(ctx)
	s.logger.Info("simulation timer started", zap.Duration("interval", s.interval))
}

// Stop cancels the timer and waits for the loop to exit.
func (s *Simulator) Stop() {
	if s.cancel != nil {
		s.cancel()
		<-s.done
		s.cancel = nil
	}
}

func (s *Simulator) loop(ctx context.Context) {
	defer close(s.done)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.Tick()
		case <-ctx.Done():
			return
		}
	}
}

// Tick fires the simulation once. It returns the published message, or nil
// when there was no group to post into.
func (s *Simulator) Tick() *store.Message {
	groups, err := s.groups.ListGroups()
	if err != nil {
		s.logger.Error("simulation: list groups", zap.Error(err))
		metrics.RecordTick(metrics.TickFailed)
		return nil
	}
	if len(groups) == 0 {
		metrics.RecordTick(metrics.TickSkipped)
		return nil
	}

	s.mu.Lock()
	group := groups[s.rand.IntN(len(groups))]
	sender := Senders[s.rand.IntN(len(Senders))]
	text := Texts[s.rand.IntN(len(Texts))]
	s.mu.Unlock()

	msg := store.Message{
		ID:         uuid.NewString(),
		GroupID:    group.ID,
		SenderID:   SenderID,
		SenderName: sender,
		Body:       text,
		Timestamp:  s.now().UnixMilli(),
	}
	s.bus.Publish(bus.NewEvent(bus.KindInboundMessage, msg))
	metrics.RecordTick(metrics.TickFired)
	s.logger.Debug("simulated message",
		zap.String("group_id", group.ID),
		zap.String("sender", sender),
	)
	return &msg
}
