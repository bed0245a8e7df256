// Package ingest applies inbound chat traffic from the bus to the store.
package ingest

import (
	"context"
	"errors"
	"fmt"

	"github.com/matheus3301/flock/internal/bus"
	"github.com/matheus3301/flock/internal/metrics"
	"github.com/matheus3301/flock/internal/store"
	"go.uber.org/zap"
)

// Engine subscribes to "inbound." events and stores each message.
type Engine struct {
	db     *store.DB
	bus    *bus.Bus
	logger *zap.Logger
	cancel context.CancelFunc
	done   chan struct{}
}

// NewEngine creates a new ingest engine.
func NewEngine(db *store.DB, b *bus.Bus, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		db:     db,
		bus:    b,
		logger: logger,
	}
}

// Start subscribes to inbound events on the bus.
func (e *Engine) Start(ctx context.Context) {
	ctx, e.cancel = context.WithCancel(ctx)
	e.done = make(chan struct{})
	ch, unsub := e.bus.Subscribe(256, "inbound.")

	go func() {
		defer close(e.done)
		defer unsub()
		for {
			select {
			case evt := <-ch:
				e.handleEvent(evt)
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop stops the engine and waits for the in-flight event to finish.
func (e *Engine) Stop() {
	if e.cancel != nil {
		e.cancel()
		<-e.done
		e.cancel = nil
	}
}

func (e *Engine) handleEvent(evt bus.Event) {
	if evt.Kind != bus.KindInboundMessage {
		return
	}
	var msg store.Message
	switch p := evt.Payload.(type) {
	case store.Message:
		msg = p
	case *store.Message:
		if p == nil {
			return
		}
		msg = *p
	default:
		return
	}
	if _, err := e.IngestMessage(msg); err != nil {
		if errors.Is(err, store.ErrGroupNotFound) {
			e.logger.Warn("inbound message for unknown group dropped", zap.String("group_id", msg.GroupID))
			return
		}
		e.logger.Error("failed to ingest message", zap.Error(err), zap.String("group_id", msg.GroupID))
	}
}

// IngestMessage stores an inbound message and announces it.
func (e *Engine) IngestMessage(msg store.Message) (*store.Message, error) {
	stored, err := e.db.ReceiveMessage(msg)
	if err != nil {
		return nil, fmt.Errorf("receive message: %w", err)
	}
	metrics.RecordMessage("inbound")

	e.bus.Publish(bus.NewEvent(bus.KindMessageReceived, *stored))
	e.bus.Publish(bus.NewEvent(bus.KindGroupUpdated, stored.GroupID))
	return stored, nil
}
