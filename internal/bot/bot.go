// Package bot wires the countdown store, command handling, and the
// refresh loop into a single event worker.
package bot

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/Badiss244/discord2.0/internal/bus"
	"github.com/Badiss244/discord2.0/internal/countdown"
	"github.com/Badiss244/discord2.0/internal/discord"
)

// Bot owns the countdown store and processes events from the queue one at
// a time: inbound commands and refresh ticks never run concurrently, so
// the store needs no locking.
type Bot struct {
	gateway discord.Gateway
	store   *countdown.Store
	queue   *bus.Queue
	prefix  string
	edits   *rate.Limiter
	now     func() time.Time
}

func New(gateway discord.Gateway, store *countdown.Store, queue *bus.Queue, prefix string) *Bot {
	return &Bot{
		gateway: gateway,
		store:   store,
		queue:   queue,
		prefix:  prefix,
		edits:   rate.NewLimiter(rate.Limit(5), 5),
		now:     time.Now,
	}
}

// Run consumes events until ctx is cancelled. Each event runs to
// completion before the next is taken.
func (b *Bot) Run(ctx context.Context) {
	for {
		ev, err := b.queue.Consume(ctx)
		if err != nil {
			return
		}
		b.handle(ctx, ev)
	}
}

// handle dispatches one event. Panics are contained here so a single bad
// command or record can never take the worker down.
func (b *Bot) handle(ctx context.Context, ev bus.Event) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("event handler panicked", "panic", r)
		}
	}()

	switch ev := ev.(type) {
	case bus.CommandEvent:
		b.handleCommand(ev)
	case bus.RefreshEvent:
		b.refresh(ctx)
	}
}

// UpdateStatus reflects the active countdown count in the bot's status
// text. Called at startup and after every change to the store's size.
func (b *Bot) UpdateStatus() {
	n := b.store.Len()
	text := fmt.Sprintf("%d countdowns", n)
	if n == 1 {
		text = "1 countdown"
	}
	if err := b.gateway.SetStatus(text); err != nil {
		slog.Warn("failed to update status", "error", err)
	}
}
