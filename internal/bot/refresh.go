package bot

import (
	"context"
	"log/slog"

	"github.com/Badiss244/discord2.0/internal/countdown"
)

// refresh runs one full pass over the stored countdowns: recompute each
// remaining duration, edit the tracking message, and drop records that
// expired or whose message can no longer be edited. Polling is the only
// reconciliation mechanism: an externally deleted message is discovered
// by the edit failing.
func (b *Bot) refresh(ctx context.Context) {
	items := b.store.List()
	if len(items) == 0 {
		return
	}

	now := b.now()
	nowMs := now.UnixMilli()
	retained := make([]countdown.Countdown, 0, len(items))

	for _, c := range items {
		if err := b.edits.Wait(ctx); err != nil {
			return
		}

		rem := countdown.Until(c.TargetDate, nowMs)
		if err := b.gateway.EditEmbed(c.ChannelID, c.MessageID, trackingEmbed(c, rem, now)); err != nil {
			slog.Warn("dropping countdown, tracking message unreachable",
				"name", c.Name, "channel", c.ChannelID, "message", c.MessageID, "error", err)
			continue
		}
		if rem.Expired {
			slog.Info("countdown expired", "name", c.Name)
			continue
		}
		retained = append(retained, c)
	}

	if len(retained) != len(items) {
		b.store.Replace(retained)
		b.store.Save()
		b.UpdateStatus()
	}
}
