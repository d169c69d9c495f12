package bot

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/Badiss244/discord2.0/internal/bus"
	"github.com/Badiss244/discord2.0/internal/command"
	"github.com/Badiss244/discord2.0/internal/countdown"
)

func (b *Bot) handleCommand(ev bus.CommandEvent) {
	cmd, err := command.Parse(b.prefix, ev.Content)
	if err != nil {
		b.replyValidation(ev, err)
		return
	}

	switch cmd := cmd.(type) {
	case command.Create:
		b.create(ev, cmd)
	case command.List:
		b.list(ev)
	case command.Delete:
		b.delete(ev, cmd)
	case command.Help:
		if _, err := b.gateway.SendEmbed(ev.ChannelID, helpEmbed(b.prefix)); err != nil {
			slog.Error("failed to send help", "error", err)
		}
	case nil:
		// not addressed to the bot
	}
}

func (b *Bot) replyValidation(ev bus.CommandEvent, err error) {
	switch {
	case errors.Is(err, command.ErrUsage):
		b.reply(ev.ChannelID, command.UsageFor(b.prefix))
	case errors.Is(err, command.ErrBadIndex):
		b.reply(ev.ChannelID, "That is not a valid countdown number.")
	default:
		b.reply(ev.ChannelID, err.Error())
	}
}

// create sends the tracking message first; the record is only appended
// once a message ID exists to be tracked.
func (b *Bot) create(ev bus.CommandEvent, cmd command.Create) {
	now := b.now()
	c := countdown.Countdown{
		Name:       cmd.Name,
		TargetDate: cmd.Target.UnixMilli(),
		ChannelID:  ev.ChannelID,
		CreatedBy:  ev.AuthorID,
		CreatedAt:  now.UnixMilli(),
	}

	rem := countdown.Until(c.TargetDate, now.UnixMilli())
	msgID, err := b.gateway.SendEmbed(ev.ChannelID, trackingEmbed(c, rem, now))
	if err != nil {
		slog.Error("failed to send tracking message", "name", c.Name, "error", err)
		b.reply(ev.ChannelID, fmt.Sprintf("Could not create the countdown: %v", err))
		return
	}
	c.MessageID = msgID

	b.store.Append(c)
	b.store.Save()
	slog.Info("countdown created", "name", c.Name, "target", c.TargetDate, "creator", c.CreatedBy)

	if err := b.gateway.React(ev.ChannelID, ev.MessageID, "✅"); err != nil {
		slog.Warn("failed to add confirmation reaction", "error", err)
	}
	b.UpdateStatus()
}

func (b *Bot) list(ev bus.CommandEvent) {
	items := b.store.List()
	if len(items) == 0 {
		b.reply(ev.ChannelID, "There are no active countdowns.")
		return
	}
	if _, err := b.gateway.SendEmbed(ev.ChannelID, listEmbed(items, b.now())); err != nil {
		slog.Error("failed to send countdown list", "error", err)
	}
}

func (b *Bot) delete(ev bus.CommandEvent, cmd command.Delete) {
	if cmd.Index > b.store.Len() {
		b.reply(ev.ChannelID, fmt.Sprintf("There is no countdown number %d.", cmd.Index))
		return
	}

	c := b.store.List()[cmd.Index-1]
	if c.CreatedBy != ev.AuthorID {
		elevated, err := b.gateway.HasManageMessages(ev.AuthorID, ev.ChannelID)
		if err != nil {
			slog.Warn("failed to resolve permissions", "user", ev.AuthorID, "error", err)
		}
		if !elevated {
			b.reply(ev.ChannelID, "Only the creator of a countdown (or someone with Manage Messages) can delete it.")
			return
		}
	}

	removed := b.store.RemoveAt(cmd.Index - 1)
	b.store.Save()
	slog.Info("countdown deleted", "name", removed.Name, "by", ev.AuthorID)

	b.reply(ev.ChannelID, fmt.Sprintf("Deleted countdown **%s**.", removed.Name))
	b.UpdateStatus()
}

func (b *Bot) reply(channelID, content string) {
	if err := b.gateway.Reply(channelID, content); err != nil {
		slog.Warn("failed to send reply", "channel", channelID, "error", err)
	}
}
