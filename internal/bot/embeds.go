package bot

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/Badiss244/discord2.0/internal/countdown"
)

const (
	colorActive  = 0x00B0F4
	colorExpired = 0xED4245

	targetDateLayout = "Monday, January 2, 2006 at 3:04 PM"
)

// trackingEmbed builds the embed for a countdown's continuously edited
// tracking message.
func trackingEmbed(c countdown.Countdown, rem countdown.Remaining, now time.Time) *discordgo.MessageEmbed {
	description := rem.Phrase()
	color := colorExpired
	if !rem.Expired {
		description = fmt.Sprintf("Time remaining: **%s**", description)
		color = colorActive
	}
	return &discordgo.MessageEmbed{
		Title:       "⏳ " + c.Name,
		Description: description,
		Color:       color,
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Counting down to " + time.UnixMilli(c.TargetDate).Format(targetDateLayout),
		},
		Timestamp: now.Format(time.RFC3339),
	}
}

// listEmbed aggregates one field per countdown, numbered by current list
// position.
func listEmbed(items []countdown.Countdown, now time.Time) *discordgo.MessageEmbed {
	fields := make([]*discordgo.MessageEmbedField, 0, len(items))
	for i, c := range items {
		rem := countdown.Until(c.TargetDate, now.UnixMilli())
		fields = append(fields, &discordgo.MessageEmbedField{
			Name: fmt.Sprintf("%d. %s", i+1, c.Name),
			Value: fmt.Sprintf("%s\nTarget: %s", rem.Phrase(),
				time.UnixMilli(c.TargetDate).Format(targetDateLayout)),
		})
	}
	return &discordgo.MessageEmbed{
		Title:     "⏳ Active Countdowns",
		Color:     colorActive,
		Fields:    fields,
		Timestamp: now.Format(time.RFC3339),
	}
}

// helpEmbed enumerates the command surface.
func helpEmbed(prefix string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "Countdown Bot Commands",
		Color: colorActive,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:  fmt.Sprintf("%scountdown \"Name\" YYYY-MM-DD [HH:MM[:SS]]", prefix),
				Value: "Create a countdown to the given date and optional time.",
			},
			{
				Name:  prefix + "countdowns",
				Value: "List all active countdowns.",
			},
			{
				Name:  prefix + "delcountdown N",
				Value: "Delete countdown number N. Creator or Manage Messages only.",
			},
			{
				Name:  prefix + "help",
				Value: "Show this help.",
			},
		},
	}
}
