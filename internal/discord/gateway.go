// Package discord wraps the slice of the Discord API the bot depends on.
package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// Gateway is the platform contract consumed by the bot. Calls may block on
// the network and may fail; callers own the failure policy.
type Gateway interface {
	// SendEmbed posts an embed to a channel and returns the new message's ID.
	SendEmbed(channelID string, embed *discordgo.MessageEmbed) (string, error)
	// EditEmbed replaces the embed of an existing message. Fails if the
	// message or channel no longer exists or permission was revoked.
	EditEmbed(channelID, messageID string, embed *discordgo.MessageEmbed) error
	// Reply posts a plain text message to a channel.
	Reply(channelID, content string) error
	// React adds an emoji reaction to a message.
	React(channelID, messageID, emoji string) error
	// SetStatus sets the bot's own custom status text.
	SetStatus(text string) error
	// HasManageMessages reports whether the user holds the Manage Messages
	// permission in the given channel.
	HasManageMessages(userID, channelID string) (bool, error)
}

// Session implements Gateway on a live discordgo session.
type Session struct {
	s *discordgo.Session
}

// New creates the underlying discordgo session with the intents needed to
// read guild message content.
func New(token string) (*Session, error) {
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}
	s.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentMessageContent
	return &Session{s: s}, nil
}

// Raw exposes the underlying session for handler registration and lifecycle.
func (g *Session) Raw() *discordgo.Session { return g.s }

// Open connects to the Discord gateway.
func (g *Session) Open() error { return g.s.Open() }

// Close tears down the gateway connection.
func (g *Session) Close() error { return g.s.Close() }

func (g *Session) SendEmbed(channelID string, embed *discordgo.MessageEmbed) (string, error) {
	msg, err := g.s.ChannelMessageSendEmbed(channelID, embed)
	if err != nil {
		return "", fmt.Errorf("failed to send embed: %w", err)
	}
	return msg.ID, nil
}

func (g *Session) EditEmbed(channelID, messageID string, embed *discordgo.MessageEmbed) error {
	if _, err := g.s.ChannelMessageEditEmbed(channelID, messageID, embed); err != nil {
		return fmt.Errorf("failed to edit message %s: %w", messageID, err)
	}
	return nil
}

func (g *Session) Reply(channelID, content string) error {
	_, err := g.s.ChannelMessageSend(channelID, content)
	return err
}

func (g *Session) React(channelID, messageID, emoji string) error {
	return g.s.MessageReactionAdd(channelID, messageID, emoji)
}

func (g *Session) SetStatus(text string) error {
	return g.s.UpdateCustomStatus(text)
}

func (g *Session) HasManageMessages(userID, channelID string) (bool, error) {
	perms, err := g.s.UserChannelPermissions(userID, channelID)
	if err != nil {
		return false, fmt.Errorf("failed to resolve permissions: %w", err)
	}
	return perms&discordgo.PermissionManageMessages != 0, nil
}
