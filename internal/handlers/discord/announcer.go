package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/stbguild/guildhall/internal/models"
)

// Announcer pushes urgent dashboard notices into a Discord channel
type Announcer struct {
	session   *discordgo.Session
	channelID string
}

// Config holds the configuration for the announcer
type Config struct {
	// Discord bot token
	Token string

	// ChannelID is the channel urgent notices are posted to
	ChannelID string
}

// New creates a new Discord announcer
func New(cfg *Config) (*Announcer, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.ChannelID == "" {
		return nil, errors.New("channel ID cannot be empty")
	}

	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	return &Announcer{
		session:   session,
		channelID: cfg.ChannelID,
	}, nil
}

// Start opens the Discord connection
func (a *Announcer) Start() error {
	if err := a.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}
	return nil
}

// Stop closes the Discord connection
func (a *Announcer) Stop() error {
	return a.session.Close()
}

// Announce posts an urgent notice as an embed
func (a *Announcer) Announce(_ context.Context, notice *models.Notice) error {
	if notice == nil {
		return errors.New("notice cannot be nil")
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🚨 %s", notice.Title),
		Description: notice.Content,
		Color:       0xE74C3C,
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Guild notice board",
		},
	}

	_, err := a.session.ChannelMessageSendEmbed(a.channelID, embed)
	if err != nil {
		return fmt.Errorf("failed to send announcement: %w", err)
	}

	return nil
}
