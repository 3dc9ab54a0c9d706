package notifier

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/PetroczyP/mergington-activities/internal/i18n"
)

// Event describes a committed signup or unregistration.
type Event struct {
	ActivityID     string
	ActivityName   string
	Participant    string
	Lang           i18n.Lang
	AvailableSpots int
}

type Notifier interface {
	NotifySignup(ctx context.Context, event Event) error
	NotifyUnregister(ctx context.Context, event Event) error
}

// Nop discards every event.
type Nop struct{}

func (Nop) NotifySignup(context.Context, Event) error     { return nil }
func (Nop) NotifyUnregister(context.Context, Event) error { return nil }

// ChannelSender is the part of *discordgo.Session the notifier needs.
type ChannelSender interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

type DiscordNotifier struct {
	session   ChannelSender
	channelID string
}

func NewDiscordNotifier(session ChannelSender, channelID string) *DiscordNotifier {
	return &DiscordNotifier{
		session:   session,
		channelID: channelID,
	}
}

// New returns a Discord notifier when both token and channelID are set, and
// Nop otherwise.
func New(token, channelID string) (Notifier, error) {
	if token == "" || channelID == "" {
		return Nop{}, nil
	}
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	return NewDiscordNotifier(session, channelID), nil
}

func (n *DiscordNotifier) NotifySignup(ctx context.Context, event Event) error {
	return n.send(ctx, signupMessage(event))
}

func (n *DiscordNotifier) NotifyUnregister(ctx context.Context, event Event) error {
	return n.send(ctx, unregisterMessage(event))
}

func (n *DiscordNotifier) send(ctx context.Context, message string) error {
	if n.session == nil {
		return fmt.Errorf("discord session is nil")
	}
	if n.channelID == "" {
		return fmt.Errorf("discord channel ID is empty")
	}

	if _, err := n.session.ChannelMessageSend(n.channelID, message, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("send discord message: %w", err)
	}
	return nil
}

func signupMessage(e Event) string {
	return fmt.Sprintf("🎉 **New Signup**\n**Activity:** %s\n**Student:** %s\n**Spots left:** %d\n**Language:** %s",
		e.ActivityName,
		e.Participant,
		e.AvailableSpots,
		e.Lang,
	)
}

func unregisterMessage(e Event) string {
	return fmt.Sprintf("👋 **Unregistered**\n**Activity:** %s\n**Student:** %s\n**Spots left:** %d\n**Language:** %s",
		e.ActivityName,
		e.Participant,
		e.AvailableSpots,
		e.Lang,
	)
}
