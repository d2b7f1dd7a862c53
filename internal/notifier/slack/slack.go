package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/jorgebm/padel-partidos/internal/metrics"
	"github.com/jorgebm/padel-partidos/internal/notifier"
	"github.com/slack-go/slack"
)

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier handles sending notifications to Slack.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
}

// NewNotifier creates a new Notifier.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	api := slack.New(token)
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

// NewNotifierWithAPI creates a new Notifier with a specific slack.Client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

func (s *Notifier) sendMessage(message slack.Message, dryRun bool) (string, string, error) {
	if dryRun {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return "dry-run-ts", "dry-run-thread-ts", nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)

	if err != nil {
		s.metrics.IncSlackNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", channelID)
		return "", "", fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncSlackNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return channelID, timestamp, nil
}

// SendWaitlistReminder tells a waitlisted player a roster slot may have
// opened up on their match.
func (s *Notifier) SendWaitlistReminder(reminder notifier.WaitlistReminder, dryRun bool) error {
	msg := s.formatWaitlistReminder(reminder)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

func (s *Notifier) formatWaitlistReminder(reminder notifier.WaitlistReminder) slack.Message {
	match := reminder.Match
	header := slack.NewHeaderBlock(
		slack.NewTextBlockObject(slack.PlainTextType, "⏳ Hueco libre en tu partido", false, false),
	)
	body := slack.NewSectionBlock(
		slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf(
			"*%s*, eres el reserva nº %d del partido *%s*.\nSe ha liberado una plaza, ¡apúntate antes de que vuele!",
			reminder.PlayerID, reminder.Position+1, match.ID,
		), false, false),
		nil, nil,
	)
	details := slack.NewContextBlock("",
		slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf(
			"📍 %s  |  🗓 %s %s  |  ⏱ %s",
			match.Place, match.Date, match.TimeSlot, match.Duration,
		), false, false),
	)
	return slack.NewBlockMessage(header, body, details)
}
