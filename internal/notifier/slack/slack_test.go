package slack

import (
	"context"
	"errors"
	"testing"

	"github.com/jorgebm/padel-partidos/internal/club"
	"github.com/jorgebm/padel-partidos/internal/metrics"
	"github.com/jorgebm/padel-partidos/internal/notifier"
	slackapi "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockSlackAPI is a mock implementation of the parts of the slack.Client that we use.
type mockSlackAPI struct {
	postMessageContextFunc func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error)
}

func (m *mockSlackAPI) PostMessageContext(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
	if m.postMessageContextFunc != nil {
		return m.postMessageContextFunc(ctx, channelID, options...)
	}
	return "C12345", "123456789.12345", nil
}

func testReminder() notifier.WaitlistReminder {
	return notifier.WaitlistReminder{
		Match: &club.Match{
			ID:       "P1",
			Place:    "Club Norte",
			TimeSlot: "19:00",
			Date:     "2026-09-05",
			Duration: "90",
		},
		PlayerID: "eva",
		Position: 1,
	}
}

func TestSendWaitlistReminder_DryRun(t *testing.T) {
	metrics := metrics.NewMock()
	// Pass nil for the api, as it shouldn't be called in dry-run mode.
	notif := NewNotifierWithAPI(nil, "C123", metrics)

	err := notif.SendWaitlistReminder(testReminder(), true)
	require.NoError(t, err)
	assert.Equal(t, 0, metrics.SlackNotifSent())
}

func TestSendWaitlistReminder_Success(t *testing.T) {
	postMessageCalled := false
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			postMessageCalled = true
			assert.Equal(t, "C123", channelID)
			return "C123", "ts123", nil
		},
	}

	metrics := metrics.NewMock()
	notif := NewNotifierWithAPI(api, "C123", metrics)

	err := notif.SendWaitlistReminder(testReminder(), false)
	require.NoError(t, err)
	assert.True(t, postMessageCalled, "PostMessageContext should have been called")
	assert.Equal(t, 1, metrics.SlackNotifSent())
	assert.Equal(t, 0, metrics.SlackNotifFailed())
}

func TestSendWaitlistReminder_Failure(t *testing.T) {
	expectedErr := errors.New("slack API is down")
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			return "", "", expectedErr
		},
	}

	metrics := metrics.NewMock()
	notif := NewNotifierWithAPI(api, "C123", metrics)

	err := notif.SendWaitlistReminder(testReminder(), false)
	require.Error(t, err)
	assert.ErrorIs(t, err, expectedErr)
	assert.Equal(t, 0, metrics.SlackNotifSent())
	assert.Equal(t, 1, metrics.SlackNotifFailed())
}

func TestFormatWaitlistReminder(t *testing.T) {
	notif := NewNotifierWithAPI(nil, "C123", metrics.NewMock())

	msg := notif.formatWaitlistReminder(testReminder())
	require.Len(t, msg.Blocks.BlockSet, 3)

	header, ok := msg.Blocks.BlockSet[0].(*slackapi.HeaderBlock)
	require.True(t, ok)
	assert.Contains(t, header.Text.Text, "Hueco libre")

	body, ok := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	require.True(t, ok)
	assert.Contains(t, body.Text.Text, "eva")
	assert.Contains(t, body.Text.Text, "reserva nº 2")
	assert.Contains(t, body.Text.Text, "P1")

	details, ok := msg.Blocks.BlockSet[2].(*slackapi.ContextBlock)
	require.True(t, ok)
	require.Len(t, details.ContextElements.Elements, 1)
	text, ok := details.ContextElements.Elements[0].(*slackapi.TextBlockObject)
	require.True(t, ok)
	assert.Contains(t, text.Text, "Club Norte")
	assert.Contains(t, text.Text, "2026-09-05 19:00")
}
