package discord

import (
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	guildMocks "github.com/gptfleet/hellsnap/internal/repositories/guild/mocks"
	submissionMocks "github.com/gptfleet/hellsnap/internal/services/submission/mocks"
)

func newTestBot(t *testing.T) *Bot {
	ctrl := gomock.NewController(t)
	bot, err := New(&Config{
		Token:             "test-token",
		SubmissionService: submissionMocks.NewMockService(ctrl),
		GuildRepo:         guildMocks.NewMockRepository(ctrl),
	})
	require.NoError(t, err)
	return bot
}

func waiterRegistered(b *Bot, key string) func() bool {
	return func() bool {
		b.waiterMu.Lock()
		defer b.waiterMu.Unlock()
		_, ok := b.waiters[key]
		return ok
	}
}

func deliverMessage(b *Bot, channelID, userID, content string) {
	b.handleMessageCreate(nil, &discordgo.MessageCreate{
		Message: &discordgo.Message{
			ChannelID: channelID,
			Content:   content,
			Author:    &discordgo.User{ID: userID},
		},
	})
}

type replyResult struct {
	content string
	err     error
}

func TestWaitForReplyDeliversMessage(t *testing.T) {
	bot := newTestBot(t)

	results := make(chan replyResult, 1)
	go func() {
		content, err := bot.WaitForReply("chan-1", "user-1", time.Second)
		results <- replyResult{content, err}
	}()

	require.Eventually(t, waiterRegistered(bot, waiterKey("chan-1", "user-1")),
		time.Second, time.Millisecond)
	deliverMessage(bot, "chan-1", "user-1", "260")

	res := <-results
	require.NoError(t, res.err)
	assert.Equal(t, "260", res.content)
}

func TestWaitForReplyTimeout(t *testing.T) {
	bot := newTestBot(t)

	_, err := bot.WaitForReply("chan-1", "user-1", 10*time.Millisecond)
	assert.ErrorIs(t, err, ErrReplyTimeout)

	// The timed-out waiter was removed.
	bot.waiterMu.Lock()
	_, ok := bot.waiters[waiterKey("chan-1", "user-1")]
	bot.waiterMu.Unlock()
	assert.False(t, ok)
}

func TestWaitForReplySuperseded(t *testing.T) {
	bot := newTestBot(t)
	key := waiterKey("chan-1", "user-1")

	first := make(chan replyResult, 1)
	go func() {
		content, err := bot.WaitForReply("chan-1", "user-1", time.Minute)
		first <- replyResult{content, err}
	}()
	require.Eventually(t, waiterRegistered(bot, key), time.Second, time.Millisecond)

	second := make(chan replyResult, 1)
	go func() {
		content, err := bot.WaitForReply("chan-1", "user-1", time.Second)
		second <- replyResult{content, err}
	}()

	// The newer wait takes over immediately, the older one does not sit
	// out its full timeout.
	select {
	case res := <-first:
		assert.ErrorIs(t, res.err, ErrReplySuperseded)
	case <-time.After(time.Second):
		t.Fatal("superseded wait did not return")
	}

	deliverMessage(bot, "chan-1", "user-1", "BugStomper")
	res := <-second
	require.NoError(t, res.err)
	assert.Equal(t, "BugStomper", res.content)
}
