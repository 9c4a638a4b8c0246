package discord

import (
	"context"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"pkg.overseer.run/overseer/internal/config"
)

type sentMessage struct {
	channelID string
	data      *discordgo.MessageSend
}

// fakeSession is an in-memory stand-in for the narrow Session interface.
type fakeSession struct {
	channels   map[string][]*discordgo.Channel // guild ID -> channels
	messages   map[string]*discordgo.Message   // channel ID "/" message ID
	perms      map[string]int64                // user ID -> permissions
	messageErr error
	sendErr    error

	sent []sentMessage
	left []string
}

func newFakeSession() *fakeSession {
	return &fakeSession{
		channels: map[string][]*discordgo.Channel{},
		messages: map[string]*discordgo.Message{},
		perms:    map[string]int64{},
	}
}

func (f *fakeSession) ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	f.sent = append(f.sent, sentMessage{channelID, data})
	return &discordgo.Message{}, nil
}

func (f *fakeSession) ChannelMessage(channelID, messageID string, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	if f.messageErr != nil {
		return nil, f.messageErr
	}
	m, ok := f.messages[channelID+"/"+messageID]
	if !ok {
		return nil, discordgo.ErrStateNotFound
	}
	return m, nil
}

func (f *fakeSession) GuildChannels(guildID string, _ ...discordgo.RequestOption) ([]*discordgo.Channel, error) {
	return f.channels[guildID], nil
}

func (f *fakeSession) UserChannelPermissions(userID, _ string, _ ...discordgo.RequestOption) (int64, error) {
	return f.perms[userID], nil
}

func (f *fakeSession) GuildLeave(guildID string, _ ...discordgo.RequestOption) error {
	f.left = append(f.left, guildID)
	return nil
}

// fakePins is an in-memory pin-record store.
type fakePins struct {
	records     map[[2]uint64]bool
	containsErr error
	recordErr   error
}

func newFakePins() *fakePins {
	return &fakePins{records: map[[2]uint64]bool{}}
}

func (p *fakePins) Contains(_ context.Context, guildID, messageID uint64) (bool, error) {
	if p.containsErr != nil {
		return false, p.containsErr
	}
	return p.records[[2]uint64{guildID, messageID}], nil
}

func (p *fakePins) Record(_ context.Context, guildID, messageID uint64) (bool, error) {
	if p.recordErr != nil {
		return false, p.recordErr
	}
	key := [2]uint64{guildID, messageID}
	if p.records[key] {
		return false, nil
	}
	p.records[key] = true
	return true, nil
}

func newTestDiscord(t *testing.T, yaml string, f *fakeSession, pins Pins) *Discord {
	t.Helper()
	cfg, err := config.ReadFrom(strings.NewReader(yaml))
	require.NoError(t, err)

	return &Discord{
		ctx:    context.Background(),
		logger: zap.NewNop().Sugar(),
		api:    f,
		config: cfg,
		pins:   pins,
		guilds: map[uint64]*config.Guild{},
	}
}
