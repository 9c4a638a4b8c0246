package command

import (
	"strconv"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEchoRepeatsVerbatim(t *testing.T) {
	env := newTestEnv(t)
	env.dispatch("!echo hello  double  spaced world")
	assert.Equal(t, "hello  double  spaced world", env.lastReply(t))
}

func TestHello(t *testing.T) {
	env := newTestEnv(t)
	env.dispatch("!hello")
	assert.Contains(t, env.lastReply(t), "Hello")
}

func TestRtfaqConfigured(t *testing.T) {
	env := newTestEnv(t)
	env.dispatch("!rtfaq")

	require.Len(t, env.sender.sent, 1)
	sent := env.sender.sent[0].data
	assert.Contains(t, sent.Content, "server FAQ")
	require.Len(t, sent.Embeds, 1)
	assert.Equal(t, "https://example.org/faq", sent.Embeds[0].URL)
	assert.Equal(t, "Server FAQ", sent.Embeds[0].Title)
	require.NotNil(t, sent.Reference)
	assert.Equal(t, "1", sent.Reference.MessageID)
}

func TestRtfaqForwardsReplyChain(t *testing.T) {
	env := newTestEnv(t)
	env.router.Dispatch(env.sender, &discordgo.Message{
		ID:        "2",
		ChannelID: "444",
		GuildID:   "100",
		Content:   "!rtfaq",
		Author:    &discordgo.User{ID: "user"},
		MessageReference: &discordgo.MessageReference{
			MessageID: "origin", ChannelID: "444", GuildID: "100",
		},
	})

	require.Len(t, env.sender.sent, 1)
	ref := env.sender.sent[0].data.Reference
	require.NotNil(t, ref)
	assert.Equal(t, "origin", ref.MessageID)
}

func TestRtfaqNotConfigured(t *testing.T) {
	env := newTestEnv(t)
	env.router.Dispatch(env.sender, &discordgo.Message{
		ID:        "1",
		ChannelID: "444",
		GuildID:   "200", // Bare Guild has no faqUrl
		Content:   "!rtfaq",
		Author:    &discordgo.User{ID: "user"},
	})
	assert.Equal(t, "No FAQ is configured for this server, sorry.", env.lastReply(t))
}

func TestRandomNumberMaxSmallerThanMin(t *testing.T) {
	env := newTestEnv(t)
	env.dispatch("!random number 10 5")
	assert.Equal(t, "Maximum is smaller than minimum.", env.lastReply(t))
}

func TestRandomNumberCapsMaximum(t *testing.T) {
	env := newTestEnv(t)
	for i := 0; i < 50; i++ {
		env.dispatch("!random number 0 5000")
		n, err := strconv.Atoi(env.lastReply(t))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 0)
		assert.LessOrEqual(t, n, 1000)
	}
}

func TestRandomNumberDefaults(t *testing.T) {
	env := newTestEnv(t)
	for i := 0; i < 50; i++ {
		env.dispatch("!random number")
		n, err := strconv.Atoi(env.lastReply(t))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 0)
		assert.LessOrEqual(t, n, 100)
	}
}

func TestRandomNumberRejectsGarbage(t *testing.T) {
	env := newTestEnv(t)
	env.dispatch("!random number seven")
	assert.Equal(t, "minimum must be a whole number.", env.lastReply(t))
}

func TestDrawNumber(t *testing.T) {
	t.Run("cap applies before validation", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			n, err := drawNumber(10, 5000)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, n, 10)
			assert.LessOrEqual(t, n, maxRandomNumber)
		}
	})

	t.Run("inclusive bounds", func(t *testing.T) {
		n, err := drawNumber(7, 8)
		require.NoError(t, err)
		assert.Contains(t, []int{7, 8}, n)
	})

	t.Run("min equal to max", func(t *testing.T) {
		_, err := drawNumber(5, 5)
		assert.Error(t, err)
	})

	t.Run("min above capped max", func(t *testing.T) {
		_, err := drawNumber(1001, 5000)
		assert.Error(t, err)
	})
}

func TestAdminGetSpecialChannels(t *testing.T) {
	env := newTestEnv(t)
	env.admins["moderator"] = true

	env.dispatchFrom("moderator", "!admin get-special-channels")

	require.Len(t, env.sender.sent, 1)
	sent := env.sender.sent[0].data
	require.Len(t, sent.Embeds, 1)
	assert.Equal(t, "Special channels", sent.Embeds[0].Title)
	assert.Contains(t, sent.Embeds[0].Description, "mod-log")
	assert.Contains(t, sent.Embeds[0].Description, "highlights")
}

func TestAdminGetSpecialChannelsNoneConfigured(t *testing.T) {
	env := newTestEnv(t)
	env.admins["moderator"] = true

	env.router.Dispatch(env.sender, &discordgo.Message{
		ID:        "1",
		ChannelID: "444",
		GuildID:   "200", // Bare Guild has no special channels
		Content:   "!admin get-special-channels",
		Author:    &discordgo.User{ID: "moderator"},
	})

	assert.Equal(t, "No special channels are configured for this server.", env.lastReply(t))
}

func TestBotadminShutdown(t *testing.T) {
	env := newTestEnv(t)
	env.dispatchFrom("owner", "!botadmin shutdown")

	assert.Contains(t, env.lastReply(t), "shutting down")
	assert.Equal(t, 1, env.shutdown)
}

func TestBotadminBareGroup(t *testing.T) {
	env := newTestEnv(t)
	env.dispatchFrom("owner", "!botadmin")
	assert.Equal(t, "You must specify a subcommand to `botadmin`.", env.lastReply(t))
}

func TestBotadminDumpConfigIsRedacted(t *testing.T) {
	env := newTestEnv(t)
	env.dispatchFrom("owner", "!botadmin dump-config")

	reply := env.lastReply(t)
	assert.NotContains(t, reply, "hunter2-bot-token")
	assert.NotContains(t, reply, "sw0rdfish")
	assert.Contains(t, reply, "Cmd Guild")
	assert.Contains(t, reply, "```yaml")
}

func TestDevCommands(t *testing.T) {
	env := newTestEnv(t)

	env.dispatchFrom("owner", "!get-guild-id")
	assert.Contains(t, env.lastReply(t), "100")

	env.dispatchFrom("owner", "!get-channel-id")
	assert.Contains(t, env.lastReply(t), "444")

	env.dispatchFrom("owner", "!get-my-id")
	assert.Contains(t, env.lastReply(t), "owner")
}

func TestDevCommandsAreOwnerOnly(t *testing.T) {
	env := newTestEnv(t)
	env.dispatchFrom("user", "!get-my-id")
	assert.Contains(t, env.lastReply(t), "not permitted")
}
