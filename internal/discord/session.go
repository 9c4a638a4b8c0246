package discord

import (
	"github.com/bwmarrin/discordgo"
)

// Session is the narrow slice of the Discord REST API the workflows depend
// on. *discordgo.Session satisfies it; tests substitute a fake.
type Session interface {
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessage(channelID, messageID string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	GuildChannels(guildID string, options ...discordgo.RequestOption) ([]*discordgo.Channel, error)
	UserChannelPermissions(userID, channelID string, fetchOptions ...discordgo.RequestOption) (int64, error)
	GuildLeave(guildID string, options ...discordgo.RequestOption) error
}
