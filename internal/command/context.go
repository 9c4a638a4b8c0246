package command

import (
	"github.com/bwmarrin/discordgo"
	"pkg.overseer.run/overseer/internal/config"
)

// Sender is the single outbound operation command handlers need from the
// chat client.
type Sender interface {
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Context carries one command invocation: the parsed arguments, the
// originating message and the reply capability.
type Context struct {
	Services *Services
	Session  Sender
	Message  *discordgo.Message

	// Rest is the argument text after the command name, verbatim.
	Rest string
	// Args is Rest split on whitespace.
	Args []string
}

// Reply sends content to the originating channel as a reply to the
// invoking message.
func (c *Context) Reply(content string) error {
	_, err := c.Session.ChannelMessageSendComplex(c.Message.ChannelID, &discordgo.MessageSend{
		Content:   content,
		Reference: c.Message.Reference(),
	})
	return err
}

// Send sends an arbitrary message to the originating channel.
func (c *Context) Send(data *discordgo.MessageSend) error {
	_, err := c.Session.ChannelMessageSendComplex(c.Message.ChannelID, data)
	return err
}

// GuildConfig resolves the configuration entry for the guild the command
// was invoked in, if the message is a guild message and the guild is
// configured.
func (c *Context) GuildConfig() (*config.Guild, bool) {
	if c.Message.GuildID == "" {
		return nil, false
	}
	return c.Services.Guild(c.Message.GuildID)
}
