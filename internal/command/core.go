package command

import (
	"github.com/bwmarrin/discordgo"
)

// RegisterCore registers the basic commands available to all users.
func RegisterCore(r *Router) {
	r.Register(&Command{
		Name: "ping",
		Help: "Check whether the bot is listening.",
		Run: func(c *Context) error {
			return c.Send(&discordgo.MessageSend{Content: "pong"})
		},
	})

	r.Register(&Command{
		Name: "echo",
		Help: "Repeat back a given message to you.",
		Run:  echo,
	})

	r.Register(&Command{
		Name: "hello",
		Help: "Displays my intro message.",
		Run: func(c *Context) error {
			return c.Reply("Hello! I'm a robot! I supervise servers so their admins don't have to.")
		},
	})

	r.Register(&Command{
		Name: "rtfaq",
		Help: "Send a link to the server FAQ.",
		Run:  rtfaq,
	})

	r.Register(&Command{
		Name: "kill-all-humans",
		Help: "Exactly what it says on the tin.",
		Run: func(*Context) error {
			return ErrNotImplemented
		},
	})
}

func echo(c *Context) error {
	if c.Rest == "" {
		return &UsageError{Message: "message is a required argument that is missing."}
	}
	return c.Reply(c.Rest)
}

// rtfaq links the guild FAQ. When the invoking message is itself a reply,
// the FAQ link answers the original message instead, so that "!rtfaq" in
// response to a question points the link at the question.
func rtfaq(c *Context) error {
	g, ok := c.GuildConfig()
	if !ok {
		return c.Reply("No FAQ is configured for this server, sorry.")
	}
	url, ok := g.FAQURL()
	if !ok {
		return c.Reply("No FAQ is configured for this server, sorry.")
	}

	ref := c.Message.Reference()
	if c.Message.MessageReference != nil {
		ref = c.Message.MessageReference
	}

	return c.Send(&discordgo.MessageSend{
		Content: "Further information on this topic is available in the server FAQ:",
		Embeds: []*discordgo.MessageEmbed{{
			Type:  discordgo.EmbedTypeLink,
			Title: "Server FAQ",
			URL:   url,
			Color: 0x0000ff,
		}},
		Reference: ref,
	})
}
