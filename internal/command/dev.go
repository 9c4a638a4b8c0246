package command

import (
	"fmt"
)

// RegisterDev registers the developer commands: small introspection helpers
// for whoever operates the bot. Owner only.
func RegisterDev(r *Router) {
	r.Register(&Command{
		Name:      "get-guild-id",
		Help:      "Display the ID of the current guild (server).",
		GuildOnly: true,
		Check:     OwnerOnly,
		Run: func(c *Context) error {
			return c.Reply(fmt.Sprintf("ID of the current guild is %s.", c.Message.GuildID))
		},
	})

	r.Register(&Command{
		Name:  "get-channel-id",
		Help:  "Display the ID of the current channel.",
		Check: OwnerOnly,
		Run: func(c *Context) error {
			return c.Reply(fmt.Sprintf("ID of the current channel is %s.", c.Message.ChannelID))
		},
	})

	r.Register(&Command{
		Name:  "get-my-id",
		Help:  "Display the ID of the invoking user.",
		Check: OwnerOnly,
		Run: func(c *Context) error {
			return c.Reply(fmt.Sprintf("User %s has ID %s.", c.Message.Author.Username, c.Message.Author.ID))
		},
	})
}
