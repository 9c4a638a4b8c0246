package command

import (
	"github.com/bwmarrin/discordgo"
)

// RegisterAdmin registers the server administration commands. The whole
// group requires guild context and administrator permission.
func RegisterAdmin(r *Router) {
	g := NewGroup("admin", "Server administration commands.")
	g.GuildOnly = true
	g.Check = AdminOnly
	g.Subcommand(&Command{
		Name: "get-special-channels",
		Help: "List the special channels configured for this server.",
		Run:  getSpecialChannels,
	})
	r.Register(g)
}

func getSpecialChannels(c *Context) error {
	var list string
	if g, ok := c.GuildConfig(); ok {
		if modchan, ok := g.ModeratorChannel(); ok {
			list += "Moderator channel: " + modchan + "\n"
		}
		if pinchan, ok := g.AutopinChannel(); ok {
			list += "Auto-pin channel: " + pinchan + "\n"
		}
	}
	if list == "" {
		return c.Reply("No special channels are configured for this server.")
	}

	return c.Send(&discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{{
			Title:       "Special channels",
			Description: list,
			Color:       0x0000ff,
		}},
		Reference: c.Message.Reference(),
	})
}
