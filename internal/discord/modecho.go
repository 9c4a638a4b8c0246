package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"pkg.overseer.run/overseer/internal/config"
)

// contentUnavailable stands in when the state cache holds no before-image
// of an edited or deleted message.
const contentUnavailable = "*(content unavailable)*"

// echoDelete re-posts a deleted guild message to the moderator channel when
// the guild has showModsDeletes enabled.
func (d *Discord) echoDelete(m *discordgo.MessageDelete) {
	if m.GuildID == "" {
		return
	}

	g, ok := d.GuildConfig(m.GuildID)
	if !ok || !g.Options.ShowModsDeletes {
		return
	}

	before := m.BeforeDelete
	author := "unknown user"
	content := contentUnavailable
	if before != nil {
		if before.Author != nil {
			author = before.Author.Username
		}
		if before.Content != "" {
			content = before.Content
		}
	}

	report := fmt.Sprintf("Message by **%s** deleted in <#%s>:\n>>> %s", author, m.ChannelID, content)
	d.sendModeratorReport(m.GuildID, g, report)
}

// echoEdit re-posts the before/after content of an edited guild message to
// the moderator channel when the guild has showModsEdits enabled.
func (d *Discord) echoEdit(m *discordgo.MessageUpdate) {
	if m.GuildID == "" {
		return
	}

	g, ok := d.GuildConfig(m.GuildID)
	if !ok || !g.Options.ShowModsEdits {
		return
	}

	before := contentUnavailable
	if m.BeforeUpdate != nil {
		// Embed unfurls and pin flags arrive as updates too; only content
		// changes interest the moderators.
		if m.BeforeUpdate.Content == m.Content {
			return
		}
		if m.BeforeUpdate.Content != "" {
			before = m.BeforeUpdate.Content
		}
	}

	author := "unknown user"
	if m.Author != nil {
		author = m.Author.Username
	}

	after := m.Content
	if after == "" {
		after = contentUnavailable
	}

	report := fmt.Sprintf("Message by **%s** edited in <#%s>:\n**Before:** %s\n**After:** %s",
		author, m.ChannelID, before, after)
	d.sendModeratorReport(m.GuildID, g, report)
}

// sendModeratorReport delivers a report to the guild's moderator channel
// with mention suppression, so echoed content never re-triggers pings.
func (d *Discord) sendModeratorReport(guildID string, g *config.Guild, report string) {
	name, ok := g.ModeratorChannel()
	if !ok {
		d.logger.Errorf("Guild %s echoes moderation events but has no moderator channel.", g.Name)
		return
	}

	ch, err := d.findChannel(guildID, name)
	if err != nil {
		d.logger.Errorf("Failed to resolve moderator channel %s in guild %s: %s.", name, g.Name, err)
		return
	}
	if ch == nil {
		d.logger.Errorf("Moderator channel %s does not exist in guild %s.", name, g.Name)
		return
	}

	if _, err := d.api.ChannelMessageSendComplex(ch.ID, &discordgo.MessageSend{
		Content:         report,
		AllowedMentions: &discordgo.MessageAllowedMentions{},
	}); err != nil {
		d.logger.Errorf("Failed to send moderation report to guild %s: %s.", g.Name, err)
	}
}
