package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"pkg.overseer.run/overseer/internal/util"
)

// pinEmoji is the one reaction that drives the auto-pin workflow.
const pinEmoji = "\U0001F4CC" // 📌

// maybeAutopin decides whether a pin reaction copies the message into the
// guild's auto-pin channel. A message is pinned when the pin reaction count
// reaches the guild's threshold, or immediately when the reactor is a guild
// administrator. The persisted pin record makes the whole workflow
// idempotent under repeated and concurrent reactions.
func (d *Discord) maybeAutopin(r *discordgo.MessageReaction) {
	if r.Emoji.Name != pinEmoji {
		return
	}
	if r.GuildID == "" {
		return
	}

	g, ok := d.GuildConfig(r.GuildID)
	if !ok {
		d.logger.Debugf("Ignoring pin reaction in unbound guild %s.", r.GuildID)
		return
	}
	if g.Options.AutopinThreshold <= 0 {
		d.logger.Debugf("Auto-pin is disabled for guild %s.", g.Name)
		return
	}

	destName, ok := g.AutopinChannel()
	if !ok {
		d.logger.Errorf("Guild %s has an auto-pin threshold but no auto-pin channel.", g.Name)
		return
	}
	dest, err := d.findChannel(r.GuildID, destName)
	if err != nil {
		d.logger.Errorf("Failed to resolve auto-pin channel %s in guild %s: %s.", destName, g.Name, err)
		return
	}
	if dest == nil {
		d.logger.Errorf("Auto-pin channel %s does not exist in guild %s.", destName, g.Name)
		return
	}

	// Never pin the pinned copy.
	if r.ChannelID == dest.ID {
		d.logger.Debugf("Ignoring pin reaction inside the auto-pin channel of guild %s.", g.Name)
		return
	}

	m, err := d.api.ChannelMessage(r.ChannelID, r.MessageID)
	if err != nil {
		d.logger.Errorf("Failed to fetch message %s for auto-pin: %s.", r.MessageID, err)
		return
	}

	count := 0
	for _, mr := range m.Reactions {
		if mr.Emoji.Name == pinEmoji {
			count = mr.Count
			break
		}
	}

	admin, err := d.isAdministrator(r.UserID, r.ChannelID)
	if err != nil {
		d.logger.Warnf("Failed to check administrator permission for user %s: %s.", r.UserID, err)
		admin = false
	}

	if count < g.Options.AutopinThreshold && !admin {
		d.logger.Debugf("Message %s has %d pin reactions of %d required.", r.MessageID, count, g.Options.AutopinThreshold)
		return
	}

	guildID, err := util.ParseSnowflake(r.GuildID)
	if err != nil {
		d.logger.Errorf("Malformed guild ID %q: %s.", r.GuildID, err)
		return
	}
	messageID, err := util.ParseSnowflake(r.MessageID)
	if err != nil {
		d.logger.Errorf("Malformed message ID %q: %s.", r.MessageID, err)
		return
	}

	if pinned, err := d.pins.Contains(d.ctx, guildID, messageID); err != nil {
		d.logger.Errorf("Failed to look up pin record for message %s: %s.", r.MessageID, err)
		return
	} else if pinned {
		d.logger.Debugf("Message %s is already pinned.", r.MessageID)
		return
	}

	// Claim before sending: the insert's conflict with the uniqueness
	// constraint is what keeps concurrent reactions from double-posting.
	created, err := d.pins.Record(d.ctx, guildID, messageID)
	if err != nil {
		d.logger.Errorf("Failed to record pin for message %s: %s.", r.MessageID, err)
		return
	}
	if !created {
		d.logger.Debugf("Message %s was pinned by a concurrent event.", r.MessageID)
		return
	}

	if _, err := d.api.ChannelMessageSendComplex(dest.ID, buildPinMessage(m, r.ChannelID)); err != nil {
		d.logger.Errorf("Pin for message %s was recorded but the copy could not be sent: %s.", r.MessageID, err)
		return
	}

	d.logger.Infof("Pinned message %s from guild %s to channel %s.", r.MessageID, g.Name, dest.Name)
}

// buildPinMessage composes the pinned copy: author and source-channel
// attribution, the original content, and every attachment re-embedded as a
// link card. Attachments are not re-uploaded.
func buildPinMessage(m *discordgo.Message, sourceChannelID string) *discordgo.MessageSend {
	content := fmt.Sprintf("\U0001F4CC **%s** in <#%s>:", m.Author.Username, sourceChannelID)
	if m.Content != "" {
		content += "\n>>> " + m.Content
	}

	var embeds []*discordgo.MessageEmbed
	for _, at := range m.Attachments {
		embeds = append(embeds, &discordgo.MessageEmbed{
			Type:  discordgo.EmbedTypeLink,
			Title: at.Filename,
			URL:   at.URL,
		})
	}

	return &discordgo.MessageSend{
		Content:         content,
		Embeds:          embeds,
		AllowedMentions: &discordgo.MessageAllowedMentions{},
	}
}
