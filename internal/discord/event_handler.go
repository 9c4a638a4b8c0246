package discord

import (
	"time"

	"github.com/bwmarrin/discordgo"
)

func (d *Discord) onReady(s *discordgo.Session, e *discordgo.Ready) {
	d.logger.Infof("Logged in Discord API as %s (ID %s).", e.User, e.User.ID)

	d.mu.Lock()
	if d.ready.IsZero() {
		d.ready = time.Now()
	}
	d.mu.Unlock()

	app, err := s.Application("@me")
	if err != nil {
		d.logger.Errorf("Failed to fetch application info, owner commands disabled: %s.", err)
		return
	}
	if app.Owner == nil {
		d.logger.Warn("Application has no owner, owner commands disabled.")
		return
	}

	d.mu.Lock()
	d.ownerID = app.Owner.ID
	d.mu.Unlock()
}

// onGuildCreate fires once per guild at session start and again on
// reconnect; verification is applied each time and is not re-evaluated
// mid-session.
func (d *Discord) onGuildCreate(_ *discordgo.Session, e *discordgo.GuildCreate) {
	d.handleGuildCreate(e.Guild)
}

func (d *Discord) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	// Never process our own messages.
	if s.State.User != nil && m.Author.ID == s.State.User.ID {
		return
	}
	if m.Author.Bot && !d.config.Options.ParseBotMessages {
		return
	}

	if d.config.Logging.LogMessages {
		d.logger.Debugf("Message received: %s.", m.Content)
	}

	d.router.Dispatch(d.api, m.Message)
}

func (d *Discord) onMessageUpdate(_ *discordgo.Session, m *discordgo.MessageUpdate) {
	d.echoEdit(m)
}

func (d *Discord) onMessageDelete(_ *discordgo.Session, m *discordgo.MessageDelete) {
	d.echoDelete(m)
}

func (d *Discord) onMessageReactionAdd(_ *discordgo.Session, r *discordgo.MessageReactionAdd) {
	d.maybeAutopin(r.MessageReaction)
}
