package discord

import (
	"github.com/bwmarrin/discordgo"
	"pkg.overseer.run/overseer/internal/config"
	"pkg.overseer.run/overseer/internal/util"
)

// Verification is the outcome of checking an observed guild against the
// configuration.
type Verification int

const (
	// Verified means a configuration entry exists for the guild's name and
	// its ID matches the observed snowflake.
	Verified Verification = iota
	// Unverified means the entry's configured ID does not match the
	// observed one. A guild renamed to squat on a configured name lands
	// here; the bot self-ejects.
	Unverified
	// NotConfigured means no entry exists for the guild's name.
	NotConfigured
	// NoIDConfigured means an entry exists but carries no ID to check
	// against. The bot proceeds, unverified but tolerated.
	NoIDConfigured
)

func (v Verification) String() string {
	switch v {
	case Verified:
		return "verified"
	case Unverified:
		return "unverified"
	case NotConfigured:
		return "not configured"
	case NoIDConfigured:
		return "no ID configured"
	default:
		return "unknown"
	}
}

// Verify decides whether the bot is configured to serve a guild with the
// observed display name and snowflake.
func Verify(cfg *config.Config, name string, id uint64) Verification {
	g, ok := cfg.Guild(name)
	if !ok {
		return NotConfigured
	}
	if g.ID == 0 {
		return NoIDConfigured
	}
	if g.ID == id {
		return Verified
	}
	return Unverified
}

// handleGuildCreate applies the verification policy to one guild: bind and
// proceed when verified (or tolerated), leave the guild otherwise.
func (d *Discord) handleGuildCreate(g *discordgo.Guild) {
	id, err := util.ParseSnowflake(g.ID)
	if err != nil {
		d.logger.Errorf("Guild %q reported a malformed ID %q: %s.", g.Name, g.ID, err)
		return
	}

	switch Verify(d.config, g.Name, id) {
	case Verified:
		d.logger.Infof("Connected to guild %s (ID %d), verified.", g.Name, id)
		gc, _ := d.config.Guild(g.Name)
		d.bindGuild(id, gc)

	case NoIDConfigured:
		d.logger.Warnf("Connected to guild %s (ID %d) with no configured ID; proceeding unverified.", g.Name, id)
		gc, _ := d.config.Guild(g.Name)
		d.bindGuild(id, gc)

	case Unverified:
		d.logger.Errorf("Guild %s (ID %d) does not match its configured ID, leaving.", g.Name, id)
		d.leaveGuild(g.ID)

	case NotConfigured:
		d.logger.Errorf("Guild %s (ID %d) is not configured, leaving.", g.Name, id)
		d.leaveGuild(g.ID)
	}
}

func (d *Discord) leaveGuild(guildID string) {
	if err := d.api.GuildLeave(guildID); err != nil {
		d.logger.Errorf("Failed to leave guild %s: %s.", guildID, err)
	}
}
