package discord

import (
	"context"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
	"pkg.overseer.run/overseer/internal/command"
	"pkg.overseer.run/overseer/internal/config"
	"pkg.overseer.run/overseer/internal/util"
)

// Pins is the persisted pin-record store the auto-pin workflow
// deduplicates through.
type Pins interface {
	Contains(ctx context.Context, guildID, messageID uint64) (bool, error)
	Record(ctx context.Context, guildID, messageID uint64) (bool, error)
}

// Discord owns the gateway session and every event handler. Configuration
// is immutable; the only mutable state is the runtime binding from observed
// guild snowflakes to their configuration entries, established by guild
// verification.
type Discord struct {
	ctx     context.Context
	logger  *zap.SugaredLogger
	session *discordgo.Session
	api     Session
	config  *config.Config
	pins    Pins
	router  *command.Router

	mu      sync.RWMutex
	guilds  map[uint64]*config.Guild
	ownerID string
	ready   time.Time
}

func NewDiscord(ctx context.Context, log *zap.Logger, cfg *config.Config, pins Pins, shutdown context.CancelFunc) (*Discord, error) {
	s, err := discordgo.New("Bot " + cfg.Discord.Secret)
	if err != nil {
		return nil, err
	}

	s.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMessageReactions |
		discordgo.IntentsDirectMessages |
		discordgo.IntentMessageContent

	// The state cache supplies the before-images for moderation echo.
	s.State.MaxMessageCount = 5000

	d := &Discord{
		ctx:     ctx,
		logger:  log.Sugar(),
		session: s,
		api:     s,
		config:  cfg,
		pins:    pins,
		guilds:  make(map[uint64]*config.Guild),
	}

	d.router = command.NewRouter("!", &command.Services{
		Logger:   d.logger,
		Config:   cfg,
		Guild:    d.GuildConfig,
		IsOwner:  d.isOwner,
		IsAdmin:  d.isAdministrator,
		Shutdown: shutdown,
	})
	command.RegisterAll(d.router)

	return d, nil
}

func (d *Discord) addHandlers() {
	d.session.AddHandler(d.onReady)
	d.session.AddHandler(d.onGuildCreate)
	d.session.AddHandler(d.onMessageCreate)
	d.session.AddHandler(d.onMessageUpdate)
	d.session.AddHandler(d.onMessageDelete)
	d.session.AddHandler(d.onMessageReactionAdd)
}

func (d *Discord) Connect() error {
	d.addHandlers()
	return d.session.Open()
}

func (d *Discord) Close() error {
	return d.session.Close()
}

// GuildConfig resolves the configuration entry bound to an observed guild
// snowflake. Only guilds that passed verification (or were tolerated with
// a warning) are bound.
func (d *Discord) GuildConfig(guildID string) (*config.Guild, bool) {
	id, err := util.ParseSnowflake(guildID)
	if err != nil {
		return nil, false
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	g, ok := d.guilds[id]
	return g, ok
}

func (d *Discord) bindGuild(id uint64, g *config.Guild) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.guilds[id] = g
}

// GuildCount reports how many guilds are currently bound; used by the
// diagnostic API.
func (d *Discord) GuildCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.guilds)
}

// Uptime reports the time since the first ready event, or zero before it.
func (d *Discord) Uptime() time.Duration {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.ready.IsZero() {
		return 0
	}
	return time.Since(d.ready)
}

func (d *Discord) isOwner(userID string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.ownerID != "" && d.ownerID == userID
}

// isAdministrator checks whether the user holds administrator permission in
// the channel's guild.
func (d *Discord) isAdministrator(userID, channelID string) (bool, error) {
	perms, err := d.api.UserChannelPermissions(userID, channelID)
	if err != nil {
		return false, err
	}
	return perms&discordgo.PermissionAdministrator != 0, nil
}

// findChannel resolves a channel in a guild by display name, returning nil
// when no channel carries that name.
func (d *Discord) findChannel(guildID, name string) (*discordgo.Channel, error) {
	channels, err := d.api.GuildChannels(guildID)
	if err != nil {
		return nil, err
	}
	for _, ch := range channels {
		if ch.Name == name {
			return ch, nil
		}
	}
	return nil, nil
}
