package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"pkg.overseer.run/overseer/internal/config/hook"
)

// GuildChannels names the special channels of a guild. Channels are
// referenced by name, not snowflake, since names are what operators see.
type GuildChannels struct {
	Moderator string
	Autopin   string
}

// GuildOptions holds the per-guild feature switches.
type GuildOptions struct {
	AutopinThreshold int
	ShowModsDeletes  bool
	ShowModsEdits    bool
}

// Guild is the configuration entry for a single guild the bot serves.
// Name is the unique key; ID is optional (0 means not configured) and,
// when present, must match the snowflake Discord reports for the guild.
type Guild struct {
	Name     string
	ID       uint64
	FaqURL   string `mapstructure:"faqUrl"`
	Channels GuildChannels
	Options  GuildOptions
}

// FAQURL returns the configured FAQ link, reporting whether one is set.
func (g *Guild) FAQURL() (string, bool) {
	return g.FaqURL, g.FaqURL != ""
}

// ModeratorChannel returns the configured moderator channel name,
// reporting whether one is set.
func (g *Guild) ModeratorChannel() (string, bool) {
	return g.Channels.Moderator, g.Channels.Moderator != ""
}

// AutopinChannel returns the configured auto-pin destination channel name,
// reporting whether one is set.
func (g *Guild) AutopinChannel() (string, bool) {
	return g.Channels.Autopin, g.Channels.Autopin != ""
}

// Config is the immutable process configuration. It is constructed once by
// Read (or ReadFrom) at startup, validated, and then only ever read; there
// is no reload. Concurrent reads need no synchronization.
type Config struct {
	Discord struct {
		Secret string
	}

	Database struct {
		ConnectionString string
		DatabaseName     string
	}

	Logging struct {
		Level       zapcore.Level
		LogMessages bool
	}

	Options struct {
		ParseBotMessages bool
	}

	Api struct {
		Port uint16
	}

	Guilds []*Guild

	byName map[string]*Guild
}

// Guild looks up the configuration entry for a guild by its display name.
// The match is case-sensitive and exact.
func (c *Config) Guild(name string) (*Guild, bool) {
	g, ok := c.byName[name]
	return g, ok
}

// Read loads configuration from config.yaml in the working directory,
// with CONF_-prefixed environment variables taking precedence.
func Read() (*Config, error) {
	v := viper.New()
	configureEnv(v)
	configureLocation(v)
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}
	return unmarshalConfig(v)
}

// ReadFrom loads configuration from an arbitrary YAML stream. Used by tests
// and by deployments that pipe configuration in.
func ReadFrom(r io.Reader) (*Config, error) {
	v := viper.New()
	configureEnv(v)
	v.SetConfigType("yaml")
	if err := v.ReadConfig(r); err != nil {
		return nil, err
	}
	return unmarshalConfig(v)
}

func configureEnv(v *viper.Viper) {
	v.AutomaticEnv()
	v.SetEnvPrefix("conf")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func configureLocation(v *viper.Viper) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
}

func unmarshalConfig(v *viper.Viper) (*Config, error) {
	c := &Config{}
	if err := v.Unmarshal(c, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		hook.Level(),
	))); err != nil {
		return nil, err
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// validate enforces the structural invariants a running bot depends on.
// A misconfigured bot must not start with partial or default settings for
// secrets, so every violation here is startup-fatal.
func (c *Config) validate() error {
	if c.Discord.Secret == "" {
		return fmt.Errorf("discord.secret is not set")
	}
	if c.Database.ConnectionString == "" {
		return fmt.Errorf("database.connectionString is not set")
	}

	c.byName = make(map[string]*Guild, len(c.Guilds))
	for _, g := range c.Guilds {
		if g.Name == "" {
			return fmt.Errorf("guild entry is missing a name")
		}
		if _, dup := c.byName[g.Name]; dup {
			return fmt.Errorf("duplicate guild entry %q", g.Name)
		}
		if g.Options.AutopinThreshold < 0 {
			return fmt.Errorf("guild %q: autopinThreshold must not be negative", g.Name)
		}
		c.byName[g.Name] = g
	}

	return nil
}
