package config

import (
	"gopkg.in/yaml.v3"
)

// redactedPlaceholder replaces every secret in diagnostic dumps.
const redactedPlaceholder = "<redacted>"

type redactedGuild struct {
	Name     string `yaml:"name"`
	ID       uint64 `yaml:"id,omitempty"`
	FaqURL   string `yaml:"faqUrl,omitempty"`
	Channels struct {
		Moderator string `yaml:"moderator,omitempty"`
		Autopin   string `yaml:"autopin,omitempty"`
	} `yaml:"channels"`
	Options struct {
		AutopinThreshold int  `yaml:"autopinThreshold"`
		ShowModsDeletes  bool `yaml:"showModsDeletes"`
		ShowModsEdits    bool `yaml:"showModsEdits"`
	} `yaml:"options"`
}

type redactedConfig struct {
	Discord struct {
		Secret string `yaml:"secret"`
	} `yaml:"discord"`
	Database struct {
		ConnectionString string `yaml:"connectionString"`
		DatabaseName     string `yaml:"databaseName,omitempty"`
	} `yaml:"database"`
	Logging struct {
		Level       string `yaml:"level"`
		LogMessages bool   `yaml:"logMessages"`
	} `yaml:"logging"`
	Options struct {
		ParseBotMessages bool `yaml:"parseBotMessages"`
	} `yaml:"options"`
	Api struct {
		Port uint16 `yaml:"port"`
	} `yaml:"api"`
	Guilds []redactedGuild `yaml:"guilds"`
}

// DumpRedacted serializes the full configuration as YAML with the Discord
// secret and the database connection string replaced by a placeholder.
// Intended solely for the owner-only diagnostic command; the returned string
// never contains the literal secrets.
func (c *Config) DumpRedacted() (string, error) {
	r := redactedConfig{}
	r.Discord.Secret = redactedPlaceholder
	r.Database.ConnectionString = redactedPlaceholder
	r.Database.DatabaseName = c.Database.DatabaseName
	r.Logging.Level = c.Logging.Level.String()
	r.Logging.LogMessages = c.Logging.LogMessages
	r.Options.ParseBotMessages = c.Options.ParseBotMessages
	r.Api.Port = c.Api.Port

	r.Guilds = make([]redactedGuild, len(c.Guilds))
	for i, g := range c.Guilds {
		rg := redactedGuild{Name: g.Name, ID: g.ID, FaqURL: g.FaqURL}
		rg.Channels.Moderator = g.Channels.Moderator
		rg.Channels.Autopin = g.Channels.Autopin
		rg.Options.AutopinThreshold = g.Options.AutopinThreshold
		rg.Options.ShowModsDeletes = g.Options.ShowModsDeletes
		rg.Options.ShowModsEdits = g.Options.ShowModsEdits
		r.Guilds[i] = rg
	}

	b, err := yaml.Marshal(&r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
