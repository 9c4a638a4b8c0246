package command

import (
	"errors"
	"strings"
	"unicode"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
	"pkg.overseer.run/overseer/internal/config"
)

// ErrNotImplemented marks commands that exist but have no behavior yet.
// The router answers them with a fixed message; they are not errors for
// logging purposes.
var ErrNotImplemented = errors.New("not yet implemented")

// UsageError is returned by handlers when the invocation arguments are
// malformed. The message is replied to the user verbatim.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

// HandlerFunc runs one command invocation.
type HandlerFunc func(*Context) error

// CheckFunc gates a command or command group. Returning false produces the
// fixed permission-denied reply.
type CheckFunc func(*Context) (bool, error)

// Command is one registered command. A command with a non-nil Sub map is a
// group; its Run fires when no known subcommand follows, and its Check and
// GuildOnly gate apply to every subcommand.
type Command struct {
	Name      string
	Help      string
	GuildOnly bool
	Check     CheckFunc
	Run       HandlerFunc
	Sub       map[string]*Command
}

// NewGroup creates a group command whose bare invocation tells the user a
// subcommand is required.
func NewGroup(name, help string) *Command {
	return &Command{
		Name: name,
		Help: help,
		Sub:  map[string]*Command{},
		Run: func(c *Context) error {
			return c.Reply("You must specify a subcommand to `" + name + "`.")
		},
	}
}

// Subcommand registers a subcommand on a group.
func (c *Command) Subcommand(sc *Command) {
	c.Sub[sc.Name] = sc
}

// Services is the capability set handed to command handlers. Everything a
// handler touches beyond its own arguments arrives through here; there is
// no ambient state.
type Services struct {
	Logger   *zap.SugaredLogger
	Config   *config.Config
	Guild    func(guildID string) (*config.Guild, bool)
	IsOwner  func(userID string) bool
	IsAdmin  func(userID, channelID string) (bool, error)
	Shutdown func()
}

// Router matches prefixed message lines to registered commands and runs
// them. Handlers are plain functions; modules register themselves against
// the router explicitly.
type Router struct {
	prefix   string
	logger   *zap.SugaredLogger
	services *Services
	commands map[string]*Command
}

func NewRouter(prefix string, s *Services) *Router {
	return &Router{
		prefix:   prefix,
		logger:   s.Logger,
		services: s,
		commands: map[string]*Command{},
	}
}

func (r *Router) Register(c *Command) {
	r.commands[c.Name] = c
}

// splitWord cuts the first whitespace-delimited word off s, returning the
// word and the trimmed remainder.
func splitWord(s string) (string, string) {
	s = strings.TrimSpace(s)
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimSpace(s[i:])
}

// Dispatch routes one message to its command, if any. Handler failures are
// logged and answered where the taxonomy says so; they never propagate to
// the event loop.
func (r *Router) Dispatch(s Sender, m *discordgo.Message) {
	if !strings.HasPrefix(m.Content, r.prefix) {
		return
	}

	word, rest := splitWord(strings.TrimPrefix(m.Content, r.prefix))
	cmd, ok := r.commands[word]
	if !ok {
		return
	}

	checks := make([]CheckFunc, 0, 2)
	if cmd.Check != nil {
		checks = append(checks, cmd.Check)
	}
	guildOnly := cmd.GuildOnly

	if cmd.Sub != nil {
		if sw, srest := splitWord(rest); sw != "" {
			if sc, ok := cmd.Sub[sw]; ok {
				cmd, rest = sc, srest
				if cmd.Check != nil {
					checks = append(checks, cmd.Check)
				}
				guildOnly = guildOnly || cmd.GuildOnly
			}
		}
	}

	ctx := &Context{
		Services: r.services,
		Session:  s,
		Message:  m,
		Rest:     rest,
		Args:     strings.Fields(rest),
	}

	if guildOnly && m.GuildID == "" {
		if err := ctx.Reply("This command cannot be used in private messages."); err != nil {
			r.logger.Errorf("Failed to send reply: %s.", err)
		}
		return
	}

	for _, check := range checks {
		allowed, err := check(ctx)
		if err != nil {
			r.logger.Errorf("Permission check for command %s failed: %s.", cmd.Name, err)
			return
		}
		if !allowed {
			r.logger.Infof("User %s is not permitted to run the command `%s`.", m.Author.ID, m.Content)
			if err := ctx.Reply("You are not permitted to run the command `" + m.Content + "`."); err != nil {
				r.logger.Errorf("Failed to send reply: %s.", err)
			}
			return
		}
	}

	r.logger.Infof("Command invoked: %s.", cmd.Name)
	if err := cmd.Run(ctx); err != nil {
		var ue *UsageError
		switch {
		case errors.Is(err, ErrNotImplemented):
			if err := ctx.Reply("This command is not yet implemented."); err != nil {
				r.logger.Errorf("Failed to send reply: %s.", err)
			}
		case errors.As(err, &ue):
			if err := ctx.Reply(ue.Message); err != nil {
				r.logger.Errorf("Failed to send reply: %s.", err)
			}
		default:
			r.logger.Errorf("Command %s failed: %s.", cmd.Name, err)
		}
	}
}

// RegisterAll wires every command module into the router.
func RegisterAll(r *Router) {
	RegisterCore(r)
	RegisterRandom(r)
	RegisterAdmin(r)
	RegisterBotAdmin(r)
	RegisterDev(r)
}
