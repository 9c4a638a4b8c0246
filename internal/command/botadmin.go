package command

// RegisterBotAdmin registers the bot administration commands, available to
// the bot owner only.
func RegisterBotAdmin(r *Router) {
	g := NewGroup("botadmin", "Bot administration commands.")
	g.Check = OwnerOnly
	g.Subcommand(&Command{
		Name: "shutdown",
		Help: "Shut down the bot (this command affects all servers).",
		Run:  shutdown,
	})
	g.Subcommand(&Command{
		Name: "dump-config",
		Help: "Display the current configuration with secrets redacted.",
		Run:  dumpConfig,
	})
	r.Register(g)
}

func shutdown(c *Context) error {
	if err := c.Reply("Overseer is shutting down..."); err != nil {
		c.Services.Logger.Errorf("Failed to acknowledge shutdown: %s.", err)
	}
	c.Services.Shutdown()
	return nil
}

func dumpConfig(c *Context) error {
	dump, err := c.Services.Config.DumpRedacted()
	if err != nil {
		return err
	}
	return c.Reply("```yaml\n" + dump + "```")
}
