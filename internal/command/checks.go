package command

// OwnerOnly admits only the bot owner.
func OwnerOnly(c *Context) (bool, error) {
	return c.Services.IsOwner(c.Message.Author.ID), nil
}

// AdminOnly admits only members holding administrator permission in the
// guild the command was invoked in.
func AdminOnly(c *Context) (bool, error) {
	if c.Message.GuildID == "" {
		return false, nil
	}
	return c.Services.IsAdmin(c.Message.Author.ID, c.Message.ChannelID)
}
