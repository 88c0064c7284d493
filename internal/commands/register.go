// Package commands provides a registry for organizing bot commands.
// Commands are organized in subdirectories by category (mod, dev, etc.)
package commands

import (
	"github.com/PancyStudios/PancyModGo/internal/commands/dev"
	"github.com/PancyStudios/PancyModGo/internal/commands/mod"
	"github.com/PancyStudios/PancyModGo/pkg/discord"
	"github.com/PancyStudios/PancyModGo/pkg/moderation"
)

// RegisterAll registers all commands with the Discord client
func RegisterAll(client *discord.ExtendedClient, svc *moderation.Service) {
	// Moderation commands (/mod kick, /mod ban, /mod warn, ...)
	mod.RegisterModCommands(client, svc)

	// Developer commands, only registered in the dev guild
	dev.RegisterDevCommands(client)
}
