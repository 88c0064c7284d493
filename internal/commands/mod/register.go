// Package mod provides moderation commands organized as subcommands under /mod
// Each command is in its own file for better organization
package mod

import (
	"github.com/PancyStudios/PancyModGo/pkg/discord"
	"github.com/PancyStudios/PancyModGo/pkg/moderation"
)

// RegisterModCommands registers all moderation commands as /mod subcommands
func RegisterModCommands(client *discord.ExtendedClient, svc *moderation.Service) {
	// Create individual subcommands (each can be in its own file)
	kickCmd := createKickCommand(svc)
	banCmd := createBanCommand(svc)
	unbanCmd := createUnbanCommand(svc)
	timeoutCmd := createTimeoutCommand(svc)
	untimeoutCmd := createUntimeoutCommand(svc)
	warnCmd := createWarnCommand(svc)
	removeWarnCmd := createRemoveWarnCommand(svc)
	warningsCmd := createWarningsCommand(svc)
	blacklistCmd := createBlacklistCommand(svc)
	modLogsCmd := createModLogsCommand(svc)
	clearCmd := createClearCommand(svc)
	slowmodeCmd := createSlowmodeCommand(svc)
	lockCmd := createLockCommand(svc)
	unlockCmd := createUnlockCommand(svc)

	// Build the /mod command group with all subcommands
	modGroup := client.CommandHandler.BuildCommandGroup(
		"mod",
		"Comandos de moderación",
		kickCmd,
		banCmd,
		unbanCmd,
		timeoutCmd,
		untimeoutCmd,
		warnCmd,
		removeWarnCmd,
		warningsCmd,
		blacklistCmd,
		modLogsCmd,
		clearCmd,
		slowmodeCmd,
		lockCmd,
		unlockCmd,
	)

	// Register the command group
	client.CommandHandler.AddGlobalCommand(modGroup)
}
