// Package mod - /mod lock and /mod unlock commands
package mod

import (
	"github.com/PancyStudios/PancyModGo/pkg/discord"
	"github.com/PancyStudios/PancyModGo/pkg/moderation"
	"github.com/bwmarrin/discordgo"
)

// createLockCommand creates the /mod lock subcommand
func createLockCommand(svc *moderation.Service) *discord.Command {
	return discord.NewCommand(
		"lock",
		"Bloquea el canal actual para @everyone",
		"mod",
		lockHandler(svc),
	).WithUserPermissions(discordgo.PermissionManageChannels).
		WithBotPermissions(discordgo.PermissionManageChannels)
}

// lockHandler handles the /mod lock command
func lockHandler(svc *moderation.Service) discord.CommandRunFunc {
	return func(ctx *discord.CommandContext) error {
		outcome := svc.Dispatch(channelRequest(ctx, moderation.KindLock))
		if outcome.Completed() {
			announceModLog(ctx, svc, "🔒 El canal <#"+ctx.Interaction.ChannelID+"> fue bloqueado.")
		}
		return replyOutcome(ctx, outcome, "🔒 Canal bloqueado. Solo los moderadores pueden escribir.")
	}
}

// createUnlockCommand creates the /mod unlock subcommand
func createUnlockCommand(svc *moderation.Service) *discord.Command {
	return discord.NewCommand(
		"unlock",
		"Desbloquea el canal actual",
		"mod",
		unlockHandler(svc),
	).WithUserPermissions(discordgo.PermissionManageChannels).
		WithBotPermissions(discordgo.PermissionManageChannels)
}

// unlockHandler handles the /mod unlock command
func unlockHandler(svc *moderation.Service) discord.CommandRunFunc {
	return func(ctx *discord.CommandContext) error {
		outcome := svc.Dispatch(channelRequest(ctx, moderation.KindUnlock))
		if outcome.Completed() {
			announceModLog(ctx, svc, "🔓 El canal <#"+ctx.Interaction.ChannelID+"> fue desbloqueado.")
		}
		return replyOutcome(ctx, outcome, "🔓 Canal desbloqueado.")
	}
}
