// Package mod - /mod unban command
package mod

import (
	"fmt"

	"github.com/PancyStudios/PancyModGo/pkg/discord"
	"github.com/PancyStudios/PancyModGo/pkg/moderation"
	"github.com/bwmarrin/discordgo"
)

// createUnbanCommand creates the /mod unban subcommand
func createUnbanCommand(svc *moderation.Service) *discord.Command {
	return discord.NewCommand(
		"unban",
		"Desbanea a un usuario por su ID",
		"mod",
		unbanHandler(svc),
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "id",
			Description: "ID del usuario a desbanear",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionBanMembers).
		WithBotPermissions(discordgo.PermissionBanMembers)
}

// unbanHandler handles the /mod unban command
func unbanHandler(svc *moderation.Service) discord.CommandRunFunc {
	return func(ctx *discord.CommandContext) error {
		userID := ctx.GetStringOption("id")
		if userID == "" {
			return ctx.ReplyError("❌ Debes especificar la ID del usuario.")
		}

		req := channelRequest(ctx, moderation.KindUnban)
		req.TargetID = userID

		outcome := svc.Dispatch(req)
		if outcome.Completed() {
			announceModLog(ctx, svc, fmt.Sprintf("🔓 El usuario <@%s> fue desbaneado.", userID))
		}

		return replyOutcome(ctx, outcome,
			fmt.Sprintf("🔓 El usuario <@%s> ha sido desbaneado.", userID))
	}
}
