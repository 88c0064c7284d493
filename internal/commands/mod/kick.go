// Package mod - /mod kick command
package mod

import (
	"fmt"

	"github.com/PancyStudios/PancyModGo/pkg/discord"
	"github.com/PancyStudios/PancyModGo/pkg/moderation"
	"github.com/bwmarrin/discordgo"
)

// createKickCommand creates the /mod kick subcommand
func createKickCommand(svc *moderation.Service) *discord.Command {
	return discord.NewCommand(
		"kick",
		"Expulsa a un usuario del servidor",
		"mod",
		kickHandler(svc),
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario a expulsar",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "razon",
			Description: "Razón de la expulsión",
			Required:    false,
		},
	).WithUserPermissions(discordgo.PermissionKickMembers).
		WithBotPermissions(discordgo.PermissionKickMembers)
}

// kickHandler handles the /mod kick command
func kickHandler(svc *moderation.Service) discord.CommandRunFunc {
	return func(ctx *discord.CommandContext) error {
		user := ctx.GetUserOption("usuario")
		if user == nil {
			return ctx.ReplyError("❌ Debes especificar un usuario.")
		}
		reason := fallbackReason(ctx.GetStringOption("razon"))

		req, err := memberRequest(ctx, moderation.KindKick, user)
		if err != nil {
			return ctx.ReplyError("❌ Error interno resolviendo el servidor.")
		}
		req.Reason = reason

		outcome := svc.Dispatch(req)
		if outcome.Completed() {
			announceModLog(ctx, svc, fmt.Sprintf("👢 **%s** fue expulsado.\n**Razón:** %s", user.Username, reason))
		}

		return replyOutcome(ctx, outcome,
			fmt.Sprintf("👢 **%s** ha sido expulsado.\n**Razón:** %s", user.Username, reason))
	}
}
