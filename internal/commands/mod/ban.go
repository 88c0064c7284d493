// Package mod - /mod ban command
package mod

import (
	"fmt"

	"github.com/PancyStudios/PancyModGo/pkg/discord"
	"github.com/PancyStudios/PancyModGo/pkg/moderation"
	"github.com/bwmarrin/discordgo"
)

// createBanCommand creates the /mod ban subcommand
func createBanCommand(svc *moderation.Service) *discord.Command {
	return discord.NewCommand(
		"ban",
		"Banea a un usuario del servidor",
		"mod",
		banHandler(svc),
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario a banear",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "razon",
			Description: "Razón del ban",
			Required:    false,
		},
	).WithUserPermissions(discordgo.PermissionBanMembers).
		WithBotPermissions(discordgo.PermissionBanMembers)
}

// banHandler handles the /mod ban command
func banHandler(svc *moderation.Service) discord.CommandRunFunc {
	return func(ctx *discord.CommandContext) error {
		user := ctx.GetUserOption("usuario")
		if user == nil {
			return ctx.ReplyError("❌ Debes especificar un usuario.")
		}
		reason := fallbackReason(ctx.GetStringOption("razon"))

		req, err := memberRequest(ctx, moderation.KindBan, user)
		if err != nil {
			return ctx.ReplyError("❌ Error interno resolviendo el servidor.")
		}
		req.Reason = reason

		outcome := svc.Dispatch(req)
		if outcome.Completed() {
			announceModLog(ctx, svc, fmt.Sprintf("🔨 **%s** fue baneado.\n**Razón:** %s", user.Username, reason))
		}

		return replyOutcome(ctx, outcome,
			fmt.Sprintf("🔨 **%s** ha sido baneado.\n**Razón:** %s", user.Username, reason))
	}
}
