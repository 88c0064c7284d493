// Package mod - /mod timeout and /mod untimeout commands
package mod

import (
	"fmt"

	"github.com/PancyStudios/PancyModGo/pkg/discord"
	"github.com/PancyStudios/PancyModGo/pkg/moderation"
	"github.com/bwmarrin/discordgo"
)

// createTimeoutCommand creates the /mod timeout subcommand
func createTimeoutCommand(svc *moderation.Service) *discord.Command {
	return discord.NewCommand(
		"timeout",
		"Aísla temporalmente a un usuario",
		"mod",
		timeoutHandler(svc),
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario a aislar",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "duracion",
			Description: "Duración (ej: 30s, 5m, 1h, 1d)",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "razon",
			Description: "Razón del aislamiento",
			Required:    false,
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers).
		WithBotPermissions(discordgo.PermissionModerateMembers)
}

// timeoutHandler handles the /mod timeout command
func timeoutHandler(svc *moderation.Service) discord.CommandRunFunc {
	return func(ctx *discord.CommandContext) error {
		user := ctx.GetUserOption("usuario")
		if user == nil {
			return ctx.ReplyError("❌ Debes especificar un usuario.")
		}
		durationText := ctx.GetStringOption("duracion")
		reason := fallbackReason(ctx.GetStringOption("razon"))

		req, err := memberRequest(ctx, moderation.KindTimeout, user)
		if err != nil {
			return ctx.ReplyError("❌ Error interno resolviendo el servidor.")
		}
		req.Reason = reason
		req.Duration = durationText

		outcome := svc.Dispatch(req)
		if outcome.Completed() {
			announceModLog(ctx, svc, fmt.Sprintf("🔇 **%s** fue aislado por **%s**.\n**Razón:** %s", user.Username, durationText, reason))
		}

		return replyOutcome(ctx, outcome,
			fmt.Sprintf("🔇 **%s** ha sido aislado por **%s**.\n**Razón:** %s", user.Username, durationText, reason))
	}
}

// createUntimeoutCommand creates the /mod untimeout subcommand
func createUntimeoutCommand(svc *moderation.Service) *discord.Command {
	return discord.NewCommand(
		"untimeout",
		"Retira el aislamiento de un usuario",
		"mod",
		untimeoutHandler(svc),
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario al que retirar el aislamiento",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers).
		WithBotPermissions(discordgo.PermissionModerateMembers)
}

// untimeoutHandler handles the /mod untimeout command
func untimeoutHandler(svc *moderation.Service) discord.CommandRunFunc {
	return func(ctx *discord.CommandContext) error {
		user := ctx.GetUserOption("usuario")
		if user == nil {
			return ctx.ReplyError("❌ Debes especificar un usuario.")
		}

		req, err := memberRequest(ctx, moderation.KindRemoveTimeout, user)
		if err != nil {
			return ctx.ReplyError("❌ Error interno resolviendo el servidor.")
		}

		outcome := svc.Dispatch(req)
		if outcome.Completed() {
			announceModLog(ctx, svc, fmt.Sprintf("🔊 Se retiró el aislamiento de **%s**.", user.Username))
		}

		return replyOutcome(ctx, outcome,
			fmt.Sprintf("🔊 Se ha retirado el aislamiento de **%s**.", user.Username))
	}
}
