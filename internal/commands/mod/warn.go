// Package mod - /mod warn command
package mod

import (
	"fmt"

	"github.com/PancyStudios/PancyModGo/pkg/discord"
	"github.com/PancyStudios/PancyModGo/pkg/errors"
	"github.com/PancyStudios/PancyModGo/pkg/moderation"
	"github.com/bwmarrin/discordgo"
)

// createWarnCommand creates the /mod warn subcommand
func createWarnCommand(svc *moderation.Service) *discord.Command {
	return discord.NewCommand(
		"warn",
		"Advierte a un usuario",
		"mod",
		warnHandler(svc),
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario a advertir",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "razon",
			Description: "Razón de la advertencia",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers)
}

// warnHandler handles the /mod warn command
func warnHandler(svc *moderation.Service) discord.CommandRunFunc {
	return func(ctx *discord.CommandContext) error {
		user := ctx.GetUserOption("usuario")
		if user == nil {
			return ctx.ReplyError("❌ Debes especificar un usuario.")
		}

		reason := ctx.GetStringOption("razon")
		if reason == "" {
			return ctx.ReplyError("❌ Debes especificar una razón.")
		}

		// Goroutine para no bloquear el hilo principal
		go func() {
			defer errors.RecoverMiddleware()()

			req, err := memberRequest(ctx, moderation.KindWarn, user)
			if err != nil {
				ctx.ReplyError("❌ Error interno resolviendo el servidor.")
				return
			}
			req.Reason = reason

			outcome := svc.Dispatch(req)
			if !outcome.Completed() {
				replyOutcome(ctx, outcome, "")
				return
			}

			total := 0
			if warns, err := svc.Store().LoadWarnings(ctx.Interaction.GuildID); err == nil {
				total = len(warns[user.ID])
			}

			announceModLog(ctx, svc, fmt.Sprintf("⚠️ **%s** fue advertido (#%d).\n**Razón:** %s",
				user.Username, outcome.Warning.ID, reason))

			replyOutcome(ctx, outcome, fmt.Sprintf(
				"⚠️ **%s** ha sido advertido.\n**Razón:** %s\n**ID:** `%d`\n**Total de advertencias:** %d",
				user.Username, reason, outcome.Warning.ID, total,
			))
		}()

		return nil
	}
}
