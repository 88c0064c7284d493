// Package mod - /mod removewarn command
package mod

import (
	"fmt"

	"github.com/PancyStudios/PancyModGo/pkg/discord"
	"github.com/PancyStudios/PancyModGo/pkg/errors"
	"github.com/PancyStudios/PancyModGo/pkg/moderation"
	"github.com/bwmarrin/discordgo"
)

// createRemoveWarnCommand creates the /mod removewarn subcommand
func createRemoveWarnCommand(svc *moderation.Service) *discord.Command {
	return discord.NewCommand(
		"removewarn",
		"Elimina una advertencia específica de un usuario",
		"mod",
		removeWarnHandler(svc),
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario del cual eliminar la advertencia",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:         discordgo.ApplicationCommandOptionInteger,
			Name:         "id",
			Description:  "ID de la advertencia a eliminar",
			Required:     true,
			Autocomplete: true,
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers).
		WithAutoComplete(removeWarnAutoComplete(svc))
}

// removeWarnHandler handles the /mod removewarn command
func removeWarnHandler(svc *moderation.Service) discord.CommandRunFunc {
	return func(ctx *discord.CommandContext) error {
		user := ctx.GetUserOption("usuario")
		if user == nil {
			return ctx.ReplyError("❌ Debes especificar un usuario válido.")
		}
		warnID := int(ctx.GetIntOption("id"))

		// Goroutine para no bloquear el hilo principal
		go func() {
			defer errors.RecoverMiddleware()()

			req := channelRequest(ctx, moderation.KindRemoveWarn)
			req.TargetID = user.ID
			req.WarningID = warnID

			outcome := svc.Dispatch(req)
			if outcome.Completed() {
				announceModLog(ctx, svc, fmt.Sprintf("🗑️ Se eliminó la advertencia `#%d` de **%s**.", warnID, user.Username))
			}

			replyOutcome(ctx, outcome, fmt.Sprintf(
				"✅ La advertencia `#%d` de **%s** ha sido eliminada.", warnID, user.Username))
		}()

		return nil
	}
}

// removeWarnAutoComplete suggests the target's current warning IDs
func removeWarnAutoComplete(svc *moderation.Service) discord.AutoCompleteFunc {
	return func(ctx *discord.CommandContext) {
		go func() {
			defer errors.RecoverMiddleware()()

			user := ctx.GetUserOption("usuario")
			if user == nil {
				return
			}

			warns, err := svc.Store().LoadWarnings(ctx.Interaction.GuildID)
			if err != nil || len(warns[user.ID]) == 0 {
				return
			}

			choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, 25)
			for i, warn := range warns[user.ID] {
				if i >= 25 {
					break
				}
				name := fmt.Sprintf("ID: %d - Razón: %s", warn.ID, warn.Reason)
				if len(name) > 100 {
					name = name[:97] + "..."
				}
				choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
					Name:  name,
					Value: warn.ID,
				})
			}

			ctx.SendAutoCompleteChoices(choices)
		}()
	}
}
