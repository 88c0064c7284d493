// Package mod - /mod warns command (read-only listing, no guard)
package mod

import (
	"fmt"
	"time"

	"github.com/PancyStudios/PancyModGo/pkg/discord"
	"github.com/PancyStudios/PancyModGo/pkg/errors"
	"github.com/PancyStudios/PancyModGo/pkg/logger"
	"github.com/PancyStudios/PancyModGo/pkg/moderation"
	"github.com/bwmarrin/discordgo"
)

// createWarningsCommand creates the /mod warns subcommand
func createWarningsCommand(svc *moderation.Service) *discord.Command {
	return discord.NewCommand(
		"warns",
		"Lista de advertencias de un usuario",
		"mod",
		warningsHandler(svc),
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario a consultar",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers)
}

// warningsHandler handles the /mod warns command
func warningsHandler(svc *moderation.Service) discord.CommandRunFunc {
	return func(ctx *discord.CommandContext) error {
		user := ctx.GetUserOption("usuario")
		if user == nil {
			return ctx.ReplyError("❌ Debes especificar un usuario.")
		}

		// Goroutine para no bloquear el hilo principal
		go func() {
			defer errors.RecoverMiddleware()()

			warns, err := svc.Store().LoadWarnings(ctx.Interaction.GuildID)
			if err != nil {
				logger.Error(fmt.Sprintf("Error leyendo advertencias: %v", err), "CMD-Warns")
				ctx.ReplyError("❌ Error al consultar las advertencias.")
				return
			}

			list := warns[user.ID]
			if len(list) == 0 {
				ctx.ReplyEphemeralEmbed(&discordgo.MessageEmbed{
					Title:       fmt.Sprintf("🔖 - Lista de advertencias de %s", user.Username),
					Color:       colorSuccess,
					Description: "No se han encontrado advertencias del usuario en este servidor.",
					Footer: &discordgo.MessageEmbedFooter{
						Text: "💫 - Developed by PancyStudios",
					},
				})
				return
			}

			var description string
			for _, warn := range list {
				description += fmt.Sprintf("> **#%d** - %s\n> **Moderador:** <@%s>\n> **Fecha:** <t:%d>\n\n",
					warn.ID, warn.Reason, warn.Moderator, warn.Time.Unix())
			}
			description += fmt.Sprintf("> 💫 - **Cantidad de advertencias:** %d\n> 🕒 - **Fecha de consulta:** <t:%d>",
				len(list), time.Now().Unix())

			ctx.ReplyEmbed(&discordgo.MessageEmbed{
				Title:       fmt.Sprintf("🔖 - Lista de advertencias de %s (%s)", user.Username, user.ID),
				Color:       colorWarning,
				Description: description,
				Footer: &discordgo.MessageEmbedFooter{
					Text: "💫 - Developed by PancyStudios",
				},
			})
		}()

		return nil
	}
}
