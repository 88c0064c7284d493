// Package mod - /mod blacklist command (read-only listing, no guard)
package mod

import (
	"fmt"

	"github.com/PancyStudios/PancyModGo/pkg/discord"
	"github.com/PancyStudios/PancyModGo/pkg/errors"
	"github.com/PancyStudios/PancyModGo/pkg/logger"
	"github.com/PancyStudios/PancyModGo/pkg/moderation"
	"github.com/bwmarrin/discordgo"
)

// createBlacklistCommand creates the /mod blacklist subcommand
func createBlacklistCommand(svc *moderation.Service) *discord.Command {
	return discord.NewCommand(
		"blacklist",
		"Lista de miembros con al menos una advertencia",
		"mod",
		blacklistHandler(svc),
	).WithUserPermissions(discordgo.PermissionModerateMembers)
}

// blacklistHandler handles the /mod blacklist command
func blacklistHandler(svc *moderation.Service) discord.CommandRunFunc {
	return func(ctx *discord.CommandContext) error {
		go func() {
			defer errors.RecoverMiddleware()()

			entries, err := svc.Store().Blacklist(ctx.Interaction.GuildID)
			if err != nil {
				logger.Error(fmt.Sprintf("Error leyendo blacklist: %v", err), "CMD-Blacklist")
				ctx.ReplyError("❌ Error al consultar la lista.")
				return
			}

			if len(entries) == 0 {
				ctx.ReplyEphemeral("✅ Ningún miembro de este servidor tiene advertencias.")
				return
			}

			var description string
			for i, entry := range entries {
				if i >= 20 {
					description += fmt.Sprintf("\n… y %d miembros más.", len(entries)-i)
					break
				}
				description += fmt.Sprintf("> <@%s> — **%d** advertencia(s)\n", entry.MemberID, entry.Count)
			}

			ctx.ReplyEmbed(&discordgo.MessageEmbed{
				Title:       "🚫 - Miembros con advertencias",
				Color:       colorWarning,
				Description: description,
				Footer: &discordgo.MessageEmbedFooter{
					Text: fmt.Sprintf("Total: %d miembros", len(entries)),
				},
			})
		}()

		return nil
	}
}
