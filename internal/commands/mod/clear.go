// Package mod - /mod clear command (bulk message deletion)
package mod

import (
	"fmt"

	"github.com/PancyStudios/PancyModGo/pkg/discord"
	"github.com/PancyStudios/PancyModGo/pkg/moderation"
	"github.com/bwmarrin/discordgo"
)

// createClearCommand creates the /mod clear subcommand
func createClearCommand(svc *moderation.Service) *discord.Command {
	return discord.NewCommand(
		"clear",
		"Elimina los últimos mensajes del canal",
		"mod",
		clearHandler(svc),
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "cantidad",
			Description: "Cantidad de mensajes a eliminar (1-100)",
			Required:    true,
			MinValue:    func() *float64 { v := 1.0; return &v }(),
			MaxValue:    100,
		},
	).WithUserPermissions(discordgo.PermissionManageMessages).
		WithBotPermissions(discordgo.PermissionManageMessages)
}

// clearHandler handles the /mod clear command
func clearHandler(svc *moderation.Service) discord.CommandRunFunc {
	return func(ctx *discord.CommandContext) error {
		count := int(ctx.GetIntOption("cantidad"))

		req := channelRequest(ctx, moderation.KindPurge)
		req.Count = count

		outcome := svc.Dispatch(req)
		if !outcome.Completed() {
			return replyOutcome(ctx, outcome, "")
		}

		return ctx.ReplyEphemeral(fmt.Sprintf("🧹 Se eliminaron los últimos **%d** mensajes.", count))
	}
}
