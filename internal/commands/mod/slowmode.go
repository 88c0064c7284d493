// Package mod - /mod slowmode command
package mod

import (
	"fmt"

	"github.com/PancyStudios/PancyModGo/pkg/discord"
	"github.com/PancyStudios/PancyModGo/pkg/moderation"
	"github.com/bwmarrin/discordgo"
)

// createSlowmodeCommand creates the /mod slowmode subcommand
func createSlowmodeCommand(svc *moderation.Service) *discord.Command {
	return discord.NewCommand(
		"slowmode",
		"Configura el modo lento del canal",
		"mod",
		slowmodeHandler(svc),
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "segundos",
			Description: "Segundos entre mensajes (0 para desactivar, máx 21600)",
			Required:    true,
			MinValue:    func() *float64 { v := 0.0; return &v }(),
			MaxValue:    21600,
		},
	).WithUserPermissions(discordgo.PermissionManageChannels).
		WithBotPermissions(discordgo.PermissionManageChannels)
}

// slowmodeHandler handles the /mod slowmode command
func slowmodeHandler(svc *moderation.Service) discord.CommandRunFunc {
	return func(ctx *discord.CommandContext) error {
		seconds := int(ctx.GetIntOption("segundos"))

		req := channelRequest(ctx, moderation.KindSlowmode)
		req.Seconds = seconds

		outcome := svc.Dispatch(req)
		if seconds == 0 {
			return replyOutcome(ctx, outcome, "🐇 Modo lento desactivado en este canal.")
		}
		return replyOutcome(ctx, outcome,
			fmt.Sprintf("🐢 Modo lento configurado a **%d** segundos.", seconds))
	}
}
