// Package mod - /mod logs command (sets the mod-log channel)
package mod

import (
	"fmt"

	"github.com/PancyStudios/PancyModGo/pkg/discord"
	"github.com/PancyStudios/PancyModGo/pkg/moderation"
	"github.com/bwmarrin/discordgo"
)

// createModLogsCommand creates the /mod logs subcommand
func createModLogsCommand(svc *moderation.Service) *discord.Command {
	return discord.NewCommand(
		"logs",
		"Establece el canal de registro de moderación",
		"mod",
		modLogsHandler(svc),
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionChannel,
			Name:        "canal",
			Description: "Canal donde enviar los registros",
			Required:    true,
			ChannelTypes: []discordgo.ChannelType{
				discordgo.ChannelTypeGuildText,
			},
		},
	).WithUserPermissions(discordgo.PermissionAdministrator)
}

// modLogsHandler handles the /mod logs command
func modLogsHandler(svc *moderation.Service) discord.CommandRunFunc {
	return func(ctx *discord.CommandContext) error {
		channel := ctx.GetChannelOption("canal")
		if channel == nil {
			return ctx.ReplyError("❌ Debes especificar un canal.")
		}

		req := channelRequest(ctx, moderation.KindSetLogChannel)
		req.LogChannelID = channel.ID

		outcome := svc.Dispatch(req)
		return replyOutcome(ctx, outcome,
			fmt.Sprintf("📋 Los registros de moderación se enviarán a <#%s>.", channel.ID))
	}
}
