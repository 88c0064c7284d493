// Package mod provides the moderation commands organized as subcommands
// under /mod. Each command is in its own file for better organization.
package mod

import (
	"fmt"
	"time"

	"github.com/PancyStudios/PancyModGo/pkg/discord"
	"github.com/PancyStudios/PancyModGo/pkg/logger"
	"github.com/PancyStudios/PancyModGo/pkg/moderation"
	"github.com/PancyStudios/PancyModGo/pkg/models"
	"github.com/bwmarrin/discordgo"
)

// Embed colors shared by the moderation replies
const (
	colorMain    = 0x5865F2
	colorSuccess = 0x00FF00
	colorWarning = 0xFFA500
	colorError   = 0xFF0000
)

// memberRequest builds the dispatch request for a member-targeted action,
// resolving the actor, the target and the bot's own membership. A target
// that cannot be resolved stays nil so the guard rejects it.
func memberRequest(ctx *discord.CommandContext, kind moderation.Kind, target *discordgo.User) (moderation.Request, error) {
	guildID := ctx.Interaction.GuildID

	actor, err := discord.ResolveMember(ctx.Session, guildID, ctx.User().ID)
	if err != nil {
		return moderation.Request{}, fmt.Errorf("no se pudo resolver al moderador: %w", err)
	}

	bot, err := discord.BotMember(ctx.Session, guildID)
	if err != nil {
		return moderation.Request{}, fmt.Errorf("no se pudo resolver al bot: %w", err)
	}

	req := moderation.Request{
		Kind:      kind,
		TenantID:  guildID,
		ChannelID: ctx.Interaction.ChannelID,
		Actor:     *actor,
		Bot:       bot,
	}

	if target != nil {
		req.TargetID = target.ID
		if member, err := discord.ResolveMember(ctx.Session, guildID, target.ID); err == nil {
			req.Target = member
		}
	}
	return req, nil
}

// channelRequest builds the dispatch request for a channel-scoped action
func channelRequest(ctx *discord.CommandContext, kind moderation.Kind) moderation.Request {
	actor := models.Member{ID: ctx.User().ID}
	return moderation.Request{
		Kind:      kind,
		TenantID:  ctx.Interaction.GuildID,
		ChannelID: ctx.Interaction.ChannelID,
		Actor:     actor,
	}
}

// replyOutcome renders a non-completed outcome as an ephemeral error and
// a completed one with the given success content.
func replyOutcome(ctx *discord.CommandContext, outcome moderation.Outcome, success string) error {
	if !outcome.Completed() {
		msg := outcome.Message
		if msg == "" {
			msg = "❌ La acción no se pudo completar."
		}
		return ctx.ReplyError(msg)
	}

	return ctx.ReplyEmbed(&discordgo.MessageEmbed{
		Color:       colorMain,
		Description: success,
		Timestamp:   time.Now().Format(time.RFC3339),
	})
}

// announceModLog posts the action description to the tenant's configured
// log channel, if any. Failures are logged and dropped.
func announceModLog(ctx *discord.CommandContext, svc *moderation.Service, description string) {
	channelID, err := svc.Store().LogChannel(ctx.Interaction.GuildID)
	if err != nil || channelID == "" {
		return
	}

	embed := &discordgo.MessageEmbed{
		Title:       "🛡️ Registro de moderación",
		Description: description,
		Color:       colorWarning,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Moderador: %s", ctx.User().String()),
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}

	if _, err := ctx.Session.ChannelMessageSendEmbed(channelID, embed); err != nil {
		logger.Debug(fmt.Sprintf("No se pudo enviar al canal de logs %s: %v", channelID, err), "ModLog")
	}
}

// fallbackReason normalizes an empty reason option
func fallbackReason(reason string) string {
	if reason == "" {
		return "Sin razón especificada"
	}
	return reason
}
