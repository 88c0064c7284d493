package discord

import (
	"fmt"

	"github.com/PancyStudios/PancyModGo/pkg/models"
	"github.com/bwmarrin/discordgo"
)

// ResolveMember builds the guard's view of a guild member: its rank (the
// highest assigned role position) and the ownership/bot flags.
func ResolveMember(s *discordgo.Session, guildID, userID string) (*models.Member, error) {
	member, err := s.State.Member(guildID, userID)
	if err != nil {
		member, err = s.GuildMember(guildID, userID)
		if err != nil {
			return nil, fmt.Errorf("miembro %s no encontrado en %s: %w", userID, guildID, err)
		}
	}

	guild, err := s.State.Guild(guildID)
	if err != nil {
		return nil, fmt.Errorf("servidor %s no encontrado: %w", guildID, err)
	}

	resolved := &models.Member{
		ID:      userID,
		Rank:    highestRolePosition(guild, member),
		IsOwner: guild.OwnerID == userID,
		IsBot:   member.User != nil && member.User.Bot,
	}
	return resolved, nil
}

// BotMember resolves the executing bot account's own membership in the
// guild, used for the bot-rank rule.
func BotMember(s *discordgo.Session, guildID string) (models.Member, error) {
	member, err := ResolveMember(s, guildID, s.State.User.ID)
	if err != nil {
		return models.Member{}, err
	}
	return *member, nil
}

// highestRolePosition returns the position of the member's highest role.
// A member with no roles ranks at zero, the @everyone level.
func highestRolePosition(guild *discordgo.Guild, member *discordgo.Member) int {
	positions := make(map[string]int, len(guild.Roles))
	for _, role := range guild.Roles {
		positions[role.ID] = role.Position
	}

	highest := 0
	for _, roleID := range member.Roles {
		if pos, ok := positions[roleID]; ok && pos > highest {
			highest = pos
		}
	}
	return highest
}
