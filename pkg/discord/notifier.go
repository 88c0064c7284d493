package discord

import (
	"time"

	"github.com/bwmarrin/discordgo"
)

// DMNotifier delivers moderation notices to the target's direct messages.
// It implements moderation.Notifier; delivery is best-effort and the
// dispatcher swallows any error returned here.
type DMNotifier struct {
	session *discordgo.Session
}

// NewDMNotifier creates the notifier over an open session
func NewDMNotifier(session *discordgo.Session) *DMNotifier {
	return &DMNotifier{session: session}
}

// Notify opens (or reuses) the DM channel with the user and sends the
// notice as an embed
func (n *DMNotifier) Notify(userID, message string) error {
	channel, err := n.session.UserChannelCreate(userID)
	if err != nil {
		return err
	}

	embed := &discordgo.MessageEmbed{
		Title:       "ℹ️ - Aviso de moderación",
		Description: message,
		Color:       0x5865F2,
		Footer: &discordgo.MessageEmbedFooter{
			Text: "💫 - Developed by PancyStudios",
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}

	_, err = n.session.ChannelMessageSendEmbed(channel.ID, embed)
	return err
}
