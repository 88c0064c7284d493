// Package discord - the discordgo-backed action executor.
package discord

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/PancyStudios/PancyModGo/pkg/moderation"
	"github.com/bwmarrin/discordgo"
)

// SessionExecutor applies moderation side effects through a live gateway
// session. It implements moderation.Executor.
type SessionExecutor struct {
	session *discordgo.Session
}

// NewSessionExecutor creates the executor over an open session
func NewSessionExecutor(session *discordgo.Session) *SessionExecutor {
	return &SessionExecutor{session: session}
}

// Kick removes a member from the guild
func (e *SessionExecutor) Kick(tenantID, userID, reason string) error {
	return e.session.GuildMemberDeleteWithReason(tenantID, userID, reason)
}

// Ban bans a member from the guild without deleting message history
func (e *SessionExecutor) Ban(tenantID, userID, reason string) error {
	return e.session.GuildBanCreateWithReason(tenantID, userID, reason, 0)
}

// Unban lifts a ban. An unknown ban surfaces as moderation.ErrNotFound.
func (e *SessionExecutor) Unban(tenantID, userID string) error {
	if err := e.session.GuildBanDelete(tenantID, userID); err != nil {
		return asNotFound(err)
	}
	return nil
}

// Timeout isolates a member until the given instant, recording the
// reason in the guild's audit log
func (e *SessionExecutor) Timeout(tenantID, userID string, until time.Time, reason string) error {
	if reason == "" {
		return e.session.GuildMemberTimeout(tenantID, userID, &until)
	}
	return e.session.GuildMemberTimeout(tenantID, userID, &until, discordgo.WithAuditLogReason(reason))
}

// RemoveTimeout lifts a member's timeout
func (e *SessionExecutor) RemoveTimeout(tenantID, userID string) error {
	return e.session.GuildMemberTimeout(tenantID, userID, nil)
}

// Purge bulk-deletes the most recent count messages of a channel
func (e *SessionExecutor) Purge(channelID string, count int) error {
	messages, err := e.session.ChannelMessages(channelID, count, "", "", "")
	if err != nil {
		return err
	}

	ids := make([]string, 0, len(messages))
	for _, msg := range messages {
		ids = append(ids, msg.ID)
	}
	if len(ids) == 0 {
		return nil
	}
	return e.session.ChannelMessagesBulkDelete(channelID, ids)
}

// SetSlowmode sets the channel's per-user rate limit in seconds
func (e *SessionExecutor) SetSlowmode(channelID string, seconds int) error {
	_, err := e.session.ChannelEdit(channelID, &discordgo.ChannelEdit{
		RateLimitPerUser: &seconds,
	})
	return err
}

// Lock denies SendMessages to @everyone on the channel, preserving the
// other bits of an existing overwrite
func (e *SessionExecutor) Lock(tenantID, channelID string) error {
	allow, deny := e.everyoneOverwrite(tenantID, channelID)
	deny |= discordgo.PermissionSendMessages
	allow &^= discordgo.PermissionSendMessages
	return e.session.ChannelPermissionSet(channelID, tenantID, discordgo.PermissionOverwriteTypeRole, allow, deny)
}

// Unlock clears the SendMessages denial set by Lock
func (e *SessionExecutor) Unlock(tenantID, channelID string) error {
	allow, deny := e.everyoneOverwrite(tenantID, channelID)
	deny &^= discordgo.PermissionSendMessages
	return e.session.ChannelPermissionSet(channelID, tenantID, discordgo.PermissionOverwriteTypeRole, allow, deny)
}

// everyoneOverwrite returns the current @everyone overwrite bits for a
// channel. The @everyone role ID equals the guild ID.
func (e *SessionExecutor) everyoneOverwrite(tenantID, channelID string) (allow, deny int64) {
	channel, err := e.session.State.Channel(channelID)
	if err != nil {
		channel, err = e.session.Channel(channelID)
		if err != nil {
			return 0, 0
		}
	}

	for _, ow := range channel.PermissionOverwrites {
		if ow.Type == discordgo.PermissionOverwriteTypeRole && ow.ID == tenantID {
			return ow.Allow, ow.Deny
		}
	}
	return 0, 0
}

// asNotFound converts a REST 404 into the dispatcher's not-found error
func asNotFound(err error) error {
	var restErr *discordgo.RESTError
	if errors.As(err, &restErr) && restErr.Response != nil && restErr.Response.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %v", moderation.ErrNotFound, err)
	}
	return err
}
