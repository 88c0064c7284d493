// Package moderation sequences one moderation request: authorization,
// target notification, the external platform side effect and the audit
// write, resolving every failure path into a single Outcome value.
package moderation

import (
	"time"

	"github.com/PancyStudios/PancyModGo/pkg/models"
)

// Kind identifies the moderation action variant
type Kind int

const (
	KindKick Kind = iota
	KindBan
	KindUnban
	KindTimeout
	KindRemoveTimeout
	KindWarn
	KindRemoveWarn
	KindSetLogChannel
	KindPurge
	KindSlowmode
	KindLock
	KindUnlock
)

// String returns the short wire name of the action kind
func (k Kind) String() string {
	switch k {
	case KindKick:
		return "kick"
	case KindBan:
		return "ban"
	case KindUnban:
		return "unban"
	case KindTimeout:
		return "timeout"
	case KindRemoveTimeout:
		return "remove-timeout"
	case KindWarn:
		return "warn"
	case KindRemoveWarn:
		return "remove-warn"
	case KindSetLogChannel:
		return "set-log-channel"
	case KindPurge:
		return "purge"
	case KindSlowmode:
		return "slowmode"
	case KindLock:
		return "lock"
	case KindUnlock:
		return "unlock"
	default:
		return "unknown"
	}
}

// Request is one inbound moderation action. Target is nil for actions that
// act on the channel or a raw user ID (unban, purge, slowmode, lock,
// unlock, set-log-channel). Bot is the executing bot account's own
// membership in the tenant, resolved by the adapter at request time.
type Request struct {
	Kind      Kind
	TenantID  string
	ChannelID string

	Actor  models.Member
	Target *models.Member
	Bot    models.Member

	// TargetID is the raw user ID for actions without a resolved member
	TargetID string

	Reason string

	// Duration is the raw duration text for timeout requests ("30s", "1h")
	Duration string

	WarningID    int
	Count        int
	Seconds      int
	LogChannelID string
}

// targetID returns the user ID the action is directed at, preferring the
// resolved member
func (r Request) targetID() string {
	if r.Target != nil {
		return r.Target.ID
	}
	return r.TargetID
}

// ActionEvent is the telemetry record published after a completed action
type ActionEvent struct {
	Kind     string    `json:"kind"`
	TenantID string    `json:"guildId"`
	ActorID  string    `json:"actorId"`
	TargetID string    `json:"targetId,omitempty"`
	Reason   string    `json:"reason,omitempty"`
	Time     time.Time `json:"time"`
}
