// Package guard implements the hierarchy and privilege checks that every
// member-targeted moderation action must pass before any side effect runs.
package guard

import "github.com/PancyStudios/PancyModGo/pkg/models"

// Reason identifies why a check was denied
type Reason int

const (
	ReasonNone Reason = iota
	ReasonInvalidTarget
	ReasonSelfTarget
	ReasonBotTarget
	ReasonOwnerTarget
	ReasonRank
	ReasonBotRank
)

// Message returns the user-facing denial text for the reason
func (r Reason) Message() string {
	switch r {
	case ReasonInvalidTarget:
		return "❌ Debes especificar un usuario válido."
	case ReasonSelfTarget:
		return "❌ No puedes moderarte a ti mismo."
	case ReasonBotTarget:
		return "❌ No puedes moderar al propio bot."
	case ReasonOwnerTarget:
		return "❌ No puedes moderar al dueño del servidor."
	case ReasonRank:
		return "❌ No puedes moderar a un usuario con un rango igual o superior al tuyo."
	case ReasonBotRank:
		return "❌ El rol del bot es demasiado bajo para moderar a ese usuario."
	default:
		return ""
	}
}

// Decision is the result of a guard check
type Decision struct {
	Allowed bool
	Reason  Reason
}

// allowed is the single success decision
var allowed = Decision{Allowed: true}

func denied(r Reason) Decision {
	return Decision{Reason: r}
}

// Check evaluates the hierarchy rules for actor against target, in order,
// short-circuiting on the first failing rule. bot is the executing bot
// account's own membership in the tenant; its rank models the platform-side
// enforcement that would otherwise fail later in the executor.
//
// The function is pure: no I/O, no storage, deterministic for every input.
func Check(actor models.Member, target *models.Member, bot models.Member) Decision {
	if target == nil || target.ID == "" {
		return denied(ReasonInvalidTarget)
	}
	if target.ID == actor.ID {
		return denied(ReasonSelfTarget)
	}
	if target.IsBot && target.ID == bot.ID {
		return denied(ReasonBotTarget)
	}
	if target.IsOwner {
		return denied(ReasonOwnerTarget)
	}
	if target.Rank >= actor.Rank && !actor.IsOwner {
		return denied(ReasonRank)
	}
	if target.Rank >= bot.Rank {
		return denied(ReasonBotRank)
	}
	return allowed
}
