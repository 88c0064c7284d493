package guard

import (
	"testing"

	"github.com/PancyStudios/PancyModGo/pkg/models"
)

func member(id string, rank int) models.Member {
	return models.Member{ID: id, Rank: rank}
}

// TestCheckDenials verifies every denial rule fires, in order
func TestCheckDenials(t *testing.T) {
	bot := models.Member{ID: "bot", Rank: 10, IsBot: true}

	cases := []struct {
		name   string
		actor  models.Member
		target *models.Member
		bot    models.Member
		reason Reason
	}{
		{
			name:   "nil target",
			actor:  member("actor", 5),
			target: nil,
			bot:    bot,
			reason: ReasonInvalidTarget,
		},
		{
			name:   "empty target id",
			actor:  member("actor", 5),
			target: &models.Member{},
			bot:    bot,
			reason: ReasonInvalidTarget,
		},
		{
			name:   "self target",
			actor:  member("actor", 5),
			target: &models.Member{ID: "actor", Rank: 5},
			bot:    bot,
			reason: ReasonSelfTarget,
		},
		{
			name:   "bot as target",
			actor:  member("actor", 5),
			target: &models.Member{ID: "bot", Rank: 1, IsBot: true},
			bot:    bot,
			reason: ReasonBotTarget,
		},
		{
			name:   "owner as target",
			actor:  member("actor", 5),
			target: &models.Member{ID: "owner", Rank: 1, IsOwner: true},
			bot:    bot,
			reason: ReasonOwnerTarget,
		},
		{
			name:   "equal rank",
			actor:  member("actor", 5),
			target: &models.Member{ID: "target", Rank: 5},
			bot:    bot,
			reason: ReasonRank,
		},
		{
			name:   "higher rank",
			actor:  member("actor", 5),
			target: &models.Member{ID: "target", Rank: 8},
			bot:    bot,
			reason: ReasonRank,
		},
		{
			name:   "bot rank too low",
			actor:  member("actor", 9),
			target: &models.Member{ID: "target", Rank: 7},
			bot:    models.Member{ID: "bot", Rank: 7, IsBot: true},
			reason: ReasonBotRank,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			decision := Check(c.actor, c.target, c.bot)
			if decision.Allowed {
				t.Fatalf("Check() allowed = true, want denial %v", c.reason)
			}
			if decision.Reason != c.reason {
				t.Errorf("Check() reason = %v, want %v", decision.Reason, c.reason)
			}
			if decision.Reason.Message() == "" {
				t.Error("denial reason has no message")
			}
		})
	}
}

// TestCheckAllowed verifies the success path for a normal hierarchy
func TestCheckAllowed(t *testing.T) {
	bot := models.Member{ID: "bot", Rank: 10, IsBot: true}

	decision := Check(member("actor", 5), &models.Member{ID: "target", Rank: 2}, bot)
	if !decision.Allowed {
		t.Fatalf("Check() denied with reason %v, want allowed", decision.Reason)
	}
	if decision.Reason != ReasonNone {
		t.Errorf("Check() reason = %v, want ReasonNone", decision.Reason)
	}
}

// TestCheckOwnerActorBypassesRank verifies the tenant owner can moderate
// members of any rank, but never past the bot's own rank
func TestCheckOwnerActorBypassesRank(t *testing.T) {
	bot := models.Member{ID: "bot", Rank: 10, IsBot: true}
	owner := models.Member{ID: "owner", Rank: 0, IsOwner: true}

	decision := Check(owner, &models.Member{ID: "target", Rank: 8}, bot)
	if !decision.Allowed {
		t.Fatalf("Check() denied owner with reason %v, want allowed", decision.Reason)
	}

	decision = Check(owner, &models.Member{ID: "target", Rank: 10}, bot)
	if decision.Allowed {
		t.Fatal("Check() allowed target above bot rank, want ReasonBotRank")
	}
	if decision.Reason != ReasonBotRank {
		t.Errorf("Check() reason = %v, want ReasonBotRank", decision.Reason)
	}
}

// TestCheckIsDeterministic verifies repeated evaluation yields the same
// decision for the same input
func TestCheckIsDeterministic(t *testing.T) {
	bot := models.Member{ID: "bot", Rank: 10, IsBot: true}
	actor := member("actor", 5)
	target := &models.Member{ID: "target", Rank: 5}

	first := Check(actor, target, bot)
	for i := 0; i < 10; i++ {
		if got := Check(actor, target, bot); got != first {
			t.Fatalf("Check() = %+v on run %d, want %+v", got, i, first)
		}
	}
}
