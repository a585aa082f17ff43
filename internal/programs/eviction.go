package programs

import (
	"github.com/thurn/dotdq/internal/delegate"
	"github.com/thurn/dotdq/internal/round"
)

const Eviction delegate.ProgramName = "Eviction"

// Grounded on original_source/src/programs/src/play_phase_programs.rs's
// eviction(): activatable only on the owner's turn, exempts the owner from
// following suit for the trick it was activated on.
func init() {
	round.RegisterProgram(round.ProgramDefinition{
		Name: Eviction,
		Text: "Round: You do not need to follow suit this trick.",
		InstallPlayPhase: func(on *round.PlayPhaseDelegates) {
			activateForTrick(duringTurn, on)
			on.MustFollowSuit.Queried(func(r *round.Round, ctx *delegate.Context, q round.MustFollowSuitQuery, current bool) bool {
				if q.Player == ctx.Owner() && ctx.ActivatedForTrick(q.TrickNumber) {
					return false
				}
				return current
			})
		},
	})
}
