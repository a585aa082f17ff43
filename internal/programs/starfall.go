package programs

import (
	"github.com/thurn/dotdq/internal/card"
	"github.com/thurn/dotdq/internal/delegate"
	"github.com/thurn/dotdq/internal/round"
)

const Starfall delegate.ProgramName = "Starfall"

// Grounded on original_source/src/programs/src/play_phase_programs.rs's
// starfall(): activatable only when the owner leads, overrides the trick
// winner to the owner for the trick it was activated on.
func init() {
	round.RegisterProgram(round.ProgramDefinition{
		Name: Starfall,
		Text: "Round: Win this trick.",
		InstallPlayPhase: func(on *round.PlayPhaseDelegates) {
			activateForTrick(withLead, on)
			on.TrickWinner.Queried(func(r *round.Round, ctx *delegate.Context, trickNumber int, current card.PlayerName) card.PlayerName {
				if ctx.ActivatedForTrick(trickNumber) {
					return ctx.Owner()
				}
				return current
			})
		},
	})
}
