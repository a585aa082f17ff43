package programs

import (
	"github.com/thurn/dotdq/internal/card"
	"github.com/thurn/dotdq/internal/delegate"
	"github.com/thurn/dotdq/internal/round"
)

const Obsidian delegate.ProgramName = "Obsidian"

// Grounded on original_source/src/programs/src/play_phase_programs.rs's
// obsidian(): activatable only on the owner's turn, changes trump to
// Spades on activation and records Activated state; the captured
// original_source snippet did not persist any state, so that persistence
// is added here (see DESIGN.md).
func init() {
	round.RegisterProgram(round.ProgramDefinition{
		Name: Obsidian,
		Text: "Round: Change the trump suit to Spades.",
		InstallPlayPhase: func(on *round.PlayPhaseDelegates) {
			duringTurn(on)
			on.Activated.This(func(r *round.Round, ctx *delegate.Context) {
				r.SetTrump(card.Spades)
				ctx.SetActivated()
			})
		},
	})
}
