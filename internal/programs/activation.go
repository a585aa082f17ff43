// Package programs registers the three concrete rule-modifying programs:
// Starfall, Obsidian, and Eviction. Each program registers itself with the
// round package's process-wide registry from an init() function, the same
// self-registration pattern used for euchre variant rulesets.
package programs

import (
	"github.com/thurn/dotdq/internal/delegate"
	"github.com/thurn/dotdq/internal/round"
)

// duringTurn installs a CanActivate hook that permits activation only on
// the owner's own turn. Grounded on original_source's DuringTurn
// CanActivate impl (rules/program/activation.rs).
func duringTurn(on *round.PlayPhaseDelegates) {
	on.CanActivate.This(func(r *round.Round, ctx *delegate.Context) bool {
		turn, live := r.CurrentTurn()
		return live && turn == ctx.Owner()
	})
}

// withLead installs a CanActivate hook that permits activation only when
// the owner is about to lead the next trick. Grounded on original_source's
// WithLead CanActivate impl.
func withLead(on *round.PlayPhaseDelegates) {
	on.CanActivate.This(func(r *round.Round, ctx *delegate.Context) bool {
		return r.HasLead(ctx.Owner())
	})
}

// activateForTrick installs a CanActivate predicate plus the
// CurrentlyActive/Activated pair shared by Starfall and Eviction: on
// activation the program records ActivatedForTrick(current trick number).
// Grounded on original_source's activation::activate_for_trick<T> generic
// helper, ported here as a higher-order function instead of a generic type
// parameter, since the set of programs using this helper is closed and
// known in advance.
func activateForTrick(canActivate func(on *round.PlayPhaseDelegates), on *round.PlayPhaseDelegates) {
	canActivate(on)
	on.CurrentlyActive.This(func(r *round.Round, ctx *delegate.Context) bool {
		return ctx.ActivatedForTrick(r.TrickNumber())
	})
	on.Activated.This(func(r *round.Round, ctx *delegate.Context) {
		ctx.SetActivatedForTrick(r.TrickNumber())
	})
}
