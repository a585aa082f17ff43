package round

import (
	"github.com/thurn/dotdq/internal/card"
	"github.com/thurn/dotdq/internal/delegate"
)

// MustFollowSuitQuery is the argument passed down the MustFollowSuit
// delegate chain: which player is asking, for which trick.
type MustFollowSuitQuery struct {
	Player      card.PlayerName
	TrickNumber int
}

// PlayPhaseDelegates holds every hook container a program can install into
// during the play phase. Programs are instantiated generically over
// *Round so this package is the only place that fixes TData.
type PlayPhaseDelegates struct {
	slot *delegate.InstallSlot

	// CanActivate answers whether the owner may currently activate this
	// program. Single-owner query, default false.
	CanActivate *delegate.ProgramQuery[*Round, bool]

	// CurrentlyActive answers whether this program is active right now, for
	// activation-state reporting. Single-owner query, default false.
	CurrentlyActive *delegate.ProgramQuery[*Round, bool]

	// Activated runs when the owner activates this program. Single-owner
	// mutation; may update the program's persisted state and the round.
	Activated *delegate.ProgramMutation[*Round]

	// TrickWinner may override the tentatively-computed winner of a trick.
	// Chained query list.
	TrickWinner *delegate.QueryDelegateList[*Round, int, card.PlayerName]

	// MustFollowSuit may override whether a player must follow the led suit
	// on a given trick. Chained query list, default true.
	MustFollowSuit *delegate.QueryDelegateList[*Round, MustFollowSuitQuery, bool]
}

// NewPlayPhaseDelegates creates an empty set of play-phase hook containers
// sharing a single installation slot.
func NewPlayPhaseDelegates() *PlayPhaseDelegates {
	slot := delegate.NewInstallSlot()
	return &PlayPhaseDelegates{
		slot:            slot,
		CanActivate:     delegate.NewProgramQuery[*Round, bool](slot),
		CurrentlyActive: delegate.NewProgramQuery[*Round, bool](slot),
		Activated:       delegate.NewProgramMutation[*Round](slot),
		TrickWinner:     delegate.NewQueryDelegateList[*Round, int, card.PlayerName](slot),
		MustFollowSuit:  delegate.NewQueryDelegateList[*Round, MustFollowSuitQuery, bool](slot),
	}
}

// install runs def's play-phase installer for owner, stamping every hook it
// registers with the resulting ProgramId. The installer function itself
// takes no owner parameter: by the time it runs, d.slot.Current already
// holds the identity every This/Queried call will be keyed under.
func (d *PlayPhaseDelegates) install(def *ProgramDefinition, owner card.PlayerName) {
	if def.InstallPlayPhase == nil {
		return
	}
	id := delegate.ProgramId{Name: def.Name, Owner: owner}
	d.slot.Begin(id)
	def.InstallPlayPhase(d)
}
