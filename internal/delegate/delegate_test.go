package delegate

import (
	"testing"

	"github.com/thurn/dotdq/internal/card"
)

func TestProgramQueryRunReturnsDefaultWhenNoHookRegistered(t *testing.T) {
	slot := NewInstallSlot()
	q := NewProgramQuery[int, bool](slot)
	id := ProgramId{Name: "Unregistered", Owner: card.User}

	if got := q.Run(0, id, ProgramState{}, true); got != true {
		t.Errorf("Run() with no hook = %v, want the provided default true", got)
	}
	if q.Has(id) {
		t.Error("Has() should be false for an id with no registered hook")
	}
}

func TestProgramQueryThisRegistersAgainstCurrentSlot(t *testing.T) {
	slot := NewInstallSlot()
	q := NewProgramQuery[int, bool](slot)
	id := ProgramId{Name: "Starfall", Owner: card.West}

	slot.Begin(id)
	q.This(func(data int, ctx *Context) bool {
		return ctx.Owner() == card.West
	})

	if !q.Has(id) {
		t.Fatal("Has() should be true after This() registers a hook for the current slot")
	}
	if got := q.Run(0, id, ProgramState{}, false); got != true {
		t.Errorf("Run() = %v, want true", got)
	}
}

func TestProgramMutationRunPersistsContextState(t *testing.T) {
	slot := NewInstallSlot()
	m := NewProgramMutation[int](slot)
	id := ProgramId{Name: "Obsidian", Owner: card.User}

	slot.Begin(id)
	m.This(func(data int, ctx *Context) {
		ctx.SetActivated()
	})

	newState := m.Run(0, id, ProgramState{Kind: Inactive})
	if newState.Kind != Activated {
		t.Errorf("Run() returned state kind %v, want Activated", newState.Kind)
	}
}

func TestQueryDelegateListRunsChainInRegistrationOrder(t *testing.T) {
	slot := NewInstallSlot()
	l := NewQueryDelegateList[int, int, []string](slot)

	idA := ProgramId{Name: "A", Owner: card.User}
	slot.Begin(idA)
	l.Queried(func(data int, ctx *Context, arg int, current []string) []string {
		return append(current, "A")
	})

	idB := ProgramId{Name: "B", Owner: card.West}
	slot.Begin(idB)
	l.Queried(func(data int, ctx *Context, arg int, current []string) []string {
		return append(current, "B")
	})

	states := func(id ProgramId) ProgramState { return ProgramState{} }
	got := l.Run(0, states, 0, nil)

	if len(got) != 2 || got[0] != "A" || got[1] != "B" {
		t.Errorf("Run() = %v, want [A B] in registration order", got)
	}
}

func TestProgramStateIsActivatedForTrick(t *testing.T) {
	s := ProgramState{Kind: ActivatedForTrick, TrickNumber: 3}
	if !s.IsActivatedForTrick(3) {
		t.Error("IsActivatedForTrick(3) should be true")
	}
	if s.IsActivatedForTrick(4) {
		t.Error("IsActivatedForTrick(4) should be false")
	}

	inactive := ProgramState{Kind: Inactive}
	if inactive.IsActivatedForTrick(0) {
		t.Error("an Inactive state should never report IsActivatedForTrick")
	}
}
