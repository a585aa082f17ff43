// Package delegate implements the program hook engine: the small set of
// typed query/mutation containers that let an activated program intercept
// engine questions ("who wins this trick?", "must this player follow
// suit?") and state changes, without the rules engine knowing in advance
// which programs exist.
//
// The containers are generic over the data type they operate on (TData) so
// that this package has no dependency on the round package; the round
// package instantiates them with TData = *round.Round.
package delegate

import "github.com/thurn/dotdq/internal/card"

// ProgramName identifies a program definition in the process-wide registry.
type ProgramName string

// ProgramId identifies one instance of a program: a definition owned by a
// specific player for the current round.
type ProgramId struct {
	Name  ProgramName
	Owner card.PlayerName
}

// StateKind is the closed set of states a program's per-round state can be
// in.
type StateKind int

const (
	Inactive StateKind = iota
	ActivatedForTrick
	Activated
)

// ProgramState is the per-round state value associated with a ProgramId.
// Only StateKind == ActivatedForTrick uses the TrickNumber field.
type ProgramState struct {
	Kind        StateKind
	TrickNumber int
}

// IsActivatedForTrick reports whether this state is ActivatedForTrick(n)
// for the given trick number.
func (s ProgramState) IsActivatedForTrick(n int) bool {
	return s.Kind == ActivatedForTrick && s.TrickNumber == n
}

// Context is passed to every hook invocation. It carries the identity of
// the program being invoked and that program's current per-round state.
// Mutation hooks may modify State; the engine persists the modified value
// back into the round's program-state map after the call returns.
type Context struct {
	ID    ProgramId
	State ProgramState
}

// ActivatedForTrick reports whether this context's program is currently
// ActivatedForTrick(n).
func (c *Context) ActivatedForTrick(n int) bool {
	return c.State.IsActivatedForTrick(n)
}

// Owner returns the player who owns this context's program instance.
func (c *Context) Owner() card.PlayerName {
	return c.ID.Owner
}

// SetActivatedForTrick records this context's program as ActivatedForTrick(n).
func (c *Context) SetActivatedForTrick(n int) {
	c.State = ProgramState{Kind: ActivatedForTrick, TrickNumber: n}
}

// SetActivated records this context's program as Activated.
func (c *Context) SetActivated() {
	c.State = ProgramState{Kind: Activated}
}

// InstallSlot is shared by every hook container belonging to the same
// Delegates struct. The engine sets Current immediately before invoking a
// program's install callback and leaves it set until the next install; a
// container's This/
// Queried methods key their new registration off Current. This gives the
// installer function itself no owner parameter (it is written once per
// program, before any owner is known) while the engine still performs two
// logically distinct steps: stamp the pending identity, then install.
type InstallSlot struct {
	Current ProgramId
}

// NewInstallSlot creates a fresh, shared installation slot for a Delegates
// struct to pass to each of its hook containers.
func NewInstallSlot() *InstallSlot {
	return &InstallSlot{}
}

// Begin records which program is about to run its installer.
func (s *InstallSlot) Begin(id ProgramId) {
	s.Current = id
}

// SingleQueryFn is a single-owner query hook: at most one registration per
// ProgramId, answering a yes/no (or other) question about the round.
type SingleQueryFn[TData any, TResult any] func(data TData, ctx *Context) TResult

// ProgramQuery dispatches a single-owner query hook. If no hook is
// registered for the requested ProgramId, Run returns the provided default.
type ProgramQuery[TData any, TResult any] struct {
	slot   *InstallSlot
	hooks  map[ProgramId]SingleQueryFn[TData, TResult]
}

// NewProgramQuery creates a ProgramQuery container sharing the given
// installation slot.
func NewProgramQuery[TData any, TResult any](slot *InstallSlot) *ProgramQuery[TData, TResult] {
	return &ProgramQuery[TData, TResult]{slot: slot, hooks: make(map[ProgramId]SingleQueryFn[TData, TResult])}
}

// This registers fn as the single-owner query hook for the program
// currently being installed.
func (q *ProgramQuery[TData, TResult]) This(fn SingleQueryFn[TData, TResult]) {
	q.hooks[q.slot.Current] = fn
}

// Run dispatches the query for the given program, building a Context from
// its current state. If no hook is registered, def is returned unchanged.
func (q *ProgramQuery[TData, TResult]) Run(data TData, id ProgramId, state ProgramState, def TResult) TResult {
	fn, ok := q.hooks[id]
	if !ok {
		return def
	}
	ctx := &Context{ID: id, State: state}
	return fn(data, ctx)
}

// Has reports whether a hook is registered for the given program.
func (q *ProgramQuery[TData, TResult]) Has(id ProgramId) bool {
	_, ok := q.hooks[id]
	return ok
}

// SingleMutationFn is a single-owner mutation hook: it may mutate the round
// data and the program's Context.State.
type SingleMutationFn[TData any] func(data TData, ctx *Context)

// ProgramMutation dispatches a single-owner mutation hook.
type ProgramMutation[TData any] struct {
	slot  *InstallSlot
	hooks map[ProgramId]SingleMutationFn[TData]
}

// NewProgramMutation creates a ProgramMutation container sharing the given
// installation slot.
func NewProgramMutation[TData any](slot *InstallSlot) *ProgramMutation[TData] {
	return &ProgramMutation[TData]{slot: slot, hooks: make(map[ProgramId]SingleMutationFn[TData])}
}

// This registers fn as the single-owner mutation hook for the program
// currently being installed.
func (m *ProgramMutation[TData]) This(fn SingleMutationFn[TData]) {
	m.hooks[m.slot.Current] = fn
}

// Run invokes the mutation hook for id, if any, and returns the (possibly
// updated) program state to persist. If no hook is registered, state is
// returned unchanged.
func (m *ProgramMutation[TData]) Run(data TData, id ProgramId, state ProgramState) ProgramState {
	fn, ok := m.hooks[id]
	if !ok {
		return state
	}
	ctx := &Context{ID: id, State: state}
	fn(data, ctx)
	return ctx.State
}

// Has reports whether a mutation hook is registered for the given program.
func (m *ProgramMutation[TData]) Has(id ProgramId) bool {
	_, ok := m.hooks[id]
	return ok
}

// QueryFn is a chained query hook: it receives the running value computed
// by earlier hooks in the chain and returns the (possibly overridden) next
// value.
type QueryFn[TData any, TArg any, TResult any] func(data TData, ctx *Context, arg TArg, current TResult) TResult

type chainedEntry[TData any, TArg any, TResult any] struct {
	id ProgramId
	fn QueryFn[TData, TArg, TResult]
}

// QueryDelegateList dispatches a chain of query hooks in registration
// order, each able to see and override the running value.
type QueryDelegateList[TData any, TArg any, TResult any] struct {
	slot    *InstallSlot
	entries []chainedEntry[TData, TArg, TResult]
}

// NewQueryDelegateList creates a QueryDelegateList sharing the given
// installation slot.
func NewQueryDelegateList[TData any, TArg any, TResult any](slot *InstallSlot) *QueryDelegateList[TData, TArg, TResult] {
	return &QueryDelegateList[TData, TArg, TResult]{slot: slot}
}

// Queried appends fn to the chain for the program currently being
// installed.
func (l *QueryDelegateList[TData, TArg, TResult]) Queried(fn QueryFn[TData, TArg, TResult]) {
	l.entries = append(l.entries, chainedEntry[TData, TArg, TResult]{id: l.slot.Current, fn: fn})
}

// StateLookup resolves a program's current state, used by Run to build
// each hook's Context.
type StateLookup func(id ProgramId) ProgramState

// Run folds the chain over an initial value, in registration order.
func (l *QueryDelegateList[TData, TArg, TResult]) Run(data TData, states StateLookup, arg TArg, initial TResult) TResult {
	current := initial
	for _, entry := range l.entries {
		ctx := &Context{ID: entry.id, State: states(entry.id)}
		current = entry.fn(data, ctx, arg, current)
	}
	return current
}
