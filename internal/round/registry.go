package round

import (
	"fmt"

	"github.com/thurn/dotdq/internal/delegate"
)

// ProgramDefinition is a record registered once per program at process
// start: its name, its descriptive text (surfaced to the shell), and its
// play-phase installer. Panics on a duplicate name, since duplicate
// program registration is a fatal startup error, not a silently
// overwritten map entry.
type ProgramDefinition struct {
	Name             delegate.ProgramName
	Text             string
	InstallPlayPhase func(on *PlayPhaseDelegates)
}

// registry is the process-wide, write-once program table. It is populated
// by each program's init() function (see internal/programs) and never
// mutated after process start.
var registry = make(map[delegate.ProgramName]ProgramDefinition)

// RegisterProgram adds def to the process-wide registry. It panics if a
// program with the same name has already been registered, an internal
// invariant violation.
func RegisterProgram(def ProgramDefinition) {
	if _, exists := registry[def.Name]; exists {
		panic(fmt.Sprintf("round: duplicate program registration %q", def.Name))
	}
	registry[def.Name] = def
}

// programDefinition looks up a registered program by name. It panics if no
// such program was ever registered: dispatching an unregistered program
// id is a fatal internal invariant violation.
func programDefinition(name delegate.ProgramName) ProgramDefinition {
	def, ok := registry[name]
	if !ok {
		panic(fmt.Sprintf("round: unregistered program %q", name))
	}
	return def
}

// RegisteredPrograms returns the definition of every program registered so far,
// for shell-side program-selection menus.
func RegisteredPrograms() []ProgramDefinition {
	defs := make([]ProgramDefinition, 0, len(registry))
	for _, def := range registry {
		defs = append(defs, def)
	}
	return defs
}
