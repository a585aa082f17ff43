package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/thurn/dotdq/internal/agent"
	"github.com/thurn/dotdq/internal/app"
	"github.com/thurn/dotdq/internal/card"
	"github.com/thurn/dotdq/internal/delegate"
	"github.com/thurn/dotdq/internal/matchup"
	_ "github.com/thurn/dotdq/internal/programs" // register Starfall/Obsidian/Eviction
	"github.com/thurn/dotdq/internal/round"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).With().Timestamp().Logger()

	cliApp := &cli.App{
		Name:    "dotdq",
		Usage:   "Play and analyze the Dungeon of the Diamond Queen trick-taking engine",
		Version: "0.1.0",
		Action:  runTUI,
		Commands: []*cli.Command{
			{
				Name:    "rules",
				Aliases: []string{"r"},
				Usage:   "Display the rules of play",
				Action:  showRules,
				Subcommands: []*cli.Command{
					{Name: "contracts", Usage: "Show contract scoring", Action: showContractScoring},
					{Name: "programs", Usage: "Show the installed program library", Action: showPrograms},
				},
			},
			{
				Name:   "play",
				Usage:  "Start a game immediately",
				Action: runTUI,
			},
			{
				Name:      "match",
				Usage:     "Run one or more matches between named agents",
				ArgsUsage: "<user-agent> <opponent-agent>",
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "move_time_ms", Value: 1, Usage: "per-move search deadline in milliseconds"},
					&cli.IntFlag{Name: "matches", Value: 1, Usage: "number of matches to play"},
					&cli.StringFlag{Name: "verbosity", Value: "matches", Usage: "one of: none, matches, actions"},
					&cli.BoolFlag{Name: "panic_on_search_timeout", Value: false},
					&cli.IntFlag{Name: "workers", Value: 1, Usage: "number of matches to run concurrently"},
				},
				Action: func(c *cli.Context) error { return runMatch(c, logger) },
			},
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runTUI(c *cli.Context) error {
	p := tea.NewProgram(app.New(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// runMatch wires the CLI's two positional agent names onto seats: the
// first names User's agent, the second names every other seat's agent
// (West, North, East), mirroring original_source/run_matchup.rs's
// two-sided `user`/`opponent` arguments adapted to a four-seat
// PlayerName set.
func runMatch(c *cli.Context, logger zerolog.Logger) error {
	if c.NArg() != 2 {
		return fmt.Errorf("usage: dotdq match <user-agent> <opponent-agent>")
	}
	rng := rand.New(rand.NewSource(1))
	userAgent, err := resolveAgent(c.Args().Get(0), rng)
	if err != nil {
		return err
	}
	opponentAgent, err := resolveAgent(c.Args().Get(1), rng)
	if err != nil {
		return err
	}

	verbosity, err := parseVerbosity(c.String("verbosity"))
	if err != nil {
		return err
	}

	results := matchup.Run(matchup.Config{
		Matches:              c.Int("matches"),
		MoveTime:             time.Duration(c.Int64("move_time_ms")) * time.Millisecond,
		Verbosity:            verbosity,
		PanicOnSearchTimeout: c.Bool("panic_on_search_timeout"),
		Workers:              c.Int("workers"),
	}, matchup.Seats{
		card.User:  userAgent,
		card.West:  opponentAgent,
		card.North: opponentAgent,
		card.East:  opponentAgent,
	}, logger)

	for _, r := range results {
		fmt.Printf("match %d: %v\n", r.MatchNumber, r.Scores)
	}
	return nil
}

// resolveAgent maps a CLI-friendly agent name onto one of the catalog
// constructors in internal/agent.
func resolveAgent(name string, rng *rand.Rand) (agent.Agent, error) {
	switch name {
	case "alpha_beta_10":
		return agent.AlphaBetaDepth10(), nil
	case "alpha_beta_13":
		return agent.AlphaBetaDepth13(), nil
	case "uct1":
		return agent.Uct1(rng), nil
	case "uct1_iterations_250":
		return agent.Uct1Iterations250(rng), nil
	case "uct1_max_tricks":
		return agent.Uct1MaxTricks(rng), nil
	case "first_available_action":
		return agent.FirstAvailableAction, nil
	default:
		return nil, fmt.Errorf("unknown agent %q", name)
	}
}

func parseVerbosity(s string) (matchup.Verbosity, error) {
	switch s {
	case "none":
		return matchup.None, nil
	case "matches":
		return matchup.Matches, nil
	case "actions":
		return matchup.Actions, nil
	default:
		return 0, fmt.Errorf("unknown verbosity %q", s)
	}
}

func showRules(c *cli.Context) error {
	fmt.Print(`
DUNGEON OF THE DIAMOND QUEEN
=============================

A trick-taking card game for four players (User, West, North, East), played
with a full 52-card deck across 13 tricks.

THE DECK
--------
52 cards: Two through Ace of each suit (Clubs, Diamonds, Hearts, Spades).

OBJECTIVE
---------
Each player commits to a contract: the number of tricks they intend to win
this round. Meeting or exceeding your contract scores contract_value(n)
points; falling short scores zero.

PLAY
----
1. The winner of the previous trick leads the next one (User leads first).
2. Players must follow the suit led if able.
3. The highest trump (or, if no trump, the highest card of the suit led)
   wins the trick.
4. Some players hold programs: one-shot or per-trick abilities that can
   override the usual trick-winner or follow-suit rules when activated.

Use 'dotdq rules contracts' or 'dotdq rules programs' for more detail.
`)
	return nil
}

func showContractScoring(c *cli.Context) error {
	fmt.Print(`
CONTRACT SCORING
=================

Each player's contract is a target number of tricks. At the end of the
round, a player who won at least their contract's worth of tricks scores:

  contract   0   1   2   3   4    5    6    7    8    9   10   11   12  13+
  value      0  10  20  30  50  100  150  200  400  700 1000 1500 2000 2500

A player who falls short of their contract scores zero for the round.
`)
	return nil
}

func showPrograms(c *cli.Context) error {
	fmt.Print("INSTALLED PROGRAMS\n===================\n\n")
	for _, name := range []delegate.ProgramName{"Starfall", "Obsidian", "Eviction"} {
		fmt.Printf("%s: %s\n", name, round.ProgramDefinitionText(name))
	}
	return nil
}
