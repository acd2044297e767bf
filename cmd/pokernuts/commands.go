package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/pokernuts/internal/config"
	"github.com/lox/pokernuts/poker"
)

// App carries the resolved settings and output streams into each command.
type App struct {
	out     io.Writer
	logger  *log.Logger
	clock   quartz.Clock
	mode    poker.DisplayMode
	workers int

	headerStyle lipgloss.Style
	labelStyle  lipgloss.Style
	valueStyle  lipgloss.Style
	nutsStyle   lipgloss.Style
	dimStyle    lipgloss.Style
}

func newApp(cfg *config.Config, stdout, stderr io.Writer, clock quartz.Clock) (*App, error) {
	logger, err := newLogger(stderr, cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	r := lipgloss.NewRenderer(stdout)
	return &App{
		out:         stdout,
		logger:      logger,
		clock:       clock,
		mode:        cfg.DisplayMode(),
		workers:     cfg.Evaluator.Workers,
		headerStyle: r.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		labelStyle:  r.NewStyle().Foreground(lipgloss.Color("14")),
		valueStyle:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
		nutsStyle:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		dimStyle:    r.NewStyle().Foreground(lipgloss.Color("8")),
	}, nil
}

func (a *App) table() *tabwriter.Writer {
	return tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
}

// RankCmd classifies exactly five cards.
type RankCmd struct {
	Cards []string `arg:"" help:"Five cards, e.g. 'As Ks Qs Js Ts'"`
}

func (c *RankCmd) Run(app *App) error {
	five, err := poker.ParseSet[poker.FiveCards](strings.Join(c.Cards, " "))
	if err != nil {
		return err
	}
	value := poker.RankFive(five)
	app.logger.Debug("ranked hand", "cards", five, "category", value.Category, "score", value.Score())

	w := app.table()
	fmt.Fprintf(w, "%s\t%s\n", app.labelStyle.Render("Hand"), five.Display(app.mode))
	fmt.Fprintf(w, "%s\t%s\n", app.labelStyle.Render("Value"), app.valueStyle.Render(value.String()))
	return w.Flush()
}

// BestCmd picks the best five of seven cards.
type BestCmd struct {
	Cards []string `arg:"" help:"Seven cards: five board cards and two hole cards"`
}

func (c *BestCmd) Run(ctx context.Context, app *App) error {
	seven, err := poker.ParseSet[poker.SevenCards](strings.Join(c.Cards, " "))
	if err != nil {
		return err
	}

	start := app.clock.Now()
	value, err := poker.BestHandParallel(ctx, seven, app.workers)
	if err != nil {
		return err
	}
	elapsed := app.clock.Since(start)
	best, _ := poker.BestFive(seven)
	app.logger.Debug("evaluated seven cards", "cards", seven, "workers", app.workers, "elapsed", elapsed)

	w := app.table()
	fmt.Fprintf(w, "%s\t%s\n", app.labelStyle.Render("Cards"), poker.FormatCards(app.mode, seven[:]...))
	fmt.Fprintf(w, "%s\t%s\n", app.labelStyle.Render("Best five"), best.Display(app.mode))
	fmt.Fprintf(w, "%s\t%s\n", app.labelStyle.Render("Value"), app.valueStyle.Render(value.String()))
	fmt.Fprintf(w, "%s\t%s\n", app.labelStyle.Render("Elapsed"), app.dimStyle.Render(elapsed.String()))
	return w.Flush()
}

// CompareCmd shows down two holdings on a river board.
type CompareCmd struct {
	Board string `required:"" help:"Five board cards, e.g. 'Ah Kd 7c 2s 9h'"`
	A     string `arg:"" help:"First player's hole cards, e.g. AsKs"`
	B     string `arg:"" help:"Second player's hole cards"`
}

func (c *CompareCmd) Run(app *App) error {
	board, err := poker.ParseSet[poker.FiveCards](c.Board)
	if err != nil {
		return fmt.Errorf("board: %w", err)
	}
	a, err := poker.ParseSet[poker.Hole](c.A)
	if err != nil {
		return fmt.Errorf("player A: %w", err)
	}
	b, err := poker.ParseSet[poker.Hole](c.B)
	if err != nil {
		return fmt.Errorf("player B: %w", err)
	}

	value, winner, err := poker.Showdown(board, a, b)
	if err != nil {
		return err
	}
	app.logger.Debug("showdown", "board", board, "a", a, "b", b, "winner", winner)

	w := app.table()
	fmt.Fprintf(w, "%s\t%s\n", app.labelStyle.Render("Board"), board.Display(app.mode))
	for _, p := range []struct {
		name string
		hole poker.Hole
	}{{"A", a}, {"B", b}} {
		seven, err := poker.CombineSeven(board, p.hole)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", app.labelStyle.Render(p.name), p.hole.Display(app.mode), poker.BestHand(seven))
	}
	result := "Chop, " + value.String()
	if winner != poker.Chop {
		result = fmt.Sprintf("%s wins with %s", winner, value)
	}
	fmt.Fprintf(w, "%s\t%s\n", app.labelStyle.Render("Result"), app.valueStyle.Render(result))
	return w.Flush()
}

// NutsCmd describes the unbeatable holdings on a board.
type NutsCmd struct {
	Board []string `arg:"" help:"Three, four or five board cards"`
	List  bool     `help:"List every holding that makes the nuts"`
}

func (c *NutsCmd) Run(app *App) error {
	board, err := poker.ParseBoard(strings.Join(c.Board, " "))
	if err != nil {
		return err
	}

	start := app.clock.Now()
	nuts, err := poker.FindNuts(board)
	if err != nil {
		return err
	}
	members := poker.NutsMembers(board, nuts)
	app.logger.Debug("found nuts", "board", board, "nuts", nuts, "holdings", len(members), "elapsed", app.clock.Since(start))

	w := app.table()
	fmt.Fprintf(w, "%s\t%s\n", app.labelStyle.Render("Board"), board.Display(app.mode))
	fmt.Fprintf(w, "%s\t%s\n", app.labelStyle.Render("Street"), board.Stage())
	fmt.Fprintf(w, "%s\t%s\n", app.labelStyle.Render("Nuts"), app.nutsStyle.Render(nuts.String()))
	fmt.Fprintf(w, "%s\t%d\n", app.labelStyle.Render("Holdings"), len(members))
	if err := w.Flush(); err != nil {
		return err
	}

	if c.List {
		fmt.Fprintln(app.out, app.headerStyle.Render("Nut holdings"))
		app.printHoles(members, 8)
	}
	return nil
}

func (a *App) printHoles(holes []poker.Hole, perRow int) {
	for i := 0; i < len(holes); i += perRow {
		end := min(i+perRow, len(holes))
		row := make([]string, 0, end-i)
		for _, h := range holes[i:end] {
			row = append(row, h.Display(a.mode))
		}
		fmt.Fprintln(a.out, "  "+strings.Join(row, "   "))
	}
}

// DealCmd deals a reproducible hand and reports who holds the nuts.
type DealCmd struct {
	Seed    *int64 `help:"Shuffle seed; defaults to the current time"`
	Street  string `help:"Street to deal up to (flop, turn, river)" default:"river" enum:"flop,turn,river"`
	Players int    `help:"Number of players" default:"2"`
}

func (c *DealCmd) Run(app *App) error {
	if c.Players < 1 || 2*c.Players+5 > poker.NumCards {
		return fmt.Errorf("players must be between 1 and %d", (poker.NumCards-5)/2)
	}
	stage, err := poker.ParseStage(c.Street)
	if err != nil {
		return err
	}
	seed := app.clock.Now().UnixNano()
	if c.Seed != nil {
		seed = *c.Seed
	}

	dealer := poker.NewDeck(poker.NewSeededRand(seed)).ShuffleAndDeal()
	holes := make([]poker.Hole, c.Players)
	for i := range holes {
		holes[i] = dealer.DealHole()
	}
	board, err := dealer.DealBoard(stage)
	if err != nil {
		return err
	}
	nuts, err := poker.FindNuts(board)
	if err != nil {
		return err
	}
	app.logger.Info("dealt hand", "seed", seed, "street", stage, "players", c.Players)

	fmt.Fprintln(app.out, app.headerStyle.Render(fmt.Sprintf("Seed %d", seed)))
	w := app.table()
	fmt.Fprintf(w, "%s\t%s\n", app.labelStyle.Render("Board"), board.Display(app.mode))
	fmt.Fprintf(w, "%s\t%s\n", app.labelStyle.Render("Nuts"), app.nutsStyle.Render(nuts.String()))

	five, river := board.Five()
	for i, h := range holes {
		line := fmt.Sprintf("%s\t%s", app.labelStyle.Render(fmt.Sprintf("Seat %d", i+1)), h.Display(app.mode))
		if river {
			seven, err := poker.CombineSeven(five, h)
			if err != nil {
				return err
			}
			line += "\t" + poker.BestHand(seven).String()
		}
		if nuts.Contains(h) {
			line += "\t" + app.nutsStyle.Render("NUTS")
		}
		fmt.Fprintln(w, line)
	}
	if river && c.Players == 2 {
		value, winner, err := poker.Showdown(five, holes[0], holes[1])
		if err != nil {
			return err
		}
		result := "Chop, " + value.String()
		if winner != poker.Chop {
			seat := 1
			if winner == poker.WinnerB {
				seat = 2
			}
			result = fmt.Sprintf("Seat %d wins with %s", seat, value)
		}
		fmt.Fprintf(w, "%s\t%s\n", app.labelStyle.Render("Result"), app.valueStyle.Render(result))
	}
	return w.Flush()
}
