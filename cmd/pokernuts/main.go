package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/pokernuts/internal/config"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command. Unset flags fall back to the
// environment and then to the config file.
type Globals struct {
	Config   string `help:"Path to HCL config file" default:"pokernuts.hcl"`
	EnvFile  string `name:"env-file" help:"Path to .env file with POKERNUTS_* overrides" default:".env"`
	Display  string `help:"Card display mode (ascii, unicode, color, emoji)"`
	LogLevel string `name:"log-level" help:"Log level (debug, info, warn, error)"`
	Workers  *int   `help:"Goroutines used to evaluate seven-card hands"`
}

type CLI struct {
	Globals

	Version kong.VersionFlag `short:"v" help:"Show version"`
	Rank    RankCmd          `cmd:"" help:"Classify a five-card hand"`
	Best    BestCmd          `cmd:"" help:"Find the best five-card hand of seven cards"`
	Compare CompareCmd       `cmd:"" help:"Show down two hole-card pairs on a full board"`
	Nuts    NutsCmd          `cmd:"" help:"Describe every unbeatable holding on a board"`
	Deal    DealCmd          `cmd:"" help:"Deal a seeded hand and report the nuts"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr, quartz.NewReal()); err != nil {
		fmt.Fprintf(os.Stderr, "pokernuts: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// run parses args and executes the selected command.
func run(ctx context.Context, args []string, stdout, stderr io.Writer, clock quartz.Clock) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("pokernuts"),
		kong.Description("Texas Hold'em hand ranking and nut finding"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
		kong.Writers(stdout, stderr),
	)
	if err != nil {
		return err
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := resolveConfig(cli.Globals)
	if err != nil {
		return err
	}

	app, err := newApp(cfg, stdout, stderr, clock)
	if err != nil {
		return err
	}
	app.logger.Debug("configuration loaded",
		"config", cli.Config,
		"display", cfg.Display.Mode,
		"workers", cfg.Evaluator.Workers)

	kctx.BindTo(ctx, (*context.Context)(nil))
	return kctx.Run(app)
}

// resolveConfig layers the config file, .env file, environment and flags.
func resolveConfig(g Globals) (*config.Config, error) {
	if err := config.LoadEnvFile(g.EnvFile); err != nil {
		return nil, err
	}
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if g.Display != "" {
		cfg.Display.Mode = g.Display
	}
	if g.LogLevel != "" {
		cfg.Log.Level = g.LogLevel
	}
	if g.Workers != nil {
		cfg.Evaluator.Workers = *g.Workers
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "pokernuts",
	})
	logger.SetLevel(lvl)
	return logger, nil
}
