// Command adventure runs a theme-park scenario, either built interactively
// or loaded from a YAML, JSON or TOML file, in a window or headless.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/phanxgames/adventure"
	"github.com/phanxgames/adventure/ebitenview"
	"github.com/phanxgames/adventure/scenario"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		var uerr *usageError
		if errors.As(err, &uerr) {
			fmt.Fprintf(os.Stderr, "usage error: %v\n", err)
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

// settings are process-level options read from ADVENTURE_* variables.
type settings struct {
	Width     int    `envconfig:"WIDTH" default:"1280"`
	Height    int    `envconfig:"HEIGHT" default:"720"`
	Title     string `envconfig:"TITLE" default:"Adventure World"`
	ShowFPS   bool   `envconfig:"SHOW_FPS" default:"true"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"console"`
}

func loadSettings() (*settings, error) {
	var s settings
	if err := envconfig.Process("adventure", &s); err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	return &s, nil
}

type options struct {
	interactive bool
	file        string
	headless    bool
	ticks       int
	script      string
	debug       bool
}

type usageError struct{ msg string }

func (e *usageError) Error() string { return e.msg }

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	var o options
	fs := flag.NewFlagSet("adventure", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&o.interactive, "i", false, "build a scenario by answering prompts")
	fs.BoolVar(&o.interactive, "interactive", false, "build a scenario by answering prompts")
	fs.StringVar(&o.file, "f", "", "path to a scenario file (.yaml, .yml, .json, .toml)")
	fs.StringVar(&o.file, "file", "", "path to a scenario file (.yaml, .yml, .json, .toml)")
	fs.BoolVar(&o.headless, "headless", false, "run without a window")
	fs.IntVar(&o.ticks, "ticks", 0, "stop after this many ticks (0 = until closed)")
	fs.StringVar(&o.script, "script", "", "YAML input script replayed one step per tick")
	fs.BoolVar(&o.debug, "debug", false, "log per-tick timing")
	if err := fs.Parse(args); err != nil {
		return nil, &usageError{msg: err.Error()}
	}
	if fs.NArg() > 0 {
		return nil, &usageError{msg: fmt.Sprintf("unexpected argument %q", fs.Arg(0))}
	}
	switch {
	case o.interactive && o.file != "":
		return nil, &usageError{msg: "--interactive and --file are mutually exclusive"}
	case !o.interactive && o.file == "":
		return nil, &usageError{msg: "one of --interactive or --file is required"}
	}
	if o.ticks < 0 {
		return nil, &usageError{msg: "--ticks must be >= 0"}
	}
	return &o, nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	level := cfg.LogLevel
	if opts.debug {
		level = "debug"
	}
	log, err := newLogger(level, cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	var doc *scenario.Document
	if opts.interactive {
		fmt.Fprintln(stdout, "Interactive scenario setup")
		doc, err = scenario.Prompt(stdin, stdout)
	} else {
		fmt.Fprintf(stdout, "Loading scenario from file: %s\n", opts.file)
		doc, err = scenario.Load(opts.file)
	}
	if err != nil {
		return err
	}
	scn, err := scenario.Build(doc)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Scenario loaded: %s\n", scn)

	engine := adventure.NewEngine(adventure.DefaultEngineConfig(), nil)
	engine.SetLogger(log)
	engine.SetDebugMode(opts.debug)
	if err := engine.LoadScenario(scn); err != nil {
		return err
	}

	if opts.script != "" {
		data, err := os.ReadFile(opts.script)
		if err != nil {
			return fmt.Errorf("read input script %s: %w", opts.script, err)
		}
		script, err := adventure.LoadInputScript(data)
		if err != nil {
			return err
		}
		engine.SetInputScript(script)
	}

	if opts.headless {
		return runHeadless(engine, opts.ticks, stdout)
	}

	return ebitenview.Run(engine, ebitenview.RunConfig{
		Title:   cfg.Title,
		Width:   cfg.Width,
		Height:  cfg.Height,
		ShowFPS: cfg.ShowFPS,
		Logger:  log,
	})
}

// runHeadless ticks on a fixed-step clock until the tick budget is spent,
// the input script closes, or the process is interrupted.
func runHeadless(engine *adventure.Engine, ticks int, stdout io.Writer) error {
	r := adventure.NewHeadlessRenderer(ticks)
	engine.SetRenderer(r)
	engine.SetClock(adventure.NewStepClock(1 / float64(engine.FPS())))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if err := engine.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	fmt.Fprintf(stdout, "Ran %d ticks: %d entities, %d primitives in the last frame\n",
		r.Ticks(), engine.Len(), r.LastPrimitives())
	return nil
}

func newLogger(level, format string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(lvl)

	return zapCfg.Build()
}
