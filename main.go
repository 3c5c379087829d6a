package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"gridsnake/ai"
	"gridsnake/app"
	"gridsnake/audio"
	"gridsnake/game"
	"gridsnake/game/types"
	"gridsnake/ui"
	"gridsnake/ui/window"

	"github.com/rs/zerolog"
)

// Time left for the game over tone before the process exits.
const soundLinger = 400 * time.Millisecond

type options struct {
	variant        string
	tps            int
	frontend       string
	seed           uint64
	foodAvoidsBody bool
	boundary       string
	autopilot      bool
	mute           bool
	logLevel       string
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("gridsnake", flag.ContinueOnError)
	fs.StringVar(&o.variant, "variant", "classic", "Game variant: "+strings.Join(types.VariantNames(), ", "))
	fs.IntVar(&o.tps, "tps", 0, "Ticks per second (0 = variant default)")
	fs.StringVar(&o.frontend, "ui", "window", "Frontend: window or term")
	fs.Uint64Var(&o.seed, "seed", 0, "Food seed (0 = current time)")
	fs.BoolVar(&o.foodAvoidsBody, "food-avoids-body", false, "Never spawn food under the snake")
	fs.StringVar(&o.boundary, "boundary", "open", "Grid edge: open, wrap or solid")
	fs.BoolVar(&o.autopilot, "autopilot", false, "Let a Q-learning agent steer")
	fs.BoolVar(&o.mute, "mute", false, "Disable sound effects")
	fs.StringVar(&o.logLevel, "log-level", "info", "Log level")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if o.frontend != "window" && o.frontend != "term" {
		return o, fmt.Errorf("unknown ui %q", o.frontend)
	}
	return o, nil
}

// buildConfig applies the flags on top of the chosen preset.
func buildConfig(o options) (types.Config, error) {
	cfg, err := types.Lookup(o.variant)
	if err != nil {
		return cfg, err
	}
	if o.tps > 0 {
		cfg.TickRate = o.tps
	}
	cfg.FoodAvoidsBody = o.foodAvoidsBody
	if cfg.Boundary, err = types.ParseBoundary(o.boundary); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func newLogger(level string, frontend string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}
	log := zerolog.New(out).Level(lvl).With().Timestamp().Logger()
	if frontend == "term" && lvl > zerolog.DebugLevel {
		// The terminal belongs to tcell; only errors get through.
		log = log.Level(zerolog.ErrorLevel)
	}
	return log
}

func main() {
	o, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	log := newLogger(o.logLevel, o.frontend)

	cfg, err := buildConfig(o)
	if err != nil {
		log.Fatal().Err(err).Msg("bad configuration")
	}

	seed := o.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log = log.With().Uint64("seed", seed).Logger()
	g, err := game.NewGame(cfg, game.WithSeed(seed), game.WithLogger(log))
	if err != nil {
		log.Fatal().Err(err).Msg("create game")
	}

	var fe app.Frontend
	var idle time.Duration
	switch o.frontend {
	case "term":
		tf, err := ui.NewTerminalFrontend(nil)
		if err != nil {
			log.Fatal().Err(err).Msg("open terminal")
		}
		defer tf.Close()
		fe = tf
		idle = time.Second / 60
	default:
		wr := window.NewRenderer(cfg, "snake")
		defer wr.Close()
		fe = wr
	}

	runner := app.NewRunner(g, fe, log)
	runner.Idle = idle

	if !o.mute {
		sm := audio.NewSoundManager(log)
		if err := sm.Initialize(); err != nil {
			log.Warn().Err(err).Msg("audio unavailable, running silent")
		} else {
			defer sm.Close()
			runner.Sounds = sm
		}
	}
	if o.autopilot {
		runner.Autopilot = ai.NewAutopilot(seed)
	}

	sum := runner.Run()
	if sum.State == game.StateTerminated && runner.Sounds != nil {
		time.Sleep(soundLinger)
	}
	// Game over is a normal exit.
}
