package opt

import (
	"flag"
	"log"

	"go.uber.org/zap"

	"github.com/nelhage/gomokuarm/ai"
	"github.com/nelhage/gomokuarm/config"
	"github.com/nelhage/gomokuarm/gomoku"
)

// Greedy holds the engine flags shared by every subcommand.
type Greedy struct {
	Size    int
	Weights string
	Primary string
	Config  string
	Debug   bool
}

func (o *Greedy) AddFlags(flags *flag.FlagSet) {
	flags.IntVar(&o.Size, "size", 0, "board size (default from -config, else 11)")
	flags.StringVar(&o.Weights, "weights", "", "JSON-encoded evaluation weights")
	flags.StringVar(&o.Primary, "primary", "", "color whose offense uses the primary attack coefficient")
	flags.StringVar(&o.Config, "config", "", "read settings from this file")
	flags.BoolVar(&o.Debug, "debug", false, "debug logging")
}

// LoadConfig reads -config (or just the environment) and folds the
// command-line flags over it.
func (o *Greedy) LoadConfig() *config.Config {
	cfg, err := config.Load(o.Config)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if o.Size != 0 {
		cfg.BoardSize = o.Size
	}
	if o.Debug {
		cfg.Debug = true
	}
	return cfg
}

// BuildWeights starts from the configured weights, overlays -weights
// and then -primary.
func (o *Greedy) BuildWeights() ai.Weights {
	w, err := o.LoadConfig().Weights()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	w = o.overlay(w, o.Weights)
	if o.Primary != "" {
		c, err := gomoku.ParseColor(o.Primary)
		if err != nil || !c.IsStone() {
			log.Fatalf("-primary: bad color %q", o.Primary)
		}
		w.Primary = c
	}
	return w
}

func (o *Greedy) overlay(w ai.Weights, js string) ai.Weights {
	if js == "" {
		return w
	}
	if err := w.UnmarshalJSON([]byte(js)); err != nil {
		log.Fatalf("-weights: %v", err)
	}
	return w
}

func (o *Greedy) Logger() *zap.SugaredLogger {
	var l *zap.Logger
	var err error
	if o.LoadConfig().Debug {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	return l.Sugar()
}

// BuildConfig matches the gei engine's ConfigFactory. The weights do
// not depend on the board size.
func (o *Greedy) BuildConfig(size int) ai.GreedyConfig {
	w := o.BuildWeights()
	return ai.GreedyConfig{Weights: &w}
}
