package arm

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/google/subcommands"

	"github.com/nelhage/gomokuarm/ai"
	"github.com/nelhage/gomokuarm/arm"
	"github.com/nelhage/gomokuarm/cmd/internal/opt"
	"github.com/nelhage/gomokuarm/gomoku"
	"github.com/nelhage/gomokuarm/notation"
)

type Command struct {
	side    string
	device  string
	sample1 string
	sample2 string
	fetch   string
	idle    string

	opt opt.Greedy
}

func (*Command) Name() string     { return "arm" }
func (*Command) Synopsis() string { return "Play a human on a physical board" }
func (*Command) Usage() string {
	return `arm -device PATH -sample1 X,Y,POINT -sample2 X,Y,POINT [flags]

Drive the plotter on PATH against a human. The human's moves are read
from stdin, one point per line, after the plotter reports the turn
button.

The two samples calibrate the plotter: each is a plotter position and
the board cell under it.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.side, "side", "black", "color the engine plays")
	flags.StringVar(&c.device, "device", "", "plotter device")
	flags.StringVar(&c.sample1, "sample1", "", "first calibration sample")
	flags.StringVar(&c.sample2, "sample2", "", "second calibration sample")
	flags.StringVar(&c.fetch, "fetch", "h12", "cell over the stone supply")
	flags.StringVar(&c.idle, "idle", "f1", "cell to park over between moves")
	c.opt.AddFlags(flags)
}

func parseSample(s string) (arm.Sample, error) {
	bits := strings.Split(s, ",")
	if len(bits) != 3 {
		return arm.Sample{}, fmt.Errorf("sample %q: want X,Y,POINT", s)
	}
	x, err := strconv.ParseFloat(bits[0], 64)
	if err != nil {
		return arm.Sample{}, err
	}
	y, err := strconv.ParseFloat(bits[1], 64)
	if err != nil {
		return arm.Sample{}, err
	}
	p, err := notation.ParsePoint(bits[2])
	if err != nil {
		return arm.Sample{}, err
	}
	return arm.Sample{X: x, Y: y, Point: p}, nil
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.device == "" || c.sample1 == "" || c.sample2 == "" {
		log.Println("-device, -sample1 and -sample2 are required")
		return subcommands.ExitUsageError
	}
	side, err := gomoku.ParseColor(c.side)
	if err != nil || !side.IsStone() {
		log.Fatalf("-side: bad color %q", c.side)
	}
	s1, err := parseSample(c.sample1)
	if err != nil {
		log.Fatal("-sample1: ", err)
	}
	s2, err := parseSample(c.sample2)
	if err != nil {
		log.Fatal("-sample2: ", err)
	}
	cal, err := arm.Fit(s1, s2)
	if err != nil {
		log.Fatal("calibrate: ", err)
	}
	fetch, err := notation.ParsePoint(c.fetch)
	if err != nil {
		log.Fatal("-fetch: ", err)
	}
	idle, err := notation.ParsePoint(c.idle)
	if err != nil {
		log.Fatal("-idle: ", err)
	}

	dev, err := os.OpenFile(c.device, os.O_RDWR, 0)
	if err != nil {
		log.Fatal("open device: ", err)
	}
	defer dev.Close()

	logger := c.opt.Logger()
	defer logger.Sync()
	b, err := gomoku.New(gomoku.Config{Size: c.opt.LoadConfig().BoardSize})
	if err != nil {
		log.Fatal(err)
	}
	w := c.opt.BuildWeights()

	ctl := &arm.Controller{
		Vision: &arm.LineVision{In: bufio.NewReader(os.Stdin), Color: side.Flip()},
		Actuator: &arm.Plotter{
			Out:   dev,
			In:    bufio.NewReader(dev),
			Cal:   cal,
			Fetch: fetch,
			Idle:  idle,
		},
		Player: ai.NewGreedy(ai.GreedyConfig{Weights: &w, Log: logger}),
		Side:   side,
		Board:  b,
		Log:    logger,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()
	res, err := ctl.Run(ctx)
	if err != nil {
		logger.Errorw("game aborted", "moves", res.Moves, "error", err)
		return subcommands.ExitFailure
	}
	log.Printf("game over: winner=%s moves=%d position=%s",
		res.Winner, res.Moves, notation.FormatPosition(b))
	return subcommands.ExitSuccess
}
