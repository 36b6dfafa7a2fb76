package serve

import (
	"context"
	"errors"
	"flag"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/subcommands"
	"golang.org/x/sync/errgroup"

	"github.com/nelhage/gomokuarm/cmd/internal/opt"
	"github.com/nelhage/gomokuarm/server"
)

type Command struct {
	grpcAddr string
	httpAddr string
	top      int

	opt opt.Greedy
}

func (*Command) Name() string     { return "serve" }
func (*Command) Synopsis() string { return "Serve move selection via gRPC and HTTP" }
func (*Command) Usage() string {
	return `serve [flags]

Serve the engine over gRPC (gomokuarm.Engine) and HTTP (/v1/move,
/v1/analyze). Either listener is disabled by an empty address.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.grpcAddr, "grpc", "", "gRPC listen address (default from config)")
	flags.StringVar(&c.httpAddr, "http", "", "HTTP listen address (default from config)")
	flags.IntVar(&c.top, "top", server.DefaultTop, "candidates returned by Analyze")
	c.opt.AddFlags(flags)
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg := c.opt.LoadConfig()
	logger := c.opt.Logger()
	defer logger.Sync()

	if c.grpcAddr == "" {
		c.grpcAddr = cfg.GRPCAddr
	}
	if c.httpAddr == "" {
		c.httpAddr = cfg.HTTPAddr
	}
	w := c.opt.BuildWeights()
	srv := server.New(server.Config{Weights: &w, Log: logger, Top: c.top})

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)

	if c.grpcAddr != "" {
		lis, err := net.Listen("tcp", c.grpcAddr)
		if err != nil {
			logger.Fatalw("failed to listen", "addr", c.grpcAddr, "error", err)
		}
		gs := srv.NewGRPCServer()
		logger.Infow("serving gRPC", "addr", lis.Addr().String())
		g.Go(func() error { return gs.Serve(lis) })
		g.Go(func() error {
			<-ctx.Done()
			gs.GracefulStop()
			return nil
		})
	}
	if c.httpAddr != "" {
		hs := &http.Server{Addr: c.httpAddr, Handler: srv.Router()}
		logger.Infow("serving HTTP", "addr", c.httpAddr)
		g.Go(func() error {
			if err := hs.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return hs.Shutdown(sctx)
		})
	}

	if err := g.Wait(); err != nil {
		logger.Errorw("server exited", "error", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
