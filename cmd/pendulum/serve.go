package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/san-kum/pendulum/internal/driver"
	"github.com/san-kum/pendulum/internal/pendulum"
	"github.com/san-kum/pendulum/internal/viz"
	"github.com/san-kum/pendulum/internal/web"
)

var (
	addr  string
	theme string
)

func newServeCmd() *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "serve the animated pendulum page",
		RunE:  serve,
	}
	serveCmd.Flags().StringVar(&addr, "addr", "", "listen address (default :5000)")
	return serveCmd
}

func newLiveCmd() *cobra.Command {
	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "animate the pendulum in the terminal",
		RunE:  runLive,
	}
	liveCmd.Flags().StringVar(&theme, "theme", viz.ThemeWeb.Name, "color theme")
	return liveCmd
}

func serve(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := web.NewServer(cfg.Server.Addr,
		web.WithLogger(logger),
		web.WithScene(cfg.Scene()),
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.ListenAndServe(ctx)
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down", zap.Int("views", srv.Sessions()))
		return nil
	})
	return g.Wait()
}

func runLive(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	in := pendulum.New(pendulum.DefaultParams())
	return viz.Run(ctx, in, driver.Interval(in.Params().Dt), viz.GetTheme(theme))
}
