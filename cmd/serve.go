package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/karasz/cmosclock/daytimed"
)

var (
	serveConfig    daytimed.Config
	monitoringPort int
)

func init() {
	RootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&serveConfig.Addr, "listen", "l", daytimed.DefaultAddr, "address to listen on")
	serveCmd.Flags().StringVar(&serveConfig.Tag, "tag", "", "source label written after the time fields")
	serveCmd.Flags().IntVar(&serveConfig.MaxRequestsPerIP, "max-per-ip", daytimed.DefaultMaxRequestsPerIP, "connections allowed per IP in one rate limit window")
	serveCmd.Flags().DurationVar(&serveConfig.RateLimitWindow, "rate-window", daytimed.DefaultRateLimitWindow, "rate limit window")
	serveCmd.Flags().IntVar(&serveConfig.MaxConcurrentResponses, "max-concurrent", daytimed.DefaultMaxConcurrentResponses, "responses in flight before new connections are dropped")
	serveCmd.Flags().IntVar(&monitoringPort, "monitoringport", 0, "port for the /metrics endpoint, 0 disables it")
}

// runServe serves daytime until ctx is done or the listener fails.
func runServe(ctx context.Context, config *daytimed.Config, monitoringPort int) error {
	reg := prometheus.NewRegistry()
	server, err := daytimed.NewServer(config, daytimed.NewStats(reg))
	if err != nil {
		return err
	}
	log.Infof("daytime server listening on %s", server.Addr())

	g, ctx := errgroup.WithContext(ctx)
	g.Go(server.Start)
	g.Go(func() error {
		<-ctx.Done()
		return server.Stop()
	})

	if monitoringPort > 0 {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		srv := &http.Server{Addr: fmt.Sprintf(":%d", monitoringPort), Handler: mux}
		log.Infof("metrics on %s/metrics", srv.Addr)
		g.Go(func() error {
			if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			return srv.Shutdown(context.Background())
		})
	}
	return g.Wait()
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run a daytime server answering with the local clock",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ConfigureVerbosity()
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		err := runServe(ctx, &serveConfig, monitoringPort)
		log.Warning("daytime server stopped")
		return err
	},
}
