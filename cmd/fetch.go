package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/karasz/glibtai"
	"github.com/spf13/cobra"

	"github.com/karasz/cmosclock/daytime"
)

const defaultTimeout = 10 * time.Second

var (
	server  string
	timeout time.Duration
)

func addFetchFlags(c *cobra.Command) {
	c.Flags().StringVarP(&server, "server", "S", daytime.DefaultAddr, "daytime server to query, host:port")
	c.Flags().DurationVarP(&timeout, "timeout", "t", defaultTimeout, "give up on the server after this long")
}

func init() {
	RootCmd.AddCommand(fetchCmd)
	addFetchFlags(fetchCmd)
}

func fetchTime(ctx context.Context, addr string, timeout time.Duration) (time.Time, error) {
	f := daytime.NewFetcher(&daytime.TCPProvider{Addr: addr, Timeout: timeout})
	return f.FetchUTCNow(ctx)
}

// printTime writes t in RFC 3339 followed by its TAI64N label.
func printTime(w io.Writer, t time.Time) {
	_, _ = fmt.Fprintf(w, "%s %s\n", t.UTC().Format(time.RFC3339), glibtai.TAINfromTime(t))
}

func runFetch(ctx context.Context, w io.Writer, addr string, timeout time.Duration) error {
	t, err := fetchTime(ctx, addr, timeout)
	if err != nil {
		return err
	}
	printTime(w, t)
	return nil
}

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Print the current UTC time reported by a daytime server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ConfigureVerbosity()
		return runFetch(cmd.Context(), cmd.OutOrStdout(), server, timeout)
	},
}
