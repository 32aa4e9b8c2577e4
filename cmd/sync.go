package cmd

import (
	"context"
	"io"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/karasz/cmosclock/sysclock"
)

func runSync(ctx context.Context, w io.Writer, writer *sysclock.Writer, addr string, timeout time.Duration) error {
	t, err := fetchTime(ctx, addr, timeout)
	if err != nil {
		return err
	}
	log.Infof("%s reports %s, local clock is %s", addr, t.Format(time.RFC3339), time.Now().UTC().Format(time.RFC3339))
	printTime(w, t)
	return runSet(w, writer, t)
}

func init() {
	RootCmd.AddCommand(syncCmd)
	addFetchFlags(syncCmd)
}

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Fetch the time from a daytime server and write it to the system clock",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ConfigureVerbosity()
		return runSync(cmd.Context(), cmd.OutOrStdout(), newWriter(), server, timeout)
	},
}
