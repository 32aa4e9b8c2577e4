package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/karasz/cmosclock/daytime"
	"github.com/karasz/cmosclock/sysclock"
)

// newWriter is replaced in tests so nothing touches the real clock.
var newWriter = sysclock.New

// timeLayouts are tried in order by parseTimeArg. Layouts without a zone are UTC.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	daytime.Layout,
}

func parseTimeArg(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse %q, use RFC 3339 or \"YYYY-MM-DD HH:MM:SS\" (UTC)", s)
}

func runSet(w io.Writer, writer *sysclock.Writer, t time.Time) error {
	msg, err := writer.SetSystemClock(t)
	if err != nil {
		return err
	}
	log.Debugf("system clock set to %s", t.UTC().Format(time.RFC3339))
	_, _ = fmt.Fprintln(w, okString, msg)
	return nil
}

func init() {
	RootCmd.AddCommand(setCmd)
}

var setCmd = &cobra.Command{
	Use:   "set <time>",
	Short: "Write the given time to the system clock (needs administrator privileges)",
	Example: `  cmosclock set 2024-01-15T12:34:56Z
  cmosclock set 2024-01-15 12:34:56`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ConfigureVerbosity()
		t, err := parseTimeArg(strings.Join(args, " "))
		if err != nil {
			return err
		}
		return runSet(cmd.OutOrStdout(), newWriter(), t)
	},
}
