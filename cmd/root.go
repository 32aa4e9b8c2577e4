// Package cmd implements the cmosclock command line.
package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// exitFailure follows the daemontools convention for a temporary failure.
const exitFailure = 111

var (
	okString   = color.GreenString("[ OK ]")
	failString = color.RedString("[FAIL]")
)

// RootCmd is the entry point of the cmosclock command.
var RootCmd = &cobra.Command{
	Use:           "cmosclock",
	Short:         "Read the time from a daytime server and write the system clock",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var verbose bool

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// ConfigureVerbosity configures log verbosity based on parsed flags. Needs to be called by any subcommand.
func ConfigureVerbosity() {
	log.SetLevel(log.InfoLevel)
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
}

// Execute is the main entry point for CLI interface
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, failString, err)
		os.Exit(exitFailure)
	}
}
