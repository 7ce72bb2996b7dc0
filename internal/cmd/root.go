// Package cmd wires the engine up to a small cobra CLI. The CLI is a
// demo harness around the core library, not part of its contract -- the
// core model has no notion of a command line, files beyond save/load
// framing, or environment variables.
package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "calctree",
	Short: "calctree drives the expression-tree spreadsheet engine from the command line",
	Long: `calctree is a small demo harness around the expression-tree engine:
set/get individual cells, copy rectangles, and save/load a sheet to the
framed on-disk format.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&filePath, "file", "f", "sheet.calctree", "path to the persisted sheet")
	rootCmd.AddCommand(setCmd, getCmd, copyRectCmd, dumpCmd)
}
