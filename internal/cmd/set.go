package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vogtb/go-calctree/internal/position"
)

var setCmd = &cobra.Command{
	Use:   "set <address> <contents>",
	Short: "set a cell's contents and save the sheet",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		pos, err := position.Parse(args[0])
		if err != nil {
			return err
		}
		s, err := loadOrNew()
		if err != nil {
			return err
		}
		if !s.SetCell(pos, args[1]) {
			return fmt.Errorf("could not parse %q for cell %s", args[1], args[0])
		}
		logrus.WithFields(logrus.Fields{"address": args[0], "contents": args[1]}).Info("cell set")
		return persist(s)
	},
}
