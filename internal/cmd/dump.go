package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "print every assigned cell as \"<address>: <expression>\"",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadOrNew()
		if err != nil {
			return err
		}
		return s.Dump(os.Stdout)
	},
}
