package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vogtb/go-calctree/internal/position"
)

var getCmd = &cobra.Command{
	Use:   "get <address>",
	Short: "print a cell's evaluated value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pos, err := position.Parse(args[0])
		if err != nil {
			return err
		}
		s, err := loadOrNew()
		if err != nil {
			return err
		}
		v := s.GetValue(pos)
		if v.IsUndefined() {
			fmt.Println("#UNDEF")
			return nil
		}
		fmt.Println(v.AsText())
		return nil
	},
}
