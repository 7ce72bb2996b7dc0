package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vogtb/go-calctree/internal/position"
)

var copyRectCmd = &cobra.Command{
	Use:   "copy <dst> <src> <width> <height>",
	Short: "copy a rectangle of cells, shifting relative references",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		dst, err := position.Parse(args[0])
		if err != nil {
			return err
		}
		src, err := position.Parse(args[1])
		if err != nil {
			return err
		}
		width, err := strconv.Atoi(args[2])
		if err != nil {
			return err
		}
		height, err := strconv.Atoi(args[3])
		if err != nil {
			return err
		}
		s, err := loadOrNew()
		if err != nil {
			return err
		}
		s.CopyRect(dst, src, width, height)
		return persist(s)
	},
}
