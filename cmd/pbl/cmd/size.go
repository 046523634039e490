package cmd

import (
	"github.com/spf13/cobra"

	"github.com/peterGraf/pbl/pkg/codec"
)

// sizeCmd represents the size command
var sizeCmd = &cobra.Command{
	Use:   "size <value>",
	Short: "Show how many bytes a value takes in variable-length form",
	Long: `Show the number of bytes the variable-length encoding would use
for a 32-bit value, without encoding it.

Example:
  pbl size 300`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := parseValue(args[0])
		if err != nil {
			return err
		}
		cmd.Printf("%d\n", codec.VarLongSize(v))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sizeCmd)
}
