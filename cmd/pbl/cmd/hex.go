package cmd

import (
	"github.com/spf13/cobra"

	"github.com/peterGraf/pbl/pkg/codec"
)

// hexCmd represents the hex command
var hexCmd = &cobra.Command{
	Use:   "hex <value>",
	Short: "Show the 8-digit hex representation of a 32-bit value",
	Long: `Show the fixed 8-digit lowercase hex representation of a 32-bit
value, most significant nibble first.

Example:
  pbl hex 300`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := parseValue(args[0])
		if err != nil {
			return err
		}
		cmd.Printf("%s\n", codec.HexString(v))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(hexCmd)
}
