package cmd

import (
	"github.com/spf13/cobra"

	"github.com/peterGraf/pbl/pkg/order"
)

// cmpCmd represents the cmp command
var cmpCmd = &cobra.Command{
	Use:   "cmp <left> <right>",
	Short: "Compare two byte strings in key order",
	Long: `Compare two byte strings under the total order used for
serialized keys and report the relation and the common prefix length.

Example:
  pbl cmp abc abcd`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		left := []byte(args[0])
		right := []byte(args[1])

		rel := "=="
		switch order.Compare(left, right) {
		case -1:
			rel = "<"
		case 1:
			rel = ">"
		}

		cmd.Printf("%q %s %q\n", args[0], rel, args[1])
		cmd.Printf("common prefix: %d bytes\n", order.CommonPrefixLen(left, right))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cmpCmd)
}
