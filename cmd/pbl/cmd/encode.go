package cmd

import (
	"github.com/spf13/cobra"

	"github.com/peterGraf/pbl/pkg/codec"
)

var encodeFixed bool

// encodeCmd represents the encode command
var encodeCmd = &cobra.Command{
	Use:   "encode <value>",
	Short: "Encode a 32-bit value",
	Long: `Encode a 32-bit value as a self-describing variable-length
integer, or with --fixed as a 4-byte big-endian integer.

Example:
  pbl encode 300
  pbl encode --fixed 0xdeadbeef`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := parseValue(args[0])
		if err != nil {
			return err
		}

		if encodeFixed {
			buf := make([]byte, codec.LongLen)
			codec.EncodeLong(buf, int32(v))
			cmd.Printf("%x (%d bytes)\n", buf, len(buf))
			return nil
		}

		buf := make([]byte, codec.MaxVarLongLen)
		n := codec.EncodeVarLong(buf, v)
		cmd.Printf("%x (%d bytes)\n", buf[:n], n)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	encodeCmd.Flags().BoolVar(&encodeFixed, "fixed", false, "use the 4-byte fixed-width encoding")
}
