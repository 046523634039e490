package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/peterGraf/pbl/pkg/codec"
)

// decodeCmd represents the decode command
var decodeCmd = &cobra.Command{
	Use:   "decode <hex-bytes>",
	Short: "Decode a variable-length integer from hex bytes",
	Long: `Decode a variable-length integer from the front of the given
hex-encoded bytes and report the value and the bytes consumed.

Example:
  pbl decode 812c`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := hex.DecodeString(args[0])
		if err != nil {
			return fmt.Errorf("invalid hex input: %w", err)
		}
		if len(raw) == 0 {
			return fmt.Errorf("empty input")
		}

		// The codec itself never fails; only a buffer shorter than its
		// leading byte announces is rejected here.
		need := codec.VarBufSize(raw)
		if len(raw) < need {
			return fmt.Errorf("truncated encoding: leading byte announces %d bytes, got %d", need, len(raw))
		}

		v, n := codec.DecodeVarLong(raw)
		cmd.Printf("%d (%d bytes)\n", v, n)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}
