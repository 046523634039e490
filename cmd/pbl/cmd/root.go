package cmd

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pbl",
	Short: "PBL binary codec toolkit",
	Long: `pbl inspects the binary encodings used by the PBL toolkit:
fixed-width big-endian integers, self-describing variable-length
integers, and the total order used over serialized key buffers.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// parseValue accepts decimal, 0x-hex and octal forms of a 32-bit value.
func parseValue(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}
