package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose bool
	logger  = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "enigma",
	Short: "Rotor cipher machine simulator and known plaintext key search",
	Long: `enigma simulates the three and four rotor cipher machines and recovers
rotor order, reflector and ring settings from a known plaintext.

Examples:
  echo "attack at dawn" | enigma encrypt --rotors I,II,III --position AAA
  enigma encrypt --key key.yaml < message.txt
  enigma search --rotors I,IV,V --position GTO --plugboard "AL CT FN IY" \
      --plain AAAAAAAAAA --cipher OIZVZSRXOM`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.AddCommand(newEncryptCmd(), newSearchCmd(), newMessageCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
