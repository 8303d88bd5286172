package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"enigma/internal/machine"
	"enigma/internal/message"
)

func newEncryptCmd() *cobra.Command {
	var (
		keys  keyFlags
		group int
	)
	cmd := &cobra.Command{
		Use:     "encrypt",
		Aliases: []string{"decrypt"},
		Short:   "Encipher stdin line by line",
		Long: `Reads stdin line by line, normalizes each line (spaces become X, other
non-letters are dropped) and writes the enciphered line to stdout. The rotors
keep turning from one line to the next. Deciphering is the same operation
with the same key.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := keys.machine(cmd)
			if err != nil {
				return err
			}
			logger.Debug("machine ready", zap.Stringer("key", m))
			return processIO(m, group, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	keys.register(cmd)
	cmd.Flags().IntVarP(&group, "group", "g", 0, "Split output into groups of this many letters")
	return cmd
}

func processIO(m *machine.Machine, group int, reader io.Reader, writer io.Writer) error {
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		output, err := m.Translate(message.Normalize(scanner.Text()))
		if err != nil {
			return err
		}
		if group > 0 {
			output = message.Group(output, group)
		}
		if _, err := fmt.Fprintln(writer, output); err != nil {
			return fmt.Errorf("error writing output: %w", err)
		}
	}
	return scanner.Err()
}
