package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"enigma/internal/message"
)

func newMessageCmd() *cobra.Command {
	var (
		keys      keyFlags
		indicator string
		decode    bool
	)
	cmd := &cobra.Command{
		Use:   "message [text]",
		Short: "Send or receive a message under a doubled indicator",
		Long: `Enciphers text with the indicator procedure: the first half of the
indicator is sent in the clear, the second half is enciphered twice at the
first, and the body is enciphered at the second half. Output is in groups of
five. With --decode the argument (or stdin) is a received message.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := keys.machine(cmd)
			if err != nil {
				return err
			}
			text, err := argOrStdin(cmd, args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if decode {
				key, plain, err := message.DecodeIndicator(m, strings.ToUpper(text))
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(out, "%s: %s\n", key, plain)
				return err
			}
			cipher, err := message.EncodeIndicator(m, strings.ToUpper(indicator), text)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(out, message.Group(cipher, 5))
			return err
		},
	}
	keys.register(cmd)
	cmd.Flags().StringVarP(&indicator, "indicator", "i", "", "Ground setting followed by message key (e.g., AAAXYZ)")
	cmd.Flags().BoolVarP(&decode, "decode", "d", false, "Decode a received message")
	return cmd
}

func argOrStdin(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}
