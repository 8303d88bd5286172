package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"enigma/internal/config"
	"enigma/internal/search"
)

func newSearchCmd() *cobra.Command {
	var (
		sheet     string
		plugboard string
		req       config.Search
	)
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Recover rotor order, reflector and rings from a known plaintext",
		Long: `Tries every ordered choice of three distinct candidate rotors, every
candidate reflector and every ring setting, starting from the known position
with the known plugboard, and prints each key that turns the plaintext into
the ciphertext. Give --greek and thin reflectors to search four rotor keys.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := &req
			if sheet != "" {
				data, err := os.ReadFile(sheet)
				if err != nil {
					return fmt.Errorf("read search sheet: %w", err)
				}
				parsed, err := config.ParseSearch(data)
				if err != nil {
					return fmt.Errorf("%s: %w", sheet, err)
				}
				overrideSearch(cmd, parsed, &req)
				s = parsed
			}
			if cmd.Flags().Changed("plugboard") || sheet == "" {
				s.Cables = strings.Fields(strings.ToUpper(plugboard))
			}
			s.Position = startPosition(s)
			if err := s.Validate(); err != nil {
				return err
			}

			opts := append(s.Options(), search.WithLogger(logger))
			report, err := search.New(opts...).Run(cmd.Context(), s.Space(), s.Plaintext, s.Ciphertext)
			if report != nil {
				printReport(cmd.OutOrStdout(), report)
			}
			return err
		},
	}
	f := cmd.Flags()
	f.StringVar(&sheet, "sheet", "", "YAML search sheet")
	f.StringSliceVarP(&req.Rotors, "rotors", "r", []string{"I", "II", "III", "IV", "V"}, "Candidate rotors")
	f.StringSliceVar(&req.Greek, "greek", nil, "Candidate leftmost wheels for a four rotor machine (Beta, Gamma)")
	f.StringSliceVarP(&req.Reflectors, "reflectors", "f", []string{"B"}, "Candidate reflectors")
	f.StringVarP(&req.Position, "position", "p", "", "Known starting position (default all A)")
	f.StringVar(&plugboard, "plugboard", "", "Known plugboard cables (e.g., \"AB CD EF\")")
	f.StringVar(&req.Plaintext, "plain", "", "Known plaintext")
	f.StringVar(&req.Ciphertext, "cipher", "", "Ciphertext")
	f.IntVarP(&req.Workers, "workers", "w", 0, "Worker goroutines (default GOMAXPROCS)")
	f.BoolVar(&req.First, "first", false, "Stop after the first match")
	return cmd
}

// startPosition uppercases the requested position, or returns all A for
// the machine size when none was given.
func startPosition(s *config.Search) string {
	if s.Position != "" {
		return strings.ToUpper(s.Position)
	}
	if len(s.Greek) > 0 {
		return "AAAA"
	}
	return "AAA"
}

// overrideSearch copies every flag set on the command line over the sheet.
func overrideSearch(cmd *cobra.Command, dst, flags *config.Search) {
	f := cmd.Flags()
	if f.Changed("rotors") {
		dst.Rotors = flags.Rotors
	}
	if f.Changed("greek") {
		dst.Greek = flags.Greek
	}
	if f.Changed("reflectors") {
		dst.Reflectors = flags.Reflectors
	}
	if f.Changed("position") {
		dst.Position = flags.Position
	}
	if f.Changed("plain") {
		dst.Plaintext = flags.Plaintext
	}
	if f.Changed("cipher") {
		dst.Ciphertext = flags.Ciphertext
	}
	if f.Changed("workers") {
		dst.Workers = flags.Workers
	}
	if f.Changed("first") {
		dst.First = flags.First
	}
}

func printReport(w io.Writer, r *search.Report) {
	for _, m := range r.Matches {
		fmt.Fprintln(w, m.Candidate)
	}
	if len(r.Matches) == 0 {
		fmt.Fprintf(w, "no key found among rotors %s, greek %s, reflectors %s at position %s\n",
			strings.Join(r.Space.Rotors, ","), strings.Join(r.Space.Greek, ","),
			strings.Join(r.Space.Reflectors, ","), r.Space.Position)
	}
	fmt.Fprintf(w, "tried %d of %d candidates in %s\n", r.Tried, r.Size, r.Elapsed.Round(time.Millisecond))
}
