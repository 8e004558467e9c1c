package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/b3jones/braid"
	"github.com/katalvlaran/b3jones/bracket"
)

// WordOptions holds flags for the word command.
type WordOptions struct {
	*RootOptions
	SignMode string
	Brackets bool
}

// NewWordCommand creates the word command.
func NewWordCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &WordOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "word <twist>...",
		Short: "Compute the Jones polynomial of a single braid word",
		Long: `Compute the writhe and Jones polynomial of the closure of one braid word.
Twists are A, B, Ainv and Binv; no arguments (or "1") is the identity.
The word does not need to be canonical.

Example:
  b3jones word A A A
  b3jones word A Binv A Binv --brackets`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWord(cmd, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.SignMode, "sign-mode", "parity", "writhe sign: parity|remainder")
	cmd.Flags().BoolVar(&opts.Brackets, "brackets", false, "also print the five closure brackets")

	return cmd
}

func runWord(cmd *cobra.Command, opts *WordOptions, args []string) error {
	w, err := braid.ParseWord(strings.Join(args, " "))
	if err != nil {
		return err
	}
	signMode := opts.SignMode
	if !cmd.Flags().Changed("sign-mode") {
		cfg, err := opts.loadConfig()
		if err != nil {
			return err
		}
		signMode = cfg.SignMode
	}
	mode, err := bracket.ParseSignMode(signMode)
	if err != nil {
		return err
	}
	eng, err := bracket.NewEngine(bracket.WithSignMode(mode))
	if err != nil {
		return err
	}

	a := eng.Annotate(w)
	out := cmd.OutOrStdout()
	cyan.Fprintf(out, "Word: %s\n", a.Word)
	fmt.Fprintf(out, "Writhe: %d\n", a.Writhe)
	if opts.Brackets {
		for _, b := range []struct {
			name string
			p    fmt.Stringer
		}{{"A", a.A}, {"B", a.B}, {"C", a.C}, {"D", a.D}, {"E", a.E}} {
			fmt.Fprintf(out, "Bracket %s: %s\n", b.name, b.p)
		}
	}
	green.Fprintf(out, "Jones: %s\n", a.Jones)
	return nil
}
