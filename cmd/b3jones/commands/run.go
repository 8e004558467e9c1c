package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/b3jones/config"
	"github.com/katalvlaran/b3jones/enumerate"
	"github.com/katalvlaran/b3jones/store"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	Length   int
	Workers  int
	SignMode string
	Database string
	Print    bool
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Enumerate canonical braids and their Jones polynomials",
		Long: `Enumerate every canonical 3-strand braid word up to --length, compute the
Jones polynomial of each closure and print summary statistics.

Example:
  b3jones run --length 8
  b3jones run --length 10 --workers 8 --db runs.db
  b3jones run -c b3jones.yml --print`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			return runEnumerate(cmd, opts.RootOptions, cfg)
		},
	}

	cmd.Flags().IntVarP(&opts.Length, "length", "n", config.DefaultMaxLength, "maximum canonical word length")
	cmd.Flags().IntVarP(&opts.Workers, "workers", "w", 1, "goroutines per generation")
	cmd.Flags().StringVar(&opts.SignMode, "sign-mode", "parity", "writhe sign: parity|remainder")
	cmd.Flags().StringVar(&opts.Database, "db", "", "SQLite database to store the run in")
	cmd.Flags().BoolVar(&opts.Print, "print", false, "print every (word, Jones) pair")

	return cmd
}

// resolve loads the configuration and applies explicitly set flags on top.
func (o *RunOptions) resolve(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("length") {
		cfg.MaxLength = o.Length
	}
	if flags.Changed("workers") {
		cfg.Workers = o.Workers
	}
	if flags.Changed("sign-mode") {
		cfg.SignMode = o.SignMode
	}
	if flags.Changed("db") {
		cfg.Database = o.Database
	}
	if flags.Changed("print") {
		cfg.PrintRecords = o.Print
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func runEnumerate(cmd *cobra.Command, root *RootOptions, cfg *config.Config) error {
	logger, err := root.newLogger(cmd.ErrOrStderr(), cfg)
	if err != nil {
		return err
	}
	mode, err := cfg.ParsedSignMode()
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	logger.Info("enumerating braids",
		"max_length", cfg.MaxLength, "workers", cfg.Workers, "sign_mode", mode)
	recs, err := enumerate.Enumerate(cfg.MaxLength,
		enumerate.WithContext(ctx),
		enumerate.WithWorkers(cfg.Workers),
		enumerate.WithSignMode(mode),
		enumerate.WithLogger(logger),
		enumerate.WithOnGeneration(func(gen, size int) {
			logger.Info("generation done", "length", gen, "words", size)
		}),
	)
	if err != nil {
		return fmt.Errorf("enumerate: %w", err)
	}

	out := cmd.OutOrStdout()
	if cfg.PrintRecords {
		for _, r := range recs {
			printRecord(out, r)
		}
	}

	if cfg.Database != "" {
		st, err := store.Open(cfg.Database)
		if err != nil {
			return err
		}
		defer func() {
			if closeErr := st.Close(); closeErr != nil {
				logger.Error("error closing database", "error", closeErr)
			}
		}()
		id, err := st.SaveRun(ctx, cfg.MaxLength, mode.String(), recs)
		if err != nil {
			return err
		}
		logger.Info("run stored", "database", cfg.Database, "run_id", id, "records", len(recs))
	}

	printSummary(out, enumerate.Summarize(recs))
	return nil
}
