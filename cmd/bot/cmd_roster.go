package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"squadBot/internal/domain"
	"squadBot/internal/usecase/squad"
)

func newRosterCmd() *cobra.Command {
	var (
		present         []string
		seed            uint64
		caseInsensitive bool
	)

	cmd := &cobra.Command{
		Use:   "roster [command]",
		Short: "Parse a squad command offline and print the resulting roster",
		Long: `Runs a squad command against a given participant list without connecting
to any platform.

Example:
  squadbot roster --present Ann,Bo,Cez,Dot "!sq duo !Bo Eve"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			policy := squad.MatchExact
			if caseInsensitive {
				policy = squad.MatchFold
			}
			parser := squad.NewParser(zap.NewNop(), squad.WithMatchPolicy(policy))

			var shuffler squad.Shuffler
			if cmd.Flags().Changed("seed") {
				shuffler = squad.NewSeededShuffler(seed)
			}

			outcome, err := parser.Parse(args[0], present)
			if err != nil {
				var perr *domain.ParseError
				if errors.As(err, &perr) {
					return fmt.Errorf("invalid command: %w", perr)
				}
				return err
			}

			switch o := outcome.(type) {
			case domain.Help:
				fmt.Fprintln(cmd.OutOrStdout(), string(o))
			case domain.Request:
				fmt.Fprint(cmd.OutOrStdout(), squad.NewPartitioner(shuffler).CreateTeams(o))
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&present, "present", nil, "comma separated participants present in voice")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed for a reproducible shuffle")
	cmd.Flags().BoolVar(&caseInsensitive, "case-insensitive", false, "match exclusions ignoring case")
	return cmd
}
