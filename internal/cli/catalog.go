package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aliskhannn/periodic-quiz-bot/internal/repository"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "catalog inspects element catalogs.",
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "validate checks a catalog file (the bundled catalog without a path).",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		}

		repo, err := repository.LoadCatalog(path)
		if err != nil {
			return fmt.Errorf("invalid catalog: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "catalog is valid: %d elements\n", repo.Len())
		return nil
	},
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "list prints the elements of a catalog.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := repository.LoadCatalog(catalogPath)
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}

		elements, err := repo.GetAll(context.Background())
		if err != nil {
			return err
		}

		for _, e := range elements {
			fmt.Fprintf(cmd.OutOrStdout(), "%3d  %-3s  %-16s %-10s %s\n",
				e.Number, e.Symbol, e.Name, strconv.FormatFloat(e.AtomicMass, 'f', -1, 64), e.Category)
		}
		return nil
	},
}

func init() {
	catalogListCmd.Flags().StringVarP(&catalogPath, "catalog", "c", "", "JSON or YAML element catalog (bundled catalog if empty)")

	catalogCmd.AddCommand(catalogValidateCmd, catalogListCmd)
	rootCmd.AddCommand(catalogCmd)
}
