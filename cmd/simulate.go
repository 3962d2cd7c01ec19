package cmd

import (
	"context"
	"fmt"

	"worldcraft/feature/simulate"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// simulateCmd runs one scenario file against the configured recipes.
var simulateCmd = &cobra.Command{
	Use:   "simulate <scenario.yaml>",
	Short: "Fire a scenario trigger in an in-memory world",
	Long:  `Loads recipes from the configured source, builds the scenario world, fires its trigger and prints the resulting world as YAML.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		data, err := afero.ReadFile(rt.fs, args[0])
		if err != nil {
			return fmt.Errorf("failed to read scenario: %w", err)
		}
		sc, err := simulate.Parse(data)
		if err != nil {
			return err
		}

		if _, err := rt.recipes.Reload(context.Background()); err != nil {
			return err
		}

		out, err := yaml.Marshal(simulate.NewService(rt.dispatcher, rt.logger).Run(sc))
		if err != nil {
			return err
		}
		fmt.Print(string(out))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(simulateCmd)
}
