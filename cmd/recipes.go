package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"worldcraft/core/crafting"
	"worldcraft/core/storage"
	"worldcraft/feature/recipes"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	categoryFlag string
	dryRunFlag   bool
)

// recipesCmd represents the recipes command
var recipesCmd = &cobra.Command{
	Use:   "recipes",
	Short: "Inspect and distribute recipe definitions",
}

// recipesListCmd prints the loaded registry.
var recipesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List loaded recipes per category",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, res, err := loadRecipes(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		for _, cat := range crafting.Categories {
			if categoryFlag != "" && string(cat) != categoryFlag {
				continue
			}
			list := res.Registry.Recipes(cat)
			fmt.Printf("%s (%d)\n", cat, len(list))
			for _, r := range list {
				fmt.Printf("  %-40s %d input(s) -> %s\n", r.ID, len(r.Inputs), r.Output.Kind)
			}
		}
		return nil
	},
}

// recipesValidateCmd fails when any definition is dropped.
var recipesValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate every definition of the configured source",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, res, err := loadRecipes(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		warnings := res.Warnings()
		fmt.Printf("Loaded:     %d\n", res.Registry.Len())
		fmt.Printf("Dropped:    %d\n", len(warnings))
		fmt.Printf("Duplicates: %d\n", len(res.Duplicates))
		for _, w := range warnings {
			fmt.Printf("- %v\n", w)
		}
		for _, id := range res.Duplicates {
			fmt.Printf("- duplicate id %s\n", id)
		}
		if len(warnings) > 0 || len(res.Duplicates) > 0 {
			return fmt.Errorf("%d definition(s) invalid, %d duplicate id(s)", len(warnings), len(res.Duplicates))
		}
		return nil
	},
}

// recipesExportCmd writes the wire-encoded registry.
var recipesExportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export the registry in wire form (stdout when no file is given)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, _, err := loadRecipes(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		var out io.Writer = os.Stdout
		if len(args) == 1 && args[0] != "-" {
			f, err := rt.fs.Create(args[0])
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", args[0], err)
			}
			defer f.Close()
			out = f
		}
		return rt.recipes.Export(out)
	},
}

// recipesPublishCmd uploads a local definition tree to the bucket.
var recipesPublishCmd = &cobra.Command{
	Use:   "publish <dir>",
	Short: "Upload a definition directory to the storage bucket",
	Long:  `Compares a local definition tree with the bucket and uploads new or changed definitions. Remote definitions without a local file are reported as stale and left in place.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		store := rt.store
		if store == nil {
			if store, err = storage.NewClient(rt.cfg.Storage); err != nil {
				return fmt.Errorf("failed to create storage client: %w", err)
			}
		}

		docs, err := recipes.NewDirSource(afero.NewOsFs(), args[0]).Documents(ctx)
		if err != nil {
			return err
		}
		pub := recipes.NewPublisher(store, rt.cfg.Storage.Bucket, rt.cfg.Recipes.Prefix, rt.logger)
		plan, err := pub.Plan(ctx, docs)
		if err != nil {
			return err
		}

		for _, a := range plan.Actions {
			if a.Type != recipes.ActionUnchanged {
				fmt.Printf("%-9s %s (%s)\n", a.Type, a.Key, a.Reason)
			}
		}
		fmt.Printf("Uploads: %d  Unchanged: %d  Stale: %d\n", plan.Summary.Uploads, plan.Summary.Unchanged, plan.Summary.Stale)
		if dryRunFlag {
			return nil
		}

		n, err := pub.Apply(ctx, plan)
		if err != nil {
			return err
		}
		rt.logger.Info("Definitions published", zap.Int("objects", n), zap.String("bucket", rt.cfg.Storage.Bucket))
		return nil
	},
}

func init() {
	recipesListCmd.Flags().StringVar(&categoryFlag, "category", "", "Only list one category")
	recipesPublishCmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "Print the plan without uploading")
	recipesCmd.AddCommand(recipesListCmd, recipesValidateCmd, recipesExportCmd, recipesPublishCmd)
	RootCmd.AddCommand(recipesCmd)
}

func loadRecipes(ctx context.Context) (*runtime, *recipes.Result, error) {
	rt, err := bootstrap()
	if err != nil {
		return nil, nil, err
	}
	res, err := rt.recipes.Reload(ctx)
	if err != nil {
		return nil, nil, err
	}
	return rt, res, nil
}
