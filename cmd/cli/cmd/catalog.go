package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"mach-cost/core/catalog"
	"mach-cost/core/ui"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect and validate vendor catalogs",
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a vendor catalog file",
	Long: `Parse a vendor catalog (json, yaml or hcl) and check every vendor.

Without a path the --catalog flag, the configured catalog, or the embedded
catalog is validated.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCatalogValidate,
}

var catalogStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print catalog statistics as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		data, err := json.MarshalIndent(cat.Stats(), "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogValidateCmd)
	catalogCmd.AddCommand(catalogStatsCmd)
}

func runCatalogValidate(cmd *cobra.Command, args []string) error {
	var (
		cat *catalog.Catalog
		err error
	)
	if len(args) == 1 {
		cat, err = catalog.LoadFile(args[0])
	} else {
		cat, err = catalog.Load(catalogPath)
	}
	if err != nil {
		return err
	}

	w := ui.NewWriter(cmd.OutOrStdout(), noColor)
	errs := cat.Validate(catalog.DefaultValidationRules())
	for _, e := range errs {
		w.Error("%v", e)
	}
	if len(errs) > 0 {
		return fmt.Errorf("catalog has %d problems", len(errs))
	}

	stats := cat.Stats()
	w.Success("%d vendors, %d tiers, %d MACH-compliant", stats.Total, stats.Tiers, stats.MachCompliant)
	return w.Err()
}
