package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract <file>",
	Short: "Extract the architecture JSON from a recommendation message",
	Long: `Read a recommendation message and print the architecture it contains.

The labelled "ARCHITECTURE JSON" block is preferred; fenced json blocks
and bare objects with a "business" key are tried next. Use "-" for stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		arch, err := readMessage(cmd, args[0])
		if err != nil {
			return err
		}

		data, err := json.MarshalIndent(arch, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)
}
