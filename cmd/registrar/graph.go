package main

import (
	"fmt"

	"github.com/aretw0/registrar"
	"github.com/aretw0/registrar/internal/presentation/graph"
	"github.com/aretw0/registrar/pkg/adapters/memory"
	"github.com/spf13/cobra"
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the menu tree visualization",
	Long:  `Outputs a Mermaid diagram (graph TD) of the menus and the operation each item fires.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := registrar.New(memory.NewStore())
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(app.Menu()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
