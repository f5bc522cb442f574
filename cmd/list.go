package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the templates in a templates file",
	Args:  cobra.NoArgs,
	RunE:  listGestures,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&templatesFile, "templates", "t", "", "templates file (JSON or YAML)")
	listCmd.Flags().Float64Var(&minDistance, "min-distance", 0, "drop points closer than this to the previous point")
}

func listGestures(cmd *cobra.Command, args []string) error {
	r, gestures, err := loadRecognizer(templatesFile, minDistance)
	if err != nil {
		return err
	}

	commands := make(map[string]string, len(gestures))
	for _, g := range gestures {
		commands[g.Name] = g.Command
	}

	out := cmd.OutOrStdout()
	names := r.Names()
	if len(names) == 0 {
		fmt.Fprintln(out, "No gestures registered")
		return nil
	}
	fmt.Fprintln(out, "Registered gestures:")
	for _, name := range names {
		if c := commands[name]; c != "" {
			fmt.Fprintf(out, "   %s\t%s\n", name, c)
		} else {
			fmt.Fprintf(out, "   %s\n", name)
		}
	}
	return nil
}
