package cmd

import (
	"encoding/json"

	"github.com/ThatOtherAndrew/unistroke/internal/gesture"
	"github.com/ThatOtherAndrew/unistroke/internal/models"
	"github.com/spf13/cobra"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize [stroke]",
	Short: "Print the normalized form of a stroke as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  normalize,
}

func init() {
	rootCmd.AddCommand(normalizeCmd)

	normalizeCmd.Flags().Float64Var(&minDistance, "min-distance", 0, "drop points closer than this to the previous point")
}

func normalize(cmd *cobra.Command, args []string) error {
	raw, err := gesture.LoadStroke(args[0])
	if err != nil {
		return err
	}

	opts := settings.Options(logger)
	normalized, err := opts.Normalizer.Normalize(gesture.Filter(raw, minDistance))
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(models.Stroke{Points: normalized})
}
