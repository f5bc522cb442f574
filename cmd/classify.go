package cmd

import (
	"errors"
	"fmt"

	"github.com/ThatOtherAndrew/unistroke/internal/execute"
	"github.com/ThatOtherAndrew/unistroke/internal/gesture"
	"github.com/ThatOtherAndrew/unistroke/pkg/unistroke"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	templatesFile string
	minDistance   float64
	showAll       bool
	runCommand    bool
	threshold     float64
)

var classifyCmd = &cobra.Command{
	Use:   "classify [stroke]...",
	Short: "Classify stroke files against a set of templates",
	Long: `Classify loads the templates file, then prints the best matching
template name and score for every stroke file. Use "-" to read a stroke
from standard input.`,
	Args: cobra.MinimumNArgs(1),
	RunE: classify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)

	classifyCmd.Flags().StringVarP(&templatesFile, "templates", "t", "", "templates file (JSON or YAML)")
	classifyCmd.Flags().Float64Var(&minDistance, "min-distance", 0, "drop points closer than this to the previous point")
	classifyCmd.Flags().BoolVarP(&showAll, "all", "a", false, "print the score of every template")
	classifyCmd.Flags().BoolVarP(&runCommand, "exec", "x", false, "run the matched template's command")
	classifyCmd.Flags().Float64Var(&threshold, "threshold", -1, "minimum score for --exec (default from settings)")
}

func classify(cmd *cobra.Command, args []string) error {
	r, gestures, err := loadRecognizer(templatesFile, minDistance)
	if err != nil {
		return err
	}
	commands := make(map[string]string, len(gestures))
	for _, g := range gestures {
		commands[g.Name] = g.Command
	}

	minScore := settings.MatchThreshold
	if threshold >= 0 {
		minScore = threshold
	}

	out := cmd.OutOrStdout()
	for _, path := range args {
		raw, err := gesture.LoadStroke(path)
		if err != nil {
			return fmt.Errorf("failed to load stroke %s: %w", path, err)
		}
		points := gesture.Filter(raw, minDistance)

		ranked, err := r.Rank(points)
		switch {
		case errors.Is(err, unistroke.ErrInvalidPath), errors.Is(err, unistroke.ErrDegeneratePath):
			logger.Warn("Gesture too short, ignoring", zap.String("stroke", path), zap.Error(err))
			continue
		case err != nil:
			return err
		}

		prefix := ""
		if len(args) > 1 {
			prefix = path + ": "
		}
		if showAll {
			for _, res := range ranked {
				fmt.Fprintf(out, "%s%s\t%.3f\n", prefix, res.Name, res.Score)
			}
		} else {
			fmt.Fprintf(out, "%s%s\t%.3f\n", prefix, ranked[0].Name, ranked[0].Score)
		}

		if runCommand {
			runMatched(ranked[0], commands[ranked[0].Name], minScore)
		}
	}
	return nil
}

func runMatched(best unistroke.Result, command string, minScore float64) {
	if best.Score <= minScore {
		logger.Info(fmt.Sprintf("No confident match (best score: %.3f)", best.Score))
		return
	}
	logger.Info(fmt.Sprintf("Matched gesture: %s (score: %.3f)", best.Name, best.Score))
	if command == "" {
		return
	}
	pid, err := execute.Command(command)
	if err != nil {
		logger.Error("Failed to execute command", zap.String("command", command), zap.Error(err))
		return
	}
	logger.Info("Executed", zap.String("command", command), zap.Int("pid", pid))
}
