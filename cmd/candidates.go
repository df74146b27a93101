package cmd

import (
	"fmt"
	"log"
	"strings"

	"github.com/spigell/cv-ranker/internal/candidate"
	"github.com/spigell/cv-ranker/internal/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var candidatesCmd = &cobra.Command{
	Use:   "candidates",
	Short: "Inspect the candidate pool",
}

var candidatesSearchCmd = &cobra.Command{
	Use:   "search <skill>",
	Short: "Find candidates listing a specific skill",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		runCandidatesSearch(args[0])
	},
}

func init() {
	rootCmd.AddCommand(candidatesCmd)
	candidatesCmd.AddCommand(candidatesSearchCmd)
}

func runCandidatesSearch(skill string) {
	zlog, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		zlog.Fatal("getting a config", zap.Error(err))
	}

	source, origin, err := newSource(config)
	if err != nil {
		zlog.Fatal("loading candidate data", zap.Error(err))
	}

	matched := source.Candidates().FilterBySkill(skill)
	if matched.Len() == 0 {
		zlog.Info("no candidates found",
			zap.String("skill", skill),
			zap.String(logger.FieldDataSource, origin),
		)
		return
	}

	fmt.Print(renderCandidateMatches(skill, matched))
}

func renderCandidateMatches(skill string, matched *candidate.Candidates) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Candidates with skill '%s':\n", skill)
	b.WriteString(strings.Repeat("=", 40) + "\n")

	for _, c := range matched.Items {
		fmt.Fprintf(&b, "• %s (%d years experience)\n", c.Name, c.ExperienceYears)
		fmt.Fprintf(&b, "  Skills: %s\n", strings.Join(c.Skills, ", "))
		fmt.Fprintf(&b, "  Previous Roles: %s\n\n", strings.Join(c.PreviousRoles, ", "))
	}

	return b.String()
}
