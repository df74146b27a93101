package cmd

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/spigell/cv-ranker/internal/candidate"
	"github.com/spigell/cv-ranker/internal/filtering"
	"github.com/spigell/cv-ranker/internal/logger"
	"github.com/spigell/cv-ranker/internal/ranking"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const defaultTopN = 3

var rankCmd = &cobra.Command{
	Use:   "rank [job-id]",
	Short: "Rank candidates for a job description and print the top matches",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runRank(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(rankCmd)

	rankCmd.Flags().IntP("top", "t", defaultTopN, "number of top candidates to print")
	rankCmd.Flags().String("skill", "", "only rank candidates listing this skill")
	rankCmd.Flags().Int("min-years", 0, "only rank candidates with at least this many years of experience")

	viper.BindPFlag("ranking.top", rankCmd.Flags().Lookup("top"))
	viper.BindPFlag("ranking.skill", rankCmd.Flags().Lookup("skill"))
	viper.BindPFlag("ranking.min-years", rankCmd.Flags().Lookup("min-years"))
}

func runRank(cmd *cobra.Command, args []string) {
	ctx := context.Background()

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

	job, err := selectJob(source.Jobs(), args, config.Ranking.Job)
	if err != nil {
		zlog.Fatal("selecting a job", zap.Error(err))
	}

	zlog.Info("ranking candidates", logger.RankingFields(job.Title, origin)...)

	filters := filtering.New([]filtering.Filter{
		filtering.NewSkill(config.Ranking.Skill),
		filtering.NewMinExperience(config.Ranking.MinYears),
	}, zlog)

	candidates, err := filters.RunFilters(ctx, source.Candidates())
	if err != nil {
		zlog.Fatal("filtering candidates", zap.Error(err))
	}

	if candidates.Len() == 0 {
		zlog.Info("exiting", zap.String("reason", "no candidates left after filters"))
		return
	}

	ranker := ranking.NewRanker(source, zlog)
	results := ranker.RankCandidates(candidates, job)

	top := config.Ranking.Top
	if top <= 0 {
		top = defaultTopN
	}
	if top > len(results) {
		top = len(results)
	}

	fmt.Print(renderRanking(job, results, top))
}

// selectJob resolves the job to rank against: an explicit argument wins, then
// the configured job id, then an interactive prompt over the catalogue.
func selectJob(jobs *candidate.Jobs, args []string, configured string) (*candidate.JobDescription, error) {
	id := configured
	if len(args) > 0 {
		id = args[0]
	}

	if id != "" {
		job := jobs.FindByID(id)
		if job == nil {
			return nil, fmt.Errorf("no job with id %q, known ids: %s", id, strings.Join(jobIDs(jobs), ", "))
		}
		return job, nil
	}

	if jobs.Len() == 0 {
		return nil, fmt.Errorf("the job catalogue is empty")
	}

	items := make([]string, 0, jobs.Len())
	for _, job := range jobs.Items {
		items = append(items, fmt.Sprintf("%s at %s", job.Title, job.Company))
	}

	prompt := promptui.Select{
		Label: "Choose a job to rank candidates for",
		Items: items,
	}

	idx, _, err := prompt.Run()
	if err != nil {
		return nil, err
	}

	return jobs.Items[idx], nil
}

func jobIDs(jobs *candidate.Jobs) []string {
	ids := make([]string, 0, jobs.Len())
	for _, job := range jobs.Items {
		ids = append(ids, job.ID)
	}
	return ids
}

// renderRanking produces the job header plus the top-N formatted candidate
// summaries separated the way downstream text consumers expect.
func renderRanking(job *candidate.JobDescription, results []*ranking.Result, top int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Job: %s at %s\n", job.Title, job.Company)
	fmt.Fprintf(&b, "Required Skills: %s\n", strings.Join(job.RequiredSkills, ", "))
	fmt.Fprintf(&b, "Minimum Experience: %d years\n\n", job.MinExperience)
	fmt.Fprintf(&b, "Top %d Candidates:\n", top)
	b.WriteString(strings.Repeat("=", 50) + "\n")

	for i, result := range results[:top] {
		b.WriteString(ranking.FormatSummary(result, i+1))
		if i < top-1 {
			b.WriteString("\n" + strings.Repeat("-", 50) + "\n")
		}
	}
	b.WriteString("\n")

	return b.String()
}
