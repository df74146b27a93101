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

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Inspect the job catalogue",
}

var jobsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available job descriptions",
	Run: func(_ *cobra.Command, _ []string) {
		jobs := mustJobs()
		fmt.Print(renderJobList(jobs))
	},
}

var jobsShowCmd = &cobra.Command{
	Use:   "show <job-id>",
	Short: "Show the full details of one job description",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		jobs := mustJobs()

		job := jobs.FindByID(args[0])
		if job == nil {
			log.Fatalf("no job with id %q, known ids: %s", args[0], strings.Join(jobIDs(jobs), ", "))
		}

		fmt.Print(renderJobDetails(job))
	},
}

func init() {
	rootCmd.AddCommand(jobsCmd)
	jobsCmd.AddCommand(jobsListCmd)
	jobsCmd.AddCommand(jobsShowCmd)
}

func mustJobs() *candidate.Jobs {
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
		zlog.Fatal("loading job data", zap.Error(err))
	}

	zlog.Debug("loaded job catalogue",
		zap.String(logger.FieldDataSource, origin),
		zap.Int("count", source.Jobs().Len()),
	)

	return source.Jobs()
}

func renderJobList(jobs *candidate.Jobs) string {
	var b strings.Builder

	b.WriteString("Available Jobs:\n")
	b.WriteString(strings.Repeat("=", 30) + "\n")

	for _, job := range jobs.Items {
		fmt.Fprintf(&b, "%s. %s at %s\n", job.ID, job.Title, job.Company)
		fmt.Fprintf(&b, "   Required Skills: %s\n", strings.Join(job.RequiredSkills, ", "))
		fmt.Fprintf(&b, "   Min Experience: %d years\n\n", job.MinExperience)
	}

	return b.String()
}

func renderJobDetails(job *candidate.JobDescription) string {
	var b strings.Builder

	b.WriteString("Job Details:\n")
	fmt.Fprintf(&b, "Title: %s\n", job.Title)
	fmt.Fprintf(&b, "Company: %s\n", job.Company)
	fmt.Fprintf(&b, "Description: %s\n\n", job.Description)
	fmt.Fprintf(&b, "Required Skills: %s\n", strings.Join(job.RequiredSkills, ", "))
	fmt.Fprintf(&b, "Preferred Skills: %s\n", strings.Join(job.PreferredSkills, ", "))
	fmt.Fprintf(&b, "Minimum Experience: %d years\n", job.MinExperience)
	fmt.Fprintf(&b, "Education Requirements: %s\n\n", job.EducationRequirements)
	b.WriteString("Responsibilities:\n")
	for _, resp := range job.Responsibilities {
		fmt.Fprintf(&b, "• %s\n", resp)
	}

	return b.String()
}
