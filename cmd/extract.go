package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spigell/cv-ranker/internal/extract"
	"github.com/spigell/cv-ranker/internal/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const notFound = "Not found"

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract structured fields from plain-text resume documents",
}

var extractContactCmd = &cobra.Command{
	Use:   "contact <file>",
	Short: "Extract name, emails, phones and URLs from a document",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		info := extract.ExtractContact(filepath.Base(args[0]), readText(args[0]))
		fmt.Print(renderContact(info))
	},
}

var extractLinksCmd = &cobra.Command{
	Use:   "links <file>",
	Short: "List all URLs found in a document",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		info := extract.ExtractContact(filepath.Base(args[0]), readText(args[0]))

		if len(info.URLs) == 0 {
			fmt.Printf("No URLs found in %s\n", args[0])
			return
		}

		fmt.Printf("URLs found in %s:\n", filepath.Base(args[0]))
		for i, url := range info.URLs {
			fmt.Printf("%d. %s\n", i+1, url)
		}
	},
}

var extractPlatformsCmd = &cobra.Command{
	Use:   "platforms <file>",
	Short: "Classify profile URLs into Scholar, GitHub and LinkedIn buckets",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		links := extract.ClassifyPlatforms(readText(args[0]))
		fmt.Print(renderPlatforms(filepath.Base(args[0]), links))
	},
}

var extractSummaryCmd = &cobra.Command{
	Use:   "summary <file-or-dir>",
	Short: "Summarize one document or every .txt document in a directory",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		runExtractSummary(args[0])
	},
}

var extractGrepCmd = &cobra.Command{
	Use:   "grep <dir> <keyword>",
	Short: "Count keyword occurrences across every .txt document in a directory",
	Args:  cobra.ExactArgs(2),
	Run: func(_ *cobra.Command, args []string) {
		runExtractGrep(args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)
	extractCmd.AddCommand(extractContactCmd)
	extractCmd.AddCommand(extractLinksCmd)
	extractCmd.AddCommand(extractPlatformsCmd)
	extractCmd.AddCommand(extractSummaryCmd)
	extractCmd.AddCommand(extractGrepCmd)
}

// readText materializes a document as plain text. Read failures become an
// error string inside the text itself; the extractors treat that string as
// ordinary input, so a bad file never halts a batch.
func readText(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Sprintf("Error extracting text from %s: %v", path, err)
	}
	return strings.TrimSpace(string(data))
}

func textFiles(dir string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.txt"))
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

func runExtractSummary(path string) {
	zlog, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		zlog.Fatal("getting a config", zap.Error(err))
	}

	var vocabulary []string
	if config.Extract != nil {
		vocabulary = config.Extract.Skills
	}

	stat, err := os.Stat(path)
	if err != nil {
		zlog.Fatal("inspecting path", zap.Error(err))
	}

	if !stat.IsDir() {
		summary := summarizeFile(path, vocabulary)
		fmt.Print(renderSummary(summary))
		return
	}

	files, err := textFiles(path)
	if err != nil {
		zlog.Fatal("listing documents", zap.Error(err))
	}
	if len(files) == 0 {
		zlog.Info("exiting", zap.String("reason", "no .txt documents found"), zap.String("dir", path))
		return
	}

	fmt.Printf("Summary of all documents in %s (%d found):\n", path, len(files))
	fmt.Println(strings.Repeat("=", 60))

	for i, file := range files {
		fmt.Printf("%d. %s\n", i+1, filepath.Base(file))
		fmt.Println(strings.Repeat("-", 40))

		summary := summarizeFile(file, vocabulary)
		if summary.Error != "" {
			fmt.Printf("Error: %s\n\n", summary.Error)
			continue
		}

		fmt.Print(renderSummaryBrief(summary))
		fmt.Println()
	}
}

func summarizeFile(path string, vocabulary []string) *extract.Summary {
	summary := extract.Summarize(filepath.Base(path), readText(path))
	if summary.Error == "" && vocabulary != nil {
		summary.Skills = extract.FindSkills(readText(path), vocabulary)
	}
	return summary
}

func runExtractGrep(dir, keyword string) {
	zlog, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	files, err := textFiles(dir)
	if err != nil {
		zlog.Fatal("listing documents", zap.Error(err))
	}
	if len(files) == 0 {
		zlog.Info("exiting", zap.String("reason", "no .txt documents found"), zap.String("dir", dir))
		return
	}

	type match struct {
		file  string
		count int
	}

	var matches []match
	for _, file := range files {
		count := extract.CountKeyword(readText(file), keyword)
		if count > 0 {
			matches = append(matches, match{file: filepath.Base(file), count: count})
		}
	}

	if len(matches) == 0 {
		fmt.Printf("No documents found containing '%s' in %s\n", keyword, dir)
		return
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].count > matches[j].count
	})

	fmt.Printf("Search results for '%s' in %s:\n", keyword, dir)
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Found '%s' in %d out of %d documents:\n\n", keyword, len(matches), len(files))

	for i, m := range matches {
		fmt.Printf("%d. %s (%d occurrences)\n", i+1, m.file, m.count)
	}
}

func renderContact(info *extract.ContactInfo) string {
	var b strings.Builder

	if info.Error != "" {
		fmt.Fprintf(&b, "%s\n", info.Error)
		return b.String()
	}

	fmt.Fprintf(&b, "Contact Information from %s:\n", info.Source)
	fmt.Fprintf(&b, "Name: %s\n", orNotFound(info.Name))
	fmt.Fprintf(&b, "Emails: %s\n", orNotFound(strings.Join(info.Emails, ", ")))
	fmt.Fprintf(&b, "Phones: %s\n", orNotFound(strings.Join(info.Phones, ", ")))
	fmt.Fprintf(&b, "URLs: %s\n", orNotFound(strings.Join(info.URLs, ", ")))

	return b.String()
}

func renderPlatforms(source string, links *extract.PlatformLinks) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Platform URLs found in %s:\n", source)
	b.WriteString(strings.Repeat("=", 50) + "\n")

	writePlatformSection(&b, "Google Scholar", links.Scholar)
	writePlatformSection(&b, "GitHub", links.GitHub)
	writePlatformSection(&b, "LinkedIn", links.LinkedIn)

	total := len(links.Scholar) + len(links.GitHub) + len(links.LinkedIn)
	fmt.Fprintf(&b, "\nTotal platform URLs found: %d\n", total)

	return b.String()
}

func writePlatformSection(b *strings.Builder, name string, urls []string) {
	if len(urls) == 0 {
		fmt.Fprintf(b, "\n%s: No URLs found\n", name)
		return
	}

	fmt.Fprintf(b, "\n%s (%d found):\n", name, len(urls))
	for i, url := range urls {
		fmt.Fprintf(b, "  %d. %s\n", i+1, url)
	}
}

func renderSummary(summary *extract.Summary) string {
	var b strings.Builder

	if summary.Error != "" {
		fmt.Fprintf(&b, "%s\n", summary.Error)
		return b.String()
	}

	fmt.Fprintf(&b, "SUMMARY: %s\n", summary.Source)
	b.WriteString(strings.Repeat("=", 50) + "\n")

	contact := summary.Contact
	b.WriteString("Contact Information:\n")
	fmt.Fprintf(&b, "  Name: %s\n", orNotFound(contact.Name))
	fmt.Fprintf(&b, "  Emails: %s\n", orNotFound(strings.Join(contact.Emails, ", ")))
	fmt.Fprintf(&b, "  Phones: %s\n", orNotFound(strings.Join(contact.Phones, ", ")))
	fmt.Fprintf(&b, "  URLs: %s\n\n", orNotFound(strings.Join(contact.URLs, ", ")))

	b.WriteString("Skills Identified:\n")
	fmt.Fprintf(&b, "  %s\n\n", skillList(summary.Skills, 15))

	b.WriteString("Document Statistics:\n")
	fmt.Fprintf(&b, "  Word Count: %d\n", summary.Stats.Words)
	fmt.Fprintf(&b, "  Lines: %d\n", summary.Stats.Lines)
	fmt.Fprintf(&b, "  Characters: %d\n\n", summary.Stats.Chars)

	b.WriteString("Text Preview:\n")
	b.WriteString(summary.Preview + "\n")

	return b.String()
}

func renderSummaryBrief(summary *extract.Summary) string {
	var b strings.Builder

	contact := summary.Contact
	fmt.Fprintf(&b, "Name: %s\n", orNotFound(contact.Name))
	fmt.Fprintf(&b, "Email: %s\n", orNotFound(strings.Join(contact.Emails, ", ")))
	fmt.Fprintf(&b, "Phone: %s\n", orNotFound(strings.Join(contact.Phones, ", ")))

	if len(contact.URLs) > 0 {
		fmt.Fprintf(&b, "URLs: %s\n", strings.Join(contact.URLs, ", "))
	}
	if len(summary.Skills) > 0 {
		fmt.Fprintf(&b, "Skills: %s\n", skillList(summary.Skills, 10))
	}

	fmt.Fprintf(&b, "Words: %d, Lines: %d\n", summary.Stats.Words, summary.Stats.Lines)

	return b.String()
}

func skillList(skills []string, limit int) string {
	if len(skills) == 0 {
		return "No technical skills identified"
	}

	shown := skills
	extra := ""
	if len(shown) > limit {
		shown = shown[:limit]
		extra = fmt.Sprintf(" (+%d more)", len(skills)-limit)
	}
	return strings.Join(shown, ", ") + extra
}

func orNotFound(s string) string {
	if s == "" {
		return notFound
	}
	return s
}
