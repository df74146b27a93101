package extract

import "strings"

// DefaultSkillVocabulary is the fixed technical term list scanned by
// FindSkills when the caller passes no vocabulary of its own.
var DefaultSkillVocabulary = []string{
	"python", "java", "javascript", "typescript", "react", "angular", "vue",
	"node.js", "express", "django", "flask", "fastapi", "sql", "mongodb",
	"postgresql", "mysql", "redis", "docker", "kubernetes", "aws", "azure",
	"gcp", "git", "jenkins", "ci/cd", "machine learning", "data science",
	"artificial intelligence", "tensorflow", "pytorch", "pandas", "numpy",
	"html", "css", "bootstrap", "tailwind", "scss", "webpack", "api",
	"rest", "graphql", "microservices", "agile", "scrum", "devops",
}

// FindSkills scans the text for every vocabulary term using lower-case
// substring containment and returns the matched terms in vocabulary order. A
// nil vocabulary falls back to DefaultSkillVocabulary.
func FindSkills(text string, vocabulary []string) []string {
	if vocabulary == nil {
		vocabulary = DefaultSkillVocabulary
	}

	lower := strings.ToLower(text)

	var found []string
	for _, skill := range vocabulary {
		if strings.Contains(lower, strings.ToLower(skill)) {
			found = append(found, skill)
		}
	}
	return found
}

// CountKeyword returns how many times the keyword occurs in the text,
// case-insensitively.
func CountKeyword(text, keyword string) int {
	return strings.Count(strings.ToLower(text), strings.ToLower(keyword))
}
