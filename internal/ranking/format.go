package ranking

import (
	"fmt"
	"strings"
)

// maxListedSkills caps the skill list shown in a formatted summary.
const maxListedSkills = 5

// FormatSummary renders one ranked result as the fixed text block consumed
// by downstream text channels. The layout is a compatibility contract:
// spacing, bullet characters and two-decimal scores must stay byte-stable.
func FormatSummary(result *Result, rank int) string {
	c := result.Candidate
	scores := result.Scores
	breakdowns := result.Breakdowns

	skills := c.Skills
	ellipsis := ""
	if len(skills) > maxListedSkills {
		skills = skills[:maxListedSkills]
		ellipsis = "..."
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Rank #%d: %s\n", rank, c.Name)
	fmt.Fprintf(&b, "Email: %s\n", c.Email)
	fmt.Fprintf(&b, "Overall Score: %.2f/1.00\n", result.Overall)
	b.WriteString("\n")
	b.WriteString("Score Breakdown:\n")
	fmt.Fprintf(&b, "• Skills Match: %.2f/1.00 (%d/%d required, %d/%d preferred)\n",
		scores.Skills,
		breakdowns.Skills.RequiredMatches, breakdowns.Skills.RequiredTotal,
		breakdowns.Skills.PreferredMatches, breakdowns.Skills.PreferredTotal,
	)
	fmt.Fprintf(&b, "• Experience: %.2f/1.00 (%d years vs %d required)\n",
		scores.Experience, c.ExperienceYears, breakdowns.Experience.MinRequired,
	)
	fmt.Fprintf(&b, "• Education: %.2f/1.00 (%s)\n", scores.Education, c.Education)
	fmt.Fprintf(&b, "• Role Relevance: %.2f/1.00 (%d matching roles)\n",
		scores.RoleRelevance, breakdowns.Roles.Matches,
	)
	b.WriteString("\n")
	fmt.Fprintf(&b, "Key Skills: %s%s\n", strings.Join(skills, ", "), ellipsis)
	fmt.Fprintf(&b, "Previous Roles: %s\n", strings.Join(c.PreviousRoles, ", "))
	fmt.Fprintf(&b, "Summary: %s", c.Summary)

	return b.String()
}
