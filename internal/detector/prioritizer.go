package detector

import "sort"

// minSeverity is the cutoff below which issues are never shown to the user.
// Low-severity style nits would drown out the fixes that matter.
const minSeverity = 5

// TopIssues returns at most limit issues sorted by severity descending.
// The sort is stable, so issues of equal severity keep their emission order,
// and issues below the medium-priority cutoff are dropped entirely.
func TopIssues(issues []Issue, limit int) []Issue {
	sorted := make([]Issue, len(issues))
	copy(sorted, issues)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Severity > sorted[j].Severity
	})

	var important []Issue
	for _, issue := range sorted {
		if issue.Severity >= minSeverity {
			important = append(important, issue)
		}
	}

	if len(important) > limit {
		important = important[:limit]
	}
	return important
}
