package services

import "wbsoaanvraag/models"

// TotalDeclaredHours sums the declared S&O hours over all projects. It is
// total: an empty list yields 0 and negative entries are counted as entered
// (the validator, not the aggregator, rejects them).
func TotalDeclaredHours(projects []models.Project) int {
	total := 0
	for _, p := range projects {
		total += p.DeclaredHours
	}
	return total
}
