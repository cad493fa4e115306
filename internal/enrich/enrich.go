// Package enrich fills missing salary and experience fields by mining each
// job's long-form description with regex extractors.
package enrich

import (
	"log"
	"strconv"

	"aijobs-engine/internal/domain"
)

// Apply runs the enrichment pass in place. Jobs that already carry a salary
// summary keep it untouched; experience is recomputed every pass, so
// re-running never clobbers adapter-provided salary data.
func Apply(jobs []domain.Job, lib *Library) {
	var salaryHits, expHits int
	for i := range jobs {
		j := &jobs[i]
		needSalary := j.SalarySummary == ""

		desc, ok := lib.Description(*j)
		if !ok {
			continue
		}

		if needSalary {
			if s, ok := ExtractSalary(desc); ok {
				j.SalarySummary = FormatSummary(s)
				if j.SalaryCurrency == "" {
					j.SalaryCurrency = s.Currency
				}
				j.SalaryPeriod = "1 YEAR"
				salaryHits++
			}
		}
		if years, ok := ExtractExperience(desc); ok {
			j.Experience = strconv.Itoa(years)
			expHits++
		}
	}
	log.Printf("[enrich] extracted salary for %d jobs, experience for %d jobs", salaryHits, expHits)
}
