// Package rippling parses Rippling job-board JSON blobs. Rippling boards
// vary in shape, so the decode is loose maps rather than typed structs.
package rippling

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"aijobs-engine/internal/domain"
	"aijobs-engine/internal/source"
)

// Parse reads a Rippling JSON blob. Jobs live under "jobs" or "results";
// fields are probed under their common aliases. posted_at comes from
// created_on.
func Parse(jsonPath, company string, opts source.Options) ([]domain.Job, error) {
	b, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("rippling read %s: %w", jsonPath, err)
	}

	var data map[string]any
	if err := json.Unmarshal(b, &data); err != nil {
		return nil, fmt.Errorf("rippling decode %s: %w", jsonPath, err)
	}

	list, _ := data["jobs"].([]any)
	if len(list) == 0 {
		list, _ = data["results"].([]any)
	}

	var out []domain.Job
	for _, item := range list {
		j, ok := item.(map[string]any)
		if !ok {
			continue
		}
		url := source.Str(j, "url", "applyUrl")
		if url == "" {
			log.Printf("[rippling] company=%q skipping job with no url title=%q", company, source.Str(j, "title", "name"))
			continue
		}

		var compRaw json.RawMessage
		if c, ok := j["compensation"]; ok && c != nil {
			compRaw, _ = json.Marshal(c)
		}
		comp := source.ExtractCompensation(compRaw)

		postedAt := ""
		if s := source.Str(j, "created_on"); s != "" {
			postedAt, _ = source.ParseISO(s)
		}

		base := domain.Job{
			URL:            url,
			Title:          source.CleanText(source.Str(j, "title", "name")),
			Company:        company,
			ATSID:          idString(j["id"]),
			ATSType:        domain.ATSRippling,
			SalaryCurrency: comp.Currency,
			SalaryPeriod:   comp.Period,
			SalarySummary:  comp.Summary,
			PostedAt:       postedAt,
		}
		out = append(out, source.Expand(base, source.Str(j, "location", "city"), company, opts)...)
	}
	return out, nil
}

func idString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return fmt.Sprintf("%.0f", t)
	}
	return ""
}
