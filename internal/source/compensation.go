package source

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Compensation is the salary data pulled out of an Ashby-style compensation
// object (Rippling embeds the same shape). Min/Max back the formatted
// summary; the snapshot carries currency, period, and summary.
type Compensation struct {
	Min      string
	Max      string
	Currency string
	Period   string
	Summary  string
}

// ExtractCompensation decodes a compensation blob loosely. Feeds emit both
// camelCase and snake_case spellings, so every field is read through
// getField. Summary prefers scrapeableCompensationSalarySummary over
// compensationTierSummary; numeric bounds come from the first component with
// compensationType "Salary", checking top-level summaryComponents before the
// per-tier components.
func ExtractCompensation(raw json.RawMessage) Compensation {
	var c Compensation
	if len(raw) == 0 {
		return c
	}
	var comp map[string]any
	if err := json.Unmarshal(raw, &comp); err != nil || comp == nil {
		return c
	}

	if s := getField(comp, "scrapeableCompensationSalarySummary", "scrapeable_compensation_salary_summary"); s != nil {
		c.Summary, _ = s.(string)
	}
	if c.Summary == "" {
		if s := getField(comp, "compensationTierSummary", "compensation_tier_summary"); s != nil {
			c.Summary, _ = s.(string)
		}
	}

	if comps := asList(getField(comp, "summaryComponents", "summary_components")); comps != nil {
		c.fillFromComponents(comps)
	}
	if c.Min == "" {
		for _, t := range asList(getField(comp, "compensationTiers", "compensation_tiers")) {
			tier, ok := t.(map[string]any)
			if !ok {
				continue
			}
			c.fillFromComponents(asList(getField(tier, "components", "components")))
			if c.Min != "" {
				break
			}
		}
	}
	return c
}

// fillFromComponents takes the first Salary-typed component; EquityCashValue
// and the other component types are ignored.
func (c *Compensation) fillFromComponents(components []any) {
	for _, item := range components {
		comp, ok := item.(map[string]any)
		if !ok {
			continue
		}
		typ, _ := getField(comp, "compensationType", "compensation_type").(string)
		if !strings.EqualFold(typ, "Salary") {
			continue
		}
		if v := getField(comp, "minValue", "min_value"); v != nil {
			c.Min = numStr(v)
		}
		if v := getField(comp, "maxValue", "max_value"); v != nil {
			c.Max = numStr(v)
		}
		if v, ok := getField(comp, "currencyCode", "currency_code").(string); ok && v != "" {
			c.Currency = v
		}
		if v, ok := getField(comp, "interval", "interval").(string); ok && v != "" {
			c.Period = v
		}
		return
	}
}

func getField(m map[string]any, camel, snake string) any {
	if v, ok := m[camel]; ok && v != nil {
		return v
	}
	if v, ok := m[snake]; ok && v != nil {
		return v
	}
	return nil
}

func asList(v any) []any {
	l, _ := v.([]any)
	return l
}

// numStr renders a JSON number as an integer string ("150000", never
// "150000.0").
func numStr(v any) string {
	switch t := v.(type) {
	case float64:
		return strconv.FormatInt(int64(t), 10)
	case string:
		return t
	}
	return ""
}
