package enrich

import (
	"fmt"
	"html"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Salary is a parsed annual salary band in whole currency units.
type Salary struct {
	Min      int
	Max      int
	Currency string // ISO code
}

const (
	minPlausibleSalary = 20_000
	maxPlausibleSalary = 1_000_000
)

// Building blocks for the pattern ladder. num accepts both comma and dot
// thousand separators (European postings write €155.000).
const (
	num  = `\d{1,3}(?:[.,]\d{3})*(?:\.\d+)?`
	cur  = `[\$£€¥]`
	dash = `(?:[-–—]|&mdash;|&ndash;)`
)

type salaryPattern struct {
	re     *regexp.Regexp
	groups int // 2 = range, 1 = single value
}

// salaryPatterns is ordered: labeled ranges beat bare ranges beat single
// values, so the first non-false-positive hit wins.
var salaryPatterns = []salaryPattern{
	// "Estimated annual base salary: $93,000.00 - 135,000.00"
	{regexp.MustCompile(`(?i)(?:estimated\s+)?(?:annual\s+)?(?:base\s+)?salary[:\s]*(?:of\s+)?` + cur + `\s*(` + num + `)\s*[kK]?\s*` + dash + `\s*` + cur + `?\s*(` + num + `)\s*[kK]?`), 2},
	// "Annual Salary: $210,000&mdash;$248,500", "€155.000 - €205.000"
	{regexp.MustCompile(`(?i)(?:annual\s+)?salary[:\s]*` + cur + `\s*(` + num + `)\s*[kK]?\s*` + dash + `\s*` + cur + `?\s*(` + num + `)\s*[kK]?`), 2},
	// "salary range: $100k-150k", "compensation range: $100k to $150k"
	{regexp.MustCompile(`(?i)(?:salary|compensation|base\s+salary|base\s+compensation)(?:\s+range)?[:\s]+` + cur + `\s*(` + num + `)\s*[kK]?\s*(?:[-–—to]+|&mdash;|&ndash;)\s*` + cur + `?\s*(` + num + `)\s*[kK]?`), 2},
	// "salary: $100k-150k"
	{regexp.MustCompile(`(?i)(?:salary|compensation|base\s+salary|base\s+compensation)[:\s]+` + cur + `\s*(` + num + `)\s*[kK]?\s*(?:[-–—to]+|&mdash;|&ndash;)\s*` + cur + `?\s*(` + num + `)\s*[kK]?`), 2},
	// "$130,900 - $177,100", "$210,000&mdash;$248,500"
	{regexp.MustCompile(cur + `\s*(` + num + `)\s*[kK]?\s*` + dash + `\s*` + cur + `?\s*(` + num + `)\s*[kK]?`), 2},
	// "$100k to $150k"
	{regexp.MustCompile(cur + `\s*(` + num + `)\s*[kK]?\s+to\s+` + cur + `?\s*(` + num + `)\s*[kK]?`), 2},
	// "$100,000 - $150,000 per year"
	{regexp.MustCompile(cur + `\s*(` + num + `)\s*` + dash + `\s*` + cur + `?\s*(` + num + `)\s*(?:per|/)\s*(?:year|annum|annually)`), 2},
	// "salary : $100k" (labeled single value)
	{regexp.MustCompile(`(?i)(?:salary|compensation|base)\s+[:\s]+` + cur + `\s*(` + num + `)\s*[kK]?`), 1},
	// "$100,000 per year" (bare single value)
	{regexp.MustCompile(cur + `\s*(` + num + `)\s*[kK]?\s*(?:per|/)?\s*(?:year|annum|annually)?`), 1},
}

// rangeContinuation detects a single-value match that is really the first
// bound of a range the stricter patterns rejected.
var rangeContinuation = regexp.MustCompile(`^\s*(?:[-–—]|&mdash;|&ndash;|to)\s*` + cur + `?\s*\d`)

// falsePositiveRes flag revenue, funding, and valuation figures; matched
// against the lowercased ±100-char context window.
var falsePositiveRes = []*regexp.Regexp{
	regexp.MustCompile(`\b(?:billion|billions|million|millions)\s+.*?\$`),
	regexp.MustCompile(`\b(?:paid|pay|pays|revenue|revenues|raised|valued|valuation)\s+\d+.*?\$`),
	regexp.MustCompile(`\$\s*\d+(?:,\d+)*[km]?\s+in\s+revenue`),
	regexp.MustCompile(`\$\s*\d+(?:,\d+)*[km]?\s+revenue`),
	regexp.MustCompile(`\$\s*\d+(?:,\d+)*[km]?\s+arr\b`),
}

var tagRe = regexp.MustCompile(`<[^>]+>`)

// ExtractSalary scans a job description for an annual salary disclosure.
// ok is false when nothing plausible is found.
func ExtractSalary(description string) (Salary, bool) {
	if description == "" {
		return Salary{}, false
	}
	desc := html.UnescapeString(tagRe.ReplaceAllString(description, ""))

	for _, p := range salaryPatterns {
		for _, loc := range p.re.FindAllStringSubmatchIndex(desc, -1) {
			matched := desc[loc[0]:loc[1]]
			if isFalsePositive(desc, loc[0], loc[1]) {
				continue
			}
			if p.groups == 1 && rangeContinuation.MatchString(desc[loc[1]:]) {
				continue
			}

			hasK := strings.ContainsAny(matched, "kK")
			minVal, ok := parseAmount(desc[loc[2]:loc[3]], hasK)
			if !ok {
				continue
			}
			maxVal := minVal
			if p.groups == 2 {
				maxVal, ok = parseAmount(desc[loc[4]:loc[5]], hasK)
				if !ok {
					continue
				}
			}

			if minVal < minPlausibleSalary || maxVal > maxPlausibleSalary || minVal > maxVal {
				continue
			}
			return Salary{Min: minVal, Max: maxVal, Currency: currencyOf(matched)}, true
		}
	}
	return Salary{}, false
}

func isFalsePositive(desc string, start, end int) bool {
	ctxStart := start - 100
	if ctxStart < 0 {
		ctxStart = 0
	}
	ctxEnd := end + 100
	if ctxEnd > len(desc) {
		ctxEnd = len(desc)
	}
	context := strings.ToLower(desc[ctxStart:ctxEnd])
	for _, re := range falsePositiveRes {
		if re.MatchString(context) {
			return true
		}
	}
	return false
}

// groupedThousandsRe spots "155.000" / "130,900" style separator grouping so
// European dot separators aren't misread as decimals.
var groupedThousandsRe = regexp.MustCompile(`^\d{1,3}(?:[.,]\d{3})+$`)

func parseAmount(s string, hasK bool) (int, bool) {
	s = strings.TrimSpace(s)
	if groupedThousandsRe.MatchString(s) {
		s = strings.NewReplacer(",", "", ".", "").Replace(s)
	} else {
		s = strings.ReplaceAll(s, ",", "")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	if hasK && v < 1000 {
		v *= 1000
	}
	return int(v), true
}

func currencyOf(matched string) string {
	switch {
	case strings.Contains(matched, "$"):
		return "USD"
	case strings.Contains(matched, "€"):
		return "EUR"
	case strings.Contains(matched, "£"):
		return "GBP"
	case strings.Contains(matched, "¥"):
		return "JPY"
	}
	return "USD"
}

// FormatSummary renders a salary band the way the snapshot displays it:
// "$150K - $180K" for dollars, "EUR 120K - 140K" otherwise. Equal bounds
// collapse to a single figure.
func FormatSummary(s Salary) string {
	minK := int(math.Round(float64(s.Min) / 1000))
	maxK := int(math.Round(float64(s.Max) / 1000))

	if s.Currency == "USD" {
		if minK == maxK {
			return fmt.Sprintf("$%dK", minK)
		}
		return fmt.Sprintf("$%dK - $%dK", minK, maxK)
	}
	if minK == maxK {
		return fmt.Sprintf("%s %dK", s.Currency, minK)
	}
	return fmt.Sprintf("%s %dK - %dK", s.Currency, minK, maxK)
}
