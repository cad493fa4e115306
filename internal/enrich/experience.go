package enrich

import (
	"regexp"
	"strconv"
)

// experiencePatterns is ordered most to least specific. The first capture
// group is the answer; range patterns report the lower bound.
var experiencePatterns = []*regexp.Regexp{
	// "3+ years of experience with research operations"
	regexp.MustCompile(`(?i)(\d+)\+\s+years?\s+of\s+experience\s+with\s+\w+`),
	// "3+ years of proven experience in payroll system implementation"
	regexp.MustCompile(`(?i)(\d+)\+\s+years?\s+of\s+(?:proven\s+)?experience\s+in\s+\w+`),
	// "Have 4+ years of experience", "Require 2 years of research experience"
	regexp.MustCompile(`(?i)(?:have|possess|require|requires|required|need|needs)\s+(\d+)\+?\s+years?\s+(?:of\s+)?(?:\w+\s+){0,8}(?:experience|exp)`),
	// "3–5 years of social media strategy experience"
	regexp.MustCompile(`(?i)(\d+)\s*(?:[-–—]|to)\s*(\d+)\+?\s+years?\s+of\s+(?:\w+\s+){0,5}(?:experience|exp)`),
	// "2–4 years building full-stack products"
	regexp.MustCompile(`(?i)(\d+)\s*(?:[-–—]|to)\s*(\d+)\+?\s+years?\s+(?:building|developing|designing|managing|working|creating|implementing|maintaining|supporting)\s+\w+`),
	// "3+ years building infrastructure"
	regexp.MustCompile(`(?i)(\d+)\+\s+years?\s+(?:building|developing|designing|managing|working|creating|implementing|maintaining|supporting)\s+\w+`),
	// "3-5 years of backend experience"
	regexp.MustCompile(`(?i)(\d+)\s*(?:[-–—]|to)\s*(\d+)\+?\s+years?\s+(?:of\s+)?(?:\w+\s+){0,8}(?:experience|exp)`),
	// "5+ years of research engineering experience"
	regexp.MustCompile(`(?i)(\d+)\+\s+years?\s+(?:of\s+)?(?:\w+\s+){0,8}(?:experience|exp)`),
	// "at least 3 years", "minimum 3 years"
	regexp.MustCompile(`(?i)(?:at\s+least|minimum|min\.?)\s+(\d+)\s+years?\s+(?:of\s+)?(?:\w+\s+){0,8}(?:experience|exp)`),
	// "3-5 years in production ML" (no experience keyword)
	regexp.MustCompile(`(?i)(\d+)\s*(?:[-–—]|to)\s*(\d+)\+?\s+years?\s+(?:in|with|working|building|developing|designing|managing|shipping)`),
	// "5+ years shipping products" (no experience keyword)
	regexp.MustCompile(`(?i)(\d+)\+\s+years?\s+(?:in|with|working|building|developing|designing|managing|shipping)`),
	// "3 years experience" (no plus)
	regexp.MustCompile(`(?i)(\d+)\s+years?\s+(?:of\s+)?(?:\w+\s+){0,8}(?:experience|exp)`),
	// bare "3-5 years"
	regexp.MustCompile(`(?i)(\d+)\s*(?:[-–—]|to)\s*(\d+)\+?\s+years?`),
	// bare "5+ years"
	regexp.MustCompile(`(?i)(\d+)\+\s+years?`),
}

// ExtractExperience pulls the required years of experience out of a job
// description. ok is false when no pattern matches.
func ExtractExperience(description string) (int, bool) {
	if description == "" {
		return 0, false
	}
	desc := tagRe.ReplaceAllString(description, "")

	for _, re := range experiencePatterns {
		if m := re.FindStringSubmatch(desc); m != nil {
			years, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			return years, true
		}
	}
	return 0, false
}
