package domain

// Job is one normalized posting row as it appears in the snapshot CSV.
// URL is the identity key for diffing; a multi-location posting expands to
// one Job per location with every other field shared.
type Job struct {
	URL            string
	Title          string
	Location       string
	Company        string
	ATSID          string
	ATSType        string
	SalaryCurrency string
	SalaryPeriod   string
	SalarySummary  string
	Experience     string // integer years as string, "" when unknown
	Lat            *float64
	Lon            *float64
	PostedAt       string // ISO-8601 UTC with Z suffix, "" when unknown
	Date           string // first time this URL was observed, preserved across runs
}

// Fields is the canonical CSV column order for the snapshot and the removed
// ledger. The new ledger appends "date_added".
var Fields = []string{
	"url", "title", "location", "company", "ats_id", "ats_type",
	"salary_currency", "salary_period", "salary_summary", "experience",
	"lat", "lon", "posted_at", "date",
}

// ATS tags for the registry-backed sources. Bespoke sources use their site
// name as the tag.
const (
	ATSAshby      = "ashby"
	ATSGreenhouse = "greenhouse"
	ATSLever      = "lever"
	ATSWorkable   = "workable"
	ATSRippling   = "rippling"
)

// BespokeSources are the custom-scraper sites, in resolution order.
var BespokeSources = []string{
	"google", "microsoft", "nvidia", "amazon", "meta",
	"tiktok", "cursor", "apple", "uber",
}
