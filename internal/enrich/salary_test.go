package enrich

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSalaryRange(t *testing.T) {
	desc := "The salary range for this role is $150,000 - $180,000 per year. Requires 5+ years of experience building distributed systems."
	s, ok := ExtractSalary(desc)
	require.True(t, ok)
	assert.Equal(t, 150000, s.Min)
	assert.Equal(t, 180000, s.Max)
	assert.Equal(t, "USD", s.Currency)
	assert.Equal(t, "$150K - $180K", FormatSummary(s))
}

func TestExtractSalaryKMultiplier(t *testing.T) {
	s, ok := ExtractSalary("Compensation: $100k-150k depending on level.")
	require.True(t, ok)
	assert.Equal(t, 100000, s.Min)
	assert.Equal(t, 150000, s.Max)
}

func TestExtractSalaryEuropeanThousands(t *testing.T) {
	s, ok := ExtractSalary("Annual salary: €155.000 - €205.000 based on experience.")
	require.True(t, ok)
	assert.Equal(t, 155000, s.Min)
	assert.Equal(t, 205000, s.Max)
	assert.Equal(t, "EUR", s.Currency)
	assert.Equal(t, "EUR 155K - 205K", FormatSummary(s))
}

func TestExtractSalaryHTMLEntities(t *testing.T) {
	s, ok := ExtractSalary("<p>Annual Salary: $210,000&mdash;$248,500</p>")
	require.True(t, ok)
	assert.Equal(t, 210000, s.Min)
	assert.Equal(t, 248500, s.Max)
}

func TestExtractSalarySingleValue(t *testing.T) {
	s, ok := ExtractSalary("This role pays $120,000 per year.")
	require.True(t, ok)
	assert.Equal(t, 120000, s.Min)
	assert.Equal(t, 120000, s.Max)
	assert.Equal(t, "$120K", FormatSummary(s))
}

func TestExtractSalaryFundingFalsePositive(t *testing.T) {
	_, ok := ExtractSalary("We've raised $500M in Series C funding and are growing fast.")
	assert.False(t, ok)
}

func TestExtractSalaryARRFalsePositive(t *testing.T) {
	_, ok := ExtractSalary("The company recently passed $500,000 ARR and keeps growing.")
	assert.False(t, ok)
}

func TestExtractSalaryBounds(t *testing.T) {
	_, ok := ExtractSalary("Stipend: $19,999 per year.")
	assert.False(t, ok, "below floor")

	_, ok = ExtractSalary("Salary: $500,000 - $1,500,000 per year.")
	assert.False(t, ok, "above ceiling")

	_, ok = ExtractSalary("")
	assert.False(t, ok)
}

func TestFormatSummaryNonUSD(t *testing.T) {
	assert.Equal(t, "EUR 120K - 140K", FormatSummary(Salary{Min: 120000, Max: 140000, Currency: "EUR"}))
	assert.Equal(t, "GBP 95K", FormatSummary(Salary{Min: 95000, Max: 95000, Currency: "GBP"}))
}
