package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractDates(t *testing.T) {
	text := "Jan 2020 - Present\nGraduated May 2015\nFounded 2015"

	dates := ExtractDates(text)

	assert.ElementsMatch(t, []string{"Jan 2020", "May 2015", "2020", "2015"}, dates)
}

func TestExtractDatesDeduplicates(t *testing.T) {
	dates := ExtractDates("2019 then 2019 then 2019")
	assert.Equal(t, []string{"2019"}, dates)
}

func TestExtractDatesEmptyText(t *testing.T) {
	assert.Empty(t, ExtractDates(""))
}

func TestExtractDateRanges(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []DateRange
	}{
		{
			name:     "month-year dash range",
			text:     "Jan 2020 - Dec 2022",
			expected: []DateRange{{Start: "Jan 2020", End: "Dec 2022"}},
		},
		{
			name:     "open-ended range",
			text:     "Mar 2021 - Present",
			expected: []DateRange{{Start: "Mar 2021", End: "Present"}},
		},
		{
			name:     "bare year range",
			text:     "2018-2020",
			expected: []DateRange{{Start: "2018", End: "2020"}},
		},
		{
			name:     "to separator",
			text:     "Jun 2019 to Aug 2021",
			expected: []DateRange{{Start: "Jun 2019", End: "Aug 2021"}},
		},
		{
			name:     "no ranges",
			text:     "just text",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractDateRanges(tt.text))
		})
	}
}

func TestMatchesDateRange(t *testing.T) {
	assert.True(t, MatchesDateRange("Jan 2020 - Present"))
	assert.True(t, MatchesDateRange("Jan 2020"))
	assert.False(t, MatchesDateRange("Acme Corp"))
	assert.False(t, MatchesDateRange("reach me at jan2020@example.com"))
}
