// Package jobsearch filters a static set of job listings. There is no real
// scraping: listings come from the built-in samples or from a saved HTML page
// imported with ImportHTML.
package jobsearch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/GillzV/jobassist/internal/types"
)

const maxResults = 10

// Searcher filters listings by keyword, location, and job type. The shuffle
// source is injectable so tests can pin result order.
type Searcher struct {
	listings []types.JobListing
	rng      *rand.Rand
}

// NewSearcher returns a searcher over the built-in sample listings.
func NewSearcher() *Searcher {
	return NewSearcherWithListings(SampleListings(), rand.New(rand.NewSource(rand.Int63())))
}

// NewSearcherWithListings returns a searcher over explicit listings. A nil
// rng gets a fresh seeded source.
func NewSearcherWithListings(listings []types.JobListing, rng *rand.Rand) *Searcher {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Searcher{listings: listings, rng: rng}
}

// Search filters by keyword (against title, description, and company),
// optional location, and job type, shuffles the matches, and returns at most
// ten.
func (s *Searcher) Search(keywords, location, jobType string) []types.JobListing {
	keywords = strings.ToLower(keywords)
	location = strings.ToLower(location)
	jobType = strings.ToLower(jobType)

	matched := []types.JobListing{}
	for _, job := range s.listings {
		keywordMatch := strings.Contains(strings.ToLower(job.Title), keywords) ||
			strings.Contains(strings.ToLower(job.Description), keywords) ||
			strings.Contains(strings.ToLower(job.Company), keywords)
		locationMatch := location == "" || strings.Contains(strings.ToLower(job.Location), location)
		typeMatch := jobType == "" || strings.Contains(strings.ToLower(job.Type), jobType)

		if keywordMatch && locationMatch && typeMatch {
			matched = append(matched, job)
		}
	}

	s.rng.Shuffle(len(matched), func(i, j int) {
		matched[i], matched[j] = matched[j], matched[i]
	})

	if len(matched) > maxResults {
		matched = matched[:maxResults]
	}
	return matched
}

var salaryPattern = regexp.MustCompile(`\$?(\d+(?:,\d{3})*)`)

// FilterBySalary keeps jobs whose first advertised salary figure falls in
// [minSalary, maxSalary]. A maxSalary of 0 means unbounded; jobs without
// salary information are kept.
func FilterBySalary(jobs []types.JobListing, minSalary, maxSalary int) []types.JobListing {
	filtered := []types.JobListing{}
	for _, job := range jobs {
		if job.Salary == "" || job.Salary == "N/A" {
			filtered = append(filtered, job)
			continue
		}

		m := salaryPattern.FindStringSubmatch(job.Salary)
		if m == nil {
			continue
		}
		salary, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", ""))
		if err != nil {
			continue
		}
		if salary >= minSalary && (maxSalary == 0 || salary <= maxSalary) {
			filtered = append(filtered, job)
		}
	}
	return filtered
}

var experienceKeywords = map[string][]string{
	"entry":  {"entry", "junior", "0-2", "1-2", "recent graduate"},
	"mid":    {"mid", "intermediate", "3-5", "4-6", "experienced"},
	"senior": {"senior", "lead", "principal", "5+", "6+", "expert"},
}

// FilterByExperience keeps jobs whose title or description mentions a keyword
// for the given level (entry, mid, senior). An unknown level matches nothing.
func FilterByExperience(jobs []types.JobListing, level string) []types.JobListing {
	keywords := experienceKeywords[strings.ToLower(level)]

	filtered := []types.JobListing{}
	for _, job := range jobs {
		title := strings.ToLower(job.Title)
		description := strings.ToLower(job.Description)
		for _, keyword := range keywords {
			if strings.Contains(title, keyword) || strings.Contains(description, keyword) {
				filtered = append(filtered, job)
				break
			}
		}
	}
	return filtered
}

// SaveResults writes listings to a JSON file with non-ASCII left unescaped.
func SaveResults(jobs []types.JobListing, path string) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(jobs); err != nil {
		return fmt.Errorf("failed to encode job results: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write job results: %w", err)
	}
	return nil
}

// LoadResults reads listings back from a JSON file.
func LoadResults(path string) ([]types.JobListing, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job results: %w", err)
	}
	var jobs []types.JobListing
	if err := json.Unmarshal(data, &jobs); err != nil {
		return nil, fmt.Errorf("failed to decode job results: %w", err)
	}
	return jobs, nil
}
