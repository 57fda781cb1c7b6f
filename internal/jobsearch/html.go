package jobsearch

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/GillzV/jobassist/internal/types"
)

// ImportHTML parses job listings out of a saved HTML page. Each listing is a
// ".job-listing" element; fields are read from class-named children and the
// URL from the first link. Listings without a title are skipped.
func ImportHTML(r io.Reader) ([]types.JobListing, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	jobs := []types.JobListing{}
	doc.Find(".job-listing").Each(func(_ int, sel *goquery.Selection) {
		job := types.JobListing{
			Title:       text(sel, ".job-title"),
			Company:     text(sel, ".company"),
			Location:    text(sel, ".location"),
			Type:        text(sel, ".job-type"),
			Posted:      text(sel, ".posted"),
			Description: text(sel, ".description"),
			Salary:      text(sel, ".salary"),
		}
		if href, ok := sel.Find("a").First().Attr("href"); ok {
			job.URL = href
		}
		if job.Title != "" {
			jobs = append(jobs, job)
		}
	})
	return jobs, nil
}

// ImportHTMLFile reads listings from a saved HTML file.
func ImportHTMLFile(path string) ([]types.JobListing, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open HTML file: %w", err)
	}
	defer f.Close()
	return ImportHTML(f)
}

func text(sel *goquery.Selection, selector string) string {
	return strings.TrimSpace(sel.Find(selector).First().Text())
}
