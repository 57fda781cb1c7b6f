// Package parser runs the extraction strategies over a resume document and
// merges their partial results into a single ResumeRecord.
package parser

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/GillzV/jobassist/internal/extract"
	"github.com/GillzV/jobassist/internal/fields"
	"github.com/GillzV/jobassist/internal/segment"
	"github.com/GillzV/jobassist/internal/types"
)

// partials collects the independent strategy outputs before the merge.
// Strategies never observe each other's results.
type partials struct {
	sections   map[segment.Label]segment.Section
	contact    fields.Contact
	dates      []string
	skills     []string
	byCategory map[string][]string
	bullets    []string
}

// ParseFile extracts text from the document at path and parses it into a
// ResumeRecord. Extraction failures are terminal for the call; the heuristic
// stages themselves cannot fail.
func ParseFile(ctx context.Context, path string) (*types.ResumeRecord, error) {
	text, err := extract.Text(path)
	if err != nil {
		return nil, fmt.Errorf("failed to extract text: %w", err)
	}

	record, err := Parse(ctx, text)
	if err != nil {
		return nil, err
	}

	record.Metadata.ParsedAt = time.Now().Format(time.RFC3339)
	record.Metadata.FilePath = path
	if info, err := os.Stat(path); err == nil {
		record.Metadata.FileSize = info.Size()
	}

	return record, nil
}

// Parse runs every extraction strategy over the text and merges the results.
// Strategies are pure functions with no shared mutable state, so they fan out
// concurrently; the merge waits for all of them.
func Parse(ctx context.Context, text string) (*types.ResumeRecord, error) {
	lines := documentLines(text)

	var p partials
	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		p.sections = segment.Split(lines)
		return nil
	})
	g.Go(func() error {
		p.contact = fields.ExtractContact(lines)
		return nil
	})
	g.Go(func() error {
		p.dates = fields.ExtractDates(text)
		return nil
	})
	g.Go(func() error {
		p.skills = fields.ExtractSkills(text)
		p.byCategory = fields.ExtractSkillsByCategory(text)
		return nil
	})
	g.Go(func() error {
		p.bullets = fields.ExtractBullets(lines)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	record := merge(p, lines, text)
	record.Metadata.ConfidenceScore = Confidence(record)

	return record, nil
}

// documentLines builds the shared line sequence, dropping the page-boundary
// markers the PDF extractor inserts.
func documentLines(text string) []string {
	raw := extract.BuildLines(text)
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if extract.IsPageMarker(line) {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

func sectionText(s segment.Section) string {
	return strings.Join(s.Lines, " ")
}
