package northlight

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// relativeTime renders an ISO-8601 timestamp as "3 days ago", falling back
// to the raw string when the server sends something unparseable
func relativeTime(iso string) string {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, iso); err == nil {
			return humanize.Time(t)
		}
	}
	return iso
}

// Summary returns a one-line summary of a feedback item
func (f *FeedbackItem) Summary() string {
	return fmt.Sprintf("[%s] %s (%d votes)", f.Status.Label(), f.Title, f.VoteCount)
}

// FormatCompact returns a compact multi-line format suitable for terminal display
func (f *FeedbackItem) FormatCompact() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s\n", f.ID, f.Title))
	b.WriteString(fmt.Sprintf("  %s | %d votes | %s\n", f.Status.Label(), f.VoteCount, relativeTime(f.CreatedAt)))

	return b.String()
}

// FormatDetailed returns a comprehensive formatted string with all item details
func (f *FeedbackItem) FormatDetailed() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("=== %s ===\n", f.Title))
	b.WriteString(fmt.Sprintf("ID:       %s\n", f.ID))
	b.WriteString(fmt.Sprintf("Status:   %s\n", f.Status.Label()))
	if f.Category != "" {
		b.WriteString(fmt.Sprintf("Category: %s\n", f.Category))
	}
	if f.Platform != "" {
		b.WriteString(fmt.Sprintf("Platform: %s\n", f.Platform))
	}
	b.WriteString(fmt.Sprintf("Votes:    %d\n", f.VoteCount))
	b.WriteString(fmt.Sprintf("Created:  %s\n", relativeTime(f.CreatedAt)))
	b.WriteString(fmt.Sprintf("Updated:  %s\n", relativeTime(f.UpdatedAt)))
	b.WriteString("\n")
	b.WriteString(f.Description)
	b.WriteString("\n")

	return b.String()
}

// Summary returns a one-line summary of a roadmap item
func (r *RoadmapItem) Summary() string {
	return fmt.Sprintf("%d. %s (%s)", r.Position, r.Feature.Title, r.EstimatedDate)
}

// FormatDetailed returns a formatted string with the roadmap item's details
func (r *RoadmapItem) FormatDetailed() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%d. %s\n", r.Position, r.Feature.Title))
	b.WriteString(fmt.Sprintf("   Estimated: %s\n", r.EstimatedDate))
	if r.Feature.Description != "" {
		b.WriteString(fmt.Sprintf("   %s\n", r.Feature.Description))
	}

	return b.String()
}
