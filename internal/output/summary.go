package output

import (
	"fmt"

	analytics "github.com/jschlyter/custom-integrations-analytics"
)

// ReportToMap converts a report into the structure printed by the summary command.
// Only the first top rows are included; top <= 0 includes all of them.
func ReportToMap(report *analytics.Report, top int) map[string]any {
	stats := report.Stats

	meta := map[string]any{
		"statistics": map[string]any{
			"entries":  stats.Entries,
			"enriched": stats.Enriched,
			"total":    stats.Total,
			"max":      stats.Max,
			"mean":     stats.Mean,
			"median":   stats.Median,
			"p90":      stats.P90,
		},
	}

	rows := report.Rows
	if top > 0 && top < len(rows) {
		rows = rows[:top]
	}

	entries := make([]any, 0, len(rows))

	for idx, row := range rows {
		entry := map[string]any{
			"rank":        idx + 1,
			"integration": row.Identifier,
			"count":       row.Count,
		}

		if row.Description != "" {
			entry["description"] = row.Description
		}

		if row.Href != "" {
			entry["link"] = row.Href
		}

		entries = append(entries, entry)
	}

	meta["top"] = entries

	return meta
}

// ReportToFriendlyMap is ReportToMap with human-formatted numbers, for console output.
func ReportToFriendlyMap(report *analytics.Report, top int) map[string]any {
	stats := report.Stats

	meta := map[string]any{
		"summary": fmt.Sprintf("%s integrations (%s enriched), %s installations",
			FormatCount(int64(stats.Entries)), FormatCount(int64(stats.Enriched)), FormatCount(stats.Total)),
		"distribution": fmt.Sprintf("max %s, mean %s, median %s, p90 %s",
			FormatCount(stats.Max), FormatDecimal(stats.Mean), FormatDecimal(stats.Median), FormatDecimal(stats.P90)),
	}

	rows := report.Rows
	if top > 0 && top < len(rows) {
		rows = rows[:top]
	}

	lines := make([]any, 0, len(rows))

	for idx, row := range rows {
		line := fmt.Sprintf("%3d. %s: %s", idx+1, row.Identifier, FormatCount(row.Count))
		if row.Description != "" {
			line += " (" + row.Description + ")"
		}

		lines = append(lines, line)
	}

	meta["top"] = lines

	return meta
}
