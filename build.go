package analytics

import (
	"cmp"
	"slices"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat"
)

/*
Usage:

records, err := dataset.LoadUsage(ctx, "custom_integrations.json", usageURL, dataset.ReadOptions{})
integrations, err := dataset.ParseIntegrations(hacsRaw)

report := analytics.Build(records, integrations)
for _, row := range report.Rows {
    fmt.Printf("%s\t%d\n", row.Identifier, row.Count)
}

// Without enrichment
report := analytics.Build(records, nil)
*/

// Build joins usage records with integration metadata and returns the rows
// ordered by count, highest first. Rows with equal counts keep dataset order.
func Build(records []UsageRecord, integrations []Integration) *Report {
	byDomain := lo.KeyBy(integrations, func(i Integration) string {
		return i.Domain
	})

	rows := make([]Row, 0, len(records))

	for _, record := range records {
		rows = append(rows, join(record, byDomain))
	}

	slices.SortStableFunc(rows, func(a, b Row) int {
		return cmp.Compare(b.Count, a.Count)
	})

	return &Report{
		Rows:  rows,
		Stats: computeStats(rows),
	}
}

func join(record UsageRecord, byDomain map[string]Integration) Row {
	integration, ok := byDomain[record.Identifier]
	if !ok {
		return Row{
			Identifier: record.Identifier,
			Label:      record.Identifier,
			Count:      record.Count,
		}
	}

	href := integration.Href()

	return Row{
		Identifier:  record.Identifier,
		Label:       anchor(href, record.Identifier),
		Description: integration.ManifestName,
		Count:       record.Count,
		Href:        href,
	}
}

// computeStats expects rows sorted by count, descending.
func computeStats(rows []Row) Stats {
	stats := Stats{
		Entries:  len(rows),
		Enriched: lo.CountBy(rows, Row.Enriched),
	}

	if len(rows) == 0 {
		return stats
	}

	counts := lo.Map(rows, func(row Row, _ int) float64 {
		return float64(row.Count)
	})

	// Quantile wants ascending input.
	slices.Reverse(counts)

	stats.Total = lo.SumBy(rows, func(row Row) int64 { return row.Count })
	stats.Max = rows[0].Count
	stats.Mean = stat.Mean(counts, nil)
	stats.Median = stat.Quantile(0.5, stat.Empirical, counts, nil)
	stats.P90 = stat.Quantile(0.9, stat.Empirical, counts, nil)

	return stats
}
