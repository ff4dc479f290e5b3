package analytics

import (
	"html"
	"net/url"
)

const githubBaseURL = "https://github.com"

// UsageRecord is one entry of the usage dataset.
type UsageRecord struct {
	Identifier string
	Count      int64
}

// Integration is the HACS metadata for a custom integration.
type Integration struct {
	Domain       string
	ManifestName string
	FullName     string // owner/repo on GitHub
}

// Href returns the GitHub URL of the integration repository.
func (i Integration) Href() string {
	base, err := url.Parse(githubBaseURL)
	if err != nil {
		return githubBaseURL
	}

	ref, err := url.Parse(i.FullName)
	if err != nil {
		return githubBaseURL + "/" + i.FullName
	}

	return base.ResolveReference(ref).String()
}

// Row is a single line of the report table.
type Row struct {
	Identifier  string
	Label       string // bare identifier, or an HTML anchor when enriched
	Description string
	Count       int64
	Href        string // empty when not enriched
}

// Enriched reports whether the row was joined with HACS metadata.
func (r Row) Enriched() bool {
	return r.Href != ""
}

// Stats summarizes the usage counts of a report.
type Stats struct {
	Entries  int
	Enriched int
	Total    int64
	Max      int64
	Mean     float64
	Median   float64
	P90      float64
}

// Report is the sorted table together with its statistics.
type Report struct {
	Rows  []Row
	Stats Stats
}

func anchor(href, text string) string {
	return `<a href="` + html.EscapeString(href) + `">` + html.EscapeString(text) + `</a>`
}
