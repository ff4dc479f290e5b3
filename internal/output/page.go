package output

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/farcloser/primordium/fault"

	analytics "github.com/jschlyter/custom-integrations-analytics"
)

// ErrTemplate is returned when a report template cannot be parsed or executed.
var ErrTemplate = errors.New("template failure")

// Page holds the values exposed to report templates.
type Page struct {
	Title          string
	Table          template.HTML
	Now            time.Time
	RepositoryName string
	RepositoryURL  string
	Stats          analytics.Stats
}

const boilerplateHeader = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Helvetica, Arial, sans-serif; margin: 2em; }
table.display { border-collapse: collapse; }
table.display th, table.display td { border-bottom: 1px solid #ddd; padding: 4px 12px; text-align: left; }
table.display td.col2 { text-align: right; }
table.display tbody tr:hover { background-color: #f5f5f5; }
footer { margin-top: 2em; color: #777; font-size: smaller; }
</style>
`

const boilerplateFooter = `</body>
</html>
`

// Boilerplate renders the page with fixed markup around the table.
func Boilerplate(page *Page) []byte {
	var out strings.Builder

	title := html.EscapeString(page.Title)

	out.WriteString(boilerplateHeader)
	out.WriteString("<title>" + title + "</title>\n</head>\n<body>\n")
	out.WriteString("<h1>" + title + "</h1>\n")
	out.WriteString(string(page.Table))
	out.WriteString("<footer>\n")
	fmt.Fprintf(&out, "%s integrations, %s installations. ",
		FormatCount(int64(page.Stats.Entries)), FormatCount(page.Stats.Total))
	out.WriteString("Generated " + html.EscapeString(page.Now.UTC().Format(time.RFC3339)))

	if page.RepositoryURL != "" {
		out.WriteString(` by <a href="` + html.EscapeString(page.RepositoryURL) + `">` +
			html.EscapeString(page.RepositoryName) + "</a>")
	}

	out.WriteString(".\n</footer>\n")
	out.WriteString(boilerplateFooter)

	return []byte(out.String())
}

// Template is a report template loaded from disk.
type Template struct {
	tmpl *template.Template
}

// LoadTemplate reads and parses an html/template file.
// Templates can call count and decimal to format numbers.
func LoadTemplate(path string) (*Template, error) {
	source, err := os.ReadFile(path) //nolint:gosec // CLI tool reads user-specified template files
	if err != nil {
		return nil, fmt.Errorf("%w: %w", fault.ErrReadFailure, err)
	}

	tmpl, err := template.New(filepath.Base(path)).
		Funcs(template.FuncMap{
			"count":   FormatCount,
			"decimal": FormatDecimal,
		}).
		Parse(string(source))
	if err != nil {
		return nil, wrapTemplateError(err)
	}

	return &Template{tmpl: tmpl}, nil
}

// Render executes the template against page.
func (t *Template) Render(page *Page) ([]byte, error) {
	var buf bytes.Buffer
	if err := t.tmpl.Execute(&buf, page); err != nil {
		return nil, wrapTemplateError(err)
	}

	return buf.Bytes(), nil
}

func wrapTemplateError(err error) error {
	return fmt.Errorf("%w: %w", ErrTemplate, err)
}
