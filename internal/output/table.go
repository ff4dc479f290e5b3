package output

import (
	"bytes"
	"html"
	"html/template"

	analytics "github.com/jschlyter/custom-integrations-analytics"
)

// TableID is the id attribute of the rendered table. Templates can target it from CSS or scripts.
const TableID = "T_integrations"

const tableSource = `<table id="{{.ID}}" class="display">
  <thead>
    <tr>
      <th class="blank level0" >&nbsp;</th>
      <th id="{{.ID}}_level0_col0" class="col_heading level0 col0" >Integration</th>
      <th id="{{.ID}}_level0_col1" class="col_heading level0 col1" >Description</th>
      <th id="{{.ID}}_level0_col2" class="col_heading level0 col2" >Count</th>
    </tr>
  </thead>
  <tbody>
{{- range .Rows}}
    <tr>
      <th id="{{$.ID}}_level0_row{{.Index}}" class="row_heading level0 row{{.Index}}" >{{.Index}}</th>
      <td id="{{$.ID}}_row{{.Index}}_col0" class="data row{{.Index}} col0" >{{.Label}}</td>
      <td id="{{$.ID}}_row{{.Index}}_col1" class="data row{{.Index}} col1" >{{.Description}}</td>
      <td id="{{$.ID}}_row{{.Index}}_col2" class="data row{{.Index}} col2" >{{.Count}}</td>
    </tr>
{{- end}}
  </tbody>
</table>
`

//nolint:gochecknoglobals // parsed once, read-only
var tableTemplate = template.Must(template.New("table").Parse(tableSource))

type tableRow struct {
	Index       int
	Label       template.HTML
	Description string
	Count       string
}

// Table renders rows as an HTML table, in the order given.
func Table(rows []analytics.Row) (template.HTML, error) {
	view := struct {
		ID   string
		Rows []tableRow
	}{
		ID:   TableID,
		Rows: make([]tableRow, 0, len(rows)),
	}

	for idx, row := range rows {
		view.Rows = append(view.Rows, tableRow{
			Index:       idx,
			Label:       labelHTML(row),
			Description: row.Description,
			Count:       FormatCount(row.Count),
		})
	}

	var buf bytes.Buffer
	if err := tableTemplate.Execute(&buf, view); err != nil {
		return "", wrapTemplateError(err)
	}

	//nolint:gosec // produced by html/template
	return template.HTML(buf.String()), nil
}

// labelHTML trusts enriched labels, which Build assembles from escaped parts.
func labelHTML(row analytics.Row) template.HTML {
	if row.Enriched() {
		return template.HTML(row.Label) //nolint:gosec // escaped at construction
	}

	return template.HTML(html.EscapeString(row.Label)) //nolint:gosec // escaped here
}
