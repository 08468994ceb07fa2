package main

import (
	"encoding/json"
	"fmt"

	"github.com/kimmoihanus/geoaudit"
	"github.com/kimmoihanus/geoaudit/audit"
)

// Run executes the schemas command.
func (c *SchemasCmd) Run(deps *Dependencies) error {
	html, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", geoaudit.ErrorMessage(err))
		return err
	}

	result := deps.Auditor.Schema(deps.Ctx, c.URL, html)

	if c.JSON {
		out := struct {
			*geoaudit.SchemaAudit
			Templates []geoaudit.SchemaTemplate `json:"templates,omitempty"`
		}{SchemaAudit: result}
		if c.Templates {
			out.Templates = audit.Templates(result.PageData, result.PageType, result.ExistingTypes)
		}
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	printSchemaAudit(deps.Stdout, result)

	if c.Templates {
		for _, tmpl := range audit.Templates(result.PageData, result.PageType, result.ExistingTypes) {
			fmt.Fprintf(deps.Stdout, "\n%s (%s priority, %s)\n%s\n", tmpl.Type, tmpl.Priority, tmpl.Reason, tmpl.JSONLD)
		}
	}

	return nil
}
