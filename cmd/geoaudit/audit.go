package main

import (
	"encoding/json"
	"fmt"

	"github.com/kimmoihanus/geoaudit"
)

// Run executes the audit command.
func (c *AuditCmd) Run(deps *Dependencies) error {
	html, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", geoaudit.ErrorMessage(err))
		return err
	}

	result := deps.Auditor.General(deps.Ctx, c.URL, html)

	if c.Save {
		record := &geoaudit.AuditRecord{
			URL:          c.URL,
			OverallScore: result.OverallScore,
			Grade:        result.Grade,
			Result:       result,
		}
		if err := deps.Audits.CreateAuditRecord(deps.Ctx, record); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", geoaudit.ErrorMessage(err))
			return err
		}
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	printGeneralAudit(deps.Stdout, result)
	return nil
}
