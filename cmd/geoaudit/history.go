package main

import (
	"fmt"

	"github.com/kimmoihanus/geoaudit"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	filter := geoaudit.AuditRecordFilter{Limit: c.Limit}
	if c.URL != "" {
		filter.URL = &c.URL
	}

	records, err := deps.Audits.FindAuditRecords(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", geoaudit.ErrorMessage(err))
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(deps.Stdout, "No audit history. Use 'geoaudit audit --save' to record audits.")
		return nil
	}

	for _, r := range records {
		fmt.Fprintf(deps.Stdout, "%s  %3d  %s  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.OverallScore, r.Grade, r.URL)
	}

	return nil
}
