package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/kimmoihanus/geoaudit"
)

// printGeneralAudit renders a general audit as a plain text report.
func printGeneralAudit(w io.Writer, a *geoaudit.GeneralAudit) {
	fmt.Fprintf(w, "%s\n", a.URL)
	fmt.Fprintf(w, "Overall: %d/100 (%s)\n", a.OverallScore, a.Grade)
	fmt.Fprintf(w, "  Technical: %d  Content: %d  Schema: %d\n",
		a.Technical.Score, a.Content.Score, a.Schema.Score)

	if len(a.Schema.ExistingTypes) > 0 {
		fmt.Fprintf(w, "  Schema types: %s\n", strings.Join(a.Schema.ExistingTypes, ", "))
	}

	if len(a.Summary.Strengths) > 0 {
		fmt.Fprintln(w, "\nStrengths:")
		for _, s := range a.Summary.Strengths {
			fmt.Fprintf(w, "  + %s\n", s)
		}
	}

	if len(a.Summary.Gaps) > 0 {
		fmt.Fprintln(w, "\nGaps:")
		for _, g := range a.Summary.Gaps {
			fmt.Fprintf(w, "  - %s\n", g)
		}
	}

	if len(a.Recommendations) > 0 {
		fmt.Fprintln(w, "\nRecommendations:")
		for _, r := range a.Recommendations {
			fmt.Fprintf(w, "  [%s] %s: %s\n", r.Priority, r.Issue, r.Action)
		}
	}
}

// printSchemaAudit renders a schema audit as a plain text report.
func printSchemaAudit(w io.Writer, a *geoaudit.SchemaAudit) {
	fmt.Fprintf(w, "Page type: %s\n", a.PageType)
	fmt.Fprintf(w, "Quality score: %d/100\n", a.QualityScore)

	if len(a.ExistingTypes) > 0 {
		fmt.Fprintf(w, "Existing types: %s\n", strings.Join(a.ExistingTypes, ", "))
	} else {
		fmt.Fprintln(w, "No structured data found.")
	}

	if len(a.Recommendations) > 0 {
		fmt.Fprintln(w, "\nRecommended types:")
		for _, r := range a.Recommendations {
			fmt.Fprintf(w, "  [%s] %s: %s\n", r.Priority, r.Type, r.Reason)
		}
	}
}
