package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/kimmoihanus/geoaudit"
	"github.com/kimmoihanus/geoaudit/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	DB          *sqlite.DB
	Audits      geoaudit.AuditService
	Subscribers geoaudit.SubscriberService

	Auditor    geoaudit.Auditor
	Fetcher    geoaudit.Fetcher
	Discoverer geoaudit.URLDiscoverer
	Limiter    geoaudit.DomainLimiter

	// AIEnabled reports whether a Gemini API key was configured.
	AIEnabled bool
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Audit   AuditCmd   `cmd:"" help:"Audit a single page for AI search visibility"`
	Schemas SchemasCmd `cmd:"" help:"Audit structured data and generate JSON-LD templates"`
	Site    SiteCmd    `cmd:"" help:"Audit every page discovered from a site's sitemap"`
	History HistoryCmd `cmd:"" help:"List stored audit results"`
	Serve   ServeCmd   `cmd:"" help:"Serve the audit HTTP API"`
}

// AuditCmd is the "audit" subcommand.
type AuditCmd struct {
	URL  string `arg:"" help:"Page URL to audit"`
	JSON bool   `help:"Print the raw JSON result"`
	Save bool   `help:"Store the result in audit history"`
}

// SchemasCmd is the "schemas" subcommand.
type SchemasCmd struct {
	URL       string `arg:"" help:"Page URL to audit"`
	Templates bool   `short:"t" help:"Print JSON-LD templates for recommended types"`
	JSON      bool   `help:"Print the raw JSON result"`
}

// SiteCmd is the "site" subcommand.
type SiteCmd struct {
	URL         string  `arg:"" help:"Site URL whose sitemap will be crawled"`
	Limit       int     `short:"n" default:"25" help:"Maximum number of pages to audit"`
	Concurrency int     `short:"c" default:"5" help:"Concurrent audit limit"`
	RPS         float64 `default:"1" help:"Requests per second per domain"`
	Save        bool    `help:"Store each result in audit history"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	URL   string `arg:"" optional:"" help:"Filter by page URL"`
	Limit int    `short:"n" default:"20" help:"Maximum number of records"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `default:":8080" help:"Listen address"`
}
