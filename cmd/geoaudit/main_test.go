package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPageHTML = `<html><head>
	<title>Test Page</title>
	<meta name="description" content="A test page">
	<script type="application/ld+json">{"@context":"https://schema.org","@type":"Organization","name":"Acme"}</script>
</head><body>
	<main><h1>Test Page</h1><p>Some content here.</p></main>
</body></html>`

// newTestMain returns a Main wired to a temp database with no AI
// credential, so audits are deterministic and rule-based.
func newTestMain(t *testing.T) *Main {
	t.Helper()
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("PROXY_HOST", "")

	m := NewMain()
	m.DBPath = filepath.Join(t.TempDir(), "test.db")
	return m
}

func TestMain_NoCommand(t *testing.T) {
	m := newTestMain(t)

	var stdout, stderr bytes.Buffer
	err := m.Run(context.Background(), nil, &stdout, &stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
}

func TestMain_Help(t *testing.T) {
	m := newTestMain(t)

	var stdout, stderr bytes.Buffer
	err := m.Run(context.Background(), []string{"--help"}, &stdout, &stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "audit")
}

func TestMain_UnknownCommand(t *testing.T) {
	m := newTestMain(t)

	var stdout, stderr bytes.Buffer
	err := m.Run(context.Background(), []string{"bogus"}, &stdout, &stderr)
	require.Error(t, err)
}

func TestAuditCommand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, testPageHTML)
	}))
	defer srv.Close()

	t.Run("text report", func(t *testing.T) {
		m := newTestMain(t)

		var stdout, stderr bytes.Buffer
		err := m.Run(context.Background(), []string{"audit", srv.URL}, &stdout, &stderr)
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Overall:")
		assert.Contains(t, stdout.String(), srv.URL)
	})

	t.Run("json output", func(t *testing.T) {
		m := newTestMain(t)

		var stdout, stderr bytes.Buffer
		err := m.Run(context.Background(), []string{"audit", srv.URL, "--json"}, &stdout, &stderr)
		require.NoError(t, err)

		var result struct {
			URL          string `json:"url"`
			OverallScore int    `json:"overallScore"`
			Grade        string `json:"grade"`
			Schema       struct {
				ExistingTypes []string `json:"existingTypes"`
			} `json:"schema"`
		}
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &result))
		assert.Equal(t, srv.URL, result.URL)
		assert.NotEmpty(t, result.Grade)
		assert.Contains(t, result.Schema.ExistingTypes, "Organization")
	})

	t.Run("save and list history", func(t *testing.T) {
		m := newTestMain(t)

		var stdout, stderr bytes.Buffer
		err := m.Run(context.Background(), []string{"audit", srv.URL, "--save"}, &stdout, &stderr)
		require.NoError(t, err)

		stdout.Reset()
		err = m.Run(context.Background(), []string{"history"}, &stdout, &stderr)
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), srv.URL)
	})

	t.Run("unreachable URL", func(t *testing.T) {
		m := newTestMain(t)

		var stdout, stderr bytes.Buffer
		err := m.Run(context.Background(), []string{"audit", "http://127.0.0.1:1/page"}, &stdout, &stderr)
		require.Error(t, err)
	})
}

func TestSchemasCommand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, testPageHTML)
	}))
	defer srv.Close()

	t.Run("text report", func(t *testing.T) {
		m := newTestMain(t)

		var stdout, stderr bytes.Buffer
		err := m.Run(context.Background(), []string{"schemas", srv.URL}, &stdout, &stderr)
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Existing types: Organization")
	})

	t.Run("with templates", func(t *testing.T) {
		m := newTestMain(t)

		var stdout, stderr bytes.Buffer
		err := m.Run(context.Background(), []string{"schemas", srv.URL, "--templates"}, &stdout, &stderr)
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "FAQPage")
		assert.Contains(t, stdout.String(), "https://schema.org")
	})
}

func TestHistoryCommand_Empty(t *testing.T) {
	m := newTestMain(t)

	var stdout, stderr bytes.Buffer
	err := m.Run(context.Background(), []string{"history"}, &stdout, &stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "No audit history")
}

func TestSiteCommand(t *testing.T) {
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/sitemap.xml":
			fmt.Fprintf(w, `<urlset>
				<url><loc>%[1]s/one</loc></url>
				<url><loc>%[1]s/two</loc></url>
			</urlset>`, srv.URL)
		case "/robots.txt", "/sitemap_index.xml":
			w.WriteHeader(http.StatusNotFound)
		default:
			fmt.Fprint(w, testPageHTML)
		}
	}))
	defer srv.Close()

	m := newTestMain(t)

	var stdout, stderr bytes.Buffer
	err := m.Run(context.Background(), []string{"site", srv.URL, "--rps", "100"}, &stdout, &stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Auditing 2 pages")
	assert.Contains(t, stdout.String(), "average score")
}
