package main

import (
	"fmt"

	geohttp "github.com/kimmoihanus/geoaudit/http"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	server := &geohttp.Server{
		Auditor:     deps.Auditor,
		Fetcher:     deps.Fetcher,
		Audits:      deps.Audits,
		Subscribers: deps.Subscribers,
		AIEnabled:   deps.AIEnabled,
		Logger:      deps.Logger,
	}

	fmt.Fprintf(deps.Stdout, "Listening on %s\n", c.Addr)
	return server.ListenAndServe(deps.Ctx, c.Addr)
}
