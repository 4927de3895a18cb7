// Footystats - Historical Football Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footystats

/*
Package supervisor provides suture-based process supervision.

The tree is:

	footystats (root)
	├── data-layer
	│   └── pool-monitor
	└── api-layer
	    └── http-server

Services that return an error are restarted with backoff; supervisor events
go to a log/slog logger via sutureslog, normally logging.NewSlogLogger() so
they land in the zerolog output.

Shutdown is driven by context cancellation: canceling the context passed to
Serve stops every service, and the HTTP server drains in-flight requests
before Serve returns. The caller closes the database pool afterwards.

	tree, _ := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	tree.AddDataService(services.NewPoolMonitorService(pg, 0))
	tree.AddAPIService(services.NewHTTPServerService(server, addr, 10*time.Second))
	err := tree.Serve(ctx)
*/
package supervisor
