// Courtside - Tennis Rankings Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courtside

/*
Package services provides suture.Service wrappers for Courtside components.

Each wrapper implements the suture v4 interface:

	type Service interface {
	    Serve(ctx context.Context) error
	}

and fmt.Stringer, so suture can name it in its events.

# Available Services

HTTP Server (HTTPServerService):
  - Runs ListenAndServe in a goroutine
  - Drains in-flight requests with Shutdown when the context is canceled
  - Returns listen failures so the supervisor restarts the server

Store Monitor (StoreMonitorService):
  - Pings the rankings store on an interval (default 30s)
  - Publishes the courtside_store_up gauge
  - Logs outages and recoveries once, not on every failed ping

# Usage

	tree.AddStoreService(services.NewStoreMonitorService(db, 30*time.Second))
	tree.AddAPIService(services.NewHTTPServerService(&http.Server{
	    Addr:    ":3860",
	    Handler: router.SetupChi(),
	}, 10*time.Second))
*/
package services
