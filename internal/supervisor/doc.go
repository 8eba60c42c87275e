// Courtside - Tennis Rankings Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courtside

/*
Package supervisor provides process supervision for Courtside using suture v4.

The tree isolates the HTTP server from background store work:

	RootSupervisor ("courtside")
	├── StoreSupervisor ("store-layer")
	│   └── StoreMonitorService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services are restarted with suture's backoff. Canceling the context
passed to Serve shuts every service down within TreeConfig.ShutdownTimeout;
UnstoppedServiceReport lists the ones that did not make it.

Supervisor events are logged through sutureslog, fed by the zerolog-backed
slog handler from the logging package.

# Usage Example

	logger := logging.NewSlogLogger()
	tree, err := supervisor.NewSupervisorTree(logger, supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddStoreService(services.NewStoreMonitorService(db, 30*time.Second))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	errCh := tree.ServeBackground(ctx)
	<-ctx.Done()
	<-errCh

See the services subpackage for the service wrappers.
*/
package supervisor
