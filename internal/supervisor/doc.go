// Wayfarer - Travel Destination Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

/*
Package supervisor provides process supervision for Wayfarer using suture v4.

The tree keeps the long-running parts of the server apart so that one can be
restarted without the other:

	RootSupervisor ("wayfarer")
	├── DataSupervisor ("data-layer")
	│   └── SnapshotRefreshService (if SNAPSHOT_REFRESH_INTERVAL > 0)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services are restarted with suture's backoff. Supervisor events are
logged through sutureslog, which takes the *slog.Logger built by
logging.NewSlogLogger so that they end up in the same zerolog stream as the
rest of the server.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	if r, ok := datasource.AsRefresher(source); ok && interval > 0 {
	    tree.AddDataService(services.NewSnapshotRefreshService(r, interval, logger))
	}
	err = tree.Serve(ctx)

On shutdown, UnstoppedServiceReport lists services that did not stop within
ShutdownTimeout.
*/
package supervisor
