// Wayfarer - Travel Destination Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

/*
Package services provides suture.Service wrappers for Wayfarer components.

Each wrapper translates a component's lifecycle into suture's context-aware
Serve method and implements fmt.Stringer so supervisor events name it.

HTTPServerService wraps *http.Server. ListenAndServe runs in a goroutine and
context cancellation triggers Shutdown with a bounded timeout.

SnapshotRefreshService calls Refresh on a snapshot-backed data source at a
fixed interval. Failures are logged and the previous snapshot is kept.
*/
package services
