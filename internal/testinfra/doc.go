// Wayfarer - Travel Destination Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

// Package testinfra provides test infrastructure for integration testing with containers.
//
// This package uses testcontainers-go to manage Docker containers for integration tests.
// All files carry the integration build tag:
//
//	go test -tags integration ./...
//
// # MySQL Container
//
// MySQLContainer starts a MySQL server and returns a DSN for the relational
// data source:
//
//	func TestMySQLSource(t *testing.T) {
//	    testinfra.SkipIfNoDocker(t)
//	    ctx := context.Background()
//	    mysql, err := testinfra.NewMySQLContainer(ctx)
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//	    defer testinfra.CleanupContainer(t, ctx, mysql.Container)
//
//	    src, err := datasource.OpenMySQL(ctx, config.MySQLConfig{DSN: mysql.DSN}, tables)
//	    // ...
//	}
//
// Tests are skipped gracefully if Docker is unavailable. The first run may need
// to download the container image.
package testinfra
