// Wayfarer - Travel Destination Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package datasource

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"time"

	_ "github.com/go-sql-driver/mysql" // MySQL driver

	"github.com/tomtom215/wayfarer/internal/config"
)

// mysqlID accepts the numeric or slug keys relational schemas use.
var mysqlID = regexp.MustCompile(`^[a-z0-9_-]{1,64}$`)

const mysqlPingTimeout = 5 * time.Second

// MySQLSource serves users and trips tables from MySQL.
type MySQLSource struct {
	*sqlSource
}

// OpenMySQL connects to MySQL and verifies the connection.
func OpenMySQL(ctx context.Context, cfg config.MySQLConfig, tables config.TableConfig) (*MySQLSource, error) {
	db, err := sql.Open("mysql", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open mysql: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, mysqlPingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close() //nolint:errcheck // error path
		return nil, fmt.Errorf("failed to ping mysql: %w", err)
	}

	return &MySQLSource{sqlSource: &sqlSource{
		db:       db,
		dialect:  mysqlDialect,
		tables:   tables,
		hasTrips: tables.Trips != "",
		idShape:  mysqlID,
	}}, nil
}
