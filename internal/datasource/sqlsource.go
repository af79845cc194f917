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
	"strings"

	"github.com/tomtom215/wayfarer/internal/config"
	"github.com/tomtom215/wayfarer/internal/recommend"
)

// maxInListSize bounds the number of placeholders per IN query.
const maxInListSize = 500

// dialect captures the SQL differences between DuckDB and MySQL.
type dialect struct {
	name     string
	textType string
	quote    string
}

var (
	duckdbDialect = dialect{name: config.DriverDuckDB, textType: "VARCHAR", quote: `"`}
	mysqlDialect  = dialect{name: config.DriverMySQL, textType: "CHAR", quote: "`"}
)

func (d dialect) ident(name string) string {
	return d.quote + name + d.quote
}

// normalizedColumn matches NormalizeID on the database side.
func (d dialect) normalizedColumn(col string) string {
	return fmt.Sprintf("lower(trim(CAST(%s AS %s)))", d.ident(col), d.textType)
}

// sqlSource answers the DataSource queries over users and trips tables.
// Table and column names come from validated configuration.
type sqlSource struct {
	db       *sql.DB
	dialect  dialect
	tables   config.TableConfig
	hasTrips bool
	idShape  *regexp.Regexp
}

func (s *sqlSource) Name() string { return s.dialect.name }

func (s *sqlSource) ValidUserID(id string) bool {
	return s.idShape.MatchString(recommend.NormalizeID(id))
}

func (s *sqlSource) GetUserByID(ctx context.Context, id string) (*recommend.User, error) {
	query := fmt.Sprintf("SELECT * FROM %s WHERE %s = ? LIMIT 1",
		s.dialect.ident(s.tables.Users), s.dialect.normalizedColumn(s.tables.UserID))

	records, err := s.query(ctx, query, recommend.NormalizeID(id))
	if err != nil {
		return nil, fmt.Errorf("get user %s: %w", id, err)
	}
	if len(records) == 0 {
		return nil, recommend.ErrUserNotFound
	}
	u := s.user(records[0])
	return &u, nil
}

func (s *sqlSource) ListUsers(ctx context.Context) ([]recommend.User, error) {
	records, err := s.query(ctx, "SELECT * FROM "+s.dialect.ident(s.tables.Users))
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	users := make([]recommend.User, 0, len(records))
	for _, r := range records {
		if u := s.user(r); u.ID != "" {
			users = append(users, u)
		}
	}
	return users, nil
}

func (s *sqlSource) ListTripsForUsers(ctx context.Context, ids []string) ([]recommend.Trip, error) {
	if !s.hasTrips || len(ids) == 0 {
		return nil, nil
	}

	var trips []recommend.Trip
	for start := 0; start < len(ids); start += maxInListSize {
		chunk := ids[start:min(start+maxInListSize, len(ids))]
		args := make([]any, len(chunk))
		for i, id := range chunk {
			args[i] = recommend.NormalizeID(id)
		}
		placeholders := strings.TrimSuffix(strings.Repeat("?,", len(chunk)), ",")
		query := fmt.Sprintf("SELECT * FROM %s WHERE %s IN (%s)",
			s.dialect.ident(s.tables.Trips), s.dialect.normalizedColumn(s.tables.TripUserID), placeholders)

		records, err := s.query(ctx, query, args...)
		if err != nil {
			return nil, fmt.Errorf("list trips: %w", err)
		}
		for _, r := range records {
			trips = append(trips, s.trip(r))
		}
	}
	return trips, nil
}

func (s *sqlSource) Inspect(ctx context.Context) (Summary, error) {
	sum := Summary{Driver: s.dialect.name}

	var err error
	if sum.Users, err = s.count(ctx, s.tables.Users); err != nil {
		return sum, err
	}
	users, err := s.query(ctx, fmt.Sprintf("SELECT * FROM %s LIMIT 1", s.dialect.ident(s.tables.Users)))
	if err != nil {
		return sum, fmt.Errorf("sample users: %w", err)
	}
	if len(users) > 0 {
		sum.UserKeys = users[0].Keys()
	}

	if !s.hasTrips {
		return sum, nil
	}
	if sum.Trips, err = s.count(ctx, s.tables.Trips); err != nil {
		return sum, err
	}
	trips, err := s.query(ctx, fmt.Sprintf("SELECT * FROM %s LIMIT %d", s.dialect.ident(s.tables.Trips), sampleSize))
	if err != nil {
		return sum, fmt.Errorf("sample trips: %w", err)
	}
	if len(trips) > 0 {
		sum.TripKeys = trips[0].Keys()
	}
	for _, r := range trips {
		sum.SampleTrips = append(sum.SampleTrips, s.trip(r))
	}
	return sum, nil
}

func (s *sqlSource) Close() error {
	return s.db.Close()
}

// user converts a row, taking the id from the configured column.
func (s *sqlSource) user(r Record) recommend.User {
	u := UserFromRecord(r)
	if v, ok := r[s.tables.UserID]; ok && v != nil {
		u.ID = idString(unwrap(v))
	}
	return u
}

func (s *sqlSource) trip(r Record) recommend.Trip {
	t := TripFromRecord(r)
	if v, ok := r[s.tables.TripUserID]; ok && v != nil {
		t.UserID = idString(unwrap(v))
	}
	return t
}

func (s *sqlSource) count(ctx context.Context, table string) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT count(*) FROM "+s.dialect.ident(table)).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}

func (s *sqlSource) query(ctx context.Context, query string, args ...any) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }() //nolint:errcheck // read-only result set
	return scanRecords(rows)
}

// scanRecords reads every row into a column-keyed Record.
func scanRecords(rows *sql.Rows) ([]Record, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read columns: %w", err)
	}

	var records []Record
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		r := make(Record, len(cols))
		for i, col := range cols {
			r[col] = unwrap(values[i])
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return records, nil
}
