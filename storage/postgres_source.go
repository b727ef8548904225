package storage

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"
	"time"

	"bikeshare-explorer/models"
	"bikeshare-explorer/utils"

	"github.com/lib/pq"
)

// DefaultTripTable is read when a postgres location names no table
const DefaultTripTable = "trips"

// PostgresSource reads a trip table from PostgreSQL
type PostgresSource struct {
	db     *sql.DB
	table  string
	logger *utils.Logger
}

// NewPostgresSource wraps an open connection pool
func NewPostgresSource(db *sql.DB, table string, logger *utils.Logger) *PostgresSource {
	if table == "" {
		table = DefaultTripTable
	}
	return &PostgresSource{db: db, table: table, logger: logger}
}

// OpenPostgres connects to location, a postgres URL with an optional ?table= parameter,
// and pings it with retries
func OpenPostgres(ctx context.Context, location string, retries int, logger *utils.Logger) (*PostgresSource, error) {
	dsn, table, err := splitTableParam(location)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrDatasetNotFound, err)
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open DB: %v", models.ErrDatasetNotFound, err)
	}

	db.SetMaxOpenConns(2)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Minute * 5)

	err = utils.RetryWithBackoff(ctx, retries, time.Second, func() error {
		return db.PingContext(ctx)
	}, logger)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: failed to ping DB: %v", models.ErrDatasetNotFound, err)
	}

	logger.Info("Connected to PostgreSQL", "table", table)
	return NewPostgresSource(db, table, logger), nil
}

// Read selects the whole table, every value as nullable text
func (s *PostgresSource) Read(ctx context.Context) (*RawTable, error) {
	query := "SELECT * FROM " + quoteTable(s.table)
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: table %s: %v", models.ErrDatasetNotFound, s.table, err)
	}
	defer rows.Close()

	header, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns: %w", err)
	}

	var data [][]string
	values := make([]sql.NullString, len(header))
	dest := make([]any, len(header))
	for i := range values {
		dest[i] = &values[i]
	}
	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, &models.RecordError{Row: len(data) + 1, Field: s.table, Err: err}
		}
		row := make([]string, len(values))
		for i, v := range values {
			if v.Valid {
				row[i] = v.String
			}
		}
		data = append(data, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	s.logger.Debug("Read trip table", "table", s.table, "rows", len(data))
	return newRawTable(header, data), nil
}

// Close closes the database connection
func (s *PostgresSource) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// splitTableParam removes the table parameter, which lib/pq would otherwise send to the server
func splitTableParam(location string) (dsn, table string, err error) {
	u, err := url.Parse(location)
	if err != nil {
		return "", "", fmt.Errorf("invalid postgres url: %w", err)
	}
	q := u.Query()
	table = q.Get("table")
	q.Del("table")
	u.RawQuery = q.Encode()
	if table == "" {
		table = DefaultTripTable
	}
	return u.String(), table, nil
}

// quoteTable quotes each part of an optionally schema-qualified name
func quoteTable(name string) string {
	parts := strings.Split(name, ".")
	for i, p := range parts {
		parts[i] = pq.QuoteIdentifier(p)
	}
	return strings.Join(parts, ".")
}
