package stations

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

// MaxSuggestions caps how many stations a single lookup returns.
const MaxSuggestions = 10

// DefaultTable is the table holding station names and codes.
const DefaultTable = "Stations"

// Suggestion is a station offered while the user is typing.
type Suggestion struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// Querier is the subset of pgxpool.Pool the store needs.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Store looks up stations by name or code fragment.
type Store struct {
	db     Querier
	query  string
	logger *logrus.Logger
}

// NewStore creates a store reading from table.
func NewStore(db Querier, table string, logger *logrus.Logger) *Store {
	if table == "" {
		table = DefaultTable
	}
	return &Store{
		db: db,
		query: fmt.Sprintf(`
		SELECT station_name, station_code FROM %s
		WHERE station_code ILIKE $1 OR station_name ILIKE $2
		LIMIT %d
	`, pgx.Identifier{table}.Sanitize(), MaxSuggestions),
		logger: logger,
	}
}

// Connect opens a pool to the hosted station database. key, when set, is used
// as the connection password.
func Connect(ctx context.Context, url, key string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("parsing database url: %w", err)
	}
	if key != "" {
		cfg.ConnConfig.Password = key
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating pool: %w", err)
	}
	return pool, nil
}

// Find returns up to MaxSuggestions stations whose code or name contains text,
// ignoring case.
func (s *Store) Find(ctx context.Context, text string) ([]Suggestion, error) {
	pattern := escapeLike(text)

	rows, err := s.db.Query(ctx, s.query,
		"%"+strings.ToUpper(pattern)+"%",
		"%"+pattern+"%",
	)
	if err != nil {
		return nil, fmt.Errorf("querying stations: %w", err)
	}
	defer rows.Close()

	suggestions := make([]Suggestion, 0, MaxSuggestions)
	for rows.Next() {
		var name, code sql.NullString
		if err := rows.Scan(&name, &code); err != nil {
			return nil, fmt.Errorf("scanning station: %w", err)
		}
		suggestions = append(suggestions, Suggestion{Name: name.String, Code: code.String})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading stations: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"query":   text,
		"matches": len(suggestions),
	}).Debug("station suggestions")

	return suggestions, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
