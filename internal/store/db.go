package store

import (
	"context"
	"fmt"

	"github.com/Knetic/go-namedParameterQuery"
	"github.com/chrisprideC9/shopping-scraper-graphs/internal/dependency"
	"github.com/chrisprideC9/shopping-scraper-graphs/internal/entity"
	"github.com/jmoiron/sqlx"
)

// TransportError is returned by Execute when a query could not be bound,
// sent, or read back.
type TransportError struct {
	Query string
	Err   error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("query %s: %v", e.Query, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// bindNamed turns a query with :name placeholders into a driver-specific
// positional query. Slice values are expanded for IN clauses.
func bindNamed(conn dependency.DB, query string, params map[string]any) (string, []any, error) {
	queryNamed := namedParameterQuery.NewNamedParameterQuery(query)
	queryNamed.SetValuesFromMap(params)
	query, args, err := sqlx.In(queryNamed.GetParsedQuery(), queryNamed.GetParsedParameters()...)
	if err != nil {
		return "", nil, fmt.Errorf("sqlx in: %w", err)
	}
	return conn.Rebind(query), args, nil
}

// Execute runs q and returns its rows in result order. Byte slices returned
// by the driver are converted to strings.
func (s *Store) Execute(ctx context.Context, q entity.Query) ([]entity.Row, error) {
	if s.queryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.queryTimeout)
		defer cancel()
	}

	query, args, err := bindNamed(s.db, q.SQL, q.Params)
	if err != nil {
		return nil, &TransportError{Query: q.Name, Err: err}
	}

	rows, err := s.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, &TransportError{Query: q.Name, Err: fmt.Errorf("query context: %w", err)}
	}
	defer rows.Close()

	result := []entity.Row{}
	for rows.Next() {
		m := map[string]any{}
		if err := rows.MapScan(m); err != nil {
			return nil, &TransportError{Query: q.Name, Err: fmt.Errorf("map scan: %w", err)}
		}
		for k, v := range m {
			if b, ok := v.([]byte); ok {
				m[k] = string(b)
			}
		}
		result = append(result, entity.Row(m))
	}
	if err := rows.Err(); err != nil {
		return nil, &TransportError{Query: q.Name, Err: fmt.Errorf("rows: %w", err)}
	}
	return result, nil
}
