package store

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/chrisprideC9/shopping-scraper-graphs/internal/dependency"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

// Config defines configurations to connect database
type Config struct {
	Driver             string        `mapstructure:"driver"`
	DSN                string        `mapstructure:"dsn"`
	MaxOpenConnections int           `mapstructure:"max_open_connections"`
	MaxIdleConnections int           `mapstructure:"max_idle_connections"`
	QueryTimeout       time.Duration `mapstructure:"query_timeout"`
	TLSCAPath          string        `mapstructure:"tls_ca_path"`
}

// Store reads the scrape dataset. It never writes.
type Store struct {
	// db is used for executing queries
	db           dependency.DB
	queryTimeout time.Duration
	close        context.CancelFunc
}

var _ dependency.Repository = (*Store)(nil)

func init() {
	sqlx.BindDriver(DriverSQLite, sqlx.QUESTION)
}

func driverName(d string) (string, error) {
	switch d {
	case "", DriverPostgres, "supabase":
		return DriverPostgres, nil
	case DriverMySQL:
		return DriverMySQL, nil
	case DriverSQLite, "sqlite3":
		return DriverSQLite, nil
	}
	return "", fmt.Errorf("unsupported store driver %q", d)
}

// registerTLSConfig registers a custom CA with the MySQL driver under the
// name "custom" so a DSN can reference it with tls=custom.
func registerTLSConfig(cfg Config) error {
	if cfg.TLSCAPath == "" {
		return nil
	}
	caCert, err := os.ReadFile(cfg.TLSCAPath)
	if err != nil {
		return fmt.Errorf("failed to read CA certificate from %s: %w", cfg.TLSCAPath, err)
	}
	caCertPool := x509.NewCertPool()
	if !caCertPool.AppendCertsFromPEM(caCert) {
		return fmt.Errorf("failed to parse CA certificate")
	}
	slog.Default().Info("using CA certificate from file", "path", cfg.TLSCAPath)
	return mysql.RegisterTLSConfig("custom", &tls.Config{RootCAs: caCertPool})
}

// New connects to the database and returns a new Store. The caller owns the
// returned handle and must Close it.
func New(ctx context.Context, cfg Config) (*Store, error) {
	driver, err := driverName(cfg.Driver)
	if err != nil {
		return nil, err
	}
	if cfg.DSN == "" {
		return nil, fmt.Errorf("empty %s dsn", driver)
	}
	if driver == DriverMySQL {
		if err := registerTLSConfig(cfg); err != nil {
			return nil, fmt.Errorf("failed to register TLS config: %w", err)
		}
	}

	d, err := sqlx.Open(driver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("couldn't open database: %w", err)
	}

	if cfg.MaxOpenConnections > 0 {
		d.SetMaxOpenConns(cfg.MaxOpenConnections)
	}
	if cfg.MaxIdleConnections > 0 {
		d.SetMaxIdleConns(cfg.MaxIdleConnections)
	}
	d.SetConnMaxLifetime(2 * time.Minute)
	d.SetConnMaxIdleTime(30 * time.Second)

	pingCtx, pingCancel := context.WithTimeout(ctx, 10*time.Second)
	defer pingCancel()
	if err := d.PingContext(pingCtx); err != nil {
		d.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	ctx, c := context.WithCancel(ctx)
	s := &Store{
		db:           d,
		queryTimeout: cfg.QueryTimeout,
		close:        c,
	}

	go func() {
		<-ctx.Done()
		d.Close()
	}()

	return s, nil
}

// Close releases the connection pool.
func (s *Store) Close() {
	s.close()
}

// Ping checks database connectivity by executing a simple query
func (s *Store) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var result int
	if err := s.db.QueryRowxContext(ctx, "SELECT 1").Scan(&result); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

func (s *Store) Resolver() dependency.Resolver {
	return &resolverStore{Store: s}
}

func (s *Store) Analytics() dependency.Analytics {
	return &analyticsStore{Store: s}
}
