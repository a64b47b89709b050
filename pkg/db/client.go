package db

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/shopease/shopease-backend/pkg/config"
	pkgerrors "github.com/shopease/shopease-backend/pkg/errors"
	"github.com/shopease/shopease-backend/pkg/logger"
)

// Client is the storage gateway. It executes parameterized statements against
// whichever engine the configuration selected; callers never see which one.
// Statements use `?` placeholders and parameters are bound, never
// interpolated.
type Client struct {
	conn *gorm.DB
}

// Pinger exposes the health check surface.
type Pinger interface {
	Ping(ctx context.Context) error
}

// New boots a gateway for the configured engine: a pooled postgres connection
// or a single sqlite file handle. Both are safe for concurrent request use.
func New(ctx context.Context, cfg config.DBConfig, logg *logger.Logger) (*Client, error) {
	if cfg.DSN == "" {
		return nil, fmt.Errorf("database DSN is required")
	}

	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	gormLogger := gormlogger.New(
		log.New(io.Discard, "", log.LstdFlags),
		gormlogger.Config{LogLevel: gormlogger.Silent},
	)

	gormCfg := &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
	}

	conn, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, fmt.Errorf("opening db connection: %w", err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, fmt.Errorf("getting sql db handle: %w", err)
	}

	applyPoolSettings(sqlDB, cfg)

	if logg != nil {
		ctx = logg.WithField(ctx, "db_driver", strings.ToLower(cfg.Driver))
		logg.Info(ctx, "database connection established")
	}

	return &Client{conn: conn}, nil
}

func dialectorFor(cfg config.DBConfig) (gorm.Dialector, error) {
	switch strings.ToLower(cfg.Driver) {
	case config.DriverPostgres:
		return postgres.New(postgres.Config{
			DSN:                  cfg.DSN,
			PreferSimpleProtocol: true,
		}), nil
	case config.DriverSQLite:
		return sqlite.Open(cfg.DSN), nil
	default:
		return nil, fmt.Errorf("unsupported db driver %q", cfg.Driver)
	}
}

func applyPoolSettings(sqlDB *sql.DB, cfg config.DBConfig) {
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
	if cfg.ConnMaxIdleTime > 0 {
		sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
	}
}

// DB returns the underlying GORM connection. Reserved for migrations and
// tests; services go through the gateway operations below.
func (c *Client) DB() *gorm.DB {
	return c.conn
}

// Ping verifies the datasource is reachable.
func (c *Client) Ping(ctx context.Context) error {
	sqlDB, err := c.conn.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close shuts down the pooled connections.
func (c *Client) Close() error {
	sqlDB, err := c.conn.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Execute runs a mutating statement and returns the affected row count.
func (c *Client) Execute(ctx context.Context, query string, args ...any) (int64, error) {
	tx := c.conn.WithContext(ctx).Exec(query, args...)
	if tx.Error != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeStorage, tx.Error, "statement failed")
	}
	return tx.RowsAffected, nil
}

// Insert runs an INSERT and returns the generated identifier. The gateway
// appends the id-returning clause itself so callers stay engine-agnostic;
// both supported engines understand RETURNING.
func (c *Client) Insert(ctx context.Context, query string, args ...any) (int64, error) {
	var id int64
	tx := c.conn.WithContext(ctx).Raw(query+" RETURNING id", args...).Scan(&id)
	if tx.Error != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeStorage, tx.Error, "insert failed")
	}
	return id, nil
}

// FetchOne scans the first matching row into dest. Zero rows is reported as
// found=false, not as an error.
func (c *Client) FetchOne(ctx context.Context, dest any, query string, args ...any) (bool, error) {
	tx := c.conn.WithContext(ctx).Raw(query, args...).Scan(dest)
	if tx.Error != nil {
		return false, pkgerrors.Wrap(pkgerrors.CodeStorage, tx.Error, "query failed")
	}
	return tx.RowsAffected > 0, nil
}

// FetchAll scans every matching row into dest, which must be a pointer to a
// slice.
func (c *Client) FetchAll(ctx context.Context, dest any, query string, args ...any) error {
	tx := c.conn.WithContext(ctx).Raw(query, args...).Scan(dest)
	if tx.Error != nil {
		return pkgerrors.Wrap(pkgerrors.CodeStorage, tx.Error, "query failed")
	}
	return nil
}
