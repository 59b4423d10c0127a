package postgres

//nolint:revive
import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"time"

	"guesthouse/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const driverName = "postgres"

// Connection splits reads from writes. Approvals and other locking transactions always go to Write.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

func New(config *config.Config) *Connection {
	pg := config.DB.Postgres

	write := connect(context.Background(), "write", pg.Write, DBName(config, pg.Write.Name), config)
	read := connect(context.Background(), "read", pg.Read, DBName(config, pg.Read.Name), config)

	return &Connection{
		Read:  read,
		Write: write,
	}
}

// DBName returns the database name with prefix if configured
func DBName(config *config.Config, baseName string) string {
	if config.DB.Postgres.Prefix != "" {
		return config.DB.Postgres.Prefix + baseName
	}

	return baseName
}

// DSN renders a lib/pq connection URL for node. Credentials are escaped; extra is merged into the query.
func DSN(node config.PostgresNode, dbName string, extra url.Values) string {
	query := url.Values{}
	query.Set("sslmode", node.SSLMode)

	if node.Timezone != "" {
		query.Set("timezone", node.Timezone)
	}

	for key, values := range extra {
		for _, value := range values {
			query.Add(key, value)
		}
	}

	dsn := url.URL{
		Scheme:   driverName,
		User:     url.UserPassword(node.Username, node.Password),
		Host:     net.JoinHostPort(node.Host, node.Port),
		Path:     dbName,
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

func connect(ctx context.Context, name string, node config.PostgresNode, dbName string, config *config.Config) *sqlx.DB {
	pg := config.DB.Postgres
	descriptor := DSN(node, dbName, nil)
	attempts := max(pg.MaxRetry, 1)

	var err error

	for attempt := range attempts {
		var db *sqlx.DB

		db, err = sqlx.ConnectContext(ctx, driverName, descriptor)
		if err == nil {
			db.SetMaxOpenConns(pg.MaxOpenConns)
			db.SetMaxIdleConns(pg.MaxIdleConns)
			db.SetConnMaxLifetime(time.Duration(pg.ConnMaxLifetimeMin) * time.Minute)

			log.Info().
				Str("name", name).
				Str("host", node.Host).
				Str("port", node.Port).
				Str("dbName", dbName).
				Msg("Connected to database")

			return db
		}

		log.Error().
			Err(err).
			Str("name", name).
			Str("host", node.Host).
			Str("dbName", dbName).
			Int("attempt", attempt+1).
			Int("maxAttempts", attempts).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(pg.RetryWaitTime) * time.Second)
	}

	log.Fatal().Err(err).Str("name", name).Msg("Giving up connecting to database")

	return nil
}

// Ping checks both pools; it backs the readiness probe.
func (c *Connection) Ping(ctx context.Context) error {
	if err := c.Write.PingContext(ctx); err != nil {
		return fmt.Errorf("write database unreachable: %w", err)
	}

	if err := c.Read.PingContext(ctx); err != nil {
		return fmt.Errorf("read database unreachable: %w", err)
	}

	return nil
}

func (c *Connection) Close() error {
	return errors.Join(c.Write.Close(), c.Read.Close())
}
