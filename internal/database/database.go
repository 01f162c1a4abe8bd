package database

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/XSAM/otelsql"
	_ "github.com/jackc/pgx/v5/stdlib"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"

	"salonweb/internal/config"
)

// ApplicationName tags archive sessions in pg_stat_activity.
const ApplicationName = "salonweb"

const (
	connectTimeout = 5 * time.Second

	// The archive sees a few inserts per hour, so the pool stays small.
	defaultMaxOpenConns    = 4
	defaultMaxIdleConns    = 2
	defaultConnMaxLifetime = 30 * time.Minute
)

var sqlOpen = sql.Open

// PoolSettings are the connection pool limits applied to the archive.
type PoolSettings struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Pool resolves pool limits from c. Unset values take archive defaults and
// idle connections never exceed open ones.
func Pool(c config.DatabaseConfig) PoolSettings {
	p := PoolSettings{
		MaxOpenConns:    defaultMaxOpenConns,
		MaxIdleConns:    defaultMaxIdleConns,
		ConnMaxLifetime: defaultConnMaxLifetime,
	}
	if c.MaxOpenConns > 0 {
		p.MaxOpenConns = c.MaxOpenConns
	}
	if c.MaxIdleConns > 0 {
		p.MaxIdleConns = c.MaxIdleConns
	}
	if c.ConnMaxLifetimeSec > 0 {
		p.ConnMaxLifetime = time.Duration(c.ConnMaxLifetimeSec) * time.Second
	}
	p.MaxIdleConns = min(p.MaxIdleConns, p.MaxOpenConns)
	return p
}

// BuildPostgresDSN builds the archive connection URL, e.g.
// postgres://salon_app:pass@db:5432/salon?application_name=salonweb&connect_timeout=5&sslmode=disable
func BuildPostgresDSN(c config.DatabaseConfig) (string, error) {
	var missing []string
	for _, f := range []struct{ env, val string }{
		{"DB_HOST", c.Host},
		{"DB_PORT", c.Port},
		{"DB_USER", c.User},
		{"DB_NAME", c.Name},
	} {
		if f.val == "" {
			missing = append(missing, f.env)
		}
	}
	if len(missing) > 0 {
		return "", fmt.Errorf("inquiry archive: missing %s", strings.Join(missing, ", "))
	}

	u := &url.URL{
		Scheme: "postgres",
		Host:   c.Host + ":" + c.Port,
		Path:   c.Name,
	}
	if c.Password != "" {
		u.User = url.UserPassword(c.User, c.Password)
	} else {
		u.User = url.User(c.User)
	}

	q := url.Values{}
	q.Set("application_name", ApplicationName)
	q.Set("connect_timeout", strconv.Itoa(int(connectTimeout.Seconds())))
	if c.SSLMode != "" {
		q.Set("sslmode", c.SSLMode)
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// NewPostgres opens the inquiry archive through the pgx stdlib driver, traced by
// otelsql, sized by Pool. The connection is verified before returning.
func NewPostgres(ctx context.Context, c config.DatabaseConfig) (*sql.DB, error) {
	dsn, err := BuildPostgresDSN(c)
	if err != nil {
		return nil, err
	}

	driverName, err := otelsql.Register("pgx",
		otelsql.WithAttributes(semconv.DBSystemPostgreSQL, semconv.DBName(c.Name)),
		otelsql.WithSQLCommenter(true),
	)
	if err != nil {
		return nil, fmt.Errorf("register otelsql: %w", err)
	}

	db, err := sqlOpen(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open inquiry archive: %w", err)
	}

	pool := Pool(c)
	db.SetMaxOpenConns(pool.MaxOpenConns)
	db.SetMaxIdleConns(pool.MaxIdleConns)
	db.SetConnMaxLifetime(pool.ConnMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping inquiry archive at %s: %w", c.Host, err)
	}

	return db, nil
}
