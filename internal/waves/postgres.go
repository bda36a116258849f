package waves

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"github.com/obsnetwork/geomagws/internal/sncl"
)

// PostgresArchive reads wave samples from a Postgres (or TimescaleDB)
// archive. Samples are stored in milli-units in the wave_samples table,
// one row per (sncl, time).
type PostgresArchive struct {
	db *sql.DB
}

// NewPostgresArchive opens and verifies a connection to the sample archive.
func NewPostgresArchive(connStr string) (*PostgresArchive, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return &PostgresArchive{db: db}, nil
}

// Fetch retrieves the raw series for one channel. Archived rows may be
// sparse; each row is placed at its offset from start so gaps stay missing.
func (a *PostgresArchive) Fetch(ctx context.Context, start, end time.Time, address sncl.ChannelAddress) (*Series, error) {
	rows, err := a.db.QueryContext(ctx, `
        SELECT time, value
        FROM wave_samples
        WHERE station = $1 AND network = $2 AND channel = $3 AND location = $4
          AND time BETWEEN $5 AND $6
        ORDER BY time
    `, address.Station, address.Network, address.Channel, address.Location, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query wave archive: %w", err)
	}
	defer rows.Close()

	delta := channelDelta(address.Channel)
	n := int(end.Sub(start)/delta) + 1
	if n < 1 {
		n = 1
	}
	samples := make([]*float64, n)

	found := 0
	for rows.Next() {
		var t time.Time
		var value float64
		if err := rows.Scan(&t, &value); err != nil {
			return nil, fmt.Errorf("failed to scan wave sample: %w", err)
		}
		offset := t.Sub(start)
		if offset < 0 || offset%delta != 0 {
			continue
		}
		i := int(offset / delta)
		if i >= n {
			continue
		}
		v := value
		samples[i] = &v
		found++
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read wave samples: %w", err)
	}

	if found == 0 {
		return nil, nil
	}

	return &Series{
		Address: address,
		Start:   start,
		Delta:   delta,
		Samples: samples,
	}, nil
}

// channelDelta derives sample spacing from the channel's resolution prefix.
func channelDelta(channel string) time.Duration {
	if strings.HasPrefix(channel, "S") {
		return time.Second
	}
	return time.Minute
}

// Close releases the archive's database resources.
func (a *PostgresArchive) Close() error {
	return a.db.Close()
}

var _ Fetcher = (*PostgresArchive)(nil)
