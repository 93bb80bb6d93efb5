package report

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/fatih/structs"
	"github.com/google/uuid"
	client "github.com/influxdata/influxdb1-client/v2"
	"github.com/tantralabs/bspx/logger"
	"github.com/tantralabs/bspx/models"
)

// ErrNoInfluxURL is returned when an Influx sink is configured without an address.
var ErrNoInfluxURL = errors.New("influx url is not set")

type pointWriter interface {
	Write(bp client.BatchPoints) error
	Close() error
}

// InfluxConfig addresses the InfluxDB database the points are written to.
type InfluxConfig struct {
	URL      string        `json:"url"`
	User     string        `json:"user"`
	Password string        `json:"password" structs:"-"`
	Database string        `json:"database"`
	Timeout  time.Duration `json:"timeout"`
}

// Influx writes annotated series and chains as InfluxDB points. Every point of one Influx
// carries the same run_id tag so the output of one run can be queried together.
type Influx struct {
	client   pointWriter
	Database string
	RunID    string
	now      func() time.Time
}

// NewInflux connects to the database described by cfg.
func NewInflux(cfg InfluxConfig) (*Influx, error) {
	if cfg.URL == "" {
		return nil, ErrNoInfluxURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = time.Millisecond * 1000 * 10
	}
	influx, err := client.NewHTTPClient(client.HTTPConfig{
		Addr:     cfg.URL,
		Username: cfg.User,
		Password: cfg.Password,
		Timeout:  cfg.Timeout,
	})
	if err != nil {
		return nil, err
	}
	return newInflux(influx, cfg.Database), nil
}

func newInflux(w pointWriter, database string) *Influx {
	return &Influx{client: w, Database: database, RunID: uuid.New().String(), now: time.Now}
}

// fields maps a structs tagged row to point fields. Influx rejects NaN and infinite
// values, so those fields are left out.
func fields(row interface{}) map[string]interface{} {
	m := structs.Map(row)
	for k, v := range m {
		if f, ok := v.(float64); ok && (math.IsNaN(f) || math.IsInf(f, 0)) {
			delete(m, k)
		}
	}
	return m
}

func (i *Influx) batch() (client.BatchPoints, error) {
	return client.NewBatchPoints(client.BatchPointsConfig{
		Database:  i.Database,
		Precision: "s",
	})
}

func (i *Influx) write(ctx context.Context, bp client.BatchPoints) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(bp.Points()) == 0 {
		return nil
	}
	if err := i.client.Write(bp); err != nil {
		return fmt.Errorf("writing %d points to %s: %w", len(bp.Points()), i.Database, err)
	}
	logger.Debugf("Wrote %d points to %s", len(bp.Points()), i.Database)
	return nil
}

// LogSeries writes one "series" point per annotated bar, stamped with the bar date.
func (i *Influx) LogSeries(ctx context.Context, ticker string, rows []*models.AnnotatedBar) error {
	bp, err := i.batch()
	if err != nil {
		return err
	}
	tags := map[string]string{"ticker": ticker, "run_id": i.RunID}
	for _, row := range rows {
		pt, err := client.NewPoint("series", tags, fields(row), row.Date.Time)
		if err != nil {
			return err
		}
		bp.AddPoint(pt)
	}
	return i.write(ctx, bp)
}

// LogChain writes one "chain" point per contract, stamped with the time of the call.
func (i *Influx) LogChain(ctx context.Context, ticker string, rows []models.ChainRow) error {
	bp, err := i.batch()
	if err != nil {
		return err
	}
	now := i.now()
	for _, row := range rows {
		tags := map[string]string{
			"ticker": ticker,
			"run_id": i.RunID,
			"symbol": row.Symbol,
			"type":   row.OptionType,
			"expiry": row.Expiry.String(),
		}
		pt, err := client.NewPoint("chain", tags, fields(row), now)
		if err != nil {
			return err
		}
		bp.AddPoint(pt)
	}
	return i.write(ctx, bp)
}

// Close releases the underlying client.
func (i *Influx) Close() error {
	return i.client.Close()
}
