package dataset

import (
	"bytes"
	"context"
	"io"
	"time"

	crerr "github.com/cockroachdb/errors"
	jsoniter "github.com/json-iterator/go"
	"github.com/riskibarqy/roto-draft/internal/domain/player"
	"github.com/riskibarqy/roto-draft/internal/platform/logging"
	"github.com/sourcegraph/conc/pool"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// ErrLoadFailed marks any failure to fetch or parse a source document.
var ErrLoadFailed = crerr.New("dataset load failed")

var tracer = otel.Tracer("github.com/riskibarqy/roto-draft/internal/infrastructure/dataset")

// DocumentNames names the four source documents relative to a Source.
type DocumentNames struct {
	Master     string
	Historical string
	ADP        string
	Buckets    string
}

// Dataset is the joined, immutable player collection.
type Dataset struct {
	Players  map[string]player.Player
	Order    []string
	LoadedAt time.Time
}

// Ordered returns players in natural order.
func (d Dataset) Ordered() []player.Player {
	out := make([]player.Player, 0, len(d.Order))
	for _, id := range d.Order {
		out = append(out, d.Players[id])
	}
	return out
}

type Loader struct {
	source Source
	names  DocumentNames
	logger *logging.Logger
	now    func() time.Time
}

func NewLoader(source Source, names DocumentNames, logger *logging.Logger) *Loader {
	if logger == nil {
		logger = logging.Default()
	}
	return &Loader{
		source: source,
		names:  names,
		logger: logger.Named("dataset"),
		now:    time.Now,
	}
}

// Load fetches all four documents concurrently and joins them. Any single
// failure fails the whole load; no partial dataset is returned.
func (l *Loader) Load(ctx context.Context) (Dataset, error) {
	ctx, span := tracer.Start(ctx, "dataset.Loader.Load")
	defer span.End()

	started := l.now()
	var docs Documents

	p := pool.New().WithErrors().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error { return l.fetch(ctx, l.names.Master, &docs.Master) })
	p.Go(func(ctx context.Context) error { return l.fetch(ctx, l.names.Historical, &docs.Historical) })
	p.Go(func(ctx context.Context) error { return l.fetch(ctx, l.names.ADP, &docs.ADP) })
	p.Go(func(ctx context.Context) error { return l.fetch(ctx, l.names.Buckets, &docs.Buckets) })
	if err := p.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		l.logger.ErrorContext(ctx, "dataset load failed", "error", err)
		return Dataset{}, err
	}

	players, order := Join(docs)
	invalid := 0
	for _, id := range order {
		if err := players[id].Validate(); err != nil {
			invalid++
			l.logger.DebugContext(ctx, "player failed validation", "player_id", id, "error", err)
		}
	}
	if invalid > 0 {
		l.logger.WarnContext(ctx, "players with incomplete registry data", "count", invalid)
	}

	span.SetAttributes(attribute.Int("dataset.players", len(order)))
	l.logger.InfoContext(ctx, "dataset loaded",
		"players", len(order),
		"duration_ms", time.Since(started).Milliseconds(),
	)

	return Dataset{
		Players:  players,
		Order:    order,
		LoadedAt: l.now(),
	}, nil
}

func (l *Loader) fetch(ctx context.Context, name string, into any) error {
	ctx, span := tracer.Start(ctx, "dataset.Loader.fetch")
	defer span.End()
	span.SetAttributes(attribute.String("dataset.document", name))

	rc, err := l.source.Open(ctx, name)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return crerr.Mark(crerr.Wrapf(err, "fetch %s", name), ErrLoadFailed)
	}
	defer rc.Close()

	body, err := io.ReadAll(rc)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return crerr.Mark(crerr.Wrapf(err, "read %s", name), ErrLoadFailed)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		err := crerr.Newf("document %s is empty", name)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return crerr.Mark(err, ErrLoadFailed)
	}

	// Unmarshal rejects bytes left after the first value.
	if err := jsoniter.Unmarshal(body, into); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return crerr.Mark(crerr.Wrapf(err, "decode %s", name), ErrLoadFailed)
	}

	l.logger.DebugContext(ctx, "document loaded", "document", name)
	return nil
}
