package fileops

import (
	"context"
	"path/filepath"

	cerr "github.com/cockroachdb/errors"
	"github.com/spf13/afero"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/CodeMonkeyCybersecurity/helpers/pkg/helper_err"
)

// ErrCandidatesExhausted is returned when MaxAttempts candidates were all taken.
var ErrCandidatesExhausted = cerr.New("no available file name within the attempt limit")

const tracerName = "fileops"

// Resolver finds paths that do not collide with existing files.
// A Resolver holds no mutable state and may be shared between goroutines.
type Resolver struct {
	cfg    Config
	fsops  *FileSystemOperations
	tokens TokenSource
	log    *otelzap.Logger
	tracer trace.Tracer
}

// Option customises a Resolver.
type Option func(*resolverOptions)

type resolverOptions struct {
	fs     afero.Fs
	logger *zap.Logger
	tokens TokenSource
	tp     trace.TracerProvider
}

// WithFs probes fs instead of the OS filesystem.
func WithFs(fs afero.Fs) Option {
	return func(o *resolverOptions) { o.fs = fs }
}

// WithLogger logs through logger instead of the global otelzap logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *resolverOptions) { o.logger = logger }
}

// WithTokenSource replaces the token generator chosen by Config.TokenKind.
func WithTokenSource(tokens TokenSource) Option {
	return func(o *resolverOptions) { o.tokens = tokens }
}

// WithTracerProvider traces with tp instead of the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *resolverOptions) { o.tp = tp }
}

// NewResolver validates cfg and builds a Resolver.
func NewResolver(cfg Config, opts ...Option) (*Resolver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := resolverOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	log := otelzap.L()
	if o.logger != nil {
		log = otelzap.New(o.logger.Named("fileops"))
	}
	tokens := o.tokens
	if tokens == nil {
		tokens = cfg.tokenSource()
	}
	tp := o.tp
	if tp == nil {
		tp = otel.GetTracerProvider()
	}

	return &Resolver{
		cfg:    cfg,
		fsops:  NewFileSystemOperations(o.fs, log.Logger),
		tokens: tokens,
		log:    log,
		tracer: tp.Tracer(tracerName),
	}, nil
}

// UniqueFilePath returns a path inside dir, named after name, that does not
// currently exist. It uses DefaultConfig on the OS filesystem.
//
// The existence check and the caller's later use of the path are not atomic;
// use a Resolver with StrategyExclusive when several writers share dir.
func UniqueFilePath(dir, name string) (string, error) {
	r, err := NewResolver(DefaultConfig())
	if err != nil {
		return "", err
	}
	return r.Resolve(context.Background(), dir, name)
}

// Resolve walks the candidates for name inside dir and returns the first
// path that is free. With StrategyExclusive the returned path has been
// created as an empty file.
func (r *Resolver) Resolve(ctx context.Context, dir, name string) (path string, err error) {
	if dir == "" {
		return "", helper_err.NewInvalidArgumentError("dir", "must not be empty")
	}
	if name == "" {
		return "", helper_err.NewInvalidArgumentError("name", "must not be empty")
	}
	if !usableName(name) {
		return "", helper_err.NewInvalidArgumentError("name", "does not name a file: "+name)
	}

	ctx, span := r.tracer.Start(ctx, "Resolver.Resolve",
		trace.WithAttributes(
			attribute.String("dir", dir),
			attribute.String("name", name),
			attribute.String("strategy", string(r.cfg.Strategy)),
		),
	)
	defer span.End()

	logger := r.log.Ctx(ctx)
	attempts := 0
	defer func() {
		span.SetAttributes(attribute.Int("attempts", attempts))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return
		}
		span.SetAttributes(attribute.String("path", path))
	}()

	for candidate, genErr := range Candidates(name, r.tokens) {
		if genErr != nil {
			return "", genErr
		}
		if err := ctx.Err(); err != nil {
			return "", cerr.Wrapf(err, "resolve %s in %s", name, dir)
		}
		attempts++

		full := filepath.Join(dir, candidate)
		logger.Debug("Probing candidate", zap.String("path", full), zap.Int("attempt", attempts))

		free, err := r.claim(ctx, full)
		if err != nil {
			return "", err
		}
		if !free {
			if r.cfg.MaxAttempts > 0 && attempts >= r.cfg.MaxAttempts {
				logger.Warn("No free file name within attempt limit",
					zap.String("requested", name),
					zap.Int("max_attempts", r.cfg.MaxAttempts))
				return "", cerr.Wrapf(ErrCandidatesExhausted, "resolve %s in %s after %d attempts", name, dir, attempts)
			}
			continue
		}

		if attempts > 1 {
			logger.Info("Resolved colliding file name",
				zap.String("requested", name),
				zap.String("path", full),
				zap.Int("attempts", attempts))
		}
		return full, nil
	}

	// Candidates is unbounded; reaching here means the range was cut short.
	return "", cerr.AssertionFailedf("candidate sequence ended for %s", name)
}

func (r *Resolver) claim(ctx context.Context, path string) (bool, error) {
	if r.cfg.Strategy == StrategyExclusive {
		return r.fsops.CreateExclusive(ctx, path)
	}
	exists, err := r.fsops.Exists(ctx, path)
	if err != nil {
		return false, err
	}
	return !exists, nil
}
