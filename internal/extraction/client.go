// Package extraction turns uploaded documents into structured log records
// through a generative model.
package extraction

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/heartmarshall/fairway-backend/internal/config"
	"github.com/heartmarshall/fairway-backend/internal/domain"
	"github.com/heartmarshall/fairway-backend/internal/retry"
)

// Request is one generation call.
type Request struct {
	System string
	Prompt string
	Parts  []Part
}

// Generator is the model backend. Implementations return errors as
// *domain.ExtractionError so the client can tell transient failures apart.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// Client validates documents, calls the Generator under a retry policy and
// normalizes what comes back.
type Client struct {
	gen        Generator
	log        *slog.Logger
	maxPayload int64
	policy     retry.Policy
	now        func() time.Time
}

// Option configures a Client.
type Option func(*Client)

// WithClock overrides the clock used for the default record date.
func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

// NewClient creates a Client. A nil gen makes every call fail with an
// authorization error, which is how a missing API key surfaces.
func NewClient(gen Generator, log *slog.Logger, cfg config.ExtractionConfig, opts ...Option) *Client {
	c := &Client{
		gen:        gen,
		log:        log.With("service", "extraction"),
		maxPayload: cfg.MaxPayloadBytes,
		now:        time.Now,
	}
	c.policy = retry.Policy{
		MaxAttempts: cfg.MaxAttempts,
		BaseDelay:   cfg.BaseDelay,
		MaxDelay:    cfg.MaxDelay,
		Jitter:      cfg.Jitter,
		Retryable: func(err error) bool {
			return domain.ExtractionCategoryOf(err).Transient()
		},
		OnRetry: func(err error, attempt int, wait time.Duration) {
			c.log.Warn("extraction attempt failed, retrying",
				slog.Int("attempt", attempt),
				slog.Duration("wait", wait),
				slog.String("error", err.Error()),
			)
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Extract returns the records found in docs. existingNames are the current
// course names; the model reuses them for fuzzy matches.
//
// Every failure is a *domain.ExtractionError except context cancellation,
// which is returned as is.
func (c *Client) Extract(ctx context.Context, docs []Document, existingNames []string) ([]domain.ExtractedRecord, error) {
	parts, err := prepare(docs, c.maxPayload)
	if err != nil {
		return nil, err
	}
	if c.gen == nil {
		return nil, domain.NewExtractionError(domain.CategoryAuthorization,
			errors.New("extraction backend is not configured"))
	}

	today := c.now().Format(domain.DateLayout)
	req := Request{
		System: systemPrompt,
		Prompt: buildPrompt(existingNames, today),
		Parts:  parts,
	}

	start := time.Now()
	text, err := retry.Do(ctx, c.policy, func(ctx context.Context) (string, error) {
		return c.gen.Generate(ctx, req)
	})
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		var ee *domain.ExtractionError
		if !errors.As(err, &ee) {
			err = domain.NewExtractionError(domain.CategoryUnknown, err)
		}
		c.log.ErrorContext(ctx, "extraction failed",
			slog.String("category", domain.ExtractionCategoryOf(err).String()),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	records, err := parseRecords(text, today)
	if err != nil {
		c.log.ErrorContext(ctx, "extraction response rejected", slog.String("error", err.Error()))
		return nil, err
	}

	c.log.InfoContext(ctx, "documents extracted",
		slog.Int("documents", len(parts)),
		slog.Int("records", len(records)),
		slog.Duration("took", time.Since(start)),
	)
	return records, nil
}
