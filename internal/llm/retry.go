package llm

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"

	"github.com/impa-jovem/impa/internal/logging"
)

// RetryProvider retries transient failures with exponential backoff and
// ±20% jitter.
type RetryProvider struct {
	inner  Provider
	config RetryConfig
	log    *logging.Logger
}

// WithRetry wraps p. A nil logger discards retry notices.
func WithRetry(p Provider, cfg RetryConfig, log *logging.Logger) Provider {
	if log == nil {
		log = logging.Nop()
	}
	cfg.MaxAttempts = max(cfg.MaxAttempts, 1)
	return &RetryProvider{inner: p, config: cfg, log: log}
}

func (r *RetryProvider) ModelID() string { return r.inner.ModelID() }

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var (
		err            error
		invalidRetried bool
	)
	for attempt := 0; attempt < r.config.MaxAttempts; attempt++ {
		if attempt > 0 {
			wait := r.backoff(attempt-1, err)
			r.log.Debug("retrying LLM request", "model", r.inner.ModelID(), "attempt", attempt+1, "wait", wait, "error", err)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(wait):
			}
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}

		var resp *Response
		if resp, err = r.inner.Generate(ctx, req); err == nil {
			return resp, nil
		}

		var inv *ErrInvalidResponse
		switch {
		case errors.As(err, &inv):
			// A model that ignored the schema gets one more chance.
			if invalidRetried {
				return nil, err
			}
			invalidRetried = true
		case !transient(err):
			return nil, err
		}
	}
	return nil, err
}

// transient reports whether another attempt may succeed. Context errors
// and truncated output are final.
func transient(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var maxTok *ErrMaxTokensExceeded
	return !errors.As(err, &maxTok)
}

// backoff is the wait after the given failed attempt (0-based). A
// provider's Retry-After wins, capped at MaxWait.
func (r *RetryProvider) backoff(attempt int, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return min(rl.RetryAfter, r.config.MaxWait)
	}

	wait := float64(r.config.InitialWait)
	for range attempt {
		wait *= r.config.Multiplier
	}
	wait = min(wait, float64(r.config.MaxWait))
	wait *= 1 + 0.2*(2*rand.Float64()-1)
	return time.Duration(max(wait, 0))
}
