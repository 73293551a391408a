package ports

import "context"

// LoginLimiter throttles repeated login attempts for a key (the submitted
// email). Implementations must fail open: an infrastructure error should not
// lock users out.
type LoginLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}
