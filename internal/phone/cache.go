package phone

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
)

const verdictTTL = 24 * time.Hour

// CachedVerifier memoizes verdicts in Redis so repeated submissions of the
// same number do not spend external API calls. Cache failures fall through
// to the inner verifier.
type CachedVerifier struct {
	inner Verifier
	rdb   *redis.Client
}

func NewCachedVerifier(inner Verifier, rdb *redis.Client) *CachedVerifier {
	return &CachedVerifier{inner: inner, rdb: rdb}
}

func cacheKey(number string) string {
	return "phone:verify:" + number
}

func (c *CachedVerifier) Verify(ctx context.Context, number string) (*Verification, error) {
	if raw, err := c.rdb.Get(ctx, cacheKey(number)).Result(); err == nil {
		var v Verification
		if err := json.Unmarshal([]byte(raw), &v); err == nil {
			return &v, nil
		}
	}

	v, err := c.inner.Verify(ctx, number)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(v); err == nil {
		c.rdb.Set(ctx, cacheKey(number), raw, verdictTTL)
	}

	return v, nil
}

var _ Verifier = (*CachedVerifier)(nil)
