package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Domenick1991/bookingcheck/config"
	"github.com/Domenick1991/bookingcheck/internal/domain"
	"github.com/redis/go-redis/v9"
)

// RedisCache stores decisions keyed by request and reference date. The date is
// part of the key because the departure-in-the-past rule depends on it.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(cfg config.RedisConfig, ttl time.Duration) *RedisCache {
	return &RedisCache{
		client: redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		ttl:    ttl,
	}
}

type cachedDecision struct {
	Accepted bool   `json:"accepted"`
	Code     string `json:"code,omitempty"`
	Reason   string `json:"reason,omitempty"`
}

// GetDecision returns (decision, true, nil) on a hit and (_, false, nil) on a miss.
func (c *RedisCache) GetDecision(ctx context.Context, req domain.BookingRequest, referenceDate string) (domain.Decision, bool, error) {
	data, err := c.client.Get(ctx, decisionKey(req, referenceDate)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.Decision{}, false, nil
		}
		return domain.Decision{}, false, err
	}

	d, err := decodeDecision(data)
	if err != nil {
		return domain.Decision{}, false, err
	}
	return d, true, nil
}

func (c *RedisCache) SetDecision(ctx context.Context, req domain.BookingRequest, referenceDate string, d domain.Decision) error {
	payload, err := encodeDecision(d)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, decisionKey(req, referenceDate), payload, c.ttl).Err()
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func encodeDecision(d domain.Decision) ([]byte, error) {
	return json.Marshal(cachedDecision{
		Accepted: d.IsAccepted(),
		Code:     string(d.Code()),
		Reason:   d.Reason(),
	})
}

func decodeDecision(data []byte) (domain.Decision, error) {
	var cd cachedDecision
	if err := json.Unmarshal(data, &cd); err != nil {
		return domain.Decision{}, fmt.Errorf("decode cached decision: %w", err)
	}
	if cd.Accepted {
		return domain.Accepted(), nil
	}
	return domain.Rejected(domain.ReasonCode(cd.Code), cd.Reason), nil
}

// decisionKey hashes every request field verbatim: codes and classes keep
// their case because rejection messages echo the supplied text.
func decisionKey(req domain.BookingRequest, referenceDate string) string {
	raw, _ := json.Marshal(req)
	sum := sha256.Sum256(raw)
	return fmt.Sprintf("cache:decision:%s:%s", referenceDate, hex.EncodeToString(sum[:]))
}
