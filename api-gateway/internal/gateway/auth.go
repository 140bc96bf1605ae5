package gateway

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrInvalidToken = errors.New("invalid or expired token")

type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (*Identity, error)
}

// IdentityCache keeps verified identities so each request does not hit the
// auth provider. Keys are hashes of the raw token.
type IdentityCache interface {
	Get(ctx context.Context, token string) (*Identity, bool)
	Set(ctx context.Context, token string, identity *Identity) error
}

// AuthVerifier checks bearer tokens against the external auth provider's
// verify endpoint, with a cache in front.
type AuthVerifier struct {
	VerifyURL string
	Client    HTTPClient
	Cache     IdentityCache
}

func NewAuthVerifier(verifyURL string, client HTTPClient, cache IdentityCache) *AuthVerifier {
	return &AuthVerifier{VerifyURL: verifyURL, Client: client, Cache: cache}
}

func (v *AuthVerifier) VerifyToken(ctx context.Context, token string) (*Identity, error) {
	if v.Cache != nil {
		if identity, ok := v.Cache.Get(ctx, token); ok {
			return identity, nil
		}
	}

	payload, err := json.Marshal(map[string]string{"token": token})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.VerifyURL, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := v.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("auth provider unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, ErrInvalidToken
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("auth provider returned status %d", resp.StatusCode)
	}

	var identity Identity
	if err := json.NewDecoder(resp.Body).Decode(&identity); err != nil {
		return nil, fmt.Errorf("failed to decode auth response: %w", err)
	}
	if identity.ID == "" {
		return nil, ErrInvalidToken
	}

	if v.Cache != nil {
		if err := v.Cache.Set(ctx, token, &identity); err != nil {
			log.Printf("Warning: failed to cache identity: %v", err)
		}
	}
	return &identity, nil
}

var _ TokenVerifier = (*AuthVerifier)(nil)

type RedisIdentityCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisIdentityCache(client *redis.Client, ttl time.Duration) *RedisIdentityCache {
	return &RedisIdentityCache{Client: client, TTL: ttl}
}

func tokenKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "auth:token:" + hex.EncodeToString(sum[:])
}

func (c *RedisIdentityCache) Get(ctx context.Context, token string) (*Identity, bool) {
	payload, err := c.Client.Get(ctx, tokenKey(token)).Bytes()
	if err != nil {
		return nil, false
	}
	var identity Identity
	if err := json.Unmarshal(payload, &identity); err != nil {
		return nil, false
	}
	return &identity, true
}

func (c *RedisIdentityCache) Set(ctx context.Context, token string, identity *Identity) error {
	payload, err := json.Marshal(identity)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, tokenKey(token), payload, c.TTL).Err()
}

var _ IdentityCache = (*RedisIdentityCache)(nil)
