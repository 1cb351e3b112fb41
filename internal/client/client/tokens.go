package client

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/gophforum/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/gophforum/internal/forumrpc"
)

var errSignedOut = errors.New("signed out during token refresh")

// Metadata keys of the persisted tokens.
const (
	AccessTokenKey  = "access_token"
	RefreshTokenKey = "refresh_token"
)

func (c *GRPCClient) tokens() (access, refresh string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.accessToken, c.refreshToken
}

// loadTokens restores tokens saved by a previous run.
func (c *GRPCClient) loadTokens(ctx context.Context, repo metadata.Repository) {
	access, err := repo.Get(ctx, AccessTokenKey)
	if err != nil {
		c.logger.Warn(ctx, "read access token", "error", err)
		return
	}
	refresh, err := repo.Get(ctx, RefreshTokenKey)
	if err != nil {
		c.logger.Warn(ctx, "read refresh token", "error", err)
		return
	}

	c.mu.Lock()
	c.accessToken = string(access)
	c.refreshToken = string(refresh)
	c.mu.Unlock()
}

// setTokens replaces the tokens in memory and persists them. Empty values
// delete the persisted copies.
func (c *GRPCClient) setTokens(ctx context.Context, access, refresh string) {
	c.mu.Lock()
	c.accessToken = access
	c.refreshToken = refresh
	c.mu.Unlock()

	c.persistTokens(ctx, access, refresh)
}

// dropTokens clears the tokens only while stale is still the current
// refresh token, so a pair rotated in the meantime survives.
func (c *GRPCClient) dropTokens(ctx context.Context, stale string) {
	c.mu.Lock()
	if c.refreshToken != stale {
		c.mu.Unlock()
		return
	}
	c.accessToken = ""
	c.refreshToken = ""
	c.mu.Unlock()

	c.persistTokens(ctx, "", "")
}

func (c *GRPCClient) persistTokens(ctx context.Context, access, refresh string) {
	if c.repo == nil {
		return
	}
	for key, value := range map[string]string{AccessTokenKey: access, RefreshTokenKey: refresh} {
		var err error
		if value == "" {
			err = c.repo.Delete(ctx, key)
		} else {
			err = c.repo.Set(ctx, key, []byte(value))
		}
		if err != nil {
			c.logger.Warn(ctx, "persist token", "key", key, "error", err)
		}
	}
}

// rotateTokens exchanges stale for a new pair and returns the new access
// token. Concurrent callers holding the same stale token share one
// RefreshToken call; callers arriving after it finished reuse its result.
func (c *GRPCClient) rotateTokens(ctx context.Context, stale string) (string, error) {
	v, err, _ := c.refreshing.Do(stale, func() (any, error) {
		if access, refresh := c.tokens(); refresh != stale {
			if access == "" {
				return "", errSignedOut
			}
			return access, nil
		}

		resp, err := c.client.RefreshToken(ctx, &forumrpc.RefreshTokenRequest{RefreshToken: stale})
		if err != nil {
			c.logger.Warn(ctx, "token refresh failed", "error", err)
			c.dropTokens(ctx, stale)
			return "", err
		}
		c.setTokens(ctx, resp.AccessToken, resp.RefreshToken)
		return resp.AccessToken, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}
