package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/rovyapp/rovy-backend/internal/domain"
)

// Client verifies access tokens issued by the identity provider. With a
// JWT secret configured, tokens are checked locally; otherwise each check
// is a round trip to the provider's auth endpoint.
type Client struct {
	baseURL    string
	anonKey    string
	jwtSecret  string
	httpClient *http.Client
}

func NewClient(baseURL, anonKey, jwtSecret string) *Client {
	return &Client{
		baseURL:   baseURL,
		anonKey:   anonKey,
		jwtSecret: jwtSecret,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// AuthUser is the slice of the provider's user record we care about.
type AuthUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// VerifyToken resolves an access token to the provider's user. Invalid or
// expired tokens map to domain.ErrInvalidToken.
func (c *Client) VerifyToken(ctx context.Context, accessToken string) (*AuthUser, error) {
	if c.jwtSecret != "" {
		return c.verifyLocal(accessToken)
	}
	return c.fetchUser(ctx, accessToken)
}

func (c *Client) verifyLocal(accessToken string) (*AuthUser, error) {
	token, err := jwt.Parse(accessToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrInvalidToken
		}
		return []byte(c.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, domain.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrInvalidToken
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, domain.ErrInvalidToken
	}

	email, _ := claims["email"].(string)
	return &AuthUser{ID: sub, Email: email}, nil
}

func (c *Client) fetchUser(ctx context.Context, accessToken string) (*AuthUser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build auth request: %w", err)
	}
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("auth request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, domain.ErrInvalidToken
	default:
		return nil, fmt.Errorf("auth endpoint returned status %d", resp.StatusCode)
	}

	var user AuthUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("failed to decode auth response: %w", err)
	}
	if user.ID == "" {
		return nil, domain.ErrInvalidToken
	}
	return &user, nil
}
