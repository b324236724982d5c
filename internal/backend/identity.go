package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const defaultIdentityBaseURL = "https://identitytoolkit.googleapis.com/v1"

// identityClient speaks the Identity Toolkit REST surface, keyed by the
// project's web API key. The admin SDK deliberately has no password
// sign-in, so account operations go through this endpoint set, exactly the
// ones the provider offers a client: signUp, signInWithPassword, update and
// sendOobCode.
type identityClient struct {
	apiKey  string
	baseURL string
	httpc   *http.Client
}

func newIdentityClient(apiKey string) *identityClient {
	return &identityClient{
		apiKey:  apiKey,
		baseURL: defaultIdentityBaseURL,
		httpc:   &http.Client{Timeout: 15 * time.Second},
	}
}

type identityError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// post sends one REST call and decodes the response into out (may be nil).
// Provider-rejected calls come back as *AuthError.
func (c *identityClient) post(ctx context.Context, endpoint string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding %s request: %w", endpoint, err)
	}

	u := fmt.Sprintf("%s/%s?key=%s", c.baseURL, endpoint, url.QueryEscape(c.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var ie identityError
		if err := json.NewDecoder(resp.Body).Decode(&ie); err != nil || ie.Error.Message == "" {
			return fmt.Errorf("%s failed with status %d", endpoint, resp.StatusCode)
		}
		return &AuthError{Code: ie.Error.Message}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", endpoint, err)
	}
	return nil
}

type tokenResponse struct {
	IDToken      string `json:"idToken"`
	Email        string `json:"email"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    string `json:"expiresIn"`
	LocalID      string `json:"localId"`
	DisplayName  string `json:"displayName"`
}

func (c *identityClient) signUp(ctx context.Context, email, password string) (*Session, error) {
	var tr tokenResponse
	err := c.post(ctx, "accounts:signUp", map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}, &tr)
	if err != nil {
		return nil, err
	}
	return sessionFromToken(&tr), nil
}

func (c *identityClient) signInWithPassword(ctx context.Context, email, password string) (*Session, error) {
	var tr tokenResponse
	err := c.post(ctx, "accounts:signInWithPassword", map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}, &tr)
	if err != nil {
		return nil, err
	}
	return sessionFromToken(&tr), nil
}

func (c *identityClient) updateDisplayName(ctx context.Context, idToken, displayName string) error {
	return c.post(ctx, "accounts:update", map[string]any{
		"idToken":           idToken,
		"displayName":       displayName,
		"returnSecureToken": false,
	}, nil)
}

func (c *identityClient) sendOobCode(ctx context.Context, body map[string]any) error {
	return c.post(ctx, "accounts:sendOobCode", body, nil)
}

// sessionFromToken builds a Session from the token response. Expiry and
// verification state are read from the ID token's claims where possible;
// the token is not signature-checked here, the provider already vouched
// for it on this response.
func sessionFromToken(tr *tokenResponse) *Session {
	s := &Session{
		UserID:       tr.LocalID,
		Email:        tr.Email,
		DisplayName:  tr.DisplayName,
		IDToken:      tr.IDToken,
		RefreshToken: tr.RefreshToken,
	}

	if secs, err := strconv.Atoi(tr.ExpiresIn); err == nil {
		s.ExpiresAt = time.Now().Add(time.Duration(secs) * time.Second)
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tr.IDToken, claims); err == nil {
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			s.ExpiresAt = exp.Time
		}
		if v, ok := claims["email_verified"].(bool); ok {
			s.EmailVerified = v
		}
		if s.UserID == "" {
			if sub, err := claims.GetSubject(); err == nil {
				s.UserID = sub
			}
		}
	}

	return s
}
