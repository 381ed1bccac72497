// Package api is the REST client for the storefront backend. The backend is
// an external collaborator; this package only speaks its wire contract and
// classifies its failures, it implements no business rules.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/promoshop/storefront/internal/catalog"
)

const userAgent = "PromoShop-Storefront/1.0"

// TokenProvider supplies the opaque bearer credential for authenticated
// calls. The session store is the production implementation.
type TokenProvider interface {
	Token() string
}

// Client talks to the storefront backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	tokens     TokenProvider
	logger     zerolog.Logger
}

// Config controls client construction.
type Config struct {
	BaseURL string
	// Timeout bounds each request. Zero means no timeout; a hung request
	// then blocks only its caller, matching the backend's own contract.
	Timeout time.Duration
	// RequestsPerSecond throttles outbound calls. Zero disables throttling.
	RequestsPerSecond int
}

// NewClient creates a backend client. tokens may be nil for a public-only
// client; authenticated calls then fail with ErrUnauthorized.
func NewClient(cfg Config, tokens TokenProvider) *Client {
	limit := rate.Inf
	burst := 1
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
		burst = cfg.RequestsPerSecond
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(limit, burst),
		tokens:     tokens,
		logger:     log.With().Str("component", "api_client").Logger(),
	}
}

// Promotions fetches the full public promotion list.
func (c *Client) Promotions(ctx context.Context) ([]catalog.Promotion, error) {
	var out []catalog.Promotion
	if err := c.do(ctx, http.MethodGet, "/api/promocoes", nil, false, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreatePromotion creates a promotion and returns the server-assigned record.
func (c *Client) CreatePromotion(ctx context.Context, in PromotionInput) (catalog.Promotion, error) {
	var out catalog.Promotion
	err := c.do(ctx, http.MethodPost, "/api/promocoes", in, true, &out)
	return out, err
}

// UpdatePromotion updates the promotion identified by id. The identifier
// lives in the URL, never in the body, so the server-assigned id survives the
// edit round-trip untouched.
func (c *Client) UpdatePromotion(ctx context.Context, id string, in PromotionInput) error {
	return c.do(ctx, http.MethodPut, "/api/promocoes/"+id, in, true, nil)
}

// DeletePromotion deletes the promotion identified by id.
func (c *Client) DeletePromotion(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/promocoes/"+id, nil, true, nil)
}

// ActiveCoupons fetches the public coupon list, which the backend already
// restricts to active coupons.
func (c *Client) ActiveCoupons(ctx context.Context) ([]catalog.Coupon, error) {
	var out []catalog.Coupon
	if err := c.do(ctx, http.MethodGet, "/api/cupons", nil, false, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AllCoupons fetches the panel coupon list, expired coupons included.
func (c *Client) AllCoupons(ctx context.Context) ([]catalog.Coupon, error) {
	var out []catalog.Coupon
	if err := c.do(ctx, http.MethodGet, "/api/cupons/painel", nil, true, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateCoupon creates a coupon.
func (c *Client) CreateCoupon(ctx context.Context, in CouponInput) (catalog.Coupon, error) {
	var out catalog.Coupon
	err := c.do(ctx, http.MethodPost, "/api/cupons", in, true, &out)
	return out, err
}

// UpdateCoupon updates the coupon identified by id.
func (c *Client) UpdateCoupon(ctx context.Context, id string, in CouponInput) error {
	return c.do(ctx, http.MethodPut, "/api/cupons/"+id, in, true, nil)
}

// DeleteCoupon deletes the coupon identified by id.
func (c *Client) DeleteCoupon(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/cupons/"+id, nil, true, nil)
}

// Login exchanges credentials for an opaque token. A rejected credential is
// reported through the backend's own message, never as ErrUnauthorized:
// there is no session to renew yet, so a re-authenticate signal here would
// send the caller in a circle.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	payload, err := json.Marshal(loginRequest{Username: username, Password: password})
	if err != nil {
		return "", fmt.Errorf("encode login request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/admin/login", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	// The backend answers either {token} or {error}, on success and failure
	// statuses alike, so decode the body before judging the status code.
	var out loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil && resp.StatusCode < 400 {
		return "", fmt.Errorf("decode login response: %w", err)
	}
	if out.Token != "" {
		return out.Token, nil
	}
	if out.Error != "" {
		return "", fmt.Errorf("login rejected: %s", out.Error)
	}
	return "", fmt.Errorf("login rejected (status %d)", resp.StatusCode)
}

// Me fetches the account behind the current token.
func (c *Client) Me(ctx context.Context) (catalog.Admin, error) {
	var out catalog.Admin
	err := c.do(ctx, http.MethodGet, "/api/admin/me", nil, true, &out)
	return out, err
}

// Admins fetches every back-office account.
func (c *Client) Admins(ctx context.Context) ([]catalog.Admin, error) {
	var out []catalog.Admin
	if err := c.do(ctx, http.MethodGet, "/api/admin/all", nil, true, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Admin fetches one account by id.
func (c *Client) Admin(ctx context.Context, id string) (catalog.Admin, error) {
	var out catalog.Admin
	err := c.do(ctx, http.MethodGet, "/api/admin/"+id, nil, true, &out)
	return out, err
}

// RegisterAdmin creates a back-office account.
func (c *Client) RegisterAdmin(ctx context.Context, in RegisterInput) error {
	return c.do(ctx, http.MethodPost, "/api/admin/register", in, false, nil)
}

// UpdateSelf updates the authenticated account. The backend re-checks the
// current password and answers 401 when it does not match.
func (c *Client) UpdateSelf(ctx context.Context, in AdminUpdateInput) error {
	return c.do(ctx, http.MethodPut, "/api/admin/update", in, true, nil)
}

// DeleteAdmin deletes the account identified by id.
func (c *Client) DeleteAdmin(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/admin/"+id, nil, true, nil)
}

// do performs one request/response round-trip. There is deliberately no
// retry of any kind: a failed mutation must stay failed until the user
// re-triggers it.
func (c *Client) do(ctx context.Context, method, path string, body any, authed bool, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if authed {
		token := ""
		if c.tokens != nil {
			token = c.tokens.Token()
		}
		if token == "" {
			return ErrUnauthorized
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug().Err(err).Str("method", method).Str("path", path).Msg("Request failed")
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		io.Copy(io.Discard, resp.Body)
		return ErrUnauthorized
	}
	if resp.StatusCode >= 400 {
		return &StatusError{StatusCode: resp.StatusCode, Message: decodeErrorMessage(resp.Body)}
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// decodeErrorMessage pulls the backend's error text out of a failure body.
// Some routes use `error`, older ones `mensagem`.
func decodeErrorMessage(r io.Reader) string {
	var payload struct {
		Error    string `json:"error"`
		Mensagem string `json:"mensagem"`
	}
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return ""
	}
	if payload.Error != "" {
		return payload.Error
	}
	return payload.Mensagem
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
	Error string `json:"error"`
}
