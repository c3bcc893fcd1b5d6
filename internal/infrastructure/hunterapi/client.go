package hunterapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/huntermobile/hunter-go/internal/domain"
	"golang.org/x/time/rate"
)

// maxBodyBytes caps how much of a response body is read. Backend error
// payloads are tiny; search responses stay well under this.
const maxBodyBytes = 4 << 20

// Client handles communication with the Hunter REST API. Failures are never
// retried: a transient error surfaces to the user, who re-triggers the
// action manually.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	rateLimiter *rate.Limiter
}

// NewClient creates a Hunter API client for the given base URL. A zero
// timeout falls back to the transport default of 30 seconds.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	// Interactive use only: generous burst, modest sustained rate.
	limiter := rate.NewLimiter(rate.Limit(5), 10)

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:     strings.TrimRight(baseURL, "/"),
		rateLimiter: limiter,
	}
}

// do executes one request and decodes the JSON response into out (skipped
// when out is nil). token, when non-empty, is sent verbatim as the
// Authorization header.
func (c *Client) do(ctx context.Context, method, path, token, contentType string, body io.Reader, out any) error {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter error: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "HunterMobile/1.0")
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrAPIUnreachable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrAPIUnreachable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return backendError(resp.StatusCode, data)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// backendError extracts the backend's error message. FastAPI puts it in
// "detail"; older handlers used "message". Absence of both degrades to a
// generic status-based message via BackendError.Error.
func backendError(status int, body []byte) error {
	var envelope struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	_ = json.Unmarshal(body, &envelope)

	detail := envelope.Detail
	if detail == "" {
		detail = envelope.Message
	}
	return &domain.BackendError{StatusCode: status, Detail: detail}
}

func jsonBody(v any) (io.Reader, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}
	return bytes.NewReader(data), nil
}

// SearchProducts queries the public combined catalog search. The backend
// answers 404 when nothing matches; the client maps that single case to an
// empty result set, not an error.
func (c *Client) SearchProducts(ctx context.Context, name string) (*domain.ProductSearchResponse, error) {
	params := url.Values{}
	params.Set("nome", name)

	var out domain.ProductSearchResponse
	err := c.do(ctx, http.MethodGet, "/buscar-produtos?"+params.Encode(), "", "", nil, &out)
	if err != nil {
		var backendErr *domain.BackendError
		if errors.As(err, &backendErr) && backendErr.StatusCode == http.StatusNotFound {
			return &domain.ProductSearchResponse{}, nil
		}
		return nil, err
	}
	return &out, nil
}

// Register creates a new user account.
func (c *Client) Register(ctx context.Context, req domain.RegisterRequest) (*domain.MessageResponse, error) {
	body, err := jsonBody(req)
	if err != nil {
		return nil, err
	}
	var out domain.MessageResponse
	if err := c.do(ctx, http.MethodPost, "/cadastrar", "", "application/json", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login exchanges credentials for an access token. The endpoint is
// form-encoded and the email travels in the "username" field, per the
// backend's OAuth2 password flow.
func (c *Client) Login(ctx context.Context, email, password string) (*domain.LoginResponse, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	var out domain.LoginResponse
	err := c.do(ctx, http.MethodPost, "/login", "", "application/x-www-form-urlencoded",
		strings.NewReader(form.Encode()), &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateAlert registers a price alert for the authenticated user.
func (c *Client) CreateAlert(ctx context.Context, token string, req domain.AlertRequest) (*domain.MessageResponse, error) {
	body, err := jsonBody(req)
	if err != nil {
		return nil, err
	}
	var out domain.MessageResponse
	if err := c.do(ctx, http.MethodPost, "/alerta-preco", token, "application/json", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListAlerts returns the authenticated user's price alerts.
func (c *Client) ListAlerts(ctx context.Context, token string) ([]domain.AlertEntry, error) {
	var out []domain.AlertEntry
	if err := c.do(ctx, http.MethodGet, "/alertas", token, "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateAlert partially updates one price alert.
func (c *Client) UpdateAlert(ctx context.Context, token string, id int64, req domain.AlertUpdateRequest) (*domain.MessageResponse, error) {
	body, err := jsonBody(req)
	if err != nil {
		return nil, err
	}
	var out domain.MessageResponse
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/alerta/%d", id), token, "application/json", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteAlert removes one price alert.
func (c *Client) DeleteAlert(ctx context.Context, token string, id int64) (*domain.MessageResponse, error) {
	var out domain.MessageResponse
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/alerta/%d", id), token, "", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SendFeedback submits user feedback.
func (c *Client) SendFeedback(ctx context.Context, token string, req domain.FeedbackRequest) (*domain.MessageResponse, error) {
	body, err := jsonBody(req)
	if err != nil {
		return nil, err
	}
	var out domain.MessageResponse
	if err := c.do(ctx, http.MethodPost, "/feedback", token, "application/json", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListFeedbacks returns the authenticated user's feedback entries.
func (c *Client) ListFeedbacks(ctx context.Context, token string) ([]domain.FeedbackEntry, error) {
	var out []domain.FeedbackEntry
	if err := c.do(ctx, http.MethodGet, "/feedbacks", token, "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateFeedback rewrites the text of one feedback entry.
func (c *Client) UpdateFeedback(ctx context.Context, token string, id int64, req domain.FeedbackUpdateRequest) (*domain.MessageResponse, error) {
	body, err := jsonBody(req)
	if err != nil {
		return nil, err
	}
	var out domain.MessageResponse
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/feedback/%d", id), token, "application/json", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteFeedback removes one feedback entry.
func (c *Client) DeleteFeedback(ctx context.Context, token string, id int64) (*domain.MessageResponse, error) {
	var out domain.MessageResponse
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/feedback/%d", id), token, "", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateUser partially updates the authenticated user's profile.
func (c *Client) UpdateUser(ctx context.Context, token string, req domain.UserUpdateRequest) (*domain.MessageResponse, error) {
	body, err := jsonBody(req)
	if err != nil {
		return nil, err
	}
	var out domain.MessageResponse
	if err := c.do(ctx, http.MethodPut, "/usuario", token, "application/json", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteUser removes the authenticated user's account. Alerts and
// feedbacks cascade server-side.
func (c *Client) DeleteUser(ctx context.Context, token string) (*domain.MessageResponse, error) {
	var out domain.MessageResponse
	if err := c.do(ctx, http.MethodDelete, "/usuario", token, "", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
