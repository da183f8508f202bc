package api

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"andaman/internal/domain"

	"github.com/go-resty/resty/v2"
)

// APIError carries the server's error envelope through to the UI so server
// messages can be passed along verbatim.
type APIError struct {
	HTTPStatus int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.HTTPStatus)
}

type errorEnvelope struct {
	Success bool `json:"success"`
	Error   struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Message string `json:"message"`
}

// Client is the vendor app's REST client.
type Client struct {
	http *resty.Client
}

func NewClient(baseURL, token string) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(20 * time.Second).
		SetHeader("User-Agent", "andaman-vendor-app/1.0")
	if token != "" {
		c.SetAuthToken(token)
	}
	return &Client{http: c}
}

// getJSON fetches url into out, converting non-2xx answers to *APIError.
func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(out).
		Get(url)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return toAPIError(resp)
	}
	return nil
}

func toAPIError(resp *resty.Response) error {
	var env errorEnvelope
	if err := json.Unmarshal(resp.Body(), &env); err == nil && env.Error.Message != "" {
		return &APIError{HTTPStatus: resp.StatusCode(), Code: env.Error.Code, Message: env.Error.Message}
	}
	return &APIError{HTTPStatus: resp.StatusCode()}
}

// URL builders for the dashboard's gated fetches. Each returns "" when the
// gate is closed, and Fetch treats "" as "do not request".

func ProfileURL(userID int64) string {
	return fmt.Sprintf("/api/vendors/profile?userId=%d", userID)
}

func StatsURL(enabled bool, userID int64) string {
	if !enabled {
		return ""
	}
	return fmt.Sprintf("/api/vendors/stats?userId=%d", userID)
}

func ServicesURL(enabled bool, userID int64, limit int) string {
	if !enabled {
		return ""
	}
	return fmt.Sprintf("/api/vendors/services?providerUserId=%d&limit=%d", userID, limit)
}

func BookingsURL(enabled bool, userID int64, limit int) string {
	if !enabled {
		return ""
	}
	return fmt.Sprintf("/api/vendors/bookings?vendorUserId=%d&limit=%d", userID, limit)
}

func ReviewsURL(enabled bool, userID int64, limit int) string {
	if !enabled {
		return ""
	}
	return fmt.Sprintf("/api/vendors/reviews?vendorUserId=%d&limit=%d", userID, limit)
}

func IslandsURL() string { return "/api/islands" }

// ProfileEnvelope is the profile endpoint's answer. Data stays nil when the
// request succeeded but no profile exists; callers must not collapse that
// into the error case.
type ProfileEnvelope struct {
	Success bool                  `json:"success"`
	Data    *domain.VendorProfile `json:"data"`
	Message string                `json:"message,omitempty"`
}

// BookingItem mirrors the bookings list projection.
type BookingItem struct {
	ID           int64     `json:"id"`
	ServiceID    int64     `json:"service_id"`
	ServiceName  string    `json:"service_name"`
	TravelerName string    `json:"traveler_name"`
	Date         time.Time `json:"date"`
	Guests       int       `json:"guests"`
	TotalAmount  float64   `json:"total_amount"`
	Status       string    `json:"status"`
}

// ReviewItem mirrors the reviews list projection.
type ReviewItem struct {
	ID           int64     `json:"id"`
	ServiceID    int64     `json:"service_id"`
	ServiceName  string    `json:"service_name"`
	TravelerName string    `json:"traveler_name"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type createEnvelope struct {
	Success bool `json:"success"`
	Data    struct {
		ID int64 `json:"id"`
	} `json:"data"`
	Message string `json:"message,omitempty"`
}

// CreateService posts the phase-1 payload and returns the new service id.
func (c *Client) CreateService(ctx context.Context, payload map[string]any) (int64, error) {
	var env createEnvelope
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(payload).
		SetResult(&env).
		Post("/api/vendor/my-services")
	if err != nil {
		return 0, err
	}
	if resp.IsError() {
		return 0, toAPIError(resp)
	}
	if env.Data.ID == 0 {
		return 0, &APIError{HTTPStatus: resp.StatusCode(), Message: "server did not return a service id"}
	}
	return env.Data.ID, nil
}

// AssociateImages sends the phase-2 PUT: {images: JSON-encoded []string}.
func (c *Client) AssociateImages(ctx context.Context, serviceID int64, imageURLs []string) error {
	encoded, err := json.Marshal(imageURLs)
	if err != nil {
		return err
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"images": string(encoded)}).
		Put(fmt.Sprintf("/api/vendor/my-services/%d", serviceID))
	if err != nil {
		return err
	}
	if resp.IsError() {
		return toAPIError(resp)
	}
	return nil
}

// ListIslands loads the island selector options.
func (c *Client) ListIslands(ctx context.Context) ([]domain.Island, error) {
	var out []domain.Island
	if err := c.getJSON(ctx, IslandsURL(), &out); err != nil {
		return nil, err
	}
	return out, nil
}
