package phone

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/agendaplus/booking-api/internal/config"
	"github.com/agendaplus/booking-api/internal/httperr"
)

// NumVerifyClient verifies phone numbers against the NumVerify API.
type NumVerifyClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

func NewNumVerifyClient(cfg *config.Config) *NumVerifyClient {
	return &NumVerifyClient{
		apiKey:  cfg.NumVerifyKey,
		baseURL: cfg.NumVerifyURL,
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type numVerifyResponse struct {
	Valid       bool   `json:"valid"`
	CountryCode string `json:"country_code"`
	LineType    string `json:"line_type"`

	Success *bool `json:"success,omitempty"`
	Error   *struct {
		Code int    `json:"code"`
		Info string `json:"info"`
	} `json:"error,omitempty"`
}

func (c *NumVerifyClient) Verify(ctx context.Context, number string) (*Verification, error) {
	q := url.Values{}
	q.Set("access_key", c.apiKey)
	q.Set("number", number)
	q.Set("country_code", CountryBR)
	q.Set("format", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, httperr.ErrUpstream("phone_number", "Phone verification request could not be built.")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, httperr.ErrUpstream("phone_number", "Phone verification service unreachable.")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, httperr.ErrUpstream("phone_number",
			fmt.Sprintf("Phone verification service returned status %d.", resp.StatusCode))
	}

	var body numVerifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, httperr.ErrUpstream("phone_number", "Phone verification response could not be decoded.")
	}

	// NumVerify reports API-level failures with 200 + an error envelope.
	if body.Success != nil && !*body.Success {
		info := "unknown error"
		if body.Error != nil {
			info = body.Error.Info
		}
		return nil, httperr.ErrUpstream("phone_number",
			fmt.Sprintf("Phone verification failed: %s", info))
	}

	return &Verification{
		Valid:       body.Valid,
		CountryCode: body.CountryCode,
		LineType:    body.LineType,
	}, nil
}

var _ Verifier = (*NumVerifyClient)(nil)
