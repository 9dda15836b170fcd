package predictor

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

// Client calls the remote diabetes risk prediction service. One submission
// maps to exactly one /predict call; failures are terminal for that
// submission and are never retried here.
type Client struct {
	http   *resty.Client
	logger zerolog.Logger
}

// New creates a predictor client. apiKey may be empty in development; the
// model service enforces it in production deployments.
func New(baseURL, apiKey string, timeout time.Duration, logger zerolog.Logger) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if apiKey != "" {
		c.SetHeader("X-API-Key", apiKey)
	}

	return &Client{http: c, logger: logger}
}

// Predict submits patient metrics and returns the model's risk assessment.
func (c *Client) Predict(ctx context.Context, req *Request) (*Response, error) {
	var (
		result Response
		apiErr errorBody
	)

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&result).
		SetError(&apiErr).
		Post("/predict")
	if err != nil {
		c.logger.Error().Err(err).Msg("prediction request failed")
		return nil, fmt.Errorf("call prediction service: %w", err)
	}

	if resp.IsError() {
		msg := apiErr.Error
		if msg == "" {
			msg = resp.Status()
		}
		c.logger.Error().
			Int("status", resp.StatusCode()).
			Str("error", msg).
			Msg("prediction service returned error")
		return nil, fmt.Errorf("prediction service: %s", msg)
	}

	c.logger.Debug().
		Float64("risk_score", result.RiskScore).
		Str("risk_category", result.RiskCategory).
		Msg("prediction received")

	return &result, nil
}

// Healthy reports whether the prediction service is reachable and has its
// model loaded.
func (c *Client) Healthy(ctx context.Context) error {
	var body healthBody
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&body).
		Get("/health")
	if err != nil {
		return fmt.Errorf("call prediction service health: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("prediction service health: %s", resp.Status())
	}
	if !body.ModelLoaded {
		return fmt.Errorf("prediction service model not loaded")
	}
	return nil
}
