package poller

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	logger "github.com/sirupsen/logrus"

	"polydash/src/model"
)

const defaultBaseURL = "http://localhost:8080"

// Client talks to the dashboard's own aggregation endpoints.
type Client struct {
	baseURL string
	http    *resty.Client
}

func NewClient(baseURL string) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultBaseURL
		logger.Warnf("No base URL provided, using default: %s", baseURL)
	}
	baseURL = strings.TrimRight(baseURL, "/")

	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second)

	return &Client{
		baseURL: baseURL,
		http:    httpClient,
	}
}

// FetchStatus calls GET /status.
func (c *Client) FetchStatus(ctx context.Context) (*model.StatusResponse, error) {
	var out model.StatusResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/status")
	if err != nil {
		return nil, fmt.Errorf("status request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("status request failed: %s", resp.Status())
	}
	if !out.OK {
		return nil, errors.New("status response not ok")
	}
	return &out, nil
}

// FetchTrades calls GET /trades?limit=N.
func (c *Client) FetchTrades(ctx context.Context, limit int) ([]model.TradeEntry, error) {
	var out model.TradesResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("limit", strconv.Itoa(limit)).
		SetResult(&out).
		Get("/trades")
	if err != nil {
		return nil, fmt.Errorf("trades request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("trades request failed: %s", resp.Status())
	}
	if !out.OK {
		return nil, errors.New("trades response not ok")
	}
	return out.Trades, nil
}

// FetchPositions calls GET /positions.
func (c *Client) FetchPositions(ctx context.Context) ([]model.TraderPositions, error) {
	var out model.PositionsResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/positions")
	if err != nil {
		return nil, fmt.Errorf("positions request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("positions request failed: %s", resp.Status())
	}
	if !out.OK {
		return nil, errors.New("positions response not ok")
	}
	return out.PositionsByTrader, nil
}
