package provider

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"f1charts/pkg/helper"
	"f1charts/pkg/logging"
	"f1charts/pkg/metrics"
	"f1charts/pkg/model"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

const (
	sourceNetwork = "network"
	sourceCache   = "cache"
)

type Client struct {
	baseURL string
	http    *http.Client
	cache   *Cache
}

type Option func(*Client)

// WithCache stores every successful response and serves it on later calls.
func WithCache(c *Cache) Option {
	return func(cl *Client) {
		cl.cache = c
	}
}

func WithHTTPClient(h *http.Client) Option {
	return func(cl *Client) {
		cl.http = h
	}
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) sessionURL(year, round int, sessionType string) string {
	return fmt.Sprintf("%s/sessions/%d/%d/%s", c.baseURL, year, round, url.PathEscape(sessionType))
}

func (c *Client) Session(ctx context.Context, year, round int, sessionType string) (*model.Session, error) {
	u := c.sessionURL(year, round, sessionType)

	s := &model.Session{}
	if err := c.getJSON(ctx, "session", u, s); err != nil {
		return nil, err
	}
	if len(s.Drivers) == 0 {
		return nil, errors.Wrapf(ErrNotFound, "session %s of round %d %d has no drivers", sessionType, round, year)
	}
	for i, d := range s.Drivers {
		if d.Abbreviation == "" {
			s.Drivers[i].Abbreviation = helper.GetDriverCodeName(d.FullName)
		}
	}
	return s, nil
}

func (c *Client) Telemetry(ctx context.Context, year, round int, sessionType, driver string, lap int) ([]model.LapTelemetrySample, error) {
	u := fmt.Sprintf("%s/laps/%s/%d/telemetry", c.sessionURL(year, round, sessionType), url.PathEscape(driver), lap)

	samples := []model.LapTelemetrySample{}
	if err := c.getJSON(ctx, "telemetry", u, &samples); err != nil {
		return nil, err
	}
	if len(samples) == 0 {
		return nil, errors.Wrapf(ErrNotFound, "lap %d of %s has no telemetry", lap, driver)
	}
	return samples, nil
}

func (c *Client) getJSON(ctx context.Context, what, u string, v any) error {
	body, source, err := c.fetch(ctx, what, u)
	if err != nil {
		return err
	}
	metrics.ProviderRequests.WithLabelValues(what, source).Inc()

	if err := json.Unmarshal(body, v); err != nil {
		return errors.Wrapf(err, "decoding %s (%s)", what, u)
	}
	return nil
}

func (c *Client) fetch(ctx context.Context, what, u string) ([]byte, string, error) {
	if c.cache != nil {
		body, ok, err := c.cache.Get(u)
		if err != nil {
			logging.Ctx(ctx).Warn().Err(err).Str("url", u).Msg("provider cache read failed")
		} else if ok {
			return body, sourceCache, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, "", errors.Wrapf(err, "building %s request", what)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, "", errors.Wrapf(err, "error getting %s", what)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, "", errors.Wrapf(ErrNotFound, "error getting %s: %s (%s)", what, resp.Status, u)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, "", errors.Errorf("error getting %s: %s (%s)", what, resp.Status, u)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", errors.Wrapf(err, "reading %s", what)
	}

	if c.cache != nil {
		if err := c.cache.Put(u, body); err != nil {
			logging.Ctx(ctx).Warn().Err(err).Str("url", u).Msg("provider cache write failed")
		}
	}
	return body, sourceNetwork, nil
}
