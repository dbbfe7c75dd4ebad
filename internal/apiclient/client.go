// Package apiclient reads the five OctoFit resources from the REST backend.
// Every call is a single unauthenticated GET without query parameters whose
// body must be a JSON array.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/nfrund/octofit/internal/domain"
)

// Resource names and their endpoint paths.
const (
	ResourceActivities  = "activities"
	ResourceLeaderboard = "leaderboard"
	ResourceTeams       = "teams"
	ResourceUsers       = "users"
	ResourceWorkouts    = "workouts"
)

// Paths maps each resource to its endpoint, relative to the base URL.
var Paths = map[string]string{
	ResourceActivities:  "api/activities/",
	ResourceLeaderboard: "api/leaderboard/",
	ResourceTeams:       "api/teams/",
	ResourceUsers:       "api/users/",
	ResourceWorkouts:    "api/workouts/",
}

// maxBodyBytes bounds how much of a response body is read.
const maxBodyBytes = 16 << 20

// Client is a read-only client for the OctoFit REST API.
type Client struct {
	base   *url.URL
	http   *http.Client
	tracer trace.Tracer
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTracer records one span per fetch on the given tracer.
func WithTracer(t trace.Tracer) Option {
	return func(c *Client) { c.tracer = t }
}

// New creates a Client for the API rooted at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse api base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("api base url %q must be absolute", baseURL)
	}
	c := &Client{
		base:   u,
		http:   http.DefaultClient,
		tracer: noop.NewTracerProvider().Tracer("octofit-apiclient"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// URL returns the absolute endpoint URL of a resource.
func (c *Client) URL(resource string) string {
	return c.base.JoinPath(Paths[resource]).String()
}

// Fetch GETs resource and decodes the body as a JSON array of T.
func Fetch[T any](ctx context.Context, c *Client, resource string) ([]T, error) {
	if _, ok := Paths[resource]; !ok {
		return nil, fmt.Errorf("unknown resource %q", resource)
	}
	endpoint := c.URL(resource)

	ctx, span := c.tracer.Start(ctx, "octofit.fetch."+resource,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", http.MethodGet),
			attribute.String("url.full", endpoint),
			attribute.String("octofit.resource", resource),
		),
	)
	defer span.End()

	records, err := fetch[T](ctx, c.http, resource, endpoint, span)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int("octofit.records", len(records)))
	return records, nil
}

func fetch[T any](ctx context.Context, hc *http.Client, resource, endpoint string, span trace.Span) ([]T, error) {
	fail := func(kind error, status int, err error) error {
		return &FetchError{Resource: resource, URL: endpoint, Kind: kind, Status: status, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fail(ErrNetwork, 0, err)
	}
	req.Header.Set("Accept", "application/json")
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	res, err := hc.Do(req)
	if err != nil {
		return nil, fail(ErrNetwork, 0, err)
	}
	defer res.Body.Close()
	span.SetAttributes(attribute.Int("http.response.status_code", res.StatusCode))

	if res.StatusCode < 200 || res.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(res.Body, maxBodyBytes))
		return nil, fail(ErrNetwork, res.StatusCode, errors.New(http.StatusText(res.StatusCode)))
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, maxBodyBytes))
	if err != nil {
		return nil, fail(ErrNetwork, res.StatusCode, err)
	}
	body = bytes.TrimSpace(body)
	if len(body) == 0 || body[0] != '[' {
		return nil, fail(ErrDecode, res.StatusCode, errors.New("body is not a JSON array"))
	}

	records := make([]T, 0)
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fail(ErrDecode, res.StatusCode, err)
	}
	return records, nil
}

// Activities reads /api/activities/.
func (c *Client) Activities(ctx context.Context) ([]domain.Activity, error) {
	return Fetch[domain.Activity](ctx, c, ResourceActivities)
}

// Leaderboard reads /api/leaderboard/ in server order.
func (c *Client) Leaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	return Fetch[domain.LeaderboardEntry](ctx, c, ResourceLeaderboard)
}

// Teams reads /api/teams/.
func (c *Client) Teams(ctx context.Context) ([]domain.Team, error) {
	return Fetch[domain.Team](ctx, c, ResourceTeams)
}

// Users reads /api/users/.
func (c *Client) Users(ctx context.Context) ([]domain.User, error) {
	return Fetch[domain.User](ctx, c, ResourceUsers)
}

// Workouts reads /api/workouts/.
func (c *Client) Workouts(ctx context.Context) ([]domain.Workout, error) {
	return Fetch[domain.Workout](ctx, c, ResourceWorkouts)
}
