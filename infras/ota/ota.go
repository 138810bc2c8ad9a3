package ota

//go:generate go run go.uber.org/mock/mockgen -source=./ota.go -destination=./mocks/ota_mock.go -package=mocks

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

	"stayledger/config"
	"stayledger/infras/otel"
	"stayledger/shared/constant"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

const (
	otelAttrChannel  = "ota.channel"
	otelAttrEndpoint = "ota.endpoint"

	maxErrorBody = 512
)

var (
	ErrUnknownChannel     = errors.New("ota: no provider configured for channel")
	ErrInvalidCredentials = errors.New("ota: credentials rejected")
	ErrUpstream           = errors.New("ota: upstream error")
)

// Credentials are what a hotelier hands over when connecting a channel.
type Credentials struct {
	APIKey          string `json:"api_key"`
	ExternalHotelID string `json:"external_hotel_id"`
}

// AvailabilityUpdate is one (mapping, date) cell pushed to the channel.
type AvailabilityUpdate struct {
	ExternalRoomID string `json:"room_id"`
	RatePlanID     string `json:"rate_plan_id,omitempty"`
	Date           string `json:"date"`
	Open           bool   `json:"open"`
	Price          int64  `json:"price"`
}

// Reservation is a booking created on the channel side.
type Reservation struct {
	ExternalBookingID string          `json:"id"`
	ExternalRoomID    string          `json:"room_id"`
	RatePlanID        string          `json:"rate_plan_id,omitempty"`
	CheckIn           string          `json:"check_in"`
	CheckOut          string          `json:"check_out"`
	GuestName         string          `json:"guest_name"`
	GuestPhone        string          `json:"guest_phone"`
	GuestEmail        string          `json:"guest_email"`
	GuestCount        int             `json:"guest_count"`
	TotalAmount       int64           `json:"total_amount"`
	Status            string          `json:"status"`
	CreatedAt         time.Time       `json:"created_at"`
	Raw               json.RawMessage `json:"-"`
}

type Provider interface {
	ValidateCredentials(ctx context.Context, creds Credentials) error
	PushAvailability(ctx context.Context, creds Credentials, updates []AvailabilityUpdate) error
	PullReservations(ctx context.Context, creds Credentials, since time.Time) ([]Reservation, error)
}

// Registry resolves the provider for a channel tag such as BOOKING_COM.
type Registry interface {
	Provider(channel string) (Provider, error)
}

type registryImpl struct {
	providers map[string]Provider
}

func NewRegistry(cfg *config.Config, otel otel.Otel) Registry {
	providers := make(map[string]Provider, len(cfg.Channel.BaseURLs))

	for channel, baseURL := range cfg.Channel.BaseURLs {
		providers[strings.ToUpper(channel)] = NewHTTPProvider(channel, baseURL, cfg, otel)

		log.Info().Str("channel", channel).Str("base_url", baseURL).Msg("OTA provider registered")
	}

	return &registryImpl{providers: providers}
}

func (r *registryImpl) Provider(channel string) (Provider, error) {
	p, ok := r.providers[strings.ToUpper(channel)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownChannel, channel)
	}

	return p, nil
}

type httpProvider struct {
	channel string
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
	otel    otel.Otel
}

// NewHTTPProvider speaks the common JSON dialect every configured channel gateway exposes.
func NewHTTPProvider(channel, baseURL string, cfg *config.Config, otel otel.Otel) Provider {
	rps := cfg.Channel.RequestsPerSecond
	if rps <= 0 {
		rps = 1
	}

	return &httpProvider{
		channel: channel,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: time.Duration(cfg.Channel.TimeoutSeconds) * time.Second},
		limiter: rate.NewLimiter(rate.Limit(rps), max(1, int(rps))),
		otel:    otel,
	}
}

func (p *httpProvider) ValidateCredentials(ctx context.Context, creds Credentials) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".ota.ValidateCredentials")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return p.do(ctx, scope, http.MethodPost, "/v1/credentials/validate", creds, map[string]string{
		"hotel_id": creds.ExternalHotelID,
	}, nil)
}

func (p *httpProvider) PushAvailability(ctx context.Context, creds Credentials, updates []AvailabilityUpdate) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".ota.PushAvailability")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	path := "/v1/hotels/" + url.PathEscape(creds.ExternalHotelID) + "/availability"

	return p.do(ctx, scope, http.MethodPut, path, creds, map[string]any{"updates": updates}, nil)
}

func (p *httpProvider) PullReservations(ctx context.Context, creds Credentials, since time.Time) (res []Reservation, err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".ota.PullReservations")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	path := "/v1/hotels/" + url.PathEscape(creds.ExternalHotelID) + "/reservations?" +
		url.Values{"since": {since.UTC().Format(time.RFC3339)}}.Encode()

	var body struct {
		Reservations []json.RawMessage `json:"reservations"`
	}

	if err = p.do(ctx, scope, http.MethodGet, path, creds, nil, &body); err != nil {
		return nil, err
	}

	res = make([]Reservation, 0, len(body.Reservations))

	for _, raw := range body.Reservations {
		var r Reservation
		if err := json.Unmarshal(raw, &r); err != nil {
			log.Warn().Err(err).Str("channel", p.channel).Msg("skipping malformed reservation")

			continue
		}

		r.Raw = raw
		res = append(res, r)
	}

	return res, nil
}

func (p *httpProvider) do(ctx context.Context, scope otel.Scope, method, path string, creds Credentials, in, out any) error {
	scope.SetAttributes(map[string]any{
		otelAttrChannel:  p.channel,
		otelAttrEndpoint: method + " " + path,
	})

	if err := p.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("ota: rate limiter: %w", err)
	}

	var reader io.Reader

	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("ota: encoding request: %w", err)
		}

		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, p.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("ota: building request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+creds.APIKey)
	req.Header.Set("Accept", "application/json")

	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := p.client.Do(req)
	if err != nil {
		log.Error().Err(err).Str("channel", p.channel).Str("path", path).Msg("OTA request failed")

		return fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading body: %w", ErrUpstream, err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return ErrInvalidCredentials
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		if len(body) > maxErrorBody {
			body = body[:maxErrorBody]
		}

		log.Error().Int("status", resp.StatusCode).Str("channel", p.channel).Str("path", path).Msg("OTA returned an error")

		return fmt.Errorf("%w: %s %d: %s", ErrUpstream, p.channel, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if out == nil || len(body) == 0 {
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: decoding response: %w", ErrUpstream, err)
	}

	return nil
}
