package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"stayledger/config"
	otelMocks "stayledger/infras/otel/mocks"
	cacheMocks "stayledger/shared/cache/mocks"
	"stayledger/shared/constant"
	"stayledger/transport/http/middleware"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestRateLimit(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60
	cfg.App.APIKey = "internal-key"

	tests := []struct {
		name          string
		headers       map[string]string
		mock          func(c *cacheMocks.MockRedisCache)
		wantCode      int
		wantRemaining string
	}{
		{
			name:    "within window",
			headers: map[string]string{constant.RequestHeaderForwardedFor: "10.0.0.1, 172.16.0.1"},
			mock: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Increment(gomock.Any(), "limiter:10.0.0.1:unknown", 60).Return(int64(1), nil)
			},
			wantCode:      http.StatusOK,
			wantRemaining: "1",
		},
		{
			name:    "over the limit",
			headers: map[string]string{constant.RequestHeaderRealIP: "10.0.0.2", constant.RequestHeaderUserAgent: "frontdesk"},
			mock: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Increment(gomock.Any(), "limiter:10.0.0.2:frontdesk", 60).Return(int64(3), nil)
			},
			wantCode:      http.StatusTooManyRequests,
			wantRemaining: "0",
		},
		{
			name:    "redis down fails open",
			headers: map[string]string{constant.RequestHeaderRealIP: "10.0.0.3"},
			mock: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Increment(gomock.Any(), gomock.Any(), 60).Return(int64(0), errors.New("connection refused"))
			},
			wantCode: http.StatusOK,
		},
		{
			name:     "internal caller is not counted",
			headers:  map[string]string{constant.RequestHeaderAPIKey: "internal-key"},
			mock:     func(*cacheMocks.MockRedisCache) {},
			wantCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			c := cacheMocks.NewMockRedisCache(ctrl)
			tt.mock(c)

			app := middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, c)
			handler := app.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantRemaining, rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
		})
	}
}
