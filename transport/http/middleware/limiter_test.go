package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"propbook/config"
	"propbook/infras/metrics"
	"propbook/infras/otel/mocks"
	cacheMocks "propbook/shared/cache/mocks"
	"propbook/shared/constant"
	"propbook/transport/http/middleware"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newConfig(enableLimiter bool) *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "propbook"
	cfg.App.RateLimiter.Enable = enableLimiter
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	return cfg
}

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestAppMiddleware_RateLimit(t *testing.T) {
	tests := []struct {
		name          string
		enable        bool
		setupMock     func(cache *cacheMocks.MockRedisCache)
		wantCode      int
		wantRemaining string
	}{
		{
			name:   "disabled limiter never touches the cache",
			enable: false,
			setupMock: func(_ *cacheMocks.MockRedisCache) {
			},
			wantCode: http.StatusOK,
		},
		{
			name:   "first request in window",
			enable: true,
			setupMock: func(cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Increment(gomock.Any(), "limiter:10.0.0.1:test-agent", 60).Return(int64(1), nil)
			},
			wantCode:      http.StatusOK,
			wantRemaining: "1",
		},
		{
			name:   "limit reached",
			enable: true,
			setupMock: func(cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Increment(gomock.Any(), gomock.Any(), 60).Return(int64(3), nil)
			},
			wantCode:      http.StatusTooManyRequests,
			wantRemaining: "0",
		},
		{
			name:   "cache failure lets the request through",
			enable: true,
			setupMock: func(cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Increment(gomock.Any(), gomock.Any(), 60).Return(int64(0), errors.New("connection refused"))
			},
			wantCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			cache := cacheMocks.NewMockRedisCache(ctrl)
			tt.setupMock(cache)

			cfg := newConfig(tt.enable)
			appMiddleware := middleware.NewAppMiddleware(mocks.NewOtel(), cfg, cache, metrics.New(cfg))

			request := httptest.NewRequest(http.MethodPost, "/validate-phone", nil)
			request.Header.Set(constant.RequestHeaderForwardedFor, "10.0.0.1, 192.168.0.1")
			request.Header.Set(constant.RequestHeaderUserAgent, "test-agent")

			recorder := httptest.NewRecorder()
			appMiddleware.RateLimit()(okHandler).ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantCode, recorder.Code)
			assert.Equal(t, tt.wantRemaining, recorder.Header().Get(constant.RequestHeaderRateLimitRemaining))
		})
	}
}
