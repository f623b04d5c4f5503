package cloudlink

import (
	"errors"
	"testing"
	"time"

	"github.com/darkkaiser/cloudlink-sdk/internal/transport"
	apperrors "github.com/darkkaiser/cloudlink-sdk/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeHostname(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"cloud.gluonhq.com", "https://cloud.gluonhq.com"},
		{"https://cloud.gluonhq.com", "https://cloud.gluonhq.com"},
		{"http://localhost:8080", "http://localhost:8080"},
		{"HTTPS://Cloud.test/", "HTTPS://Cloud.test"},
		{"  cloud.test//  ", "https://cloud.test"},
		{"httpbin.org", "https://httpbin.org"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeHostname(tt.in))
		})
	}
}

func TestConfig_BaseURL(t *testing.T) {
	assert.Equal(t, "https://cloud.test/3", Config{Hostname: "cloud.test"}.baseURL())
}

func TestLogLevelFromString(t *testing.T) {
	tests := []struct {
		in      string
		want    LogLevel
		wantErr bool
	}{
		{"", LogLevelNone, false},
		{"none", LogLevelNone, false},
		{"OFF", LogLevelNone, false},
		{"basic", LogLevelBasic, false},
		{"severe", LogLevelBasic, false},
		{"warning", LogLevelBasic, false},
		{"headers", LogLevelHeaders, false},
		{"info", LogLevelHeaders, false},
		{"config", LogLevelHeaders, false},
		{"full", LogLevelFull, false},
		{"fine", LogLevelFull, false},
		{"FINEST", LogLevelFull, false},
		{"all", LogLevelFull, false},
		{"verbose", LogLevelNone, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := LogLevelFromString(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperrors.Is(err, apperrors.InvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLogLevel_String(t *testing.T) {
	assert.Equal(t, "headers", LogLevelHeaders.String())
	assert.Equal(t, "LogLevel(9)", LogLevel(9).String())
}

func TestLogLevel_Verbosity(t *testing.T) {
	assert.Equal(t, transport.VerbosityNone, LogLevelNone.verbosity())
	assert.Equal(t, transport.VerbosityBasic, LogLevelBasic.verbosity())
	assert.Equal(t, transport.VerbosityHeaders, LogLevelHeaders.verbosity())
	assert.Equal(t, transport.VerbosityFull, LogLevelFull.verbosity())
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name       string
		cfg        Config
		violations []string
	}{
		{
			name:       "필수 항목 누락",
			cfg:        Config{},
			violations: []string{"hostname", "server_key"},
		},
		{
			name:       "공백만으로 이루어진 호스트",
			cfg:        Config{Hostname: "   ", ServerKey: "k"},
			violations: []string{"hostname"},
		},
		{
			name:       "범위를 벗어난 값",
			cfg:        Config{Hostname: "h", ServerKey: "k", LogLevel: 7, Timeout: -time.Second, RateLimit: -1},
			violations: []string{"log_level", "timeout", "rate_limit"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.cfg)
			require.Error(t, err)
			assert.Nil(t, c)

			var ve *ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Len(t, ve.Violations, len(tt.violations))
			for _, field := range tt.violations {
				assert.True(t, ve.HasViolation(field), "위반 항목에 %s가 포함되어야 합니다", field)
			}
			assert.True(t, apperrors.Is(err, apperrors.ConstraintViolation))
		})
	}
}

func TestNew_Success(t *testing.T) {
	c, err := New(Config{Hostname: "cloud.test", ServerKey: "k"})
	require.NoError(t, err)

	assert.Equal(t, "https://cloud.test/3", c.BaseURL())
	assert.NotEmpty(t, c.Config().UserAgent, "User-Agent 기본값이 설정되어야 합니다")
	assert.Equal(t, "cloudlink.Client{https://cloud.test/3}", c.String())
}
