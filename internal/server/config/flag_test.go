package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	base := func() *Config {
		c := &Config{}
		c.LoadDefaults()
		return c
	}

	tests := []struct {
		expected    func() *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"cmd",
				"-a", "127.0.0.1:9090", "-w", "127.0.0.1:8081", "-d", "db", "-s", "secret", "-k", "refresh",
				"-t", "1", "-r", "3", "-i", "issuer", "-o", "https://a.example, https://b.example",
				"-u", "user", "-p", "password", "-b", "bucket", "-g", "us-west-1", "-e", "http://endpoint",
				"-m", "https://cdn.example/avatars/", "-l", "warn",
			},
			expected: func() *Config {
				return &Config{
					EndpointAddrGRPC:             "127.0.0.1:9090",
					EndpointAddrHTTP:             "127.0.0.1:8081",
					DatabaseDSN:                  "db",
					SecretKey:                    "secret",
					RefreshSecretKey:             "refresh",
					AccessTokenValidityDuration:  1 * time.Minute,
					RefreshTokenValidityDuration: 3 * time.Minute,
					TokenIssuer:                  "issuer",
					BcryptCost:                   10,
					AllowedOrigins:               []string{"https://a.example", "https://b.example"},
					S3RootUser:                   "user",
					S3RootPassword:               "password",
					S3Bucket:                     "bucket",
					S3Region:                     "us-west-1",
					S3BaseEndpoint:               "http://endpoint",
					S3PublicBaseURL:              "https://cdn.example/avatars/",
					LogLevel:                     "warn",
				}
			},
		},
		{
			name: "no flags keeps sub-minute durations",
			args: []string{"cmd", "-c", "ignored.json"},
			expected: func() *Config {
				c := base()
				c.AccessTokenValidityDuration = 30 * time.Second
				return c
			},
		},
		{
			name:        "bad integer panics",
			args:        []string{"cmd", "-t", "soon"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := base()
			config.AccessTokenValidityDuration = 30 * time.Second

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(config) })
				return
			}

			require.NotPanics(t, func() { parseFlags(config) })
			assert.Empty(t, cmp.Diff(tt.expected(), config))
		})
	}
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitList(" a, ,b ,"))
	assert.Nil(t, splitList(""))
}
