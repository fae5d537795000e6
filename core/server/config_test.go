package server_test

import (
	"testing"
	"time"

	"cdn-manager/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Address(t *testing.T) {
	c := server.Config{Port: "9090"}
	assert.Equal(t, ":9090", c.Address())
}

func TestConfig_Timeouts(t *testing.T) {
	tests := []struct {
		name      string
		cfg       server.Config
		wantRead  time.Duration
		wantWrite time.Duration
	}{
		{"Explicit", server.Config{ReadTimeoutSeconds: 5, WriteTimeoutSeconds: 10}, 5 * time.Second, 10 * time.Second},
		{"Zero falls back", server.Config{}, 30 * time.Second, 120 * time.Second},
		{"Negative falls back", server.Config{ReadTimeoutSeconds: -1, WriteTimeoutSeconds: -1}, 30 * time.Second, 120 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantRead, tt.cfg.ReadTimeout())
			assert.Equal(t, tt.wantWrite, tt.cfg.WriteTimeout())
		})
	}
}
