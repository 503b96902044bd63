package pkg

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIPIsLocal(t *testing.T) {
	cases := []struct {
		addr            string
		expectedIsLocal bool
	}{
		{addr: "127.0.0.1:8080", expectedIsLocal: true},
		{addr: "127.54.0.1:35325", expectedIsLocal: false},
		{addr: "172.17.0.1:60102", expectedIsLocal: true},
		{addr: "172.20.0.1:42452", expectedIsLocal: true},
		{addr: "172.200.0.1:51515", expectedIsLocal: true},
		{addr: "95.91.13.54:2145", expectedIsLocal: false},
		{addr: "95.91.13.54:214", expectedIsLocal: false},
		{addr: "203.0.113.17:8080", expectedIsLocal: false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expectedIsLocal, IPIsLocal(tc.addr), tc.addr)
	}
}

func TestReadUserIP(t *testing.T) {
	t.Run("real ip header wins", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("X-Real-Ip", "95.91.13.54")
		req.Header.Set("X-Forwarded-For", "203.0.113.17")

		ipAddr, err := ReadUserIP(req)
		require.NoError(t, err)
		assert.Equal(t, "95.91.13.54", ipAddr)
	})

	t.Run("forwarded for fallback", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("X-Forwarded-For", "203.0.113.17")

		ipAddr, err := ReadUserIP(req)
		require.NoError(t, err)
		assert.Equal(t, "203.0.113.17", ipAddr)
	})

	t.Run("local caller", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.RemoteAddr = "127.0.0.1:51515"

		ipAddr, err := ReadUserIP(req)
		require.NoError(t, err)
		assert.Equal(t, "localhost", ipAddr)
	})

	t.Run("invalid addr", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.RemoteAddr = "not-an-addr"

		_, err := ReadUserIP(req)
		require.Error(t, err)
	})
}
