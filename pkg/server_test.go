package pkg

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*httptest.Server, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	c := &Config{Timeout: time.Second, Throttle: 10}
	s := httptest.NewServer(NewRouter(NewHandler(logger), c))
	t.Cleanup(s.Close)
	return s, hook
}

func Test_Router_Invoke(t *testing.T) {
	s, hook := newTestServer(t)

	resp, err := http.Post(s.URL+"/invoke", "application/json", bytes.NewReader(loadEvent(t, "appsync_resolver_event.json")))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, hook.AllEntries(), 1)
}

func Test_Router_Invoke_Malformed(t *testing.T) {
	s, hook := newTestServer(t)

	resp, err := http.Post(s.URL+"/invoke", "application/json", bytes.NewReader([]byte("[]")))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, hook.AllEntries())
}

func Test_Router_Invoke_TooLarge(t *testing.T) {
	s, hook := newTestServer(t)

	body := bytes.Repeat([]byte(" "), MaxPayloadBytes+1)
	resp, err := http.Post(s.URL+"/invoke", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
	for _, entry := range hook.AllEntries() {
		assert.Equal(t, logrus.ErrorLevel, entry.Level)
		assert.Equal(t, "read invoke body", entry.Message)
	}
	assert.Len(t, hook.AllEntries(), 1)
}

func Test_Router_Healthz(t *testing.T) {
	s, _ := newTestServer(t)

	resp, err := http.Get(s.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
