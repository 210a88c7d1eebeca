package providers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rantstats/rantstats-extension/internal/structures"
)

type accessLogEntry struct {
	logType TypeEnum
	message string
}

type accessLogRecorder struct {
	entries []accessLogEntry
}

func (r *accessLogRecorder) record(t TypeEnum, format string, args ...interface{}) {
	r.entries = append(r.entries, accessLogEntry{logType: t, message: fmt.Sprintf(format, args...)})
}

func (r *accessLogRecorder) Errorf(t TypeEnum, format string, args ...interface{}) {
	r.record(t, format, args...)
}
func (r *accessLogRecorder) Warnf(t TypeEnum, format string, args ...interface{}) {
	r.record(t, format, args...)
}
func (r *accessLogRecorder) Infof(t TypeEnum, format string, args ...interface{}) {
	r.record(t, format, args...)
}
func (r *accessLogRecorder) Debugf(t TypeEnum, format string, args ...interface{}) {
	r.record(t, format, args...)
}
func (r *accessLogRecorder) Fatalf(t TypeEnum, format string, args ...interface{}) {
	r.record(t, format, args...)
}
func (r *accessLogRecorder) Close() {}

func TestGetLogTypeByRequestType_POST(t *testing.T) {
	assert.Equal(t, TypePost, GetLogTypeByRequestType("POST"))
}

func TestGetLogTypeByRequestType_GET(t *testing.T) {
	assert.Equal(t, TypeGet, GetLogTypeByRequestType("GET"))
}

func TestGetLogTypeByRequestType_Other(t *testing.T) {
	assert.Equal(t, TypeGet, GetLogTypeByRequestType("PUT"))
	assert.Equal(t, TypeGet, GetLogTypeByRequestType("DELETE"))
}

func TestNewLogProvider_CreatesLogFiles(t *testing.T) {
	dir := t.TempDir()
	conf := &structures.Config{
		Logger: structures.LoggerConfig{
			Level: "info",
			Mode:  0644,
			Dir:   dir,
		},
	}

	logger, err := NewLogProvider(conf)
	require.NoError(t, err)
	defer logger.Close()

	logger.Infof(TypeApp, "test message")
	logger.Debugf(TypeGet, "get message")
	logger.Warnf(TypePost, "post message")

	for _, name := range []string{"app.log", "get.log", "post.log"} {
		_, statErr := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, statErr)
	}
}

func TestAccessLogMiddleware_RoutesByMethod(t *testing.T) {
	recorder := &accessLogRecorder{}
	var served bool
	handler := AccessLogMiddleware(recorder, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		served = true
		w.WriteHeader(http.StatusOK)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/streams", nil))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("POST", "/stream/cache", nil))

	assert.True(t, served)
	require.Len(t, recorder.entries, 2)
	assert.Equal(t, TypeGet, recorder.entries[0].logType)
	assert.Contains(t, recorder.entries[0].message, "GET /streams")
	assert.Equal(t, TypePost, recorder.entries[1].logType)
	assert.Contains(t, recorder.entries[1].message, "POST /stream/cache")
}

func TestLogProvider_WritesToTypedFiles(t *testing.T) {
	dir := t.TempDir()
	conf := &structures.Config{
		Logger: structures.LoggerConfig{
			Level: "debug",
			Mode:  0644,
			Dir:   dir,
		},
	}

	logger, err := NewLogProvider(conf)
	require.NoError(t, err)
	defer logger.Close()

	logger.Errorf(TypeApp, "boom %d", 7)
	logger.Infof(TypeGet, "fetched %s", "v1")
	logger.Debugf(TypePost, "stored %s", "v2")
	logger.Warnf(TypeApp, "low space")

	appLog, err := os.ReadFile(filepath.Join(dir, "app.log"))
	require.NoError(t, err)
	assert.Contains(t, string(appLog), "boom 7")
	assert.Contains(t, string(appLog), "low space")

	getLog, err := os.ReadFile(filepath.Join(dir, "get.log"))
	require.NoError(t, err)
	assert.Contains(t, string(getLog), "fetched v1")
	assert.NotContains(t, string(getLog), "boom 7")

	postLog, err := os.ReadFile(filepath.Join(dir, "post.log"))
	require.NoError(t, err)
	assert.Contains(t, string(postLog), "stored v2")
}

func TestNewLogProvider_InvalidLevel(t *testing.T) {
	conf := &structures.Config{
		Logger: structures.LoggerConfig{
			Level: "verbose",
			Mode:  0644,
			Dir:   t.TempDir(),
		},
	}

	_, err := NewLogProvider(conf)
	assert.Error(t, err)
}

func TestNewLogProvider_InvalidDir(t *testing.T) {
	conf := &structures.Config{
		Logger: structures.LoggerConfig{
			Level: "info",
			Mode:  0644,
			Dir:   "/nonexistent/directory/path",
		},
	}

	_, err := NewLogProvider(conf)
	assert.Error(t, err)
}
