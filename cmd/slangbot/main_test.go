package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/kdduha/slangbot/internal/config"
	"github.com/kdduha/slangbot/internal/history"
	"github.com/kdduha/slangbot/internal/kv"
	"github.com/kdduha/slangbot/internal/models"
	"github.com/kdduha/slangbot/internal/recipe"
	"github.com/kdduha/slangbot/internal/session"
)

type echoGateway struct{}

func (echoGateway) Invoke(_ context.Context, req models.CompletionRequest) (string, error) {
	return "explained: " + req.Content, nil
}

func testRouter(t *testing.T) http.Handler {
	t.Helper()
	log := history.New(kv.NewMemoryStore(), zap.NewNop())
	s := session.New(echoGateway{}, log, zap.NewNop())
	return newRouter(config.ServerConfig{ThrottleLimit: 10, Timeout: time.Second}, s, log, zap.NewNop())
}

func TestRouter(t *testing.T) {
	r := testRouter(t)

	tests := []struct {
		method, path, body string
		want               int
	}{
		{http.MethodGet, "/healthz", "", http.StatusOK},
		{http.MethodPost, "/explain", `{"input":"rizz"}`, http.StatusOK},
		{http.MethodGet, "/history", "", http.StatusOK},
		{http.MethodGet, "/history/", "", http.StatusOK},
		{http.MethodGet, "/session", "", http.StatusOK},
		{http.MethodPost, "/share", "", http.StatusOK},
		{http.MethodGet, "/swagger/doc.json", "", http.StatusOK},
		{http.MethodGet, "/metrics", "", http.StatusOK},
		{http.MethodGet, "/nope", "", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body)))
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
		})
	}
}

func TestLinkQuery(t *testing.T) {
	for _, link := range []string{
		"http://localhost:8080/?slang=abc",
		"?slang=abc",
		"slang=abc",
	} {
		q, err := linkQuery(link)
		require.NoError(t, err)
		assert.Equal(t, "abc", q.Get(recipe.ParamSlang))
	}
}

func TestParseSwitch(t *testing.T) {
	for in, want := range map[string]bool{"on": true, "off": false, "true": true, "0": false} {
		got, err := parseSwitch(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := parseSwitch("loud")
	assert.Error(t, err)
}

func TestShareDecodeCommand(t *testing.T) {
	token, err := recipe.Encode(models.SharedRecipe{UserInput: "sus", TuningOptions: models.DefaultExplanationParameters()})
	require.NoError(t, err)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"share", "decode", "https://slang.example/?slang=" + token})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "userInput: sus")
	assert.Contains(t, out.String(), "persona: A Confused Parent")
}

func TestApplyLogLevel(t *testing.T) {
	t.Cleanup(func() {
		verbose = false
		logLevel.SetLevel(zapcore.InfoLevel)
	})

	applyLogLevel(&config.Config{LogLevel: zapcore.WarnLevel})
	assert.Equal(t, zapcore.WarnLevel, logLevel.Level())

	verbose = true
	logLevel.SetLevel(zapcore.DebugLevel)
	applyLogLevel(&config.Config{LogLevel: zapcore.ErrorLevel})
	assert.Equal(t, zapcore.DebugLevel, logLevel.Level())
}

func TestStoreFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slangbot.db")
	s, err := kv.NewSQLiteStore(path)
	require.NoError(t, err)
	defer s.Close()

	fields := storeFields(config.StoreSQLite, s)
	require.Len(t, fields, 2)
	assert.Equal(t, path, fields[1].String)

	assert.Len(t, storeFields(config.StoreMemory, kv.NewMemoryStore()), 1)
}
