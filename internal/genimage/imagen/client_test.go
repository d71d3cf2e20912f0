package imagen

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plateworks/menugen/constants"
	"github.com/plateworks/menugen/internal/genimage"
)

func pngBase64(t *testing.T, w, h int) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL, Model: "imagen-test"}, nil)
	return c, srv
}

func TestGenerateSuccess(t *testing.T) {
	b64 := pngBase64(t, 512, 512)
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/imagen-test:predict", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))
		_, _ = w.Write([]byte(`{"predictions":[{"bytesBase64Encoded":"` + b64 + `","mimeType":"image/png"}]}`))
	})

	img, err := c.Generate(context.Background(), "a pizza", constants.SizeMedium)
	require.NoError(t, err)
	assert.Equal(t, constants.SizeMedium.Pixels(), img.Width)
	assert.Equal(t, constants.SizeMedium.Pixels(), img.Height)

	decoded, _, err := image.Decode(bytes.NewReader(img.Data))
	require.NoError(t, err)
	assert.Equal(t, 512, decoded.Bounds().Dx())
}

func TestGenerateFailureTaxonomy(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   constants.FailureReason
	}{
		{"rate limited", http.StatusTooManyRequests, constants.ReasonRateLimited},
		{"unauthorized", http.StatusUnauthorized, constants.ReasonAuthError},
		{"forbidden", http.StatusForbidden, constants.ReasonAuthError},
		{"bad prompt", http.StatusBadRequest, constants.ReasonInvalidPrompt},
		{"server error", http.StatusInternalServerError, constants.ReasonTransientNetwork},
		{"odd status", http.StatusTeapot, constants.ReasonMalformedResponse},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "nope", tt.status)
			})
			_, err := c.Generate(context.Background(), "a pizza", constants.SizeSmall)
			var genErr *genimage.GenerationError
			require.ErrorAs(t, err, &genErr)
			assert.Equal(t, tt.want, genErr.Reason)
		})
	}
}

func TestGenerateMalformedBody(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"predictions": not json`))
	})
	_, err := c.Generate(context.Background(), "a pizza", constants.SizeSmall)
	var genErr *genimage.GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, constants.ReasonMalformedResponse, genErr.Reason)
}

func TestGenerateEmptyPredictions(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"predictions":[]}`))
	})
	_, err := c.Generate(context.Background(), "a pizza", constants.SizeSmall)
	var genErr *genimage.GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, constants.ReasonMalformedResponse, genErr.Reason)
}

func TestGenerateFilteredPrompt(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"predictions":[{"raiFilteredReason":"unsafe content"}]}`))
	})
	_, err := c.Generate(context.Background(), "something filtered", constants.SizeSmall)
	var genErr *genimage.GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, constants.ReasonInvalidPrompt, genErr.Reason)
}

func TestGenerateNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: url, Model: "imagen-test"}, nil)
	_, err := c.Generate(context.Background(), "a pizza", constants.SizeSmall)
	var genErr *genimage.GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, constants.ReasonTransientNetwork, genErr.Reason)
	assert.False(t, errors.Is(err, context.Canceled))
}
