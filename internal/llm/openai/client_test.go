package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plateworks/menugen/internal/llm"
)

func chatResponse(content string) string {
	b, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	})
	return string(b)
}

func TestExtractItemsSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(chatResponse(`{"items":["Margherita Pizza","Caesar Salad"]}`)))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL}, nil)
	out, raw, err := c.ExtractItems(context.Background(), llm.ExtractRequest{RawText: "menu text", Source: "OCR"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Margherita Pizza", "Caesar Salad"}, out.Items)
	assert.JSONEq(t, `{"items":["Margherita Pizza","Caesar Salad"]}`, string(raw))
}

func TestExtractItemsRejectsSchemaViolations(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(chatResponse(`{"items":[1,2,3]}`)))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL}, nil)
	_, _, err := c.ExtractItems(context.Background(), llm.ExtractRequest{RawText: "menu text"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema validation failed")
}

func TestExtractItemsHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL}, nil)
	_, _, err := c.ExtractItems(context.Background(), llm.ExtractRequest{RawText: "menu text"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
}

func TestBuildUserPromptKeepsRunesWhole(t *testing.T) {
	// "é" is 2 bytes; an odd char count straddles the byte cap so a naive
	// byte slice would cut mid-rune.
	long := strings.Repeat("é", maxPromptBytes/2+10)
	got := buildUserPrompt(long)

	assert.True(t, utf8.ValidString(got))
	body := strings.TrimPrefix(got, "Menu text (first ~3k chars):\n")
	assert.LessOrEqual(t, len(body), maxPromptBytes)
	assert.Equal(t, maxPromptBytes-1, len(body)) // 2-byte runes: cap rounds down

	short := "Margherita Pizza"
	assert.Equal(t, "Menu text (first ~3k chars):\n"+short, buildUserPrompt(short))
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "abc", truncateRunes("abc", 10))
	assert.Equal(t, "ab", truncateRunes("abcd", 2))
	assert.Equal(t, "é", truncateRunes("éé", 3))
	assert.Equal(t, "", truncateRunes("é", 1))
	assert.True(t, utf8.ValidString(truncateRunes("日本語メニュー", 8)))
}
