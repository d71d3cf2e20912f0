package imagen

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/plateworks/menugen/constants"
	"github.com/plateworks/menugen/internal/genimage"
)

type predictRequest struct {
	Instances  []instance `json:"instances"`
	Parameters parameters `json:"parameters"`
}

type instance struct {
	Prompt string `json:"prompt"`
}

type parameters struct {
	SampleCount     int    `json:"sampleCount"`
	AspectRatio     string `json:"aspectRatio,omitempty"`
	SampleImageSize string `json:"sampleImageSize,omitempty"`
}

type predictResponse struct {
	Predictions []struct {
		BytesBase64Encoded string `json:"bytesBase64Encoded"`
		MimeType           string `json:"mimeType"`
		RAIFilteredReason  string `json:"raiFilteredReason"`
	} `json:"predictions"`
}

// Generate implements genimage.Generator against the Imagen predict endpoint.
// One request, one image, no retry.
func (c *Client) Generate(ctx context.Context, prompt string, size constants.ImageSize) (genimage.Image, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("imagen.generate.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"prompt_len", len(prompt),
		"size", string(size),
	)

	body := predictRequest{
		Instances: []instance{{Prompt: prompt}},
		Parameters: parameters{
			SampleCount:     1,
			AspectRatio:     "1:1",
			SampleImageSize: strconv.Itoa(size.Pixels()),
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/models/" + c.cfg.Model + ":predict"
	raw, err := c.post(ctx, endpoint, body)
	if err != nil {
		c.log.Error("imagen.generate.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return genimage.Image{}, err
	}

	var pr predictResponse
	if err := json.Unmarshal(raw, &pr); err != nil {
		c.log.Error("imagen.generate.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return genimage.Image{}, &genimage.GenerationError{
			Reason:  constants.ReasonMalformedResponse,
			Message: fmt.Sprintf("decode predict response: %v", err),
		}
	}
	if len(pr.Predictions) == 0 {
		c.log.Error("imagen.generate.no_predictions",
			"req_id", rid, "elapsed_ms", time.Since(start).Milliseconds())
		return genimage.Image{}, &genimage.GenerationError{
			Reason:  constants.ReasonMalformedResponse,
			Message: "no predictions in response",
		}
	}
	p := pr.Predictions[0]
	if p.RAIFilteredReason != "" {
		return genimage.Image{}, &genimage.GenerationError{
			Reason:  constants.ReasonInvalidPrompt,
			Message: "filtered: " + p.RAIFilteredReason,
		}
	}

	payload, err := base64.StdEncoding.DecodeString(p.BytesBase64Encoded)
	if err != nil {
		return genimage.Image{}, &genimage.GenerationError{
			Reason:  constants.ReasonMalformedResponse,
			Message: fmt.Sprintf("decode base64 payload: %v", err),
		}
	}

	img, err := genimage.DecodeNormalize(payload)
	if err != nil {
		return genimage.Image{}, &genimage.GenerationError{
			Reason:  constants.ReasonMalformedResponse,
			Message: err.Error(),
		}
	}

	c.log.Info("imagen.generate.ok",
		"req_id", rid,
		"width", img.Width, "height", img.Height,
		"bytes", len(img.Data),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return img, nil
}

func (c *Client) post(ctx context.Context, url string, body predictRequest) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, &genimage.GenerationError{
			Reason:  constants.ReasonInvalidPrompt,
			Message: fmt.Sprintf("marshal request: %v", err),
		}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, &genimage.GenerationError{
			Reason:  constants.ReasonTransientNetwork,
			Message: err.Error(),
		}
	}
	req.Header.Set("x-goog-api-key", c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &genimage.GenerationError{
			Reason:  constants.ReasonTransientNetwork,
			Message: err.Error(),
		}
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			c.log.Warn("imagen response body close error", "error", err)
		}
	}(resp.Body)

	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return nil, &genimage.GenerationError{
			Reason:  constants.ReasonTransientNetwork,
			Message: fmt.Sprintf("read response: %v", err),
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, classifyStatus(resp.StatusCode, buf.String())
	}
	return buf.Bytes(), nil
}

func classifyStatus(code int, body string) *genimage.GenerationError {
	msg := fmt.Sprintf("imagen status %d: %s", code, truncate(body, 512))
	switch {
	case code == http.StatusTooManyRequests:
		return &genimage.GenerationError{Reason: constants.ReasonRateLimited, Message: msg}
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return &genimage.GenerationError{Reason: constants.ReasonAuthError, Message: msg}
	case code == http.StatusBadRequest:
		return &genimage.GenerationError{Reason: constants.ReasonInvalidPrompt, Message: msg}
	case code >= 500:
		return &genimage.GenerationError{Reason: constants.ReasonTransientNetwork, Message: msg}
	default:
		return &genimage.GenerationError{Reason: constants.ReasonMalformedResponse, Message: msg}
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "...(truncated)"
}
