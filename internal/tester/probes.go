package tester

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/techlens/provider-lab/internal/templates"
	"github.com/techlens/provider-lab/pkg/decode"
)

// probeFunc issues one category-specific connectivity check.
type probeFunc func(ctx context.Context, client *http.Client, config map[string]any, testModel string) Result

var probes = map[string]probeFunc{
	templates.CategoryOllama:    probeOllama,
	templates.CategoryOpenAI:    openAICompatible,
	templates.CategoryDeepSeek:  openAICompatible,
	templates.CategoryAnthropic: probeAnthropic,
}

// target carries the config fields the probes consume. Display-only fields
// are ignored, so a config need not be fully valid to be testable.
type target struct {
	APIKey     string `json:"api_key"`
	BaseURL    string `json:"base_url"`
	Endpoint   string `json:"endpoint"`
	APIVersion string `json:"api_version"`
}

// probeOllama issues a lightweight tags listing against a local inference
// endpoint and reports the number of models discovered.
func probeOllama(ctx context.Context, client *http.Client, config map[string]any, _ string) Result {
	t, err := decode.FromMap[target](config)
	if err != nil || t.Endpoint == "" {
		return failure(CodeLocalConnectionError,
			"endpoint is not configured",
			map[string]any{"error": "missing endpoint"},
		)
	}

	url := strings.TrimSuffix(t.Endpoint, "/") + "/api/tags"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return failure(CodeLocalConnectionError,
			"invalid endpoint",
			map[string]any{"error": err.Error()},
		)
	}

	resp, err := client.Do(req)
	if err != nil {
		return failure(CodeLocalConnectionError,
			"could not reach the local endpoint",
			map[string]any{"error": err.Error()},
		)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return failure(CodeLocalHTTPError,
			fmt.Sprintf("local endpoint returned HTTP %d", resp.StatusCode),
			map[string]any{"status_code": resp.StatusCode},
		)
	}

	var tags struct {
		Models []struct {
			Name string `json:"name"`
		} `json:"models"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tags); err != nil {
		return failure(CodeLocalConnectionError,
			"local endpoint returned an unexpected response",
			map[string]any{"error": err.Error()},
		)
	}

	return success(CodeLocalConnectionSuccess,
		fmt.Sprintf("connected, %d models available", len(tags.Models)),
		map[string]any{"model_count": len(tags.Models)},
	)
}

// openAICompatible probes an OpenAI-style API: a one-token completion when a
// test model is supplied, else a models listing.
func openAICompatible(ctx context.Context, client *http.Client, config map[string]any, testModel string) Result {
	t, err := decode.FromMap[target](config)
	if err != nil {
		return failure(CodeTestFailed, "invalid config", map[string]any{"error": err.Error()})
	}

	base := strings.TrimSuffix(t.BaseURL, "/")

	var req *http.Request
	if testModel != "" {
		body, _ := json.Marshal(map[string]any{
			"model":      testModel,
			"messages":   []map[string]string{{"role": "user", "content": "ping"}},
			"max_tokens": 1,
		})
		req, err = http.NewRequestWithContext(ctx, http.MethodPost,
			base+"/v1/chat/completions", bytes.NewReader(body))
		if req != nil {
			req.Header.Set("Content-Type", "application/json")
		}
	} else {
		req, err = http.NewRequestWithContext(ctx, http.MethodGet, base+"/v1/models", nil)
	}
	if err != nil {
		return failure(CodeTestFailed, "invalid base URL", map[string]any{"error": err.Error()})
	}
	req.Header.Set("Authorization", "Bearer "+t.APIKey)

	return doCloudProbe(client, req)
}

// probeAnthropic probes the Anthropic API with its key and version headers.
func probeAnthropic(ctx context.Context, client *http.Client, config map[string]any, testModel string) Result {
	t, err := decode.FromMap[target](config)
	if err != nil {
		return failure(CodeTestFailed, "invalid config", map[string]any{"error": err.Error()})
	}

	base := strings.TrimSuffix(t.BaseURL, "/")

	var req *http.Request
	if testModel != "" {
		body, _ := json.Marshal(map[string]any{
			"model":      testModel,
			"max_tokens": 1,
			"messages":   []map[string]string{{"role": "user", "content": "ping"}},
		})
		req, err = http.NewRequestWithContext(ctx, http.MethodPost,
			base+"/v1/messages", bytes.NewReader(body))
		if req != nil {
			req.Header.Set("Content-Type", "application/json")
		}
	} else {
		req, err = http.NewRequestWithContext(ctx, http.MethodGet, base+"/v1/models", nil)
	}
	if err != nil {
		return failure(CodeTestFailed, "invalid base URL", map[string]any{"error": err.Error()})
	}

	req.Header.Set("x-api-key", t.APIKey)
	version := t.APIVersion
	if version == "" {
		version = "2023-06-01"
	}
	req.Header.Set("anthropic-version", version)

	return doCloudProbe(client, req)
}

func doCloudProbe(client *http.Client, req *http.Request) Result {
	resp, err := client.Do(req)
	if err != nil {
		return failure(CodeTestFailed,
			"could not reach the backend",
			map[string]any{"error": err.Error()},
		)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return failure(CodeTestFailed,
			fmt.Sprintf("backend rejected the request with HTTP %d", resp.StatusCode),
			map[string]any{
				"status_code": resp.StatusCode,
				"error":       upstreamError(resp.Body),
			},
		)
	}

	return success(CodeConnectionSuccess, "connection successful", nil)
}

// upstreamError extracts a short diagnostic from an error response body.
// Bodies are truncated so details stay readable and never balloon.
func upstreamError(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 512))
	if err != nil || len(raw) == 0 {
		return ""
	}

	var parsed struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(raw, &parsed); err == nil && parsed.Error.Message != "" {
		return parsed.Error.Message
	}
	return string(raw)
}
