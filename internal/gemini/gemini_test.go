package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func testClient(serverURL string) *Client {
	return &Client{
		apiKey:  "test-key",
		model:   "gemini-2.0-flash",
		apiURL:  serverURL,
		genCfg:  DefaultGenerationConfig(),
		httpCli: &http.Client{},
	}
}

func TestGenerate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-goog-api-key") != "test-key" {
			t.Error("Missing API key in x-goog-api-key header")
		}
		if r.URL.Path != "/models/gemini-2.0-flash:generateContent" {
			t.Errorf("Path = %q", r.URL.Path)
		}

		body, _ := io.ReadAll(r.Body)
		var req generateRequest
		if err := json.Unmarshal(body, &req); err != nil {
			t.Fatalf("invalid request body: %v", err)
		}
		if len(req.Contents) != 1 || len(req.Contents[0].Parts) != 1 {
			t.Errorf("contents = %+v", req.Contents)
		}
		if req.Contents[0].Parts[0].Text != "review this" {
			t.Errorf("prompt = %q", req.Contents[0].Parts[0].Text)
		}
		if req.GenerationConfig == nil || req.GenerationConfig.TopK != 40 {
			t.Errorf("generationConfig = %+v", req.GenerationConfig)
		}

		resp := generateResponse{
			Candidates: []candidate{
				{Content: content{Parts: []part{{Text: "Looks "}, {Text: "good."}}}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	c := testClient(server.URL)

	text, err := c.Generate(context.Background(), "review this")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if text != "Looks good." {
		t.Errorf("text = %q, want %q", text, "Looks good.")
	}
}

func TestGenerate_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(500)
		w.Write([]byte(`{"error":{"message":"internal"}}`))
	}))
	defer server.Close()

	c := testClient(server.URL)

	_, err := c.Generate(context.Background(), "prompt")
	if err == nil {
		t.Fatal("Expected error for 500")
	}
	if !IsAPIError(err) {
		t.Errorf("expected API error, got %T: %v", err, err)
	}
	if !strings.Contains(err.Error(), "status 500") {
		t.Errorf("error = %q", err)
	}
}

func TestGenerate_AuthError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(403)
		w.Write([]byte(`{"error":{"message":"API key not valid"}}`))
	}))
	defer server.Close()

	c := testClient(server.URL)

	_, err := c.Generate(context.Background(), "prompt")
	if err == nil {
		t.Fatal("Expected error for 403")
	}
	if !IsAuthError(err) {
		t.Errorf("expected auth error, got %T: %v", err, err)
	}
}

func TestGenerate_EmbeddedError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":{"message":"quota exceeded"}}`))
	}))
	defer server.Close()

	c := testClient(server.URL)

	_, err := c.Generate(context.Background(), "prompt")
	if err == nil {
		t.Fatal("Expected error for embedded error field")
	}
	if !IsAPIError(err) {
		t.Errorf("expected API error, got %T: %v", err, err)
	}
	if !strings.Contains(err.Error(), "quota exceeded") {
		t.Errorf("error = %q", err)
	}
}

func TestGenerate_EmptyResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	c := testClient(server.URL)

	_, err := c.Generate(context.Background(), "prompt")
	if err == nil {
		t.Fatal("Expected error for empty candidates")
	}
	if !IsEmptyResponse(err) {
		t.Errorf("expected empty-response error, got %T: %v", err, err)
	}
}

func TestGenerate_BlankText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"   "}]}}]}`))
	}))
	defer server.Close()

	c := testClient(server.URL)

	_, err := c.Generate(context.Background(), "prompt")
	if !IsEmptyResponse(err) {
		t.Errorf("expected empty-response error, got %v", err)
	}
}

func TestErrorClassification_Wrapped(t *testing.T) {
	// Callers wrap client errors before classifying them.
	auth := fmt.Errorf("generating review: %w", &authError{message: "bad key"})
	if !IsAuthError(auth) {
		t.Error("wrapped auth error not classified")
	}

	api := fmt.Errorf("generating review: %w", &apiError{status: 500, message: "internal"})
	if !IsAPIError(api) {
		t.Error("wrapped API error not classified")
	}

	empty := fmt.Errorf("generating review: %w", &emptyError{})
	if !IsEmptyResponse(empty) {
		t.Error("wrapped empty-response error not classified")
	}

	if IsAuthError(api) || IsAPIError(auth) || IsEmptyResponse(api) {
		t.Error("error kinds must not cross-classify")
	}
}

func TestNew_NoKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "")

	_, err := New("", "gemini-2.0-flash", DefaultGenerationConfig())
	if err == nil {
		t.Fatal("Expected error when no API key is available")
	}
}

func TestNew_ExplicitKeyWins(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")

	c, err := New("flag-key", "gemini-2.0-flash", DefaultGenerationConfig())
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if c.apiKey != "flag-key" {
		t.Errorf("apiKey = %q, want %q", c.apiKey, "flag-key")
	}
}
