package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSummarize_OK(t *testing.T) {
	var gotReq map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/generate", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"response": "Bilan normal. Merci de consulter votre médecin pour interpréter ces résultats.",
		})
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, Model: "llama3"}, nil)
	out, err := c.Summarize(context.Background(), "Hémoglobine : 13.5 g/dL")
	require.NoError(t, err)
	require.Contains(t, out, "Merci de consulter votre médecin")

	require.Equal(t, "llama3", gotReq["model"])
	require.Equal(t, false, gotReq["stream"])
	prompt, _ := gotReq["prompt"].(string)
	require.Contains(t, prompt, "Hémoglobine : 13.5 g/dL")
}

func TestSummarize_Non2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL}, nil)
	_, err := c.Summarize(context.Background(), "texte")
	require.Error(t, err)
}

func TestSummarize_BadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("{not json"))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL}, nil)
	_, err := c.Summarize(context.Background(), "texte")
	require.Error(t, err)
}

func TestSummarize_EmptyResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"response": "   "})
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL}, nil)
	_, err := c.Summarize(context.Background(), "texte")
	require.Error(t, err)
}

func TestSummarize_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_ = json.NewEncoder(w).Encode(map[string]any{"response": "trop tard"})
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, Timeout: 50 * time.Millisecond}, nil)
	_, err := c.Summarize(context.Background(), "texte")
	require.Error(t, err)
}

func TestConfigDefaults(t *testing.T) {
	cfg := Config{}.withDefaults()
	require.Equal(t, "http://localhost:11434", cfg.BaseURL)
	require.Equal(t, "llama3", cfg.Model)
	require.Equal(t, 2*time.Minute, cfg.Timeout)
}
