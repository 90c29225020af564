// Package ollama implements the summarization boundary against a local
// Ollama instance.
package ollama

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/santescan/santescan/internal/llm"
)

type Client struct {
	cfg        Config
	httpClient *http.Client
	log        *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	cfg = cfg.withDefaults()
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger,
	}
}

// buildPrompt asks for a short patient-facing summary without
// hard-coding parameter names. The closing sentence is mandatory.
func buildPrompt(rawText string) string {
	return "Tu es un assistant médical. Voici un texte issu d'une prise de sang : '" + rawText + "'. " +
		"Extrais les valeurs importantes et fais un résumé très court et simple pour le patient. " +
		"Dis si le bilan semble bon ou s'il y a des anomalies. " +
		"Termine obligatoirement par : 'Merci de consulter votre médecin pour interpréter ces résultats.'"
}

// Summarize implements llm.Summarizer via Ollama's non-streaming
// /api/generate endpoint.
func (c *Client) Summarize(ctx context.Context, rawText string) (string, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("llm.summarize.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"text_len", len(rawText),
	)

	body := map[string]any{
		"model":  c.cfg.Model,
		"prompt": buildPrompt(rawText),
		"stream": false,
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/api/generate"
	raw, _, err := llm.SendJSON(ctx, c.httpClient, endpoint, body, nil, c.log)
	if err != nil {
		c.log.Error("llm.summarize.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", err
	}

	var gen struct {
		Response string `json:"response"`
	}
	if err := json.Unmarshal(raw, &gen); err != nil {
		c.log.Error("llm.summarize.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", fmt.Errorf("decode ollama response: %w", err)
	}
	if strings.TrimSpace(gen.Response) == "" {
		c.log.Error("llm.summarize.empty_response",
			"req_id", rid,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", fmt.Errorf("empty response from model")
	}

	c.log.Info("llm.summarize.ok",
		"req_id", rid,
		"summary_len", len(gen.Response),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return gen.Response, nil
}
