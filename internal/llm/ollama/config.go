package ollama

import "time"

type Config struct {
	BaseURL string        // default "http://localhost:11434"
	Model   string        // default "llama3"
	Timeout time.Duration // default 2m; a generation can legitimately take minutes
}

func (c Config) withDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = "http://localhost:11434"
	}
	if c.Model == "" {
		c.Model = "llama3"
	}
	if c.Timeout <= 0 {
		c.Timeout = 2 * time.Minute
	}
	return c
}
