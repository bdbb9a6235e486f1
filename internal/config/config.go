package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Sock5Proxy struct {
	Host   string `yaml:"Host"`
	Port   int32  `yaml:"Port"`
	Enable bool   `yaml:"Enable"`
}

type Gmail struct {
	CredentialsFile string `yaml:"CredentialsFile"` // OAuth client secret JSON
	TokenFile       string `yaml:"TokenFile"`       // cached OAuth token
	AccountEmail    string `yaml:"AccountEmail"`    // account owner; From address of drafts and report mail
}

type LLM struct {
	BaseURL        string  `yaml:"BaseURL"` // OpenAI-compatible endpoint
	APIKey         string  `yaml:"APIKey"`
	Model          string  `yaml:"Model"`          // e.g. gpt-4o, deepseek-chat, qwen-plus
	TimeoutSeconds int     `yaml:"TimeoutSeconds"` // per-call timeout, default 60
	RetryTimes     int     `yaml:"RetryTimes"`     // transient-failure retries per call, default 2
	RatePerSecond  float64 `yaml:"RatePerSecond"`  // token-bucket refill rate shared by all LLM calls, default 1
	RateBurst      int     `yaml:"RateBurst"`      // token-bucket burst, default 1
}

type Triage struct {
	Cron            string   `yaml:"Cron"`            // cron expression, e.g. "0 7 * * *"
	TimeWindowHours int      `yaml:"TimeWindowHours"` // how far back a run looks, default 24
	TopCount        int      `yaml:"TopCount"`        // size of the important list, default 5
	SummaryWorkers  int      `yaml:"SummaryWorkers"`  // concurrent summary calls, default 2
	RetentionDays   int      `yaml:"RetentionDays"`   // summary cache retention days
	RetryTimes      int      `yaml:"RetryTimes"`      // run-level retries, default 3
	RetryInterval   int      `yaml:"RetryInterval"`   // run-level retry interval (seconds), default 60
	NotifyMode      string   `yaml:"NotifyMode"`      // "log" / "email" / "both"
	NotifyEmails    []string `yaml:"NotifyEmails"`    // report recipients when NotifyMode is email/both
}

type Config struct {
	Sock5Proxy Sock5Proxy `yaml:"Sock5Proxy"`
	Gmail      Gmail      `yaml:"Gmail"`
	LLM        LLM        `yaml:"LLM"`
	Triage     Triage     `yaml:"Triage"`
}

func LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var c Config
	err = yaml.Unmarshal([]byte(data), &c)
	if err != nil {
		return nil, err
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// Validate checks required fields and value ranges.
func (c *Config) Validate() error {
	if c.Gmail.CredentialsFile == "" {
		return fmt.Errorf("Gmail.CredentialsFile must not be empty")
	}
	if c.Gmail.TokenFile == "" {
		return fmt.Errorf("Gmail.TokenFile must not be empty")
	}
	if c.Gmail.AccountEmail == "" {
		return fmt.Errorf("Gmail.AccountEmail must not be empty")
	}

	if c.LLM.APIKey == "" {
		return fmt.Errorf("LLM.APIKey must not be empty")
	}
	if c.LLM.BaseURL == "" {
		return fmt.Errorf("LLM.BaseURL must not be empty")
	}
	if c.LLM.Model == "" {
		return fmt.Errorf("LLM.Model must not be empty")
	}
	if c.LLM.TimeoutSeconds < 0 {
		return fmt.Errorf("LLM.TimeoutSeconds must be >= 0")
	}
	if c.LLM.RetryTimes < 0 {
		return fmt.Errorf("LLM.RetryTimes must be >= 0")
	}
	if c.LLM.RatePerSecond < 0 {
		return fmt.Errorf("LLM.RatePerSecond must be >= 0")
	}
	if c.LLM.RateBurst < 0 {
		return fmt.Errorf("LLM.RateBurst must be >= 0")
	}

	if c.Triage.Cron == "" {
		return fmt.Errorf("Triage.Cron must not be empty")
	}
	if c.Triage.TimeWindowHours < 0 {
		return fmt.Errorf("Triage.TimeWindowHours must be >= 0")
	}
	if c.Triage.TopCount < 0 {
		return fmt.Errorf("Triage.TopCount must be >= 0")
	}
	if c.Triage.SummaryWorkers < 0 {
		return fmt.Errorf("Triage.SummaryWorkers must be >= 0")
	}
	if c.Triage.RetentionDays < 0 {
		return fmt.Errorf("Triage.RetentionDays must be >= 0")
	}
	if c.Triage.RetryTimes < 0 {
		return fmt.Errorf("Triage.RetryTimes must be >= 0")
	}
	if c.Triage.RetryInterval < 0 {
		return fmt.Errorf("Triage.RetryInterval must be >= 0")
	}
	if c.Triage.NotifyMode != "log" && c.Triage.NotifyMode != "email" && c.Triage.NotifyMode != "both" {
		return fmt.Errorf("Triage.NotifyMode must be 'log', 'email' or 'both'")
	}
	if c.Triage.NotifyMode == "email" || c.Triage.NotifyMode == "both" {
		if len(c.Triage.NotifyEmails) == 0 {
			return fmt.Errorf("Triage.NotifyEmails must not be empty when NotifyMode is 'email' or 'both'")
		}
	}

	return nil
}
