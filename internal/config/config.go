package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port string

	OpenAIKey     string
	OpenAIBaseURL string // empty = api.openai.com

	ChecklistModel       string
	ChecklistTemperature float32
	ChecklistMaxTokens   int

	ChatModel     string
	ChatMaxTokens int

	STTProvider    string // "whisper" or "deepgram"
	DeepgramKey    string
	DeepgramURL    string
	DeepgramParams string

	ChatAPIURL  string
	HTTPTimeout time.Duration // 0 = transport default

	RateLimitPerMinute int

	TelegramAlertToken   string
	TelegramAlertChatIDs []int64
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getIntEnv(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getFloatEnv(key string, def float32) float32 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 32)
	if err != nil {
		return def
	}
	return float32(f)
}

func getDurationEnv(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

// parseChatIDs reads a comma separated list, skipping junk.
func parseChatIDs(raw string) []int64 {
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// Load reads all env vars and builds the config
func Load() *Config {
	return &Config{
		Port: getEnv("PORT", "8080"),

		OpenAIKey:     os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL: os.Getenv("OPENAI_BASE_URL"),

		ChecklistModel:       getEnv("CHECKLIST_MODEL", "gpt-4-turbo-preview"),
		ChecklistTemperature: getFloatEnv("CHECKLIST_TEMPERATURE", 0.7),
		ChecklistMaxTokens:   getIntEnv("CHECKLIST_MAX_TOKENS", 1000),

		ChatModel:     getEnv("CHAT_MODEL", "gpt-4o-mini"),
		ChatMaxTokens: getIntEnv("CHAT_MAX_TOKENS", 1024),

		STTProvider:    strings.ToLower(getEnv("STT_PROVIDER", "whisper")),
		DeepgramKey:    os.Getenv("DEEPGRAM_API_KEY"),
		DeepgramURL:    getEnv("DEEPGRAM_URL", "https://api.deepgram.com/v1/listen"),
		DeepgramParams: getEnv("DEEPGRAM_PARAMS", "model=nova-2&smart_format=true&language=en"),

		ChatAPIURL:  getEnv("CHAT_API_URL", "http://localhost:8080"),
		HTTPTimeout: getDurationEnv("HTTP_TIMEOUT", 0),

		RateLimitPerMinute: getIntEnv("RATE_LIMIT_PER_MINUTE", 60),

		TelegramAlertToken:   os.Getenv("TELEGRAM_ALERT_TOKEN"),
		TelegramAlertChatIDs: parseChatIDs(os.Getenv("TELEGRAM_ALERT_CHAT_IDS")),
	}
}
