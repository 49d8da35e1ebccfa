package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	_ "github.com/joho/godotenv/autoload"
)

const (
	IS_PROD                     = false
	LOG_LEVEL_PROD              = slog.LevelInfo
	TRACE_ID_KEY                = "traceId"
	RATE_LIMIT_PER_SECOND       = 2
	BURST_RATE_LIMIT_PER_SECOND = 5

	//redis window for the distributed limiter
	RateLimitWindow         = 1 * time.Second
	RateLimitRequestsWindow = 5
	RateLimitRedisKeyPrefix = "ratelimit:"

	//serverTimeouts
	ReadTimeout            = 5 * time.Second
	WriteTimeout           = 120 * time.Second //model calls can take a while
	IdleTimeout            = 120 * time.Second
	ShutdownContextTimeout = 10 * time.Second

	//server listening port
	ServerListenAddr = ":8080"

	//llm
	GeminiModelName = "gemini-2.0-flash-exp"
	OpenAIModelName = "gpt-4o-mini"
	ProviderGemini  = "gemini"
	ProviderOpenAI  = "openai"

	ModelCallTimeout     = 90 * time.Second
	ModelMaxAttempts     = 3
	ModelRetryBaseDelay  = 2 * time.Second
	ModelMaxOutputTokens = 8192

	ChatTemperature      float32 = 0.3
	SummarizeTemperature float32 = 0.4
	DraftTemperature     float32 = 0.5
	ClassifyTemperature  float32 = 0.1

	//extraction
	PageExtractTimeout = 10 * time.Second
	MinExtractedChars  = 10
	OCRDefaultDPI      = 300

	//uploads
	DefaultMaxFileBytes    = 15 << 20 //15mb
	DefaultUploadDir       = ".uploads"
	MultipartMemoryLimit   = 8 << 20
	MultipartOverheadBytes = 16 << 10 //headroom for multipart boundaries and fields

	MaxIdleConns        = 50
	MaxIdleConnsPerHost = 25
	IdleConnTimeout     = 60 * time.Second

	//redis
	redisHost     = "127.0.0.1"
	redisPort     = "6379"
	RedisAddr     = redisHost + ":" + redisPort
	RedisPassword = ""
)

// Config is the process-wide configuration, read once at startup and passed
// to constructors. No call site reads the environment directly.
type Config struct {
	ListenAddr string

	GoogleAPIKey string
	GeminiModel  string
	LLMProvider  string
	OpenAIAPIKey string
	OpenAIModel  string

	UploadDir    string
	MaxFileBytes int64
	CORSOrigins  []string

	RedisAddr string

	Tesseract     string
	Pdftoppm      string
	TesseractLang string
	OCRDPI        int
}

func Load() *Config {
	return &Config{
		ListenAddr: getEnv("LISTEN_ADDR", ServerListenAddr),

		GoogleAPIKey: getEnv("GOOGLE_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", GeminiModelName),
		LLMProvider:  getEnv("LLM_PROVIDER", ProviderGemini),
		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:  getEnv("OPENAI_MODEL", OpenAIModelName),

		UploadDir:    getEnv("UPLOAD_DIR", DefaultUploadDir),
		MaxFileBytes: getEnvInt64("MAX_FILE_BYTES", DefaultMaxFileBytes),
		CORSOrigins:  splitOrigins(getEnv("CORS_ORIGINS", "*")),

		RedisAddr: getEnv("REDIS_ADDR", RedisAddr),

		Tesseract:     getEnv("TESSERACT_BIN", "tesseract"),
		Pdftoppm:      getEnv("PDFTOPPM_BIN", "pdftoppm"),
		TesseractLang: getEnv("TESSERACT_LANG", "eng"),
		OCRDPI:        getEnvInt("OCR_DPI", OCRDefaultDPI),
	}
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getEnvInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			return i
		}
	}
	return def
}
