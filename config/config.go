package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	defaultCompletionTimeout  = 8 * time.Second
	defaultHistoryLimit       = 10
	defaultCompletionModel    = "gpt-4o-mini"
	defaultTranscriptionModel = "whisper-1"
	defaultCountryCode        = "55"
	defaultAreaCode           = "11"
	defaultTrackingPrefix     = "/pedido/"
	defaultGatewayTimeout     = 15 * time.Second
	defaultAdminTokenTTL      = 12 * time.Hour
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	// Admin back-office login
	Admin *AdminConfig `json:"admin" yaml:"admin"`

	// Conversation tunes the chat assistant
	Conversation *ConversationConfig `json:"conversation" yaml:"conversation"`

	// Phone defines the local numbering assumptions used to canonicalize phones
	Phone *PhoneConfig `json:"phone" yaml:"phone"`

	// Storefront is the public web app the tracking links point to
	Storefront *StorefrontConfig `json:"storefront" yaml:"storefront"`

	// Completion engine endpoint (credentials live in the settings row)
	Completion *EndpointConfig `json:"completion" yaml:"completion"`

	// Transcription endpoint for voice messages
	Transcription *EndpointConfig `json:"transcription" yaml:"transcription"`

	// Gateway HTTP client options for the WhatsApp vendor API
	Gateway *GatewayConfig `json:"gateway" yaml:"gateway"`

	// Webhook guards the inbound WhatsApp webhook
	Webhook *WebhookConfig `json:"webhook" yaml:"webhook"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// QRCode configuration for order tracking QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for order event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// AdminConfig defines the single back-office account
type AdminConfig struct {
	Username     string        `json:"username" yaml:"username"`
	PasswordHash string        `json:"passwordHash" yaml:"passwordHash"` // bcrypt hash
	TokenTTL     time.Duration `json:"tokenTtl" yaml:"tokenTtl"`
}

// ConversationConfig defines the chat assistant limits
type ConversationConfig struct {
	// Hard timeout applied to each completion engine call
	CompletionTimeout time.Duration `json:"completionTimeout" yaml:"completionTimeout"`

	// Number of past messages sent as context
	HistoryLimit int `json:"historyLimit" yaml:"historyLimit"`

	// Model used when the settings row has none
	DefaultModel string `json:"defaultModel" yaml:"defaultModel"`

	TranscriptionModel string `json:"transcriptionModel" yaml:"transcriptionModel"`
}

// PhoneConfig defines the prefixes added to local numbers
type PhoneConfig struct {
	CountryCode string `json:"countryCode" yaml:"countryCode"`
	AreaCode    string `json:"areaCode" yaml:"areaCode"`
}

// StorefrontConfig defines where customers track their orders
type StorefrontConfig struct {
	BaseURL            string `json:"baseUrl" yaml:"baseUrl"`
	TrackingPathPrefix string `json:"trackingPathPrefix" yaml:"trackingPathPrefix"`
	PushIcon           string `json:"pushIcon" yaml:"pushIcon"`
	AdminOrdersURL     string `json:"adminOrdersUrl" yaml:"adminOrdersUrl"`
}

// EndpointConfig overrides a vendor base URL (empty uses the vendor default)
type EndpointConfig struct {
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`
}

// GatewayConfig defines the outbound messaging HTTP client
type GatewayConfig struct {
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// WebhookConfig defines the shared token expected from the gateway webhook (empty disables the check)
type WebhookConfig struct {
	Token string `json:"token" yaml:"token"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "inprocess", "local" for local HTTP, or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// applyDefaults fills every optional section so callers never nil-check them.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Admin == nil {
		cfg.Admin = &AdminConfig{}
	}
	if cfg.Admin.TokenTTL <= 0 {
		cfg.Admin.TokenTTL = defaultAdminTokenTTL
	}

	if cfg.Conversation == nil {
		cfg.Conversation = &ConversationConfig{}
	}
	if cfg.Conversation.CompletionTimeout <= 0 {
		cfg.Conversation.CompletionTimeout = defaultCompletionTimeout
	}
	if cfg.Conversation.HistoryLimit <= 0 {
		cfg.Conversation.HistoryLimit = defaultHistoryLimit
	}
	if cfg.Conversation.DefaultModel == "" {
		cfg.Conversation.DefaultModel = defaultCompletionModel
	}
	if cfg.Conversation.TranscriptionModel == "" {
		cfg.Conversation.TranscriptionModel = defaultTranscriptionModel
	}

	if cfg.Phone == nil {
		cfg.Phone = &PhoneConfig{}
	}
	if cfg.Phone.CountryCode == "" {
		cfg.Phone.CountryCode = defaultCountryCode
	}
	if cfg.Phone.AreaCode == "" {
		cfg.Phone.AreaCode = defaultAreaCode
	}

	if cfg.Storefront == nil {
		cfg.Storefront = &StorefrontConfig{}
	}
	if cfg.Storefront.TrackingPathPrefix == "" {
		cfg.Storefront.TrackingPathPrefix = defaultTrackingPrefix
	}

	if cfg.Completion == nil {
		cfg.Completion = &EndpointConfig{}
	}
	if cfg.Transcription == nil {
		cfg.Transcription = &EndpointConfig{}
	}

	if cfg.Gateway == nil {
		cfg.Gateway = &GatewayConfig{}
	}
	if cfg.Gateway.Timeout <= 0 {
		cfg.Gateway.Timeout = defaultGatewayTimeout
	}

	if cfg.Webhook == nil {
		cfg.Webhook = &WebhookConfig{}
	}

	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{Size: 256, ErrorCorrectionLevel: "M"}
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
