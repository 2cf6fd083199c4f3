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
)

// Location resolution defaults. The retry ladder is a heuristic around the
// device permission prompt, so every value stays overridable from config.
const (
	DefaultCacheTTL        = 5 * time.Minute
	DefaultFallbackMaxAge  = 30 * time.Minute
	DefaultMaxAttempts     = 3
	DefaultBaseTimeout     = 20 * time.Second
	DefaultTimeoutStep     = 5 * time.Second
	DefaultGeocodeTimeout  = 5 * time.Second
	DefaultLocationBudget  = 75 * time.Second
	DefaultInterSendDelay  = 500 * time.Millisecond
	DefaultSendTimeout     = 15 * time.Second
	DefaultDispatchTimeout = 10 * time.Second
	DefaultCountryCode     = "+91"
	DefaultTimeZone        = "Asia/Kolkata"
	DefaultSenderID        = "SHEILD"
	DefaultAlertCollection = "sosAlerts"
)

// DefaultDeniedBackoffs are the pauses after a PermissionDenied outcome on attempt 1 and 2.
var DefaultDeniedBackoffs = []time.Duration{2 * time.Second, 1 * time.Second}

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

	// Identity configuration for verifying tokens issued by the identity provider
	Identity *IdentityConfig `json:"identity" yaml:"identity"`

	// Location configuration for the location resolver and position cache
	Location *LocationConfig `json:"location" yaml:"location"`

	// Geocoding configuration for reverse geocoding
	Geocoding *GeocodingConfig `json:"geocoding" yaml:"geocoding"`

	// Notification configuration for SMS fan-out
	Notification *NotificationConfig `json:"notification" yaml:"notification"`

	// SNS configuration for the AWS SNS SMS provider
	SNS *SNSConfig `json:"sns" yaml:"sns"`

	// Store configuration for the alert document store
	Store *StoreConfig `json:"store" yaml:"store"`

	// Firebase configuration for Firestore and push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// Mongo configuration for the MongoDB alert store
	Mongo *MongoConfig `json:"mongo" yaml:"mongo"`

	// Redis configuration for the shared position cache
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// Postgres configuration for the SMS delivery log (optional)
	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Dispatch configuration for emergency services
	Dispatch *DispatchConfig `json:"dispatch" yaml:"dispatch"`

	// PubSub configuration for alert change events
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// IdentityConfig defines how bearer tokens from the identity collaborator are verified
type IdentityConfig struct {
	Secret string `json:"secret" yaml:"secret"`
	Issuer string `json:"issuer" yaml:"issuer"`
}

// LocationConfig defines the location retry ladder and cache windows
type LocationConfig struct {
	CacheProvider  string          `json:"cacheProvider" yaml:"cacheProvider"`
	CacheTTL       time.Duration   `json:"cacheTTL" yaml:"cacheTTL"`
	FallbackMaxAge time.Duration   `json:"fallbackMaxAge" yaml:"fallbackMaxAge"`
	MaxAttempts    int             `json:"maxAttempts" yaml:"maxAttempts"`
	BaseTimeout    time.Duration   `json:"baseTimeout" yaml:"baseTimeout"`
	TimeoutStep    time.Duration   `json:"timeoutStep" yaml:"timeoutStep"`
	DeniedBackoffs []time.Duration `json:"deniedBackoffs" yaml:"deniedBackoffs"`
	GeocodeTimeout time.Duration   `json:"geocodeTimeout" yaml:"geocodeTimeout"`
	DefaultBudget  time.Duration   `json:"defaultBudget" yaml:"defaultBudget"`
}

// GeocodingConfig defines the reverse geocoding provider
type GeocodingConfig struct {
	// Provider type: "google" or "none"
	Provider string `json:"provider" yaml:"provider"`
	APIKey   string `json:"apiKey" yaml:"apiKey"`
	Language string `json:"language" yaml:"language"`
}

// NotificationConfig defines the SMS fan-out behaviour
type NotificationConfig struct {
	// Ordered provider strategies, e.g. ["sns", "mock"]
	Providers          []string      `json:"providers" yaml:"providers"`
	InterSendDelay     time.Duration `json:"interSendDelay" yaml:"interSendDelay"`
	SendTimeout        time.Duration `json:"sendTimeout" yaml:"sendTimeout"`
	DefaultCountryCode string        `json:"defaultCountryCode" yaml:"defaultCountryCode"`
	TimeZone           string        `json:"timeZone" yaml:"timeZone"`
	SenderName         string        `json:"senderName" yaml:"senderName"`
	MockLatency        time.Duration `json:"mockLatency" yaml:"mockLatency"`
}

// SNSConfig defines AWS SNS credentials and SMS attributes
type SNSConfig struct {
	Region          string `json:"region" yaml:"region"`
	AccessKeyID     string `json:"accessKeyId" yaml:"accessKeyId"`
	SecretAccessKey string `json:"secretAccessKey" yaml:"secretAccessKey"`
	SenderID        string `json:"senderId" yaml:"senderId"`
	SMSType         string `json:"smsType" yaml:"smsType"`
}

// StoreConfig defines the alert document store
type StoreConfig struct {
	// Provider type: "memory", "firestore" or "mongo"
	Provider   string `json:"provider" yaml:"provider"`
	Collection string `json:"collection" yaml:"collection"`
}

// FirebaseConfig defines Firebase configuration for Firestore and push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// MongoConfig defines MongoDB connection settings
type MongoConfig struct {
	URI      string `json:"uri" yaml:"uri"`
	Database string `json:"database" yaml:"database"`
}

// RedisConfig defines Redis connection settings
type RedisConfig struct {
	URL       string `json:"url" yaml:"url"`
	KeyPrefix string `json:"keyPrefix" yaml:"keyPrefix"`
}

// DispatchConfig defines the emergency dispatch connector
type DispatchConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Provider type: "mock" or "http"
	Provider      string           `json:"provider" yaml:"provider"`
	Endpoint      string           `json:"endpoint" yaml:"endpoint"`
	Timeout       time.Duration    `json:"timeout" yaml:"timeout"`
	EmergencyType string           `json:"emergencyType" yaml:"emergencyType"`
	Priority      string           `json:"priority" yaml:"priority"`
	Source        string           `json:"source" yaml:"source"`
	Language      string           `json:"language" yaml:"language"`
	MockLatency   time.Duration    `json:"mockLatency" yaml:"mockLatency"`
	Regions       []DispatchRegion `json:"regions" yaml:"regions"`
}

// DispatchRegion is a dispatch centre the connector may route to
type DispatchRegion struct {
	Name      string  `json:"name" yaml:"name"`
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
	Endpoint  string  `json:"endpoint" yaml:"endpoint"`
}

// PubSubConfig defines Pub/Sub configuration for alert change events
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
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
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Example: SNS_ACCESSKEYID -> sns.accessKeyId (not sns.accesskeyid)
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
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

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	cfg.ApplyDefaults()

	return cfg, nil
}

// ApplyDefaults fills optional sections that were left out of the config file.
func (cfg *Config) ApplyDefaults() {
	if cfg.Location == nil {
		cfg.Location = &LocationConfig{}
	}
	loc := cfg.Location
	if loc.CacheProvider == "" {
		loc.CacheProvider = "memory"
	}
	if loc.CacheTTL <= 0 {
		loc.CacheTTL = DefaultCacheTTL
	}
	if loc.FallbackMaxAge <= 0 {
		loc.FallbackMaxAge = DefaultFallbackMaxAge
	}
	if loc.MaxAttempts <= 0 {
		loc.MaxAttempts = DefaultMaxAttempts
	}
	if loc.BaseTimeout <= 0 {
		loc.BaseTimeout = DefaultBaseTimeout
	}
	if loc.TimeoutStep <= 0 {
		loc.TimeoutStep = DefaultTimeoutStep
	}
	if len(loc.DeniedBackoffs) == 0 {
		loc.DeniedBackoffs = append([]time.Duration(nil), DefaultDeniedBackoffs...)
	}
	if loc.GeocodeTimeout <= 0 {
		loc.GeocodeTimeout = DefaultGeocodeTimeout
	}
	if loc.DefaultBudget <= 0 {
		loc.DefaultBudget = DefaultLocationBudget
	}

	if cfg.Geocoding == nil {
		cfg.Geocoding = &GeocodingConfig{Provider: "none"}
	}

	if cfg.Notification == nil {
		cfg.Notification = &NotificationConfig{}
	}
	notif := cfg.Notification
	if len(notif.Providers) == 0 {
		notif.Providers = []string{"mock"}
	}
	if notif.InterSendDelay <= 0 {
		notif.InterSendDelay = DefaultInterSendDelay
	}
	if notif.SendTimeout <= 0 {
		notif.SendTimeout = DefaultSendTimeout
	}
	if notif.DefaultCountryCode == "" {
		notif.DefaultCountryCode = DefaultCountryCode
	}
	if notif.TimeZone == "" {
		notif.TimeZone = DefaultTimeZone
	}
	if notif.SenderName == "" {
		notif.SenderName = DefaultSenderID
	}

	if cfg.Store == nil {
		cfg.Store = &StoreConfig{}
	}
	if cfg.Store.Provider == "" {
		cfg.Store.Provider = "memory"
	}
	if cfg.Store.Collection == "" {
		cfg.Store.Collection = DefaultAlertCollection
	}

	if cfg.Dispatch == nil {
		cfg.Dispatch = &DispatchConfig{}
	}
	if cfg.Dispatch.Provider == "" {
		cfg.Dispatch.Provider = "mock"
	}
	if cfg.Dispatch.Timeout <= 0 {
		cfg.Dispatch.Timeout = DefaultDispatchTimeout
	}
	if cfg.Dispatch.EmergencyType == "" {
		cfg.Dispatch.EmergencyType = "medical"
	}
	if cfg.Dispatch.Priority == "" {
		cfg.Dispatch.Priority = "high"
	}
	if cfg.Dispatch.Source == "" {
		cfg.Dispatch.Source = "SHEILD_APP"
	}
	if cfg.Dispatch.Language == "" {
		cfg.Dispatch.Language = "en"
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
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
