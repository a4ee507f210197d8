package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
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
	defaultMaxUploadSize      = "5MB"
	defaultFallbackTenant     = "demo"
	defaultLowStockThreshold  = 2
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int      `json:"port" yaml:"port"`
		MaxRequestBodySize string   `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		AllowOrigins       []string `json:"allowOrigins" yaml:"allowOrigins"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Persistence selects the backing store for products, sales and tenants
	Persistence *PersistenceConfig `json:"persistence" yaml:"persistence"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Firebase configuration for Firestore and push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	Tenant *TenantConfig `json:"tenant" yaml:"tenant"`

	Store *StoreConfig `json:"store" yaml:"store"`

	Catalog *CatalogConfig `json:"catalog" yaml:"catalog"`

	ImageHost *ImageHostConfig `json:"imagehost" yaml:"imagehost"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Webhook configuration for the welcome message automation
	Webhook *WebhookConfig `json:"webhook" yaml:"webhook"`

	Notification *NotificationConfig `json:"notification" yaml:"notification"`

	// QRCode configuration for the store contact QR
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Admin *AdminConfig `json:"admin" yaml:"admin"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	Sessions *SessionsConfig `json:"sessions" yaml:"sessions"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// PersistenceConfig defines which repository implementation is wired
type PersistenceConfig struct {
	// Driver is "firestore" or "postgres"
	Driver string `json:"driver" yaml:"driver"`
}

// FirebaseConfig defines Firebase configuration
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// TenantConfig selects the butchery this deployment serves
type TenantConfig struct {
	// ID is used as is when set
	ID string `json:"id" yaml:"id"`
	// URL is looked up in the tenant registry when ID is empty
	URL        string        `json:"url" yaml:"url"`
	FallbackID string        `json:"fallbackId" yaml:"fallbackId"`
	CacheTTL   time.Duration `json:"cacheTTL" yaml:"cacheTTL"`
}

// StoreConfig is the static storefront configuration
type StoreConfig struct {
	Name              string   `json:"name" yaml:"name"`
	WhatsApp          string   `json:"whatsapp" yaml:"whatsapp"`
	Categories        []string `json:"categories" yaml:"categories"`
	PaymentMethods    []string `json:"paymentMethods" yaml:"paymentMethods"`
	LowStockThreshold float64  `json:"lowStockThreshold" yaml:"lowStockThreshold"`
}

// CatalogConfig tunes catalog reads
type CatalogConfig struct {
	// CacheTTL is the freshness window of catalog reads; zero disables caching
	CacheTTL time.Duration `json:"cacheTTL" yaml:"cacheTTL"`
	// NotificationFeedSize is how many admin notifications are retained
	NotificationFeedSize int `json:"notificationFeedSize" yaml:"notificationFeedSize"`
}

// ImageHostConfig defines where product images are stored
type ImageHostConfig struct {
	// Provider is "imgbb" or "blob"
	Provider      string      `json:"provider" yaml:"provider"`
	MaxUploadSize string      `json:"maxUploadSize" yaml:"maxUploadSize"`
	ImgBB         ImgBBConfig `json:"imgbb" yaml:"imgbb"`
	Blob          BlobConfig  `json:"blob" yaml:"blob"`
}

type ImgBBConfig struct {
	APIKey   string        `json:"apiKey" yaml:"apiKey"`
	Endpoint string        `json:"endpoint" yaml:"endpoint"`
	Timeout  time.Duration `json:"timeout" yaml:"timeout"`
}

type BlobConfig struct {
	// BucketURL is a gocloud.dev bucket URL such as file:///var/images, mem:// or gs://bucket
	BucketURL     string `json:"bucketUrl" yaml:"bucketUrl"`
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`
	Prefix        string `json:"prefix" yaml:"prefix"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub; empty disables publishing
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// WebhookConfig defines the welcome webhook called for new WhatsApp contacts
type WebhookConfig struct {
	WelcomeURL string        `json:"welcomeUrl" yaml:"welcomeUrl"`
	Timeout    time.Duration `json:"timeout" yaml:"timeout"`
}

// NotificationConfig defines the push targets for low-stock alerts
type NotificationConfig struct {
	AdminTopic  string   `json:"adminTopic" yaml:"adminTopic"`
	AdminTokens []string `json:"adminTokens" yaml:"adminTokens"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// AdminConfig is the single store administrator
type AdminConfig struct {
	Username     string        `json:"username" yaml:"username"`
	PasswordHash string        `json:"passwordHash" yaml:"passwordHash"`
	TokenTTL     time.Duration `json:"tokenTTL" yaml:"tokenTTL"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost int `json:"bcryptCost" yaml:"bcryptCost"`
}

// SessionsConfig defines idle expiry of in-memory carts and sale wizards
type SessionsConfig struct {
	CartTTL       time.Duration `json:"cartTTL" yaml:"cartTTL"`
	WizardTTL     time.Duration `json:"wizardTTL" yaml:"wizardTTL"`
	SweepInterval time.Duration `json:"sweepInterval" yaml:"sweepInterval"`
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
	// A missing .env file is not an error; real deployments set the environment directly.
	_ = godotenv.Load()

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

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Persistence == nil {
		cfg.Persistence = &PersistenceConfig{}
	}
	if cfg.Persistence.Driver == "" {
		cfg.Persistence.Driver = "firestore"
	}
	if cfg.Tenant == nil {
		cfg.Tenant = &TenantConfig{}
	}
	if cfg.Tenant.FallbackID == "" {
		cfg.Tenant.FallbackID = defaultFallbackTenant
	}
	if cfg.Tenant.CacheTTL <= 0 {
		cfg.Tenant.CacheTTL = 5 * time.Minute
	}
	if cfg.Store == nil {
		cfg.Store = &StoreConfig{}
	}
	if len(cfg.Store.PaymentMethods) == 0 {
		cfg.Store.PaymentMethods = []string{"efectivo", "tarjeta", "transferencia", "mercadopago"}
	}
	if cfg.Store.LowStockThreshold <= 0 {
		cfg.Store.LowStockThreshold = defaultLowStockThreshold
	}
	if cfg.Catalog == nil {
		cfg.Catalog = &CatalogConfig{}
	}
	if cfg.ImageHost == nil {
		cfg.ImageHost = &ImageHostConfig{}
	}
	if cfg.ImageHost.MaxUploadSize == "" {
		cfg.ImageHost.MaxUploadSize = defaultMaxUploadSize
	}
	if cfg.PubSub == nil {
		cfg.PubSub = &PubSubConfig{}
	}
	if cfg.Webhook == nil {
		cfg.Webhook = &WebhookConfig{}
	}
	if cfg.Notification == nil {
		cfg.Notification = &NotificationConfig{}
	}
	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{}
	}
	if cfg.Admin == nil {
		cfg.Admin = &AdminConfig{}
	}
	if cfg.Admin.TokenTTL <= 0 {
		cfg.Admin.TokenTTL = 12 * time.Hour
	}
	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Sessions == nil {
		cfg.Sessions = &SessionsConfig{}
	}
	if cfg.Sessions.CartTTL <= 0 {
		cfg.Sessions.CartTTL = 24 * time.Hour
	}
	if cfg.Sessions.WizardTTL <= 0 {
		cfg.Sessions.WizardTTL = 2 * time.Hour
	}
	if cfg.Sessions.SweepInterval <= 0 {
		cfg.Sessions.SweepInterval = 5 * time.Minute
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
