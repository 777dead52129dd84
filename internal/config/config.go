package config

import (
	"encoding/base64"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/caarlos0/env/v8"
	"github.com/joho/godotenv"
)

const (
	StorageFirestore = "firestore"
	StorageMemory    = "memory"
)

type Firebase struct {
	Type                    string        `env:"FIREBASE_TYPE" json:"type"`
	ProjectId               string        `env:"FIREBASE_PROJECT_ID" json:"project_id"`
	PrivateKeyId            string        `env:"FIREBASE_PRIVATE_KEY_ID" json:"private_key_id"`
	PrivateKey              string        `env:"FIREBASE_PRIVATE_KEY" json:"private_key"`
	ClientEmail             string        `env:"FIREBASE_CLIENT_EMAIL" json:"client_email"`
	ClientId                string        `env:"FIREBASE_CLIENT_ID" json:"client_id"`
	AuthUri                 string        `env:"FIREBASE_AUTH_URI" json:"auth_uri"`
	TokenUri                string        `env:"FIREBASE_TOKEN_URI" json:"token_uri"`
	AuthProviderX509CertUrl string        `env:"FIREBASE_AUTH_PROVIDER_X509_CERT_URL" json:"auth_provider_x509_cert_url"`
	ClientX509CertUrl       string        `env:"FIREBASE_CLIENT_X509_CERT_URL" json:"client_x509_cert_url"`
	WriteTimeoutSecond      time.Duration `env:"FIREBASE_WRITE_TIMEOUT_SECOND" json:"-"`
}

type Storage struct {
	Driver string `env:"STORAGE_DRIVER" envDefault:"firestore"`
}

type Server struct {
	Addr            string        `env:"SERVER_ADDR" envDefault:":8080"`
	MetricsAddr     string        `env:"METRICS_ADDR" envDefault:":9090"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type Admin struct {
	Email         string        `env:"ADMIN_EMAIL,notEmpty"`
	Password      string        `env:"ADMIN_PASSWORD,notEmpty"`
	SessionSecret string        `env:"ADMIN_SESSION_SECRET,notEmpty"`
	SessionTTL    time.Duration `env:"ADMIN_SESSION_TTL" envDefault:"8h"`
}

type Catalog struct {
	// substrings that earn the brand bonus when ranking related products
	BrandTokens []string      `env:"CATALOG_BRAND_TOKENS" envSeparator:"," envDefault:"macbook,dell,hp,lenovo,asus,acer"`
	CacheTTL    time.Duration `env:"CATALOG_CACHE_TTL" envDefault:"1m"`
}

type Tracing struct {
	CollectorHost string `env:"OTEL_COLLECTOR_HOST"`
	ServiceName   string `env:"OTEL_SERVICE_NAME" envDefault:"go-firestore-catalog"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Pretty bool   `env:"LOG_PRETTY" envDefault:"false"`
}

type Config struct {
	Firebase
	Storage
	Server
	Admin
	Catalog
	Tracing
	Log
}

func LoadConfigOrPanic() Config {
	cnf, err := Load()
	if err != nil {
		panic(err)
	}
	return cnf
}

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var config *Config = new(Config)
	if err := env.Parse(config); err != nil {
		return Config{}, err
	}

	if err := config.normalize(); err != nil {
		return Config{}, err
	}
	return *config, nil
}

func (c *Config) normalize() error {

	c.Storage.Driver = strings.ToLower(strings.TrimSpace(c.Storage.Driver))
	switch c.Storage.Driver {
	case StorageMemory:
	case StorageFirestore:
		if err := c.Firebase.validate(); err != nil {
			return err
		}

		decodedBytes, err := base64.StdEncoding.DecodeString(c.Firebase.PrivateKey)
		if err != nil {
			return fmt.Errorf("decode FIREBASE_PRIVATE_KEY: %w", err)
		}
		c.Firebase.PrivateKey = string(decodedBytes)
		c.Firebase.PrivateKey = strings.ReplaceAll(c.Firebase.PrivateKey, "\\n", "\n")
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.Storage.Driver)
	}

	if c.WriteTimeoutSecond == 0 {
		c.WriteTimeoutSecond = time.Second * 30
	}

	tokens := make([]string, 0, len(c.Catalog.BrandTokens))
	for _, t := range c.Catalog.BrandTokens {
		if t = strings.ToLower(strings.TrimSpace(t)); t != "" {
			tokens = append(tokens, t)
		}
	}
	c.Catalog.BrandTokens = tokens

	return nil
}

func (f Firebase) validate() error {
	required := map[string]string{
		"FIREBASE_TYPE":           f.Type,
		"FIREBASE_PROJECT_ID":     f.ProjectId,
		"FIREBASE_PRIVATE_KEY_ID": f.PrivateKeyId,
		"FIREBASE_PRIVATE_KEY":    f.PrivateKey,
		"FIREBASE_CLIENT_EMAIL":   f.ClientEmail,
		"FIREBASE_CLIENT_ID":      f.ClientId,
		"FIREBASE_AUTH_URI":       f.AuthUri,
		"FIREBASE_TOKEN_URI":      f.TokenUri,
	}

	missing := []string{}
	for name, value := range required {
		if value == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("firestore storage requires %s", strings.Join(missing, ", "))
	}
	return nil
}
