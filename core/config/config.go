package config

import (
	"reflect"
	"strings"

	"oss-bridge/core/database"
	"oss-bridge/core/logger"
	"oss-bridge/core/server"
	"oss-bridge/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the oss-bridge configuration shared by the start and object commands.
// Each section maps to an environment prefix, e.g. storage.bucket is read from STORAGE_BUCKET.
type Config struct {
	// Server is the HTTP listener, API key and metrics path (SERVER_*).
	Server server.Config `mapstructure:"server"`
	// Storage is the bucket the adapter serves and its credentials (STORAGE_*).
	Storage storage.Config `mapstructure:"storage"`
	// Log selects the zap level and encoding (LOG_*).
	Log logger.Config `mapstructure:"log"`
	// Database is the MySQL audit trail, off unless DATABASE_ENABLED is set.
	Database database.Config `mapstructure:"database"`
}

// LoadConfig reads <path>/.env, then the process environment, over the struct tag defaults.
// Values in .env override variables already exported.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// A missing .env is normal outside local development.
	_ = godotenv.Overload(envPath)

	v := viper.New()

	bindValues(v, Config{}, "")

	// storage.access_key_id <- STORAGE_ACCESS_KEY_ID
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues registers every mapstructure key of iface under prefix with its default tag value.
// Registration is what lets AutomaticEnv resolve keys that have no default.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// Sections such as storage.Config
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		v.SetDefault(key, field.Tag.Get("default"))
	}
}
