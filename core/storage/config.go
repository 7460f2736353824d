package storage

// Config holds configuration for the storage adapter.
type Config struct {
	// AccessKeyID is the access key ID for authentication.
	AccessKeyID string `mapstructure:"access_key_id" default:""`
	// AccessKeySecret is the secret access key for authentication.
	AccessKeySecret string `mapstructure:"access_key_secret" default:""`
	// Endpoint is the hostname of the storage service (e.g. oss-cn-hangzhou.aliyuncs.com).
	Endpoint string `mapstructure:"endpoint" default:""`
	// Bucket is the name of the bucket every operation targets.
	Bucket string `mapstructure:"bucket" default:""`
	// TimeoutSeconds is the lifetime of signed URLs in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"3600"`
	// IsPrivate marks the bucket as private. The adapter does not enforce it.
	IsPrivate bool `mapstructure:"is_private" default:"false"`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"true"`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region" default:""`
	// ConnectTimeoutSeconds bounds dialing, TLS handshake and the wait for response headers.
	ConnectTimeoutSeconds int `mapstructure:"connect_timeout_seconds" default:"30"`
}

// DefaultSignTimeoutSeconds is used when TimeoutSeconds is not set.
const DefaultSignTimeoutSeconds = 3600

// Validate checks the required fields in a fixed order and reports the first one missing.
func (c Config) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"accessKeyId", c.AccessKeyID},
		{"accessKeySecret", c.AccessKeySecret},
		{"endpoint", c.Endpoint},
		{"bucket", c.Bucket},
	}
	for _, f := range required {
		if f.value == "" {
			return &ConfigError{Field: f.name}
		}
	}
	return nil
}
