package storage_test

import (
	"testing"

	"oss-bridge/core/storage"

	"github.com/stretchr/testify/assert"
)

func TestNewClient(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:        "localhost:9000",
			AccessKeyID:     "testkey",
			AccessKeySecret: "testsecret",
			UseSSL:          false,
			Bucket:          "test-bucket",
			Region:          "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
		assert.Equal(t, "http", client.EndpointURL().Scheme)
	})

	t.Run("EndpointWithHTTPS", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:        "https://oss-cn-hangzhou.aliyuncs.com",
			AccessKeyID:     "testkey",
			AccessKeySecret: "testsecret",
			UseSSL:          true,
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.Equal(t, "oss-cn-hangzhou.aliyuncs.com", client.EndpointURL().Host)
	})

	t.Run("EndpointWithPath", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:        "localhost:9000/bucket",
			AccessKeyID:     "testkey",
			AccessKeySecret: "testsecret",
		}

		client, err := storage.NewClient(cfg)
		assert.Error(t, err)
		assert.Nil(t, client)
	})
}
