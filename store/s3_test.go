package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oio/config"
)

func TestSplitEndpoint(t *testing.T) {
	cases := []struct {
		in     string
		host   string
		secure bool
	}{
		{"s3.us-east-1.amazonaws.com", "s3.us-east-1.amazonaws.com", true},
		{"https://oss-cn-hangzhou.aliyuncs.com", "oss-cn-hangzhou.aliyuncs.com", true},
		{"http://localhost:9000", "localhost:9000", false},
	}
	for _, c := range cases {
		host, secure := splitEndpoint(c.in)
		assert.Equal(t, c.host, host)
		assert.Equal(t, c.secure, secure)
	}
}

func TestNormalizePrefix(t *testing.T) {
	assert.Equal(t, "", normalizePrefix(""))
	assert.Equal(t, "path/to/", normalizePrefix("path/to"))
	assert.Equal(t, "path/to/", normalizePrefix("path/to/"))
}

func TestNewS3StoreOffline(t *testing.T) {
	// Client construction needs no network; only the endpoint syntax is
	// checked here.
	st, err := New(config.Service{
		Type:      config.ServiceMinio,
		Endpoint:  "http://localhost:9000",
		Bucket:    "bench",
		AccessKey: "minioadmin",
		SecretKey: "minioadmin",
	})
	require.NoError(t, err)
	assert.NotNil(t, st)
}
