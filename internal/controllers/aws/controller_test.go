package aws_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/isometry/gh-jira-bridge/internal/config"
	"github.com/isometry/gh-jira-bridge/internal/controllers/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ config.SecretResolver = (*aws.Controller)(nil)

func newSSMServer(t *testing.T, values map[string]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "AmazonSSM.GetParameter", r.Header.Get("X-Amz-Target"))
		var in struct {
			Name           string
			WithDecryption bool
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.True(t, in.WithDecryption)

		w.Header().Set("Content-Type", "application/x-amz-json-1.1")
		value, ok := values[in.Name]
		if !ok {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"__type":"ParameterNotFound","message":"parameter not found"}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"Parameter": map[string]any{
				"Name":  in.Name,
				"Type":  "SecureString",
				"Value": value,
			},
		})
	}))
}

func newController(t *testing.T, endpoint string) *aws.Controller {
	t.Helper()
	ctl, err := aws.NewController(
		aws.WithContext(context.Background()),
		aws.WithConfig(awssdk.Config{
			Region:           "eu-west-1",
			Credentials:      credentials.NewStaticCredentialsProvider("AKIDEXAMPLE", "secret", ""),
			BaseEndpoint:     awssdk.String(endpoint),
			RetryMaxAttempts: 1,
		}))
	require.NoError(t, err)
	return ctl
}

func TestController_GetSecret(t *testing.T) {
	srv := newSSMServer(t, map[string]string{"/bridge/github": "s3cr3t"})
	defer srv.Close()

	value, err := newController(t, srv.URL).GetSecret(context.Background(), "/bridge/github", true)
	require.NoError(t, err)
	require.NotNil(t, value)
	assert.Equal(t, "s3cr3t", *value)
}

func TestController_GetSecret_NotFound(t *testing.T) {
	srv := newSSMServer(t, nil)
	defer srv.Close()

	_, err := newController(t, srv.URL).GetSecret(context.Background(), "/bridge/missing", true)
	assert.Error(t, err)
}
