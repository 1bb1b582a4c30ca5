package embedding

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyeonwoo/careerfit/internal/types"
)

func TestEmbed_BlankTextIsInvalidInput(t *testing.T) {
	client := NewClient(Config{EndpointURL: "http://localhost:1"})

	_, err := client.Embed(context.Background(), "   ")

	var invalid *types.InvalidInputError
	require.ErrorAs(t, err, &invalid)
}

func TestEmbed_Success(t *testing.T) {
	var gotBody embedRequest
	var gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-API-Key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"embedding":{"values":[0.1,0.2,0.3]}}`))
	}))
	defer server.Close()

	client := NewClient(Config{EndpointURL: server.URL, APIKey: "secret", Model: "embed-001"})
	vector, err := client.Embed(context.Background(), "backend engineer")

	require.NoError(t, err)
	assert.Equal(t, []float64{0.1, 0.2, 0.3}, vector)
	assert.Equal(t, "secret", gotKey)
	assert.Equal(t, "embed-001", gotBody.Model)
	assert.Equal(t, "backend engineer", gotBody.Text)
}

func TestEmbed_Non2xxIsUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(Config{EndpointURL: server.URL})
	_, err := client.Embed(context.Background(), "text")

	var upstream *types.UpstreamError
	require.ErrorAs(t, err, &upstream)
}

func TestEmbed_MalformedBodyIsUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	}))
	defer server.Close()

	client := NewClient(Config{EndpointURL: server.URL})
	_, err := client.Embed(context.Background(), "text")

	var upstream *types.UpstreamError
	require.ErrorAs(t, err, &upstream)
}

func TestEmbed_EmptyValuesIsUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"embedding":{"values":[]}}`))
	}))
	defer server.Close()

	client := NewClient(Config{EndpointURL: server.URL})
	_, err := client.Embed(context.Background(), "text")

	var upstream *types.UpstreamError
	require.ErrorAs(t, err, &upstream)
}
