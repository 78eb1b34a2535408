package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponse_HeaderCaseInsensitive(t *testing.T) {
	resp := &Response{Headers: map[string]string{"Content-Type": "application/json"}}

	assert.Equal(t, "application/json", resp.Header("content-type"))
	assert.Equal(t, "application/json", resp.Header("CONTENT-TYPE"))
	assert.Equal(t, "", resp.Header("X-Missing"))
}

func TestResponse_IsJSON(t *testing.T) {
	tests := []struct {
		contentType string
		expected    bool
	}{
		{"application/json", true},
		{"application/json; charset=utf-8", true},
		{"text/html", false},
		{"", false},
	}

	for _, tt := range tests {
		resp := &Response{Headers: map[string]string{"Content-Type": tt.contentType}}
		assert.Equal(t, tt.expected, resp.IsJSON(), "Content-Type: %s", tt.contentType)
	}
}

func TestResponse_StatusClasses(t *testing.T) {
	tests := []struct {
		statusCode  int
		success     bool
		clientError bool
		serverError bool
	}{
		{200, true, false, false},
		{204, true, false, false},
		{301, false, false, false},
		{404, false, true, false},
		{500, false, false, true},
	}

	for _, tt := range tests {
		resp := &Response{StatusCode: tt.statusCode}
		assert.Equal(t, tt.success, resp.IsSuccess(), "StatusCode: %d", tt.statusCode)
		assert.Equal(t, tt.clientError, resp.IsClientError(), "StatusCode: %d", tt.statusCode)
		assert.Equal(t, tt.serverError, resp.IsServerError(), "StatusCode: %d", tt.statusCode)
	}
}

func TestResponse_BodyJSON(t *testing.T) {
	resp := &Response{Body: []byte(`{"id": 7, "tags": ["a", "b"]}`)}

	value, err := resp.BodyJSON()
	require.NoError(t, err)

	obj := value.(map[string]any)
	assert.Equal(t, float64(7), obj["id"])
}

func TestResponse_JSONPath(t *testing.T) {
	resp := &Response{Body: []byte(`{"data": {"items": [{"id": 1}, {"id": 2}]}}`)}

	assert.Equal(t, int64(2), resp.JSON("data.items.1.id").Int())
	assert.False(t, resp.JSON("data.missing").Exists())
}
