package template

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_SinglePlaceholder(t *testing.T) {
	result, err := Render("https://api.example.com/items/{{id}}", map[string]string{"id": "7"})

	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com/items/7", result)
}

func TestRender_MultiplePlaceholders(t *testing.T) {
	result, err := Render("/users/{{userId}}/posts/{{postId}}", map[string]string{
		"userId": "42",
		"postId": "99",
	})

	require.NoError(t, err)
	assert.Equal(t, "/users/42/posts/99", result)
}

func TestRender_NoPlaceholders(t *testing.T) {
	result, err := Render("/plain/path", map[string]string{"unused": "x"})

	require.NoError(t, err)
	assert.Equal(t, "/plain/path", result)
}

func TestRender_UnresolvedFails(t *testing.T) {
	_, err := Render("/items/{{id}}/sub/{{other}}", map[string]string{"id": "1"})

	require.Error(t, err)
	var unresolved *UnresolvedError
	require.ErrorAs(t, err, &unresolved)
	assert.Equal(t, []string{"other"}, unresolved.Names)
	assert.Contains(t, err.Error(), "other")
}

func TestRender_AllUnresolvedListed(t *testing.T) {
	_, err := Render("/{{a}}/{{b}}/{{a}}", nil)

	var unresolved *UnresolvedError
	require.ErrorAs(t, err, &unresolved)
	assert.Equal(t, []string{"a", "b"}, unresolved.Names)
}

func TestRender_UnusedVariablesIgnored(t *testing.T) {
	result, err := Render("/items/{{id}}", map[string]string{"id": "1", "extra": "y"})

	require.NoError(t, err)
	assert.Equal(t, "/items/1", result)
}

func TestRender_BuiltinFunction(t *testing.T) {
	result, err := Render("/resources/{{uuid()}}", nil)

	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^/resources/[0-9a-f-]{36}$`), result)
}

func TestRender_WhitespaceInsidePlaceholder(t *testing.T) {
	result, err := Render("/items/{{ id }}", map[string]string{"id": "3"})

	require.NoError(t, err)
	assert.Equal(t, "/items/3", result)
}

func TestHasPlaceholders(t *testing.T) {
	assert.True(t, HasPlaceholders("/items/{{id}}"))
	assert.False(t, HasPlaceholders("/items/7"))
}
