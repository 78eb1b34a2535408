package builtin

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_UUID(t *testing.T) {
	r := NewRegistry()

	result, ok := r.Call("uuid()")
	require.True(t, ok)
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`), result)
}

func TestRegistry_Base64(t *testing.T) {
	r := NewRegistry()

	result, ok := r.Call(`base64("hello")`)
	require.True(t, ok)
	assert.Equal(t, "aGVsbG8=", result)
}

func TestRegistry_RandomString(t *testing.T) {
	r := NewRegistry()

	result, ok := r.Call("randomString(8)")
	require.True(t, ok)
	assert.Len(t, result.(string), 8)
}

func TestRegistry_RandomIntRange(t *testing.T) {
	r := NewRegistry()

	for i := 0; i < 20; i++ {
		result, ok := r.Call("randomInt(10, 20)")
		require.True(t, ok)
		n := result.(int)
		assert.GreaterOrEqual(t, n, 10)
		assert.Less(t, n, 20)
	}
}

func TestRegistry_URLEncode(t *testing.T) {
	r := NewRegistry()

	result, ok := r.Call(`urlEncode("a b&c")`)
	require.True(t, ok)
	assert.Equal(t, "a+b%26c", result)
}

func TestRegistry_UnknownFunction(t *testing.T) {
	r := NewRegistry()

	_, ok := r.Call("nope()")
	assert.False(t, ok)
}

func TestRegistry_NotACall(t *testing.T) {
	r := NewRegistry()

	_, ok := r.Call("userId")
	assert.False(t, ok)
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()
	r.Register("answer", func(_ []string) any { return 42 })

	result, ok := r.Call("answer()")
	require.True(t, ok)
	assert.Equal(t, 42, result)
}

func TestSplitArgs_QuotedComma(t *testing.T) {
	args := splitArgs(`"a,b", c`)
	assert.Equal(t, []string{"a,b", "c"}, args)
}
