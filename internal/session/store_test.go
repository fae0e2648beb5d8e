package session

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "token.json")
	store := NewTokenStore(path)

	assert.Equal(t, "", store.Load(), "missing file loads as empty token")

	assert.NoError(t, store.Save("tok123"))
	assert.Equal(t, "tok123", store.Load())

	assert.NoError(t, store.Clear())
	assert.Equal(t, "", store.Load())

	//clearing twice must not fail
	assert.NoError(t, store.Clear())
}

func TestTokenStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	store := NewTokenStore(path)
	assert.NoError(t, store.Save("tok123"))

	writeGarbage(t, path)
	assert.Equal(t, "", store.Load(), "corrupt file loads as logged out")
}
