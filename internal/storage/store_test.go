package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectKey(t *testing.T) {
	key := ObjectKey("drivers", "license scan.pdf")
	assert.True(t, strings.HasPrefix(key, "drivers/"))
	assert.True(t, strings.HasSuffix(key, "_license_scan.pdf"))

	key = ObjectKey("vehicles", "itp.pdf")
	assert.True(t, strings.HasPrefix(key, "vehicles/"))

	// Unknown categories fall back to the shared bucket folder.
	assert.True(t, strings.HasPrefix(ObjectKey("", "a.pdf"), "general/"))
	assert.True(t, strings.HasPrefix(ObjectKey("../secrets", "a.pdf"), "general/"))

	// Path components are stripped so a key cannot escape its folder.
	key = ObjectKey("drivers", "../../etc/passwd")
	assert.True(t, strings.HasPrefix(key, "drivers/"))
	assert.NotContains(t, key, "..")

	// The random prefix keeps identical filenames from colliding.
	assert.NotEqual(t, ObjectKey("drivers", "a.pdf"), ObjectKey("drivers", "a.pdf"))
}
