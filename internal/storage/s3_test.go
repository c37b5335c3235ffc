package storage

import (
	"path"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestObjectKey(t *testing.T) {
	now := time.Date(2025, 3, 7, 12, 0, 0, 0, time.UTC)

	key := objectKey("briefing.pdf", "application/pdf", now)
	assert.True(t, strings.HasPrefix(key, "assets/2025/03/07/"))
	assert.True(t, strings.HasSuffix(key, ".pdf"))

	// extension inferred from content type when the filename has none
	key = objectKey("upload", "image/png", now)
	assert.True(t, strings.HasSuffix(key, ".png"))

	// unknown content type and no extension leaves the key bare
	key = objectKey("", "application/octet-stream", now)
	assert.False(t, strings.Contains(path.Base(key), "."))
}
