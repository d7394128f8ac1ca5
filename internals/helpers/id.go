package helper

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Entity id prefixes.
const (
	PrefixGeneration   = "g"
	PrefixTask         = "t"
	PrefixTaskDoc      = "doc"
	PrefixPythonLesson = "py"
	PrefixToken        = "tok"
)

// NowFunc is the clock used for createdAt stamps. Mockable in tests.
var NowFunc = time.Now

// NowMillis is NowFunc in unix milliseconds.
func NowMillis() int64 {
	return NowFunc().UnixMilli()
}

// NewID returns "<prefix>_<32 hex chars>" from a random (v4) UUID.
func NewID(prefix string) string {
	return prefix + "_" + strings.ReplaceAll(uuid.NewString(), "-", "")
}
