package domain

import "time"

// File permissions constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// SecureFilePermissions is the permission for sensitive files (rw-------)
	SecureFilePermissions = 0o600
)

// Engine defaults
const (
	// DefaultHistorySize is how many analyzed contexts the engine remembers
	DefaultHistorySize = 10
	// DefaultMaxCacheEntries is the maximum number of cached suggestion lists
	DefaultMaxCacheEntries = 100
	// DefaultMaxResults is how many suggestions a generation returns
	DefaultMaxResults = 8
	// DefaultRecencyWindow is how long a used suggestion earns the recency bonus
	DefaultRecencyWindow = 7 * 24 * time.Hour
	// SignaturePrefixLength is how many runes of the current line key the cache
	SignaturePrefixLength = 50
)

// Usage constants
const (
	// DefaultUsageListLimit is the default number of usage records to display
	DefaultUsageListLimit = 20
)

// BuiltinLanguages lists the language providers shipped with the binary.
var BuiltinLanguages = []string{"javascript", "typescript", "python"}

// Time formats
const (
	// TimestampFormat is the standard timestamp format
	TimestampFormat = time.RFC3339
)
