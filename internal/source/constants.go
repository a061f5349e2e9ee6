package source

// Location schemes
const (
	SchemeHTTP  = "http"
	SchemeHTTPS = "https"
	SchemeFile  = "file"

	fileURLPrefix = "file://"
)

// MaxBodyBytes bounds the size of a fetched configuration
const MaxBodyBytes = 16 << 20

// Error messages
const (
	ErrMsgEmptyLocation     = "source location is empty"
	ErrMsgTooLarge          = "source exceeds size limit"
	ErrMsgUnexpectedStatus  = "unexpected response status"
	ErrMsgUnsupportedScheme = "unsupported source scheme"

	ErrFmtBuildRequest = "failed to build request for %s: %w"
	ErrFmtRequest      = "failed to fetch %s: %w"
	ErrFmtStatus       = "%w: %s returned %d"
	ErrFmtReadBody     = "failed to read %s: %w"
	ErrFmtReadFile     = "failed to read file %s: %w"
	ErrFmtTooLarge     = "%w: %s is larger than %d bytes"
	ErrFmtScheme       = "%w: %q"
)

// Log messages
const (
	LogMsgCacheHit    = "Source served from cache"
	LogMsgFetching    = "Fetching source"
	LogMsgFetched     = "Source fetched"
	LogMsgFetchFailed = "Source fetch failed"
	LogMsgInvalidated = "Source cache entry invalidated"
)
