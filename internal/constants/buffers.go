package constants

const (
	// RelayBufferSize is the chunk size used when copying an upstream
	// event stream to the caller (32KB).
	RelayBufferSize = 32 * 1024
)
