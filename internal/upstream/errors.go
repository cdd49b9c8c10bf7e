package upstream

// NetworkError reports a transport-level failure reaching a provider:
// DNS resolution, connection refused, or a timed-out call. It never wraps
// an HTTP-level rejection; those travel back as a normal Response.
type NetworkError struct {
	Cause error
}

func (e *NetworkError) Error() string {
	return "upstream network failure: " + e.Cause.Error()
}

func (e *NetworkError) Unwrap() error { return e.Cause }
