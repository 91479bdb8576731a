package syncclient

import "errors"

// ErrRequestFailed is returned when the API responds with a non-OK status.
var ErrRequestFailed = errors.New("request failed")
