package monitor

import "errors"

// ErrStalled is returned by Monitor.Wait when coverage stops growing.
var ErrStalled = errors.New("scraping stalled")
