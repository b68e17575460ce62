package clipboard

import "errors"

// ErrUnsupported is returned when the platform has no clipboard mechanism.
var ErrUnsupported = errors.New("clipboard not supported on this platform")
