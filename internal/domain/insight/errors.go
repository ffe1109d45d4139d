package insight

import "errors"

// Sentinel kinds for analysis errors.
var (
	ErrUnsupportedTestType = errors.New("unsupported test type")
	ErrMissingDimension    = errors.New("missing score dimension")
)
