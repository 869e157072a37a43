package latex

const (
	DefaultMaxInputSize = 1 << 20
	DefaultMaxNodes     = 100000
	DefaultMaxDepth     = 128
)

// Limits bound the work done for a single conversion, zero value means the default.
type Limits struct {
	MaxInputSize int // bytes
	MaxNodes     int
	MaxDepth     int // groups and environments
}

func (l Limits) withDefaults() Limits {
	if l.MaxInputSize <= 0 {
		l.MaxInputSize = DefaultMaxInputSize
	}

	if l.MaxNodes <= 0 {
		l.MaxNodes = DefaultMaxNodes
	}

	if l.MaxDepth <= 0 {
		l.MaxDepth = DefaultMaxDepth
	}

	return l
}
