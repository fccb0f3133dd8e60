package ports

// Logger defines the interface for leveled logging.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	// DebugEnabled reports whether debug output is active, so callers can skip
	// building expensive diagnostic listings.
	DebugEnabled() bool
	Debug(msg string)
	Info(msg string)
	Warn(msg string)
	Error(err error)
}
