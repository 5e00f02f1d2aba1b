// =============================
// File: internal/logger/config.go
// =============================
package logger

type Config struct {
	LogFile     string
	MaxSize     int // megabytes
	MaxAge      int // days
	MaxBackups  int // files
	Compress    bool
	Development bool
}

// DefaultConfig returns the rotation settings used when none are supplied.
func DefaultConfig() *Config {
	return &Config{
		LogFile:     "launchkit.log",
		MaxSize:     100,
		MaxAge:      7,
		MaxBackups:  3,
		Compress:    true,
		Development: false,
	}
}
