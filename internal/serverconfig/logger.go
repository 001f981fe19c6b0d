package serverconfig

import "go.uber.org/zap"

// MakeLogger builds the production JSON logger used by both cmd/respb-server
// and cmd/respbctl, at the level named by Config.LogLevel.
func MakeLogger(level string) (*zap.Logger, error) {
	lvl := zap.InfoLevel
	if err := lvl.Set(level); err == nil {
		// accepted: debug, info, warn, error, ...
	} else {
		lvl = zap.InfoLevel
	}

	logConfig := zap.NewProductionConfig()
	logConfig.Level = zap.NewAtomicLevelAt(lvl)
	logConfig.Encoding = "json"

	return logConfig.Build()
}
