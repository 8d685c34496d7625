package log

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"

	"github.com/YuminosukeSato/linreg/pkg/errors"
)

// ZerologProvider implements LoggerProvider with a shared zerolog backend.
type ZerologProvider struct {
	mu     sync.RWMutex
	logger *ZerologLogger
}

// NewZerologProvider creates a provider whose loggers write to stderr.
func NewZerologProvider(level Level) *ZerologProvider {
	return NewZerologProviderTo(os.Stderr, level)
}

// NewZerologProviderTo creates a provider whose loggers write JSON lines to w.
func NewZerologProviderTo(w io.Writer, level Level) *ZerologProvider {
	return &ZerologProvider{logger: NewZerologLogger(w, level)}
}

// GetLogger implements LoggerProvider.GetLogger.
func (p *ZerologProvider) GetLogger() Logger {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.logger
}

// GetLoggerWithName implements LoggerProvider.GetLoggerWithName.
func (p *ZerologProvider) GetLoggerWithName(name string) Logger {
	return p.GetLogger().With(ComponentKey, name)
}

// SetLevel implements LoggerProvider.SetLevel.
func (p *ZerologProvider) SetLevel(level Level) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.logger = p.logger.withLevel(level)
}

var (
	providerMu sync.RWMutex
	provider   LoggerProvider = NewZerologProvider(LevelWarn)
)

// SetProvider replaces the package-wide provider.
func SetProvider(p LoggerProvider) {
	providerMu.Lock()
	defer providerMu.Unlock()
	provider = p
}

func currentProvider() LoggerProvider {
	providerMu.RLock()
	defer providerMu.RUnlock()
	return provider
}

// GetLogger returns the package-wide default logger.
func GetLogger() Logger {
	return currentProvider().GetLogger()
}

// GetLoggerWithName returns the default logger tagged with a component name.
func GetLoggerWithName(name string) Logger {
	return currentProvider().GetLoggerWithName(name)
}

// SetLevel sets the minimum level of the package-wide provider.
func SetLevel(level Level) {
	currentProvider().SetLevel(level)
}

// RouteWarnings sends every pkg/errors warning to logger at warn level.
// Passing nil restores the plain warning handler.
func RouteWarnings(logger Logger) {
	if logger == nil {
		errors.SetZerologWarnFunc(nil)
		return
	}
	errors.SetZerologWarnFunc(func(w error) {
		var obj zerolog.LogObjectMarshaler
		if errors.As(w, &obj) {
			logger.Warn(w.Error(), WarningKey, obj, ErrorTypeKey, fmt.Sprintf("%T", obj))
			return
		}
		logger.Warn(w.Error(), WarningKey, w)
	})
}
