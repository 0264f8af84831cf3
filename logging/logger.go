package logging

import "go.uber.org/zap"

// NewExample returns the plain logger used for local runs
func NewExample() *zap.Logger {
	return zap.NewExample()
}

// New creates a new zap logger named after a component
func New(component string) *zap.SugaredLogger {
	return zap.L().Named(component).Sugar()
}
