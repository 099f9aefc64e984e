// Package helpers holds small utilities shared by the calculator's
// packages.
package helpers

import (
	"log/slog"
	"os"
)

// SetupLogger creates a configured logger for a calculator component.
// If the provided handler is nil, a default text handler writing to
// stderr is created, grouped under the component name.
//
// Parameters:
//   - handler: the slog.Handler to use, or nil for defaults
//   - component: the component family (e.g. "rpn")
//   - groupName: optional additional group within the component
//
// Returns:
//   - the configured handler
//   - a logger created from the handler
func SetupLogger(handler slog.Handler, component string, groupName string) (slog.Handler, *slog.Logger) {
	if handler == nil {
		defaultHandler := slog.NewTextHandler(os.Stderr, nil)
		handler = defaultHandler.WithGroup(component)
	}

	var logger *slog.Logger
	if groupName != "" {
		logger = slog.New(handler.WithGroup(groupName))
	} else {
		logger = slog.New(handler)
	}

	return handler, logger
}
