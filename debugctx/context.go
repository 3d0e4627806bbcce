package debugctx

import (
	"context"
	"fmt"
	"io"
	"strings"
)

type settingsKey struct{}

type settings struct {
	enabled bool
	writer  io.Writer
}

func With(ctx context.Context, enabled bool, writer io.Writer) context.Context {
	return context.WithValue(ctx, settingsKey{}, settings{enabled: enabled, writer: writer})
}

func Enabled(ctx context.Context) bool {
	if ctx == nil {
		return false
	}

	current, _ := ctx.Value(settingsKey{}).(settings)
	return current.enabled
}

func Printf(ctx context.Context, format string, args ...any) {
	if ctx == nil {
		return
	}

	current, _ := ctx.Value(settingsKey{}).(settings)
	if !current.enabled || current.writer == nil {
		return
	}

	message := strings.TrimSpace(fmt.Sprintf(format, args...))
	if message == "" {
		return
	}

	_, _ = fmt.Fprintf(current.writer, "debug: %s\n", message)
}
