package logging

import "context"

// Default is the Logger used by the package level logging functions.
var Default = &Logger{}

func Debug(ctx context.Context, msg string, ds ...Detail) {
	Default.tb().Helper()
	Default.Debug(ctx, msg, ds...)
}

func Info(ctx context.Context, msg string, ds ...Detail) {
	Default.tb().Helper()
	Default.Info(ctx, msg, ds...)
}

func Warn(ctx context.Context, msg string, ds ...Detail) {
	Default.tb().Helper()
	Default.Warn(ctx, msg, ds...)
}

func Error(ctx context.Context, msg string, ds ...Detail) {
	Default.tb().Helper()
	Default.Error(ctx, msg, ds...)
}
