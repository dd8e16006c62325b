package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	nested "github.com/antonfisher/nested-logrus-formatter"
	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/sirupsen/logrus"
)

const timestampFormat = "2006-01-02 15:04:05.000"

// Config controls where and how log lines are written.
type Config struct {
	Level  string
	Format string // "text" or "json"
	// File enables a daily rotated log file next to the console output.
	File   string
	MaxAge int
	// Output defaults to stderr so stdout stays free for split results.
	Output io.Writer
}

type implLogger struct {
	logger *logrus.Logger
}

// New creates a console Logger at the given level.
func New(level string) Logger {
	l, _ := NewWithConfig(Config{Level: level})
	return l
}

// NewWithConfig creates a Logger. It only fails when the log file cannot be opened.
func NewWithConfig(cfg Config) (Logger, error) {
	l := logrus.New()
	l.SetLevel(parseLevel(cfg.Level))

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	if strings.ToLower(cfg.Format) == "json" {
		l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: timestampFormat})
	} else {
		l.SetFormatter(formatter(cfg.File == "" && out == os.Stderr))
	}

	if cfg.File != "" {
		maxAge := cfg.MaxAge
		if maxAge <= 0 {
			maxAge = 7
		}
		writer, err := rotatelogs.New(
			cfg.File+".%Y%m%d",
			rotatelogs.WithLinkName(cfg.File),
			rotatelogs.WithRotationCount(uint(maxAge)),
			rotatelogs.WithRotationTime(24*time.Hour),
		)
		if err != nil {
			return &implLogger{logger: l}, fmt.Errorf("open log file: %w", err)
		}
		out = io.MultiWriter(writer, out)
	}
	l.SetOutput(out)

	return &implLogger{logger: l}, nil
}

func formatter(colors bool) *nested.Formatter {
	return &nested.Formatter{
		FieldsOrder:      []string{"run", "file"},
		HideKeys:         false,
		TimestampFormat:  timestampFormat,
		NoUppercaseLevel: true,
		ShowFullLevel:    true,
		NoColors:         !colors,
	}
}

func parseLevel(level string) logrus.Level {
	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil || lvl > logrus.DebugLevel {
		return logrus.InfoLevel
	}
	return lvl
}

func (l *implLogger) entry(ctx context.Context) *logrus.Entry {
	fields := logrus.Fields{}
	if ctx != nil {
		if run, ok := ctx.Value(runKey{}).(string); ok {
			fields["run"] = run
		}
		if file, ok := ctx.Value(fileKey{}).(string); ok {
			fields["file"] = file
		}
	}
	return l.logger.WithFields(fields)
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.entry(ctx).Debugf(msg, args...)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.entry(ctx).Infof(msg, args...)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.entry(ctx).Warnf(msg, args...)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.entry(ctx).Errorf(msg, args...)
}

type (
	runKey  struct{}
	fileKey struct{}
)

// WithRun tags every line logged with ctx by a processing run ID.
func WithRun(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runKey{}, id)
}

// WithFile tags every line logged with ctx by the input file name.
func WithFile(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, fileKey{}, name)
}
