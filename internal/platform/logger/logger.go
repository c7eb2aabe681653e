package logger

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

var levelNames = map[Level]string{
	Debug: "debug",
	Info:  "info",
	Warn:  "warn",
	Error: "error",
}

func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return Debug
	case "warn", "warning":
		return Warn
	case "error":
		return Error
	default:
		return Info
	}
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "info"
}

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

func ParseFormat(s string) Format {
	if strings.EqualFold(strings.TrimSpace(s), "json") {
		return FormatJSON
	}
	return FormatText
}

type Logger interface {
	With(fields map[string]any) Logger

	Debug(msg string, fields map[string]any)
	Info(msg string, fields map[string]any)
	Warn(msg string, fields map[string]any)
	Error(msg string, fields map[string]any)
}

type Options struct {
	Level  Level
	Format Format
	App    string
	Output io.Writer // default os.Stdout
}

// lineLogger escribe una línea por entrada, en texto key=value o JSON.
type lineLogger struct {
	mu     *sync.Mutex
	out    io.Writer
	level  Level
	format Format
	base   map[string]any
	now    func() time.Time
}

func New(opts Options) Logger {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	format := opts.Format
	if format == "" {
		format = FormatText
	}

	base := map[string]any{}
	if app := strings.TrimSpace(opts.App); app != "" {
		base["app"] = app
	}

	return &lineLogger{
		mu:     &sync.Mutex{},
		out:    out,
		level:  opts.Level,
		format: format,
		base:   base,
		now:    time.Now,
	}
}

// NewFromEnv lee LOG_LEVEL, LOG_FORMAT y APP_NAME (default pawfam-api).
func NewFromEnv() Logger {
	app := os.Getenv("APP_NAME")
	if strings.TrimSpace(app) == "" {
		app = "pawfam-api"
	}
	return New(Options{
		Level:  ParseLevel(os.Getenv("LOG_LEVEL")),
		Format: ParseFormat(os.Getenv("LOG_FORMAT")),
		App:    app,
	})
}

func (l *lineLogger) With(fields map[string]any) Logger {
	if len(fields) == 0 {
		return l
	}

	cp := *l
	cp.base = merge(l.base, fields)
	return &cp
}

func (l *lineLogger) Debug(msg string, fields map[string]any) { l.write(Debug, msg, fields) }
func (l *lineLogger) Info(msg string, fields map[string]any)  { l.write(Info, msg, fields) }
func (l *lineLogger) Warn(msg string, fields map[string]any)  { l.write(Warn, msg, fields) }
func (l *lineLogger) Error(msg string, fields map[string]any) { l.write(Error, msg, fields) }

func (l *lineLogger) write(lvl Level, msg string, fields map[string]any) {
	if lvl < l.level {
		return
	}

	entry := merge(l.base, fields)
	entry["ts"] = l.now().UTC().Format(time.RFC3339Nano)
	entry["level"] = lvl.String()
	entry["msg"] = msg

	var line string
	if l.format == FormatJSON {
		b, err := json.Marshal(entry)
		if err != nil {
			b, _ = json.Marshal(map[string]any{"level": lvl.String(), "msg": msg, "log_error": err.Error()})
		}
		line = string(b)
	} else {
		line = formatText(entry)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = fmt.Fprintln(l.out, line)
}

func merge(base, extra map[string]any) map[string]any {
	out := make(map[string]any, len(base)+len(extra))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range extra {
		if strings.TrimSpace(k) == "" {
			continue
		}
		out[k] = v
	}
	return out
}

func formatText(m map[string]any) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, m[k]))
	}
	return strings.Join(parts, " ")
}

type nop struct{}

func (nop) With(map[string]any) Logger   { return nop{} }
func (nop) Debug(string, map[string]any) {}
func (nop) Info(string, map[string]any)  {}
func (nop) Warn(string, map[string]any)  {}
func (nop) Error(string, map[string]any) {}

// Nop descarta todo; útil en tests y como fallback de FromContext.
func Nop() Logger { return nop{} }

type ctxKey struct{}

func WithContext(ctx context.Context, l Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

func FromContext(ctx context.Context) Logger {
	if l, ok := ctx.Value(ctxKey{}).(Logger); ok && l != nil {
		return l
	}
	return Nop()
}
