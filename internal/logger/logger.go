package logger

import (
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogFilePath is the path to the game log file, relative to the working directory (project root when run via go run ./cmd/game).
const LogFilePath = "logs/game.log"

// maxLines bounds the in-memory history shown by the console.
const maxLines = 500

const timeFormat = "2006-01-02 15:04:05"

// Logger is a zerolog.Logger that writes JSON lines to a rotated file on disk and keeps a
// human-readable copy of recent lines in memory for the in-game console.
type Logger struct {
	zerolog.Logger
	history *history
}

// New returns a Logger writing to path. The file is rotated by lumberjack; its directory is created on first write.
func New(path string) *Logger {
	h := &history{}
	file := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
	}
	console := zerolog.ConsoleWriter{
		Out:          h,
		NoColor:      true,
		TimeFormat:   timeFormat,
		PartsExclude: []string{zerolog.LevelFieldName},
	}
	zl := zerolog.New(zerolog.MultiLevelWriter(file, console)).With().Timestamp().Logger()
	return &Logger{Logger: zl, history: h}
}

// Log records a plain line at info level (e.g. console input or a command error).
func (l *Logger) Log(line string) {
	l.Info().Msg(line)
}

// Lines returns a copy of the most recent lines, oldest first.
func (l *Logger) Lines() []string {
	return l.history.snapshot()
}

// history collects formatted console lines. zerolog calls Write once per event.
type history struct {
	mu    sync.Mutex
	lines []string
}

func (h *history) Write(p []byte) (int, error) {
	text := strings.TrimRight(string(p), "\n")
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, line := range strings.Split(text, "\n") {
		h.lines = append(h.lines, line)
	}
	if n := len(h.lines) - maxLines; n > 0 {
		h.lines = append(h.lines[:0], h.lines[n:]...)
	}
	return len(p), nil
}

func (h *history) snapshot() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.lines))
	copy(out, h.lines)
	return out
}
