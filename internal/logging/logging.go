package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New はログレベルとフォーマット設定からロガーを構築する。
// 不明なレベルはinfoにフォールバックする。
func New(level, format string) zerolog.Logger {
	return NewWithOutput(level, format, os.Stdout)
}

// NewWithOutput は出力先を指定してロガーを構築する（テスト用）
func NewWithOutput(level, format string, out io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	if format == "console" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}
