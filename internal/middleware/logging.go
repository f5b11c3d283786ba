package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// statusRecorder はレスポンスのステータスコードを記録するResponseWriter
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// RequestLogger はリクエストごとに1行のアクセスログを出力するミドルウェア。
// リクエストIDを発行し、X-Request-IDヘッダーとして応答にも付ける。
type RequestLogger struct {
	log zerolog.Logger
}

// NewRequestLogger は新しいRequestLoggerを作成する
func NewRequestLogger(log zerolog.Logger) *RequestLogger {
	return &RequestLogger{log: log}
}

// Wrap はハンドラーをアクセスログ処理でラップする
func (l *RequestLogger) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.New().String()
		w.Header().Set("X-Request-ID", requestID)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		l.log.Info().
			Str("request_id", requestID).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("duration", time.Since(start)).
			Msg("request handled")
	})
}
