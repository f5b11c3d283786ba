package middleware

import (
	"net/http"

	"github.com/samber/lo"
)

// CORS はオリジン許可リストに基づいてCORSヘッダーを付与するミドルウェア。
// 許可リストにあるオリジンからのリクエストにのみ
// Access-Control-Allow-Origin を返す。リストにないオリジンには
// CORSヘッダーを付けずにそのまま応答する（ブラウザ側でブロックされる）。
type CORS struct {
	allowedOrigins []string
}

// NewCORS は新しいCORSミドルウェアを作成する
func NewCORS(allowedOrigins []string) *CORS {
	return &CORS{allowedOrigins: allowedOrigins}
}

// Wrap はハンドラーをCORS処理でラップする
func (c *CORS) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		// キャッシュがオリジンの異なる応答を混同しないようにする
		w.Header().Add("Vary", "Origin")

		allowed := origin != "" && lo.Contains(c.allowedOrigins, origin)
		if allowed {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
		}

		// プリフライトリクエストはここで応答を返し、ハンドラーには渡さない
		if r.Method == http.MethodOptions {
			if allowed {
				w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
				if reqHeaders := r.Header.Get("Access-Control-Request-Headers"); reqHeaders != "" {
					w.Header().Set("Access-Control-Allow-Headers", reqHeaders)
				}
			}
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
