package web

import (
	"embed"
	"io/fs"
	"net/http"
)

// staticFS はフロントエンドの静的ファイルをバイナリに埋め込む
//
//go:embed all:static
var staticFS embed.FS

// Handler はフロントエンドを配信するハンドラーを返す。
// staticDirが指定されていればそのディレクトリから配信し（フロントエンド
// 開発時にバイナリを作り直さずに済む）、空なら埋め込みアセットを使う。
func Handler(staticDir string) (http.Handler, error) {
	if staticDir != "" {
		return http.FileServer(http.Dir(staticDir)), nil
	}

	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, err
	}
	return http.FileServer(http.FS(sub)), nil
}
