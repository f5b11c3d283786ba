package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/tasukuchiba/hello_fullstack_app/internal/models"
)

// ServerMessage は /api/message が常に返す固定メッセージ
const ServerMessage = "Hello from Server"

// MessageHandler は /api/message エンドポイントのHTTPリクエストを処理する
type MessageHandler struct{}

// NewMessageHandler は新しいMessageHandlerを作成する
func NewMessageHandler() *MessageHandler {
	return &MessageHandler{}
}

// HandleMessage は /api/message エンドポイントのハンドラー。
// リクエストのボディやヘッダーに関わらず、常に同じJSONを返す。
func (h *MessageHandler) HandleMessage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.MessageResponse{Message: ServerMessage})
}

// HandleHealth はヘルスチェック用エンドポイントのハンドラー
func HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
