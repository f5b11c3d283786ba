package models

// MessageResponse は /api/message が返すJSONボディを表す構造体
type MessageResponse struct {
	Message string `json:"message"`
}
