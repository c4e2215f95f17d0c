// internal/models/chat.go
package models

type ChatRole string

const (
	ChatRoleUser  ChatRole = "user"
	ChatRoleModel ChatRole = "model"
)

// ChatMessage is one turn of the stylist transcript. The transcript is
// append-only; turns are never edited or removed.
type ChatMessage struct {
	Role ChatRole `json:"role"`
	Text string   `json:"text"`
}
