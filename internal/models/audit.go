package models

// AuditEvent describes a vault mutation published to Kafka. It carries
// identifiers only, never ciphertext or plaintext.
type AuditEvent struct {
	EventID   string `json:"event_id"`
	Timestamp int64  `json:"timestamp"`
	UserID    int64  `json:"user_id"`
	ItemID    int64  `json:"item_id"`
	Operation string `json:"operation"` // create, update, delete
}
