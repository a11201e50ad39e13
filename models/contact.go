package models

import "time"

// ContactMessage is a free-form message submitted through the public
// contact endpoint. It is a write-only sink: no exposed operation reads
// messages back. JSON field names keep the wire format of the public API
// (nombre, email, mensaje).
type ContactMessage struct {
	ID        int64     `json:"-"`
	Name      string    `json:"nombre"`
	Email     string    `json:"email"`
	Message   string    `json:"mensaje"`
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the ContactMessage model.
func (m ContactMessage) TableName() string {
	return "mensajes"
}
