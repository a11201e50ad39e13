package models

import "time"

// Reservation is a trip booking record owned by exactly one user.
//
// Destination, price and travel date are stored as free text: the system
// accepts malformed-but-present values instead of rejecting them, so no
// numeric or date types are imposed at this level. JSON field names keep
// the wire format of the public API (destino, precio, fecha_viaje).
type Reservation struct {
	// ID is the server-assigned identifier of the reservation row.
	ID int64 `json:"id"`

	// UserID references the owning user. It is resolved from the bearer
	// token of the request that created the record, never from the body.
	UserID int64 `json:"-"`

	// Destination is the trip destination.
	Destination string `json:"destino"`

	// Price is the quoted price, kept as text.
	Price string `json:"precio"`

	// TravelDate is the requested travel date, kept as text.
	TravelDate string `json:"fecha_viaje"`

	// CreatedAt is the timestamp when the reservation was created.
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// TableName returns the name of the database table
// associated with the Reservation model.
func (r Reservation) TableName() string {
	return "reservas"
}
