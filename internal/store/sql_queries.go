package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/mgallardo/viajero/models"
)

const (
	createUser = `INSERT INTO users (username, email, password_hash)
    VALUES ($1, $2, $3)
    RETURNING user_id, username, email, password_hash, created_at;`

	findUserByUsername = `SELECT user_id, username, email, password_hash, created_at
    FROM users
    WHERE username = $1;`

	insertContactMessage = `INSERT INTO mensajes (nombre, email, mensaje)
    VALUES ($1, $2, $3);`
)

// psql builds queries with PostgreSQL-style $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildInsertReservationQuery produces the INSERT for a new reservation.
// The owner id always comes from the authenticated request context, never
// from client-supplied data.
func buildInsertReservationQuery(reservation models.Reservation) (string, []any, error) {
	return psql.
		Insert(reservation.TableName()).
		Columns("user_id", "destino", "precio", "fecha_viaje").
		Values(reservation.UserID, reservation.Destination, reservation.Price, reservation.TravelDate).
		Suffix("RETURNING id, user_id, destino, precio, fecha_viaje, created_at").
		ToSql()
}

// buildSelectReservationsQuery produces the owner-scoped listing query.
// Results are ordered by id descending: creation order, most recent first.
func buildSelectReservationsQuery(userID int64) (string, []any, error) {
	return psql.
		Select("id", "user_id", "destino", "precio", "fecha_viaje", "created_at").
		From(models.Reservation{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("id DESC").
		ToSql()
}

// buildDeleteReservationQuery produces the owner-scoped delete. Both the
// reservation id and the owner id must match in the same statement, so a
// caller can never delete another user's record by guessing ids.
func buildDeleteReservationQuery(reservationID, userID int64) (string, []any, error) {
	return psql.
		Delete(models.Reservation{}.TableName()).
		Where(sq.Eq{"id": reservationID, "user_id": userID}).
		ToSql()
}
