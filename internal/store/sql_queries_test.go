// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Miguel Gallardo

package store

import (
	"strings"
	"testing"

	"github.com/mgallardo/viajero/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildInsertReservationQuery(t *testing.T) {
	reservation := models.Reservation{
		UserID:      42,
		Destination: "Lima",
		Price:       "100",
		TravelDate:  "2025-01-01",
	}

	query, args, err := buildInsertReservationQuery(reservation)
	require.NoError(t, err)

	require.Len(t, args, 4)
	require.Equal(t, int64(42), args[0])
	require.Equal(t, "Lima", args[1])

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into reservas")
	require.Contains(t, q, "user_id")
	require.Contains(t, q, "destino")
	require.Contains(t, q, "precio")
	require.Contains(t, q, "fecha_viaje")
	require.Contains(t, q, "returning")

	// placeholder format should be $1 (Postgres)
	require.Contains(t, query, "$1")
}

func Test_buildSelectReservationsQuery(t *testing.T) {
	query, args, err := buildSelectReservationsQuery(42)
	require.NoError(t, err)

	require.Len(t, args, 1)
	require.Equal(t, int64(42), args[0])

	q := strings.ToLower(query)
	require.Contains(t, q, "select")
	require.Contains(t, q, "from reservas")
	require.Contains(t, q, "where")
	require.Contains(t, q, "user_id")
	require.Contains(t, q, "order by id desc")
	require.Contains(t, query, "$1")
}

func Test_buildDeleteReservationQuery_MatchesBothKeys(t *testing.T) {
	query, args, err := buildDeleteReservationQuery(10, 42)
	require.NoError(t, err)

	// both keys must be bound: id and owner
	require.Len(t, args, 2)
	assert.ElementsMatch(t, []any{int64(10), int64(42)}, args)

	q := strings.ToLower(query)
	require.Contains(t, q, "delete from reservas")
	require.Contains(t, q, "id =")
	require.Contains(t, q, "user_id =")
}
