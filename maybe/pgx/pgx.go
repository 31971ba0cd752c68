// Package pgx converts between pgtype nullable values and Maybe at the
// database boundary. pgtype carries presence as a Valid flag next to the
// payload, which is the same shape Maybe stores, so every conversion is a
// pure re-tagging with no I/O.
package pgx

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/gf4t47/functional-maybe/maybe"
)

// FromText converts a nullable text column value.
func FromText(t pgtype.Text) maybe.Maybe[string] {
	return maybe.FromTuple(t.String, t.Valid)
}

// ToText converts a Maybe back into a nullable text parameter.
func ToText(m maybe.Maybe[string]) pgtype.Text {
	s, ok := m.Get()
	return pgtype.Text{String: s, Valid: ok}
}

// FromInt4 converts a nullable int4 column value.
func FromInt4(i pgtype.Int4) maybe.Maybe[int32] {
	return maybe.FromTuple(i.Int32, i.Valid)
}

// FromInt8 converts a nullable int8 column value.
func FromInt8(i pgtype.Int8) maybe.Maybe[int64] {
	return maybe.FromTuple(i.Int64, i.Valid)
}

// FromBool converts a nullable bool column value.
func FromBool(b pgtype.Bool) maybe.Maybe[bool] {
	return maybe.FromTuple(b.Bool, b.Valid)
}

// FromFloat8 converts a nullable float8 column value.
func FromFloat8(f pgtype.Float8) maybe.Maybe[float64] {
	return maybe.FromTuple(f.Float64, f.Valid)
}

// FromTimestamptz converts a nullable timestamptz column value.
// Postgres infinity markers carry no usable time.Time and map to Nothing.
func FromTimestamptz(ts pgtype.Timestamptz) maybe.Maybe[time.Time] {
	if !ts.Valid || ts.InfinityModifier != pgtype.Finite {
		return maybe.Nothing[time.Time]()
	}
	return maybe.Just(ts.Time)
}

// FromUUID converts a nullable uuid column value.
func FromUUID(u pgtype.UUID) maybe.Maybe[uuid.UUID] {
	if !u.Valid {
		return maybe.Nothing[uuid.UUID]()
	}
	return maybe.Just(uuid.UUID(u.Bytes))
}

// ToUUID converts a Maybe back into a nullable uuid parameter.
func ToUUID(m maybe.Maybe[uuid.UUID]) pgtype.UUID {
	id, ok := m.Get()
	return pgtype.UUID{Bytes: [16]byte(id), Valid: ok}
}
