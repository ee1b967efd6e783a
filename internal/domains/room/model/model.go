package model

import (
	"database/sql"
	"fmt"
	"hotel/shared/constant"
	"hotel/shared/failure"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldNumber      = "room_number"
	FieldType        = "room_type"
	FieldStatus      = "status"
	FieldBasePrice   = "base_price"
	FieldExtraFees   = "extra_fees"
	FieldHasJacuzzi  = "has_jacuzzi"
	FieldJacuzziCost = "jacuzzi_cost"
)

const (
	TypeStandard = "standard"
	TypeDeluxe   = "deluxe"
	TypeSuite    = "suite"
)

// Unsaved is the number of a room that storage has not numbered yet.
const Unsaved = -1

// Kind is the variant of a room. It is one of Standard, Deluxe or Suite.
type Kind interface {
	Type() string
	kind()
}

type Standard struct{}

type Deluxe struct {
	ExtraFees float64
}

type Suite struct {
	HasJacuzzi  bool
	JacuzziCost float64
}

func (Standard) Type() string { return TypeStandard }
func (Deluxe) Type() string   { return TypeDeluxe }
func (Suite) Type() string    { return TypeSuite }

func (Standard) kind() {}
func (Deluxe) kind()   {}
func (Suite) kind()    {}

type Room struct {
	Number    int
	BasePrice float64
	Status    string
	Kind      Kind
}

func NewStandard(number int, basePrice float64, status string) Room {
	return Room{Number: number, BasePrice: basePrice, Status: status, Kind: Standard{}}
}

func NewDeluxe(number int, basePrice float64, status string, extraFees float64) Room {
	return Room{Number: number, BasePrice: basePrice, Status: status, Kind: Deluxe{ExtraFees: extraFees}}
}

func NewSuite(number int, basePrice float64, status string, hasJacuzzi bool, jacuzziCost float64) Room {
	return Room{
		Number:    number,
		BasePrice: basePrice,
		Status:    status,
		Kind:      Suite{HasJacuzzi: hasJacuzzi, JacuzziCost: jacuzziCost},
	}
}

func (r Room) Type() string {
	if r.Kind == nil {
		return TypeStandard
	}

	return r.Kind.Type()
}

// TotalPrice is the nightly price including the variant's surcharge.
func (r Room) TotalPrice() float64 {
	switch k := r.Kind.(type) {
	case Deluxe:
		return r.BasePrice + k.ExtraFees
	case Suite:
		if k.HasJacuzzi {
			return r.BasePrice + k.JacuzziCost
		}

		return r.BasePrice
	default:
		return r.BasePrice
	}
}

func (r *Room) SetPrice(price float64) {
	r.BasePrice = price
}

func (r *Room) SetStatus(status string) {
	r.Status = status
}

// SetExtraFees changes the surcharge of a deluxe room.
func (r *Room) SetExtraFees(fees float64) error {
	if _, ok := r.Kind.(Deluxe); !ok {
		return failure.BadRequestFromString(fmt.Sprintf("room %d is not a deluxe room", r.Number)) //nolint:wrapcheck
	}

	r.Kind = Deluxe{ExtraFees: fees}

	return nil
}

// IsAvailable compares the status against "available" exactly.
func (r Room) IsAvailable() bool {
	return r.Status == constant.RoomStatusAvailable
}

// Row is the rooms table layout. Variant columns are NULL for other variants.
type Row struct {
	Number      int             `db:"room_number"`
	Type        string          `db:"room_type"`
	Status      string          `db:"status"`
	BasePrice   float64         `db:"base_price"`
	ExtraFees   sql.NullFloat64 `db:"extra_fees"`
	HasJacuzzi  sql.NullBool    `db:"has_jacuzzi"`
	JacuzziCost sql.NullFloat64 `db:"jacuzzi_cost"`
}

// BaseRow holds only the columns shared by every variant.
func BaseRow(room Room) Row {
	return Row{
		Number:    room.Number,
		Type:      room.Type(),
		Status:    room.Status,
		BasePrice: room.BasePrice,
	}
}

// VariantFields returns the variant columns to write after the base row exists.
func VariantFields(room Room) map[string]any {
	switch k := room.Kind.(type) {
	case Deluxe:
		return map[string]any{FieldExtraFees: k.ExtraFees}
	case Suite:
		return map[string]any{FieldHasJacuzzi: k.HasJacuzzi, FieldJacuzziCost: k.JacuzziCost}
	default:
		return nil
	}
}

// ToRoom rebuilds the variant named by the room_type discriminator.
func (r Row) ToRoom() (Room, error) {
	switch r.Type {
	case TypeStandard:
		return NewStandard(r.Number, r.BasePrice, r.Status), nil
	case TypeDeluxe:
		return NewDeluxe(r.Number, r.BasePrice, r.Status, r.ExtraFees.Float64), nil
	case TypeSuite:
		return NewSuite(r.Number, r.BasePrice, r.Status, r.HasJacuzzi.Bool, r.JacuzziCost.Float64), nil
	default:
		return Room{}, failure.DataIntegrity(fmt.Sprintf("couldn't create room %d from row: unknown room type %q", r.Number, r.Type)) //nolint:wrapcheck
	}
}

// IsValidType reports whether roomType names a known variant.
func IsValidType(roomType string) bool {
	switch roomType {
	case TypeStandard, TypeDeluxe, TypeSuite:
		return true
	default:
		return false
	}
}
