package model

import (
	"fmt"
	"hotel/shared/constant"
	"hotel/shared/datetime"
	"hotel/shared/failure"
	"hotel/shared/validator"
	"strings"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID         = "booking_id"
	FieldRoomNumber = "room_number"
	FieldCustomerID = "customer_id"
	FieldCheckIn    = "check_in"
	FieldCheckOut   = "check_out"
	FieldCost       = "cost"
	FieldStatus     = "status"
)

const Unsaved = -1

const statusTag = "oneof=" + constant.BookingStatusPending + " " + constant.BookingStatusDone + " " + constant.BookingStatusCancelled

type Booking struct {
	id         int
	roomNumber int
	customerID int
	checkIn    datetime.DateTime
	checkOut   datetime.DateTime
	cost       float64
	status     string
}

// New builds an unsaved booking and prices it at nightlyPrice per night.
func New(roomNumber, customerID int, checkIn, checkOut datetime.DateTime, status string, nightlyPrice float64) (Booking, error) {
	b, err := Restore(Unsaved, roomNumber, customerID, 0, checkIn, checkOut, status)
	if err != nil {
		return Booking{}, err
	}

	b.SetCost(nightlyPrice)

	return b, nil
}

// Restore rebuilds a booking with a known cost. Status, check-in and check-out
// are validated in that order.
func Restore(id, roomNumber, customerID int, cost float64, checkIn, checkOut datetime.DateTime, status string) (Booking, error) {
	b := Booking{id: id, roomNumber: roomNumber, customerID: customerID, cost: cost}

	if err := b.SetStatus(status); err != nil {
		return Booking{}, err
	}

	if err := b.SetCheckIn(checkIn); err != nil {
		return Booking{}, err
	}

	if err := b.SetCheckOut(checkOut); err != nil {
		return Booking{}, err
	}

	return b, nil
}

func (b Booking) ID() int                     { return b.id }
func (b Booking) RoomNumber() int             { return b.roomNumber }
func (b Booking) CustomerID() int             { return b.customerID }
func (b Booking) CheckIn() datetime.DateTime  { return b.checkIn }
func (b Booking) CheckOut() datetime.DateTime { return b.checkOut }
func (b Booking) Cost() float64               { return b.cost }
func (b Booking) Status() string              { return b.status }

// NormalizeStatus lowercases status and rejects anything but pending, done or cancelled.
func NormalizeStatus(status string) (string, error) {
	normalized := strings.ToLower(status)

	if err := validator.ValidateField("status", normalized, statusTag); err != nil {
		return "", err //nolint:wrapcheck
	}

	return normalized, nil
}

func (b *Booking) SetStatus(status string) error {
	normalized, err := NormalizeStatus(status)
	if err != nil {
		return err
	}

	b.status = normalized

	return nil
}

// SetCheckIn rejects a check-in earlier than noon of its own date.
func (b *Booking) SetCheckIn(checkIn datetime.DateTime) error {
	if !checkIn.AfterOrEqual(checkIn.AtNoon()) {
		return failure.BadRequestFromString("check-in date/time cannot be in the past") //nolint:wrapcheck
	}

	b.checkIn = checkIn

	return nil
}

// SetCheckOut requires a check-out strictly after the current check-in.
func (b *Booking) SetCheckOut(checkOut datetime.DateTime) error {
	if !b.checkIn.Before(checkOut) {
		return failure.BadRequestFromString("check-out date must be after check-in date") //nolint:wrapcheck
	}

	b.checkOut = checkOut

	return nil
}

func (b *Booking) SetRoomNumber(roomNumber int) {
	b.roomNumber = roomNumber
}

// SetCost prices the current stay. Later date or status changes do not reprice it.
func (b *Booking) SetCost(roomPrice float64) {
	b.cost = float64(b.Nights()) * roomPrice
}

func (b Booking) Nights() int {
	return b.checkOut.DaysSince(b.checkIn)
}

// IsOverlapping uses half-open ranges, so touching stays do not overlap.
func (b Booking) IsOverlapping(checkIn, checkOut datetime.DateTime) bool {
	return !(checkOut.BeforeOrEqual(b.checkIn) || b.checkOut.BeforeOrEqual(checkIn))
}

func (b Booking) Equal(other Booking) bool {
	return b.id == other.id
}

func (b Booking) String() string {
	return fmt.Sprintf("%d,%.2f,%s,%s,%s,%d,%d", b.id, b.cost, b.status, b.checkIn, b.checkOut, b.roomNumber, b.customerID)
}

type Row struct {
	ID         int               `db:"booking_id"`
	RoomNumber int               `db:"room_number"`
	CustomerID int               `db:"customer_id"`
	CheckIn    datetime.DateTime `db:"check_in"`
	CheckOut   datetime.DateTime `db:"check_out"`
	Cost       float64           `db:"cost"`
	Status     string            `db:"status"`
}

func FromBooking(b Booking) Row {
	return Row{
		ID:         b.id,
		RoomNumber: b.roomNumber,
		CustomerID: b.customerID,
		CheckIn:    b.checkIn,
		CheckOut:   b.checkOut,
		Cost:       b.cost,
		Status:     b.status,
	}
}

// ToBooking keeps the stored cost.
func (r Row) ToBooking() (Booking, error) {
	b, err := Restore(r.ID, r.RoomNumber, r.CustomerID, r.Cost, r.CheckIn, r.CheckOut, r.Status)
	if err != nil {
		return Booking{}, failure.DataIntegrity(fmt.Sprintf("stored booking %d is invalid: %s", r.ID, err.Error())) //nolint:wrapcheck
	}

	return b, nil
}
