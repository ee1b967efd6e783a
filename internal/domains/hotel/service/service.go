package service

import (
	"context"
	"database/sql"
	"fmt"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	bookingModel "hotel/internal/domains/booking/model"
	bookingRepository "hotel/internal/domains/booking/repository"
	customerModel "hotel/internal/domains/customer/model"
	customerRepository "hotel/internal/domains/customer/repository"
	roomModel "hotel/internal/domains/room/model"
	roomRepository "hotel/internal/domains/room/repository"
	"hotel/shared/constant"
	"hotel/shared/datetime"
	"hotel/shared/failure"
	"strings"

	"github.com/rs/zerolog/log"
)

// NoBooking passed as excludeBookingID makes every booking of the room count.
const NoBooking = bookingModel.Unsaved

// Manager orchestrates rooms, customers and bookings. Every failure is returned
// to the caller; nothing is retried.
type Manager interface {
	ValidateRoomExists(ctx context.Context, number int) error
	ValidateCustomerExists(ctx context.Context, id int) error
	ValidateBookingExists(ctx context.Context, id int) error
	IsRoomAvailableForDate(ctx context.Context, number int, checkIn, checkOut datetime.DateTime, excludeBookingID int) (bool, error)
	GetAvailableRooms(ctx context.Context, checkIn, checkOut datetime.DateTime) ([]roomModel.Room, error)

	GetRoom(ctx context.Context, number int) (roomModel.Room, error)
	GetRoomsByStatus(ctx context.Context, status string) ([]roomModel.Room, error)
	GetRoomsByType(ctx context.Context, roomType string) ([]roomModel.Room, error)
	GetAllRooms(ctx context.Context) ([]roomModel.Room, error)
	CountRooms(ctx context.Context) (int, error)
	AddStandardRoom(ctx context.Context, status string, price float64) (roomModel.Room, error)
	AddDeluxeRoom(ctx context.Context, status string, price, extraFees float64) (roomModel.Room, error)
	AddSuite(ctx context.Context, status string, price float64, hasJacuzzi bool, jacuzziCost float64) (roomModel.Room, error)
	UpdateRoomPrice(ctx context.Context, number int, price float64) error
	UpdateRoomStatus(ctx context.Context, number int, status string) error
	DeleteRoom(ctx context.Context, number int) error

	AddNewCustomer(ctx context.Context, name string, age int, phone, email string) (customerModel.Customer, error)
	GetCustomer(ctx context.Context, id int) (customerModel.Customer, error)
	GetAllCustomers(ctx context.Context) ([]customerModel.Customer, error)
	CountCustomers(ctx context.Context) (int, error)
	UpdateCustomerPhone(ctx context.Context, id int, phone string) error
	UpdateCustomerEmail(ctx context.Context, id int, email string) error
	DeleteCustomer(ctx context.Context, id int) error

	AddNewBooking(ctx context.Context, checkIn, checkOut datetime.DateTime, customerID, roomNumber int, status string) (bookingModel.Booking, error)
	GetBooking(ctx context.Context, id int) (bookingModel.Booking, error)
	GetAllBookings(ctx context.Context) ([]bookingModel.Booking, error)
	GetBookingsByRoom(ctx context.Context, roomNumber int) ([]bookingModel.Booking, error)
	CountBookings(ctx context.Context) (int, error)
	UpdateBookingStatus(ctx context.Context, id int, status string) error
	UpdateBookingDates(ctx context.Context, id int, checkIn, checkOut datetime.DateTime) error
	DeleteBooking(ctx context.Context, id int) error

	IsolationLevel() sql.IsolationLevel
	SetIsolationLevel(level sql.IsolationLevel)
}

type serviceImpl struct {
	rooms     roomRepository.Room
	customers customerRepository.Customer
	bookings  bookingRepository.Booking
	tx        *postgres.Transactor
	otel      otel.Otel
}

func New(
	rooms roomRepository.Room,
	customers customerRepository.Customer,
	bookings bookingRepository.Booking,
	tx *postgres.Transactor,
	otel otel.Otel,
) Manager {
	return &serviceImpl{
		rooms:     rooms,
		customers: customers,
		bookings:  bookings,
		tx:        tx,
		otel:      otel,
	}
}

func (s *serviceImpl) scope(ctx context.Context, name string) (context.Context, otel.Scope) {
	return s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+"."+name)
}

func (s *serviceImpl) ValidateRoomExists(ctx context.Context, number int) (err error) {
	ctx, scope := s.scope(ctx, "ValidateRoomExists")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.rooms.ValidateExists(ctx, number); err != nil {
		return fmt.Errorf("failed to validate room: %w", err)
	}

	return nil
}

func (s *serviceImpl) ValidateCustomerExists(ctx context.Context, id int) (err error) {
	ctx, scope := s.scope(ctx, "ValidateCustomerExists")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.customers.ValidateExists(ctx, id); err != nil {
		return fmt.Errorf("failed to validate customer: %w", err)
	}

	return nil
}

func (s *serviceImpl) ValidateBookingExists(ctx context.Context, id int) (err error) {
	ctx, scope := s.scope(ctx, "ValidateBookingExists")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.bookings.ValidateExists(ctx, id); err != nil {
		return fmt.Errorf("failed to validate booking: %w", err)
	}

	return nil
}

// IsRoomAvailableForDate reports whether the room is in the available status and
// no booking of that room, other than excludeBookingID, overlaps the range.
func (s *serviceImpl) IsRoomAvailableForDate(
	ctx context.Context,
	number int,
	checkIn, checkOut datetime.DateTime,
	excludeBookingID int,
) (available bool, err error) {
	ctx, scope := s.scope(ctx, "IsRoomAvailableForDate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	room, err := s.rooms.Get(ctx, number)
	if err != nil {
		log.Error().Err(err).Int("room_number", number).Msg("failed to get room")

		return false, fmt.Errorf("failed to get room: %w", err)
	}

	if !room.IsAvailable() {
		return false, nil
	}

	bookings, err := s.bookings.GetByRoom(ctx, number)
	if err != nil {
		log.Error().Err(err).Int("room_number", number).Msg("failed to get bookings of room")

		return false, fmt.Errorf("failed to get bookings of room: %w", err)
	}

	for _, other := range bookings {
		if other.ID() == excludeBookingID {
			continue
		}

		if other.IsOverlapping(checkIn, checkOut) {
			return false, nil
		}
	}

	return true, nil
}

// GetAvailableRooms marks every room touched by any overlapping booking, then
// keeps the unmarked rooms whose status is available.
func (s *serviceImpl) GetAvailableRooms(ctx context.Context, checkIn, checkOut datetime.DateTime) (res []roomModel.Room, err error) {
	ctx, scope := s.scope(ctx, "GetAvailableRooms")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	rooms, err := s.rooms.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return nil, fmt.Errorf("failed to get rooms: %w", err)
	}

	bookings, err := s.bookings.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}

	maxNumber := 0
	for _, room := range rooms {
		maxNumber = max(maxNumber, room.Number)
	}

	booked := make([]bool, maxNumber+1)

	for _, booking := range bookings {
		number := booking.RoomNumber()
		if number < 0 || number > maxNumber {
			continue
		}

		if booking.IsOverlapping(checkIn, checkOut) {
			booked[number] = true
		}
	}

	res = make([]roomModel.Room, 0, len(rooms))

	for _, room := range rooms {
		if room.Number >= 0 && !booked[room.Number] && room.IsAvailable() {
			res = append(res, room)
		}
	}

	scope.SetAttribute("available_rooms", len(res))

	return res, nil
}

func (s *serviceImpl) GetRoom(ctx context.Context, number int) (room roomModel.Room, err error) {
	ctx, scope := s.scope(ctx, "GetRoom")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	room, err = s.rooms.Get(ctx, number)
	if err != nil {
		log.Error().Err(err).Int("room_number", number).Msg("failed to get room")

		return room, fmt.Errorf("failed to get room: %w", err)
	}

	return room, nil
}

func (s *serviceImpl) GetRoomsByStatus(ctx context.Context, status string) (rooms []roomModel.Room, err error) {
	ctx, scope := s.scope(ctx, "GetRoomsByStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	rooms, err = s.rooms.GetByStatus(ctx, status)
	if err != nil {
		log.Error().Err(err).Str("status", status).Msg("failed to get rooms by status")

		return nil, fmt.Errorf("failed to get rooms by status: %w", err)
	}

	return rooms, nil
}

func (s *serviceImpl) GetRoomsByType(ctx context.Context, roomType string) (rooms []roomModel.Room, err error) {
	ctx, scope := s.scope(ctx, "GetRoomsByType")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !roomModel.IsValidType(roomType) {
		return nil, failure.BadRequestFromString(fmt.Sprintf("unknown room type %q", roomType)) //nolint:wrapcheck
	}

	rooms, err = s.rooms.GetByType(ctx, roomType)
	if err != nil {
		log.Error().Err(err).Str("room_type", roomType).Msg("failed to get rooms by type")

		return nil, fmt.Errorf("failed to get rooms by type: %w", err)
	}

	return rooms, nil
}

func (s *serviceImpl) GetAllRooms(ctx context.Context) (rooms []roomModel.Room, err error) {
	ctx, scope := s.scope(ctx, "GetAllRooms")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	rooms, err = s.rooms.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return nil, fmt.Errorf("failed to get rooms: %w", err)
	}

	return rooms, nil
}

func (s *serviceImpl) CountRooms(ctx context.Context) (total int, err error) {
	ctx, scope := s.scope(ctx, "CountRooms")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	total, err = s.rooms.Count(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return 0, fmt.Errorf("failed to count rooms: %w", err)
	}

	return total, nil
}

func (s *serviceImpl) AddStandardRoom(ctx context.Context, status string, price float64) (roomModel.Room, error) {
	return s.addRoom(ctx, roomModel.NewStandard(roomModel.Unsaved, price, strings.ToLower(status)))
}

func (s *serviceImpl) AddDeluxeRoom(ctx context.Context, status string, price, extraFees float64) (roomModel.Room, error) {
	return s.addRoom(ctx, roomModel.NewDeluxe(roomModel.Unsaved, price, strings.ToLower(status), extraFees))
}

func (s *serviceImpl) AddSuite(
	ctx context.Context,
	status string,
	price float64,
	hasJacuzzi bool,
	jacuzziCost float64,
) (roomModel.Room, error) {
	return s.addRoom(ctx, roomModel.NewSuite(roomModel.Unsaved, price, strings.ToLower(status), hasJacuzzi, jacuzziCost))
}

// addRoom stores the room and returns it as read back from storage.
func (s *serviceImpl) addRoom(ctx context.Context, room roomModel.Room) (res roomModel.Room, err error) {
	ctx, scope := s.scope(ctx, "AddRoom")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("room_type", room.Type())

	number, err := s.rooms.Insert(ctx, room)
	if err != nil {
		log.Error().Err(err).Str("room_type", room.Type()).Msg("failed to add room")

		return res, fmt.Errorf("failed to add room: %w", err)
	}

	res, err = s.rooms.Get(ctx, number)
	if err != nil {
		log.Error().Err(err).Int("room_number", number).Msg("failed to get added room")

		return res, fmt.Errorf("failed to get added room: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) UpdateRoomPrice(ctx context.Context, number int, price float64) (err error) {
	ctx, scope := s.scope(ctx, "UpdateRoomPrice")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.rooms.UpdatePrice(ctx, number, price); err != nil {
		log.Error().Err(err).Int("room_number", number).Msg("failed to update room price")

		return fmt.Errorf("failed to update room price: %w", err)
	}

	return nil
}

func (s *serviceImpl) UpdateRoomStatus(ctx context.Context, number int, status string) (err error) {
	ctx, scope := s.scope(ctx, "UpdateRoomStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.rooms.UpdateStatus(ctx, number, strings.ToLower(status)); err != nil {
		log.Error().Err(err).Int("room_number", number).Msg("failed to update room status")

		return fmt.Errorf("failed to update room status: %w", err)
	}

	return nil
}

func (s *serviceImpl) DeleteRoom(ctx context.Context, number int) (err error) {
	ctx, scope := s.scope(ctx, "DeleteRoom")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.rooms.Delete(ctx, number); err != nil {
		log.Error().Err(err).Int("room_number", number).Msg("failed to delete room")

		return fmt.Errorf("failed to delete room: %w", err)
	}

	return nil
}

func (s *serviceImpl) AddNewCustomer(
	ctx context.Context,
	name string,
	age int,
	phone, email string,
) (res customerModel.Customer, err error) {
	ctx, scope := s.scope(ctx, "AddNewCustomer")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	customer, err := customerModel.New(customerModel.Unsaved, name, age, phone, email)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	id, err := s.customers.Insert(ctx, customer)
	if err != nil {
		log.Error().Err(err).Msg("failed to add customer")

		return res, fmt.Errorf("failed to add customer: %w", err)
	}

	res, err = s.customers.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Int("customer_id", id).Msg("failed to get added customer")

		return res, fmt.Errorf("failed to get added customer: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) GetCustomer(ctx context.Context, id int) (customer customerModel.Customer, err error) {
	ctx, scope := s.scope(ctx, "GetCustomer")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	customer, err = s.customers.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Int("customer_id", id).Msg("failed to get customer")

		return customer, fmt.Errorf("failed to get customer: %w", err)
	}

	return customer, nil
}

func (s *serviceImpl) GetAllCustomers(ctx context.Context) (customers []customerModel.Customer, err error) {
	ctx, scope := s.scope(ctx, "GetAllCustomers")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	customers, err = s.customers.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get customers")

		return nil, fmt.Errorf("failed to get customers: %w", err)
	}

	return customers, nil
}

func (s *serviceImpl) CountCustomers(ctx context.Context) (total int, err error) {
	ctx, scope := s.scope(ctx, "CountCustomers")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	total, err = s.customers.Count(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to count customers")

		return 0, fmt.Errorf("failed to count customers: %w", err)
	}

	return total, nil
}

func (s *serviceImpl) UpdateCustomerPhone(ctx context.Context, id int, phone string) (err error) {
	ctx, scope := s.scope(ctx, "UpdateCustomerPhone")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = customerModel.ValidatePhoneNumber(phone); err != nil {
		return err //nolint:wrapcheck
	}

	if err = s.customers.UpdatePhoneNumber(ctx, id, phone); err != nil {
		log.Error().Err(err).Int("customer_id", id).Msg("failed to update customer phone number")

		return fmt.Errorf("failed to update customer phone number: %w", err)
	}

	return nil
}

func (s *serviceImpl) UpdateCustomerEmail(ctx context.Context, id int, email string) (err error) {
	ctx, scope := s.scope(ctx, "UpdateCustomerEmail")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = customerModel.ValidateEmail(email); err != nil {
		return err //nolint:wrapcheck
	}

	if err = s.customers.UpdateEmail(ctx, id, email); err != nil {
		log.Error().Err(err).Int("customer_id", id).Msg("failed to update customer email")

		return fmt.Errorf("failed to update customer email: %w", err)
	}

	return nil
}

// DeleteCustomer refuses while any booking, whatever its status, references the customer.
func (s *serviceImpl) DeleteCustomer(ctx context.Context, id int) (err error) {
	ctx, scope := s.scope(ctx, "DeleteCustomer")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.customers.ValidateExists(ctx, id); err != nil {
		return fmt.Errorf("failed to validate customer: %w", err)
	}

	hasBookings, err := s.bookings.ExistForCustomer(ctx, id)
	if err != nil {
		log.Error().Err(err).Int("customer_id", id).Msg("failed to check bookings of customer")

		return fmt.Errorf("failed to check bookings of customer: %w", err)
	}

	if hasBookings {
		return failure.BusinessRule(fmt.Sprintf("can't delete customer %d with existing bookings", id)) //nolint:wrapcheck
	}

	if err = s.customers.Delete(ctx, id); err != nil {
		log.Error().Err(err).Int("customer_id", id).Msg("failed to delete customer")

		return fmt.Errorf("failed to delete customer: %w", err)
	}

	return nil
}

// AddNewBooking prices the stay at the room's current total price per night.
// The availability check and the insert run in separate transactions.
func (s *serviceImpl) AddNewBooking(
	ctx context.Context,
	checkIn, checkOut datetime.DateTime,
	customerID, roomNumber int,
	status string,
) (res bookingModel.Booking, err error) {
	ctx, scope := s.scope(ctx, "AddNewBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{"room_number": roomNumber, "customer_id": customerID})

	if err = s.rooms.ValidateExists(ctx, roomNumber); err != nil {
		return res, fmt.Errorf("failed to validate room: %w", err)
	}

	if err = s.customers.ValidateExists(ctx, customerID); err != nil {
		return res, fmt.Errorf("failed to validate customer: %w", err)
	}

	available, err := s.IsRoomAvailableForDate(ctx, roomNumber, checkIn, checkOut, NoBooking)
	if err != nil {
		return res, err
	}

	if !available {
		return res, failure.Conflict(fmt.Sprintf("room %d is not available for those dates", roomNumber)) //nolint:wrapcheck
	}

	room, err := s.rooms.Get(ctx, roomNumber)
	if err != nil {
		log.Error().Err(err).Int("room_number", roomNumber).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	booking, err := bookingModel.New(roomNumber, customerID, checkIn, checkOut, status, room.TotalPrice())
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	id, err := s.bookings.Insert(ctx, booking)
	if err != nil {
		log.Error().Err(err).Msg("failed to add booking")

		return res, fmt.Errorf("failed to add booking: %w", err)
	}

	res, err = s.bookings.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Int("booking_id", id).Msg("failed to get added booking")

		return res, fmt.Errorf("failed to get added booking: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) GetBooking(ctx context.Context, id int) (booking bookingModel.Booking, err error) {
	ctx, scope := s.scope(ctx, "GetBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err = s.bookings.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Int("booking_id", id).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	return booking, nil
}

func (s *serviceImpl) GetAllBookings(ctx context.Context) (bookings []bookingModel.Booking, err error) {
	ctx, scope := s.scope(ctx, "GetAllBookings")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	bookings, err = s.bookings.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}

	return bookings, nil
}

func (s *serviceImpl) GetBookingsByRoom(ctx context.Context, roomNumber int) (bookings []bookingModel.Booking, err error) {
	ctx, scope := s.scope(ctx, "GetBookingsByRoom")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	bookings, err = s.bookings.GetByRoom(ctx, roomNumber)
	if err != nil {
		log.Error().Err(err).Int("room_number", roomNumber).Msg("failed to get bookings of room")

		return nil, fmt.Errorf("failed to get bookings of room: %w", err)
	}

	return bookings, nil
}

func (s *serviceImpl) CountBookings(ctx context.Context) (total int, err error) {
	ctx, scope := s.scope(ctx, "CountBookings")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	total, err = s.bookings.Count(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return 0, fmt.Errorf("failed to count bookings: %w", err)
	}

	return total, nil
}

func (s *serviceImpl) UpdateBookingStatus(ctx context.Context, id int, status string) (err error) {
	ctx, scope := s.scope(ctx, "UpdateBookingStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	normalized, err := bookingModel.NormalizeStatus(status)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if err = s.bookings.ValidateExists(ctx, id); err != nil {
		return fmt.Errorf("failed to validate booking: %w", err)
	}

	if err = s.bookings.UpdateStatus(ctx, id, normalized); err != nil {
		log.Error().Err(err).Int("booking_id", id).Msg("failed to update booking status")

		return fmt.Errorf("failed to update booking status: %w", err)
	}

	return nil
}

// UpdateBookingDates moves a booking to a new range. The booking itself does not
// block the new range, and the cost is recomputed from the room's current price.
func (s *serviceImpl) UpdateBookingDates(ctx context.Context, id int, checkIn, checkOut datetime.DateTime) (err error) {
	ctx, scope := s.scope(ctx, "UpdateBookingDates")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.bookings.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Int("booking_id", id).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if err = booking.SetCheckIn(checkIn); err != nil {
		return err //nolint:wrapcheck
	}

	if err = booking.SetCheckOut(checkOut); err != nil {
		return err //nolint:wrapcheck
	}

	available, err := s.IsRoomAvailableForDate(ctx, booking.RoomNumber(), checkIn, checkOut, id)
	if err != nil {
		return err
	}

	if !available {
		return failure.Conflict(fmt.Sprintf("room %d is not available for those dates", booking.RoomNumber())) //nolint:wrapcheck
	}

	room, err := s.rooms.Get(ctx, booking.RoomNumber())
	if err != nil {
		log.Error().Err(err).Int("room_number", booking.RoomNumber()).Msg("failed to get room")

		return fmt.Errorf("failed to get room: %w", err)
	}

	booking.SetCost(room.TotalPrice())

	if err = s.bookings.UpdateDates(ctx, id, booking.CheckIn(), booking.CheckOut(), booking.Cost()); err != nil {
		log.Error().Err(err).Int("booking_id", id).Msg("failed to update booking dates")

		return fmt.Errorf("failed to update booking dates: %w", err)
	}

	return nil
}

func (s *serviceImpl) DeleteBooking(ctx context.Context, id int) (err error) {
	ctx, scope := s.scope(ctx, "DeleteBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.bookings.Delete(ctx, id); err != nil {
		log.Error().Err(err).Int("booking_id", id).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	return nil
}

func (s *serviceImpl) IsolationLevel() sql.IsolationLevel {
	return s.tx.IsolationLevel()
}

func (s *serviceImpl) SetIsolationLevel(level sql.IsolationLevel) {
	log.Debug().Str("isolation_level", level.String()).Msg("changing transaction isolation level")

	s.tx.SetIsolationLevel(level)
}
