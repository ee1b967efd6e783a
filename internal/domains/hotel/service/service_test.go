package service_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotel/config"
	"hotel/infras/otel/mocks"
	"hotel/infras/postgres"
	bookingMocks "hotel/internal/domains/booking/mocks"
	bookingModel "hotel/internal/domains/booking/model"
	customerMocks "hotel/internal/domains/customer/mocks"
	customerModel "hotel/internal/domains/customer/model"
	"hotel/internal/domains/hotel/service"
	roomMocks "hotel/internal/domains/room/mocks"
	roomModel "hotel/internal/domains/room/model"
	"hotel/shared/datetime"
	"hotel/shared/failure"
)

type fixture struct {
	rooms     *roomMocks.MockRoom
	customers *customerMocks.MockCustomer
	bookings  *bookingMocks.MockBooking
	svc       service.Manager
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		rooms:     roomMocks.NewMockRoom(ctrl),
		customers: customerMocks.NewMockCustomer(ctrl),
		bookings:  bookingMocks.NewMockBooking(ctrl),
	}

	tx := postgres.NewTransactor(&postgres.Connection{}, &config.Config{})
	f.svc = service.New(f.rooms, f.customers, f.bookings, tx, mocks.NewOtel())

	return f
}

func june(day int) datetime.DateTime {
	return datetime.MustParse(fmt.Sprintf("2024-06-%02d 12:00:00", day))
}

func booking(t *testing.T, id, room int, checkIn, checkOut datetime.DateTime, cost float64) bookingModel.Booking {
	t.Helper()

	b, err := bookingModel.Restore(id, room, 1, cost, checkIn, checkOut, "pending")
	require.NoError(t, err)

	return b
}

func TestManager_IsRoomAvailableForDate(t *testing.T) {
	ctx := context.Background()
	room101 := roomModel.NewStandard(101, 100, "available")

	tests := []struct {
		name      string
		room      roomModel.Room
		bookings  []bookingModel.Booking
		checkIn   datetime.DateTime
		checkOut  datetime.DateTime
		exclude   int
		available bool
	}{
		{
			name:      "no bookings",
			room:      room101,
			checkIn:   june(1),
			checkOut:  june(3),
			exclude:   service.NoBooking,
			available: true,
		},
		{
			name:      "overlapping booking",
			room:      room101,
			bookings:  []bookingModel.Booking{booking(t, 1, 101, june(1), june(3), 200)},
			checkIn:   june(2),
			checkOut:  june(4),
			exclude:   service.NoBooking,
			available: false,
		},
		{
			name:      "touching booking",
			room:      room101,
			bookings:  []bookingModel.Booking{booking(t, 1, 101, june(1), june(3), 200)},
			checkIn:   june(3),
			checkOut:  june(5),
			exclude:   service.NoBooking,
			available: true,
		},
		{
			name:      "overlapping booking excluded",
			room:      room101,
			bookings:  []bookingModel.Booking{booking(t, 1, 101, june(1), june(3), 200)},
			checkIn:   june(2),
			checkOut:  june(4),
			exclude:   1,
			available: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.rooms.EXPECT().Get(gomock.Any(), 101).Return(tt.room, nil)
			f.bookings.EXPECT().GetByRoom(gomock.Any(), 101).Return(tt.bookings, nil)

			available, err := f.svc.IsRoomAvailableForDate(ctx, 101, tt.checkIn, tt.checkOut, tt.exclude)
			require.NoError(t, err)
			assert.Equal(t, tt.available, available)
		})
	}

	t.Run("room not in available status", func(t *testing.T) {
		f := newFixture(t)

		f.rooms.EXPECT().Get(gomock.Any(), 101).Return(roomModel.NewStandard(101, 100, "maintenance"), nil)

		available, err := f.svc.IsRoomAvailableForDate(ctx, 101, june(1), june(3), service.NoBooking)
		require.NoError(t, err)
		assert.False(t, available)
	})

	t.Run("room lookup fails", func(t *testing.T) {
		f := newFixture(t)

		f.rooms.EXPECT().Get(gomock.Any(), 404).Return(roomModel.Room{}, failure.NotFound("room 404 not found"))

		_, err := f.svc.IsRoomAvailableForDate(ctx, 404, june(1), june(3), service.NoBooking)
		require.Error(t, err)
		assert.True(t, failure.IsNotFound(err))
	})
}

func TestManager_GetAvailableRooms(t *testing.T) {
	f := newFixture(t)

	f.rooms.EXPECT().GetAll(gomock.Any()).Return([]roomModel.Room{
		roomModel.NewStandard(101, 100, "available"),
		roomModel.NewDeluxe(102, 150, "available", 30),
		roomModel.NewSuite(103, 300, "maintenance", true, 80),
	}, nil)
	f.bookings.EXPECT().GetAll(gomock.Any()).Return([]bookingModel.Booking{
		booking(t, 1, 101, june(1), june(3), 200),
		booking(t, 2, 102, june(3), june(5), 360),
		booking(t, 3, 900, june(1), june(3), 100),
	}, nil)

	rooms, err := f.svc.GetAvailableRooms(context.Background(), june(1), june(3))
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, 102, rooms[0].Number)
}

func TestManager_GetAvailableRooms_StorageError(t *testing.T) {
	f := newFixture(t)

	dbErr := errors.New("connection refused")
	f.rooms.EXPECT().GetAll(gomock.Any()).Return(nil, dbErr)

	_, err := f.svc.GetAvailableRooms(context.Background(), june(1), june(3))
	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
}

func TestManager_AddNewBooking(t *testing.T) {
	ctx := context.Background()
	room101 := roomModel.NewStandard(101, 100, "available")
	existing := booking(t, 1, 101, june(1), june(3), 200)

	t.Run("books a free room and prices it per night", func(t *testing.T) {
		f := newFixture(t)

		stored := booking(t, 1, 101, june(1), june(3), 200)

		gomock.InOrder(
			f.rooms.EXPECT().ValidateExists(gomock.Any(), 101).Return(nil),
			f.customers.EXPECT().ValidateExists(gomock.Any(), 1).Return(nil),
		)
		f.rooms.EXPECT().Get(gomock.Any(), 101).Return(room101, nil).Times(2)
		f.bookings.EXPECT().GetByRoom(gomock.Any(), 101).Return(nil, nil)
		f.bookings.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, b bookingModel.Booking) (int, error) {
				assert.InDelta(t, 200.0, b.Cost(), 1e-9)
				assert.Equal(t, "pending", b.Status())
				assert.Equal(t, bookingModel.Unsaved, b.ID())

				return 1, nil
			})
		f.bookings.EXPECT().Get(gomock.Any(), 1).Return(stored, nil)

		res, err := f.svc.AddNewBooking(ctx, june(1), june(3), 1, 101, "Pending")
		require.NoError(t, err)
		assert.Equal(t, 1, res.ID())
		assert.InDelta(t, 200.0, res.Cost(), 1e-9)
	})

	t.Run("overlapping range is a conflict", func(t *testing.T) {
		f := newFixture(t)

		f.rooms.EXPECT().ValidateExists(gomock.Any(), 101).Return(nil)
		f.customers.EXPECT().ValidateExists(gomock.Any(), 1).Return(nil)
		f.rooms.EXPECT().Get(gomock.Any(), 101).Return(room101, nil)
		f.bookings.EXPECT().GetByRoom(gomock.Any(), 101).Return([]bookingModel.Booking{existing}, nil)

		_, err := f.svc.AddNewBooking(ctx, june(2), june(4), 1, 101, "pending")
		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("touching range is accepted", func(t *testing.T) {
		f := newFixture(t)

		f.rooms.EXPECT().ValidateExists(gomock.Any(), 101).Return(nil)
		f.customers.EXPECT().ValidateExists(gomock.Any(), 1).Return(nil)
		f.rooms.EXPECT().Get(gomock.Any(), 101).Return(room101, nil).Times(2)
		f.bookings.EXPECT().GetByRoom(gomock.Any(), 101).Return([]bookingModel.Booking{existing}, nil)
		f.bookings.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(2, nil)
		f.bookings.EXPECT().Get(gomock.Any(), 2).Return(booking(t, 2, 101, june(3), june(5), 200), nil)

		res, err := f.svc.AddNewBooking(ctx, june(3), june(5), 1, 101, "pending")
		require.NoError(t, err)
		assert.Equal(t, 2, res.ID())
	})

	t.Run("unknown room", func(t *testing.T) {
		f := newFixture(t)

		f.rooms.EXPECT().ValidateExists(gomock.Any(), 999).Return(failure.NotFoundf("room %d doesn't exist", 999))

		_, err := f.svc.AddNewBooking(ctx, june(1), june(3), 1, 999, "pending")
		require.Error(t, err)
		assert.True(t, failure.IsNotFound(err))
	})

	t.Run("unknown customer", func(t *testing.T) {
		f := newFixture(t)

		f.rooms.EXPECT().ValidateExists(gomock.Any(), 101).Return(nil)
		f.customers.EXPECT().ValidateExists(gomock.Any(), 42).Return(failure.NotFoundf("customer %d doesn't exist", 42))

		_, err := f.svc.AddNewBooking(ctx, june(1), june(3), 42, 101, "pending")
		require.Error(t, err)
		assert.True(t, failure.IsNotFound(err))
	})

	t.Run("unrecognized status", func(t *testing.T) {
		f := newFixture(t)

		f.rooms.EXPECT().ValidateExists(gomock.Any(), 101).Return(nil)
		f.customers.EXPECT().ValidateExists(gomock.Any(), 1).Return(nil)
		f.rooms.EXPECT().Get(gomock.Any(), 101).Return(room101, nil).Times(2)
		f.bookings.EXPECT().GetByRoom(gomock.Any(), 101).Return(nil, nil)

		_, err := f.svc.AddNewBooking(ctx, june(1), june(3), 1, 101, "archived")
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestManager_DeleteCustomer(t *testing.T) {
	ctx := context.Background()

	t.Run("customer without bookings", func(t *testing.T) {
		f := newFixture(t)

		f.customers.EXPECT().ValidateExists(gomock.Any(), 1).Return(nil)
		f.bookings.EXPECT().ExistForCustomer(gomock.Any(), 1).Return(false, nil)
		f.customers.EXPECT().Delete(gomock.Any(), 1).Return(nil)

		assert.NoError(t, f.svc.DeleteCustomer(ctx, 1))
	})

	t.Run("customer with bookings", func(t *testing.T) {
		f := newFixture(t)

		f.customers.EXPECT().ValidateExists(gomock.Any(), 1).Return(nil)
		f.bookings.EXPECT().ExistForCustomer(gomock.Any(), 1).Return(true, nil)

		err := f.svc.DeleteCustomer(ctx, 1)
		require.Error(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, failure.GetCode(err))
	})

	t.Run("unknown customer", func(t *testing.T) {
		f := newFixture(t)

		f.customers.EXPECT().ValidateExists(gomock.Any(), 7).Return(failure.NotFoundf("customer %d doesn't exist", 7))

		err := f.svc.DeleteCustomer(ctx, 7)
		require.Error(t, err)
		assert.True(t, failure.IsNotFound(err))
	})
}

func TestManager_UpdateCustomerEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{name: "short address", email: "a@b.c"},
		{name: "missing at sign", email: "not-an-email", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			if !tt.wantErr {
				f.customers.EXPECT().UpdateEmail(gomock.Any(), 1, tt.email).Return(nil)
			}

			err := f.svc.UpdateCustomerEmail(context.Background(), 1, tt.email)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestManager_UpdateCustomerContact_UnknownCustomer(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.customers.EXPECT().UpdateEmail(gomock.Any(), 9, "a@b.c").Return(failure.NotFoundf("customer %d doesn't exist", 9))
	f.customers.EXPECT().UpdatePhoneNumber(gomock.Any(), 9, "01234567891").Return(failure.NotFoundf("customer %d doesn't exist", 9))

	assert.True(t, failure.IsNotFound(f.svc.UpdateCustomerEmail(ctx, 9, "a@b.c")))
	assert.True(t, failure.IsNotFound(f.svc.UpdateCustomerPhone(ctx, 9, "01234567891")))
}

func TestManager_UpdateCustomerPhone(t *testing.T) {
	tests := []struct {
		name    string
		phone   string
		wantErr bool
	}{
		{name: "eleven digits", phone: "01234567891"},
		{name: "too short", phone: "123", wantErr: true},
		{name: "letter", phone: "0123456789a", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			if !tt.wantErr {
				f.customers.EXPECT().UpdatePhoneNumber(gomock.Any(), 1, tt.phone).Return(nil)
			}

			err := f.svc.UpdateCustomerPhone(context.Background(), 1, tt.phone)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestManager_AddNewCustomer(t *testing.T) {
	f := newFixture(t)

	stored, err := customerModel.New(3, "Ada", 36, "01234567891", "ada@example.com")
	require.NoError(t, err)

	f.customers.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(3, nil)
	f.customers.EXPECT().Get(gomock.Any(), 3).Return(stored, nil)

	res, err := f.svc.AddNewCustomer(context.Background(), "Ada", 36, "01234567891", "ada@example.com")
	require.NoError(t, err)
	assert.True(t, res.Equal(stored))

	_, err = f.svc.AddNewCustomer(context.Background(), "Bob", 40, "123", "bob@example.com")
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestManager_UpdateBookingStatus(t *testing.T) {
	t.Run("mixed case is normalized", func(t *testing.T) {
		f := newFixture(t)

		f.bookings.EXPECT().ValidateExists(gomock.Any(), 1).Return(nil)
		f.bookings.EXPECT().UpdateStatus(gomock.Any(), 1, "cancelled").Return(nil)

		assert.NoError(t, f.svc.UpdateBookingStatus(context.Background(), 1, "Cancelled"))
	})

	t.Run("unrecognized status", func(t *testing.T) {
		f := newFixture(t)

		err := f.svc.UpdateBookingStatus(context.Background(), 1, "archived")
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestManager_UpdateBookingDates(t *testing.T) {
	room101 := roomModel.NewStandard(101, 100, "available")

	t.Run("own booking does not block and cost is recomputed", func(t *testing.T) {
		f := newFixture(t)

		own := booking(t, 1, 101, june(1), june(3), 200)

		f.bookings.EXPECT().Get(gomock.Any(), 1).Return(own, nil)
		f.rooms.EXPECT().Get(gomock.Any(), 101).Return(room101, nil).Times(2)
		f.bookings.EXPECT().GetByRoom(gomock.Any(), 101).Return([]bookingModel.Booking{own}, nil)
		f.bookings.EXPECT().UpdateDates(gomock.Any(), 1, june(2), june(5), 300.0).Return(nil)

		assert.NoError(t, f.svc.UpdateBookingDates(context.Background(), 1, june(2), june(5)))
	})

	t.Run("other booking blocks", func(t *testing.T) {
		f := newFixture(t)

		own := booking(t, 1, 101, june(1), june(3), 200)
		other := booking(t, 2, 101, june(4), june(6), 200)

		f.bookings.EXPECT().Get(gomock.Any(), 1).Return(own, nil)
		f.rooms.EXPECT().Get(gomock.Any(), 101).Return(room101, nil)
		f.bookings.EXPECT().GetByRoom(gomock.Any(), 101).Return([]bookingModel.Booking{own, other}, nil)

		err := f.svc.UpdateBookingDates(context.Background(), 1, june(2), june(5))
		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("check-out before check-in", func(t *testing.T) {
		f := newFixture(t)

		f.bookings.EXPECT().Get(gomock.Any(), 1).Return(booking(t, 1, 101, june(1), june(3), 200), nil)

		err := f.svc.UpdateBookingDates(context.Background(), 1, june(5), june(4))
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestManager_AddRooms(t *testing.T) {
	ctx := context.Background()

	t.Run("standard room status is lowercased", func(t *testing.T) {
		f := newFixture(t)

		stored := roomModel.NewStandard(7, 100, "available")

		f.rooms.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, room roomModel.Room) (int, error) {
				assert.Equal(t, "available", room.Status)
				assert.Equal(t, roomModel.Unsaved, room.Number)

				return 7, nil
			})
		f.rooms.EXPECT().Get(gomock.Any(), 7).Return(stored, nil)

		res, err := f.svc.AddStandardRoom(ctx, "Available", 100)
		require.NoError(t, err)
		assert.Equal(t, stored, res)
	})

	t.Run("suite keeps jacuzzi fields", func(t *testing.T) {
		f := newFixture(t)

		stored := roomModel.NewSuite(8, 300, "available", true, 80)

		f.rooms.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, room roomModel.Room) (int, error) {
				assert.Equal(t, roomModel.Suite{HasJacuzzi: true, JacuzziCost: 80}, room.Kind)

				return 8, nil
			})
		f.rooms.EXPECT().Get(gomock.Any(), 8).Return(stored, nil)

		res, err := f.svc.AddSuite(ctx, "available", 300, true, 80)
		require.NoError(t, err)
		assert.InDelta(t, 380.0, res.TotalPrice(), 1e-9)
	})

	t.Run("insert failure keeps driver cause", func(t *testing.T) {
		f := newFixture(t)

		dbErr := errors.New("connection reset by peer")
		f.rooms.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(roomModel.Unsaved, dbErr)

		_, err := f.svc.AddDeluxeRoom(ctx, "available", 150, 30)
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestManager_GetRoomsByType(t *testing.T) {
	ctx := context.Background()

	t.Run("known type", func(t *testing.T) {
		f := newFixture(t)

		suite := roomModel.NewSuite(3, 300, "available", true, 80)
		f.rooms.EXPECT().GetByType(gomock.Any(), roomModel.TypeSuite).Return([]roomModel.Room{suite}, nil)

		rooms, err := f.svc.GetRoomsByType(ctx, roomModel.TypeSuite)
		require.NoError(t, err)
		assert.Equal(t, []roomModel.Room{suite}, rooms)
	})

	t.Run("unknown type never reaches storage", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.GetRoomsByType(ctx, "penthouse")
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.Contains(t, err.Error(), "penthouse")
	})
}

func TestManager_UpdateRoomStatus(t *testing.T) {
	f := newFixture(t)

	f.rooms.EXPECT().UpdateStatus(gomock.Any(), 101, "maintenance").Return(nil)

	assert.NoError(t, f.svc.UpdateRoomStatus(context.Background(), 101, "MAINTENANCE"))
}

func TestManager_IsolationLevel(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, sql.LevelDefault, f.svc.IsolationLevel())

	f.svc.SetIsolationLevel(sql.LevelSerializable)
	assert.Equal(t, sql.LevelSerializable, f.svc.IsolationLevel())
}
