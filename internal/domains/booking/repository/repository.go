package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/booking/model"
	"hotel/shared"
	"hotel/shared/constant"
	"hotel/shared/datetime"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	gRepo "hotel/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Booking interface {
	Insert(ctx context.Context, booking model.Booking) (int, error)
	Get(ctx context.Context, id int) (model.Booking, error)
	GetAll(ctx context.Context) ([]model.Booking, error)
	GetByRoom(ctx context.Context, roomNumber int) ([]model.Booking, error)
	ExistForCustomer(ctx context.Context, customerID int) (bool, error)
	Count(ctx context.Context) (int, error)
	ValidateExists(ctx context.Context, id int) error
	UpdateStatus(ctx context.Context, id int, status string) error
	UpdateDates(ctx context.Context, id int, checkIn, checkOut datetime.DateTime, cost float64) error
	Delete(ctx context.Context, id int) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Row]
	tx   *postgres.Transactor
	otel otel.Otel
}

func New(db *postgres.Connection, tx *postgres.Transactor, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Row](model.EntityName, model.TableName, model.FieldID, db, otel),
		tx:         tx,
		otel:       otel,
	}
}

func byID(id int) gDto.FilterGroup {
	return shared.FilterByID(id, model.FieldID, model.TableName)
}

func (r *repositoryImpl) Insert(ctx context.Context, booking model.Booking) (id int, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.InsertBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	id = model.Unsaved

	err = r.tx.WithTransaction(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		if err := r.InsertTx(ctx, tx, model.FromBooking(booking)); err != nil {
			return err //nolint:wrapcheck
		}

		lastID, err := r.LastInsertIDTx(ctx, tx)
		if err != nil {
			return err //nolint:wrapcheck
		}

		id = lastID

		return nil
	})
	if err != nil {
		return model.Unsaved, fmt.Errorf("failed to add booking: %w", err)
	}

	return id, nil
}

func (r *repositoryImpl) Get(ctx context.Context, id int) (model.Booking, error) {
	row, err := r.Repository.Get(ctx, byID(id))
	if failure.IsNotFound(err) {
		return model.Booking{}, failure.NotFoundf("booking %d not found", id) //nolint:wrapcheck
	}

	if err != nil {
		return model.Booking{}, err //nolint:wrapcheck
	}

	return row.ToBooking() //nolint:wrapcheck
}

func (r *repositoryImpl) GetAll(ctx context.Context) ([]model.Booking, error) {
	return r.list(ctx, gDto.FilterGroup{})
}

func (r *repositoryImpl) GetByRoom(ctx context.Context, roomNumber int) ([]model.Booking, error) {
	return r.list(ctx, shared.FilterByField(model.FieldRoomNumber, roomNumber))
}

func (r *repositoryImpl) list(ctx context.Context, filter gDto.FilterGroup) ([]model.Booking, error) {
	rows, err := r.Repository.GetAll(ctx, gDto.OrderBy(model.FieldID), filter)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	bookings := make([]model.Booking, 0, len(rows))

	for _, row := range rows {
		b, err := row.ToBooking()
		if err != nil {
			return nil, err //nolint:wrapcheck
		}

		bookings = append(bookings, b)
	}

	return bookings, nil
}

// ExistForCustomer reports whether any booking, in any status, references the customer.
func (r *repositoryImpl) ExistForCustomer(ctx context.Context, customerID int) (bool, error) {
	return r.Exist(ctx, shared.FilterByField(model.FieldCustomerID, customerID)) //nolint:wrapcheck
}

func (r *repositoryImpl) Count(ctx context.Context) (int, error) {
	return r.Repository.Count(ctx, gDto.FilterGroup{}) //nolint:wrapcheck
}

func (r *repositoryImpl) ValidateExists(ctx context.Context, id int) error {
	exist, err := r.Exist(ctx, byID(id))
	if err != nil {
		return err //nolint:wrapcheck
	}

	if !exist {
		return failure.NotFoundf("booking %d doesn't exist", id) //nolint:wrapcheck
	}

	return nil
}

func (r *repositoryImpl) validateExistsTx(ctx context.Context, tx *sqlx.Tx, id int) error {
	exist, err := r.ExistForUpdateTx(ctx, tx, byID(id))
	if err != nil {
		return err //nolint:wrapcheck
	}

	if !exist {
		return failure.NotFoundf("booking %d doesn't exist", id) //nolint:wrapcheck
	}

	return nil
}

// UpdateStatus stores status in its normalized form.
func (r *repositoryImpl) UpdateStatus(ctx context.Context, id int, status string) error {
	normalized, err := model.NormalizeStatus(status)
	if err != nil {
		return err //nolint:wrapcheck
	}

	return r.update(ctx, id, map[string]any{model.FieldStatus: normalized})
}

// UpdateDates writes both dates and the cost the caller priced them at.
func (r *repositoryImpl) UpdateDates(ctx context.Context, id int, checkIn, checkOut datetime.DateTime, cost float64) error {
	return r.update(ctx, id, map[string]any{
		model.FieldCheckIn:  checkIn,
		model.FieldCheckOut: checkOut,
		model.FieldCost:     cost,
	})
}

func (r *repositoryImpl) update(ctx context.Context, id int, fields map[string]any) error {
	return r.tx.WithTransaction(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		if err := r.validateExistsTx(ctx, tx, id); err != nil {
			return err
		}

		return r.UpdateTx(ctx, tx, fields, byID(id)) //nolint:wrapcheck
	})
}

func (r *repositoryImpl) Delete(ctx context.Context, id int) error {
	return r.tx.WithTransaction(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		if err := r.validateExistsTx(ctx, tx, id); err != nil {
			return err
		}

		return r.DeleteTx(ctx, tx, byID(id)) //nolint:wrapcheck
	})
}
