package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/room/model"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	gRepo "hotel/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Room interface {
	Insert(ctx context.Context, room model.Room) (int, error)
	Get(ctx context.Context, number int) (model.Room, error)
	GetAll(ctx context.Context) ([]model.Room, error)
	GetByStatus(ctx context.Context, status string) ([]model.Room, error)
	GetByType(ctx context.Context, roomType string) ([]model.Room, error)
	Count(ctx context.Context) (int, error)
	ValidateExists(ctx context.Context, number int) error
	UpdatePrice(ctx context.Context, number int, price float64) error
	UpdateStatus(ctx context.Context, number int, status string) error
	Delete(ctx context.Context, number int) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Row]
	tx   *postgres.Transactor
	otel otel.Otel
}

func New(db *postgres.Connection, tx *postgres.Transactor, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Row](model.EntityName, model.TableName, model.FieldNumber, db, otel),
		tx:         tx,
		otel:       otel,
	}
}

func byNumber(number int) gDto.FilterGroup {
	return shared.FilterByID(number, model.FieldNumber, model.TableName)
}

// Insert writes the base row, reads the assigned number and then fills the
// variant columns, all in one transaction.
func (r *repositoryImpl) Insert(ctx context.Context, room model.Room) (number int, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.InsertRoom")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = r.tx.WithTransaction(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		if err := r.InsertTx(ctx, tx, model.BaseRow(room)); err != nil {
			return err
		}

		id, err := r.LastInsertIDTx(ctx, tx)
		if err != nil {
			return err
		}

		if fields := model.VariantFields(room); len(fields) > 0 {
			if err := r.UpdateTx(ctx, tx, fields, byNumber(id)); err != nil {
				return err
			}
		}

		number = id

		return nil
	})
	if err != nil {
		return model.Unsaved, fmt.Errorf("failed to add %s room: %w", room.Type(), err)
	}

	scope.SetAttribute("room_number", number)

	return number, nil
}

func (r *repositoryImpl) Get(ctx context.Context, number int) (model.Room, error) {
	row, err := r.Repository.Get(ctx, byNumber(number))
	if failure.IsNotFound(err) {
		return model.Room{}, failure.NotFoundf("room %d not found", number) //nolint:wrapcheck
	}

	if err != nil {
		return model.Room{}, err //nolint:wrapcheck
	}

	return row.ToRoom() //nolint:wrapcheck
}

func (r *repositoryImpl) GetAll(ctx context.Context) ([]model.Room, error) {
	return r.list(ctx, gDto.FilterGroup{})
}

func (r *repositoryImpl) GetByStatus(ctx context.Context, status string) ([]model.Room, error) {
	return r.list(ctx, shared.FilterByField(model.FieldStatus, status))
}

func (r *repositoryImpl) GetByType(ctx context.Context, roomType string) ([]model.Room, error) {
	return r.list(ctx, shared.FilterByField(model.FieldType, roomType))
}

func (r *repositoryImpl) list(ctx context.Context, filter gDto.FilterGroup) ([]model.Room, error) {
	rows, err := r.Repository.GetAll(ctx, gDto.OrderBy(model.FieldNumber), filter)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	rooms := make([]model.Room, 0, len(rows))

	for _, row := range rows {
		room, err := row.ToRoom()
		if err != nil {
			return nil, err //nolint:wrapcheck
		}

		rooms = append(rooms, room)
	}

	return rooms, nil
}

func (r *repositoryImpl) Count(ctx context.Context) (int, error) {
	return r.Repository.Count(ctx, gDto.FilterGroup{}) //nolint:wrapcheck
}

// ValidateExists locks the room row for the duration of its own transaction.
func (r *repositoryImpl) ValidateExists(ctx context.Context, number int) error {
	return r.tx.WithTransaction(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		return r.validateExistsTx(ctx, tx, number)
	})
}

func (r *repositoryImpl) validateExistsTx(ctx context.Context, tx *sqlx.Tx, number int) error {
	exist, err := r.ExistForUpdateTx(ctx, tx, byNumber(number))
	if err != nil {
		return err //nolint:wrapcheck
	}

	if !exist {
		return failure.NotFoundf("room %d doesn't exist", number) //nolint:wrapcheck
	}

	return nil
}

func (r *repositoryImpl) UpdatePrice(ctx context.Context, number int, price float64) error {
	return r.updateField(ctx, number, model.FieldBasePrice, price)
}

func (r *repositoryImpl) UpdateStatus(ctx context.Context, number int, status string) error {
	return r.updateField(ctx, number, model.FieldStatus, status)
}

func (r *repositoryImpl) updateField(ctx context.Context, number int, field string, value any) error {
	return r.tx.WithTransaction(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		if err := r.validateExistsTx(ctx, tx, number); err != nil {
			return err
		}

		return r.UpdateTx(ctx, tx, map[string]any{field: value}, byNumber(number)) //nolint:wrapcheck
	})
}

func (r *repositoryImpl) Delete(ctx context.Context, number int) error {
	return r.tx.WithTransaction(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		if err := r.validateExistsTx(ctx, tx, number); err != nil {
			return err
		}

		return r.DeleteTx(ctx, tx, byNumber(number)) //nolint:wrapcheck
	})
}
