package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/customer/model"
	"hotel/shared"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	gRepo "hotel/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Customer interface {
	Insert(ctx context.Context, customer model.Customer) (int, error)
	Get(ctx context.Context, id int) (model.Customer, error)
	GetAll(ctx context.Context) ([]model.Customer, error)
	Count(ctx context.Context) (int, error)
	ValidateExists(ctx context.Context, id int) error
	UpdateEmail(ctx context.Context, id int, email string) error
	UpdatePhoneNumber(ctx context.Context, id int, phone string) error
	Delete(ctx context.Context, id int) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Row]
	tx   *postgres.Transactor
	otel otel.Otel
}

func New(db *postgres.Connection, tx *postgres.Transactor, otel otel.Otel) Customer {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Row](model.EntityName, model.TableName, model.FieldID, db, otel),
		tx:         tx,
		otel:       otel,
	}
}

func byID(id int) gDto.FilterGroup {
	return shared.FilterByID(id, model.FieldID, model.TableName)
}

func (r *repositoryImpl) Insert(ctx context.Context, customer model.Customer) (int, error) {
	id := model.Unsaved

	err := r.tx.WithTransaction(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		if err := r.InsertTx(ctx, tx, model.FromCustomer(customer)); err != nil {
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
		return model.Unsaved, fmt.Errorf("failed to add customer: %w", err)
	}

	return id, nil
}

func (r *repositoryImpl) Get(ctx context.Context, id int) (model.Customer, error) {
	row, err := r.Repository.Get(ctx, byID(id))
	if failure.IsNotFound(err) {
		return model.Customer{}, failure.NotFoundf("customer %d not found", id) //nolint:wrapcheck
	}

	if err != nil {
		return model.Customer{}, err //nolint:wrapcheck
	}

	return row.ToCustomer() //nolint:wrapcheck
}

func (r *repositoryImpl) GetAll(ctx context.Context) ([]model.Customer, error) {
	rows, err := r.Repository.GetAll(ctx, gDto.OrderBy(model.FieldID), gDto.FilterGroup{})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	customers := make([]model.Customer, 0, len(rows))

	for _, row := range rows {
		c, err := row.ToCustomer()
		if err != nil {
			return nil, err //nolint:wrapcheck
		}

		customers = append(customers, c)
	}

	return customers, nil
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
		return failure.NotFoundf("customer %d doesn't exist", id) //nolint:wrapcheck
	}

	return nil
}

func (r *repositoryImpl) validateExistsTx(ctx context.Context, tx *sqlx.Tx, id int) error {
	exist, err := r.ExistForUpdateTx(ctx, tx, byID(id))
	if err != nil {
		return err //nolint:wrapcheck
	}

	if !exist {
		return failure.NotFoundf("customer %d doesn't exist", id) //nolint:wrapcheck
	}

	return nil
}

func (r *repositoryImpl) UpdateEmail(ctx context.Context, id int, email string) error {
	if err := model.ValidateEmail(email); err != nil {
		return err //nolint:wrapcheck
	}

	return r.updateField(ctx, id, model.FieldEmail, email)
}

func (r *repositoryImpl) UpdatePhoneNumber(ctx context.Context, id int, phone string) error {
	if err := model.ValidatePhoneNumber(phone); err != nil {
		return err //nolint:wrapcheck
	}

	return r.updateField(ctx, id, model.FieldPhoneNumber, phone)
}

func (r *repositoryImpl) updateField(ctx context.Context, id int, field string, value any) error {
	return r.tx.WithTransaction(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		if err := r.validateExistsTx(ctx, tx, id); err != nil {
			return err
		}

		return r.UpdateTx(ctx, tx, map[string]any{field: value}, byID(id)) //nolint:wrapcheck
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
