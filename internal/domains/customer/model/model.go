package model

import (
	"hotel/shared/failure"
	"hotel/shared/validator"
)

const (
	TableName  = "customers"
	EntityName = "customer"

	FieldID          = "customer_id"
	FieldName        = "name"
	FieldAge         = "age"
	FieldPhoneNumber = "phone_number"
	FieldEmail       = "email"
)

const Unsaved = -1

// Customer can only be built through New, so its phone number and email are
// always valid.
type Customer struct {
	id          int
	name        string
	age         int
	phoneNumber string
	email       string
}

func New(id int, name string, age int, phoneNumber, email string) (Customer, error) {
	c := Customer{id: id, name: name, age: age}

	if err := c.SetPhoneNumber(phoneNumber); err != nil {
		return Customer{}, err
	}

	if err := c.SetEmail(email); err != nil {
		return Customer{}, err
	}

	return c, nil
}

func (c Customer) ID() int             { return c.id }
func (c Customer) Name() string        { return c.name }
func (c Customer) Age() int            { return c.age }
func (c Customer) PhoneNumber() string { return c.phoneNumber }
func (c Customer) Email() string       { return c.email }

// SetEmail accepts only a full match of word@word.word.
func (c *Customer) SetEmail(email string) error {
	if err := ValidateEmail(email); err != nil {
		return err
	}

	c.email = email

	return nil
}

// SetPhoneNumber accepts exactly 11 digits.
func (c *Customer) SetPhoneNumber(phone string) error {
	if err := ValidatePhoneNumber(phone); err != nil {
		return err
	}

	c.phoneNumber = phone

	return nil
}

// Equal compares identity only.
func (c Customer) Equal(other Customer) bool {
	return c.id == other.id
}

func ValidateEmail(email string) error {
	return validator.ValidateField("email", email, "mailbox") //nolint:wrapcheck
}

func ValidatePhoneNumber(phone string) error {
	return validator.ValidateField("phone number", phone, "phone") //nolint:wrapcheck
}

type Row struct {
	ID          int    `db:"customer_id"`
	Name        string `db:"name"`
	Age         int    `db:"age"`
	PhoneNumber string `db:"phone_number"`
	Email       string `db:"email"`
}

func FromCustomer(c Customer) Row {
	return Row{
		ID:          c.id,
		Name:        c.name,
		Age:         c.age,
		PhoneNumber: c.phoneNumber,
		Email:       c.email,
	}
}

// ToCustomer revalidates the stored values.
func (r Row) ToCustomer() (Customer, error) {
	c, err := New(r.ID, r.Name, r.Age, r.PhoneNumber, r.Email)
	if err != nil {
		return Customer{}, failure.DataIntegrity("stored customer is invalid: " + err.Error()) //nolint:wrapcheck
	}

	return c, nil
}
