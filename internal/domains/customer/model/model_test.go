package model_test

import (
	"hotel/internal/domains/customer/model"
	"hotel/shared/failure"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		phone   string
		email   string
		wantErr string
	}{
		{name: "valid", phone: "01234567891", email: "a@b.c"},
		{name: "short phone", phone: "123", email: "a@b.c", wantErr: "phone number must be exactly 11 digits"},
		{name: "letter in phone", phone: "0123456789a", email: "a@b.c", wantErr: "phone number must be exactly 11 digits"},
		{name: "bad email", phone: "01234567891", email: "not-an-email", wantErr: "email must look like name@domain.tld"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := model.New(model.Unsaved, "Ana", 31, tt.phone, tt.email)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.EqualError(t, err, tt.wantErr)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "Ana", c.Name())
			assert.Equal(t, 31, c.Age())
			assert.Equal(t, tt.phone, c.PhoneNumber())
			assert.Equal(t, tt.email, c.Email())
		})
	}
}

func TestCustomer_SettersKeepValueOnFailure(t *testing.T) {
	c, err := model.New(4, "Ana", 31, "01234567891", "ana@mail.com")
	require.NoError(t, err)

	require.Error(t, c.SetEmail("ana@mail"))
	assert.Equal(t, "ana@mail.com", c.Email())

	require.Error(t, c.SetPhoneNumber("0123456789"))
	assert.Equal(t, "01234567891", c.PhoneNumber())

	require.NoError(t, c.SetEmail("ana_b@post.org"))
	assert.Equal(t, "ana_b@post.org", c.Email())
}

func TestCustomer_Equal(t *testing.T) {
	a, err := model.New(1, "Ana", 31, "01234567891", "ana@mail.com")
	require.NoError(t, err)

	b, err := model.New(1, "Bo", 40, "98765432100", "bo@mail.com")
	require.NoError(t, err)

	c, err := model.New(2, "Ana", 31, "01234567891", "ana@mail.com")
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestRow_RoundTrip(t *testing.T) {
	c, err := model.New(9, "Ana", 31, "01234567891", "ana@mail.com")
	require.NoError(t, err)

	back, err := model.FromCustomer(c).ToCustomer()
	require.NoError(t, err)
	assert.Equal(t, c, back)

	_, err = model.Row{ID: 3, PhoneNumber: "1", Email: "x"}.ToCustomer()
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
}
