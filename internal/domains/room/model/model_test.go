package model_test

import (
	"database/sql"
	"hotel/internal/domains/room/model"
	"hotel/shared/failure"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoom_TotalPrice(t *testing.T) {
	tests := []struct {
		name     string
		room     model.Room
		expected float64
	}{
		{name: "standard", room: model.NewStandard(1, 100, "available"), expected: 100},
		{name: "deluxe", room: model.NewDeluxe(2, 150, "available", 25.5), expected: 175.5},
		{name: "suite with jacuzzi", room: model.NewSuite(3, 300, "available", true, 50), expected: 350},
		{name: "suite without jacuzzi", room: model.NewSuite(4, 300, "available", false, 50), expected: 300},
		{name: "zero kind falls back to base", room: model.Room{Number: 5, BasePrice: 80}, expected: 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, tt.room.TotalPrice(), 1e-9)
		})
	}
}

func TestRoom_Type(t *testing.T) {
	assert.Equal(t, model.TypeStandard, model.NewStandard(model.Unsaved, 1, "available").Type())
	assert.Equal(t, model.TypeDeluxe, model.NewDeluxe(model.Unsaved, 1, "available", 1).Type())
	assert.Equal(t, model.TypeSuite, model.NewSuite(model.Unsaved, 1, "available", false, 0).Type())
}

func TestRoom_Mutators(t *testing.T) {
	room := model.NewDeluxe(7, 120, "available", 30)

	room.SetPrice(140)
	room.SetStatus("maintenance")
	require.NoError(t, room.SetExtraFees(10))

	assert.InDelta(t, 150.0, room.TotalPrice(), 1e-9)
	assert.False(t, room.IsAvailable())

	standard := model.NewStandard(8, 90, "available")
	err := standard.SetExtraFees(10)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestRoom_IsAvailable(t *testing.T) {
	assert.True(t, model.NewStandard(1, 1, "available").IsAvailable())
	assert.False(t, model.NewStandard(1, 1, "Available").IsAvailable())
	assert.False(t, model.NewStandard(1, 1, "maintenance").IsAvailable())
}

func TestRow_ToRoom(t *testing.T) {
	suiteRow := model.Row{
		Number:      12,
		Type:        model.TypeSuite,
		Status:      "available",
		BasePrice:   250,
		HasJacuzzi:  sql.NullBool{Bool: true, Valid: true},
		JacuzziCost: sql.NullFloat64{Float64: 40, Valid: true},
	}

	room, err := suiteRow.ToRoom()
	require.NoError(t, err)
	assert.Equal(t, model.NewSuite(12, 250, "available", true, 40), room)

	deluxeRow := model.Row{Number: 3, Type: model.TypeDeluxe, Status: "available", BasePrice: 100}
	room, err = deluxeRow.ToRoom()
	require.NoError(t, err)
	assert.Equal(t, model.Deluxe{ExtraFees: 0}, room.Kind)

	_, err = model.Row{Number: 9, Type: "penthouse"}.ToRoom()
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	assert.True(t, failure.Is(err, http.StatusInternalServerError))
}

func TestBaseRowAndVariantFields(t *testing.T) {
	suite := model.NewSuite(model.Unsaved, 250, "available", true, 40)

	row := model.BaseRow(suite)
	assert.Equal(t, model.TypeSuite, row.Type)
	assert.False(t, row.HasJacuzzi.Valid)
	assert.Equal(t, map[string]any{model.FieldHasJacuzzi: true, model.FieldJacuzziCost: 40.0}, model.VariantFields(suite))

	assert.Equal(t, map[string]any{model.FieldExtraFees: 15.0}, model.VariantFields(model.NewDeluxe(1, 1, "available", 15)))
	assert.Nil(t, model.VariantFields(model.NewStandard(1, 1, "available")))
}

func TestIsValidType(t *testing.T) {
	assert.True(t, model.IsValidType("suite"))
	assert.False(t, model.IsValidType("Suite"))
	assert.False(t, model.IsValidType(""))
}
