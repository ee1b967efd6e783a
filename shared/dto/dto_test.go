package dto_test

import (
	"hotel/shared/dto"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name         string
		filter       dto.Filter
		expectedSQL  string
		expectedArgs map[string]any
	}{
		{
			name:         "eq with table",
			filter:       dto.Filter{Field: "room_number", Value: 101, Operator: dto.FilterOperatorEq, Table: "rooms"},
			expectedSQL:  "rooms.room_number = :room_number",
			expectedArgs: map[string]any{"room_number": 101},
		},
		{
			name:         "not eq with arg name",
			filter:       dto.Filter{ArgName: "exclude_id", Field: "booking_id", Value: 3, Operator: dto.FilterOperatorNotEq},
			expectedSQL:  "booking_id != :exclude_id",
			expectedArgs: map[string]any{"exclude_id": 3},
		},
		{
			name:         "in with slice",
			filter:       dto.Filter{Field: "status", Value: []string{"pending", "done"}, Operator: dto.FilterOperatorIn},
			expectedSQL:  "status IN (:status_0, :status_1)",
			expectedArgs: map[string]any{"status_0": "pending", "status_1": "done"},
		},
		{
			name:         "in with empty slice",
			filter:       dto.Filter{Field: "status", Value: []string{}, Operator: dto.FilterOperatorIn},
			expectedSQL:  "FALSE",
			expectedArgs: map[string]any{},
		},
		{
			name:         "unknown operator",
			filter:       dto.Filter{Field: "status", Value: "x", Operator: "like"},
			expectedSQL:  "",
			expectedArgs: map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.expectedSQL, sql)
			assert.Equal(t, tt.expectedArgs, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "room_number", Value: 7, Operator: dto.FilterOperatorEq},
			dto.FilterGroup{
				Operator: dto.FilterGroupOperatorOr,
				Filters: []any{
					dto.Filter{ArgName: "s1", Field: "status", Value: "pending", Operator: dto.FilterOperatorEq},
					dto.Filter{ArgName: "s2", Field: "status", Value: "done", Operator: dto.FilterOperatorEq},
				},
			},
		},
	}

	sql, args := group.GetWhereClause()

	assert.Equal(t, "(room_number = :room_number AND (status = :s1 OR status = :s2))", sql)
	assert.Equal(t, map[string]any{"room_number": 7, "s1": "pending", "s2": "done"}, args)
}

func TestFilterGroup_Empty(t *testing.T) {
	group := dto.FilterGroup{}

	sql, args := group.GetWhereClause()

	assert.Empty(t, sql)
	assert.Empty(t, args)
}

func TestOrderBy(t *testing.T) {
	params := dto.OrderBy("room_number")

	assert.Equal(t, "room_number", params.SortBy)
	assert.Equal(t, dto.SortDirAsc, params.SortDir)
}
