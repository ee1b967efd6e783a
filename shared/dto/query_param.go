package dto

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

type QueryParams struct {
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// OrderBy returns params that list every row ascending by column.
func OrderBy(column string) QueryParams {
	return QueryParams{SortBy: column, SortDir: SortDirAsc}
}
