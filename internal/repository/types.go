package repository

// ProductListFilter narrows product queries.
type ProductListFilter struct {
	FactionID   *uint
	Category    string
	Search      string
	OnlyActive  bool
	WithFaction bool
	Page        int
	PageSize    int
}

// OrderListFilter narrows order queries.
type OrderListFilter struct {
	Page        int
	PageSize    int
	UserID      uint
	OrderNumber string
	Status      string
}

// UserListFilter narrows user queries on the admin surface.
type UserListFilter struct {
	Page     int
	PageSize int
	Keyword  string
	Status   string
}
