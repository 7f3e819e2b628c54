package models

// Page is the server's paginated envelope. PageNumber is zero-based.
type Page[T any] struct {
	Data          []T  `json:"data" validate:"dive"`
	TotalElements int  `json:"totalElements" validate:"min=0"`
	PageNumber    int  `json:"pageNumber" validate:"min=0"`
	TotalPages    int  `json:"totalPages" validate:"min=0"`
	IsFirst       bool `json:"isFirst"`
	IsLast        bool `json:"isLast"`
	HasNext       bool `json:"hasNext"`
	HasPrevious   bool `json:"hasPrevious"`
}

// PageParams selects a page. Nil fields are not sent.
type PageParams struct {
	Page *int
	Size *int
}

// CustomerListParams filters the customer list.
type CustomerListParams struct {
	SearchTerm *string
	PageParams
}

// LoanListParams filters a customer's loans.
type LoanListParams struct {
	Status *string
	PageParams
}
