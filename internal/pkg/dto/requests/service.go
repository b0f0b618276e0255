package requests

type ServiceFilter struct {
	Search   string
	Category string
	Page     int
	PageSize int
}

type CreateService struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Price       string `json:"price" validate:"required,numeric"`
	Category    string `json:"category" validate:"required"`
}

// UpdateService sends only the fields the user actually changed.
type UpdateService struct {
	ServiceID   string  `json:"id"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Price       *string `json:"price,omitempty" validate:"omitempty,numeric"`
	Category    *string `json:"category,omitempty"`
}
