package domain

type Customer struct {
	ID   int64
	Name string
}

// NewCustomer returns an unsaved customer; the store assigns ID on first save.
func NewCustomer(name string) *Customer {
	return &Customer{Name: name}
}
