package corridor

import "context"

// Repository provides access to the corridor catalogue.
type Repository interface {
	// ListAll returns every corridor template.
	ListAll(ctx context.Context) ([]Corridor, error)
}
