package application

import "context"

// Repository defines the interface for application storage.
type Repository interface {
	// Save persists the record and ensures its id is in the index.
	Save(ctx context.Context, app *Application) error

	// Get retrieves one application; a missing record is a not-found error.
	Get(ctx context.Context, id string) (*Application, error)

	// List resolves every indexed id to its record. Ids whose record is
	// missing are skipped, never a failure.
	List(ctx context.Context) ([]*Application, error)

	// IndexSize returns the number of ids in the index, resolvable or not.
	IndexSize(ctx context.Context) (int, error)
}
