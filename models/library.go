package models

//go:generate mockgen -source=library.go -destination=mocks/library_mock.go -package=mocks

import "context"

// Library persists books. Lookups by an id that does not exist, or that the
// store can not parse, fail with ErrBookNotFound.
type Library interface {
	FindAll(ctx context.Context) ([]Book, error)
	FindById(ctx context.Context, id string) (Book, error)
	Insert(ctx context.Context, in BookInput) (Book, error)
	Update(ctx context.Context, id string, in BookInput) (Book, error)
	Delete(ctx context.Context, id string) error
	Store(ctx context.Context) (StoreSummary, error)
}
