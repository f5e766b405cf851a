package db

import (
	"context"
	"sync"

	"libros/models"

	"github.com/google/uuid"
)

var _ models.Library = (*MemoryLibraryManager)(nil)

// MemoryLibraryManager keeps books in process memory, in insertion order.
type MemoryLibraryManager struct {
	mu    sync.RWMutex
	books []models.Book
}

func NewMemoryLibrary() *MemoryLibraryManager {
	return &MemoryLibraryManager{}
}

func (library *MemoryLibraryManager) FindAll(_ context.Context) ([]models.Book, error) {
	library.mu.RLock()
	defer library.mu.RUnlock()

	books := make([]models.Book, len(library.books))
	copy(books, library.books)

	return books, nil
}

func (library *MemoryLibraryManager) FindById(_ context.Context, id string) (models.Book, error) {
	library.mu.RLock()
	defer library.mu.RUnlock()

	i := library.indexOf(id)
	if i < 0 {
		return models.Book{}, models.ErrBookNotFound
	}

	return library.books[i], nil
}

func (library *MemoryLibraryManager) Insert(_ context.Context, in models.BookInput) (models.Book, error) {
	book := in.WithID(uuid.NewString())

	library.mu.Lock()
	defer library.mu.Unlock()

	library.books = append(library.books, book)

	return book, nil
}

func (library *MemoryLibraryManager) Update(_ context.Context, id string, in models.BookInput) (models.Book, error) {
	library.mu.Lock()
	defer library.mu.Unlock()

	i := library.indexOf(id)
	if i < 0 {
		return models.Book{}, models.ErrBookNotFound
	}

	library.books[i] = in.WithID(id)

	return library.books[i], nil
}

func (library *MemoryLibraryManager) Delete(_ context.Context, id string) error {
	library.mu.Lock()
	defer library.mu.Unlock()

	i := library.indexOf(id)
	if i < 0 {
		return models.ErrBookNotFound
	}

	library.books = append(library.books[:i], library.books[i+1:]...)

	return nil
}

func (library *MemoryLibraryManager) Store(_ context.Context) (models.StoreSummary, error) {
	library.mu.RLock()
	defer library.mu.RUnlock()

	authors := make(map[string]struct{}, len(library.books))
	for _, book := range library.books {
		authors[book.Author] = struct{}{}
	}

	return models.StoreSummary{
		NumberOfBooks:   int64(len(library.books)),
		NumberOfAuthors: int64(len(authors)),
	}, nil
}

// indexOf must be called with mu held.
func (library *MemoryLibraryManager) indexOf(id string) int {
	if _, err := uuid.Parse(id); err != nil {
		return -1
	}

	for i := range library.books {
		if library.books[i].ID == id {
			return i
		}
	}

	return -1
}
