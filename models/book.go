package models

// Book is a stored book record. ID is assigned by the store.
type Book struct {
	ID     string `json:"_id"`
	Title  string `json:"titulo"`
	Author string `json:"autor"`
}

// BookInput is the body accepted when creating or replacing a book.
type BookInput struct {
	Title  string `json:"titulo" binding:"required"`
	Author string `json:"autor" binding:"required"`
}

func (in BookInput) WithID(id string) Book {
	return Book{
		ID:     id,
		Title:  in.Title,
		Author: in.Author,
	}
}

type StoreSummary struct {
	NumberOfBooks   int64 `json:"numero_de_libros"`
	NumberOfAuthors int64 `json:"numero_de_autores"`
}

// UserRequest is one entry of a user's activity journal.
type UserRequest struct {
	Method string `json:"method"`
	Route  string `json:"route"`
}
