package service

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"libros/activity"
	"libros/db"
	"libros/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gopkg.in/redis.v5"
)

func initLibraryTest(t *testing.T) *gin.Engine {
	t.Helper()
	return SetupRoutes(zap.NewNop(), db.NewMemoryLibrary(), nil)
}

func createBook(t *testing.T, routes *gin.Engine, title, author string) models.Book {
	t.Helper()

	body := fmt.Sprintf(`{"titulo":%q,"autor":%q}`, title, author)
	w := doRequest(routes, http.MethodPost, "/libros", body)
	require.Equal(t, http.StatusOK, w.Code)

	var book models.Book
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &book))
	require.NotEmpty(t, book.ID)

	return book
}

func TestCreatedBookIsRetrievable(t *testing.T) {
	t.Parallel()

	routes := initLibraryTest(t)
	created := createBook(t, routes, "Cien años de soledad", "Gabriel García Márquez")

	w := doRequest(routes, http.MethodGet, "/libros/"+created.ID, "")
	require.Equal(t, http.StatusOK, w.Code)

	var got models.Book
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(t, created, got)
	require.Equal(t, "Cien años de soledad", got.Title)
	require.Equal(t, "Gabriel García Márquez", got.Author)
}

func TestUnknownIdsAreNotFound(t *testing.T) {
	t.Parallel()

	routes := initLibraryTest(t)
	body := `{"titulo":"Rayuela","autor":"Julio Cortázar"}`

	for _, id := range []string{uuid.NewString(), "malformed"} {
		require.Equal(t, http.StatusNotFound, doRequest(routes, http.MethodGet, "/libros/"+id, "").Code)
		require.Equal(t, http.StatusNotFound, doRequest(routes, http.MethodPut, "/libros/"+id, body).Code)
		require.Equal(t, http.StatusNotFound, doRequest(routes, http.MethodDelete, "/libros/"+id, "").Code)
	}
}

func TestUpdateReplacesFieldsAndKeepsId(t *testing.T) {
	t.Parallel()

	routes := initLibraryTest(t)
	created := createBook(t, routes, "Rayuela", "Julio Cortázar")

	w := doRequest(routes, http.MethodPut, "/libros/"+created.ID, `{"titulo":"Ficciones","autor":"Jorge Luis Borges"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Book
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	require.Equal(t, models.Book{ID: created.ID, Title: "Ficciones", Author: "Jorge Luis Borges"}, updated)

	w = doRequest(routes, http.MethodGet, "/libros/"+created.ID, "")
	var got models.Book
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(t, updated, got)
}

func TestInvalidUpdateLeavesBookUntouched(t *testing.T) {
	t.Parallel()

	routes := initLibraryTest(t)
	created := createBook(t, routes, "Rayuela", "Julio Cortázar")

	w := doRequest(routes, http.MethodPut, "/libros/"+created.ID, `{"titulo":"","autor":"Otro"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, []FieldError{{Field: "titulo", Msg: "El título es requerido"}}, decodeFieldErrors(t, w))

	w = doRequest(routes, http.MethodGet, "/libros/"+created.ID, "")
	var got models.Book
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(t, created, got)
}

func TestDeleteTwice(t *testing.T) {
	t.Parallel()

	routes := initLibraryTest(t)
	created := createBook(t, routes, "Rayuela", "Julio Cortázar")

	require.Equal(t, http.StatusNoContent, doRequest(routes, http.MethodDelete, "/libros/"+created.ID, "").Code)
	require.Equal(t, http.StatusNotFound, doRequest(routes, http.MethodGet, "/libros/"+created.ID, "").Code)
	require.Equal(t, http.StatusNotFound, doRequest(routes, http.MethodDelete, "/libros/"+created.ID, "").Code)
}

func TestListContainsCreatedBooks(t *testing.T) {
	t.Parallel()

	const n = 5

	routes := initLibraryTest(t)

	created := make(map[string]models.Book, n)
	for i := 0; i < n; i++ {
		book := createBook(t, routes, fmt.Sprintf("Libro %d", i), "Autor")
		created[book.ID] = book
	}

	w := doRequest(routes, http.MethodGet, "/libros", "")
	require.Equal(t, http.StatusOK, w.Code)

	var books []models.Book
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &books))
	require.GreaterOrEqual(t, len(books), n)

	for _, book := range books {
		if want, ok := created[book.ID]; ok {
			require.Equal(t, want, book)
			delete(created, book.ID)
		}
	}
	require.Empty(t, created)

	w = doRequest(routes, http.MethodGet, "/tienda", "")
	require.JSONEq(t, `{"numero_de_libros":5,"numero_de_autores":1}`, w.Body.String())
}

func TestActivityJournal(t *testing.T) {
	t.Parallel()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	routes := SetupRoutes(zap.NewNop(), db.NewMemoryLibrary(), activity.NewRedisJournal(client, 3))

	book := createBook(t, routes, "Rayuela", "Julio Cortázar")
	doRequest(routes, http.MethodGet, "/libros?username=ana", "")
	doRequest(routes, http.MethodGet, "/libros/"+book.ID+"?username=ana", "")
	doRequest(routes, http.MethodDelete, "/libros/"+book.ID+"?username=ana", "")
	doRequest(routes, http.MethodGet, "/tienda?username=ana", "")
	doRequest(routes, http.MethodGet, "/libros?username=luis", "")

	w := doRequest(routes, http.MethodGet, "/actividad/ana", "")
	require.Equal(t, http.StatusOK, w.Code)

	var requests []models.UserRequest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &requests))
	require.Equal(t, []models.UserRequest{
		{Method: http.MethodGet, Route: "/tienda"},
		{Method: http.MethodDelete, Route: "/libros/" + book.ID},
		{Method: http.MethodGet, Route: "/libros/" + book.ID},
	}, requests)

	w = doRequest(routes, http.MethodGet, "/actividad/nadie", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `[]`, w.Body.String())
}

func TestJournalFailureDoesNotFailRequests(t *testing.T) {
	t.Parallel()

	server, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	server.Close()

	routes := SetupRoutes(zap.NewNop(), db.NewMemoryLibrary(), activity.NewRedisJournal(client, 3))

	w := doRequest(routes, http.MethodGet, "/libros?username=ana", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(routes, http.MethodGet, "/actividad/ana", "")
	require.Equal(t, http.StatusInternalServerError, w.Code)
}
