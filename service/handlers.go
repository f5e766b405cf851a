package service

import (
	"errors"
	"net/http"

	"libros/activity"
	"libros/logging"
	"libros/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	welcomeMessage = "Bienvenido a la tienda de libros"

	msgNotFound      = "Libro no encontrado"
	msgListFailed    = "Error al obtener libros"
	msgGetFailed     = "Error al buscar el libro"
	msgSaveFailed    = "Error al guardar libro"
	msgUpdateFailed  = "Error al actualizar el libro"
	msgDeleteFailed  = "Error al eliminar el libro"
	msgStoreFailed   = "Error al obtener el resumen de la tienda"
	msgActivityError = "Error al obtener la actividad"
)

type Handler struct {
	logger  *zap.Logger
	library models.Library
	journal activity.Journal
}

func NewHandler(logger *zap.Logger, library models.Library, journal activity.Journal) *Handler {
	return &Handler{
		logger:  logger,
		library: library,
		journal: journal,
	}
}

func (h *Handler) Welcome(c *gin.Context) {
	c.String(http.StatusOK, welcomeMessage)
}

func (h *Handler) ListBooks(c *gin.Context) {
	books, err := h.library.FindAll(c.Request.Context())

	if logging.ErrorLibrary(h.logger, err, "can not list books", logging.ListBooks, requestID(c)) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": msgListFailed})
		return
	}

	c.JSON(http.StatusOK, books)
}

func (h *Handler) GetBookById(c *gin.Context) {
	id := c.Param("id")

	book, err := h.library.FindById(c.Request.Context(), id)

	if errors.Is(err, models.ErrBookNotFound) {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": msgNotFound})
		return
	}
	if logging.ErrorBook(h.logger, err, "can not get book", logging.GetBook, requestID(c), id) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": msgGetFailed})
		return
	}

	c.JSON(http.StatusOK, book)
}

func (h *Handler) CreateBook(c *gin.Context) {
	var in models.BookInput
	if !bindBook(c, &in) {
		return
	}

	book, err := h.library.Insert(c.Request.Context(), in)

	if logging.ErrorWriteBook(h.logger, err, "can not create book", logging.CreateBook, requestID(c), "", in.Title, in.Author) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": msgSaveFailed})
		return
	}

	logging.InfoWriteBook(h.logger, "book was created", logging.CreateBook, requestID(c), book.ID, book.Title, book.Author)

	c.JSON(http.StatusOK, book)
}

func (h *Handler) UpdateBookById(c *gin.Context) {
	id := c.Param("id")

	var in models.BookInput
	if !bindBook(c, &in) {
		return
	}

	book, err := h.library.Update(c.Request.Context(), id, in)

	if errors.Is(err, models.ErrBookNotFound) {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": msgNotFound})
		return
	}
	if logging.ErrorWriteBook(h.logger, err, "can not update book", logging.UpdateBook, requestID(c), id, in.Title, in.Author) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": msgUpdateFailed})
		return
	}

	logging.InfoWriteBook(h.logger, "book was updated", logging.UpdateBook, requestID(c), book.ID, book.Title, book.Author)

	c.JSON(http.StatusOK, book)
}

func (h *Handler) DeleteBookById(c *gin.Context) {
	id := c.Param("id")

	err := h.library.Delete(c.Request.Context(), id)

	if errors.Is(err, models.ErrBookNotFound) {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": msgNotFound})
		return
	}
	if logging.ErrorBook(h.logger, err, "can not delete book", logging.DeleteBook, requestID(c), id) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": msgDeleteFailed})
		return
	}

	logging.InfoBook(h.logger, "book was deleted", logging.DeleteBook, requestID(c), id)

	c.Status(http.StatusNoContent)
}

func (h *Handler) Store(c *gin.Context) {
	summary, err := h.library.Store(c.Request.Context())

	if logging.ErrorLibrary(h.logger, err, "can not summarize store", logging.StoreStats, requestID(c)) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": msgStoreFailed})
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *Handler) Activity(c *gin.Context) {
	username := c.Param("username")

	requests, err := h.journal.Read(username)

	if logging.ErrorActivity(h.logger, err, "can not read activity", logging.ReadVisits, requestID(c), username) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": msgActivityError})
		return
	}

	c.JSON(http.StatusOK, requests)
}

// RecordUserRequest journals the request when it names a user. A failing
// journal never fails the request.
func (h *Handler) RecordUserRequest(c *gin.Context) {
	username := c.Query("username")

	if username != "" {
		err := h.journal.Write(username, models.UserRequest{
			Method: c.Request.Method,
			Route:  c.Request.URL.Path,
		})
		logging.ErrorActivity(h.logger, err, "can not record request", logging.RecordVisit, requestID(c), username)
	}

	c.Next()
}
