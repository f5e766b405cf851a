package service

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"libros/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const bodyField = "body"

// FieldError describes one rejected field of a request body.
type FieldError struct {
	Field string `json:"field"`
	Msg   string `json:"msg"`
}

var requiredMessages = map[string]string{
	"titulo": "El título es requerido",
	"autor":  "El autor es requerido",
}

// bookFields lists the required book fields in the order they are reported.
var bookFields = []string{"titulo", "autor"}

var tagNamesOnce sync.Once

// registerJSONTagNames makes validation errors name fields by their JSON key.
func registerJSONTagNames() {
	tagNamesOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

func bindBook(c *gin.Context, in *models.BookInput) bool {
	if err := c.ShouldBindJSON(in); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"errors": bindingErrors(err)})
		return false
	}
	return true
}

func bindingErrors(err error) []FieldError {
	if errors.Is(err, io.EOF) {
		errs := make([]FieldError, 0, len(bookFields))
		for _, field := range bookFields {
			errs = append(errs, FieldError{Field: field, Msg: requiredMessage(field)})
		}
		return errs
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return []FieldError{{Field: bodyField, Msg: "El cuerpo de la petición no es JSON válido"}}
	}

	errs := make([]FieldError, 0, len(validationErrs))
	for _, e := range validationErrs {
		switch e.ActualTag() {
		case "required":
			errs = append(errs, FieldError{Field: e.Field(), Msg: requiredMessage(e.Field())})
		default:
			errs = append(errs, FieldError{Field: e.Field(), Msg: fmt.Sprintf("El campo %s no es válido", e.Field())})
		}
	}

	return errs
}

func requiredMessage(field string) string {
	if msg, ok := requiredMessages[field]; ok {
		return msg
	}
	return fmt.Sprintf("El campo %s es requerido", field)
}
