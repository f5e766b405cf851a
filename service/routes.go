package service

import (
	"libros/activity"
	"libros/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SetupRoutes builds the HTTP engine. journal may be nil, in which case
// requests are not recorded and the activity route is not registered.
func SetupRoutes(logger *zap.Logger, library models.Library, journal activity.Journal) *gin.Engine {
	registerJSONTagNames()

	handler := NewHandler(logger, library, journal)

	routes := gin.New()
	routes.Use(RequestID(), AccessLog(logger), Recovery(logger))

	routes.GET("/", handler.Welcome)

	if journal != nil {
		routes.GET("/actividad/:username", handler.Activity)
	}

	trackedRoutes := routes.Group("/")
	{
		if journal != nil {
			trackedRoutes.Use(handler.RecordUserRequest)
		}

		trackedRoutes.GET("/libros", handler.ListBooks)
		trackedRoutes.GET("/libros/:id", handler.GetBookById)
		trackedRoutes.POST("/libros", handler.CreateBook)
		trackedRoutes.PUT("/libros/:id", handler.UpdateBookById)
		trackedRoutes.DELETE("/libros/:id", handler.DeleteBookById)
		trackedRoutes.GET("/tienda", handler.Store)
	}

	return routes
}
