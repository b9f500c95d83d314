package film

import (
	"net/http"
	"strconv"

	"videorental/api/response"
	filmapp "videorental/application/film"

	"github.com/gin-gonic/gin"
)

// Controller Film controller
type Controller struct {
	filmService *filmapp.ApplicationService
}

// NewController Create film controller
func NewController(filmService *filmapp.ApplicationService) *Controller {
	return &Controller{
		filmService: filmService,
	}
}

// RegisterRoutes Register film routes
func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	filmGroup := router.Group("/films")
	{
		filmGroup.POST("", c.CreateFilm)
		filmGroup.GET("", c.ListFilms)
		filmGroup.GET("/:id", c.GetFilm)
		filmGroup.PUT("/:id", c.UpdateFilm)
		filmGroup.DELETE("/:id", c.DeleteFilm)
	}
}

// CreateFilm Create film
func (c *Controller) CreateFilm(ctx *gin.Context) {
	var req filmapp.CreateFilmRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "Invalid request parameters", http.StatusBadRequest)
		return
	}

	film, err := c.filmService.CreateFilm(ctx.Request.Context(), req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleCreated(ctx, film)
}

// GetFilm Get film by id
func (c *Controller) GetFilm(ctx *gin.Context) {
	film, err := c.filmService.GetFilm(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, film)
}

// UpdateFilm Update film
func (c *Controller) UpdateFilm(ctx *gin.Context) {
	var req filmapp.UpdateFilmRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "Invalid request parameters", http.StatusBadRequest)
		return
	}

	film, err := c.filmService.UpdateFilm(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, film)
}

// ListFilms List films with at most one filter dimension
func (c *Controller) ListFilms(ctx *gin.Context) {
	year := 0
	if rawYear := ctx.Query("year"); rawYear != "" {
		parsed, err := strconv.Atoi(rawYear)
		if err != nil {
			response.HandleError(ctx, err, "Invalid year parameter", http.StatusBadRequest)
			return
		}
		year = parsed
	}

	films, err := c.filmService.ListFilms(ctx.Request.Context(), filmapp.FilmQuery{
		Name:     ctx.Query("name"),
		Director: ctx.Query("director"),
		Year:     year,
		Genre:    ctx.Query("genre"),
		Actor:    ctx.Query("actor"),
	})
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, films)
}

// DeleteFilm Delete film
func (c *Controller) DeleteFilm(ctx *gin.Context) {
	if err := c.filmService.DeleteFilm(ctx.Request.Context(), ctx.Param("id")); err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleNoContent(ctx)
}
