package rental

import (
	"io"
	"net/http"

	"videorental/api/response"
	rentalapp "videorental/application/rental"

	"github.com/gin-gonic/gin"
)

// Controller Rental controller
type Controller struct {
	rentalService *rentalapp.ApplicationService
}

// NewController Create rental controller
func NewController(rentalService *rentalapp.ApplicationService) *Controller {
	return &Controller{
		rentalService: rentalService,
	}
}

// RegisterRoutes Register rental routes
func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	rentalGroup := router.Group("/rentals")
	{
		rentalGroup.POST("", c.CreateRental)
		rentalGroup.GET("", c.ListRentals)
		rentalGroup.GET("/late", c.ListOverdueRentals)
		rentalGroup.GET("/:id", c.GetRental)
		rentalGroup.PUT("/:id/return", c.ReturnRental)
		rentalGroup.DELETE("/:id", c.DeleteRental)
	}
}

// CreateRental Create rental
func (c *Controller) CreateRental(ctx *gin.Context) {
	var req rentalapp.CreateRentalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "Invalid request parameters", http.StatusBadRequest)
		return
	}

	rental, err := c.rentalService.CreateRental(ctx.Request.Context(), req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleCreated(ctx, rental)
}

// GetRental Get rental by id
func (c *Controller) GetRental(ctx *gin.Context) {
	rental, err := c.rentalService.GetRental(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, rental)
}

// ListRentals Filtered rental listing
func (c *Controller) ListRentals(ctx *gin.Context) {
	rentals, err := c.rentalService.ListRentals(ctx.Request.Context(), rentalapp.RentalQuery{
		CustomerID: ctx.Query("customerId"),
		FilmID:     ctx.Query("filmId"),
		Status:     ctx.Query("status"),
	})
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, rentals)
}

// ListOverdueRentals List rentals past their expected return date
func (c *Controller) ListOverdueRentals(ctx *gin.Context) {
	rentals, err := c.rentalService.ListOverdueRentals(ctx.Request.Context())
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, rentals)
}

// ReturnRental Return a rental. The body is optional; an empty body
// returns the rental today. A missing rental is a 400 here, not a 404.
func (c *Controller) ReturnRental(ctx *gin.Context) {
	var req rentalapp.ReturnRentalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && err != io.EOF {
		response.HandleError(ctx, err, "Invalid request parameters", http.StatusBadRequest)
		return
	}

	rental, err := c.rentalService.ReturnRental(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		response.HandleNotFoundAsBadRequest(ctx, err)
		return
	}

	response.HandleSuccess(ctx, rental)
}

// DeleteRental Delete rental
func (c *Controller) DeleteRental(ctx *gin.Context) {
	if err := c.rentalService.DeleteRental(ctx.Request.Context(), ctx.Param("id")); err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleNoContent(ctx)
}
