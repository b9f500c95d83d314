package customer

import (
	"net/http"

	"videorental/api/response"
	customerapp "videorental/application/customer"

	"github.com/gin-gonic/gin"
)

// Controller Customer controller
type Controller struct {
	customerService *customerapp.ApplicationService
}

// NewController Create customer controller
func NewController(customerService *customerapp.ApplicationService) *Controller {
	return &Controller{
		customerService: customerService,
	}
}

// RegisterRoutes Register customer routes
func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	customerGroup := router.Group("/customers")
	{
		customerGroup.POST("", c.CreateCustomer)
		customerGroup.GET("", c.ListCustomers)
		customerGroup.GET("/:id", c.GetCustomer)
		customerGroup.GET("/email/:email", c.GetCustomerByEmail)
		customerGroup.GET("/national-id/:nationalId", c.GetCustomerByNationalID)
		customerGroup.DELETE("/:id", c.DeleteCustomer)
	}
}

// CreateCustomer Create customer
func (c *Controller) CreateCustomer(ctx *gin.Context) {
	var req customerapp.CreateCustomerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "Invalid request parameters", http.StatusBadRequest)
		return
	}

	customer, err := c.customerService.CreateCustomer(ctx.Request.Context(), req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleCreated(ctx, customer)
}

// GetCustomer Get customer by id
func (c *Controller) GetCustomer(ctx *gin.Context) {
	customer, err := c.customerService.GetCustomer(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, customer)
}

// GetCustomerByEmail Get customer by email
func (c *Controller) GetCustomerByEmail(ctx *gin.Context) {
	customer, err := c.customerService.GetCustomerByEmail(ctx.Request.Context(), ctx.Param("email"))
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, customer)
}

// GetCustomerByNationalID Get customer by national id
func (c *Controller) GetCustomerByNationalID(ctx *gin.Context) {
	customer, err := c.customerService.GetCustomerByNationalID(ctx.Request.Context(), ctx.Param("nationalId"))
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, customer)
}

// ListCustomers List customers with an optional name filter
func (c *Controller) ListCustomers(ctx *gin.Context) {
	customers, err := c.customerService.ListCustomers(ctx.Request.Context(), ctx.Query("name"))
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, customers)
}

// DeleteCustomer Delete customer
func (c *Controller) DeleteCustomer(ctx *gin.Context) {
	if err := c.customerService.DeleteCustomer(ctx.Request.Context(), ctx.Param("id")); err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleNoContent(ctx)
}
