package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mkaraca/campushub/internal/app/models/dto"
	"github.com/mkaraca/campushub/internal/app/services"
	"github.com/mkaraca/campushub/internal/middleware"
)

// DepartmentController handles department endpoints
type DepartmentController struct {
	deptService *services.DepartmentService
}

// NewDepartmentController creates a new DepartmentController
func NewDepartmentController(deptService *services.DepartmentService) *DepartmentController {
	return &DepartmentController{deptService: deptService}
}

// List handles GET /departments
func (c *DepartmentController) List(ctx *gin.Context) {
	departments, err := c.deptService.ListActive(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, departments)
}

// Save handles PUT /departments (admin only)
func (c *DepartmentController) Save(ctx *gin.Context) {
	var req dto.SaveDepartmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	dept, err := c.deptService.Save(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dept)
}

// Get handles GET /departments/:id
func (c *DepartmentController) Get(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid department ID").
			WithField("id")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	dept, err := c.deptService.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dept)
}
