package handler

import (
	"net/http"
	"strconv"

	"github.com/strobelightprojects/Nursery-inventory-management/internal/config"
	"github.com/strobelightprojects/Nursery-inventory-management/internal/middleware"
	"github.com/strobelightprojects/Nursery-inventory-management/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /suppliers のAPI。閲覧は公開、変更はスタッフのみ
type SupplierHandler struct {
	uc *usecase.SupplierUsecase
}

// DI
func NewSupplierHandler(uc *usecase.SupplierUsecase) *SupplierHandler {
	return &SupplierHandler{uc: uc}
}

func (h *SupplierHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	e.GET("/suppliers", h.list)
	e.GET("/suppliers/:id", h.detail)

	auth := middleware.AuthJWT(cfg)
	e.POST("/suppliers", h.create, auth)
	e.PUT("/suppliers/:id", h.update, auth)
	e.DELETE("/suppliers/:id", h.remove, auth)
}

func (h *SupplierHandler) list(c echo.Context) error {
	suppliers, err := h.uc.ListSuppliers(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, suppliers)
}

func (h *SupplierHandler) detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	s, err := h.uc.GetSupplier(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, s)
}

type SupplierCreateRequest struct {
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
}

func (h *SupplierHandler) create(c echo.Context) error {
	var req SupplierCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	s, err := h.uc.CreateSupplier(c.Request().Context(), usecase.CreateSupplierInput{
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, s)
}

// 部分更新。送られてきたフィールドだけを書き換える
type SupplierUpdateRequest struct {
	Name          *string `json:"name"`
	ContactPerson *string `json:"contact_person"`
	Email         *string `json:"email"`
	Phone         *string `json:"phone"`
	Address       *string `json:"address"`
}

func (h *SupplierHandler) update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req SupplierUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	err = h.uc.UpdateSupplier(c.Request().Context(), id, usecase.UpdateSupplierInput{
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "updated"})
}

func (h *SupplierHandler) remove(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.DeleteSupplier(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "deleted"})
}
