package handler

import (
	"net/http"
	"strconv"

	"github.com/strobelightprojects/Nursery-inventory-management/internal/config"
	"github.com/strobelightprojects/Nursery-inventory-management/internal/middleware"
	"github.com/strobelightprojects/Nursery-inventory-management/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse は message だけの返事。
type SuccessResponse struct {
	Message string `json:"message"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if ae, ok := usecase.AsAppError(err); ok {
		return c.JSON(statusForKind(ae.Kind), ErrorResponse{Error: ae.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// usecaseの失敗種別をHTTPステータスへ
func statusForKind(kind usecase.ErrorKind) int {
	switch kind {
	case usecase.KindValidation:
		return http.StatusBadRequest
	case usecase.KindUnauthorized:
		return http.StatusUnauthorized
	case usecase.KindNotFound:
		return http.StatusNotFound
	case usecase.KindConflict, usecase.KindInsufficientStock:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// /plants のAPI。閲覧は公開、変更はスタッフのみ
type PlantHandler struct {
	uc *usecase.ProductUsecase
}

// DI
func NewPlantHandler(uc *usecase.ProductUsecase) *PlantHandler {
	return &PlantHandler{uc: uc}
}

func (h *PlantHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	e.GET("/plants", h.list)
	e.GET("/plants/low-stock", h.lowStock)
	e.GET("/plants/:id", h.detail)

	auth := middleware.AuthJWT(cfg)
	e.POST("/plants", h.create, auth)
	e.PUT("/plants/:id", h.update, auth)
	e.DELETE("/plants/:id", h.remove, auth)
	e.POST("/plants/:id/stock", h.adjustStock, auth)
	e.GET("/plants/:id/adjustments", h.listAdjustments, auth)
}

func (h *PlantHandler) list(c echo.Context) error {
	// page（default 1）
	page := 1
	if v := c.QueryParam("page"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid page"})
		}
		page = p
	}

	// limit（default 20）
	limit := 20
	if v := c.QueryParam("limit"); v != "" {
		l, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit"})
		}
		limit = l
	}

	out, err := h.uc.ListProducts(c.Request().Context(), usecase.ListProductsInput{
		Page:   page,
		Limit:  limit,
		Search: c.QueryParam("search"),
		Sort:   c.QueryParam("sort"),
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *PlantHandler) lowStock(c echo.Context) error {
	rows, err := h.uc.ListLowStock(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *PlantHandler) detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	p, err := h.uc.GetProduct(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, p)
}

// price/quantityは0も正当な値なのでポインタで受けてキーの有無を見る
type PlantCreateRequest struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	SKU         string   `json:"sku"`
	Price       *float64 `json:"price"`
	CostPrice   float64  `json:"cost_price"`
	Quantity    *int64   `json:"quantity"`
	ReorderAt   int64    `json:"reorder_at"`
	SupplierID  *int64   `json:"supplier_id"`
	ImagePath   string   `json:"image_path"`
}

func (h *PlantHandler) create(c echo.Context) error {
	var req PlantCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if req.Price == nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "price required"})
	}
	if req.Quantity == nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "quantity required"})
	}

	p, err := h.uc.CreateProduct(c.Request().Context(), usecase.CreateProductInput{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		SKU:         req.SKU,
		Price:       *req.Price,
		CostPrice:   req.CostPrice,
		Quantity:    *req.Quantity,
		ReorderAt:   req.ReorderAt,
		SupplierID:  req.SupplierID,
		ImagePath:   req.ImagePath,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, p)
}

// 部分更新。送られてきたフィールドだけを書き換える
type PlantUpdateRequest struct {
	Name        *string  `json:"name"`
	Category    *string  `json:"category"`
	Description *string  `json:"description"`
	SKU         *string  `json:"sku"`
	Price       *float64 `json:"price"`
	CostPrice   *float64 `json:"cost_price"`
	Quantity    *int64   `json:"quantity"`
	ReorderAt   *int64   `json:"reorder_at"`
	SupplierID  *int64   `json:"supplier_id"` //0でリンク解除
	ImagePath   *string  `json:"image_path"`
}

func (h *PlantHandler) update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req PlantUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	err = h.uc.UpdateProduct(c.Request().Context(), id, usecase.UpdateProductInput{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		SKU:         req.SKU,
		Price:       req.Price,
		CostPrice:   req.CostPrice,
		Quantity:    req.Quantity,
		ReorderAt:   req.ReorderAt,
		SupplierID:  req.SupplierID,
		ImagePath:   req.ImagePath,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "updated"})
}

func (h *PlantHandler) remove(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "deleted"})
}

type StockAdjustRequest struct {
	Delta  int64  `json:"delta"`
	Reason string `json:"reason"`
}

func (h *PlantHandler) adjustStock(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req StockAdjustRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.AdjustStock(c.Request().Context(), id, req.Delta, req.Reason)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *PlantHandler) listAdjustments(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	adjustments, err := h.uc.ListAdjustments(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, adjustments)
}
