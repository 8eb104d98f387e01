package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/creative-marketplace/internal/interface/http/response"
	"github.com/ignatzorin/creative-marketplace/internal/models"
	"github.com/ignatzorin/creative-marketplace/internal/pkg/apperror"
	"github.com/ignatzorin/creative-marketplace/internal/service"
)

// ProductHandler: товары, их изображения и пакеты услуг.
type ProductHandler struct {
	products *service.ProductService
}

func NewProductHandler(products *service.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

type productRequest struct {
	Creative    int64         `json:"creative"`
	Name        *string       `json:"name"`
	Description *string       `json:"description"`
	Price       *models.Money `json:"price"`
	Stock       *int          `json:"stock"`
}

func (r productRequest) toInput() service.ProductInput {
	in := service.ProductInput{
		CreativeID:  r.Creative,
		Name:        r.Name,
		Description: r.Description,
		Stock:       r.Stock,
	}
	if r.Price != nil {
		price := float64(*r.Price)
		in.Price = &price
	}
	return in
}

// List обрабатывает GET /api/products/?creative_id=&search=.
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.products.List(c.Request.Context(), models.ProductFilter{
		CreativeID: queryInt64(c, "creative_id"),
		Search:     c.Query("search"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	response.Success(c, products)
}

// Create обрабатывает POST /api/products/.
func (h *ProductHandler) Create(c *gin.Context) {
	var req productRequest
	if !bindJSON(c, &req) {
		return
	}

	product, err := h.products.Create(c.Request.Context(), req.toInput())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, product)
}

// Get обрабатывает GET /api/products/:id/.
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := pathID(c, apperror.ErrProductNotFound)
	if !ok {
		return
	}

	product, err := h.products.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, product)
}

// Update обрабатывает PUT и PATCH /api/products/:id/. PUT требует name и price.
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := pathID(c, apperror.ErrProductNotFound)
	if !ok {
		return
	}

	var req productRequest
	if !bindJSON(c, &req) {
		return
	}
	if c.Request.Method == http.MethodPut && (req.Name == nil || req.Price == nil) {
		response.BadRequest(c, "name and price are required")
		return
	}

	product, err := h.products.Update(c.Request.Context(), id, req.toInput())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, product)
}

// Delete обрабатывает DELETE /api/products/:id/.
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, apperror.ErrProductNotFound)
	if !ok {
		return
	}

	if err := h.products.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UploadImage обрабатывает POST /api/products/:id/image/ (multipart, поле image или file).
// Тип файла проверяется по содержимому в storage.ImageStorage.
func (h *ProductHandler) UploadImage(c *gin.Context) {
	id, ok := pathID(c, apperror.ErrProductNotFound)
	if !ok {
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		file, err = c.FormFile("file")
	}
	if err != nil {
		response.BadRequest(c, "image file is required")
		return
	}

	src, err := file.Open()
	if err != nil {
		response.BadRequest(c, "could not read uploaded file")
		return
	}
	defer src.Close()

	product, err := h.products.UploadImage(c.Request.Context(), id, src)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, product)
}

// ListPackages обрабатывает GET /api/service-packages/?creative_id=.
func (h *ProductHandler) ListPackages(c *gin.Context) {
	packages, err := h.products.ListPackages(c.Request.Context(), queryInt64(c, "creative_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if packages == nil {
		packages = []models.ServicePackage{}
	}
	response.Success(c, packages)
}

type packageRequest struct {
	Creative     int64        `json:"creative"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	Price        models.Money `json:"price"`
	DeliveryDays int          `json:"delivery_days"`
}

// CreatePackage обрабатывает POST /api/service-packages/.
func (h *ProductHandler) CreatePackage(c *gin.Context) {
	var req packageRequest
	if !bindJSON(c, &req) {
		return
	}

	pkg, err := h.products.CreatePackage(c.Request.Context(), service.PackageInput{
		CreativeID:   req.Creative,
		Name:         req.Name,
		Description:  req.Description,
		Price:        float64(req.Price),
		DeliveryDays: req.DeliveryDays,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, pkg)
}
