package handlers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"

	"ironhorse/models"
	"ironhorse/services/catalog"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ListProductsHandler returns the storefront product list, optionally
// filtered by category. Admin callers can pass includeInactive=true.
func (hb *HandlerBundle) ListProductsHandler(c *gin.Context) {
	includeInactive := c.Query("includeInactive") == "true" && c.GetString("ownerID") != ""
	products, err := hb.Catalog.ListProducts(c.Query("category"), includeInactive)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list products"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// GetProductHandler returns a single product.
func (hb *HandlerBundle) GetProductHandler(c *gin.Context) {
	p, err := hb.Catalog.GetProduct(c.Param("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": p})
}

// CreateProductHandler adds a product to the catalog (owner only).
func (hb *HandlerBundle) CreateProductHandler(c *gin.Context) {
	var p models.Product
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := hb.Catalog.CreateProduct(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"product": p})
}

// UpdateProductHandler modifies a catalog product (owner only).
func (hb *HandlerBundle) UpdateProductHandler(c *gin.Context) {
	var p models.Product
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	p.ID = c.Param("id")
	if err := hb.Catalog.UpdateProduct(&p); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": p})
}

// DeleteProductHandler removes a product (owner only).
func (hb *HandlerBundle) DeleteProductHandler(c *gin.Context) {
	if err := hb.Catalog.DeleteProduct(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// UploadProductImageHandler uploads a product photo and attaches its
// URL to the product (owner only).
func (hb *HandlerBundle) UploadProductImageHandler(c *gin.Context) {
	if hb.Media == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image uploads are not configured"})
		return
	}

	p, err := hb.Catalog.GetProduct(c.Param("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch product"})
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	// The client-supplied filename is untrusted; only its extension is
	// kept, under a server-chosen name.
	tmpPath := filepath.Join(os.TempDir(), uuid.New().String()+filepath.Ext(filepath.Base(file.Filename)))
	if err := c.SaveUploadedFile(file, tmpPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store upload"})
		return
	}
	defer os.Remove(tmpPath)

	url, err := hb.Media.UploadImage(c.Request.Context(), tmpPath, "products")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload image"})
		return
	}

	p.ImageURL = url
	if err := hb.Catalog.UpdateProduct(p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save image URL"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": p})
}

// ListServicesHandler returns the bookable service list.
func (hb *HandlerBundle) ListServicesHandler(c *gin.Context) {
	includeInactive := c.Query("includeInactive") == "true" && c.GetString("ownerID") != ""
	services, err := hb.Catalog.ListServices(includeInactive)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list services"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// GetServiceHandler returns a single bookable service.
func (hb *HandlerBundle) GetServiceHandler(c *gin.Context) {
	svc, err := hb.Catalog.GetService(c.Param("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch service"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"service": svc})
}

// CreateServiceHandler adds a bookable service (owner only).
func (hb *HandlerBundle) CreateServiceHandler(c *gin.Context) {
	var svc models.ServiceType
	if err := c.ShouldBindJSON(&svc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := hb.Catalog.CreateService(&svc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"service": svc})
}

// UpdateServiceHandler modifies a bookable service (owner only).
func (hb *HandlerBundle) UpdateServiceHandler(c *gin.Context) {
	var svc models.ServiceType
	if err := c.ShouldBindJSON(&svc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	svc.ID = c.Param("id")
	if err := hb.Catalog.UpdateService(&svc); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"service": svc})
}

// DeleteServiceHandler removes a bookable service (owner only).
func (hb *HandlerBundle) DeleteServiceHandler(c *gin.Context) {
	if err := hb.Catalog.DeleteService(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete service"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
