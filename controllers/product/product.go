package productControllers

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"github.com/aquibk580/Shark-Electronics-Backend/models"
)

type ProductInput struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Price       float64 `json:"price" binding:"required,gte=0"`
	CategoryID  uint    `json:"category_id" binding:"required"`
	Quantity    *int    `json:"quantity" binding:"required,gte=0"`
	Photo       string  `json:"photo"`
	Shipping    bool    `json:"shipping"`
}

type FilterInput struct {
	Checked []uint    `json:"checked"`
	Radio   []float64 `json:"radio"`
}

const productsPerPage = 6

// POST /product/create-product
func CreateProductHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Name, description, price, category and quantity are required", "error": err.Error()})
			return
		}

		var category models.Category
		if err := db.First(&category, input.CategoryID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Category does not exist"})
			return
		}

		product := models.Product{
			Name:        input.Name,
			Slug:        slug.Make(input.Name),
			Description: input.Description,
			Price:       input.Price,
			CategoryID:  input.CategoryID,
			Quantity:    *input.Quantity,
			Photo:       input.Photo,
			Shipping:    input.Shipping,
		}
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error in creating product", "error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Product created successfully", "product": product})
	}
}

// PUT /product/update-product/:pid
func UpdateProductHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Name, description, price, category and quantity are required", "error": err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("pid")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error while updating product", "error": err.Error()})
			return
		}

		product.Name = input.Name
		product.Slug = slug.Make(input.Name)
		product.Description = input.Description
		product.Price = input.Price
		product.CategoryID = input.CategoryID
		product.Quantity = *input.Quantity
		product.Shipping = input.Shipping
		if input.Photo != "" {
			product.Photo = input.Photo
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error while updating product", "error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product updated successfully", "product": product})
	}
}

// DELETE /product/delete-product/:pid
func DeleteProductHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Delete(&models.Product{}, "id = ?", c.Param("pid"))
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error while deleting product", "error": result.Error.Error()})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product deleted successfully"})
	}
}

// GET /product/get-product
func ListProductsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Preload("Category").
			Order("created_at DESC").
			Limit(12).
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error in getting products", "error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":    true,
			"countTotal": len(products),
			"message":    "All products",
			"products":   products,
		})
	}
}

// GET /product/get-product/:slug
func GetProductHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.Preload("Category").
			Where("slug = ?", c.Param("slug")).
			First(&product).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error while getting single product", "error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Single product fetched", "product": product})
	}
}

// POST /product/product-filters
func FilterProductsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input FilterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid filter input", "error": err.Error()})
			return
		}

		query := db.Model(&models.Product{})
		if len(input.Checked) > 0 {
			query = query.Where("category_id IN ?", input.Checked)
		}
		if len(input.Radio) == 2 {
			query = query.Where("price BETWEEN ? AND ?", input.Radio[0], input.Radio[1])
		}

		var products []models.Product
		if err := query.Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error while filtering products", "error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "products": products})
	}
}

// GET /product/product-count
func ProductCountHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var total int64
		if err := db.Model(&models.Product{}).Count(&total).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Error in product count", "error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "total": total})
	}
}

// GET /product/product-list/:page
func ProductListHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := strconv.Atoi(c.Param("page"))
		if err != nil || page < 1 {
			page = 1
		}

		var total int64
		if err := db.Model(&models.Product{}).Count(&total).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Error in per page ctrl", "error": err.Error()})
			return
		}
		totalPages := int(math.Ceil(float64(total) / float64(productsPerPage)))
		if totalPages > 0 && page > totalPages {
			page = 1
		}

		var products []models.Product
		if err := db.
			Order("created_at DESC").
			Offset((page - 1) * productsPerPage).
			Limit(productsPerPage).
			Find(&products).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Error in per page ctrl", "error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":    true,
			"products":   products,
			"page":       page,
			"totalPages": totalPages,
		})
	}
}

// GET /product/search/:keyword
func SearchProductsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		keyword := "%" + c.Param("keyword") + "%"

		var products []models.Product
		if err := db.
			Where("name ILIKE ? OR description ILIKE ?", keyword, keyword).
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error while searching products", "error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "products": products})
	}
}

// GET /product/related-product/:pid/:cid
func RelatedProductsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Preload("Category").
			Where("category_id = ? AND id <> ?", c.Param("cid"), c.Param("pid")).
			Limit(3).
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error while getting related products", "error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "products": products})
	}
}

// GET /product/product-category/:slug
func ProductsByCategoryHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var category models.Category
		if err := db.Where("slug = ?", c.Param("slug")).First(&category).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Category not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error while getting category wise products", "error": err.Error()})
			return
		}

		var products []models.Product
		if err := db.Preload("Category").
			Where("category_id = ?", category.ID).
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error while getting category wise products", "error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "category": category, "products": products})
	}
}
