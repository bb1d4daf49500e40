package categoryControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"github.com/aquibk580/Shark-Electronics-Backend/models"
)

type CategoryInput struct {
	Name string `json:"name" binding:"required"`
}

// POST /category/create-category
func CreateCategoryHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Name is required"})
			return
		}

		var existing models.Category
		if err := db.Where("name = ?", input.Name).First(&existing).Error; err == nil {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "Category already exists"})
			return
		}

		category := models.Category{
			Name: input.Name,
			Slug: slug.Make(input.Name),
		}
		if err := db.Create(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error in category creation", "error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"success": true, "message": "New category created", "category": category})
	}
}

// PUT /category/update-category/:id
func UpdateCategoryHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Name is required"})
			return
		}

		var category models.Category
		if err := db.First(&category, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Category not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error while updating category", "error": err.Error()})
			return
		}

		category.Name = input.Name
		category.Slug = slug.Make(input.Name)
		if err := db.Save(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error while updating category", "error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Category updated successfully", "category": category})
	}
}

// GET /category/get-category
func ListCategoriesHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error while getting all categories", "error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "All categories list", "categories": categories})
	}
}

// GET /category/get-category/:slug
func GetCategoryHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var category models.Category
		if err := db.Where("slug = ?", c.Param("slug")).First(&category).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Category not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error while getting single category", "error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Get single category successfully", "category": category})
	}
}

// DELETE /category/delete-category/:id
func DeleteCategoryHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Delete(&models.Category{}, "id = ?", c.Param("id"))
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error while deleting category", "error": result.Error.Error()})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Category not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Category deleted successfully"})
	}
}
