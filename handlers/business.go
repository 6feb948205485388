// business.go - CRUD handlers for tenant businesses

package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"

	"feedback-backend/database"
	"feedback-backend/models"
	"feedback-backend/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BusinessInput carries the business fields for both the JSON and the
// multipart creation endpoints.
type BusinessInput struct {
	Name             string `json:"name" form:"name" binding:"required"`
	Subdomain        string `json:"subdomain" form:"subdomain" binding:"required"`
	GoogleReviewLink string `json:"googleReviewLink" form:"googleReviewLink"`
	YelpReviewLink   string `json:"yelpReviewLink" form:"yelpReviewLink"`
	Email            string `json:"email" form:"email" binding:"omitempty,email"`
	Description      string `json:"description" form:"description"`
}

// createBusiness persists a new business and lazily creates its asset
// directory. It writes the error response itself and reports success through
// the bool. The unique index is the authoritative duplicate guard; the
// pre-check only exists to answer the common case before an insert.
func createBusiness(c *gin.Context, input *BusinessInput) (*models.Business, bool) {
	var existing models.Business
	if err := database.DB.Where("subdomain = ?", input.Subdomain).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Business with this subdomain already exists"})
		return nil, false
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		zap.L().Error("failed to check subdomain", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return nil, false
	}

	business := models.Business{
		Name:             input.Name,
		Subdomain:        input.Subdomain,
		GoogleReviewLink: input.GoogleReviewLink,
		YelpReviewLink:   input.YelpReviewLink,
		Email:            input.Email,
		Description:      input.Description,
	}
	if err := database.DB.Create(&business).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost a concurrent create race; the constraint is the real guarantee.
			c.JSON(http.StatusConflict, gin.H{"error": "Business with this subdomain already exists"})
			return nil, false
		}
		zap.L().Error("failed to create business", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return nil, false
	}

	if err := assets.EnsureDir(business.Subdomain); err != nil {
		zap.L().Error("failed to create asset directory",
			zap.String("subdomain", business.Subdomain), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return nil, false
	}
	return &business, true
}

// storeUpload streams one uploaded file into the tenant's asset directory.
func storeUpload(fh *multipart.FileHeader, subdomain, role string) error {
	f, err := fh.Open()
	if err != nil {
		return err
	}
	defer f.Close()
	return assets.Store(subdomain, role, f)
}

// CreateBusiness handles the JSON creation endpoint.
func CreateBusiness(c *gin.Context) {
	var input BusinessInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	business, ok := createBusiness(c, &input)
	if !ok {
		return
	}
	c.JSON(http.StatusCreated, business)
}

// CreateBusinessWithImages handles the multipart creation endpoint, which
// accepts the same fields plus optional logo and backgroundImage files.
// A failed image move after the insert is reported as an error rather than
// silently swallowed; the business row exists at that point.
func CreateBusinessWithImages(c *gin.Context) {
	var input BusinessInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	business, ok := createBusiness(c, &input)
	if !ok {
		return
	}

	for field, role := range map[string]string{
		"logo":            storage.RoleLogo,
		"backgroundImage": storage.RoleBackground,
	} {
		fh, err := c.FormFile(field)
		if err != nil {
			continue // file not supplied
		}
		if err := storeUpload(fh, business.Subdomain, role); err != nil {
			zap.L().Error("failed to store image",
				zap.String("subdomain", business.Subdomain),
				zap.String("role", role), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
	}

	c.JSON(http.StatusCreated, business)
}

// ListBusinesses returns every business. No pagination.
func ListBusinesses(c *gin.Context) {
	var businesses []models.Business
	if err := database.DB.Find(&businesses).Error; err != nil {
		zap.L().Error("failed to list businesses", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, businesses)
}

// GetBusinessBySubdomain returns the public projection of one business.
func GetBusinessBySubdomain(c *gin.Context) {
	var business models.Business
	err := database.DB.Where("subdomain = ?", c.Param("subdomain")).First(&business).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Business not found"})
			return
		}
		zap.L().Error("failed to fetch business", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, business.Public())
}

// UpdateBusiness applies a partial update: only fields present in the
// submitted form are written, omitted fields keep their stored values.
// The subdomain itself is immutable. Optional logo/backgroundImage files
// replace the stored images.
func UpdateBusiness(c *gin.Context) {
	var business models.Business
	err := database.DB.Where("subdomain = ?", c.Param("subdomain")).First(&business).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
			return
		}
		zap.L().Error("failed to fetch business", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if v, ok := c.GetPostForm("name"); ok {
		business.Name = v
	}
	if v, ok := c.GetPostForm("googleReviewLink"); ok {
		business.GoogleReviewLink = v
	}
	if v, ok := c.GetPostForm("yelpReviewLink"); ok {
		business.YelpReviewLink = v
	}
	if v, ok := c.GetPostForm("email"); ok {
		business.Email = v
	}
	if v, ok := c.GetPostForm("description"); ok {
		business.Description = v
	}

	if err := database.DB.Save(&business).Error; err != nil {
		zap.L().Error("failed to update business", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	for field, role := range map[string]string{
		"logo":            storage.RoleLogo,
		"backgroundImage": storage.RoleBackground,
	} {
		fh, err := c.FormFile(field)
		if err != nil {
			continue
		}
		if err := storeUpload(fh, business.Subdomain, role); err != nil {
			zap.L().Error("failed to store image",
				zap.String("subdomain", business.Subdomain),
				zap.String("role", role), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Business updated successfully", "business": business})
}

// DeleteBusiness removes the record and purges the tenant's asset directory.
func DeleteBusiness(c *gin.Context) {
	var business models.Business
	err := database.DB.Where("subdomain = ?", c.Param("subdomain")).First(&business).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
			return
		}
		zap.L().Error("failed to fetch business", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := database.DB.Delete(&business).Error; err != nil {
		zap.L().Error("failed to delete business", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := assets.Purge(business.Subdomain); err != nil {
		zap.L().Error("failed to purge asset directory",
			zap.String("subdomain", business.Subdomain), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Business deleted successfully"})
}

// UploadImage replaces a single branding image for an existing business.
// The form carries the file under "file" and the role under "type".
func UploadImage(c *gin.Context) {
	var business models.Business
	err := database.DB.Where("subdomain = ?", c.Param("subdomain")).First(&business).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
			return
		}
		zap.L().Error("failed to fetch business", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	role := c.PostForm("type")
	if _, err := storage.Filename(role); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image type specified"})
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image file is required"})
		return
	}

	if err := storeUpload(fh, business.Subdomain, role); err != nil {
		zap.L().Error("failed to store image",
			zap.String("subdomain", business.Subdomain),
			zap.String("role", role), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": role + " image uploaded successfully"})
}
