// business.go - Defines the Business model for the database

package models

// Business is one tenant of the feedback product, identified by its unique
// subdomain. The subdomain doubles as the key for the tenant's asset directory.
type Business struct {
	ID               uint   `gorm:"primaryKey" json:"id"`
	Name             string `gorm:"not null" json:"name"`
	Subdomain        string `gorm:"uniqueIndex;not null" json:"subdomain"`
	GoogleReviewLink string `json:"googleReviewLink"`
	YelpReviewLink   string `json:"yelpReviewLink"`
	Email            string `json:"email"`
	Description      string `gorm:"type:text" json:"description"`
}

// PublicBusiness is the projection returned to unauthenticated callers.
type PublicBusiness struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Description      string `json:"description"`
	GoogleReviewLink string `json:"googleReviewLink"`
	YelpReviewLink   string `json:"yelpReviewLink"`
}

// Public returns the public-safe projection of the business.
func (b *Business) Public() PublicBusiness {
	return PublicBusiness{
		Name:             b.Name,
		Email:            b.Email,
		Description:      b.Description,
		GoogleReviewLink: b.GoogleReviewLink,
		YelpReviewLink:   b.YelpReviewLink,
	}
}
