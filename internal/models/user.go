package models

// AdminUser is a back-office account. Customers never authenticate;
// only catalog managers do.
type AdminUser struct {
	BaseModel
	Name         string `json:"name"`
	Email        string `gorm:"uniqueIndex" json:"email"`
	PasswordHash string `json:"-"`
}
