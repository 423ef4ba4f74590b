package domain

import (
	"time"

	"github.com/google/uuid"
)

// Site represents one physical location of a company
type Site struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// Company represents the organization being audited. A company is owned
// by exactly one user and its activation flag gates whether that user
// may authenticate.
type Company struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	CompanyName string    `json:"company_name"`
	AdminName   string    `json:"admin_name"`
	Address     string    `json:"address"`
	Phone       string    `json:"phone"`
	NIT         string    `json:"nit,omitempty"`
	RiskClass   string    `json:"risk_class,omitempty"`
	WorkerCount int       `json:"worker_count,omitempty"`
	Sites       []Site    `json:"sites,omitempty"`
	LogoURL     string    `json:"logo_url,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewCompany creates a company pending activation.
func NewCompany(userID, companyName, adminName, address, phone, logoURL string) *Company {
	return &Company{
		ID:          uuid.New().String(),
		UserID:      userID,
		CompanyName: companyName,
		AdminName:   adminName,
		Address:     address,
		Phone:       phone,
		LogoURL:     logoURL,
		IsActive:    false,
		CreatedAt:   time.Now().UTC(),
	}
}
