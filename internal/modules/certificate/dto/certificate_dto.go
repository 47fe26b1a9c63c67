package dto

import "time"

type CreateCertificateRequest struct {
	Name          string     `json:"name" binding:"required,max=150"`
	Issuer        string     `json:"issuer" binding:"required,max=120"`
	Description   string     `json:"description"`
	CredentialID  *string    `json:"credential_id" binding:"omitempty,max=120"`
	CredentialURL *string    `json:"credential_url" binding:"omitempty,url"`
	IssueDate     time.Time  `json:"issue_date" binding:"required"`
	ExpiryDate    *time.Time `json:"expiry_date"`
	Image         *string    `json:"image" binding:"omitempty,url"`
	Order         int        `json:"order"`
}

type UpdateCertificateRequest struct {
	Name          *string    `json:"name" binding:"omitempty,min=1,max=150"`
	Issuer        *string    `json:"issuer" binding:"omitempty,min=1,max=120"`
	Description   *string    `json:"description"`
	CredentialID  *string    `json:"credential_id" binding:"omitempty,max=120"`
	CredentialURL *string    `json:"credential_url" binding:"omitempty,url"`
	IssueDate     *time.Time `json:"issue_date"`
	ExpiryDate    *time.Time `json:"expiry_date"`
	Image         *string    `json:"image" binding:"omitempty,url"`
	Order         *int       `json:"order"`
}

type CertificateFilter struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}
