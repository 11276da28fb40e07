// internal/model/organization.go
package model

import "time"

type OrganizationStatus string

const (
	OrgStatusActiva   OrganizationStatus = "activa"
	OrgStatusInactiva OrganizationStatus = "inactiva"
)

// Organization is a merchant collective/union. Rows are managed out-of-band;
// this service only reads them.
type Organization struct {
	ID               string             `gorm:"type:text;primary_key" json:"id"`
	Name             string             `gorm:"type:text;not null" json:"name"`
	Status           OrganizationStatus `gorm:"type:text;not null;index" json:"status"`
	LeaderName       string             `gorm:"type:text" json:"leader_name"`
	Address          string             `gorm:"type:text" json:"address"`
	MemberCount      int                `gorm:"type:integer" json:"member_count"`
	OrganizationType string             `gorm:"type:text" json:"organization_type"`
	ContactPhone     string             `gorm:"type:text" json:"contact_phone"`
	ContactEmail     string             `gorm:"type:text" json:"contact_email"`
	CreatedAt        time.Time          `json:"created_at"`
}

// OrganizationSummary is the projection returned by the public listing.
type OrganizationSummary struct {
	ID     string             `json:"id"`
	Name   string             `json:"name"`
	Status OrganizationStatus `json:"status"`
}
