// internal/model/user.go
package model

import "time"

type UserRole string

const (
	RoleInspector   UserRole = "inspector"
	RoleCoordinator UserRole = "coordinator"
)

// User is an inspector or coordinator identity. Account provisioning and
// credentials live in the external auth provider; this table only carries
// the directory fields the dashboards need.
type User struct {
	ID                 string    `gorm:"type:text;primary_key" json:"id"`
	Name               string    `gorm:"type:text;not null" json:"name"`
	Email              string    `gorm:"type:text;uniqueIndex;not null" json:"email"`
	Role               UserRole  `gorm:"type:text;not null;index" json:"role"`
	AssignedZone       string    `gorm:"type:text;index" json:"assigned_zone"`
	TotalRegistrations int       `gorm:"type:integer;not null;default:0" json:"total_registrations"`
	CreatedAt          time.Time `json:"created_at"`
}
