// internal/model/merchant.go
package model

import (
	"time"
)

type StandType string

const (
	// StandSemifijo is the only stand type the registration path produces.
	StandSemifijo StandType = "semifijo"
)

type Merchant struct {
	ID             string         `gorm:"type:text;primary_key" json:"id"`
	Name           string         `gorm:"type:text;not null" json:"name"`
	Business       string         `gorm:"type:text;not null" json:"business"`
	Address        string         `gorm:"type:text" json:"address"`
	Delegation     string         `gorm:"type:text;not null;index" json:"delegation"`
	Latitude       float64        `gorm:"type:double precision" json:"latitude"`
	Longitude      float64        `gorm:"type:double precision" json:"longitude"`
	OrganizationID *string        `gorm:"type:text;index" json:"organization_id"`
	ScheduleStart  string         `gorm:"type:text" json:"schedule_start"`
	ScheduleEnd    string         `gorm:"type:text" json:"schedule_end"`
	Status         MerchantStatus `gorm:"type:text;not null;index" json:"status"`
	StandType      StandType      `gorm:"type:text;not null" json:"stand_type"`
	RegisteredBy   string         `gorm:"type:text;not null;index" json:"registered_by"`
	StallPhotoURL  *string        `gorm:"type:text" json:"stall_photo_url"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`

	Organization *Organization `gorm:"foreignKey:OrganizationID" json:"-"`
}

// StatusCount is the per-status aggregate used by the reporting summary.
type StatusCount struct {
	Status MerchantStatus `json:"status"`
	Count  int64          `json:"count"`
}

// DelegationCount is the per-delegation aggregate used by the reporting summary.
type DelegationCount struct {
	Delegation string `json:"delegation"`
	Count      int64  `json:"count"`
}
