package entities

import (
	"time"

	"github.com/google/uuid"
)

// CouncilProfile holds the budget and staffing figures used by the resource
// allocation comparison. Rows are seeded by migration and refreshed yearly.
type CouncilProfile struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Council    string    `gorm:"type:varchar(128);unique;not null" json:"council"`
	Region     string    `gorm:"type:varchar(64)" json:"region"`
	FiscalYear int       `gorm:"not null" json:"fiscal_year"`
	BudgetUSD  float64   `gorm:"column:budget_usd" json:"budget_usd"`
	StaffCount int       `json:"staff_count"`
	CreatedAt  time.Time `gorm:"default:now()" json:"created_at"`
	UpdatedAt  time.Time `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for CouncilProfile
func (CouncilProfile) TableName() string {
	return "council_profiles"
}
