package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a member of the directory. SupervisorID points at the user who
// receives approval-mode forwards from this user.
type User struct {
	ID           uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	WingID       string         `gorm:"column:wing_id;type:varchar(50);index"`
	SupervisorID *uuid.UUID     `gorm:"column:supervisor_id;type:uuid;index"`
	FullName     string         `gorm:"column:full_name;type:varchar(255);not null"`
	Designation  string         `gorm:"column:designation;type:varchar(255)"`
	Role         string         `gorm:"column:role;type:varchar(50);default:REQUESTER"`
	Email        string         `gorm:"column:email;type:text;not null;uniqueIndex"`
	Password     string         `gorm:"column:password;type:text;not null"`
	IsActive     bool           `gorm:"column:is_active;default:true"`
	CreatedAt    time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt    gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (User) TableName() string {
	return "users"
}
