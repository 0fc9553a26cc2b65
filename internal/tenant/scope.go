package tenant

import "gorm.io/gorm"

// WingScope limits a query to rows owned by one wing. An empty wing id
// matches nothing rather than everything.
func WingScope(wingID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if wingID == "" {
			return db.Where("1 = 0")
		}
		return db.Where("wing_id = ?", wingID)
	}
}

// Active hides soft-disabled rows.
func Active(table string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if table == "" {
			return db.Where("is_active = ?", true)
		}
		return db.Where(table+".is_active = ?", true)
	}
}
