package scope

import "gorm.io/gorm"

// OrderByDateTimeDesc sorts meetings newest first. date_time is stored as
// ISO-8601 text, so lexical order matches chronological order.
func OrderByDateTimeDesc(db *gorm.DB) *gorm.DB {
	return db.Order("date_time DESC")
}

func OrderByCreatedDesc(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC")
}

// Paginate applies offset/limit for a 1-based page.
func Paginate(page, limit int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset((page - 1) * limit).Limit(limit)
	}
}
