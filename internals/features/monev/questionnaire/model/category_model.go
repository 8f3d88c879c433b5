package model

import "time"

type CategoryModel struct {
	CategoryID          string    `gorm:"column:category_id;primaryKey;type:varchar(64)"`
	CategoryTitle       string    `gorm:"column:category_title;type:text;not null"`
	CategoryDescription string    `gorm:"column:category_description;type:text"`
	CategorySortOrder   int       `gorm:"column:category_sort_order;not null;default:0"`
	CategoryCreatedAt   time.Time `gorm:"column:category_created_at;autoCreateTime"`

	// Urutan tampil pertanyaan mengikuti question_sort_order
	Questions []QuestionModel `gorm:"foreignKey:QuestionCategoryID;references:CategoryID;constraint:OnDelete:CASCADE"`
}

func (CategoryModel) TableName() string {
	return "categories"
}
