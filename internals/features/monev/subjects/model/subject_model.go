package model

type SubjectModel struct {
	SubjectID   string `gorm:"column:subject_id;primaryKey;type:varchar(64)"`
	SubjectName string `gorm:"column:subject_name;type:text;not null"`
}

func (SubjectModel) TableName() string {
	return "subjects"
}
