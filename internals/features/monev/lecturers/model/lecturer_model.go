package model

import "time"

type LecturerModel struct {
	LecturerID         string    `gorm:"column:lecturer_id;primaryKey;type:varchar(64)"`
	LecturerNIP        string    `gorm:"column:lecturer_nip;type:varchar(50);index"` // kunci login/lookup dosen
	LecturerName       string    `gorm:"column:lecturer_name;type:text;not null"`
	LecturerDepartment string    `gorm:"column:lecturer_department;type:text"`
	LecturerCreatedAt  time.Time `gorm:"column:lecturer_created_at;autoCreateTime"`
}

func (LecturerModel) TableName() string {
	return "lecturers"
}
