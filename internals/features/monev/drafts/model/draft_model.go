package model

import (
	"time"

	"gorm.io/datatypes"
)

// Draft isian formulir per dosen, supaya isian bisa dilanjutkan dari
// perangkat lain. Punya masa berlaku sendiri dan terpisah total dari log
// submission.
type DraftModel struct {
	DraftNIP       string         `gorm:"column:draft_nip;primaryKey;type:varchar(50)"`
	DraftPayload   datatypes.JSON `gorm:"column:draft_payload;type:jsonb;not null"`
	DraftUpdatedAt time.Time      `gorm:"column:draft_updated_at;autoUpdateTime"`
	DraftExpiresAt time.Time      `gorm:"column:draft_expires_at;not null;index"`
}

func (DraftModel) TableName() string {
	return "form_drafts"
}
