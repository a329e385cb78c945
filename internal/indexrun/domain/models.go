package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// IndexationRun is the audit row for one indexation pass.
type IndexationRun struct {
	ID         snowflake.ID `gorm:"primaryKey;column:id" json:"id"`
	BeginDate  *time.Time   `gorm:"column:begin_date" json:"begin_date,omitempty"`
	FinishDate *time.Time   `gorm:"column:finish_date" json:"finish_date,omitempty"`
	Processed  int          `gorm:"column:processed" json:"processed"`
	OK         int          `gorm:"column:ok" json:"ok"`
	Skipped    int          `gorm:"column:skipped" json:"skipped"`
	Errors     int          `gorm:"column:errors" json:"errors"`
}

func (IndexationRun) TableName() string { return "indexation_process" }
