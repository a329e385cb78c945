package domain

import (
	"fmt"
	"time"
)

// E-bulletin units group publications by object family.
const (
	UnitTrademark  = 1
	UnitMadrid     = 2
	UnitGeographic = 3
)

// EBulletinData is a single electronic-bulletin publication notice,
// unique per (app_number, unit_id).
type EBulletinData struct {
	ID              int64      `gorm:"primaryKey;column:id" json:"id"`
	UnitID          int        `gorm:"column:unit_id" json:"unit_id"`
	AppNumber       string     `gorm:"column:app_number" json:"app_number"`
	PublicationDate *time.Time `gorm:"column:publication_date" json:"publication_date,omitempty"`
}

func (EBulletinData) TableName() string { return "ebulletin_data" }

// OfficialBulletin is one issue of the official IP bulletin. date_from and
// date_to bound the publication dates the issue covers.
type OfficialBulletin struct {
	ID        int64      `gorm:"primaryKey;column:id" json:"id"`
	BulDate   *time.Time `gorm:"column:bul_date" json:"bul_date,omitempty"`
	DateFrom  *time.Time `gorm:"column:date_from" json:"date_from,omitempty"`
	DateTo    *time.Time `gorm:"column:date_to" json:"date_to,omitempty"`
	BulNumber string     `gorm:"column:bul_number" json:"bul_number"`
}

func (OfficialBulletin) TableName() string { return "cl_list_official_bulletins_ip" }

// IssueLabel renders the "N/YYYY" identifier used in publication strings.
func (b *OfficialBulletin) IssueLabel() string {
	if b.BulDate == nil {
		return b.BulNumber
	}
	return fmt.Sprintf("%s/%d", b.BulNumber, b.BulDate.Year())
}
