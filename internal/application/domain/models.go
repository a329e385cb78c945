package domain

import (
	"time"

	"github.com/ukripo/sisindex/internal/objtype"
)

// Application mirrors the legacy ipc_app_list row that drives indexation.
// elasticindexed is the freshness flag: 0 means the search document is
// stale and the application is a candidate for the next run.
type Application struct {
	ID                 int64       `gorm:"primaryKey;column:id" json:"id"`
	AppNumber          string      `gorm:"column:app_number;index" json:"app_number"`
	RegistrationNumber string      `gorm:"column:registration_number" json:"registration_number"`
	RegistrationDate   *time.Time  `gorm:"column:registration_date" json:"registration_date,omitempty"`
	ObjTypeID          objtype.ID  `gorm:"column:obj_type_id;index" json:"obj_type_id"`
	FilesPath          string      `gorm:"column:files_path" json:"files_path"`
	ElasticIndexed     int         `gorm:"column:elasticindexed;index" json:"elasticindexed"`
	LastUpdate         *time.Time  `gorm:"column:lastupdate" json:"lastupdate,omitempty"`
	LastIndexationDate *time.Time  `gorm:"column:last_indexation_date" json:"last_indexation_date,omitempty"`
	AppDate            *time.Time  `gorm:"column:app_date" json:"app_date,omitempty"`
	AppInputDate       *time.Time  `gorm:"column:app_input_date" json:"app_input_date,omitempty"`
	IsLimited          int         `gorm:"column:is_limited" json:"is_limited"`
	OpenDataUpdated    int         `gorm:"column:open_data_updated" json:"open_data_updated"`
	NotificationDate   *time.Time  `gorm:"column:notification_date" json:"notification_date,omitempty"`
	IDSheduleType      *int        `gorm:"column:id_shedule_type" json:"id_shedule_type,omitempty"`
}

func (Application) TableName() string { return "ipc_app_list" }

// Registered reports whether the application carries a protective document.
func (a *Application) Registered() bool {
	return a.RegistrationNumber != "" || a.RegistrationDate != nil
}

// AppDocument is an incoming-correspondence record attached to an application.
type AppDocument struct {
	ID       int64      `gorm:"primaryKey;column:id" json:"id"`
	AppID    int64      `gorm:"column:app_id;index" json:"app_id"`
	FileName string     `gorm:"column:file_name" json:"file_name"`
	FileType string     `gorm:"column:file_type" json:"file_type"`
	EnterNum *int       `gorm:"column:enter_num" json:"enter_num,omitempty"`
	AddDate  *time.Time `gorm:"column:add_date" json:"add_date,omitempty"`
}

func (AppDocument) TableName() string { return "app_documents" }
