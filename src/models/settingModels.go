package models

// SettingAdminPassHash stores the bcrypt hash of the admin password
const SettingAdminPassHash = "admin_pass_hash"

type SettingModel struct {
	Key   string `json:"key" gorm:"primaryKey;type:text"`
	Value string `json:"value" gorm:"type:text;not null"`
}

func (SettingModel) TableName() string { return "settings" }
