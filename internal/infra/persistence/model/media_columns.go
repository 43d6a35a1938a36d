package model

// MediaColumns is the column group embedded for every remote artifact reference.
// An empty RemoteID means the slot is unset.
type MediaColumns struct {
	RemoteID     string  `gorm:"type:varchar(512)"`
	URL          string  `gorm:"type:text"`
	ResourceType string  `gorm:"type:varchar(16)"`
	Duration     float64 `gorm:"default:0"`
}
