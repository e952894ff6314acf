package assets

import "time"

// Asset stores uploaded binaries (movie posters, fun-item images) directly in
// the database, base64-encoded.
type Asset struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Filename    string `gorm:"not null" json:"filename"`
	ContentType string `gorm:"not null" json:"contentType"`
	Size        int    `gorm:"not null" json:"size"`
	Data        string `gorm:"not null" json:"-"`
	CreatedAt   time.Time `json:"createdAt"`
}
