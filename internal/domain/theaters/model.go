package theaters

type Theater struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"not null" json:"name"`
	Location string `gorm:"not null" json:"location"`
	Rooms    int    `gorm:"not null;default:1" json:"rooms"`
	Seats    int    `gorm:"not null;default:0" json:"seats"`
}
