package model

// AnkiMedia 通过闪卡桥接上传的媒体文件记录
// swagger:model AnkiMedia
type AnkiMedia struct {
	UUIDBase
	Filename    string `gorm:"size:255;not null" json:"filename"`
	ContentType string `gorm:"size:100" json:"contentType"`
	Size        int64  `gorm:"default:0" json:"size"`
	URL         string `gorm:"size:512" json:"url"`
}

func (AnkiMedia) TableName() string {
	return "anki_media"
}
