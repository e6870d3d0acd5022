package assessment

// Statement is one questionnaire item, tagged with exactly one category.
type Statement struct {
	ID       uint     `gorm:"primaryKey;autoIncrement:false" json:"id" yaml:"id"`
	Text     string   `gorm:"not null;column:text" json:"text" yaml:"text"`
	Category Category `gorm:"type:varchar(1);not null;index;column:category" json:"category" yaml:"category"`
	Position int      `gorm:"not null;default:0;column:position" json:"position" yaml:"position"`
}

func (Statement) TableName() string { return "statement" }
