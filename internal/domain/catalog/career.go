package catalog

import "gorm.io/datatypes"

type Career struct {
	ID          uint                        `gorm:"primaryKey;autoIncrement:false" json:"id" yaml:"id"`
	Name        string                      `gorm:"not null;column:name" json:"name" yaml:"name"`
	Description string                      `gorm:"column:description" json:"description" yaml:"description"`
	Area        string                      `gorm:"column:area;index" json:"area" yaml:"area"`
	Skills      datatypes.JSONSlice[string] `gorm:"column:skills" json:"skills" yaml:"skills"`
}

func (Career) TableName() string { return "career" }
