package catalog

import "gorm.io/datatypes"

// Occupation is a reference occupation with its RIASEC vector on the 1-7 scale.
type Occupation struct {
	ID            uint                        `gorm:"primaryKey;autoIncrement:false" json:"id" yaml:"id"`
	Name          string                      `gorm:"not null;index;column:name" json:"name" yaml:"name"`
	Realistic     float64                     `gorm:"not null;column:realistic" json:"realistic" yaml:"realistic"`
	Investigative float64                     `gorm:"not null;column:investigative" json:"investigative" yaml:"investigative"`
	Artistic      float64                     `gorm:"not null;column:artistic" json:"artistic" yaml:"artistic"`
	Social        float64                     `gorm:"not null;column:social" json:"social" yaml:"social"`
	Enterprising  float64                     `gorm:"not null;column:enterprising" json:"enterprising" yaml:"enterprising"`
	Conventional  float64                     `gorm:"not null;column:conventional" json:"conventional" yaml:"conventional"`
	Programs      datatypes.JSONSlice[string] `gorm:"column:programs" json:"programs" yaml:"programs"`
}

func (Occupation) TableName() string { return "occupation" }

// Scores returns the vector in R, I, A, S, E, C order.
func (o Occupation) Scores() [6]float64 {
	return [6]float64{o.Realistic, o.Investigative, o.Artistic, o.Social, o.Enterprising, o.Conventional}
}
