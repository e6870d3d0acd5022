package advisory

type Advisor struct {
	ID       uint   `gorm:"primaryKey;autoIncrement:false" json:"id" yaml:"id"`
	Name     string `gorm:"not null;column:name" json:"name" yaml:"name"`
	Surname  string `gorm:"not null;column:surname" json:"surname" yaml:"surname"`
	CareerID *uint  `gorm:"column:career_id;index" json:"career_id,omitempty" yaml:"career_id"`
}

func (Advisor) TableName() string { return "advisor" }
