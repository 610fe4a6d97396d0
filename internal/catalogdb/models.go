package catalogdb

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Province mirrors catalog.Province. ExternalID is the dataset id; SortOrder
// keeps dataset order.
type Province struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ExternalID string    `gorm:"uniqueIndex;not null" json:"external_id"`
	Name       string    `gorm:"not null" json:"name"`
	NameEn     string    `json:"name_en"`
	Region     string    `gorm:"not null;index" json:"region"`
	Desc       string    `json:"desc"`
	Emoji      string    `json:"emoji"`
	SortOrder  int       `gorm:"not null" json:"sort_order"`
	UpdatedAt  time.Time `json:"updated_at"`

	Districts []District `gorm:"foreignKey:ProvinceID" json:"districts,omitempty"`
}

func (Province) TableName() string {
	return "directory.provinces"
}

type District struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProvinceID uuid.UUID `gorm:"type:uuid;not null;index:idx_district_province_ext,unique" json:"province_id"`
	ExternalID string    `gorm:"not null;index:idx_district_province_ext,unique" json:"external_id"`
	Name       string    `gorm:"not null" json:"name"`
	SortOrder  int       `gorm:"not null" json:"sort_order"`
	UpdatedAt  time.Time `json:"updated_at"`

	Restaurants []Restaurant `gorm:"foreignKey:DistrictID" json:"restaurants,omitempty"`
}

func (District) TableName() string {
	return "directory.districts"
}

// Restaurant keeps the dataset's integer id as ExternalID, unique across the
// whole directory.
type Restaurant struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	DistrictID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"district_id"`
	ExternalID  int            `gorm:"uniqueIndex;not null" json:"external_id"`
	Name        string         `gorm:"not null" json:"name"`
	Type        string         `json:"type"`
	Rating      float64        `json:"rating"`
	Reviews     int            `json:"reviews"`
	Price       float64        `json:"price"`
	Address     string         `json:"address"`
	Hours       string         `json:"hours"`
	Tags        pq.StringArray `gorm:"type:text[]" json:"tags"`
	Recommended bool           `gorm:"default:false" json:"recommended"`
	Emoji       string         `json:"emoji"`
	SortOrder   int            `gorm:"not null" json:"sort_order"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func (Restaurant) TableName() string {
	return "directory.restaurants"
}
