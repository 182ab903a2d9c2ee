package dao

import "time"

type Attraction struct {
	Base
	Name         string         `gorm:"size:255;not null"`
	Description  string         `gorm:"size:500;not null"`
	Type         string         `gorm:"size:100;not null"`
	Website      string         `gorm:"size:255"`
	Status       string         `gorm:"size:50"`
	Location     string         `gorm:"size:255;not null"`
	OpeningHours string         `gorm:"size:100"`
	Contacts     []Contact      `gorm:"polymorphic:Entity;polymorphicValue:attraction"`
	Images       []Image        `gorm:"polymorphic:Entity;polymorphicValue:attraction"`
	Documents    []DocumentFile `gorm:"polymorphic:Entity;polymorphicValue:attraction"`
}

func (Attraction) OwnerType() string { return "attraction" }

type Accessibility struct {
	Base
	AttractionID         uint        `gorm:"not null;index"`
	Attraction           *Attraction `gorm:"constraint:OnDelete:CASCADE"`
	RampAccess           bool        `gorm:"not null;default:false"`
	ElevatorAccess       bool        `gorm:"not null;default:false"`
	WideDoors            bool        `gorm:"not null;default:false"`
	BrailleSignage       bool        `gorm:"not null;default:false"`
	AccessibleBathrooms  bool        `gorm:"not null;default:false"`
	ReservedParking      bool        `gorm:"not null;default:false"`
	TrainedStaff         bool        `gorm:"not null;default:false"`
	AudioGuides          bool        `gorm:"not null;default:false"`
	SignLanguageServices bool        `gorm:"not null;default:false"`
	AccessibleRestAreas  bool        `gorm:"not null;default:false"`
	OnlineAccessibility  bool        `gorm:"not null;default:false"`
	OtherServices        string      `gorm:"size:255"`
}

func (Accessibility) TableName() string { return "accessibility" }

type Transport struct {
	Base
	Title       string  `gorm:"size:255;not null"`
	Description string  `gorm:"size:500;not null"`
	Type        string  `gorm:"size:50;not null"`
	Website     string  `gorm:"size:255"`
	Phone       string  `gorm:"size:20"`
	Images      []Image `gorm:"polymorphic:Entity;polymorphicValue:transport"`
}

func (Transport) OwnerType() string { return "transport" }

type Owner struct {
	Base
	Name        string `gorm:"size:255;not null"`
	PhoneNumber string `gorm:"size:20;not null"`
	Email       string `gorm:"size:255;not null"`
}

type Category struct {
	Base
	Name string `gorm:"size:255;not null;uniqueIndex"`
}

type Establishment struct {
	Base
	Name          string    `gorm:"size:255;not null"`
	Address       string    `gorm:"size:255;not null"`
	Description   string    `gorm:"type:text"`
	OwnerID       uint      `gorm:"not null;index"`
	Owner         *Owner    `gorm:"constraint:OnDelete:RESTRICT"`
	CategoryID    uint      `gorm:"not null;index"`
	Category      *Category `gorm:"constraint:OnDelete:RESTRICT"`
	PhoneNumber   string    `gorm:"size:20;not null"`
	WazeURL       string    `gorm:"size:500"`
	GoogleMapsURL string    `gorm:"size:500"`
	Website       string    `gorm:"size:255"`
	Contacts      []Contact `gorm:"polymorphic:Entity;polymorphicValue:establishment"`
	Images        []Image   `gorm:"polymorphic:Entity;polymorphicValue:establishment"`
}

func (Establishment) OwnerType() string { return "establishment" }

type TourEvent struct {
	Base
	Type                string `gorm:"size:100;not null"`
	Name                string `gorm:"size:255;not null"`
	Description         string `gorm:"type:text"`
	StartDate           string `gorm:"size:10;not null"`
	EndDate             string `gorm:"size:10"`
	StartTime           string `gorm:"size:5;not null"`
	EndTime             string `gorm:"size:5"`
	Location            string `gorm:"size:255;not null"`
	Price               *float64
	MaxCapacity         *int
	ActivityType        string         `gorm:"size:100"`
	Organizer           string         `gorm:"size:255"`
	SpecialRequirements string         `gorm:"type:text"`
	EstimatedDuration   string         `gorm:"size:50"`
	MeetingPoint        string         `gorm:"size:255"`
	WazeURL             string         `gorm:"size:500"`
	GoogleMapsURL       string         `gorm:"size:500"`
	Website             string         `gorm:"size:255"`
	Contacts            []Contact      `gorm:"polymorphic:Entity;polymorphicValue:tour_event"`
	Images              []Image        `gorm:"polymorphic:Entity;polymorphicValue:tour_event"`
	Documents           []DocumentFile `gorm:"polymorphic:Entity;polymorphicValue:tour_event"`
}

func (TourEvent) OwnerType() string { return "tour_event" }

type ServiceFields struct {
	Name          string `gorm:"size:255;not null"`
	Description   string `gorm:"type:text;not null"`
	PhoneNumber   string `gorm:"size:20;not null"`
	Address       string `gorm:"size:255"`
	Schedule      string `gorm:"size:255"`
	WazeURL       string `gorm:"size:500"`
	GoogleMapsURL string `gorm:"size:500"`
	Website       string `gorm:"size:255"`
}

type SecurityService struct {
	Base
	ServiceFields
	Contacts []Contact `gorm:"polymorphic:Entity;polymorphicValue:security_service"`
	Images   []Image   `gorm:"polymorphic:Entity;polymorphicValue:security_service"`
}

func (SecurityService) OwnerType() string { return "security_service" }

type BasicService struct {
	Base
	ServiceFields
	Contacts []Contact `gorm:"polymorphic:Entity;polymorphicValue:basic_service"`
	Images   []Image   `gorm:"polymorphic:Entity;polymorphicValue:basic_service"`
}

func (BasicService) OwnerType() string { return "basic_service" }

type RiskZone struct {
	Base
	Title       string  `gorm:"size:255;not null"`
	Description string  `gorm:"type:text;not null"`
	Latitude    float64 `gorm:"not null"`
	Longitude   float64 `gorm:"not null"`
}

type ArchaeologicalSite struct {
	Base
	Name        string  `gorm:"size:255;not null"`
	Description string  `gorm:"type:text"`
	Latitude    float64 `gorm:"not null"`
	Longitude   float64 `gorm:"not null"`
	Images      []Image `gorm:"polymorphic:Entity;polymorphicValue:archaeological_site"`
}

func (ArchaeologicalSite) OwnerType() string { return "archaeological_site" }

type TravelDestination struct {
	Base
	Title           string  `gorm:"size:255;not null"`
	Description     string  `gorm:"type:text;not null"`
	BestTimeToVisit string  `gorm:"size:255;not null"`
	TravelTips      string  `gorm:"type:text;not null"`
	Latitude        float64 `gorm:"not null"`
	Longitude       float64 `gorm:"not null"`
}

type EducationalResource struct {
	Base
	Title           string         `gorm:"size:255;not null"`
	Description     string         `gorm:"type:text"`
	Link            string         `gorm:"size:500"`
	Category        string         `gorm:"size:100"`
	PublicationDate string         `gorm:"size:10"`
	Authors         []string       `gorm:"serializer:json;type:text"`
	Documents       []DocumentFile `gorm:"polymorphic:Entity;polymorphicValue:educational_resource"`
}

func (EducationalResource) OwnerType() string { return "educational_resource" }

type LegalInfo struct {
	Base
	Title       string         `gorm:"size:255;not null"`
	Description string         `gorm:"type:text"`
	Website     string         `gorm:"size:255"`
	Documents   []DocumentFile `gorm:"polymorphic:Entity;polymorphicValue:info_legal_regulatoria"`
}

func (LegalInfo) TableName() string { return "info_legal_regulatoria" }

func (LegalInfo) OwnerType() string { return "info_legal_regulatoria" }

type Multimedia struct {
	Base
	File        string `gorm:"size:255;not null"`
	URL         string `gorm:"size:500;not null"`
	Name        string `gorm:"size:255;not null"`
	Title       string `gorm:"size:255"`
	Description string `gorm:"size:500"`
	Type        string `gorm:"size:100"`
}

func (Multimedia) TableName() string { return "multimedia" }

type Notification struct {
	Base
	Title   string `gorm:"size:255;not null"`
	Message string `gorm:"size:1000;not null"`
	UserID  *uint  `gorm:"index"`
	Read    bool   `gorm:"not null;default:false;index"`
}

type Weather struct {
	Base
	Datetime    time.Time `gorm:"not null;uniqueIndex"`
	Temperature float64
	FeelsLike   float64
	Humidity    int
	Description string `gorm:"size:255"`
	Icon        string `gorm:"size:20"`
	WindSpeed   float64
	Rain        float64
}

func (Weather) TableName() string { return "weather" }
