package domain

import "time"

type Attraction struct {
	ID           uint       `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Type         string     `json:"type_attraction"`
	Website      string     `json:"website"`
	Status       string     `json:"status"`
	Location     string     `json:"location"`
	OpeningHours string     `json:"opening_hours"`
	Contacts     []Contact  `json:"contacts"`
	Images       []Image    `json:"images"`
	Documents    []Document `json:"documents"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type Accessibility struct {
	ID                   uint      `json:"id"`
	AttractionID         uint      `json:"attraction_id"`
	RampAccess           bool      `json:"ramp_access"`
	ElevatorAccess       bool      `json:"elevator_access"`
	WideDoors            bool      `json:"wide_doors"`
	BrailleSignage       bool      `json:"braille_signage"`
	AccessibleBathrooms  bool      `json:"accessible_bathrooms"`
	ReservedParking      bool      `json:"reserved_parking"`
	TrainedStaff         bool      `json:"trained_staff"`
	AudioGuides          bool      `json:"audio_guides"`
	SignLanguageServices bool      `json:"sign_language_services"`
	AccessibleRestAreas  bool      `json:"accessible_rest_areas"`
	OnlineAccessibility  bool      `json:"online_accessibility"`
	OtherServices        string    `json:"other_services"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

const (
	TransportPublic   = "Transporte Público"
	TransportRental   = "Alquiler de Vehículos"
	TransportBicycles = "Bicicletas"
	TransportHowToGet = "Cómo Llegar"
)

type Transport struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	Website     string    `json:"website"`
	Phone       string    `json:"phone"`
	Images      []Image   `json:"images"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Owner struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	PhoneNumber string    `json:"phone_number"`
	Email       string    `json:"email"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Category struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Establishment struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Address       string    `json:"address"`
	Description   string    `json:"description"`
	OwnerID       uint      `json:"owner_id"`
	CategoryID    uint      `json:"category_id"`
	PhoneNumber   string    `json:"phone_number"`
	WazeURL       string    `json:"waze_url"`
	GoogleMapsURL string    `json:"google_maps_url"`
	Website       string    `json:"website"`
	Owner         *Owner    `json:"owner,omitempty"`
	Category      *Category `json:"category,omitempty"`
	Contacts      []Contact `json:"contacts"`
	Images        []Image   `json:"images"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type TourEvent struct {
	ID                  uint       `json:"id"`
	Type                string     `json:"type"`
	Name                string     `json:"name"`
	Description         string     `json:"description"`
	StartDate           string     `json:"start_date"`
	EndDate             string     `json:"end_date"`
	StartTime           string     `json:"start_time"`
	EndTime             string     `json:"end_time"`
	Location            string     `json:"location"`
	Price               *float64   `json:"price"`
	MaxCapacity         *int       `json:"max_capacity"`
	ActivityType        string     `json:"activity_type"`
	Organizer           string     `json:"organizer"`
	SpecialRequirements string     `json:"special_requirements"`
	EstimatedDuration   string     `json:"estimated_duration"`
	MeetingPoint        string     `json:"meeting_point"`
	WazeURL             string     `json:"waze_url"`
	GoogleMapsURL       string     `json:"google_maps_url"`
	Website             string     `json:"website"`
	Contacts            []Contact  `json:"contacts"`
	Images              []Image    `json:"images"`
	Documents           []Document `json:"documents"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// Service is shared by security and basic services.
type Service struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	PhoneNumber   string    `json:"phone_number"`
	Address       string    `json:"address"`
	Schedule      string    `json:"schedule"`
	WazeURL       string    `json:"waze_url"`
	GoogleMapsURL string    `json:"google_maps_url"`
	Website       string    `json:"website"`
	Contacts      []Contact `json:"contacts"`
	Images        []Image   `json:"images"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type RiskZone struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ArchaeologicalSite struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Images      []Image   `json:"images"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type TravelDestination struct {
	ID              uint      `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	BestTimeToVisit string    `json:"best_time_to_visit"`
	TravelTips      string    `json:"travel_tips"`
	Latitude        float64   `json:"latitude"`
	Longitude       float64   `json:"longitude"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type EducationalResource struct {
	ID              uint       `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Link            string     `json:"link"`
	Category        string     `json:"category"`
	PublicationDate string     `json:"publication_date"`
	Authors         []string   `json:"authors"`
	Documents       []Document `json:"documents"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type LegalInfo struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Website     string     `json:"website"`
	Documents   []Document `json:"documents"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type Multimedia struct {
	ID          uint      `json:"id"`
	File        string    `json:"file"`
	URL         string    `json:"url"`
	Name        string    `json:"name"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Notification struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	UserID    *uint     `json:"user_id"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Weather struct {
	ID          uint      `json:"id"`
	Datetime    time.Time `json:"datetime"`
	Temperature float64   `json:"temperature"`
	FeelsLike   float64   `json:"feels_like"`
	Humidity    int       `json:"humidity"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	WindSpeed   float64   `json:"wind_speed"`
	Rain        float64   `json:"rain"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
