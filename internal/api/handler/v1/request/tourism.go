package request

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/sit-project/sit-api/internal/domain"
)

var (
	errBlankAuthor = errors.New("authors cannot be blank")
	errMinCapacity = errors.New("must be no less than 1")
)

type AttractionRequest struct {
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	Type         string         `json:"type_attraction"`
	Website      string         `json:"website"`
	Status       string         `json:"status"`
	Location     string         `json:"location"`
	OpeningHours string         `json:"opening_hours"`
	Contacts     []ContactInput `json:"contacts"`
}

func (req *AttractionRequest) Validate() error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.Description, validation.Required, validation.Length(1, 500)),
		validation.Field(&req.Type, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Website, is.URL),
		validation.Field(&req.Status, validation.Length(0, 50), validation.Match(statusPattern)),
		validation.Field(&req.Location, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.OpeningHours, validation.Length(0, 100)),
		validation.Field(&req.Contacts),
	)
}

func (req *AttractionRequest) ToDomain() domain.Attraction {
	return domain.Attraction{
		Name:         req.Name,
		Description:  req.Description,
		Type:         req.Type,
		Website:      req.Website,
		Status:       req.Status,
		Location:     req.Location,
		OpeningHours: req.OpeningHours,
		Contacts:     contactsToDomain(req.Contacts),
	}
}

type AccessibilityRequest struct {
	AttractionID         uint   `json:"attraction_id"`
	RampAccess           bool   `json:"ramp_access"`
	ElevatorAccess       bool   `json:"elevator_access"`
	WideDoors            bool   `json:"wide_doors"`
	BrailleSignage       bool   `json:"braille_signage"`
	AccessibleBathrooms  bool   `json:"accessible_bathrooms"`
	ReservedParking      bool   `json:"reserved_parking"`
	TrainedStaff         bool   `json:"trained_staff"`
	AudioGuides          bool   `json:"audio_guides"`
	SignLanguageServices bool   `json:"sign_language_services"`
	AccessibleRestAreas  bool   `json:"accessible_rest_areas"`
	OnlineAccessibility  bool   `json:"online_accessibility"`
	OtherServices        string `json:"other_services"`
}

func (req *AccessibilityRequest) Validate() error {
	return validation.ValidateStruct(req,
		validation.Field(&req.AttractionID, validation.Required),
		validation.Field(&req.OtherServices, validation.Length(0, 255)),
	)
}

func (req *AccessibilityRequest) ToDomain() domain.Accessibility {
	return domain.Accessibility{
		AttractionID:         req.AttractionID,
		RampAccess:           req.RampAccess,
		ElevatorAccess:       req.ElevatorAccess,
		WideDoors:            req.WideDoors,
		BrailleSignage:       req.BrailleSignage,
		AccessibleBathrooms:  req.AccessibleBathrooms,
		ReservedParking:      req.ReservedParking,
		TrainedStaff:         req.TrainedStaff,
		AudioGuides:          req.AudioGuides,
		SignLanguageServices: req.SignLanguageServices,
		AccessibleRestAreas:  req.AccessibleRestAreas,
		OnlineAccessibility:  req.OnlineAccessibility,
		OtherServices:        req.OtherServices,
	}
}

type TransportRequest struct {
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
	Type        string `json:"type" form:"type"`
	Website     string `json:"website" form:"website"`
	Phone       string `json:"phone" form:"phone"`
}

func (req *TransportRequest) Validate() error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.Description, validation.Required, validation.Length(1, 500)),
		validation.Field(&req.Type, validation.Required, validation.In(
			domain.TransportPublic, domain.TransportRental, domain.TransportBicycles, domain.TransportHowToGet,
		)),
		validation.Field(&req.Website, is.URL),
		validation.Field(&req.Phone, phoneRule),
	)
}

func (req *TransportRequest) ToDomain() domain.Transport {
	return domain.Transport{
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		Website:     req.Website,
		Phone:       req.Phone,
	}
}

type OwnerRequest struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
}

func (req *OwnerRequest) Validate() error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.PhoneNumber, validation.Required, phoneRule),
		validation.Field(&req.Email, validation.Required, is.Email),
	)
}

func (req *OwnerRequest) ToDomain() domain.Owner {
	return domain.Owner{
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
	}
}

type CategoryRequest struct {
	Name string `json:"name"`
}

func (req *CategoryRequest) Validate() error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
	)
}

func (req *CategoryRequest) ToDomain() domain.Category {
	return domain.Category{Name: req.Name}
}

type EstablishmentRequest struct {
	Name          string `json:"name" form:"name"`
	Address       string `json:"address" form:"address"`
	Description   string `json:"description" form:"description"`
	OwnerID       uint   `json:"owner_id" form:"owner_id"`
	CategoryID    uint   `json:"category_id" form:"category_id"`
	PhoneNumber   string `json:"phone_number" form:"phone_number"`
	WazeURL       string `json:"waze_url" form:"waze_url"`
	GoogleMapsURL string `json:"google_maps_url" form:"google_maps_url"`
	Website       string `json:"website" form:"website"`
}

func (req *EstablishmentRequest) Validate() error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.Address, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.Description, validation.Length(0, 1000)),
		validation.Field(&req.OwnerID, validation.Required),
		validation.Field(&req.CategoryID, validation.Required),
		validation.Field(&req.PhoneNumber, validation.Required, phoneRule),
		validation.Field(&req.WazeURL, is.URL),
		validation.Field(&req.GoogleMapsURL, is.URL),
		validation.Field(&req.Website, is.URL),
	)
}

func (req *EstablishmentRequest) ToDomain() domain.Establishment {
	return domain.Establishment{
		Name:          req.Name,
		Address:       req.Address,
		Description:   req.Description,
		OwnerID:       req.OwnerID,
		CategoryID:    req.CategoryID,
		PhoneNumber:   req.PhoneNumber,
		WazeURL:       req.WazeURL,
		GoogleMapsURL: req.GoogleMapsURL,
		Website:       req.Website,
	}
}

type TourEventRequest struct {
	Type                string   `json:"type" form:"type"`
	Name                string   `json:"name" form:"name"`
	Description         string   `json:"description" form:"description"`
	StartDate           string   `json:"start_date" form:"start_date"`
	EndDate             string   `json:"end_date" form:"end_date"`
	StartTime           string   `json:"start_time" form:"start_time"`
	EndTime             string   `json:"end_time" form:"end_time"`
	Location            string   `json:"location" form:"location"`
	Price               *float64 `json:"price" form:"price"`
	MaxCapacity         *int     `json:"max_capacity" form:"max_capacity"`
	ActivityType        string   `json:"activity_type" form:"activity_type"`
	Organizer           string   `json:"organizer" form:"organizer"`
	SpecialRequirements string   `json:"special_requirements" form:"special_requirements"`
	EstimatedDuration   string   `json:"estimated_duration" form:"estimated_duration"`
	MeetingPoint        string   `json:"meeting_point" form:"meeting_point"`
	WazeURL             string   `json:"waze_url" form:"waze_url"`
	GoogleMapsURL       string   `json:"google_maps_url" form:"google_maps_url"`
	Website             string   `json:"website" form:"website"`
}

func (req *TourEventRequest) Validate() error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Type, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.Description, validation.Length(0, 1000)),
		validation.Field(&req.StartDate, validation.Required, dateRule),
		validation.Field(&req.EndDate, dateRule, notBefore(req.StartDate)),
		validation.Field(&req.StartTime, validation.Required, timeRule),
		validation.Field(&req.EndTime, timeRule),
		validation.Field(&req.Location, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.Price, validation.Min(0.0)),
		validation.Field(&req.MaxCapacity, validation.By(atLeastOne)),
		validation.Field(&req.WazeURL, is.URL),
		validation.Field(&req.GoogleMapsURL, is.URL),
		validation.Field(&req.Website, is.URL),
	)
}

func (req *TourEventRequest) ToDomain() domain.TourEvent {
	return domain.TourEvent{
		Type:                req.Type,
		Name:                req.Name,
		Description:         req.Description,
		StartDate:           req.StartDate,
		EndDate:             req.EndDate,
		StartTime:           req.StartTime,
		EndTime:             req.EndTime,
		Location:            req.Location,
		Price:               req.Price,
		MaxCapacity:         req.MaxCapacity,
		ActivityType:        req.ActivityType,
		Organizer:           req.Organizer,
		SpecialRequirements: req.SpecialRequirements,
		EstimatedDuration:   req.EstimatedDuration,
		MeetingPoint:        req.MeetingPoint,
		WazeURL:             req.WazeURL,
		GoogleMapsURL:       req.GoogleMapsURL,
		Website:             req.Website,
	}
}

// atLeastOne rejects zero too, which Min skips as an empty value.
func atLeastOne(value interface{}) error {
	n, ok := value.(*int)
	if !ok || n == nil {
		return nil
	}
	if *n < 1 {
		return errMinCapacity
	}
	return nil
}

// ServiceRequest is used by both security and basic services.
type ServiceRequest struct {
	Name          string `json:"name" form:"name"`
	Description   string `json:"description" form:"description"`
	PhoneNumber   string `json:"phone_number" form:"phone_number"`
	Address       string `json:"address" form:"address"`
	Schedule      string `json:"schedule" form:"schedule"`
	WazeURL       string `json:"waze_url" form:"waze_url"`
	GoogleMapsURL string `json:"google_maps_url" form:"google_maps_url"`
	Website       string `json:"website" form:"website"`
}

func (req *ServiceRequest) Validate() error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.Description, validation.Required, validation.Length(1, 1000)),
		validation.Field(&req.PhoneNumber, validation.Required, phoneRule),
		validation.Field(&req.Address, validation.Length(0, 255)),
		validation.Field(&req.Schedule, validation.Length(0, 255)),
		validation.Field(&req.WazeURL, is.URL),
		validation.Field(&req.GoogleMapsURL, is.URL),
		validation.Field(&req.Website, is.URL),
	)
}

func (req *ServiceRequest) ToDomain() domain.Service {
	return domain.Service{
		Name:          req.Name,
		Description:   req.Description,
		PhoneNumber:   req.PhoneNumber,
		Address:       req.Address,
		Schedule:      req.Schedule,
		WazeURL:       req.WazeURL,
		GoogleMapsURL: req.GoogleMapsURL,
		Website:       req.Website,
	}
}

type RiskZoneRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

func (req *RiskZoneRequest) Validate() error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.Description, validation.Required),
		validation.Field(&req.Latitude, latitude()...),
		validation.Field(&req.Longitude, longitude()...),
	)
}

func (req *RiskZoneRequest) ToDomain() domain.RiskZone {
	return domain.RiskZone{
		Title:       req.Title,
		Description: req.Description,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	}
}

type ArchaeologicalSiteRequest struct {
	Name        string  `json:"name" form:"name"`
	Description string  `json:"description" form:"description"`
	Latitude    float64 `json:"latitude" form:"latitude"`
	Longitude   float64 `json:"longitude" form:"longitude"`
}

func (req *ArchaeologicalSiteRequest) Validate() error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.Description, validation.Required),
		validation.Field(&req.Latitude, latitude()...),
		validation.Field(&req.Longitude, longitude()...),
	)
}

func (req *ArchaeologicalSiteRequest) ToDomain() domain.ArchaeologicalSite {
	return domain.ArchaeologicalSite{
		Name:        req.Name,
		Description: req.Description,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	}
}

type TravelDestinationRequest struct {
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	BestTimeToVisit string  `json:"best_time_to_visit"`
	TravelTips      string  `json:"travel_tips"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
}

func (req *TravelDestinationRequest) Validate() error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.Description, validation.Required),
		validation.Field(&req.BestTimeToVisit, validation.Required),
		validation.Field(&req.TravelTips, validation.Required),
		validation.Field(&req.Latitude, latitude()...),
		validation.Field(&req.Longitude, longitude()...),
	)
}

func (req *TravelDestinationRequest) ToDomain() domain.TravelDestination {
	return domain.TravelDestination{
		Title:           req.Title,
		Description:     req.Description,
		BestTimeToVisit: req.BestTimeToVisit,
		TravelTips:      req.TravelTips,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
	}
}

type EducationalResourceRequest struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Link            string   `json:"link"`
	Category        string   `json:"category"`
	PublicationDate string   `json:"publication_date"`
	Authors         []string `json:"authors"`
}

func (req *EducationalResourceRequest) Validate() error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.Description, validation.Required),
		validation.Field(&req.Link, is.URL),
		validation.Field(&req.Category, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.PublicationDate, validation.Required, dateRule),
		validation.Field(&req.Authors, validation.Required, validation.By(noBlankAuthors)),
	)
}

func noBlankAuthors(value interface{}) error {
	authors, _ := value.([]string)
	for _, a := range authors {
		if a == "" {
			return errBlankAuthor
		}
	}
	return nil
}

func (req *EducationalResourceRequest) ToDomain() domain.EducationalResource {
	return domain.EducationalResource{
		Title:           req.Title,
		Description:     req.Description,
		Link:            req.Link,
		Category:        req.Category,
		PublicationDate: req.PublicationDate,
		Authors:         req.Authors,
	}
}

type LegalInfoRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Website     string `json:"website"`
}

func (req *LegalInfoRequest) Validate() error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.Description, validation.Required),
		validation.Field(&req.Website, is.URL),
	)
}

func (req *LegalInfoRequest) ToDomain() domain.LegalInfo {
	return domain.LegalInfo{
		Title:       req.Title,
		Description: req.Description,
		Website:     req.Website,
	}
}
