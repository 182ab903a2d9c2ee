package repository

import (
	"gorm.io/gorm"

	"github.com/sit-project/sit-api/internal/domain"
	"github.com/sit-project/sit-api/internal/repository/dao"
)

type (
	AttractionRepository          = Resource[domain.Attraction, dao.Attraction]
	AccessibilityRepository       = Resource[domain.Accessibility, dao.Accessibility]
	TransportRepository           = Resource[domain.Transport, dao.Transport]
	OwnerRepository               = Resource[domain.Owner, dao.Owner]
	CategoryRepository            = Resource[domain.Category, dao.Category]
	EstablishmentRepository       = Resource[domain.Establishment, dao.Establishment]
	TourEventRepository           = Resource[domain.TourEvent, dao.TourEvent]
	SecurityServiceRepository     = Resource[domain.Service, dao.SecurityService]
	BasicServiceRepository        = Resource[domain.Service, dao.BasicService]
	RiskZoneRepository            = Resource[domain.RiskZone, dao.RiskZone]
	ArchaeologicalSiteRepository  = Resource[domain.ArchaeologicalSite, dao.ArchaeologicalSite]
	TravelDestinationRepository   = Resource[domain.TravelDestination, dao.TravelDestination]
	EducationalResourceRepository = Resource[domain.EducationalResource, dao.EducationalResource]
	LegalInfoRepository           = Resource[domain.LegalInfo, dao.LegalInfo]
	MultimediaRepository          = Resource[domain.Multimedia, dao.Multimedia]
)

func NewAttractionRepository(db *gorm.DB) *AttractionRepository {
	store := dao.NewStore[dao.Attraction](db, "Contacts", "Images", "Documents")
	return newResource(store, mapper[domain.Attraction, dao.Attraction]{
		toDAO: func(a domain.Attraction) dao.Attraction {
			return dao.Attraction{
				Name:         a.Name,
				Description:  a.Description,
				Type:         a.Type,
				Website:      a.Website,
				Status:       a.Status,
				Location:     a.Location,
				OpeningHours: a.OpeningHours,
				Contacts:     contactsToDAO(a.Contacts),
				Images:       imagesToDAO(a.Images),
			}
		},
		toDomain: func(a dao.Attraction) domain.Attraction {
			return domain.Attraction{
				ID:           a.ID,
				Name:         a.Name,
				Description:  a.Description,
				Type:         a.Type,
				Website:      a.Website,
				Status:       a.Status,
				Location:     a.Location,
				OpeningHours: a.OpeningHours,
				Contacts:     contactsToDomain(a.Contacts),
				Images:       imagesToDomain(a.Images),
				Documents:    documentsToDomain(a.Documents),
				CreatedAt:    a.CreatedAt,
				UpdatedAt:    a.UpdatedAt,
			}
		},
		replace: func(a domain.Attraction) dao.Replace {
			return replaceImagesAndContacts(a.Images, a.Contacts)
		},
	})
}

func NewAccessibilityRepository(db *gorm.DB) *AccessibilityRepository {
	return newResource(dao.NewStore[dao.Accessibility](db), mapper[domain.Accessibility, dao.Accessibility]{
		toDAO: func(a domain.Accessibility) dao.Accessibility {
			return dao.Accessibility{
				AttractionID:         a.AttractionID,
				RampAccess:           a.RampAccess,
				ElevatorAccess:       a.ElevatorAccess,
				WideDoors:            a.WideDoors,
				BrailleSignage:       a.BrailleSignage,
				AccessibleBathrooms:  a.AccessibleBathrooms,
				ReservedParking:      a.ReservedParking,
				TrainedStaff:         a.TrainedStaff,
				AudioGuides:          a.AudioGuides,
				SignLanguageServices: a.SignLanguageServices,
				AccessibleRestAreas:  a.AccessibleRestAreas,
				OnlineAccessibility:  a.OnlineAccessibility,
				OtherServices:        a.OtherServices,
			}
		},
		toDomain: func(a dao.Accessibility) domain.Accessibility {
			return domain.Accessibility{
				ID:                   a.ID,
				AttractionID:         a.AttractionID,
				RampAccess:           a.RampAccess,
				ElevatorAccess:       a.ElevatorAccess,
				WideDoors:            a.WideDoors,
				BrailleSignage:       a.BrailleSignage,
				AccessibleBathrooms:  a.AccessibleBathrooms,
				ReservedParking:      a.ReservedParking,
				TrainedStaff:         a.TrainedStaff,
				AudioGuides:          a.AudioGuides,
				SignLanguageServices: a.SignLanguageServices,
				AccessibleRestAreas:  a.AccessibleRestAreas,
				OnlineAccessibility:  a.OnlineAccessibility,
				OtherServices:        a.OtherServices,
				CreatedAt:            a.CreatedAt,
				UpdatedAt:            a.UpdatedAt,
			}
		},
	})
}

func NewTransportRepository(db *gorm.DB) *TransportRepository {
	return newResource(dao.NewStore[dao.Transport](db, "Images"), mapper[domain.Transport, dao.Transport]{
		toDAO: func(t domain.Transport) dao.Transport {
			return dao.Transport{
				Title:       t.Title,
				Description: t.Description,
				Type:        t.Type,
				Website:     t.Website,
				Phone:       t.Phone,
				Images:      imagesToDAO(t.Images),
			}
		},
		toDomain: func(t dao.Transport) domain.Transport {
			return domain.Transport{
				ID:          t.ID,
				Title:       t.Title,
				Description: t.Description,
				Type:        t.Type,
				Website:     t.Website,
				Phone:       t.Phone,
				Images:      imagesToDomain(t.Images),
				CreatedAt:   t.CreatedAt,
				UpdatedAt:   t.UpdatedAt,
			}
		},
		replace: func(t domain.Transport) dao.Replace {
			return replaceImagesAndContacts(t.Images, nil)
		},
	})
}

func NewOwnerRepository(db *gorm.DB) *OwnerRepository {
	return newResource(dao.NewStore[dao.Owner](db), mapper[domain.Owner, dao.Owner]{
		toDAO: func(o domain.Owner) dao.Owner {
			return dao.Owner{
				Name:        o.Name,
				PhoneNumber: o.PhoneNumber,
				Email:       o.Email,
			}
		},
		toDomain: ownerToDomain,
	})
}

func ownerToDomain(o dao.Owner) domain.Owner {
	return domain.Owner{
		ID:          o.ID,
		Name:        o.Name,
		PhoneNumber: o.PhoneNumber,
		Email:       o.Email,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return newResource(dao.NewStore[dao.Category](db), mapper[domain.Category, dao.Category]{
		toDAO: func(c domain.Category) dao.Category {
			return dao.Category{Name: c.Name}
		},
		toDomain: categoryToDomain,
	})
}

func categoryToDomain(c dao.Category) domain.Category {
	return domain.Category{
		ID:        c.ID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func NewEstablishmentRepository(db *gorm.DB) *EstablishmentRepository {
	store := dao.NewStore[dao.Establishment](db, "Owner", "Category", "Contacts", "Images")
	return newResource(store, mapper[domain.Establishment, dao.Establishment]{
		toDAO: func(e domain.Establishment) dao.Establishment {
			return dao.Establishment{
				Name:          e.Name,
				Address:       e.Address,
				Description:   e.Description,
				OwnerID:       e.OwnerID,
				CategoryID:    e.CategoryID,
				PhoneNumber:   e.PhoneNumber,
				WazeURL:       e.WazeURL,
				GoogleMapsURL: e.GoogleMapsURL,
				Website:       e.Website,
				Contacts:      contactsToDAO(e.Contacts),
				Images:        imagesToDAO(e.Images),
			}
		},
		toDomain: func(e dao.Establishment) domain.Establishment {
			out := domain.Establishment{
				ID:            e.ID,
				Name:          e.Name,
				Address:       e.Address,
				Description:   e.Description,
				OwnerID:       e.OwnerID,
				CategoryID:    e.CategoryID,
				PhoneNumber:   e.PhoneNumber,
				WazeURL:       e.WazeURL,
				GoogleMapsURL: e.GoogleMapsURL,
				Website:       e.Website,
				Contacts:      contactsToDomain(e.Contacts),
				Images:        imagesToDomain(e.Images),
				CreatedAt:     e.CreatedAt,
				UpdatedAt:     e.UpdatedAt,
			}
			if e.Owner != nil {
				owner := ownerToDomain(*e.Owner)
				out.Owner = &owner
			}
			if e.Category != nil {
				category := categoryToDomain(*e.Category)
				out.Category = &category
			}
			return out
		},
		replace: func(e domain.Establishment) dao.Replace {
			return replaceImagesAndContacts(e.Images, e.Contacts)
		},
	})
}

func NewTourEventRepository(db *gorm.DB) *TourEventRepository {
	store := dao.NewStore[dao.TourEvent](db, "Contacts", "Images", "Documents")
	return newResource(store, mapper[domain.TourEvent, dao.TourEvent]{
		toDAO: func(t domain.TourEvent) dao.TourEvent {
			return dao.TourEvent{
				Type:                t.Type,
				Name:                t.Name,
				Description:         t.Description,
				StartDate:           t.StartDate,
				EndDate:             t.EndDate,
				StartTime:           t.StartTime,
				EndTime:             t.EndTime,
				Location:            t.Location,
				Price:               t.Price,
				MaxCapacity:         t.MaxCapacity,
				ActivityType:        t.ActivityType,
				Organizer:           t.Organizer,
				SpecialRequirements: t.SpecialRequirements,
				EstimatedDuration:   t.EstimatedDuration,
				MeetingPoint:        t.MeetingPoint,
				WazeURL:             t.WazeURL,
				GoogleMapsURL:       t.GoogleMapsURL,
				Website:             t.Website,
				Contacts:            contactsToDAO(t.Contacts),
				Images:              imagesToDAO(t.Images),
			}
		},
		toDomain: func(t dao.TourEvent) domain.TourEvent {
			return domain.TourEvent{
				ID:                  t.ID,
				Type:                t.Type,
				Name:                t.Name,
				Description:         t.Description,
				StartDate:           t.StartDate,
				EndDate:             t.EndDate,
				StartTime:           t.StartTime,
				EndTime:             t.EndTime,
				Location:            t.Location,
				Price:               t.Price,
				MaxCapacity:         t.MaxCapacity,
				ActivityType:        t.ActivityType,
				Organizer:           t.Organizer,
				SpecialRequirements: t.SpecialRequirements,
				EstimatedDuration:   t.EstimatedDuration,
				MeetingPoint:        t.MeetingPoint,
				WazeURL:             t.WazeURL,
				GoogleMapsURL:       t.GoogleMapsURL,
				Website:             t.Website,
				Contacts:            contactsToDomain(t.Contacts),
				Images:              imagesToDomain(t.Images),
				Documents:           documentsToDomain(t.Documents),
				CreatedAt:           t.CreatedAt,
				UpdatedAt:           t.UpdatedAt,
			}
		},
		replace: func(t domain.TourEvent) dao.Replace {
			return replaceImagesAndContacts(t.Images, t.Contacts)
		},
	})
}

func serviceFieldsToDAO(s domain.Service) dao.ServiceFields {
	return dao.ServiceFields{
		Name:          s.Name,
		Description:   s.Description,
		PhoneNumber:   s.PhoneNumber,
		Address:       s.Address,
		Schedule:      s.Schedule,
		WazeURL:       s.WazeURL,
		GoogleMapsURL: s.GoogleMapsURL,
		Website:       s.Website,
	}
}

func serviceToDomain(base dao.Base, f dao.ServiceFields, contacts []dao.Contact, images []dao.Image) domain.Service {
	return domain.Service{
		ID:            base.ID,
		Name:          f.Name,
		Description:   f.Description,
		PhoneNumber:   f.PhoneNumber,
		Address:       f.Address,
		Schedule:      f.Schedule,
		WazeURL:       f.WazeURL,
		GoogleMapsURL: f.GoogleMapsURL,
		Website:       f.Website,
		Contacts:      contactsToDomain(contacts),
		Images:        imagesToDomain(images),
		CreatedAt:     base.CreatedAt,
		UpdatedAt:     base.UpdatedAt,
	}
}

func NewSecurityServiceRepository(db *gorm.DB) *SecurityServiceRepository {
	store := dao.NewStore[dao.SecurityService](db, "Contacts", "Images")
	return newResource(store, mapper[domain.Service, dao.SecurityService]{
		toDAO: func(s domain.Service) dao.SecurityService {
			return dao.SecurityService{
				ServiceFields: serviceFieldsToDAO(s),
				Contacts:      contactsToDAO(s.Contacts),
				Images:        imagesToDAO(s.Images),
			}
		},
		toDomain: func(s dao.SecurityService) domain.Service {
			return serviceToDomain(s.Base, s.ServiceFields, s.Contacts, s.Images)
		},
		replace: func(s domain.Service) dao.Replace {
			return replaceImagesAndContacts(s.Images, s.Contacts)
		},
	})
}

func NewBasicServiceRepository(db *gorm.DB) *BasicServiceRepository {
	store := dao.NewStore[dao.BasicService](db, "Contacts", "Images")
	return newResource(store, mapper[domain.Service, dao.BasicService]{
		toDAO: func(s domain.Service) dao.BasicService {
			return dao.BasicService{
				ServiceFields: serviceFieldsToDAO(s),
				Contacts:      contactsToDAO(s.Contacts),
				Images:        imagesToDAO(s.Images),
			}
		},
		toDomain: func(s dao.BasicService) domain.Service {
			return serviceToDomain(s.Base, s.ServiceFields, s.Contacts, s.Images)
		},
		replace: func(s domain.Service) dao.Replace {
			return replaceImagesAndContacts(s.Images, s.Contacts)
		},
	})
}

func NewRiskZoneRepository(db *gorm.DB) *RiskZoneRepository {
	return newResource(dao.NewStore[dao.RiskZone](db), mapper[domain.RiskZone, dao.RiskZone]{
		toDAO: func(z domain.RiskZone) dao.RiskZone {
			return dao.RiskZone{
				Title:       z.Title,
				Description: z.Description,
				Latitude:    z.Latitude,
				Longitude:   z.Longitude,
			}
		},
		toDomain: func(z dao.RiskZone) domain.RiskZone {
			return domain.RiskZone{
				ID:          z.ID,
				Title:       z.Title,
				Description: z.Description,
				Latitude:    z.Latitude,
				Longitude:   z.Longitude,
				CreatedAt:   z.CreatedAt,
				UpdatedAt:   z.UpdatedAt,
			}
		},
	})
}

func NewArchaeologicalSiteRepository(db *gorm.DB) *ArchaeologicalSiteRepository {
	store := dao.NewStore[dao.ArchaeologicalSite](db, "Images")
	return newResource(store, mapper[domain.ArchaeologicalSite, dao.ArchaeologicalSite]{
		toDAO: func(s domain.ArchaeologicalSite) dao.ArchaeologicalSite {
			return dao.ArchaeologicalSite{
				Name:        s.Name,
				Description: s.Description,
				Latitude:    s.Latitude,
				Longitude:   s.Longitude,
				Images:      imagesToDAO(s.Images),
			}
		},
		toDomain: func(s dao.ArchaeologicalSite) domain.ArchaeologicalSite {
			return domain.ArchaeologicalSite{
				ID:          s.ID,
				Name:        s.Name,
				Description: s.Description,
				Latitude:    s.Latitude,
				Longitude:   s.Longitude,
				Images:      imagesToDomain(s.Images),
				CreatedAt:   s.CreatedAt,
				UpdatedAt:   s.UpdatedAt,
			}
		},
		replace: func(s domain.ArchaeologicalSite) dao.Replace {
			return replaceImagesAndContacts(s.Images, nil)
		},
	})
}

func NewTravelDestinationRepository(db *gorm.DB) *TravelDestinationRepository {
	return newResource(dao.NewStore[dao.TravelDestination](db), mapper[domain.TravelDestination, dao.TravelDestination]{
		toDAO: func(t domain.TravelDestination) dao.TravelDestination {
			return dao.TravelDestination{
				Title:           t.Title,
				Description:     t.Description,
				BestTimeToVisit: t.BestTimeToVisit,
				TravelTips:      t.TravelTips,
				Latitude:        t.Latitude,
				Longitude:       t.Longitude,
			}
		},
		toDomain: func(t dao.TravelDestination) domain.TravelDestination {
			return domain.TravelDestination{
				ID:              t.ID,
				Title:           t.Title,
				Description:     t.Description,
				BestTimeToVisit: t.BestTimeToVisit,
				TravelTips:      t.TravelTips,
				Latitude:        t.Latitude,
				Longitude:       t.Longitude,
				CreatedAt:       t.CreatedAt,
				UpdatedAt:       t.UpdatedAt,
			}
		},
	})
}

func NewEducationalResourceRepository(db *gorm.DB) *EducationalResourceRepository {
	store := dao.NewStore[dao.EducationalResource](db, "Documents")
	return newResource(store, mapper[domain.EducationalResource, dao.EducationalResource]{
		toDAO: func(e domain.EducationalResource) dao.EducationalResource {
			return dao.EducationalResource{
				Title:           e.Title,
				Description:     e.Description,
				Link:            e.Link,
				Category:        e.Category,
				PublicationDate: e.PublicationDate,
				Authors:         e.Authors,
			}
		},
		toDomain: func(e dao.EducationalResource) domain.EducationalResource {
			return domain.EducationalResource{
				ID:              e.ID,
				Title:           e.Title,
				Description:     e.Description,
				Link:            e.Link,
				Category:        e.Category,
				PublicationDate: e.PublicationDate,
				Authors:         e.Authors,
				Documents:       documentsToDomain(e.Documents),
				CreatedAt:       e.CreatedAt,
				UpdatedAt:       e.UpdatedAt,
			}
		},
	})
}

func NewLegalInfoRepository(db *gorm.DB) *LegalInfoRepository {
	store := dao.NewStore[dao.LegalInfo](db, "Documents")
	return newResource(store, mapper[domain.LegalInfo, dao.LegalInfo]{
		toDAO: func(l domain.LegalInfo) dao.LegalInfo {
			return dao.LegalInfo{
				Title:       l.Title,
				Description: l.Description,
				Website:     l.Website,
			}
		},
		toDomain: func(l dao.LegalInfo) domain.LegalInfo {
			return domain.LegalInfo{
				ID:          l.ID,
				Title:       l.Title,
				Description: l.Description,
				Website:     l.Website,
				Documents:   documentsToDomain(l.Documents),
				CreatedAt:   l.CreatedAt,
				UpdatedAt:   l.UpdatedAt,
			}
		},
	})
}

func NewMultimediaRepository(db *gorm.DB) *MultimediaRepository {
	return newResource(dao.NewStore[dao.Multimedia](db), mapper[domain.Multimedia, dao.Multimedia]{
		toDAO: func(m domain.Multimedia) dao.Multimedia {
			return dao.Multimedia{
				File:        m.File,
				URL:         m.URL,
				Name:        m.Name,
				Title:       m.Title,
				Description: m.Description,
				Type:        m.Type,
			}
		},
		toDomain: func(m dao.Multimedia) domain.Multimedia {
			return domain.Multimedia{
				ID:          m.ID,
				File:        m.File,
				URL:         m.URL,
				Name:        m.Name,
				Title:       m.Title,
				Description: m.Description,
				Type:        m.Type,
				CreatedAt:   m.CreatedAt,
				UpdatedAt:   m.UpdatedAt,
			}
		},
	})
}
