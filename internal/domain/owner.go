package domain

import "fmt"

// OwnerType identifies the entity an image, document or contact belongs to.
type OwnerType string

const (
	OwnerAttraction          OwnerType = "attraction"
	OwnerTransport           OwnerType = "transport"
	OwnerEstablishment       OwnerType = "establishment"
	OwnerTourEvent           OwnerType = "tour_event"
	OwnerSecurityService     OwnerType = "security_service"
	OwnerBasicService        OwnerType = "basic_service"
	OwnerArchaeologicalSite  OwnerType = "archaeological_site"
	OwnerEducationalResource OwnerType = "educational_resource"
	OwnerLegalInfo           OwnerType = "info_legal_regulatoria"
)

var (
	imageOwners = []OwnerType{
		OwnerAttraction, OwnerTransport, OwnerEstablishment, OwnerTourEvent,
		OwnerSecurityService, OwnerBasicService, OwnerArchaeologicalSite,
	}
	documentOwners = []OwnerType{
		OwnerAttraction, OwnerTourEvent, OwnerEducationalResource, OwnerLegalInfo,
	}
	contactOwners = []OwnerType{
		OwnerAttraction, OwnerEstablishment, OwnerTourEvent, OwnerSecurityService, OwnerBasicService,
	}
)

func ParseOwnerType(s string) (OwnerType, error) {
	for _, t := range imageOwners {
		if string(t) == s {
			return t, nil
		}
	}
	for _, t := range documentOwners {
		if string(t) == s {
			return t, nil
		}
	}

	return "", fmt.Errorf("unknown entity type %q", s)
}

func (t OwnerType) OwnsImages() bool    { return contains(imageOwners, t) }
func (t OwnerType) OwnsDocuments() bool { return contains(documentOwners, t) }
func (t OwnerType) OwnsContacts() bool  { return contains(contactOwners, t) }

func contains(types []OwnerType, t OwnerType) bool {
	for _, x := range types {
		if x == t {
			return true
		}
	}
	return false
}
