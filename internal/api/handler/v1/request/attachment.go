package request

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/sit-project/sit-api/internal/domain"
)

var errUnknownEntityType = errors.New("unknown entity type")

type RemoveImagesRequest struct {
	ImageIDs []uint `json:"image_ids"`
}

func (req *RemoveImagesRequest) Validate() error {
	return validation.ValidateStruct(req,
		validation.Field(&req.ImageIDs, validation.Required),
	)
}

// AddContactsRequest attaches contacts to an existing owner.
type AddContactsRequest struct {
	EntityType string         `json:"entity_type"`
	EntityID   uint           `json:"entity_id"`
	Contacts   []ContactInput `json:"contacts"`
}

func (req *AddContactsRequest) Validate() error {
	return validation.ValidateStruct(req,
		validation.Field(&req.EntityType, validation.Required, validation.By(contactOwner)),
		validation.Field(&req.EntityID, validation.Required),
		validation.Field(&req.Contacts, validation.Required),
	)
}

func (req *AddContactsRequest) Owner() domain.OwnerType {
	return domain.OwnerType(req.EntityType)
}

func (req *AddContactsRequest) ToDomain() []domain.Contact {
	return contactsToDomain(req.Contacts)
}

func contactOwner(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if !domain.OwnerType(s).OwnsContacts() {
		return errUnknownEntityType
	}
	return nil
}

// ContactRequest updates a single contact row.
type ContactRequest struct {
	EntityType   string `json:"entity_type"`
	EntityID     uint   `json:"entity_id"`
	ContactType  string `json:"contact_type"`
	ContactValue string `json:"contact_value"`
}

func (req *ContactRequest) Validate() error {
	err := validation.ValidateStruct(req,
		validation.Field(&req.EntityType, validation.Required, validation.By(contactOwner)),
		validation.Field(&req.EntityID, validation.Required),
	)
	if err != nil {
		return err
	}

	return ContactInput{ContactType: req.ContactType, ContactValue: req.ContactValue}.Validate()
}

func (req *ContactRequest) ToDomain() domain.Contact {
	return domain.Contact{
		EntityType:   domain.OwnerType(req.EntityType),
		EntityID:     req.EntityID,
		ContactType:  req.ContactType,
		ContactValue: req.ContactValue,
	}
}

type DocumentUpdateRequest struct {
	Filename string `json:"filename"`
}

func (req *DocumentUpdateRequest) Validate() error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Filename, validation.Required, validation.Length(1, 255)),
	)
}

type NotificationRequest struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	UserID  *uint  `json:"user_id"`
}

func (req *NotificationRequest) Validate() error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.Message, validation.Required, validation.Length(1, 1000)),
	)
}

func (req *NotificationRequest) ToDomain() domain.Notification {
	return domain.Notification{
		Title:   req.Title,
		Message: req.Message,
		UserID:  req.UserID,
	}
}

// MultimediaRequest is bound from a multipart form on create and from JSON on update.
type MultimediaRequest struct {
	Name        string `json:"name" form:"name"`
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
	Type        string `json:"type" form:"type"`
}

func (req *MultimediaRequest) Validate() error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Name, validation.Length(0, 255)),
		validation.Field(&req.Title, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.Description, validation.Length(0, 500)),
		validation.Field(&req.Type, validation.Required, validation.Length(1, 50)),
	)
}

func (req *MultimediaRequest) ToDomain() domain.Multimedia {
	return domain.Multimedia{
		Name:        req.Name,
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
	}
}
