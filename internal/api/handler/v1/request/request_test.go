package request

import (
	"testing"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sit-project/sit-api/internal/domain"
)

func fieldErrors(t *testing.T, err error) validation.Errors {
	t.Helper()
	require.Error(t, err)

	verrs, ok := err.(validation.Errors)
	require.True(t, ok, "expected validation.Errors, got %T", err)

	return verrs
}

func validRegister() RegisterRequest {
	return RegisterRequest{
		Username: "ana2024",
		Email:    "ana@example.com",
		Password: "una-clave-segura",
		Person: &PersonRequest{
			FirstName: "Ana",
			LastName:  "Mora",
			Cedula:    "5-0412-0987",
		},
	}
}

func TestRegisterRequest_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(r *RegisterRequest)
		field  string
	}{
		{name: "valid", modify: func(r *RegisterRequest) {}},
		{name: "short username", modify: func(r *RegisterRequest) { r.Username = "ab" }, field: "username"},
		{name: "username with symbols", modify: func(r *RegisterRequest) { r.Username = "ana_m" }, field: "username"},
		{name: "bad email", modify: func(r *RegisterRequest) { r.Email = "ana" }, field: "email"},
		{name: "short password", modify: func(r *RegisterRequest) { r.Password = "corta" }, field: "password"},
		{name: "missing person", modify: func(r *RegisterRequest) { r.Person = nil }, field: "person"},
		{name: "lowercase cedula", modify: func(r *RegisterRequest) { r.Person.Cedula = "abc-123456" }, field: "person"},
		{name: "short cedula", modify: func(r *RegisterRequest) { r.Person.Cedula = "1-234" }, field: "person"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRegister()
			tt.modify(&req)

			err := req.Validate()
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			assert.Contains(t, fieldErrors(t, err), tt.field)
		})
	}
}

func TestRegisterRequest_ToDomain(t *testing.T) {
	req := validRegister()
	user := req.ToDomain()

	assert.Equal(t, "ana2024", user.Username)
	require.NotNil(t, user.Person)
	assert.Equal(t, "5-0412-0987", user.Person.Cedula)
}

func TestLoginRequest(t *testing.T) {
	t.Run("username is accepted as identifier", func(t *testing.T) {
		req := LoginRequest{Username: "ana2024", Password: "x"}
		require.NoError(t, req.Validate())
		assert.Equal(t, "ana2024", req.Identifier())
	})

	t.Run("email wins over username", func(t *testing.T) {
		req := LoginRequest{Email: "ana@example.com", Username: "ana2024", Password: "x"}
		assert.Equal(t, "ana@example.com", req.Identifier())
	})

	t.Run("identifier required", func(t *testing.T) {
		req := LoginRequest{Password: "x"}
		assert.Contains(t, fieldErrors(t, req.Validate()), "email")
	})

	t.Run("password required", func(t *testing.T) {
		req := LoginRequest{Email: "ana@example.com"}
		assert.Contains(t, fieldErrors(t, req.Validate()), "password")
	})
}

func TestResetPasswordRequest_Validate(t *testing.T) {
	req := ResetPasswordRequest{Password: "nueva-clave-1", ConfirmPassword: "nueva-clave-2"}
	assert.Contains(t, fieldErrors(t, req.Validate()), "confirm_password")

	req.ConfirmPassword = req.Password
	assert.NoError(t, req.Validate())

	req = ResetPasswordRequest{Password: "corta", ConfirmPassword: "corta"}
	assert.Contains(t, fieldErrors(t, req.Validate()), "password")
}

func TestUpdateUserRequest(t *testing.T) {
	empty := ""
	req := UpdateUserRequest{Username: &empty}
	assert.Contains(t, fieldErrors(t, req.Validate()), "username")

	email := "nuevo@example.com"
	req = UpdateUserRequest{Email: &email}
	require.NoError(t, req.Validate())

	update := req.ToDomain()
	assert.Equal(t, &email, update.Email)
	assert.Nil(t, update.Username)
	assert.Nil(t, update.Person)
}

func TestAttractionRequest_Validate(t *testing.T) {
	valid := func() AttractionRequest {
		return AttractionRequest{
			Name:        "Volcán Rincón de la Vieja",
			Description: "Parque nacional con fumarolas y senderos",
			Type:        "Parque Nacional",
			Website:     "https://www.sinac.go.cr",
			Status:      "Abierto",
			Location:    "Liberia, Guanacaste",
			Contacts: []ContactInput{
				{ContactType: domain.ContactPhone, ContactValue: "+506 2661-8139"},
				{ContactType: domain.ContactEmail, ContactValue: "info@sinac.go.cr"},
			},
		}
	}

	tests := []struct {
		name   string
		modify func(r *AttractionRequest)
		field  string
	}{
		{name: "valid", modify: func(r *AttractionRequest) {}},
		{name: "missing name", modify: func(r *AttractionRequest) { r.Name = "" }, field: "name"},
		{name: "bad website", modify: func(r *AttractionRequest) { r.Website = "no es url" }, field: "website"},
		{name: "status with digits", modify: func(r *AttractionRequest) { r.Status = "Abierto 24h" }, field: "status"},
		{name: "bad contact email", modify: func(r *AttractionRequest) { r.Contacts[1].ContactValue = "sinac" }, field: "contacts"},
		{name: "unknown contact type", modify: func(r *AttractionRequest) { r.Contacts[0].ContactType = "fax" }, field: "contacts"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.modify(&req)

			err := req.Validate()
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			assert.Contains(t, fieldErrors(t, err), tt.field)
		})
	}
}

func TestAttractionRequest_ToDomainKeepsNilContacts(t *testing.T) {
	req := AttractionRequest{Name: "Playa Hermosa"}
	assert.Nil(t, req.ToDomain().Contacts)
}

func TestTransportRequest_Validate(t *testing.T) {
	req := TransportRequest{
		Title:       "Bus Liberia - Playa Hermosa",
		Description: "Salidas cada hora",
		Type:        domain.TransportPublic,
		Phone:       "2666-0000",
	}
	require.NoError(t, req.Validate())

	req.Type = "Avión"
	assert.Contains(t, fieldErrors(t, req.Validate()), "type")
}

func TestTourEventRequest_Validate(t *testing.T) {
	price := 25.0
	capacity := 20
	valid := func() TourEventRequest {
		return TourEventRequest{
			Type:        "Tour",
			Name:        "Caminata nocturna",
			StartDate:   "2026-11-20",
			EndDate:     "2026-11-21",
			StartTime:   "18:30",
			Location:    "Monteverde",
			Price:       &price,
			MaxCapacity: &capacity,
		}
	}

	tests := []struct {
		name   string
		modify func(r *TourEventRequest)
		field  string
	}{
		{name: "valid", modify: func(r *TourEventRequest) {}},
		{name: "bad date", modify: func(r *TourEventRequest) { r.StartDate = "20/11/2026" }, field: "start_date"},
		{name: "end before start", modify: func(r *TourEventRequest) { r.EndDate = "2026-11-19" }, field: "end_date"},
		{name: "bad time", modify: func(r *TourEventRequest) { r.StartTime = "6pm" }, field: "start_time"},
		{name: "negative price", modify: func(r *TourEventRequest) { p := -1.0; r.Price = &p }, field: "price"},
		{name: "zero capacity", modify: func(r *TourEventRequest) { c := 0; r.MaxCapacity = &c }, field: "max_capacity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.modify(&req)

			err := req.Validate()
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			assert.Contains(t, fieldErrors(t, err), tt.field)
		})
	}
}

func TestCoordinates(t *testing.T) {
	req := RiskZoneRequest{Title: "Río crecido", Description: "Evitar en temporada lluviosa", Latitude: 10.5, Longitude: -85.2}
	require.NoError(t, req.Validate())

	req.Latitude = 91
	assert.Contains(t, fieldErrors(t, req.Validate()), "latitude")

	site := ArchaeologicalSiteRequest{Name: "Guayabo", Description: "Monumento nacional", Latitude: 9.97, Longitude: -181}
	assert.Contains(t, fieldErrors(t, site.Validate()), "longitude")
}

func TestEducationalResourceRequest_Validate(t *testing.T) {
	req := EducationalResourceRequest{
		Title:           "Guía de aves",
		Description:     "Aves del Pacífico Norte",
		Link:            "https://example.com/aves.pdf",
		Category:        "Naturaleza",
		PublicationDate: "2024-03-01",
		Authors:         []string{"L. Vargas"},
	}
	require.NoError(t, req.Validate())

	req.Authors = []string{"L. Vargas", ""}
	assert.Contains(t, fieldErrors(t, req.Validate()), "authors")

	req.Authors = nil
	assert.Contains(t, fieldErrors(t, req.Validate()), "authors")
}

func TestAddContactsRequest_Validate(t *testing.T) {
	req := AddContactsRequest{
		EntityType: string(domain.OwnerEstablishment),
		EntityID:   3,
		Contacts:   []ContactInput{{ContactType: domain.ContactPhone, ContactValue: "8888-1234"}},
	}
	require.NoError(t, req.Validate())
	assert.Equal(t, domain.OwnerEstablishment, req.Owner())

	req.EntityType = string(domain.OwnerTransport)
	assert.Contains(t, fieldErrors(t, req.Validate()), "entity_type")
}

func TestNotificationRequest_Validate(t *testing.T) {
	req := NotificationRequest{Title: "Cierre temporal", Message: "El sendero cierra el lunes"}
	require.NoError(t, req.Validate())

	req.Message = ""
	assert.Contains(t, fieldErrors(t, req.Validate()), "message")
}
