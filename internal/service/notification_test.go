package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sit-project/sit-api/internal/domain"
	"github.com/sit-project/sit-api/internal/pkg/notify"
	"github.com/sit-project/sit-api/internal/pkg/openweather"
	"github.com/sit-project/sit-api/internal/repository"
	"github.com/sit-project/sit-api/internal/repository/dao"
)

type broadcast struct {
	msgType string
	data    any
}

type fakeHub struct {
	sent []broadcast
	err  error
}

func (h *fakeHub) Broadcast(msgType string, data any) error {
	h.sent = append(h.sent, broadcast{msgType: msgType, data: data})
	return h.err
}

func TestNotificationService_CreateBroadcasts(t *testing.T) {
	gdb := newTestDB(t)
	hub := &fakeHub{}
	s := NewNotificationService(repository.NewNotificationRepository(dao.NewNotificationDAO(gdb)), hub)
	ctx := context.Background()

	created, err := s.Create(ctx, domain.Notification{Title: "Alerta", Message: "Cierre de ruta", Read: true})
	require.NoError(t, err)
	assert.False(t, created.Read)

	require.Len(t, hub.sent, 1)
	assert.Equal(t, notify.EventNewNotification, hub.sent[0].msgType)
	assert.Equal(t, created, hub.sent[0].data)

	hub.err = errors.New("queue full")
	_, err = s.Create(ctx, domain.Notification{Title: "Otra", Message: "Sin clientes"})
	assert.NoError(t, err)
}

func TestNotificationService_ListAndMarkRead(t *testing.T) {
	gdb := newTestDB(t)
	s := NewNotificationService(repository.NewNotificationRepository(dao.NewNotificationDAO(gdb)), &fakeHub{})
	ctx := context.Background()

	userID := uint(7)
	_, err := s.Create(ctx, domain.Notification{Title: "General", Message: "Para todos"})
	require.NoError(t, err)
	personal, err := s.Create(ctx, domain.Notification{Title: "Personal", Message: "Solo 7", UserID: &userID})
	require.NoError(t, err)

	all, err := s.ListForUser(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := s.ListForUser(ctx, &userID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, personal.ID, mine[0].ID)

	read, err := s.MarkRead(ctx, personal.ID)
	require.NoError(t, err)
	assert.True(t, read.Read)

	_, err = s.MarkRead(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCleanupService_Run(t *testing.T) {
	gdb := newTestDB(t)
	ctx := context.Background()

	users := repository.NewUserRepository(dao.NewUserDAO(gdb))
	tokens := repository.NewTokenRepository(dao.NewTokenDAO(gdb))
	notifications := repository.NewNotificationRepository(dao.NewNotificationDAO(gdb))

	user, err := users.Create(ctx, domain.User{Username: "ana", Email: "ana@example.com", Password: "x"})
	require.NoError(t, err)

	now := time.Now()
	require.NoError(t, tokens.SaveRefreshToken(ctx, domain.RefreshToken{Token: "old", UserID: user.ID, Expires: now.Add(-time.Hour)}))
	require.NoError(t, tokens.SaveRefreshToken(ctx, domain.RefreshToken{Token: "live", UserID: user.ID, Expires: now.Add(time.Hour)}))
	require.NoError(t, tokens.SaveResetToken(ctx, domain.PasswordResetToken{Token: "reset-old", UserID: user.ID, Expires: now.Add(-time.Minute)}))

	readOld, err := notifications.Create(ctx, domain.Notification{Title: "Vieja", Message: "leída"})
	require.NoError(t, err)
	_, err = notifications.MarkRead(ctx, readOld.ID)
	require.NoError(t, err)
	unread, err := notifications.Create(ctx, domain.Notification{Title: "Nueva", Message: "sin leer"})
	require.NoError(t, err)

	// Small batches force several delete rounds.
	s := NewCleanupService(tokens, notifications, 1, 24*time.Hour)
	s.now = func() time.Time { return now.Add(48 * time.Hour) }

	n, err := s.PurgeExpiredTokens(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	s.now = time.Now
	require.NoError(t, s.Run(ctx))

	_, err = tokens.FindRefreshToken(ctx, "live")
	assert.ErrorIs(t, err, repository.ErrTokenNotFound)

	left, err := notifications.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, left, 2)

	s.now = func() time.Time { return now.Add(48 * time.Hour) }
	n, err = s.PurgeReadNotifications(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	left, err = notifications.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, unread.ID, left[0].ID)
}

type fakeForecast struct {
	f   openweather.Forecast
	err error
}

func (c fakeForecast) Forecast(context.Context) (openweather.Forecast, error) {
	return c.f, c.err
}

func TestWeatherService_SyncUpserts(t *testing.T) {
	gdb := newTestDB(t)
	repo := repository.NewWeatherRepository(dao.NewWeatherDAO(gdb))
	ctx := context.Background()

	item := func(ts string, temp float64) openweather.ForecastItem {
		var it openweather.ForecastItem
		it.DtText = ts
		it.Main.Temp = temp
		return it
	}

	s := NewWeatherService(repo, fakeForecast{f: openweather.Forecast{List: []openweather.ForecastItem{
		item("2024-05-01 12:00:00", 30),
		item("2024-05-01 15:00:00", 31),
	}}})
	n, err := s.Sync(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	_, err = s.Ingest(ctx, openweather.Forecast{List: []openweather.ForecastItem{item("2024-05-01 12:00:00", 25)}})
	require.NoError(t, err)

	rows, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	var noon domain.Weather
	for _, r := range rows {
		if r.Datetime.Hour() == 12 {
			noon = r
		}
	}
	assert.Equal(t, 25.0, noon.Temperature)

	_, err = NewWeatherService(repo, nil).Sync(ctx)
	assert.ErrorIs(t, err, ErrWeatherDisabled)

	_, err = NewWeatherService(repo, fakeForecast{err: errors.New("breaker open")}).Sync(ctx)
	assert.Error(t, err)
}

func TestMultimediaService(t *testing.T) {
	gdb := newTestDB(t)
	files := &fakeFiles{failOn: "script.sh"}
	s := NewMultimediaService(repository.NewMultimediaRepository(gdb), files)
	ctx := context.Background()

	_, err := s.Create(ctx, domain.Multimedia{Title: "Sin archivo"}, nil)
	assert.ErrorIs(t, err, ErrNoFiles)

	_, err = s.Create(ctx, domain.Multimedia{Title: "Malo"}, uploads("script.sh")[0])
	assert.ErrorIs(t, err, ErrUnsupportedFile)

	created, err := s.Create(ctx, domain.Multimedia{Title: "Video del volcán", Type: "video"}, uploads("volcan.mp4")[0])
	require.NoError(t, err)
	assert.Equal(t, "volcan.mp4", created.Name)
	assert.NotEmpty(t, created.URL)

	updated, err := s.Update(ctx, created.ID, domain.Multimedia{Title: "Volcán Orosí", Name: "orosi", Type: "video"})
	require.NoError(t, err)
	assert.Equal(t, "Volcán Orosí", updated.Title)
	assert.Equal(t, created.File, updated.File)

	require.NoError(t, s.Delete(ctx, created.ID))
	assert.Equal(t, []string{created.File}, files.removed)

	assert.ErrorIs(t, s.Delete(ctx, created.ID), ErrNotFound)
}
