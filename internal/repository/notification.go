package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/sit-project/sit-api/internal/domain"
	"github.com/sit-project/sit-api/internal/repository/dao"
)

type NotificationRepository struct {
	*Resource[domain.Notification, dao.Notification]
	dao *dao.NotificationDAO
}

func NewNotificationRepository(d *dao.NotificationDAO) *NotificationRepository {
	return &NotificationRepository{
		Resource: newResource(d.Store, mapper[domain.Notification, dao.Notification]{
			toDAO: func(n domain.Notification) dao.Notification {
				return dao.Notification{
					Title:   n.Title,
					Message: n.Message,
					UserID:  n.UserID,
					Read:    n.Read,
				}
			},
			toDomain: func(n dao.Notification) domain.Notification {
				return domain.Notification{
					ID:        n.ID,
					Title:     n.Title,
					Message:   n.Message,
					UserID:    n.UserID,
					Read:      n.Read,
					CreatedAt: n.CreatedAt,
					UpdatedAt: n.UpdatedAt,
				}
			},
		}),
		dao: d,
	}
}

func (r *NotificationRepository) FindByUser(ctx context.Context, userID uint) ([]domain.Notification, error) {
	return r.FindWhere(ctx, map[string]any{"user_id": userID})
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id uint) (domain.Notification, error) {
	updated, err := r.dao.MarkRead(ctx, id)
	if err != nil {
		return domain.Notification{}, fmt.Errorf("r.dao.MarkRead -> %w", err)
	}

	return r.m.toDomain(updated), nil
}

func (r *NotificationRepository) DeleteReadBefore(ctx context.Context, cutoff time.Time, batchSize int) (int64, error) {
	n, err := r.dao.DeleteReadBefore(ctx, cutoff, batchSize)
	if err != nil {
		return n, fmt.Errorf("r.dao.DeleteReadBefore -> %w", err)
	}

	return n, nil
}

type WeatherRepository struct {
	*Resource[domain.Weather, dao.Weather]
	dao *dao.WeatherDAO
}

func NewWeatherRepository(d *dao.WeatherDAO) *WeatherRepository {
	return &WeatherRepository{
		Resource: newResource(d.Store, mapper[domain.Weather, dao.Weather]{
			toDAO:    weatherToDAO,
			toDomain: weatherToDomain,
		}),
		dao: d,
	}
}

func (r *WeatherRepository) Upsert(ctx context.Context, rows []domain.Weather) (int64, error) {
	models := make([]dao.Weather, 0, len(rows))
	for _, w := range rows {
		models = append(models, weatherToDAO(w))
	}

	n, err := r.dao.Upsert(ctx, models)
	if err != nil {
		return 0, fmt.Errorf("r.dao.Upsert -> %w", err)
	}

	return n, nil
}

func weatherToDAO(w domain.Weather) dao.Weather {
	return dao.Weather{
		Datetime:    w.Datetime,
		Temperature: w.Temperature,
		FeelsLike:   w.FeelsLike,
		Humidity:    w.Humidity,
		Description: w.Description,
		Icon:        w.Icon,
		WindSpeed:   w.WindSpeed,
		Rain:        w.Rain,
	}
}

func weatherToDomain(w dao.Weather) domain.Weather {
	return domain.Weather{
		ID:          w.ID,
		Datetime:    w.Datetime,
		Temperature: w.Temperature,
		FeelsLike:   w.FeelsLike,
		Humidity:    w.Humidity,
		Description: w.Description,
		Icon:        w.Icon,
		WindSpeed:   w.WindSpeed,
		Rain:        w.Rain,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
}
