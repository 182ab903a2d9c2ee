package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type NotificationDAO struct {
	*Store[Notification]
}

func NewNotificationDAO(db *gorm.DB) *NotificationDAO {
	return &NotificationDAO{
		Store: NewStore[Notification](db).OrderBy("created_at desc, id desc"),
	}
}

func (d *NotificationDAO) MarkRead(ctx context.Context, id uint) (Notification, error) {
	result := d.db.WithContext(ctx).Model(&Notification{}).Where("id = ?", id).Update("read", true)
	if result.Error != nil {
		return Notification{}, result.Error
	}

	return d.FindByID(ctx, id)
}

// DeleteReadBefore purges read notifications last touched before cutoff.
func (d *NotificationDAO) DeleteReadBefore(ctx context.Context, cutoff time.Time, batchSize int) (int64, error) {
	return deleteInBatches(ctx, d.db, &Notification{}, batchSize, func(q *gorm.DB) *gorm.DB {
		return q.Where(map[string]any{"read": true}).Where("updated_at < ?", cutoff)
	})
}

type WeatherDAO struct {
	*Store[Weather]
}

func NewWeatherDAO(db *gorm.DB) *WeatherDAO {
	return &WeatherDAO{
		Store: NewStore[Weather](db).OrderBy("datetime"),
	}
}

// Upsert inserts each forecast row or refreshes the one with the same datetime.
func (d *WeatherDAO) Upsert(ctx context.Context, rows []Weather) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	result := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "datetime"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"temperature", "feels_like", "humidity", "description", "icon", "wind_speed", "rain", "updated_at",
		}),
	}).Create(&rows)
	if result.Error != nil {
		return 0, classify(result.Error)
	}

	return result.RowsAffected, nil
}
