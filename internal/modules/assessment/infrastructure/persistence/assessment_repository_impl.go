package persistence

import (
	"context"

	"HealthPredict/internal/modules/assessment/domain/entity"
	"HealthPredict/internal/modules/assessment/domain/repository"

	"gorm.io/gorm"
)

type assessmentRepositoryImpl struct {
	db *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) repository.AssessmentRepository {
	return &assessmentRepositoryImpl{db: db}
}

func (r *assessmentRepositoryImpl) Create(ctx context.Context, record *entity.AssessmentRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *assessmentRepositoryImpl) ExistsByUuid(ctx context.Context, uuid string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&entity.AssessmentRecord{}).Where("uuid = ?", uuid).Count(&n).Error
	return n > 0, err
}

func (r *assessmentRepositoryImpl) ListByUser(ctx context.Context, userUuid string, limit int) ([]entity.AssessmentRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	var records []entity.AssessmentRecord
	err := r.db.WithContext(ctx).
		Where("user_uuid = ?", userUuid).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&records).Error
	return records, err
}

func (r *assessmentRepositoryImpl) CountByUser(ctx context.Context, userUuid string) ([]entity.RiskCount, error) {
	var counts []entity.RiskCount
	err := r.db.WithContext(ctx).Model(&entity.AssessmentRecord{}).
		Select("disease, COUNT(*) AS total, SUM(CASE WHEN prediction = 1 THEN 1 ELSE 0 END) AS high_risk").
		Where("user_uuid = ?", userUuid).
		Group("disease").
		Order("disease").
		Scan(&counts).Error
	return counts, err
}
