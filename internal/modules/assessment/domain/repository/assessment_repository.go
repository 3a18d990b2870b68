package repository

import (
	"context"

	"HealthPredict/internal/modules/assessment/domain/entity"
)

// AssessmentRepository 评估历史仓储
type AssessmentRepository interface {
	Create(ctx context.Context, record *entity.AssessmentRecord) error
	ExistsByUuid(ctx context.Context, uuid string) (bool, error)
	// ListByUser 按时间倒序返回最近 limit 条
	ListByUser(ctx context.Context, userUuid string, limit int) ([]entity.AssessmentRecord, error)
	// CountByUser 按疾病聚合评估次数与高风险次数
	CountByUser(ctx context.Context, userUuid string) ([]entity.RiskCount, error)
}
