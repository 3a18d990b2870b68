package entity

import (
	"time"
)

// AssessmentRecord 评估历史表
type AssessmentRecord struct {
	Id          int64     `gorm:"column:id;primaryKey;comment:自增id"`
	Uuid        string    `gorm:"column:uuid;uniqueIndex;type:char(20);not null;comment:记录uuid"`
	UserUuid    string    `gorm:"column:user_uuid;index;type:char(20);not null;comment:用户uuid"`
	Disease     string    `gorm:"column:disease;index;type:varchar(32);not null;comment:疾病slug"`
	Prediction  int8      `gorm:"column:prediction;not null;default:0;comment:预测结果：0.低风险，1.高风险"`
	RiskStatus  string    `gorm:"column:risk_status;type:varchar(32);not null;comment:风险描述"`
	Probability *float64  `gorm:"column:probability;comment:置信度（可空）"`
	Parameters  string    `gorm:"column:parameters;type:text;comment:提交参数json"`
	CreatedAt   time.Time `gorm:"column:created_at;index;not null;comment:创建时间"`
}

func (AssessmentRecord) TableName() string {
	return "assessment_record"
}

// RiskCount 某疾病的评估次数统计
type RiskCount struct {
	Disease  string `gorm:"column:disease"`
	Total    int64  `gorm:"column:total"`
	HighRisk int64  `gorm:"column:high_risk"`
}
