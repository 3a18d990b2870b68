package initial

import (
	"fmt"
	"time"

	"HealthPredict/internal/config"
	assessmentEntity "HealthPredict/internal/modules/assessment/domain/entity"
	userEntity "HealthPredict/internal/modules/user/domain/entity"
	"HealthPredict/pkg/zlog"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitGorm 连接 MySQL 并自动建表
func InitGorm(conf *config.Config) (*gorm.DB, error) {
	mc := conf.MysqlConfig
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		mc.User, mc.Password, mc.Host, mc.Port, mc.DatabaseName)

	gormLogger := logger.New(
		zap.NewStdLog(zlog.L()),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	// 自动迁移，如果没有建表，会自动创建对应的表
	if err := db.AutoMigrate(
		&userEntity.UserInfo{},
		&assessmentEntity.AssessmentRecord{},
	); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}

	zlog.Info("mysql connected", zap.String("host", mc.Host), zap.String("database", mc.DatabaseName))
	return db, nil
}
