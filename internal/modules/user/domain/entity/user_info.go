package entity

import "time"

// UserInfo 用户表
type UserInfo struct {
	Id        int64     `gorm:"column:id;primaryKey;comment:自增id"`
	Uuid      string    `gorm:"column:uuid;uniqueIndex;type:char(20);not null;comment:用户唯一id"`
	Username  string    `gorm:"column:username;uniqueIndex;type:varchar(50);not null;comment:用户名"`
	Email     string    `gorm:"column:email;uniqueIndex;type:varchar(255);not null;comment:邮箱"`
	Password  string    `gorm:"column:password;type:varchar(100);not null;comment:bcrypt 密码哈希"`
	CreatedAt time.Time `gorm:"column:created_at;not null;comment:创建时间"`
}

func (UserInfo) TableName() string {
	return "user_info"
}
