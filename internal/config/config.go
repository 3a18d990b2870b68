package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"sync"

	"HealthPredict/pkg/constants"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const defaultConfigPath = "configs/config_local.toml"

type MainConfig struct {
	AppName      string   `toml:"appName"`
	Host         string   `toml:"host"`
	Port         int      `toml:"port"`
	EnableTLS    bool     `toml:"enableTLS"`
	CertFile     string   `toml:"certFile"`
	KeyFile      string   `toml:"keyFile"`
	AllowOrigins []string `toml:"allowOrigins"`
}

type MysqlConfig struct {
	Host         string `toml:"host"`
	Port         int    `toml:"port"`
	User         string `toml:"user"`
	Password     string `toml:"password"`
	DatabaseName string `toml:"databaseName"`
}

type LogConfig struct {
	LogPath string `toml:"logPath"`
	Level   string `toml:"level"`
}

type JwtConfig struct {
	Key          string `toml:"key"`
	ExpireHours  int    `toml:"expireHours"`
	Issuer       string `toml:"issuer"`
	CookieSecure bool   `toml:"cookieSecure"`
}

type KafkaConfig struct {
	Brokers         []string `toml:"brokers"`
	ClientID        string   `toml:"clientID"`
	AssessmentTopic string   `toml:"assessmentTopic"`
	ConsumerGroupID string   `toml:"consumerGroupID"`
	Partitions      int32    `toml:"partitions"`
	Replication     int16    `toml:"replication"`
}

// PredictorConfig 外部疾病预测服务
type PredictorConfig struct {
	BaseURL        string `toml:"baseURL"`
	TimeoutSeconds int    `toml:"timeoutSeconds"`
}

type AIChatModelConfig struct {
	Provider        string `toml:"provider"`
	APIKey          string `toml:"apiKey"`
	AccessKey       string `toml:"accessKey"`
	SecretKey       string `toml:"secretKey"`
	BaseURL         string `toml:"baseURL"`
	Region          string `toml:"region"`
	Model           string `toml:"model"`
	TimeoutSeconds  int    `toml:"timeoutSeconds"`
	RetryTimes      int    `toml:"retryTimes"`
	ByAzure         bool   `toml:"byAzure"`
	AzureAPIVersion string `toml:"azureApiVersion"`
}

type AIConfig struct {
	ChatModel       AIChatModelConfig `toml:"chatModel"`
	SummaryCacheTTL int               `toml:"summaryCacheTTL"`
}

type RedisConfig struct {
	Host         string `toml:"host"`
	Port         int    `toml:"port"`
	Password     string `toml:"password"`
	DB           int    `toml:"db"`
	PoolSize     int    `toml:"poolSize"`
	MinIdleConns int    `toml:"minIdleConns"`
}

type Config struct {
	MainConfig      `toml:"mainConfig"`
	MysqlConfig     `toml:"mysqlConfig"`
	JwtConfig       `toml:"jwtConfig"`
	KafkaConfig     `toml:"kafkaConfig"`
	PredictorConfig `toml:"predictorConfig"`
	AIConfig        `toml:"aiConfig"`
	LogConfig       `toml:"logConfig"`
	RedisConfig     `toml:"redisConfig"`
}

var (
	config *Config
	once   sync.Once
)

// Load 读取 .env 与 toml 文件，环境变量优先于文件配置
func Load(path string) (*Config, error) {
	// .env 不存在时忽略
	_ = godotenv.Load()

	c := new(Config)
	if path != "" {
		if _, err := toml.DecodeFile(path, c); err != nil {
			applyEnv(c)
			applyDefaults(c)
			return c, err
		}
	}
	applyEnv(c)
	applyDefaults(c)
	return c, nil
}

// GetConfig 全局配置单例
func GetConfig() *Config {
	once.Do(func() {
		path := strings.TrimSpace(os.Getenv("HEALTHPREDICT_CONFIG"))
		if path == "" {
			path = defaultConfigPath
		}
		c, err := Load(path)
		if err != nil {
			log.Printf("加载配置文件失败: %v, 使用默认设置", err)
		}
		config = c
	})
	return config
}

// SetConfig 替换全局配置（测试使用）
func SetConfig(c *Config) {
	once.Do(func() {})
	config = c
}

func applyEnv(c *Config) {
	setString(&c.AIConfig.ChatModel.Provider, "AI_PROVIDER")
	switch strings.ToLower(strings.TrimSpace(c.AIConfig.ChatModel.Provider)) {
	case "openai":
		setString(&c.AIConfig.ChatModel.APIKey, "OPENAI_API_KEY")
	case "ark":
		setString(&c.AIConfig.ChatModel.APIKey, "ARK_API_KEY")
	default:
		setString(&c.AIConfig.ChatModel.APIKey, "GEMINI_API_KEY")
	}
	setString(&c.PredictorConfig.BaseURL, "PREDICTOR_BASE_URL")
	setString(&c.JwtConfig.Key, "JWT_KEY")
	setString(&c.MysqlConfig.Host, "MYSQL_HOST")
	setString(&c.MysqlConfig.User, "MYSQL_USER")
	setString(&c.MysqlConfig.Password, "MYSQL_PASSWORD")
	setString(&c.MysqlConfig.DatabaseName, "MYSQL_DATABASE")
	setInt(&c.MysqlConfig.Port, "MYSQL_PORT")
	setString(&c.RedisConfig.Host, "REDIS_HOST")
	setInt(&c.RedisConfig.Port, "REDIS_PORT")
	setInt(&c.MainConfig.Port, "PORT")

	if v := strings.TrimSpace(os.Getenv("KAFKA_BROKERS")); v != "" {
		var brokers []string
		for _, b := range strings.Split(v, ",") {
			if b = strings.TrimSpace(b); b != "" {
				brokers = append(brokers, b)
			}
		}
		c.KafkaConfig.Brokers = brokers
	}
}

func applyDefaults(c *Config) {
	if c.MainConfig.AppName == "" {
		c.MainConfig.AppName = "HealthPredict"
	}
	if c.MainConfig.Host == "" {
		c.MainConfig.Host = "0.0.0.0"
	}
	if c.MainConfig.Port == 0 {
		c.MainConfig.Port = 8080
	}
	if len(c.MainConfig.AllowOrigins) == 0 {
		c.MainConfig.AllowOrigins = []string{"*"}
	}
	if c.MysqlConfig.Port == 0 {
		c.MysqlConfig.Port = 3306
	}
	if c.MysqlConfig.DatabaseName == "" {
		c.MysqlConfig.DatabaseName = "health_predict"
	}
	if c.JwtConfig.ExpireHours <= 0 {
		c.JwtConfig.ExpireHours = 24
	}
	if c.JwtConfig.Issuer == "" {
		c.JwtConfig.Issuer = c.MainConfig.AppName
	}
	if c.LogConfig.Level == "" {
		c.LogConfig.Level = "info"
	}
	if c.PredictorConfig.BaseURL == "" {
		c.PredictorConfig.BaseURL = "http://localhost:8000"
	}
	if c.PredictorConfig.TimeoutSeconds <= 0 {
		c.PredictorConfig.TimeoutSeconds = 30
	}
	if c.AIConfig.ChatModel.Provider == "" {
		c.AIConfig.ChatModel.Provider = "gemini"
	}
	if c.AIConfig.SummaryCacheTTL <= 0 {
		c.AIConfig.SummaryCacheTTL = constants.SummaryCacheTTLSeconds
	}
	if c.KafkaConfig.AssessmentTopic == "" {
		c.KafkaConfig.AssessmentTopic = constants.AssessmentTopic
	}
	if c.KafkaConfig.ConsumerGroupID == "" {
		c.KafkaConfig.ConsumerGroupID = "healthpredict-assessment-recorder"
	}
	if c.KafkaConfig.ClientID == "" {
		c.KafkaConfig.ClientID = c.MainConfig.AppName
	}
}

func setString(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return
	}
	if n, err := strconv.Atoi(v); err == nil {
		*dst = n
	}
}
