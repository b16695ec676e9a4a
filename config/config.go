package config

import (
	"log"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	App struct {
		Name string
		Port string
	}
	Database struct {
		Dsn          string
		MaxIdleConns int
		MaxOpenConns int
	}
	Redis struct {
		Addr     string
		DB       int
		Password string
	}
	RabbitMQ struct {
		Url   string
		Queue string
	}
	Email struct {
		APIKey      string
		BaseURL     string
		FromEmail   string
		NotifyEmail string
	}
}

var AppConfig *Config

func InitConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath("./config")

	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("Error reading config file: %v", err)
	}

	AppConfig = &Config{}

	if err := viper.Unmarshal(AppConfig); err != nil {
		log.Fatalf("Unable to decode into struct: %v", err)
	}

	// 邮件配置：密钥等敏感项只在启动时从环境变量读取一次，之后统一走 Config 注入
	AppConfig.Email.APIKey = getEnvOrDefault("RESEND_API_KEY", AppConfig.Email.APIKey)
	AppConfig.Email.BaseURL = getEnvOrDefault("RESEND_API_BASE_URL", AppConfig.Email.BaseURL)
	AppConfig.Email.FromEmail = getEnvOrDefault("RESEND_FROM_EMAIL", "onboarding@resend.dev")
	AppConfig.Email.NotifyEmail = getEnvOrDefault("NOTIFICATION_EMAIL", AppConfig.Email.NotifyEmail)

	initDB()
	initRedis()
	initRabbit()
}

// getEnvOrDefault 获取环境变量，如果不存在则返回默认值
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
