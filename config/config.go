package config

import (
	"StoreBackend/models"
	"fmt"
	"github.com/redis/go-redis/v9"
	"gopkg.in/yaml.v3"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"os"
)

type DatabaseConfig struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	Database string `yaml:"database"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	Database int    `yaml:"database"`
}

type AppConfig struct {
	Addr        string `yaml:"addr"`
	TokenSecret string `yaml:"tokenSecret"`
	APIBaseURL  string `yaml:"apiBaseURL"`
	FrontendURL string `yaml:"frontendURL"`
}

type MailConfig struct {
	SendgridAPIKey string `yaml:"sendgridAPIKey"`
	SenderName     string `yaml:"senderName"`
	SenderEmail    string `yaml:"senderEmail"`
}

type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	App      AppConfig      `yaml:"app"`
	Mail     MailConfig     `yaml:"mail"`
}

func LoadConfig(filename string) (Config, error) {
	var config Config
	file, err := os.Open(filename)
	if err != nil {
		return config, err
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&config); err != nil {
		return config, err
	}

	return config, nil
}

func SetupMySQLConnection(config Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		config.Database.Username,
		config.Database.Password,
		config.Database.Host,
		config.Database.Port,
		config.Database.Database,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return nil, err
	}

	if err := MigrateModels(db); err != nil {
		return nil, err
	}

	return db, nil
}

// MigrateModels keeps the schema in sync with the model structs.
func MigrateModels(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.SessionToken{},
		&models.PasswordResetToken{},
		&models.Courier{},
		&models.Product{},
		&models.Hamper{},
		&models.Consignment{},
		&models.Order{},
		&models.OrderItem{},
	)
}

func SetupRedisConnection(config Config) (*redis.Client, error) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     config.Redis.Addr,
		Password: config.Redis.Password,
		DB:       config.Redis.Database,
	})

	return redisClient, nil
}
