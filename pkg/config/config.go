package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	Log      LogConfig
	Storage  StorageConfig
	Blog     BlogConfig
}

type AppConfig struct {
	Name string
	Port string
	Env  string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// RedisConfig สำหรับ revoked-token store (logout)
type RedisConfig struct {
	URL      string // redis://localhost:6379
	Password string
	DB       int
}

// NATSConfig configuration สำหรับ NATS JetStream (event bus ของ notifications)
type NATSConfig struct {
	URL string // nats://localhost:4222
}

type JWTConfig struct {
	Secret string
}

type LogConfig struct {
	Level      string // debug, info, warn, error
	Format     string // json, text
	Output     string // stdout, file, both
	FilePath   string // logs/app.log
	MaxSize    int    // MB
	MaxBackups int    // จำนวน backup files
	MaxAge     int    // วัน
	Compress   bool   // บีบอัด backup
}

type StorageConfig struct {
	Type          string // local, s3
	BasePath      string // สำหรับ local: ./uploads
	BaseURL       string // URL สำหรับเข้าถึงไฟล์ (เช่น http://localhost:8080/files)
	MaxUploadSize int64  // ขนาดสูงสุดที่อัปโหลดได้ (bytes)

	// S3-Compatible Storage (MinIO / R2)
	S3 S3Config
}

type S3Config struct {
	Endpoint  string // minio:9000
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	Region    string
	PublicURL string // URL สำหรับเข้าถึงไฟล์ public (optional)
}

// BlogConfig policy flags ที่ source variants ไม่ตรงกัน
// surface เป็น config แทนการเลือกให้เอง
type BlogConfig struct {
	// SingleCategoryPerArticle จำกัดบทความละ 1 category
	SingleCategoryPerArticle bool
	// RestrictDuplicateReplies ห้าม author คนเดิมตอบ parent เดิมซ้ำ
	RestrictDuplicateReplies bool
	// NotificationRetentionDays เก็บ notification ที่อ่านแล้วกี่วันก่อน purge
	NotificationRetentionDays int
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		// ไม่ error ถ้าไม่มี .env file (ใช้ environment variables แทน)
	}

	logMaxSize, _ := strconv.Atoi(getEnv("LOG_MAX_SIZE", "100"))
	logMaxBackups, _ := strconv.Atoi(getEnv("LOG_MAX_BACKUPS", "5"))
	logMaxAge, _ := strconv.Atoi(getEnv("LOG_MAX_AGE", "30"))
	logCompress := getEnv("LOG_COMPRESS", "true") == "true"

	maxUploadSize, _ := strconv.ParseInt(getEnv("STORAGE_MAX_UPLOAD_SIZE", "10485760"), 10, 64) // 10MB default
	s3UseSSL := getEnv("S3_USE_SSL", "false") == "true"

	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))

	singleCategory := getEnv("BLOG_SINGLE_CATEGORY", "false") == "true"
	restrictReplies := getEnv("BLOG_RESTRICT_DUPLICATE_REPLIES", "false") == "true"
	retentionDays, _ := strconv.Atoi(getEnv("BLOG_NOTIFICATION_RETENTION_DAYS", "90"))

	config := &Config{
		App: AppConfig{
			Name: getEnv("APP_NAME", "Blog API"),
			Port: getEnv("APP_PORT", "8080"),
			Env:  getEnv("APP_ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "blog"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "redis://localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		NATS: NATSConfig{
			URL: getEnv("NATS_URL", "nats://localhost:4222"),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "your-secret-key"),
		},
		Log: LogConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Format:     getEnv("LOG_FORMAT", "json"),
			Output:     getEnv("LOG_OUTPUT", "both"),
			FilePath:   getEnv("LOG_FILE", "logs/app.log"),
			MaxSize:    logMaxSize,
			MaxBackups: logMaxBackups,
			MaxAge:     logMaxAge,
			Compress:   logCompress,
		},
		Storage: StorageConfig{
			Type:          getEnv("STORAGE_TYPE", "local"),
			BasePath:      getEnv("STORAGE_BASE_PATH", "./uploads"),
			BaseURL:       getEnv("STORAGE_BASE_URL", "http://localhost:8080/files"),
			MaxUploadSize: maxUploadSize,
			S3: S3Config{
				Endpoint:  getEnv("S3_ENDPOINT", "localhost:9000"),
				AccessKey: getEnv("S3_ACCESS_KEY", "minioadmin"),
				SecretKey: getEnv("S3_SECRET_KEY", "minioadmin"),
				Bucket:    getEnv("S3_BUCKET", "blog-media"),
				UseSSL:    s3UseSSL,
				Region:    getEnv("S3_REGION", "auto"),
				PublicURL: getEnv("S3_PUBLIC_URL", ""),
			},
		},
		Blog: BlogConfig{
			SingleCategoryPerArticle:  singleCategory,
			RestrictDuplicateReplies:  restrictReplies,
			NotificationRetentionDays: retentionDays,
		},
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// IsDevelopment ตรวจสอบว่าเป็น development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction ตรวจสอบว่าเป็น production mode
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
