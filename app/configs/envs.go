package configs

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type ENV struct {
	DBDriver          string
	DBHost            string
	DBPort            string
	DBName            string
	DBUser            string
	DBPassword        string
	DBSSLMode         string
	Port              string
	AppEnv            string
	AppAuthKey        string
	AppEncKey         string
	CSRFKey           string
	AdminUser         string
	AdminPasswordHash string
	ReseedOnStart     bool
}

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"

	EnvProduction  = "production"
	EnvDevelopment = "development"
)

// LoadEnv reads .env (when present) and then the process environment.
// The database variables keep the names the deployment already uses:
// DBHOST, DBNAME, DBUSER and DBPASS.
func LoadEnv() ENV {
	if err := godotenv.Load(".env"); err != nil {
		zap.L().Debug("LoadEnv: no .env file found, using process environment")
	}

	env := ENV{
		DBDriver:          strings.ToLower(getEnv("DB_DRIVER", DriverPostgres)),
		DBHost:            os.Getenv("DBHOST"),
		DBPort:            os.Getenv("DBPORT"),
		DBName:            os.Getenv("DBNAME"),
		DBUser:            os.Getenv("DBUSER"),
		DBPassword:        os.Getenv("DBPASS"),
		DBSSLMode:         getEnv("DB_SSLMODE", "disable"),
		Port:              getEnv("APP_PORT", ":8080"),
		AppEnv:            getEnv("APP_ENV", EnvDevelopment),
		AppAuthKey:        os.Getenv("APP_AUTH_KEY"),
		AppEncKey:         os.Getenv("APP_ENC_KEY"),
		CSRFKey:           os.Getenv("CSRF_KEY"),
		AdminUser:         getEnv("ADMIN_USER", "admin"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		ReseedOnStart:     getBoolEnv("RESEED_ON_START", true),
	}

	if env.DBPort == "" {
		env.DBPort = defaultPort(env.DBDriver)
	}
	if !strings.Contains(env.Port, ":") {
		env.Port = ":" + env.Port
	}

	return env
}

func (e ENV) IsProduction() bool {
	return e.AppEnv == EnvProduction
}

func defaultPort(driver string) string {
	if driver == DriverMySQL {
		return "3306"
	}
	return "5432"
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getBoolEnv(key string, fallback bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		zap.L().Warn("LoadEnv: invalid boolean, using default", zap.String("key", key), zap.String("value", v))
		return fallback
	}
	return b
}
