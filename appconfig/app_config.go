package appconfig

import "os"

type AppConfig struct {
	Port                   string
	ApiUrl                 string
	AccessSecret           string
	CloudinaryCloudName    string
	CloudinaryUploadPreset string
}

func Load() *AppConfig {
	return &AppConfig{
		Port:                   getEnv("PORT", "8085"),
		ApiUrl:                 getEnv("API_URL", "http://localhost:3000"),
		AccessSecret:           os.Getenv("ACCESS_SECRET"),
		CloudinaryCloudName:    os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryUploadPreset: os.Getenv("CLOUDINARY_UPLOAD_PRESET"),
	}
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}
