package utils

import (
	"glowdesk/config"
	"glowdesk/services/storage"
)

// Cloudinary initializes and returns a Cloudinary-backed StorageService from
// the loaded configuration.
func Cloudinary() (storage.StorageService, error) {
	return storage.NewCloudinaryStorage(
		config.AppConfig.CloudinaryCloudName,
		config.AppConfig.CloudinaryAPIKey,
		config.AppConfig.CloudinaryAPISecret,
	)
}
