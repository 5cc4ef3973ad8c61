package services

import (
	"math/rand"
	"os"
	"path"
	"path/filepath"
	"strings"

	"scibind/internal/models"
)

var pictureExtensions = []string{".png", ".jpg", ".jpeg"}

// RandomProfilePicture picks one of the template pictures under
// <mediaRoot>/profile_pictures/templates. The result is relative to mediaRoot.
func RandomProfilePicture(mediaRoot string) string {
	entries, err := os.ReadDir(filepath.Join(mediaRoot, "profile_pictures", "templates"))
	if err != nil {
		return models.DefaultProfilePicture
	}

	var templates []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		for _, allowed := range pictureExtensions {
			if ext == allowed {
				templates = append(templates, entry.Name())
				break
			}
		}
	}

	if len(templates) == 0 {
		return models.DefaultProfilePicture
	}
	return path.Join("profile_pictures", "templates", templates[rand.Intn(len(templates))])
}
