package cloudinary

import (
	"github.com/cloudinary/cloudinary-go/v2"
)

// New reads the connection string (CLOUDINARY_URL format) from config so the
// client is constructed explicitly instead of from ambient env.
func New(url string) (*cloudinary.Cloudinary, error) {
	if url == "" {
		return cloudinary.New()
	}
	return cloudinary.NewFromURL(url)
}
