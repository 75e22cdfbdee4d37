package cloudinary

import (
	"bytes"
	"context"

	cld "github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

type ResumeUploader struct {
	cld *cld.Cloudinary
}

func NewResumeUploader(cloud *cld.Cloudinary) *ResumeUploader {
	return &ResumeUploader{cld: cloud}
}

// UploadBytes stores the file under folder/filename and returns its public URL.
// Resumes are PDFs/docs, so the resource type is raw rather than image.
func (u *ResumeUploader) UploadBytes(
	ctx context.Context,
	folder string,
	filename string,
	b []byte,
) (string, error) {
	reader := bytes.NewReader(b)

	res, err := u.cld.Upload.Upload(
		ctx,
		reader,
		uploader.UploadParams{
			Folder:       folder,
			PublicID:     filename,
			ResourceType: "raw",
		},
	)
	if err != nil {
		return "", err
	}

	return res.SecureURL, nil
}
