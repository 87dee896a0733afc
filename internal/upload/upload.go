// Package upload writes multipart uploads to the fixed per-kind directories
// under the public document root.
package upload

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// Destination directories, one per upload kind. Stored row values are the
// path below "public" so the static file server can resolve them directly.
const (
	DeveloperPictureDir = "public/images/developer_pictures"
	CompanyLogoDir      = "public/images/company_logos"
	ResumeDir           = "public/resumes"
	CertificateDir      = "public/certificates"
)

// Save writes the uploaded file under dir with a collision-resistant
// generated name (prefix + nanosecond timestamp + original extension) and
// returns the public path to store in the database.
func Save(c *gin.Context, file *multipart.FileHeader, dir, prefix string) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	name := fmt.Sprintf("%s_%d%s", prefix, time.Now().UnixNano(), ext)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	dst := filepath.Join(dir, name)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		return "", err
	}

	return "/" + filepath.ToSlash(strings.TrimPrefix(dst, "public/")), nil
}

// HasExtension reports whether the upload carries one of the allowed
// extensions (compared case-insensitively).
func HasExtension(file *multipart.FileHeader, allowed ...string) bool {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	for _, a := range allowed {
		if ext == a {
			return true
		}
	}
	return false
}
