package image

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service owns image metadata plus the files under uploadDir. URL paths are
// always /uploads/<filename>; the directory on disk can live anywhere.
type Service struct {
	repo      Repository
	uploadDir string
}

func NewService(repo Repository, uploadDir string) *Service {
	return &Service{repo: repo, uploadDir: uploadDir}
}

func (s *Service) List() ([]UploadedImage, error) {
	return s.repo.List()
}

// Filename builds a collision-resistant name for an uploaded file:
// millisecond timestamp prefix plus the original name. Clients that omit a
// name get a generated stem instead.
func (s *Service) Filename(original string) string {
	name := filepath.Base(strings.TrimSpace(original))
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = uuid.NewString()
	}
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), name)
}

// Save records a metadata row for a file already written under uploadDir.
func (s *Service) Save(filename string, altText, page *string) (UploadedImage, error) {
	img := UploadedImage{URL: "/uploads/" + filename, AltText: altText, Page: page}
	return s.repo.Create(img)
}

// Delete removes the metadata row first and then the file. A file that fails
// to delete is logged as an orphan for a later sweep rather than failing the
// request; the row is gone either way.
func (s *Service) Delete(id int) error {
	img, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		return err
	}

	if name, ok := strings.CutPrefix(img.URL, "/uploads/"); ok && name != "" {
		path := filepath.Join(s.uploadDir, filepath.Base(name))
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.Printf("orphaned upload file %s: %v", path, err)
		}
	}
	return nil
}

// UploadDir exposes the configured directory for handlers saving files.
func (s *Service) UploadDir() string {
	return s.uploadDir
}
