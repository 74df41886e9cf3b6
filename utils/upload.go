package utils

import (
	"errors"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrFileTooLarge = errors.New("file exceeds the size limit")
	ErrBadImageType = errors.New("only jpeg, png and webp images are accepted")
)

var imageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

var imageMimes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// SaveImage writes an uploaded image into dir under a random name and
// returns the public /uploads path stored on the entity.
func SaveImage(file *multipart.FileHeader, dir string, maxSize int64) (string, error) {
	if file.Size > maxSize {
		return "", ErrFileTooLarge
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !imageExts[ext] {
		return "", ErrBadImageType
	}
	if ct := file.Header.Get("Content-Type"); ct != "" && !imageMimes[ct] {
		return "", ErrBadImageType
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	name := uuid.NewString() + ext

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return "/uploads/" + name, nil
}

// RemoveImage deletes a previously saved image. Best effort: a failure
// is logged and never fails the request that triggered it.
func RemoveImage(dir, imagePath string) {
	if imagePath == "" {
		return
	}
	path := filepath.Join(dir, filepath.Base(imagePath))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Printf("failed to remove image %s: %v", path, err)
	}
}
