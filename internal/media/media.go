package media

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/osse101/Stashkeeper_Go/internal/domain"
	"github.com/osse101/Stashkeeper_Go/internal/logger"
)

// Upload is an image sent along with a new catalog weapon
type Upload struct {
	FileName string
	Data     []byte
}

// Store persists weapon images and returns the URL to put on the weapon
type Store interface {
	Save(ctx context.Context, weaponID string, up Upload) (string, error)
	// Remove deletes a previously saved image. Unknown URLs are ignored.
	Remove(ctx context.Context, url string) error
}

// DecodeUpload decodes a base64 payload, accepting an optional data URL prefix
func DecodeUpload(fileName, encoded string) (Upload, error) {
	if i := strings.Index(encoded, ","); i >= 0 && strings.HasPrefix(encoded, "data:") {
		encoded = encoded[i+1:]
	}
	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return Upload{}, fmt.Errorf("%w: %s", domain.ErrValidation, ErrMsgInvalidBase64)
	}
	return Upload{FileName: fileName, Data: data}, nil
}

// classify validates the upload and returns its extension and content type
func classify(up Upload, maxBytes int) (string, string, error) {
	if len(up.Data) == 0 {
		return "", "", fmt.Errorf("%w: %s", domain.ErrValidation, ErrMsgEmptyImage)
	}
	if maxBytes > 0 && len(up.Data) > maxBytes {
		return "", "", fmt.Errorf("%w: %s (%d > %d bytes)", domain.ErrValidation, ErrMsgImageTooLarge, len(up.Data), maxBytes)
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(up.FileName), "."))
	if ct, ok := allowedTypes[ext]; ok {
		return ext, ct, nil
	}

	detected := http.DetectContentType(up.Data)
	for e, ct := range allowedTypes {
		if ct == detected && e != "jpeg" {
			return e, ct, nil
		}
	}
	return "", "", fmt.Errorf("%w: %s %q", domain.ErrValidation, ErrMsgUnsupportedImage, detected)
}

// LocalStore writes images under a public directory served at BaseURL
type LocalStore struct {
	dir      string
	baseURL  string
	maxBytes int
}

// NewLocalStore creates a LocalStore rooted at dir
func NewLocalStore(dir, baseURL string, maxBytes int) *LocalStore {
	return &LocalStore{dir: dir, baseURL: strings.TrimRight(baseURL, "/"), maxBytes: maxBytes}
}

// Save writes weapons/{id}.{ext} and returns its public URL
func (s *LocalStore) Save(ctx context.Context, weaponID string, up Upload) (string, error) {
	ext, _, err := classify(up, s.maxBytes)
	if err != nil {
		return "", err
	}

	dir := filepath.Join(s.dir, WeaponDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create media directory: %w", err)
	}

	name := weaponID + "." + ext
	if err := os.WriteFile(filepath.Join(dir, name), up.Data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write image: %w", err)
	}

	url := s.baseURL + "/" + path.Join(WeaponDir, name)
	logger.FromContext(ctx).Info(LogMsgImageSaved, "weapon_id", weaponID, "url", url, "bytes", len(up.Data))
	return url, nil
}

// Remove deletes the file behind a URL this store produced
func (s *LocalStore) Remove(ctx context.Context, url string) error {
	prefix := s.baseURL + "/" + WeaponDir + "/"
	if !strings.HasPrefix(url, prefix) {
		return nil
	}
	name := path.Base(strings.TrimPrefix(url, prefix))
	err := os.Remove(filepath.Join(s.dir, WeaponDir, name))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove image: %w", err)
	}
	logger.FromContext(ctx).Info(LogMsgImageRemoved, "url", url)
	return nil
}

// InlineStore embeds images as data URLs on the weapon itself
type InlineStore struct {
	maxBytes int
}

// NewInlineStore creates an InlineStore
func NewInlineStore(maxBytes int) *InlineStore {
	return &InlineStore{maxBytes: maxBytes}
}

// Save returns a data: URL holding the image
func (s *InlineStore) Save(_ context.Context, _ string, up Upload) (string, error) {
	_, ct, err := classify(up, s.maxBytes)
	if err != nil {
		return "", err
	}
	return "data:" + ct + ";base64," + base64.StdEncoding.EncodeToString(up.Data), nil
}

// Remove is a no-op: the image disappears with the weapon
func (s *InlineStore) Remove(context.Context, string) error {
	return nil
}
