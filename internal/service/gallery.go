package service

import (
	"context"
	"path"
	"slices"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"salonweb/internal/content"
	"salonweb/internal/model"
	"salonweb/internal/storage"
)

const (
	// GalleryPrefix is the object key prefix for gallery images.
	GalleryPrefix = "gallery/"

	presignExpiry = time.Hour
	// cacheTTL is kept well under presignExpiry so cached URLs never serve expired.
	cacheTTL = 15 * time.Minute
	// fallbackTTL spaces out storage retries while the bucket is empty or failing.
	fallbackTTL  = time.Minute
	fetchTimeout = 5 * time.Second
)

var imageExts = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".webp": true, ".avif": true}

// GalleryService lists gallery images.
type GalleryService interface {
	// List never fails: storage problems yield the bundled gallery.
	List(ctx context.Context) []model.GalleryImage
}

type galleryService struct {
	store   storage.Storage
	logger  *zap.Logger
	now     func() time.Time
	timeout time.Duration
	flight  singleflight.Group

	mu      sync.Mutex
	cached  []model.GalleryImage
	expires time.Time
}

// NewGalleryService constructs a GalleryService. A nil store serves the bundled gallery.
func NewGalleryService(store storage.Storage, logger *zap.Logger) GalleryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &galleryService{store: store, logger: logger, now: time.Now, timeout: fetchTimeout}
}

// List returns images from object storage with presigned URLs. Concurrent
// cache misses share one bounded fetch; a caller whose ctx ends first gets
// the bundled gallery.
func (s *galleryService) List(ctx context.Context) []model.GalleryImage {
	if s.store == nil {
		return content.Gallery()
	}
	if images, ok := s.fromCache(); ok {
		return images
	}

	ch := s.flight.DoChan("gallery", func() (any, error) {
		return s.refresh(context.WithoutCancel(ctx)), nil
	})
	select {
	case res := <-ch:
		return slices.Clone(res.Val.([]model.GalleryImage))
	case <-ctx.Done():
		return content.Gallery()
	}
}

func (s *galleryService) fromCache() ([]model.GalleryImage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cached == nil || !s.now().Before(s.expires) {
		return nil, false
	}
	return slices.Clone(s.cached), true
}

// refresh fetches from storage and caches the result. An empty or failing
// bucket caches the bundled gallery for fallbackTTL instead.
func (s *galleryService) refresh(ctx context.Context) []model.GalleryImage {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	images, err := s.fetch(ctx)
	ttl := cacheTTL
	switch {
	case err != nil:
		s.logger.Warn("gallery_storage_unavailable", zap.Error(err))
		images, ttl = content.Gallery(), fallbackTTL
	case len(images) == 0:
		images, ttl = content.Gallery(), fallbackTTL
	}

	s.mu.Lock()
	s.cached = images
	s.expires = s.now().Add(ttl)
	s.mu.Unlock()
	return images
}

func (s *galleryService) fetch(ctx context.Context) ([]model.GalleryImage, error) {
	ctx, span := tracer.Start(ctx, "gallery.fetch")
	defer span.End()

	objects, err := s.store.List(ctx, GalleryPrefix)
	if err != nil {
		return nil, err
	}

	images := make([]model.GalleryImage, 0, len(objects))
	for _, obj := range objects {
		if !imageExts[strings.ToLower(path.Ext(obj.Key))] {
			continue
		}
		u, err := s.store.PresignGet(ctx, obj.Key, presignExpiry)
		if err != nil {
			return nil, err
		}
		images = append(images, model.GalleryImage{
			Key: obj.Key,
			URL: u,
			Alt: AltFromKey(obj.Key),
		})
	}
	return images, nil
}

// AltFromKey derives alt text from an object key: "gallery/chrome-french_tips.jpg" -> "Chrome french tips".
func AltFromKey(key string) string {
	base := path.Base(key)
	base = strings.TrimSuffix(base, path.Ext(base))
	base = strings.NewReplacer("-", " ", "_", " ").Replace(base)
	base = strings.Join(strings.Fields(base), " ")
	if base == "" {
		return "Nail art"
	}
	return strings.ToUpper(base[:1]) + base[1:]
}
