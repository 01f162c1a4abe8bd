package service

import (
	"context"
	"fmt"
	"io/fs"
	"mime"
	"path"
	"strings"

	"go.uber.org/zap"

	"salonweb/internal/storage"
)

// SeedResult summarizes a gallery upload run.
type SeedResult struct {
	Uploaded []string
	Skipped  []string
}

// SeedGallery uploads every image in fsys to storage under GalleryPrefix,
// keeping relative paths. Non-image files are skipped. With dryRun set
// nothing is written.
func SeedGallery(ctx context.Context, store storage.Storage, fsys fs.FS, dryRun bool, logger *zap.Logger) (SeedResult, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	var res SeedResult

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != "." && strings.HasPrefix(d.Name(), ".") {
				return fs.SkipDir
			}
			return nil
		}

		ext := strings.ToLower(path.Ext(p))
		if !imageExts[ext] || strings.HasPrefix(d.Name(), ".") {
			res.Skipped = append(res.Skipped, p)
			return nil
		}

		key := GalleryPrefix + p
		if dryRun {
			logger.Info("gallery_seed_dry_run", zap.String("key", key))
			res.Uploaded = append(res.Uploaded, key)
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		f, err := fsys.Open(p)
		if err != nil {
			return err
		}
		defer f.Close()

		if _, err := store.Put(ctx, key, f, storage.PutObjectOptions{
			Size:        info.Size(),
			ContentType: contentType(ext),
		}); err != nil {
			return fmt.Errorf("upload %s: %w", key, err)
		}
		logger.Info("gallery_seed_uploaded", zap.String("key", key), zap.Int64("size", info.Size()))
		res.Uploaded = append(res.Uploaded, key)
		return nil
	})
	return res, err
}

func contentType(ext string) string {
	if ct := mime.TypeByExtension(ext); ct != "" {
		return ct
	}
	switch ext {
	case ".webp":
		return "image/webp"
	case ".avif":
		return "image/avif"
	}
	return "application/octet-stream"
}
