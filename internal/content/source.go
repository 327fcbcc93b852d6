package content

import (
	"context"
	"io/fs"
	"math/rand/v2"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"storefront/internal/models"
)

// UploadDir is the per-product, per-color image tree under the static dir.
const UploadDir = "abc_upload"

var galleryExt = map[string]bool{".png": true, ".jpg": true, ".jpeg": true, ".webp": true, ".gif": true}

// Remote is the CMS side of a Source.
type Remote interface {
	FetchProducts(ctx context.Context) (*models.Catalog, error)
	FetchHomepage(ctx context.Context) (*models.HomepageContent, error)
	FetchGallery(ctx context.Context) ([]models.GalleryImage, error)
}

// Source resolves each content type from the CMS first and local files second.
// It keeps nothing between calls.
type Source struct {
	remote    Remote
	dir       string
	staticDir string
	logger    *zap.Logger
	shuffle   func([]models.GalleryImage)
}

type Option func(*Source)

// WithShuffle replaces the random gallery order, mostly for tests.
func WithShuffle(fn func([]models.GalleryImage)) Option {
	return func(s *Source) { s.shuffle = fn }
}

func NewSource(remote Remote, contentDir, staticDir string, logger *zap.Logger, opts ...Option) *Source {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Source{
		remote:    remote,
		dir:       contentDir,
		staticDir: staticDir,
		logger:    logger,
		shuffle: func(items []models.GalleryImage) {
			rand.Shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Source) StaticDir() string { return s.staticDir }

// Products returns the CMS catalog, or shop.json when the CMS is off or failing.
func (s *Source) Products(ctx context.Context) (*models.Catalog, error) {
	if s.remote != nil {
		if catalog, err := s.remote.FetchProducts(ctx); err == nil && catalog != nil {
			return catalog, nil
		}
	}
	return LoadCatalog(filepath.Join(s.dir, "shop.json"))
}

// Reviews always come from reviews.json.
func (s *Source) Reviews() ([]models.Review, error) {
	return LoadReviews(filepath.Join(s.dir, "reviews.json"))
}

// Homepage never fails: CMS errors fall back to the built-in defaults.
func (s *Source) Homepage(ctx context.Context) models.HomepageContent {
	if s.remote != nil {
		if home, err := s.remote.FetchHomepage(ctx); err == nil && home != nil {
			return *home
		}
	}
	return models.DefaultHomepage()
}

// Gallery merges images found on disk with CMS entries, dropping repeated
// URLs, then shuffles so colors are mixed.
func (s *Source) Gallery(ctx context.Context) []models.GalleryImage {
	seen := map[string]bool{}
	var images []models.GalleryImage
	add := func(img models.GalleryImage) {
		if img.URL == "" || seen[img.URL] {
			return
		}
		seen[img.URL] = true
		images = append(images, img)
	}

	for _, img := range s.discoverGallery() {
		add(img)
	}
	if s.remote != nil {
		remote, err := s.remote.FetchGallery(ctx)
		if err == nil {
			for _, img := range remote {
				if img.Color == "" {
					img.Color = "Gallery"
				}
				if img.URL != "" {
					img.URL = ResolveMediaURL(img.URL)
				}
				add(img)
			}
		}
	}

	s.shuffle(images)
	return images
}

// discoverGallery walks static/abc_upload; the color is the name of the folder holding the file.
func (s *Source) discoverGallery() []models.GalleryImage {
	root := filepath.Join(s.staticDir, UploadDir)
	if st, err := os.Stat(root); err != nil || !st.IsDir() {
		return nil
	}

	var images []models.GalleryImage
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return err
		}
		entries, err := os.ReadDir(path)
		if err != nil {
			return err
		}
		var files []string
		for _, e := range entries {
			if !e.IsDir() && galleryExt[strings.ToLower(filepath.Ext(e.Name()))] {
				files = append(files, e.Name())
			}
		}
		sort.Slice(files, func(i, j int) bool { return strings.ToLower(files[i]) < strings.ToLower(files[j]) })

		color := filepath.Base(path)
		for _, name := range files {
			rel, err := filepath.Rel(s.staticDir, filepath.Join(path, name))
			if err != nil {
				continue
			}
			images = append(images, models.GalleryImage{
				URL:   ResolveMediaURL(filepath.ToSlash(rel)),
				Color: color,
			})
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("gallery discovery stopped early", zap.String("root", root), zap.Error(err))
	}
	return images
}
