package services

import (
	"context"
	"log"
	"sync"

	"sareemahal/internal/backend"
)

// Vocabulary is the filter dropdown content for the catalog pages.
type Vocabulary struct {
	Categories []string
	Colors     []string
	Fabrics    []string
}

// VocabularyService loads the filter vocabulary once and caches it for the
// life of the process. A failed load is not cached, so the next page view
// retries.
type VocabularyService struct {
	api *backend.Client

	mu     sync.Mutex
	loaded bool
	vocab  Vocabulary
}

// NewVocabularyService creates an unloaded vocabulary cache.
func NewVocabularyService(api *backend.Client) *VocabularyService {
	return &VocabularyService{api: api}
}

// Get returns the cached vocabulary, fetching it on first use. Failures
// degrade to empty dropdowns rather than failing the page.
func (v *VocabularyService) Get(ctx context.Context) Vocabulary {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.loaded {
		return v.vocab
	}

	categories, err := v.api.Categories(ctx)
	if err != nil {
		log.Printf("VocabularyService.Get - Error loading categories: %v", err)
		return Vocabulary{}
	}
	colors, err := v.api.Colors(ctx)
	if err != nil {
		log.Printf("VocabularyService.Get - Error loading colors: %v", err)
		return Vocabulary{}
	}
	fabrics, err := v.api.Fabrics(ctx)
	if err != nil {
		log.Printf("VocabularyService.Get - Error loading fabrics: %v", err)
		return Vocabulary{}
	}

	v.vocab = Vocabulary{Categories: categories, Colors: colors, Fabrics: fabrics}
	v.loaded = true
	return v.vocab
}
