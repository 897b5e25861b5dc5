package models

import (
	"encoding/json"
	"strings"
)

// Product mirrors a catalog product owned by the backend. The copy held here is
// transient: created on fetch, discarded on navigation.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Color       string  `json:"color"`
	Fabric      string  `json:"fabric"`
	Size        string  `json:"size"`
	IsFeatured  bool    `json:"isFeatured"`
	IsActive    bool    `json:"isActive"`
	// ImagePaths is a JSON-encoded array of image sources. ImagePath is the
	// legacy singular field older records still carry.
	ImagePaths string `json:"imagePaths"`
	ImagePath  string `json:"imagePath"`
}

// ImageList decodes ImagePaths into an ordered list of image sources.
// Malformed or absent JSON falls back to the legacy singular field; blank
// entries are dropped so the result never contains empty strings.
func (p *Product) ImageList() []string {
	return ParseImagePaths(p.ImagePaths, p.ImagePath)
}

// MainImage returns the first entry of the ordered image list, or "" when the
// product has no images at all.
func (p *Product) MainImage() string {
	images := p.ImageList()
	if len(images) == 0 {
		return ""
	}
	return images[0]
}

// ParseImagePaths decodes a JSON-encoded image array with a legacy single-field
// fallback. It never fails: bad input degrades to the fallback or to an empty
// list.
func ParseImagePaths(encoded, legacy string) []string {
	if strings.TrimSpace(encoded) != "" {
		var parsed []string
		if err := json.Unmarshal([]byte(encoded), &parsed); err == nil {
			images := make([]string, 0, len(parsed))
			for _, img := range parsed {
				if strings.TrimSpace(img) != "" {
					images = append(images, img)
				}
			}
			return images
		}
	}
	if strings.TrimSpace(legacy) != "" {
		return []string{legacy}
	}
	return []string{}
}

// EncodeImagePaths is the inverse of ParseImagePaths, used by the admin editor
// when saving the ordered image list. The first entry is the main image.
func EncodeImagePaths(images []string) string {
	kept := make([]string, 0, len(images))
	for _, img := range images {
		if strings.TrimSpace(img) != "" {
			kept = append(kept, img)
		}
	}
	if len(kept) == 0 {
		return ""
	}
	encoded, err := json.Marshal(kept)
	if err != nil {
		return ""
	}
	return string(encoded)
}

// ProductForm carries the admin create/edit fields. Price and stock arrive as
// strings from the form and are parsed by the handler.
type ProductForm struct {
	Name        string `form:"name" binding:"required"`
	Description string `form:"description"`
	Category    string `form:"category" binding:"required"`
	Price       string `form:"price" binding:"required"`
	Stock       string `form:"stock" binding:"required"`
	Color       string `form:"color"`
	Fabric      string `form:"fabric"`
	Size        string `form:"size"`
	IsFeatured  bool   `form:"isFeatured"`
	IsActive    bool   `form:"isActive"`
}
