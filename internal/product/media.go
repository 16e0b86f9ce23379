package product

import (
	"fmt"
	"strings"

	"github.com/qburst/pimcore-magento-product-connector/internal/config"
	"github.com/qburst/pimcore-magento-product-connector/internal/payload"
	"github.com/qburst/pimcore-magento-product-connector/internal/schema"
)

const imageTypeTags = "[THUMBNAIL, IMAGE, SMALL_IMAGE]"

// images scans every image-bearing field and collects absolute image URLs.
// The first image alone carries the fixed type tag list; hosted assets are
// prefixed with the host URL while external images keep their URL verbatim.
func (b *Builder) images(obj *schema.Object) *payload.Array {
	host := strings.TrimRight(b.Config.Get(config.KeyHostURL), "/")
	gallery := payload.NewArray()

	for _, def := range obj.Class.Definitions() {
		value, ok := obj.Field(def.Name)
		if !ok {
			continue
		}

		switch def.Type {
		case schema.FieldImage:
			if img, ok := value.(*schema.Image); ok && img != nil {
				appendHostedImage(gallery, host, img.Path)
			}
		case schema.FieldHotspotImage:
			if hs, ok := value.(*schema.HotspotImage); ok && hs != nil && hs.Image != nil {
				appendHostedImage(gallery, host, hs.Image.Path)
			}
		case schema.FieldImageGallery:
			g, ok := value.(*schema.Gallery)
			if !ok || g == nil {
				continue
			}

			for _, item := range g.Items {
				if item != nil && item.Image != nil {
					appendHostedImage(gallery, host, item.Image.Path)
				}
			}
		case schema.FieldExternalImage:
			if ext, ok := value.(*schema.ExternalImage); ok && ext != nil && ext.URL != "" {
				appendImage(gallery, ext.URL)
			}
		}
	}

	return gallery
}

func appendHostedImage(gallery *payload.Array, host, path string) {
	if path == "" {
		return
	}

	appendImage(gallery, host+path)
}

func appendImage(gallery *payload.Array, url string) {
	img := payload.NewObject().SetString("url", url)
	if gallery.Len() == 0 {
		img.SetRaw("types", imageTypeTags)
	}

	gallery.Append(img)
}

// video emits the {id, url} fragment for the first populated video field.
// Only two providers translate to catalog URLs; anything else aborts the
// product.
func (b *Builder) video(obj *schema.Object) (*payload.Object, error) {
	for _, def := range obj.Class.Definitions() {
		if def.Type != schema.FieldVideo {
			continue
		}

		value, ok := obj.Field(def.Name)
		if !ok {
			return nil, nil
		}

		v, ok := value.(*schema.Video)
		if !ok || v == nil || v.ID == "" {
			return nil, nil
		}

		var url string
		switch v.Provider {
		case schema.VideoProviderYouTube:
			url = "https://www.youtube.com/watch?v=" + v.ID
		case schema.VideoProviderVimeo:
			url = "https://vimeo.com/" + v.ID
		default:
			return nil, &ValidationError{
				Message: fmt.Sprintf("%s videos are not supported by the catalog, remove this video to continue", v.Provider),
			}
		}

		return payload.NewObject().SetString("id", v.ID).SetString("url", url), nil
	}

	return nil, nil
}
