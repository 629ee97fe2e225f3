package stores

import (
	"context"
	"net/http"
	"strings"
	"time"

	"ludoadmin/models"
	"ludoadmin/notify"
	"ludoadmin/services"
)

const (
	KeyAds       = "ads"
	KeyAdUpload  = "adUpload"
	KeyAdDelete  = "adDelete"
	KeyAdsSave   = "adsSave"
	KeySocialAds = "socialLinks"
)

// AdsStore manages the in-app ad images and the social links shown to players.
type AdsStore struct {
	*base

	images models.AdImages
	links  models.SocialLinks
}

func NewAdsStore(api *services.Client, notifier *notify.Notifier, now func() time.Time) *AdsStore {
	return &AdsStore{
		base:  newBase("Ads", api, notifier, now, KeyAds, KeyAdUpload, KeyAdDelete, KeyAdsSave, KeySocialAds),
		links: emptySocialLinks(),
	}
}

func emptySocialLinks() models.SocialLinks {
	links := make(models.SocialLinks, len(models.SocialPlatforms))
	for _, p := range models.SocialPlatforms {
		links[p] = ""
	}
	return links
}

// FetchAds loads every slot. A 404 means nothing has been configured yet.
func (s *AdsStore) FetchAds(ctx context.Context) error {
	var resp models.AdsResponse
	return s.run(ctx, KeyAds, func(ctx context.Context) error {
		err := s.api.Get(ctx, "/admin/ads", &resp)
		if services.IsNotFound(err) {
			resp = models.AdsResponse{}
			return nil
		}
		return err
	}, func() {
		s.images = resp.Ads.AdImages.Clone()
		s.links = emptySocialLinks()
		for k, v := range resp.Ads.SocialLinks {
			s.links[k] = v
		}
	})
}

// Upload sends files to a slot. Carousel slots take any number of images;
// the board slots take exactly one.
func (s *AdsStore) Upload(ctx context.Context, slot string, files []services.UploadFile) error {
	if !models.IsAdSlot(slot) {
		return s.reject(KeyAdUpload, services.Validationf("adType", "unknown ad slot %q", slot))
	}
	multi := models.IsMultiSlot(slot)
	if !multi && len(files) > 1 {
		return s.reject(KeyAdUpload, services.Validationf("adType", "%s holds a single image", slot))
	}

	endpoint, field := "/admin/ads/upload", "image"
	if multi {
		endpoint, field = "/admin/ads/upload-multiple", "images"
	}

	var resp models.AdUploadResponse
	err := s.mutate(ctx, KeyAdUpload, func(ctx context.Context) error {
		return s.api.Upload(ctx, endpoint, map[string]string{"adType": slot}, field, files, &resp)
	}, func() {
		if multi {
			list := s.images.Multi(slot)
			*list = append(*list, resp.UploadedImages...)
			return
		}
		if resp.UploadedImage != nil {
			img := *resp.UploadedImage
			*s.images.Single(slot) = &img
		}
	})
	if err != nil {
		return err
	}
	s.success("Images uploaded successfully!")
	return nil
}

// DeleteImage removes one image. index is only meaningful for carousel slots.
func (s *AdsStore) DeleteImage(ctx context.Context, slot string, index int) error {
	if !models.IsAdSlot(slot) {
		return s.reject(KeyAdDelete, services.Validationf("adType", "unknown ad slot %q", slot))
	}
	multi := models.IsMultiSlot(slot)
	req := models.AdDeleteRequest{AdType: slot}
	if multi {
		s.mu.RLock()
		n := len(*s.images.Multi(slot))
		s.mu.RUnlock()
		if index < 0 || index >= n {
			return s.reject(KeyAdDelete, services.Validationf("imageIndex", "index %d out of range", index))
		}
		req.ImageIndex = &index
	}

	err := s.mutate(ctx, KeyAdDelete, func(ctx context.Context) error {
		return s.api.Send(ctx, http.MethodDelete, "/admin/ads/delete", req, nil)
	}, func() {
		if multi {
			list := s.images.Multi(slot)
			if index < len(*list) {
				kept := make([]models.AdImage, 0, len(*list)-1)
				kept = append(kept, (*list)[:index]...)
				*list = append(kept, (*list)[index+1:]...)
			}
			return
		}
		*s.images.Single(slot) = nil
	})
	if err != nil {
		return err
	}
	s.success("Image deleted successfully!")
	return nil
}

// SetSocialLink edits one platform's link locally.
func (s *AdsStore) SetSocialLink(platform, link string) error {
	known := false
	for _, p := range models.SocialPlatforms {
		if p == platform {
			known = true
			break
		}
	}
	if !known {
		return services.Validationf("socialLinks", "unknown platform %q", platform)
	}
	s.mu.Lock()
	s.links[platform] = strings.TrimSpace(link)
	s.mu.Unlock()
	return nil
}

func (s *AdsStore) SaveSocialLinks(ctx context.Context) error {
	links := s.SocialLinks()
	err := s.mutate(ctx, KeySocialAds, func(ctx context.Context) error {
		return s.api.Send(ctx, http.MethodPut, "/admin/ads/social-links", models.SocialLinksRequest{SocialLinks: links}, nil)
	}, nil)
	if err != nil {
		return err
	}
	s.success("Social links saved successfully!")
	return nil
}

// SaveAll writes the full ad configuration back.
func (s *AdsStore) SaveAll(ctx context.Context) error {
	images := s.Images()
	err := s.mutate(ctx, KeyAdsSave, func(ctx context.Context) error {
		return s.api.Send(ctx, http.MethodPost, "/admin/ads/save", models.AdsSaveRequest{Ads: images}, nil)
	}, nil)
	if err != nil {
		return err
	}
	s.success("Ads saved successfully!")
	return nil
}

func (s *AdsStore) Images() models.AdImages {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.images.Clone()
}

func (s *AdsStore) SocialLinks() models.SocialLinks {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(models.SocialLinks, len(s.links))
	for k, v := range s.links {
		out[k] = v
	}
	return out
}
