package ads

import (
	"fmt"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"ludoadmin/helpers"
	"ludoadmin/models"
	"ludoadmin/services"
	"ludoadmin/stores"
)

func view(store *stores.AdsStore) fiber.Map {
	return fiber.Map{
		"adImages":    store.Images(),
		"socialLinks": store.SocialLinks(),
		"loading":     store.LoadingAll(),
		"errors":      store.Errors(),
	}
}

func Get(reg *stores.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		_ = reg.Ads.FetchAds(c.UserContext())
		return helpers.JSONSuccess(c, "Ads retrieved successfully", view(reg.Ads))
	}
}

// Upload forwards the multipart files under "images" (or "image") to the slot.
func Upload(reg *stores.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		slot := c.Params("slot")
		if !models.IsAdSlot(slot) {
			return helpers.JSONErrorStatus(c, fiber.StatusNotFound, "UNKNOWN_AD_SLOT")
		}

		form, err := c.MultipartForm()
		if err != nil {
			return helpers.JSONError(c, "MULTIPART_FORM_REQUIRED")
		}
		headers := make([]*multipart.FileHeader, 0, len(form.File["images"])+len(form.File["image"]))
		headers = append(headers, form.File["images"]...)
		headers = append(headers, form.File["image"]...)
		if len(headers) == 0 {
			return helpers.JSONError(c, "IMAGE_REQUIRED")
		}

		files := make([]services.UploadFile, 0, len(headers))
		for _, h := range headers {
			f, err := h.Open()
			if err != nil {
				return helpers.JSONError(c, fmt.Sprintf("CANNOT_READ_%s", h.Filename))
			}
			defer func(f multipart.File) { _ = f.Close() }(f)
			files = append(files, services.UploadFile{Name: h.Filename, Content: f})
		}

		if err := reg.Ads.Upload(c.UserContext(), slot, files); err != nil {
			return helpers.JSONBackendError(c, err)
		}
		return helpers.JSONSuccess(c, "Images uploaded successfully!", view(reg.Ads))
	}
}

func DeleteImage(reg *stores.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := reg.Ads.DeleteImage(c.UserContext(), c.Params("slot"), c.QueryInt("index", 0)); err != nil {
			return helpers.JSONBackendError(c, err)
		}
		return helpers.JSONSuccess(c, "Image deleted successfully!", view(reg.Ads))
	}
}

type SocialLinksRequest struct {
	SocialLinks models.SocialLinks `json:"socialLinks"`
}

func SaveSocialLinks(reg *stores.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req SocialLinksRequest
		if err := c.BodyParser(&req); err != nil {
			return helpers.JSONError(c, "INVALID_JSON")
		}
		for platform, link := range req.SocialLinks {
			if err := reg.Ads.SetSocialLink(platform, link); err != nil {
				return helpers.JSONBackendError(c, err)
			}
		}
		if err := reg.Ads.SaveSocialLinks(c.UserContext()); err != nil {
			return helpers.JSONBackendError(c, err)
		}
		return helpers.JSONSuccess(c, "Social links saved successfully!", view(reg.Ads))
	}
}

func SaveAll(reg *stores.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := reg.Ads.SaveAll(c.UserContext()); err != nil {
			return helpers.JSONBackendError(c, err)
		}
		return helpers.JSONSuccess(c, "Ads saved successfully!", view(reg.Ads))
	}
}
