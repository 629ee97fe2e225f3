package models

// Ad slots. The adcode slots hold a carousel of images; the board slots hold one.
const (
	AdCode1       = "adcode_1"
	AdCode2       = "adcode_2"
	AdCode3       = "adcode_3"
	AdInGame      = "ingamead"
	AdYellowBoard = "yellowboardad"
	AdRedBoard    = "redboardad"
)

var MultiImageSlots = []string{AdCode1, AdCode2, AdCode3}
var SingleImageSlots = []string{AdInGame, AdYellowBoard, AdRedBoard}

var SocialPlatforms = []string{"facebook", "tiktok", "instagram", "youtube", "telegram"}

// IsMultiSlot reports whether slot accepts several images.
func IsMultiSlot(slot string) bool {
	for _, s := range MultiImageSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// IsAdSlot reports whether slot names a known ad slot.
func IsAdSlot(slot string) bool {
	if IsMultiSlot(slot) {
		return true
	}
	for _, s := range SingleImageSlots {
		if s == slot {
			return true
		}
	}
	return false
}

type AdImages struct {
	AdCode1       []AdImage `json:"adcode_1"`
	AdCode2       []AdImage `json:"adcode_2"`
	AdCode3       []AdImage `json:"adcode_3"`
	InGameAd      *AdImage  `json:"ingamead"`
	YellowBoardAd *AdImage  `json:"yellowboardad"`
	RedBoardAd    *AdImage  `json:"redboardad"`
}

// Multi returns the image list for a carousel slot.
func (a *AdImages) Multi(slot string) *[]AdImage {
	switch slot {
	case AdCode1:
		return &a.AdCode1
	case AdCode2:
		return &a.AdCode2
	case AdCode3:
		return &a.AdCode3
	}
	return nil
}

// Single returns the image pointer for a one-image slot.
func (a *AdImages) Single(slot string) **AdImage {
	switch slot {
	case AdInGame:
		return &a.InGameAd
	case AdYellowBoard:
		return &a.YellowBoardAd
	case AdRedBoard:
		return &a.RedBoardAd
	}
	return nil
}

// Clone copies the slot slices.
func (a AdImages) Clone() AdImages {
	c := a
	c.AdCode1 = append([]AdImage(nil), a.AdCode1...)
	c.AdCode2 = append([]AdImage(nil), a.AdCode2...)
	c.AdCode3 = append([]AdImage(nil), a.AdCode3...)
	return c
}

type SocialLinks map[string]string

type AdsPayload struct {
	AdImages
	SocialLinks SocialLinks `json:"socialLinks,omitempty"`
}

type AdsResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message,omitempty"`
	Ads     AdsPayload `json:"ads"`
}

type AdUploadResponse struct {
	Success        bool      `json:"success"`
	Message        string    `json:"message,omitempty"`
	UploadedImage  *AdImage  `json:"uploadedImage,omitempty"`
	UploadedImages []AdImage `json:"uploadedImages,omitempty"`
}

type AdDeleteRequest struct {
	AdType     string `json:"adType"`
	ImageIndex *int   `json:"imageIndex"`
}

// AckResponse is the {success, message} body most mutation endpoints return.
type AckResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type NotificationRequest struct {
	Title   string `json:"title,omitempty"`
	Message string `json:"message"`
}

// BotUsageStats is served by the messaging bot's /api/stats.
type BotUsageStats map[string]any

type SocialLinksRequest struct {
	SocialLinks SocialLinks `json:"socialLinks"`
}

type AdsSaveRequest struct {
	Ads AdImages `json:"ads"`
}
