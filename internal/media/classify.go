package media

import (
	"regexp"

	"github.com/ramchaes/portfolio/internal/models"
)

// Embedded video providers
const (
	ProviderYouTube      = "youtube"
	ProviderVimeo        = "vimeo"
	ProviderDrivePreview = "drive-preview"
)

var (
	mp4Pattern     = regexp.MustCompile(`(?i)\.mp4(?:[?#].*)?$`)
	youtubePattern = regexp.MustCompile(`(?i)(?:youtube(?:-nocookie)?\.com/(?:watch\?(?:[^#]*&)?v=|shorts/|embed/)|youtu\.be/)([A-Za-z0-9_-]{11})`)
	vimeoPattern   = regexp.MustCompile(`(?i)vimeo\.com/(?:video/)?(\d+)`)
	drivePattern   = regexp.MustCompile(`(?i)drive\.google\.com/file/d/([A-Za-z0-9_-]+)`)
)

// Classification describes what a media reference points at
type Classification struct {
	Kind     models.MediaKind
	Provider string
	ID       string
	EmbedURL string
}

// IsVideo reports whether the reference is an inline or embedded video
func (c Classification) IsVideo() bool {
	return c.Kind == models.MediaInlineVideo || c.Kind == models.MediaEmbeddedVideo
}

// Classify determines whether ref is an image, an mp4 file or a hosted video
func Classify(ref string) Classification {
	if mp4Pattern.MatchString(ref) {
		return Classification{Kind: models.MediaInlineVideo}
	}
	if m := youtubePattern.FindStringSubmatch(ref); m != nil {
		return embedded(ProviderYouTube, m[1], "https://www.youtube-nocookie.com/embed/"+m[1])
	}
	if m := vimeoPattern.FindStringSubmatch(ref); m != nil {
		return embedded(ProviderVimeo, m[1], "https://player.vimeo.com/video/"+m[1])
	}
	if m := drivePattern.FindStringSubmatch(ref); m != nil {
		return embedded(ProviderDrivePreview, m[1], "https://drive.google.com/file/d/"+m[1]+"/preview")
	}
	return Classification{Kind: models.MediaImage}
}

func embedded(provider, id, embedURL string) Classification {
	return Classification{
		Kind:     models.MediaEmbeddedVideo,
		Provider: provider,
		ID:       id,
		EmbedURL: embedURL,
	}
}
