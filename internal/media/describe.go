package media

import "github.com/ramchaes/portfolio/internal/models"

// Describe resolves and classifies a single reference
func (r *Resolver) Describe(ref string) models.Media {
	c := Classify(ref)
	if c.Kind == models.MediaEmbeddedVideo {
		return models.Media{
			Kind:     c.Kind,
			URL:      c.EmbedURL,
			Provider: c.Provider,
			VideoID:  c.ID,
		}
	}
	return models.Media{Kind: c.Kind, URL: r.Resolve(ref)}
}

// DescribeImages resolves every reference as an image without classifying it
func (r *Resolver) DescribeImages(refs []string) []models.Media {
	out := make([]models.Media, 0, len(refs))
	for _, ref := range refs {
		out = append(out, models.Media{Kind: models.MediaImage, URL: r.Resolve(ref)})
	}
	return out
}

// DescribeSolution applies the single-video-or-dual-image rule: only the
// first reference is checked for video, and a video is shown alone.
func (r *Resolver) DescribeSolution(refs []string) []models.Media {
	if len(refs) == 0 {
		return []models.Media{}
	}
	first := r.Describe(refs[0])
	if first.Kind != models.MediaImage {
		return []models.Media{first}
	}
	return r.DescribeImages(refs)
}
