package media_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramchaes/portfolio/internal/media"
	"github.com/ramchaes/portfolio/internal/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		ref      string
		kind     models.MediaKind
		provider string
		id       string
		embed    string
	}{
		{name: "mp4 file", ref: "clip.mp4", kind: models.MediaInlineVideo},
		{name: "mp4 with query", ref: "https://cdn.example.com/clip.mp4?t=3", kind: models.MediaInlineVideo},
		{name: "mp4 uppercase", ref: "DEMO.MP4", kind: models.MediaInlineVideo},
		{name: "mp4 in the middle is not video", ref: "clip.mp4.png", kind: models.MediaImage},
		{
			name: "youtu.be", ref: "https://youtu.be/dQw4w9WgXcQ",
			kind: models.MediaEmbeddedVideo, provider: media.ProviderYouTube, id: "dQw4w9WgXcQ",
			embed: "https://www.youtube-nocookie.com/embed/dQw4w9WgXcQ",
		},
		{
			name: "youtube watch", ref: "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=10s",
			kind: models.MediaEmbeddedVideo, provider: media.ProviderYouTube, id: "dQw4w9WgXcQ",
			embed: "https://www.youtube-nocookie.com/embed/dQw4w9WgXcQ",
		},
		{
			name: "youtube watch v not first", ref: "https://www.youtube.com/watch?feature=share&v=dQw4w9WgXcQ",
			kind: models.MediaEmbeddedVideo, provider: media.ProviderYouTube, id: "dQw4w9WgXcQ",
			embed: "https://www.youtube-nocookie.com/embed/dQw4w9WgXcQ",
		},
		{
			name: "youtube shorts", ref: "https://youtube.com/shorts/abcdefghijk",
			kind: models.MediaEmbeddedVideo, provider: media.ProviderYouTube, id: "abcdefghijk",
			embed: "https://www.youtube-nocookie.com/embed/abcdefghijk",
		},
		{
			name: "vimeo", ref: "https://vimeo.com/76979871",
			kind: models.MediaEmbeddedVideo, provider: media.ProviderVimeo, id: "76979871",
			embed: "https://player.vimeo.com/video/76979871",
		},
		{
			name: "vimeo player", ref: "https://player.vimeo.com/video/76979871",
			kind: models.MediaEmbeddedVideo, provider: media.ProviderVimeo, id: "76979871",
			embed: "https://player.vimeo.com/video/76979871",
		},
		{
			name: "drive preview", ref: "https://drive.google.com/file/d/1AbC-dEf_9/view?usp=sharing",
			kind: models.MediaEmbeddedVideo, provider: media.ProviderDrivePreview, id: "1AbC-dEf_9",
			embed: "https://drive.google.com/file/d/1AbC-dEf_9/preview",
		},
		{name: "png", ref: "photo.png", kind: models.MediaImage},
		{name: "empty", ref: "", kind: models.MediaImage},
		{name: "youtube channel is an image link", ref: "https://www.youtube.com/@someone", kind: models.MediaImage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := media.Classify(tt.ref)
			assert.Equal(t, tt.kind, got.Kind)
			assert.Equal(t, tt.provider, got.Provider)
			assert.Equal(t, tt.id, got.ID)
			assert.Equal(t, tt.embed, got.EmbedURL)
		})
	}
}

func TestClassify_YouTubeIDLength(t *testing.T) {
	got := media.Classify("https://youtu.be/dQw4w9WgXcQ")
	require.True(t, got.IsVideo())
	require.Len(t, got.ID, 11)
	require.Equal(t, "dQw4w9WgXcQ", got.ID)
}

func TestDescribeSolution_SingleVideoOrDualImage(t *testing.T) {
	r := media.NewResolver("/Portfolio/", media.DefaultLegacyFolder)

	t.Run("video first is shown alone", func(t *testing.T) {
		got := r.DescribeSolution([]string{"https://vimeo.com/123", "after.png"})
		require.Len(t, got, 1)
		assert.Equal(t, models.MediaEmbeddedVideo, got[0].Kind)
		assert.Equal(t, "https://player.vimeo.com/video/123", got[0].URL)
	})

	t.Run("mp4 first is resolved against the base", func(t *testing.T) {
		got := r.DescribeSolution([]string{"demo.mp4", "after.png"})
		require.Len(t, got, 1)
		assert.Equal(t, models.Media{Kind: models.MediaInlineVideo, URL: "/Portfolio/demo.mp4"}, got[0])
	})

	t.Run("video second is treated as image", func(t *testing.T) {
		got := r.DescribeSolution([]string{"before.png", "demo.mp4"})
		require.Len(t, got, 2)
		assert.Equal(t, models.MediaImage, got[0].Kind)
		assert.Equal(t, models.MediaImage, got[1].Kind)
		assert.Equal(t, "/Portfolio/demo.mp4", got[1].URL)
	})

	t.Run("empty", func(t *testing.T) {
		require.Empty(t, r.DescribeSolution(nil))
	})
}
