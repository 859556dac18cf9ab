package models

// MediaKind describes how a media reference is rendered
type MediaKind string

const (
	MediaImage         MediaKind = "image"
	MediaInlineVideo   MediaKind = "video"
	MediaEmbeddedVideo MediaKind = "embed"
)

// Media is a display-ready media item
type Media struct {
	Kind     MediaKind `json:"kind"`
	URL      string    `json:"url"`
	Provider string    `json:"provider,omitempty"`
	VideoID  string    `json:"video_id,omitempty"`
}

// ProjectDetail is the resolved view of an open project
type ProjectDetail struct {
	Project  *Project `json:"project"`
	Heading  string   `json:"heading"`
	Thumb    string   `json:"thumbnail,omitempty"`
	Problem  []Media  `json:"problem_media"`
	Solution []Media  `json:"solution_media"`
	Process  []Media  `json:"process_media"`
}
