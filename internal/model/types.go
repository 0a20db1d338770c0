package model

// StoreLink is one purchase link for a product. Non-bivolt products carry
// separate 110V/220V links instead of a single URL.
type StoreLink struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	IsNotBivolt bool   `json:"isNotBivolt"`
	URL         string `json:"url"`
	URL110V     string `json:"url110v"`
	URL220V     string `json:"url220v"`
}

type Product struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Stores []StoreLink `json:"stores"`
}

// TaskTemplate is a (key, label) requirement inside a stage. Keys are stable
// identifiers and unique across the whole stages config; labels are free text.
type TaskTemplate struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// Stage is a named phase of the production workflow with an ordered task list.
type Stage struct {
	ID    string         `json:"id"`
	Name  string         `json:"name"`
	Tasks []TaskTemplate `json:"tasks"`
}

// ChecklistItem instantiates a TaskTemplate on a video. Label is a cached copy
// of the template label and is overwritten on every reconciliation.
type ChecklistItem struct {
	Key       string `json:"key"`
	Label     string `json:"label"`
	Completed bool   `json:"completed"`
}

// Video is a single production item. It lives in exactly one of the two
// collections (drafts or published) at a time, keyed by ID.
type Video struct {
	ID                       string          `json:"id"`
	Title                    string          `json:"title"`
	Description              string          `json:"description"`
	Tags                     string          `json:"tags"`
	Script                   string          `json:"script"`
	Thumbnail                string          `json:"thumbnail"`
	Products                 []Product       `json:"products"`
	PostDate                 string          `json:"postDate"`
	Chapters                 string          `json:"chapters"`
	Checklist                []ChecklistItem `json:"checklist"`
	PostPublicationChecklist []ChecklistItem `json:"postPublicationChecklist,omitempty"`
	VideoNumber              int             `json:"videoNumber,omitempty"`
}

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// AppData is the persisted state document. The four field names are an
// external contract shared with backup files and must not change.
type AppData struct {
	Drafts          []Video `json:"drafts"`
	PublishedVideos []Video `json:"publishedVideos"`
	StagesConfig    []Stage `json:"stagesConfig"`
	Theme           string  `json:"theme"`
}

// PostDateLayout is the wire format of Video.PostDate.
const PostDateLayout = "2006-01-02"

func NormalizeTheme(raw string) string {
	if raw == ThemeLight {
		return ThemeLight
	}
	return ThemeDark
}
