package flashdeck

// FlashCard is the core content type served by the cards API. Cards carry a
// phrase, its definition, a category used for filtering, and an optional
// video link.
type FlashCard struct {
	ID          int64  `json:"id"`
	Phrase      string `json:"phrase"`
	Category    string `json:"category"`
	Definition  string `json:"definition"`
	YoutubeLink string `json:"youtubeLink,omitempty"`
}
