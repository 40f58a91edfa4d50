package model

import "gorm.io/datatypes"

type ContentItemType string

const (
	ContentText        ContentItemType = "text"
	ContentImage       ContentItemType = "image"
	ContentAudio       ContentItemType = "audio"
	ContentVideo       ContentItemType = "video"
	ContentInteractive ContentItemType = "interactive"
	ContentQuestion    ContentItemType = "question"
)

// ContentItem is one ordered step of a module. Item order is significant:
// Progress.CurrentStep and ExerciseResult.ExerciseIndex index into this list,
// so items must never be reordered once any progress exists against them.
type ContentItem struct {
	Type    ContentItemType `json:"type"`
	Title   string          `json:"title,omitempty"`
	Body    string          `json:"body,omitempty"`
	URL     string          `json:"url,omitempty"`
	Options []string        `json:"options,omitempty"`
	// CorrectAnswer is a scalar, or a list when several answers are accepted.
	CorrectAnswer interface{} `json:"correctAnswer,omitempty"`
	Points        int         `json:"points,omitempty"`
}

// Question is a scored quiz question. CorrectAnswer follows the same
// scalar-or-list convention as ContentItem.
type Question struct {
	Text          string      `json:"question"`
	Options       []string    `json:"options"`
	CorrectAnswer interface{} `json:"correctAnswer"`
	Points        int         `json:"points"`
}

// AccessibilityFlags travels with modules and quizzes as a JSON column.
type AccessibilityFlags struct {
	TextToSpeech   bool `json:"textToSpeech"`
	HighContrast   bool `json:"highContrast"`
	SignLanguage   bool `json:"signLanguage"`
	SimplifiedText bool `json:"simplifiedText"`
}

// MediaFile records one uploaded photo or video. Files are write-once and
// referenced by their generated object name.
type MediaFile struct {
	FileName   string `json:"fileName"`
	URL        string `json:"url"`
	MimeType   string `json:"mimeType"`
	Size       int64  `json:"size"`
	UploadedAt int64  `json:"uploadedAt"`
}

// IDList is a set of user ids stored as a JSON column.
type IDList = datatypes.JSONSlice[uint]

func ContainsID(ids []uint, id uint) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
