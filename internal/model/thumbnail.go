package model

// ThumbnailWidths : ширины превью, которые генерирует воркер для каждого изображения
var ThumbnailWidths = []int{500, 250, 100}

func IsThumbnailWidth(width int) bool {
	for _, w := range ThumbnailWidths {
		if w == width {
			return true
		}
	}
	return false
}

// ThumbnailJob : задача на генерацию превью. Кроме двух id ничего не несёт,
// поэтому воркер перечитывает FileRecord сам.
type ThumbnailJob struct {
	UserID  string `json:"userId"`
	FileID  string `json:"fileId"`
	Attempt int    `json:"attempt,omitempty"`
}
