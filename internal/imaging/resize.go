// Package imaging : превью изображений фиксированной ширины
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

var (
	ErrInvalidWidth = errors.New("ширина должна быть больше нуля")
	ErrEmptyImage   = errors.New("изображение нулевого размера")
)

// Thumbnail : уменьшает изображение до width с сохранением пропорций.
// Изображение уже нужной ширины не увеличивается. Формат сохраняется,
// webp кодируется в png, так как кодировщика webp нет.
func Thumbnail(data []byte, width int) ([]byte, error) {
	if width <= 0 {
		return nil, ErrInvalidWidth
	}

	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("ошибка декодирования изображения: %w", err)
	}

	if bounds := src.Bounds(); bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, ErrEmptyImage
	}

	dst := Resize(src, width)

	var buf bytes.Buffer
	switch format {
	case "jpeg":
		err = jpeg.Encode(&buf, dst, &jpeg.Options{Quality: 85})
	case "gif":
		err = gif.Encode(&buf, dst, nil)
	default:
		err = png.Encode(&buf, dst)
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка кодирования превью %s: %w", format, err)
	}

	return buf.Bytes(), nil
}

// Resize : масштабирование по ширине, высота считается из пропорций и не меньше 1.
// Пустое изображение возвращается как есть.
func Resize(src image.Image, width int) image.Image {
	bounds := src.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return src
	}
	if bounds.Dx() <= width {
		width = bounds.Dx()
	}

	height := bounds.Dy() * width / bounds.Dx()
	if height < 1 {
		height = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
	return dst
}
