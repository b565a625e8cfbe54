// Package storage : хранилища содержимого файлов
package storage

import "strconv"

// variantRef : путь превью строится из пути оригинала, ref_<width>
func variantRef(contentRef string, width int) string {
	return contentRef + "_" + strconv.Itoa(width)
}
