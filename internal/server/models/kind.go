package models

import (
	"strconv"
	"strings"
)

// FileKind is a coarse classification of a media type, used for listings.
type FileKind string

const (
	KindImage    FileKind = "image"
	KindAudio    FileKind = "audio"
	KindVideo    FileKind = "video"
	KindDocument FileKind = "document"
	KindOther    FileKind = "other"
)

// KindOf classifies a media type such as "image/png".
func KindOf(mediaType string) FileKind {
	mt := strings.ToLower(mediaType)
	switch {
	case mt == "":
		return KindOther
	case strings.HasPrefix(mt, "image/"):
		return KindImage
	case strings.HasPrefix(mt, "audio/"):
		return KindAudio
	case strings.HasPrefix(mt, "video/"):
		return KindVideo
	case mt == "application/pdf", strings.Contains(mt, "text/"), strings.Contains(mt, "document"):
		return KindDocument
	default:
		return KindOther
	}
}

var sizeUnits = []string{"Bytes", "KB", "MB", "GB", "TB"}

// HumanSize formats a byte count with 1024-based units and at most two
// decimals, e.g. 1536 → "1.5 KB".
func HumanSize(bytes int64) string {
	if bytes <= 0 {
		return "0 Bytes"
	}
	v := float64(bytes)
	i := 0
	for v >= 1024 && i < len(sizeUnits)-1 {
		v /= 1024
		i++
	}
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	return s + " " + sizeUnits[i]
}
