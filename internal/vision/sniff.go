package vision

import "net/http"

// allowedImageTypes is the set of MIME types accepted for note scans.
// net/http.DetectContentType handles JPEG, PNG, and GIF via magic-byte
// sniffing; WebP is detected separately because the WHATWG sniff spec (and
// therefore the stdlib) has no WebP signature.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
}

func isWebP(data []byte) bool {
	return len(data) >= 12 &&
		string(data[0:4]) == "RIFF" &&
		string(data[8:12]) == "WEBP"
}

// SniffMIME returns the detected MIME type and true if data is an accepted
// image format, or ("", false) otherwise.
func SniffMIME(data []byte) (string, bool) {
	if isWebP(data) {
		return "image/webp", true
	}
	mime := http.DetectContentType(data)
	if allowedImageTypes[mime] {
		return mime, true
	}
	return "", false
}
