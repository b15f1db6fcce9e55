package api

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/Liban-hassan-noor/eastlify-client/internal/errors"
)

// imageKind tracks which of the three wire states an ImageField is in.
type imageKind int

const (
	imageUnset imageKind = iota
	imageUpload
	imageExisting
	imageClear
)

// ImageField is an image slot in a shop or product form. The backend
// distinguishes three cases on the wire:
//
//   - a new upload is sent as a binary file part
//   - an already-hosted URL is echoed back under an "existing" key so the
//     backend keeps it
//   - an empty string part clears the image
//
// The zero value means "unset": the field is omitted from the form and the
// backend leaves the stored image untouched.
type ImageField struct {
	kind imageKind
	data []byte
	mime string
	url  string
}

// NewUpload creates an upload field from raw image bytes.
func NewUpload(data []byte, mimeType string) ImageField {
	return ImageField{kind: imageUpload, data: data, mime: mimeType}
}

// ExistingURL creates a keep-as-is field for an already-hosted image.
func ExistingURL(url string) ImageField {
	return ImageField{kind: imageExisting, url: url}
}

// ClearImage creates a field that removes the stored image.
func ClearImage() ImageField {
	return ImageField{kind: imageClear}
}

// IsZero reports whether the field is unset.
func (f ImageField) IsZero() bool {
	return f.kind == imageUnset
}

// URL returns the hosted URL for an existing field, empty otherwise.
func (f ImageField) URL() string {
	return f.url
}

// filename derives an upload filename from the part name and MIME type,
// e.g. "profileImage.png".
func (f ImageField) filename(field string) string {
	ext := "bin"
	if i := strings.IndexByte(f.mime, '/'); i >= 0 && i+1 < len(f.mime) {
		ext = f.mime[i+1:]
	}
	return field + "." + ext
}

// ParseDataURL decodes a "data:<mime>;base64,<payload>" URL into an upload
// field. Image pickers hand the client data URLs; the wire wants raw bytes.
func ParseDataURL(s string) (ImageField, error) {
	rest, ok := strings.CutPrefix(s, "data:")
	if !ok {
		return ImageField{}, errors.Validation("not a data URL")
	}

	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return ImageField{}, errors.Validation("malformed data URL")
	}

	mimeType, enc, _ := strings.Cut(meta, ";")
	if enc != "base64" {
		return ImageField{}, errors.Validationf("unsupported data URL encoding %q", enc)
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return ImageField{}, errors.Validation("invalid base64 payload").WithCause(err)
	}

	return NewUpload(data, mimeType), nil
}

// ImageFromString maps the string forms a caller may hold to a field:
// data URLs become uploads, http(s) URLs are kept, and the empty string
// clears the image.
func ImageFromString(s string) (ImageField, error) {
	switch {
	case s == "":
		return ClearImage(), nil
	case strings.HasPrefix(s, "data:"):
		return ParseDataURL(s)
	case strings.HasPrefix(s, "http://"), strings.HasPrefix(s, "https://"):
		return ExistingURL(s), nil
	default:
		return ImageField{}, errors.Validationf("unrecognized image value %q", truncate(s, 32))
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return fmt.Sprintf("%s...", s[:n])
}

// existingKey capitalizes a field name under the "existing" prefix,
// matching the backend convention (profileImage -> existingProfileImage).
func existingKey(field string) string {
	if field == "" {
		return "existing"
	}
	return "existing" + strings.ToUpper(field[:1]) + field[1:]
}
