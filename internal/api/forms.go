package api

import (
	"bytes"
	"encoding/json/v2"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strconv"
	"strings"
)

// form accumulates multipart fields for the shop and product endpoints.
// Unset optional fields are omitted entirely so the backend can tell
// "leave unchanged" from "set to empty".
type form struct {
	buf *bytes.Buffer
	w   *multipart.Writer
	err error
}

func newForm() *form {
	buf := &bytes.Buffer{}
	return &form{buf: buf, w: multipart.NewWriter(buf)}
}

func (f *form) field(name, value string) {
	if f.err != nil {
		return
	}
	f.err = f.w.WriteField(name, value)
}

func (f *form) optString(name string, value *string) {
	if value != nil {
		f.field(name, *value)
	}
}

func (f *form) optFloat(name string, value *float64) {
	if value != nil {
		f.field(name, strconv.FormatFloat(*value, 'f', -1, 64))
	}
}

func (f *form) optInt(name string, value *int) {
	if value != nil {
		f.field(name, strconv.Itoa(*value))
	}
}

func (f *form) optBool(name string, value *bool) {
	if value != nil {
		f.field(name, strconv.FormatBool(*value))
	}
}

// optJSON writes a field whose value is JSON-encoded (tags, categories,
// workingHours all travel this way).
func (f *form) optJSON(name string, value any) {
	if f.err != nil || value == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		f.err = fmt.Errorf("encode %s: %w", name, err)
		return
	}
	f.field(name, string(data))
}

// image writes a single-image slot (shop profile/cover) following the
// new/existing/clear convention.
func (f *form) image(name string, img ImageField) {
	if f.err != nil {
		return
	}
	switch img.kind {
	case imageUnset:
		// Omitted: backend keeps whatever is stored.
	case imageUpload:
		f.filePart(name, img)
	case imageExisting:
		f.field(existingKey(name), img.url)
	case imageClear:
		f.field(name, "")
	}
}

// imageList writes a multi-image slot (product images): uploads become
// "images" file parts, kept URLs become "existingImages" fields.
func (f *form) imageList(name string, imgs []ImageField) {
	for i, img := range imgs {
		if f.err != nil {
			return
		}
		switch img.kind {
		case imageUnset, imageClear:
			// Nothing to send for this slot.
		case imageUpload:
			f.filePart(name, ImageField{
				kind: imageUpload,
				data: img.data,
				mime: img.mime,
				url:  fmt.Sprintf("%s-%d", name, i),
			})
		case imageExisting:
			f.field(existingKey(name), img.url)
		}
	}
}

func (f *form) filePart(name string, img ImageField) {
	filename := img.filename(name)
	if img.url != "" {
		// imageList passes an indexed base name through url.
		filename = ImageField{mime: img.mime}.filename(img.url)
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`,
		escapeQuotes(name), escapeQuotes(filename)))
	h.Set("Content-Type", img.mime)

	part, err := f.w.CreatePart(h)
	if err != nil {
		f.err = err
		return
	}
	if _, err := part.Write(img.data); err != nil {
		f.err = err
	}
}

// close finalizes the form and returns the body and content type.
func (f *form) close() (*bytes.Buffer, string, error) {
	if f.err != nil {
		return nil, "", f.err
	}
	if err := f.w.Close(); err != nil {
		return nil, "", err
	}
	return f.buf, f.w.FormDataContentType(), nil
}

func escapeQuotes(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}
