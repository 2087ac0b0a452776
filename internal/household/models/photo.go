package models

import (
	"encoding/base64"
	"encoding/json"

	"github.com/gabriel-vasile/mimetype"
)

// Photo is the applicant's picture as an opaque blob. The bytes are held and
// forwarded, never decoded.
type Photo struct {
	Filename string
	Data     []byte
}

// ContentType sniffs the MIME type from the leading bytes.
func (p *Photo) ContentType() string {
	if p == nil || len(p.Data) == 0 {
		return ""
	}
	return mimetype.Detect(p.Data).String()
}

// PreviewURL returns the photo as a data URL for display next to the form.
func (p *Photo) PreviewURL() string {
	if p == nil || len(p.Data) == 0 {
		return ""
	}
	return "data:" + p.ContentType() + ";base64," + base64.StdEncoding.EncodeToString(p.Data)
}

// MarshalJSON describes the photo without its bytes.
func (p *Photo) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Filename    string `json:"filename"`
		ContentType string `json:"contentType"`
		Size        int    `json:"size"`
	}{
		Filename:    p.Filename,
		ContentType: p.ContentType(),
		Size:        len(p.Data),
	})
}
