package domain

import (
	"encoding/json"
	"fmt"
	"net/url"
)

// ImageReference points at an externally hosted image. It is a value type:
// two references with equal fields are the same reference.
//
// AltText is a pointer so that "no alt text" survives a codec round trip
// distinct from an empty alt text.
type ImageReference struct {
	PublicID string  `json:"publicId"`
	URL      string  `json:"url"`
	AltText  *string `json:"altText,omitempty"`
}

// Validate checks the ImageReference invariants: non-empty public id and a
// well-formed absolute URL.
func (r ImageReference) Validate() error {
	if r.PublicID == "" {
		return fmt.Errorf("image reference: publicId is required")
	}
	u, err := url.Parse(r.URL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("image reference: url %q is not an absolute URL", r.URL)
	}
	return nil
}

// The codec below (de)serializes image references to the nullable text
// columns they are persisted in. SQL NULL is the explicit absent-value
// marker, so "absent" can never be confused with an empty string left
// behind by legacy data.

// EncodeImageRef encodes a single reference, or returns nil for an absent one.
func EncodeImageRef(ref *ImageReference) (*string, error) {
	if ref == nil {
		return nil, nil
	}
	if err := ref.Validate(); err != nil {
		return nil, err
	}
	raw, err := json.Marshal(ref)
	if err != nil {
		return nil, fmt.Errorf("encode image reference: %w", err)
	}
	s := string(raw)
	return &s, nil
}

// DecodeImageRef is the inverse of EncodeImageRef. A non-nil value that
// cannot be parsed back into a valid reference yields a
// *MalformedReferenceError; callers on read paths may choose to treat that
// as "no image" instead of failing the whole read.
func DecodeImageRef(raw *string) (*ImageReference, error) {
	if raw == nil {
		return nil, nil
	}
	var ref ImageReference
	if err := json.Unmarshal([]byte(*raw), &ref); err != nil {
		return nil, &MalformedReferenceError{Raw: *raw, Cause: err}
	}
	if err := ref.Validate(); err != nil {
		return nil, &MalformedReferenceError{Raw: *raw, Cause: err}
	}
	return &ref, nil
}

// EncodeImageRefList encodes an ordered gallery. A nil slice (never set)
// encodes to nil; an empty slice encodes to an empty JSON array, so the two
// remain distinguishable in storage.
func EncodeImageRefList(refs []ImageReference) (*string, error) {
	if refs == nil {
		return nil, nil
	}
	for i := range refs {
		if err := refs[i].Validate(); err != nil {
			return nil, fmt.Errorf("image %d: %w", i, err)
		}
	}
	raw, err := json.Marshal(refs)
	if err != nil {
		return nil, fmt.Errorf("encode image reference list: %w", err)
	}
	s := string(raw)
	return &s, nil
}

// DecodeImageRefList is the inverse of EncodeImageRefList. A never-set
// column decodes to an empty, non-nil sequence.
func DecodeImageRefList(raw *string) ([]ImageReference, error) {
	if raw == nil {
		return []ImageReference{}, nil
	}
	var refs []ImageReference
	if err := json.Unmarshal([]byte(*raw), &refs); err != nil {
		return nil, &MalformedReferenceError{Raw: *raw, Cause: err}
	}
	if refs == nil {
		refs = []ImageReference{}
	}
	for i := range refs {
		if err := refs[i].Validate(); err != nil {
			return nil, &MalformedReferenceError{Raw: *raw, Cause: err}
		}
	}
	return refs, nil
}
