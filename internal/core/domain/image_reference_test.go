package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestEncodeImageRef(t *testing.T) {
	t.Run("absent reference encodes to nil", func(t *testing.T) {
		encoded, err := EncodeImageRef(nil)
		require.NoError(t, err)
		assert.Nil(t, encoded)
	})

	t.Run("round trip preserves all fields", func(t *testing.T) {
		ref := &ImageReference{
			PublicID: "estate/villa-1",
			URL:      "https://cdn.example.com/estate/villa-1.jpg",
			AltText:  strPtr("Front view"),
		}

		encoded, err := EncodeImageRef(ref)
		require.NoError(t, err)
		require.NotNil(t, encoded)

		decoded, err := DecodeImageRef(encoded)
		require.NoError(t, err)
		assert.Equal(t, ref, decoded)
	})

	t.Run("missing alt text stays absent after round trip", func(t *testing.T) {
		ref := &ImageReference{
			PublicID: "estate/villa-2",
			URL:      "https://cdn.example.com/estate/villa-2.jpg",
		}

		encoded, err := EncodeImageRef(ref)
		require.NoError(t, err)

		decoded, err := DecodeImageRef(encoded)
		require.NoError(t, err)
		assert.Nil(t, decoded.AltText)
	})

	t.Run("invalid reference is rejected", func(t *testing.T) {
		tests := []struct {
			name string
			ref  ImageReference
		}{
			{"empty publicId", ImageReference{URL: "https://cdn.example.com/a.jpg"}},
			{"relative url", ImageReference{PublicID: "a", URL: "/images/a.jpg"}},
			{"empty url", ImageReference{PublicID: "a"}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := EncodeImageRef(&tt.ref)
				assert.Error(t, err)
			})
		}
	})
}

func TestDecodeImageRef(t *testing.T) {
	t.Run("nil decodes to absent", func(t *testing.T) {
		decoded, err := DecodeImageRef(nil)
		require.NoError(t, err)
		assert.Nil(t, decoded)
	})

	t.Run("malformed payloads yield MalformedReferenceError", func(t *testing.T) {
		tests := []struct {
			name string
			raw  string
		}{
			{"not json", "not-json-at-all"},
			{"empty string", ""},
			{"valid json invalid reference", `{"publicId":"","url":"nope"}`},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := DecodeImageRef(strPtr(tt.raw))
				var malformed *MalformedReferenceError
				require.ErrorAs(t, err, &malformed)
				assert.Equal(t, tt.raw, malformed.Raw)
			})
		}
	})

	t.Run("cause is unwrappable", func(t *testing.T) {
		_, err := DecodeImageRef(strPtr("{broken"))
		var malformed *MalformedReferenceError
		require.ErrorAs(t, err, &malformed)
		assert.Error(t, errors.Unwrap(malformed))
	})
}

func TestEncodeImageRefList(t *testing.T) {
	t.Run("nil list encodes to nil", func(t *testing.T) {
		encoded, err := EncodeImageRefList(nil)
		require.NoError(t, err)
		assert.Nil(t, encoded)
	})

	t.Run("empty list stays distinguishable from nil", func(t *testing.T) {
		encoded, err := EncodeImageRefList([]ImageReference{})
		require.NoError(t, err)
		require.NotNil(t, encoded)
		assert.Equal(t, "[]", *encoded)
	})

	t.Run("round trip preserves order", func(t *testing.T) {
		refs := []ImageReference{
			{PublicID: "a", URL: "https://cdn.example.com/a.jpg"},
			{PublicID: "b", URL: "https://cdn.example.com/b.jpg", AltText: strPtr("b")},
			{PublicID: "c", URL: "https://cdn.example.com/c.jpg"},
		}

		encoded, err := EncodeImageRefList(refs)
		require.NoError(t, err)

		decoded, err := DecodeImageRefList(encoded)
		require.NoError(t, err)
		assert.Equal(t, refs, decoded)
	})

	t.Run("one invalid entry fails the whole list", func(t *testing.T) {
		refs := []ImageReference{
			{PublicID: "a", URL: "https://cdn.example.com/a.jpg"},
			{PublicID: "", URL: "https://cdn.example.com/b.jpg"},
		}
		_, err := EncodeImageRefList(refs)
		assert.Error(t, err)
	})
}

func TestDecodeImageRefList(t *testing.T) {
	t.Run("nil decodes to empty non-nil list", func(t *testing.T) {
		decoded, err := DecodeImageRefList(nil)
		require.NoError(t, err)
		require.NotNil(t, decoded)
		assert.Empty(t, decoded)
	})

	t.Run("json null decodes to empty non-nil list", func(t *testing.T) {
		decoded, err := DecodeImageRefList(strPtr("null"))
		require.NoError(t, err)
		require.NotNil(t, decoded)
		assert.Empty(t, decoded)
	})

	t.Run("malformed list yields MalformedReferenceError", func(t *testing.T) {
		_, err := DecodeImageRefList(strPtr(`[{"publicId":""}]`))
		var malformed *MalformedReferenceError
		assert.ErrorAs(t, err, &malformed)
	})
}
