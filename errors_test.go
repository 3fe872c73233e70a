package pdffer

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayloadFormatError_Map(t *testing.T) {
	t.Parallel()
	src := map[string]any{"amount": "ten"}
	cause := errors.New("cannot assign string to number")
	err := &PayloadFormatError{Map: src, Err: cause, fromMap: true}
	assert.Contains(t, err.Error(), "pdffer:")
	assert.Contains(t, err.Error(), "map payload")
	assert.Equal(t, src, err.Source())
	require.ErrorIs(t, err, ErrPayloadFormat)
	assert.ErrorIs(t, err, cause)
}

func TestPayloadFormatError_Text(t *testing.T) {
	t.Parallel()
	cause := errors.New("unexpected end of JSON input")
	err := &PayloadFormatError{Text: `{"amount":`, Err: cause}
	assert.Contains(t, err.Error(), "text payload")
	assert.Equal(t, `{"amount":`, err.Source())
	assert.ErrorIs(t, err, ErrPayloadFormat)
}

func TestPayloadFormatError_errorsAs(t *testing.T) {
	t.Parallel()
	wrapped := &PayloadFormatError{Text: "[]", Err: errors.New("not an object")}
	outer := fmt.Errorf("outer: %w", wrapped)

	var fe *PayloadFormatError
	require.ErrorAs(t, outer, &fe)
	assert.Equal(t, "[]", fe.Source())
	assert.ErrorIs(t, outer, ErrPayloadFormat)
}

func TestPayloadFormatError_NilMap(t *testing.T) {
	t.Parallel()
	tmpl := New[receiptPayload](receiptDef)
	err := tmpl.SetPayloadFromMap(nil)
	require.ErrorIs(t, err, ErrPayloadFormat)

	var fe *PayloadFormatError
	require.ErrorAs(t, err, &fe)
	assert.Contains(t, fe.Error(), "map payload", "nil map is still a map failure")
	src, ok := fe.Source().(map[string]any)
	assert.True(t, ok, "source keeps the map entry point's type")
	assert.Nil(t, src)
}

func TestSentinelErrors_Is(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		err    error
		target error
		want   bool
	}{
		{"missing payload", ErrMissingPayload, ErrMissingPayload, true},
		{"payload format", ErrPayloadFormat, ErrPayloadFormat, true},
		{"payload invalid", ErrPayloadInvalid, ErrPayloadInvalid, true},
		{"no renderer", ErrNoRenderer, ErrNoRenderer, true},
		{"render", ErrRender, ErrRender, true},
		{"not found", ErrTemplateNotFound, ErrTemplateNotFound, true},
		{"wrapped missing", fmt.Errorf("wrap: %w", ErrMissingPayload), ErrMissingPayload, true},
		{"wrong target", ErrMissingPayload, ErrRender, false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, errors.Is(tt.err, tt.target))
		})
	}
}
