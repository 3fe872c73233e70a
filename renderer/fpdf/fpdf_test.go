package fpdf

import (
	"errors"
	"testing"

	"github.com/go-pdf/fpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/nekosoft/pdffer"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type receipt struct {
	Amount float64 `json:"amount"`
	Date   string  `json:"date"`
}

func receiptLayout(doc *fpdf.Fpdf, r receipt) error {
	doc.Cell(0, 10, "Receipt")
	doc.Ln(12)
	doc.Cell(0, 8, r.Date)
	return nil
}

func TestRenderer_Render(t *testing.T) {
	t.Parallel()
	r := New(receiptLayout)
	content, err := r.Render(receipt{Amount: 10, Date: "2024-01-01"})
	require.NoError(t, err)
	require.NotEmpty(t, content)
	assert.Equal(t, "%PDF", string(content[:4]))
}

func TestRenderer_FreshDocumentPerRender(t *testing.T) {
	t.Parallel()
	r := New(receiptLayout)
	first, err := r.Render(receipt{Date: "a"})
	require.NoError(t, err)
	second, err := r.Render(receipt{Date: "a"})
	require.NoError(t, err)
	assert.Equal(t, len(first), len(second), "renders of equal payloads are self-contained")
}

func TestRenderer_LayoutError(t *testing.T) {
	t.Parallel()
	boom := errors.New("bad layout")
	r := New(func(*fpdf.Fpdf, receipt) error { return boom })
	_, err := r.Render(receipt{})
	require.ErrorIs(t, err, boom)
}

func TestRenderer_Options(t *testing.T) {
	t.Parallel()
	r := New(receiptLayout,
		WithOrientation[receipt]("L"),
		WithPageSize[receipt]("Letter"),
		WithFont[receipt]("Courier", 10),
	)
	content, err := r.Render(receipt{Date: "2024-01-01"})
	require.NoError(t, err)
	assert.NotEmpty(t, content)
}

func TestRenderer_AsTemplateRenderer(t *testing.T) {
	t.Parallel()
	tmpl := pdffer.New[receipt](
		pdffer.Definition{Group: "receipts", Name: "simple"},
		pdffer.WithRenderer[receipt](New(receiptLayout)),
	)
	require.NoError(t, tmpl.SetPayloadFromMap(map[string]any{
		"amount": 10,
		"date":   "2024-01-01",
	}))
	ok, err := tmpl.Validate()
	require.NoError(t, err)
	require.True(t, ok)
	require.NoError(t, tmpl.Generate())
	assert.Equal(t, "%PDF", string(tmpl.Content()[:4]))
}

func TestNew_NilLayout(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { New[receipt](nil) })
}
