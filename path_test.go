package pdffer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodePath(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		group string
		tmpl  string
		want  string
	}{
		{"root group", "", "receipt", "receipt"},
		{"grouped", "invoices", "monthly", "invoices/monthly"},
		{"group with slash", "a/b", "c", "a/b/c"},
		{"name with slash", "grp", "x/y", "grp/x/y"},
		{"empty name", "grp", "", "grp/"},
		{"unicode", "счета", "月次", "счета/月次"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, EncodePath(tt.group, tt.tmpl))
		})
	}
}

func TestDecodePath(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		path      string
		wantGroup string
		wantName  string
	}{
		{"no separator", "receipt", "", "receipt"},
		{"grouped", "invoices/monthly", "invoices", "monthly"},
		{"empty path", "", "", ""},
		{"plain slash is not a separator", "a/b", "", "a/b"},
		{"separator at start", "/name", "", "name"},
		{"first separator wins", "a/b/c", "a", "b/c"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			group, name := DecodePath(tt.path)
			assert.Equal(t, tt.wantGroup, group)
			assert.Equal(t, tt.wantName, name)
		})
	}
}

func TestPathRoundTrip(t *testing.T) {
	t.Parallel()
	groups := []string{"", "g", "invoices", "a/b", "with space", "\x1d", "über"}
	names := []string{"n", "monthly", "x/y", "\x1d", "report 2026"}
	for _, g := range groups {
		for _, n := range names {
			group, name := DecodePath(EncodePath(g, n))
			assert.Equal(t, g, group, "group of (%q,%q)", g, n)
			assert.Equal(t, n, name, "name of (%q,%q)", g, n)
		}
	}
}

func TestDefinition_Path(t *testing.T) {
	t.Parallel()
	def := Definition{Group: "invoices", Name: "monthly"}
	assert.Equal(t, "invoices"+GroupSeparator+"monthly", def.Path())
	assert.Equal(t, "receipt", Definition{Name: "receipt"}.Path())
}

func TestGroupSeparator_NotPlainPrintable(t *testing.T) {
	t.Parallel()
	// The separator brackets a slash with GS control bytes so ordinary
	// identifiers cannot collide with it.
	assert.True(t, strings.Contains(GroupSeparator, "/"))
	assert.Equal(t, byte(0x1d), GroupSeparator[0])
	assert.Equal(t, byte(0x1d), GroupSeparator[len(GroupSeparator)-1])
}
