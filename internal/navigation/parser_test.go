package navigation

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func testParser() Parser { return NewParser("pulpit") }

func TestParse(t *testing.T) {
	p := testParser()
	tests := []struct {
		name string
		raw  string
		want State
	}{
		{"empty", "", State{Key: "pulpit", Path: "/"}},
		{"bare hash", "#", State{Key: "pulpit", Path: "/"}},
		{"root slash", "#/", State{Key: "pulpit", Path: "/"}},
		{"section", "/klienci", State{Key: "klienci", Path: "/klienci"}},
		{"section with id", "#/klienci/42", State{Key: "klienci", Ref: ID("42"), Path: "/klienci/42"}},
		{"missing leading slash", "konwersacje/nowa", State{Key: "konwersacje", Ref: NewSentinel("nowa"), Path: "/konwersacje/nowa"}},
		{"english new marker", "#/klienci/new", State{Key: "klienci", Ref: NewSentinel("new"), Path: "/klienci/new"}},
		{"trailing slash", "#/zlecenia/", State{Key: "zlecenia", Path: "/zlecenia"}},
		{"repeated slashes", "#//zlecenia//7", State{Key: "zlecenia", Ref: ID("7"), Path: "/zlecenia/7"}},
		{"deep path", "#/zlecenia/42/edytuj", State{Key: "zlecenia", Path: "/zlecenia/42/edytuj", Extra: []string{"42", "edytuj"}}},
		{"unknown section", "#/nieznane", State{Key: "nieznane", Path: "/nieznane"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Parse(tt.raw)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.raw, diff)
			}
		})
	}
}

func TestParseNewMarkerIsNotAnID(t *testing.T) {
	p := testParser()
	st := p.Parse("#/konwersacje/nowa")
	assert.Equal(t, RefNew, st.Ref.Kind)
	assert.Empty(t, st.Ref.ID)

	// Without the marker configured, the same segment is an ordinary id.
	plain := Parser{DefaultKey: "pulpit"}
	st = plain.Parse("#/konwersacje/nowa")
	assert.Equal(t, ID("nowa"), st.Ref)
}

func TestParseMissingIDIsAbsent(t *testing.T) {
	p := testParser()
	for _, raw := range []string{"", "/", "#/klienci", "klienci/", "#/zlecenia/1/2", "#/a/b/c/d"} {
		assert.True(t, p.Parse(raw).Ref.IsAbsent(), "raw=%q", raw)
	}
}

func TestRoundTrip(t *testing.T) {
	p := testParser()
	for _, raw := range []string{"/", "/klienci", "/klienci/42", "/konwersacje/nowa", "/klienci/new", "/zlecenia/42/edytuj"} {
		st := p.Parse(raw)
		assert.Equal(t, raw, p.Format(st), "format(parse(%q))", raw)
		if diff := cmp.Diff(st, p.Parse(p.Format(st))); diff != "" {
			t.Errorf("parse(format(s)) mismatch for %q:\n%s", raw, diff)
		}
	}
}

func TestFormatHandBuiltState(t *testing.T) {
	p := testParser()
	assert.Equal(t, "/klienci/42", p.Format(State{Key: "klienci", Ref: ID("42")}))
	assert.Equal(t, "#/konwersacje/nowa", p.Href(State{Key: "konwersacje", Ref: NewSentinel("nowa")}))
	assert.Equal(t, "/", p.Format(State{}))
}

func TestSegments(t *testing.T) {
	assert.Equal(t, []string{"klienci", "42"}, Segments("#//klienci//42/"))
	assert.Empty(t, Segments("  #  "))
}
