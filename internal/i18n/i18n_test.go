package i18n

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type course struct {
	TitleEn string
	TitleDe *string
	TitleAr *string
	Views   int
}

type listing struct {
	course
	DescriptionEn *string
}

func strPtr(s string) *string { return &s }

func TestLocalize(t *testing.T) {
	tests := []struct {
		name   string
		record any
		prefix string
		lang   Language
		want   string
	}{
		{"translation present", course{TitleEn: "Engine Basics", TitleDe: strPtr("Motorengrundlagen")}, "title", German, "Motorengrundlagen"},
		{"translation missing", course{TitleEn: "Engine Basics"}, "title", German, "Engine Basics"},
		{"translation empty", course{TitleEn: "Engine Basics", TitleDe: strPtr("")}, "title", German, "Engine Basics"},
		{"no such column falls back", course{TitleEn: "Engine Basics"}, "title", French, "Engine Basics"},
		{"pointer record", &course{TitleEn: "Brakes", TitleAr: strPtr("الفرامل")}, "title", Arabic, "الفرامل"},
		{"capitalized prefix", course{TitleEn: "Brakes"}, "Title", English, "Brakes"},
		{"embedded struct", listing{course: course{TitleEn: "Trailer", TitleDe: strPtr("Anhänger")}}, "title", German, "Anhänger"},
		{"nil pointer field and nil english", listing{}, "description", German, ""},
		{"non string field", course{Views: 3}, "views", English, ""},
		{"string map", map[string]string{"titleEn": "Truck", "titleEs": "Camión"}, "title", Spanish, "Camión"},
		{"any map fallback", map[string]any{"titleEn": "Truck", "titleFr": nil}, "title", French, "Truck"},
		{"any map pointer value", map[string]any{"titleEn": "Truck", "titleFr": strPtr("Camion")}, "title", French, "Camion"},
		{"nil record", nil, "title", German, ""},
		{"unsupported record", 42, "title", German, ""},
		{"nil pointer record", (*course)(nil), "title", German, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Localize(tt.record, tt.prefix, tt.lang))
		})
	}
}

func TestLanguage(t *testing.T) {
	assert.Equal(t, "De", German.Suffix())
	assert.Equal(t, "En", Language("xx").Suffix())
	assert.Equal(t, RTL, Arabic.Dir())
	assert.Equal(t, LTR, French.Dir())
	assert.Equal(t, "Deutsch", German.NativeName())
	assert.False(t, Language("it").Valid())
}

func TestParse(t *testing.T) {
	tests := []struct {
		in     string
		want   Language
		wantOK bool
	}{
		{"de", German, true},
		{"de-AT", German, true},
		{" ar ", Arabic, true},
		{"it", English, false},
		{"", English, false},
		{"not a tag!", English, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := Parse(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestMatch(t *testing.T) {
	assert.Equal(t, German, Match("de-DE,de;q=0.9,en;q=0.8"))
	assert.Equal(t, French, Match("it-IT", "fr-CA;q=0.8"))
	assert.Equal(t, English, Match("ja"))
	assert.Equal(t, English, Match())
}

func TestContext(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, English, FromContext(ctx))
	assert.Equal(t, Spanish, FromContext(WithLanguage(ctx, Spanish)))
	assert.Equal(t, English, FromContext(WithLanguage(ctx, Language("xx"))))
}
