package rpc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniilsolovey/truck-portal/internal/db"
	"github.com/daniilsolovey/truck-portal/internal/i18n"
	"github.com/daniilsolovey/truck-portal/internal/portal"
)

func ptr[T any](v T) *T { return &v }

func TestNilFilters(t *testing.T) {
	var jf *JobFilter
	assert.NoError(t, jf.Validate())
	assert.Nil(t, jf.ToSearch())
	assert.Equal(t, db.Pager{Limit: db.DefaultLimit}, jf.page().pager())

	var tf *TestMaterialFilter
	assert.NoError(t, tf.Validate())
	assert.Equal(t, i18n.English, tf.language(context.Background()))
}

func TestJobFilterToSearch(t *testing.T) {
	f := &JobFilter{
		Region:         ptr("europe"),
		EmploymentType: ptr("full_time"),
		Page:           Page{Limit: ptr(10), Offset: ptr(30)},
	}
	require.NoError(t, f.Validate())

	search := f.ToSearch()
	require.NotNil(t, search)
	assert.Equal(t, "europe", *search.Region)
	assert.Equal(t, "full_time", *search.EmploymentType)
	assert.Nil(t, search.CategoryID)
	assert.Equal(t, db.Pager{Limit: 10, Offset: 30}, f.page().pager())
}

func TestPageLanguage(t *testing.T) {
	ctx := i18n.WithLanguage(context.Background(), i18n.French)

	assert.Equal(t, i18n.French, Page{}.language(ctx))
	assert.Equal(t, i18n.German, Page{Lang: ptr("de-AT")}.language(ctx))
	assert.Equal(t, i18n.English, Page{}.language(context.Background()))

	l, err := resolveLang(ctx, ptr("ar"))
	require.NoError(t, err)
	assert.Equal(t, i18n.Arabic, l)

	_, err = resolveLang(ctx, ptr("klingon"))
	assert.Error(t, err)
}

func TestNewCourseLocalized(t *testing.T) {
	c := portal.Course{}
	c.ID = 1
	c.TitleEn = "Engine Basics"
	c.TitleDe = ptr("Motorengrundlagen")
	c.DescriptionEn = ptr("Diesel engines from the ground up.")
	c.Category = &portal.CourseCategory{}
	c.Category.NameEn = "Mechanics"

	de := NewCourse(c, i18n.German)
	assert.Equal(t, "Motorengrundlagen", de.Title)
	assert.Equal(t, "Diesel engines from the ground up.", de.Description)
	assert.Equal(t, "Engine Basics", de.TitleEn)
	require.NotNil(t, de.Category)
	assert.Equal(t, "Mechanics", de.Category.Name)

	es := NewCourse(c, i18n.Spanish)
	assert.Equal(t, "Engine Basics", es.Title)

	c.Category = nil
	assert.Nil(t, NewCourse(c, i18n.English).Category)
}

func TestRPCError(t *testing.T) {
	assert.NoError(t, newError(nil))
	assert.Equal(t, ErrUnavailable, rpcError(portal.ErrUnavailable))
	assert.Equal(t, 404, rpcError(portal.ErrNotFound).Code)
	assert.Equal(t, ErrInternal, rpcError(assert.AnError))
	assert.Equal(t, ErrAccessDenied, rpcError(ErrAccessDenied))
}
