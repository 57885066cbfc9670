package db

import (
	"testing"

	"github.com/go-pg/pg/v10/orm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func selectSQL(t *testing.T, q *orm.Query) string {
	t.Helper()
	b, err := orm.NewSelectQuery(q).AppendQuery(new(orm.Formatter), nil)
	require.NoError(t, err)
	return string(b)
}

func TestEscapeLike(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"engine", "engine"},
		{"100%", `100\%`},
		{"a_b", `a\_b`},
		{`c:\path`, `c:\\path`},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, escapeLike(tt.in))
		})
	}
}

func TestSearchPattern(t *testing.T) {
	_, ok := searchPattern(nil)
	assert.False(t, ok)

	_, ok = searchPattern(ptr("   "))
	assert.False(t, ok)

	p, ok := searchPattern(ptr("  brake_pad "))
	assert.True(t, ok)
	assert.Equal(t, `%brake\_pad%`, p)
}

func TestNewPager(t *testing.T) {
	p := NewPager(nil, nil)
	assert.Equal(t, Pager{Limit: DefaultLimit}, p)

	p = NewPager(ptr(50), ptr(100))
	assert.Equal(t, Pager{Limit: 50, Offset: 100}, p)
}

func TestPagerApply(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		sql := selectSQL(t, NewPager(nil, nil).Apply(orm.NewQuery(nil, &[]Job{})))
		assert.Contains(t, sql, "LIMIT 20")
		assert.NotContains(t, sql, "OFFSET")
	})

	t.Run("explicit window", func(t *testing.T) {
		sql := selectSQL(t, Pager{Limit: 10, Offset: 40}.Apply(orm.NewQuery(nil, &[]Job{})))
		assert.Contains(t, sql, "LIMIT 10")
		assert.Contains(t, sql, "OFFSET 40")
	})

	t.Run("out of range limit falls back", func(t *testing.T) {
		sql := selectSQL(t, Pager{Limit: 1000}.Apply(orm.NewQuery(nil, &[]Job{})))
		assert.Contains(t, sql, "LIMIT 20")
	})
}

func TestJobSearchApply(t *testing.T) {
	t.Run("nil search adds no conditions", func(t *testing.T) {
		var js *JobSearch
		sql := selectSQL(t, js.Apply(orm.NewQuery(nil, &[]Job{})))
		assert.NotContains(t, sql, "WHERE")
	})

	t.Run("all filters are conjunctive", func(t *testing.T) {
		js := &JobSearch{
			CategoryID:      ptr(3),
			Region:          ptr("europe"),
			EmploymentType:  ptr("full_time"),
			ExperienceLevel: ptr("senior"),
			Country:         ptr("Germany"),
			Search:          ptr("driver"),
		}
		sql := selectSQL(t, js.Apply(orm.NewQuery(nil, &[]Job{})))

		assert.Contains(t, sql, `"t"."categoryId" = 3`)
		assert.Contains(t, sql, `"t"."region" = 'europe'`)
		assert.Contains(t, sql, `"t"."employmentType" = 'full_time'`)
		assert.Contains(t, sql, `"t"."experienceLevel" = 'senior'`)
		assert.Contains(t, sql, `"t"."country" = 'Germany'`)
		assert.Contains(t, sql, `"t"."titleEn" ILIKE '%driver%'`)
		assert.NotContains(t, sql, " OR ")
	})

	t.Run("blank search is ignored", func(t *testing.T) {
		sql := selectSQL(t, (&JobSearch{Search: ptr(" ")}).Apply(orm.NewQuery(nil, &[]Job{})))
		assert.NotContains(t, sql, "ILIKE")
	})
}

func TestListingSearchApply(t *testing.T) {
	ls := &ListingSearch{MinPrice: ptr(1000.0), MaxPrice: ptr(5000.0), Condition: ptr("good")}
	sql := selectSQL(t, ls.Apply(orm.NewQuery(nil, &[]Listing{})))

	assert.Contains(t, sql, `"t"."price" >= 1000`)
	assert.Contains(t, sql, `"t"."price" <= 5000`)
	assert.Contains(t, sql, `"t"."condition" = 'good'`)
}

func TestLicenseGuideSearchApply(t *testing.T) {
	ls := &LicenseGuideSearch{Region: ptr("north_america")}
	sql := selectSQL(t, ls.Apply(orm.NewQuery(nil, &[]LicenseRequirement{})))

	assert.Contains(t, sql, `"t"."licenseTypeId" IN (SELECT "licenseTypeId" FROM "licenseTypes" WHERE "region" = 'north_america')`)
}

func TestSchoolSearchApply(t *testing.T) {
	ss := &SchoolSearch{Search: ptr("nord"), Country: ptr("Germany")}
	sql := selectSQL(t, ss.Apply(orm.NewQuery(nil, &[]DrivingSchool{})))

	assert.Contains(t, sql, `"t"."name" ILIKE '%nord%'`)
	assert.Contains(t, sql, `"t"."country" = 'Germany'`)
	assert.NotContains(t, sql, `"titleEn"`)
}
