package db

import (
	"strings"

	"github.com/go-pg/pg/v10/orm"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Pager is a limit/offset window applied after filtering and ordering.
type Pager struct {
	Limit  int
	Offset int
}

// NewPager returns a pager with defaults applied: limit 20, offset 0.
func NewPager(limit, offset *int) Pager {
	p := Pager{Limit: DefaultLimit}
	if limit != nil {
		p.Limit = *limit
	}
	if offset != nil {
		p.Offset = *offset
	}
	return p
}

func (p Pager) Apply(q *orm.Query) *orm.Query {
	limit := p.Limit
	if limit < 1 || limit > MaxLimit {
		limit = DefaultLimit
	}

	offset := p.Offset
	if offset < 0 {
		offset = 0
	}

	return q.Limit(limit).Offset(offset)
}

// escapeLike escapes LIKE wildcards so that user input is matched literally.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// searchPattern returns ILIKE pattern for s and false for blank search.
func searchPattern(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return "", false
	}
	return "%" + escapeLike(v) + "%", true
}

type CourseSearch struct {
	CategoryID *int
	Level      *string
	Search     *string
}

func (cs *CourseSearch) Apply(q *orm.Query) *orm.Query {
	if cs == nil {
		return q
	}
	if cs.CategoryID != nil {
		q.Where(`"t"."categoryId" = ?`, *cs.CategoryID)
	}
	if cs.Level != nil {
		q.Where(`"t"."level" = ?`, *cs.Level)
	}
	if p, ok := searchPattern(cs.Search); ok {
		q.Where(`"t"."titleEn" ILIKE ?`, p)
	}
	return q
}

type JobSearch struct {
	CategoryID      *int
	Region          *string
	EmploymentType  *string
	ExperienceLevel *string
	Country         *string
	Search          *string
}

func (js *JobSearch) Apply(q *orm.Query) *orm.Query {
	if js == nil {
		return q
	}
	if js.CategoryID != nil {
		q.Where(`"t"."categoryId" = ?`, *js.CategoryID)
	}
	if js.Region != nil {
		q.Where(`"t"."region" = ?`, *js.Region)
	}
	if js.EmploymentType != nil {
		q.Where(`"t"."employmentType" = ?`, *js.EmploymentType)
	}
	if js.ExperienceLevel != nil {
		q.Where(`"t"."experienceLevel" = ?`, *js.ExperienceLevel)
	}
	if js.Country != nil {
		q.Where(`"t"."country" = ?`, *js.Country)
	}
	if p, ok := searchPattern(js.Search); ok {
		q.Where(`"t"."titleEn" ILIKE ?`, p)
	}
	return q
}

type ListingSearch struct {
	CategoryID *int
	Condition  *string
	Status     *string
	Country    *string
	MinPrice   *float64
	MaxPrice   *float64
	Search     *string
}

func (ls *ListingSearch) Apply(q *orm.Query) *orm.Query {
	if ls == nil {
		return q
	}
	if ls.CategoryID != nil {
		q.Where(`"t"."categoryId" = ?`, *ls.CategoryID)
	}
	if ls.Condition != nil {
		q.Where(`"t"."condition" = ?`, *ls.Condition)
	}
	if ls.Status != nil {
		q.Where(`"t"."status" = ?`, *ls.Status)
	}
	if ls.Country != nil {
		q.Where(`"t"."country" = ?`, *ls.Country)
	}
	if ls.MinPrice != nil {
		q.Where(`"t"."price" >= ?`, *ls.MinPrice)
	}
	if ls.MaxPrice != nil {
		q.Where(`"t"."price" <= ?`, *ls.MaxPrice)
	}
	if p, ok := searchPattern(ls.Search); ok {
		q.Where(`"t"."titleEn" ILIKE ?`, p)
	}
	return q
}

type ArticleSearch struct {
	CategoryID   *int
	ArticleType  *string
	Manufacturer *string
	Search       *string
}

func (as *ArticleSearch) Apply(q *orm.Query) *orm.Query {
	if as == nil {
		return q
	}
	if as.CategoryID != nil {
		q.Where(`"t"."categoryId" = ?`, *as.CategoryID)
	}
	if as.ArticleType != nil {
		q.Where(`"t"."articleType" = ?`, *as.ArticleType)
	}
	if as.Manufacturer != nil {
		q.Where(`"t"."manufacturer" = ?`, *as.Manufacturer)
	}
	if p, ok := searchPattern(as.Search); ok {
		q.Where(`"t"."titleEn" ILIKE ?`, p)
	}
	return q
}

// LicenseGuideSearch filters license requirements. Region belongs to the license type.
type LicenseGuideSearch struct {
	Region        *string
	Country       *string
	LicenseTypeID *int
}

func (ls *LicenseGuideSearch) Apply(q *orm.Query) *orm.Query {
	if ls == nil {
		return q
	}
	if ls.Region != nil {
		q.Where(`"t"."licenseTypeId" IN (SELECT "licenseTypeId" FROM "licenseTypes" WHERE "region" = ?)`, *ls.Region)
	}
	if ls.Country != nil {
		q.Where(`"t"."country" = ?`, *ls.Country)
	}
	if ls.LicenseTypeID != nil {
		q.Where(`"t"."licenseTypeId" = ?`, *ls.LicenseTypeID)
	}
	return q
}

type SchoolSearch struct {
	Region  *string
	Country *string
	Search  *string
}

func (ss *SchoolSearch) Apply(q *orm.Query) *orm.Query {
	if ss == nil {
		return q
	}
	if ss.Region != nil {
		q.Where(`"t"."region" = ?`, *ss.Region)
	}
	if ss.Country != nil {
		q.Where(`"t"."country" = ?`, *ss.Country)
	}
	if p, ok := searchPattern(ss.Search); ok {
		q.Where(`"t"."name" ILIKE ?`, p)
	}
	return q
}

type LessonSearch struct {
	CategoryID *int
	Difficulty *string
	Search     *string
}

func (ls *LessonSearch) Apply(q *orm.Query) *orm.Query {
	if ls == nil {
		return q
	}
	if ls.CategoryID != nil {
		q.Where(`"t"."categoryId" = ?`, *ls.CategoryID)
	}
	if ls.Difficulty != nil {
		q.Where(`"t"."difficulty" = ?`, *ls.Difficulty)
	}
	if p, ok := searchPattern(ls.Search); ok {
		q.Where(`"t"."titleEn" ILIKE ?`, p)
	}
	return q
}

type TestMaterialSearch struct {
	LicenseTypeID *int
	Country       *string
}

func (ts *TestMaterialSearch) Apply(q *orm.Query) *orm.Query {
	if ts == nil {
		return q
	}
	if ts.LicenseTypeID != nil {
		q.Where(`"t"."licenseTypeId" = ?`, *ts.LicenseTypeID)
	}
	if ts.Country != nil {
		q.Where(`"t"."country" = ?`, *ts.Country)
	}
	return q
}
