package rpc

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/vmkteam/zenrpc/v2"

	"github.com/daniilsolovey/truck-portal/internal/db"
	"github.com/daniilsolovey/truck-portal/internal/i18n"
	"github.com/daniilsolovey/truck-portal/internal/portal"
)

const maxSearchLen = 200

func invalid(field, format string, args ...any) error {
	return zenrpc.NewStringError(http.StatusBadRequest, field+": "+fmt.Sprintf(format, args...))
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func validateID(field string, id *int) error {
	if id != nil && *id <= 0 {
		return invalid(field, "must be positive")
	}
	return nil
}

func validateEnum(field string, v *string, values portal.Enum) error {
	if v != nil && !values.Has(*v) {
		return invalid(field, "must be one of %s", strings.Join(values, ", "))
	}
	return nil
}

func validateSearch(v *string) error {
	if v != nil && utf8.RuneCountInString(*v) > maxSearchLen {
		return invalid("search", "must be at most %d characters", maxSearchLen)
	}
	return nil
}

func validateNotBlank(field string, v *string) error {
	if v != nil && strings.TrimSpace(*v) == "" {
		return invalid(field, "must not be empty")
	}
	return nil
}

// Page is the universal pagination and language part of every list filter.
type Page struct {
	//limit=20 page size, 1..100
	Limit *int `json:"limit,omitempty"`
	//offset=0 number of rows to skip
	Offset *int `json:"offset,omitempty"`
	// Lang selects the language of resolved title and description fields.
	Lang *string `json:"lang,omitempty"`
}

func (p Page) validate() error {
	if p.Limit != nil && (*p.Limit < 1 || *p.Limit > db.MaxLimit) {
		return invalid("limit", "must be between 1 and %d", db.MaxLimit)
	}
	if p.Offset != nil && *p.Offset < 0 {
		return invalid("offset", "must not be negative")
	}
	if p.Lang != nil {
		if _, ok := i18n.Parse(*p.Lang); !ok {
			return invalid("lang", "unsupported language %q", *p.Lang)
		}
	}
	return nil
}

func (p Page) pager() db.Pager {
	return db.NewPager(p.Limit, p.Offset)
}

// language returns the explicit lang or the request language.
func (p Page) language(ctx context.Context) i18n.Language {
	if p.Lang != nil {
		if l, ok := i18n.Parse(*p.Lang); ok {
			return l
		}
	}
	return i18n.FromContext(ctx)
}

type CourseFilter struct {
	CategoryID *int    `json:"categoryId,omitempty"`
	Level      *string `json:"level,omitempty"`
	Search     *string `json:"search,omitempty"`
	Page
}

func (f *CourseFilter) Validate() error {
	if f == nil {
		return nil
	}
	return firstError(
		validateID("categoryId", f.CategoryID),
		validateEnum("level", f.Level, portal.CourseLevels),
		validateSearch(f.Search),
		f.Page.validate(),
	)
}

func (f *CourseFilter) ToSearch() *db.CourseSearch {
	if f == nil {
		return nil
	}
	return &db.CourseSearch{CategoryID: f.CategoryID, Level: f.Level, Search: f.Search}
}

func (f *CourseFilter) page() Page {
	if f == nil {
		return Page{}
	}
	return f.Page
}

type JobFilter struct {
	CategoryID      *int    `json:"categoryId,omitempty"`
	Region          *string `json:"region,omitempty"`
	EmploymentType  *string `json:"employmentType,omitempty"`
	ExperienceLevel *string `json:"experienceLevel,omitempty"`
	Country         *string `json:"country,omitempty"`
	Search          *string `json:"search,omitempty"`
	Page
}

func (f *JobFilter) Validate() error {
	if f == nil {
		return nil
	}
	return firstError(
		validateID("categoryId", f.CategoryID),
		validateEnum("region", f.Region, portal.JobRegions),
		validateEnum("employmentType", f.EmploymentType, portal.EmploymentTypes),
		validateEnum("experienceLevel", f.ExperienceLevel, portal.ExperienceLevels),
		validateNotBlank("country", f.Country),
		validateSearch(f.Search),
		f.Page.validate(),
	)
}

func (f *JobFilter) ToSearch() *db.JobSearch {
	if f == nil {
		return nil
	}
	return &db.JobSearch{
		CategoryID:      f.CategoryID,
		Region:          f.Region,
		EmploymentType:  f.EmploymentType,
		ExperienceLevel: f.ExperienceLevel,
		Country:         f.Country,
		Search:          f.Search,
	}
}

func (f *JobFilter) page() Page {
	if f == nil {
		return Page{}
	}
	return f.Page
}

type ListingFilter struct {
	CategoryID *int     `json:"categoryId,omitempty"`
	Condition  *string  `json:"condition,omitempty"`
	Status     *string  `json:"status,omitempty"`
	Country    *string  `json:"country,omitempty"`
	MinPrice   *float64 `json:"minPrice,omitempty"`
	MaxPrice   *float64 `json:"maxPrice,omitempty"`
	Search     *string  `json:"search,omitempty"`
	Page
}

func (f *ListingFilter) Validate() error {
	if f == nil {
		return nil
	}

	var priceErr error
	switch {
	case f.MinPrice != nil && *f.MinPrice < 0:
		priceErr = invalid("minPrice", "must not be negative")
	case f.MaxPrice != nil && *f.MaxPrice < 0:
		priceErr = invalid("maxPrice", "must not be negative")
	case f.MinPrice != nil && f.MaxPrice != nil && *f.MinPrice > *f.MaxPrice:
		priceErr = invalid("minPrice", "must not exceed maxPrice")
	}

	return firstError(
		validateID("categoryId", f.CategoryID),
		validateEnum("condition", f.Condition, portal.ListingConditions),
		validateEnum("status", f.Status, portal.ListingStatuses),
		validateNotBlank("country", f.Country),
		priceErr,
		validateSearch(f.Search),
		f.Page.validate(),
	)
}

func (f *ListingFilter) ToSearch() *db.ListingSearch {
	if f == nil {
		return nil
	}
	return &db.ListingSearch{
		CategoryID: f.CategoryID,
		Condition:  f.Condition,
		Status:     f.Status,
		Country:    f.Country,
		MinPrice:   f.MinPrice,
		MaxPrice:   f.MaxPrice,
		Search:     f.Search,
	}
}

func (f *ListingFilter) page() Page {
	if f == nil {
		return Page{}
	}
	return f.Page
}

type ArticleFilter struct {
	CategoryID   *int    `json:"categoryId,omitempty"`
	ArticleType  *string `json:"articleType,omitempty"`
	Manufacturer *string `json:"manufacturer,omitempty"`
	Search       *string `json:"search,omitempty"`
	Page
}

func (f *ArticleFilter) Validate() error {
	if f == nil {
		return nil
	}
	return firstError(
		validateID("categoryId", f.CategoryID),
		validateEnum("articleType", f.ArticleType, portal.ArticleTypes),
		validateNotBlank("manufacturer", f.Manufacturer),
		validateSearch(f.Search),
		f.Page.validate(),
	)
}

func (f *ArticleFilter) ToSearch() *db.ArticleSearch {
	if f == nil {
		return nil
	}
	return &db.ArticleSearch{
		CategoryID:   f.CategoryID,
		ArticleType:  f.ArticleType,
		Manufacturer: f.Manufacturer,
		Search:       f.Search,
	}
}

func (f *ArticleFilter) page() Page {
	if f == nil {
		return Page{}
	}
	return f.Page
}

type LicenseGuideFilter struct {
	Region        *string `json:"region,omitempty"`
	Country       *string `json:"country,omitempty"`
	LicenseTypeID *int    `json:"licenseTypeId,omitempty"`
	Page
}

func (f *LicenseGuideFilter) Validate() error {
	if f == nil {
		return nil
	}
	return firstError(
		validateEnum("region", f.Region, portal.Regions),
		validateNotBlank("country", f.Country),
		validateID("licenseTypeId", f.LicenseTypeID),
		f.Page.validate(),
	)
}

func (f *LicenseGuideFilter) ToSearch() *db.LicenseGuideSearch {
	if f == nil {
		return nil
	}
	return &db.LicenseGuideSearch{Region: f.Region, Country: f.Country, LicenseTypeID: f.LicenseTypeID}
}

func (f *LicenseGuideFilter) page() Page {
	if f == nil {
		return Page{}
	}
	return f.Page
}

type TestMaterialFilter struct {
	LicenseTypeID *int    `json:"licenseTypeId,omitempty"`
	Country       *string `json:"country,omitempty"`
	Lang          *string `json:"lang,omitempty"`
}

func (f *TestMaterialFilter) Validate() error {
	if f == nil {
		return nil
	}
	return firstError(
		validateID("licenseTypeId", f.LicenseTypeID),
		validateNotBlank("country", f.Country),
		Page{Lang: f.Lang}.validate(),
	)
}

func (f *TestMaterialFilter) ToSearch() *db.TestMaterialSearch {
	if f == nil {
		return nil
	}
	return &db.TestMaterialSearch{LicenseTypeID: f.LicenseTypeID, Country: f.Country}
}

func (f *TestMaterialFilter) language(ctx context.Context) i18n.Language {
	if f == nil {
		return i18n.FromContext(ctx)
	}
	return Page{Lang: f.Lang}.language(ctx)
}

type SchoolFilter struct {
	Region  *string `json:"region,omitempty"`
	Country *string `json:"country,omitempty"`
	Search  *string `json:"search,omitempty"`
	Page
}

func (f *SchoolFilter) Validate() error {
	if f == nil {
		return nil
	}
	return firstError(
		validateEnum("region", f.Region, portal.Regions),
		validateNotBlank("country", f.Country),
		validateSearch(f.Search),
		f.Page.validate(),
	)
}

func (f *SchoolFilter) ToSearch() *db.SchoolSearch {
	if f == nil {
		return nil
	}
	return &db.SchoolSearch{Region: f.Region, Country: f.Country, Search: f.Search}
}

func (f *SchoolFilter) page() Page {
	if f == nil {
		return Page{}
	}
	return f.Page
}

type LessonFilter struct {
	CategoryID *int    `json:"categoryId,omitempty"`
	Difficulty *string `json:"difficulty,omitempty"`
	Search     *string `json:"search,omitempty"`
	Page
}

func (f *LessonFilter) Validate() error {
	if f == nil {
		return nil
	}
	return firstError(
		validateID("categoryId", f.CategoryID),
		validateEnum("difficulty", f.Difficulty, portal.LessonDifficulty),
		validateSearch(f.Search),
		f.Page.validate(),
	)
}

func (f *LessonFilter) ToSearch() *db.LessonSearch {
	if f == nil {
		return nil
	}
	return &db.LessonSearch{CategoryID: f.CategoryID, Difficulty: f.Difficulty, Search: f.Search}
}

func (f *LessonFilter) page() Page {
	if f == nil {
		return Page{}
	}
	return f.Page
}

// ListingInput is the payload of marketplace.createListing.
type ListingInput struct {
	CategoryID    int     `json:"categoryId"`
	TitleEn       string  `json:"titleEn"`
	DescriptionEn string  `json:"descriptionEn"`
	Price         float64 `json:"price"`
	Currency      string  `json:"currency"`
	Condition     string  `json:"condition"`
	Location      string  `json:"location"`
	Country       string  `json:"country"`
	Year          *int    `json:"year,omitempty"`
	Manufacturer  *string `json:"manufacturer,omitempty"`
	Model         *string `json:"model,omitempty"`
	ContactEmail  *string `json:"contactEmail,omitempty"`
	ContactPhone  *string `json:"contactPhone,omitempty"`
}

func isLetters(s string) bool {
	for _, r := range s {
		if (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') {
			return false
		}
	}
	return true
}

func (in ListingInput) Validate() error {
	title := utf8.RuneCountInString(in.TitleEn)
	description := utf8.RuneCountInString(in.DescriptionEn)

	switch {
	case in.CategoryID <= 0:
		return invalid("categoryId", "must be positive")
	case title < 5 || title > 200:
		return invalid("titleEn", "must be 5..200 characters")
	case description < 20 || description > 5000:
		return invalid("descriptionEn", "must be 20..5000 characters")
	case in.Price <= 0:
		return invalid("price", "must be positive")
	case len(in.Currency) != 3 || !isLetters(in.Currency):
		return invalid("currency", "must be a 3-letter code")
	case !portal.ListingConditions.Has(in.Condition):
		return invalid("condition", "must be one of %s", strings.Join(portal.ListingConditions, ", "))
	case strings.TrimSpace(in.Location) == "":
		return invalid("location", "must not be empty")
	case strings.TrimSpace(in.Country) == "":
		return invalid("country", "must not be empty")
	case in.Year != nil && (*in.Year < 1900 || *in.Year > 2100):
		return invalid("year", "must be between 1900 and 2100")
	}

	return nil
}

func (in ListingInput) ToModel() portal.Listing {
	currency := strings.ToUpper(in.Currency)
	location := strings.TrimSpace(in.Location)
	country := strings.TrimSpace(in.Country)
	description := in.DescriptionEn

	l := portal.Listing{}
	l.CategoryID = &in.CategoryID
	l.TitleEn = strings.TrimSpace(in.TitleEn)
	l.DescriptionEn = &description
	l.Price = &in.Price
	l.Currency = &currency
	l.Condition = in.Condition
	l.Location = &location
	l.Country = &country
	l.Year = in.Year
	l.Manufacturer = in.Manufacturer
	l.Model = in.Model
	l.ContactEmail = in.ContactEmail
	l.ContactPhone = in.ContactPhone

	return l
}

// resolveLang validates an optional lang param and falls back to the request language.
func resolveLang(ctx context.Context, lang *string) (i18n.Language, error) {
	p := Page{Lang: lang}
	if err := p.validate(); err != nil {
		return "", err
	}
	return p.language(ctx), nil
}

func requirePositive(field string, v int) error {
	if v <= 0 {
		return invalid(field, "must be positive")
	}
	return nil
}
