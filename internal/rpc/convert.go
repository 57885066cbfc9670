package rpc

import (
	"github.com/daniilsolovey/truck-portal/internal/i18n"
	"github.com/daniilsolovey/truck-portal/internal/portal"
)

// newList converts a domain list; the result is never nil so empty lists encode as [].
func newList[S, T any](in []S, lang i18n.Language, fn func(S, i18n.Language) T) []T {
	out := make([]T, len(in))
	for i := range in {
		out[i] = fn(in[i], lang)
	}
	return out
}

func newTitles(en string, de, es, fr, ar *string) Titles {
	return Titles{TitleEn: en, TitleDe: de, TitleEs: es, TitleFr: fr, TitleAr: ar}
}

func newDescriptions(en, de, es, fr, ar *string) Descriptions {
	return Descriptions{DescriptionEn: en, DescriptionDe: de, DescriptionEs: es, DescriptionFr: fr, DescriptionAr: ar}
}

func newNames(en string, de, es, fr, ar *string) Names {
	return Names{NameEn: en, NameDe: de, NameEs: es, NameFr: fr, NameAr: ar}
}

func NewCourseCategory(c portal.CourseCategory, lang i18n.Language) Category {
	return Category{
		ID:    c.ID,
		Names: newNames(c.NameEn, c.NameDe, c.NameEs, c.NameFr, c.NameAr),
		Name:  i18n.Localize(c, "name", lang),
		Slug:  c.Slug,
		Icon:  c.Icon,
	}
}

func NewJobCategory(c portal.JobCategory, lang i18n.Language) Category {
	return Category{
		ID:    c.ID,
		Names: newNames(c.NameEn, c.NameDe, c.NameEs, c.NameFr, c.NameAr),
		Name:  i18n.Localize(c, "name", lang),
		Slug:  c.Slug,
	}
}

func NewEquipmentCategory(c portal.EquipmentCategory, lang i18n.Language) Category {
	return Category{
		ID:    c.ID,
		Names: newNames(c.NameEn, c.NameDe, c.NameEs, c.NameFr, c.NameAr),
		Name:  i18n.Localize(c, "name", lang),
		Slug:  c.Slug,
		Icon:  c.Icon,
	}
}

func NewKnowledgeCategory(c portal.KnowledgeCategory, lang i18n.Language) Category {
	return Category{
		ID:       c.ID,
		Names:    newNames(c.NameEn, c.NameDe, c.NameEs, c.NameFr, c.NameAr),
		Name:     i18n.Localize(c, "name", lang),
		Slug:     c.Slug,
		Icon:     c.Icon,
		ParentID: c.ParentID,
	}
}

func NewLessonCategory(c portal.LessonCategory, lang i18n.Language) Category {
	return Category{
		ID:    c.ID,
		Names: newNames(c.NameEn, c.NameDe, c.NameEs, c.NameFr, c.NameAr),
		Name:  i18n.Localize(c, "name", lang),
		Slug:  c.Slug,
		Icon:  c.Icon,
	}
}

// category converts an optional joined category.
func category[T any](c *T, lang i18n.Language, fn func(T, i18n.Language) Category) *Category {
	if c == nil {
		return nil
	}
	res := fn(*c, lang)
	return &res
}

func NewCourse(c portal.Course, lang i18n.Language) Course {
	return Course{
		ID:            c.ID,
		CategoryID:    c.CategoryID,
		Titles:        newTitles(c.TitleEn, c.TitleDe, c.TitleEs, c.TitleFr, c.TitleAr),
		Descriptions:  newDescriptions(c.DescriptionEn, c.DescriptionDe, c.DescriptionEs, c.DescriptionFr, c.DescriptionAr),
		Title:         i18n.Localize(c, "title", lang),
		Description:   i18n.Localize(c, "description", lang),
		Level:         c.Level,
		DurationHours: c.DurationHours,
		ImageURL:      c.ImageURL,
		IsPublished:   c.IsPublished,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
		Category:      category(c.Category, lang, NewCourseCategory),
	}
}

func NewTrainingMaterial(m portal.TrainingMaterial, lang i18n.Language) TrainingMaterial {
	return TrainingMaterial{
		ID:          m.ID,
		CourseID:    m.CourseID,
		Titles:      newTitles(m.TitleEn, m.TitleDe, m.TitleEs, m.TitleFr, m.TitleAr),
		Title:       i18n.Localize(m, "title", lang),
		ContentType: m.ContentType,
		ContentURL:  m.ContentURL,
		OrderIndex:  m.OrderIndex,
		CreatedAt:   m.CreatedAt,
	}
}

func NewJob(j portal.Job, lang i18n.Language) Job {
	return Job{
		ID:              j.ID,
		CategoryID:      j.CategoryID,
		Titles:          newTitles(j.TitleEn, j.TitleDe, j.TitleEs, j.TitleFr, j.TitleAr),
		Descriptions:    newDescriptions(j.DescriptionEn, j.DescriptionDe, j.DescriptionEs, j.DescriptionFr, j.DescriptionAr),
		Title:           i18n.Localize(j, "title", lang),
		Description:     i18n.Localize(j, "description", lang),
		Company:         j.Company,
		Location:        j.Location,
		Country:         j.Country,
		Region:          j.Region,
		SalaryMin:       j.SalaryMin,
		SalaryMax:       j.SalaryMax,
		SalaryCurrency:  j.SalaryCurrency,
		EmploymentType:  j.EmploymentType,
		ExperienceLevel: j.ExperienceLevel,
		SourceURL:       j.SourceURL,
		SourceType:      j.SourceType,
		ScrapedFrom:     j.ScrapedFrom,
		IsActive:        j.IsActive,
		PostedAt:        j.PostedAt,
		ExpiresAt:       j.ExpiresAt,
		CreatedAt:       j.CreatedAt,
		UpdatedAt:       j.UpdatedAt,
		Category:        category(j.Category, lang, NewJobCategory),
	}
}

func NewListing(l portal.Listing, lang i18n.Language) Listing {
	return Listing{
		ID:           l.ID,
		UserID:       l.UserID,
		CategoryID:   l.CategoryID,
		Titles:       newTitles(l.TitleEn, l.TitleDe, l.TitleEs, l.TitleFr, l.TitleAr),
		Descriptions: newDescriptions(l.DescriptionEn, l.DescriptionDe, l.DescriptionEs, l.DescriptionFr, l.DescriptionAr),
		Title:        i18n.Localize(l, "title", lang),
		Description:  i18n.Localize(l, "description", lang),
		Price:        l.Price,
		Currency:     l.Currency,
		Condition:    l.Condition,
		Year:         l.Year,
		Manufacturer: l.Manufacturer,
		Model:        l.Model,
		Location:     l.Location,
		Country:      l.Country,
		ImagesJSON:   l.ImagesJSON,
		ContactEmail: l.ContactEmail,
		ContactPhone: l.ContactPhone,
		Status:       l.Status,
		ViewCount:    l.ViewCount,
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
		Category:     category(l.Category, lang, NewEquipmentCategory),
	}
}

func NewArticle(a portal.Article, lang i18n.Language) Article {
	return Article{
		ID:           a.ID,
		CategoryID:   a.CategoryID,
		Titles:       newTitles(a.TitleEn, a.TitleDe, a.TitleEs, a.TitleFr, a.TitleAr),
		ContentEn:    a.ContentEn,
		ContentDe:    a.ContentDe,
		ContentEs:    a.ContentEs,
		ContentFr:    a.ContentFr,
		ContentAr:    a.ContentAr,
		Title:        i18n.Localize(a, "title", lang),
		Content:      i18n.Localize(a, "content", lang),
		ArticleType:  a.ArticleType,
		Manufacturer: a.Manufacturer,
		VehicleType:  a.VehicleType,
		SourceURL:    a.SourceURL,
		SourceType:   a.SourceType,
		ScrapedFrom:  a.ScrapedFrom,
		TagsJSON:     a.TagsJSON,
		ViewCount:    a.ViewCount,
		IsPublished:  a.IsPublished,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
		Category:     category(a.Category, lang, NewKnowledgeCategory),
	}
}

func NewLicenseType(t portal.LicenseType, lang i18n.Language) LicenseType {
	return LicenseType{
		ID:           t.ID,
		Code:         t.Code,
		Names:        newNames(t.NameEn, t.NameDe, t.NameEs, t.NameFr, t.NameAr),
		Descriptions: newDescriptions(t.DescriptionEn, t.DescriptionDe, t.DescriptionEs, t.DescriptionFr, t.DescriptionAr),
		Name:         i18n.Localize(t, "name", lang),
		Description:  i18n.Localize(t, "description", lang),
		VehicleClass: t.VehicleClass,
		Region:       t.Region,
	}
}

func NewLicenseGuide(g portal.LicenseGuide, lang i18n.Language) LicenseGuide {
	guide := LicenseGuide{
		ID:              g.ID,
		LicenseTypeID:   g.LicenseTypeID,
		Country:         g.Country,
		CountryCode:     g.CountryCode,
		RequirementsEn:  g.RequirementsEn,
		RequirementsDe:  g.RequirementsDe,
		RequirementsEs:  g.RequirementsEs,
		RequirementsFr:  g.RequirementsFr,
		RequirementsAr:  g.RequirementsAr,
		Requirements:    i18n.Localize(g, "requirements", lang),
		MinimumAge:      g.MinimumAge,
		MedicalRequired: g.MedicalRequired,
		TestTypesJSON:   g.TestTypesJSON,
		ValidityYears:   g.ValidityYears,
		RenewalProcess:  g.RenewalProcess,
		SourceURL:       g.SourceURL,
		SourceType:      g.SourceType,
		LastVerified:    g.LastVerified,
		CreatedAt:       g.CreatedAt,
		UpdatedAt:       g.UpdatedAt,
	}
	if g.LicenseType != nil {
		lt := NewLicenseType(*g.LicenseType, lang)
		guide.LicenseType = &lt
	}

	return guide
}

func NewTestMaterial(m portal.TestMaterial, lang i18n.Language) TestMaterial {
	return TestMaterial{
		ID:            m.ID,
		LicenseTypeID: m.LicenseTypeID,
		Country:       m.Country,
		Titles:        newTitles(m.TitleEn, m.TitleDe, m.TitleEs, m.TitleFr, m.TitleAr),
		Title:         i18n.Localize(m, "title", lang),
		MaterialType:  m.MaterialType,
		ContentURL:    m.ContentURL,
		SourceURL:     m.SourceURL,
		SourceType:    m.SourceType,
		IsOfficial:    m.IsOfficial,
	}
}

func NewSchool(s portal.School, lang i18n.Language) School {
	return School{
		ID:               s.ID,
		Name:             s.Name,
		Descriptions:     newDescriptions(s.DescriptionEn, s.DescriptionDe, s.DescriptionEs, s.DescriptionFr, s.DescriptionAr),
		Description:      i18n.Localize(s, "description", lang),
		Address:          s.Address,
		City:             s.City,
		State:            s.State,
		Country:          s.Country,
		CountryCode:      s.CountryCode,
		Region:           s.Region,
		Phone:            s.Phone,
		Email:            s.Email,
		Website:          s.Website,
		LicenseTypesJSON: s.LicenseTypesJSON,
		ServicesJSON:     s.ServicesJSON,
		Rating:           s.Rating,
		ReviewCount:      s.ReviewCount,
		PriceRange:       s.PriceRange,
		ImageURL:         s.ImageURL,
		SourceURL:        s.SourceURL,
		SourceType:       s.SourceType,
		IsVerified:       s.IsVerified,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

func NewTrainingProgram(p portal.TrainingProgram, lang i18n.Language) TrainingProgram {
	return TrainingProgram{
		ID:                p.ID,
		SchoolID:          p.SchoolID,
		Titles:            newTitles(p.TitleEn, p.TitleDe, p.TitleEs, p.TitleFr, p.TitleAr),
		Descriptions:      newDescriptions(p.DescriptionEn, p.DescriptionDe, p.DescriptionEs, p.DescriptionFr, p.DescriptionAr),
		Title:             i18n.Localize(p, "title", lang),
		Description:       i18n.Localize(p, "description", lang),
		LicenseType:       p.LicenseType,
		DurationWeeks:     p.DurationWeeks,
		Price:             p.Price,
		Currency:          p.Currency,
		IncludesTheory:    p.IncludesTheory,
		IncludesPractical: p.IncludesPractical,
		IncludesExam:      p.IncludesExam,
	}
}

func NewLesson(l portal.Lesson, lang i18n.Language) Lesson {
	return Lesson{
		ID:              l.ID,
		CategoryID:      l.CategoryID,
		Titles:          newTitles(l.TitleEn, l.TitleDe, l.TitleEs, l.TitleFr, l.TitleAr),
		Descriptions:    newDescriptions(l.DescriptionEn, l.DescriptionDe, l.DescriptionEs, l.DescriptionFr, l.DescriptionAr),
		Title:           i18n.Localize(l, "title", lang),
		Description:     i18n.Localize(l, "description", lang),
		ContentEn:       l.ContentEn,
		Difficulty:      l.Difficulty,
		DurationMinutes: l.DurationMinutes,
		Manufacturer:    l.Manufacturer,
		VehicleType:     l.VehicleType,
		Tools:           l.Tools,
		Materials:       l.Materials,
		Rating:          l.Rating,
		RatingCount:     l.RatingCount,
		ViewCount:       l.ViewCount,
		IsPublished:     l.IsPublished,
		CreatedAt:       l.CreatedAt,
		UpdatedAt:       l.UpdatedAt,
		Category:        category(l.Category, lang, NewLessonCategory),
	}
}

func NewUser(u *portal.User) *User {
	if u == nil {
		return nil
	}

	return &User{
		ID:                u.ID,
		OpenID:            u.OpenID,
		Name:              u.Name,
		Email:             u.Email,
		LoginMethod:       u.LoginMethod,
		Role:              u.Role,
		PreferredLanguage: u.PreferredLanguage,
		CreatedAt:         u.CreatedAt,
		UpdatedAt:         u.UpdatedAt,
		LastSignedIn:      u.LastSignedIn,
	}
}

func NewStats(s *portal.Stats) Stats {
	return Stats{
		TotalUsers:        s.Users,
		ActiveCourses:     s.PublishedCourses,
		JobListings:       s.ActiveJobs,
		MarketplaceItems:  s.ActiveListings,
		KnowledgeArticles: s.Articles,
		DrivingSchools:    s.Schools,
	}
}

func NewScrapingSource(s portal.ScrapingStatus, _ i18n.Language) ScrapingSource {
	src := ScrapingSource{
		ID:              s.ID,
		Name:            s.Name,
		URL:             s.URL,
		SourceType:      s.SourceType,
		Region:          s.Region,
		IsActive:        s.IsActive,
		LastScrapedAt:   s.LastScrapedAt,
		ScrapeFrequency: s.ScrapeFrequency,
	}
	if l := s.LatestLog; l != nil {
		src.LatestLog = &ScrapingLog{
			ID:           l.ID,
			Status:       l.Status,
			ItemsFound:   l.ItemsFound,
			ItemsAdded:   l.ItemsAdded,
			ErrorMessage: l.ErrorMessage,
			StartedAt:    l.StartedAt,
			CompletedAt:  l.CompletedAt,
		}
	}

	return src
}
