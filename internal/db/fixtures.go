package db

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pg/pg/v10"
)

const FixtureJobs = 500

var (
	// BaseTime anchors every fixture timestamp so that orderings are reproducible.
	BaseTime = time.Date(2024, 1, 14, 12, 0, 0, 0, time.UTC)

	fixtureTables = []string{
		"scrapingLogs", "scrapingSources", "mechanicsLessons", "mechanicsLessonCategories", "trainingPrograms",
		"drivingSchools", "testMaterials", "licenseRequirements", "licenseTypes", "knowledgeArticles",
		"knowledgeCategories", "listings", "equipmentCategories", "savedJobs", "jobs", "jobCategories",
		"userCourseProgress", "certifications", "trainingMaterials", "courses", "courseCategories", "users",
	}

	jobRegions      = []string{"europe", "north_america", "other"}
	employmentTypes = []string{"full_time", "part_time", "contract", "temporary"}
	experienceLevel = []string{"entry", "mid", "senior", "executive"}
	courseLevels    = []string{"beginner", "intermediate", "advanced", "expert"}
	conditions      = []string{"new", "like_new", "good", "fair", "parts"}
	articleTypes    = []string{"repair_guide", "fabrication", "maintenance", "troubleshooting", "general"}
	manufacturers   = []string{"Volvo", "Scania", "Mercedes-Benz", "MAN", "DAF", "Freightliner", "Kenworth", "Peterbilt"}
	jobCountries    = map[string][]string{
		"europe":        {"Germany", "Netherlands", "Poland", "Spain", "France"},
		"north_america": {"USA", "Canada", "Mexico"},
		"other":         {"UAE", "Australia", "South Africa"},
	}
)

func ptr[T any](v T) *T { return &v }

// LoadFixtures truncates all portal tables and inserts a deterministic data set:
// 500 jobs cycling through every region, a handful of rows for every other domain.
func LoadFixtures(ctx context.Context, dbi pg.DBI) error {
	for _, tbl := range fixtureTables {
		if _, err := dbi.ExecContext(ctx, `TRUNCATE TABLE ? RESTART IDENTITY CASCADE`, pg.Ident(tbl)); err != nil {
			return fmt.Errorf("truncate table %s: %w", tbl, err)
		}
	}

	loaders := []struct {
		name string
		fn   func(context.Context, pg.DBI) error
	}{
		{"users", loadUsers},
		{"academy", loadAcademy},
		{"jobs", loadJobs},
		{"marketplace", loadMarketplace},
		{"knowledge", loadKnowledge},
		{"licenses", loadLicenses},
		{"schools", loadSchools},
		{"mechanics", loadMechanics},
		{"scraping", loadScraping},
	}
	for _, l := range loaders {
		if err := l.fn(ctx, dbi); err != nil {
			return fmt.Errorf("load %s: %w", l.name, err)
		}
	}

	return nil
}

func insert(ctx context.Context, dbi pg.DBI, model any) error {
	_, err := dbi.ModelContext(ctx, model).Insert()
	return err
}

func loadUsers(ctx context.Context, dbi pg.DBI) error {
	users := []User{
		{OpenID: "fixture-admin", Name: ptr("Portal Admin"), Email: ptr("admin@truck.example"), LoginMethod: ptr("fixture"), Role: RoleAdmin, LastSignedIn: BaseTime},
		{OpenID: "fixture-driver", Name: ptr("Max Driver"), Email: ptr("driver@truck.example"), LoginMethod: ptr("fixture"), Role: RoleUser, PreferredLanguage: ptr("de"), LastSignedIn: BaseTime},
	}
	return insert(ctx, dbi, &users)
}

func loadAcademy(ctx context.Context, dbi pg.DBI) error {
	categories := []CourseCategory{
		{NameEn: "Safety", NameDe: ptr("Sicherheit"), NameEs: ptr("Seguridad"), NameFr: ptr("Sécurité"), NameAr: ptr("السلامة"), Slug: "safety", Icon: ptr("shield")},
		{NameEn: "Engine & Powertrain", NameDe: ptr("Motor & Antrieb"), Slug: "engine", Icon: ptr("cog")},
		{NameEn: "Regulations", NameDe: ptr("Vorschriften"), Slug: "regulations", Icon: ptr("book")},
	}
	if err := insert(ctx, dbi, &categories); err != nil {
		return err
	}

	titles := []struct{ en, de string }{
		{"Engine Basics", "Motorengrundlagen"},
		{"Defensive Driving", "Defensives Fahren"},
		{"Load Securing", "Ladungssicherung"},
		{"Tachograph Rules", ""},
		{"Winter Operations", "Winterbetrieb"},
		{"Air Brake Systems", ""},
	}
	courses := make([]Course, 0, len(titles))
	for i, t := range titles {
		c := Course{
			CategoryID:    ptr(categories[i%len(categories)].ID),
			TitleEn:       t.en,
			DescriptionEn: ptr("Practical course: " + t.en + "."),
			Level:         courseLevels[i%len(courseLevels)],
			DurationHours: ptr(4 + i*2),
			IsPublished:   i != len(titles)-1,
			CreatedAt:     BaseTime.Add(-time.Duration(i) * 24 * time.Hour),
		}
		if t.de != "" {
			c.TitleDe = ptr(t.de)
		}
		courses = append(courses, c)
	}
	if err := insert(ctx, dbi, &courses); err != nil {
		return err
	}

	materials := make([]TrainingMaterial, 0, len(courses)*2)
	for _, c := range courses {
		materials = append(materials,
			TrainingMaterial{CourseID: ptr(c.ID), TitleEn: c.TitleEn + ": introduction", ContentType: "video", OrderIndex: 0},
			TrainingMaterial{CourseID: ptr(c.ID), TitleEn: c.TitleEn + ": quiz", ContentType: "quiz", OrderIndex: 1},
		)
	}
	return insert(ctx, dbi, &materials)
}

func loadJobs(ctx context.Context, dbi pg.DBI) error {
	categories := []JobCategory{
		{NameEn: "Long Haul", NameDe: ptr("Fernverkehr"), Slug: "long-haul"},
		{NameEn: "Mechanic", NameDe: ptr("Mechaniker"), Slug: "mechanic"},
		{NameEn: "Dispatcher", NameDe: ptr("Disponent"), Slug: "dispatcher"},
	}
	if err := insert(ctx, dbi, &categories); err != nil {
		return err
	}

	jobs := make([]Job, 0, FixtureJobs)
	for i := 0; i < FixtureJobs; i++ {
		region := jobRegions[i%len(jobRegions)]
		countries := jobCountries[region]
		cat := categories[i%len(categories)]
		j := Job{
			CategoryID:      ptr(cat.ID),
			TitleEn:         fmt.Sprintf("%s #%d", cat.NameEn, i+1),
			DescriptionEn:   ptr("Job offer for " + cat.NameEn + "."),
			Company:         ptr(manufacturers[i%len(manufacturers)] + " Logistics"),
			Location:        ptr("City " + fmt.Sprint(i%17)),
			Country:         ptr(countries[i%len(countries)]),
			Region:          region,
			SalaryMin:       ptr(float64(30000 + (i%10)*1000)),
			SalaryMax:       ptr(float64(45000 + (i%10)*1000)),
			SalaryCurrency:  ptr("EUR"),
			EmploymentType:  employmentTypes[i%len(employmentTypes)],
			ExperienceLevel: experienceLevel[i%len(experienceLevel)],
			SourceType:      "scraped",
			ScrapedFrom:     ptr("fixture"),
			IsActive:        i%10 != 9,
			PostedAt:        BaseTime.Add(-time.Duration(i) * time.Hour),
		}
		if i%2 == 0 {
			j.TitleDe = ptr(fmt.Sprintf("%s Nr. %d", *cat.NameDe, i+1))
		}
		jobs = append(jobs, j)
	}
	return insert(ctx, dbi, &jobs)
}

func loadMarketplace(ctx context.Context, dbi pg.DBI) error {
	categories := []EquipmentCategory{
		{NameEn: "Tractor Units", NameDe: ptr("Sattelzugmaschinen"), Slug: "tractor-units", Icon: ptr("truck")},
		{NameEn: "Trailers", NameDe: ptr("Auflieger"), Slug: "trailers", Icon: ptr("trailer")},
		{NameEn: "Parts", NameDe: ptr("Ersatzteile"), Slug: "parts", Icon: ptr("wrench")},
	}
	if err := insert(ctx, dbi, &categories); err != nil {
		return err
	}

	listings := make([]Listing, 0, 12)
	for i := 0; i < 12; i++ {
		m := manufacturers[i%len(manufacturers)]
		status := ListingStatusActive
		if i%5 == 4 {
			status = "sold"
		}
		listings = append(listings, Listing{
			UserID:        ptr(2),
			CategoryID:    ptr(categories[i%len(categories)].ID),
			TitleEn:       fmt.Sprintf("%s FH %d", m, 2015+i%8),
			DescriptionEn: ptr("Well maintained vehicle with full service history."),
			Price:         ptr(float64(15000 + i*5000)),
			Currency:      ptr("EUR"),
			Condition:     conditions[i%len(conditions)],
			Year:          ptr(2015 + i%8),
			Manufacturer:  ptr(m),
			Location:      ptr("Hamburg"),
			Country:       ptr([]string{"Germany", "Poland", "USA"}[i%3]),
			Status:        status,
			CreatedAt:     BaseTime.Add(-time.Duration(i) * 6 * time.Hour),
		})
	}
	return insert(ctx, dbi, &listings)
}

func loadKnowledge(ctx context.Context, dbi pg.DBI) error {
	categories := []KnowledgeCategory{
		{NameEn: "Brakes", NameDe: ptr("Bremsen"), Slug: "brakes"},
		{NameEn: "Electrical", NameDe: ptr("Elektrik"), Slug: "electrical"},
	}
	if err := insert(ctx, dbi, &categories); err != nil {
		return err
	}

	articles := make([]KnowledgeArticle, 0, 10)
	for i := 0; i < 10; i++ {
		articles = append(articles, KnowledgeArticle{
			CategoryID:   ptr(categories[i%len(categories)].ID),
			TitleEn:      fmt.Sprintf("%s guide %d", categories[i%len(categories)].NameEn, i+1),
			ContentEn:    ptr("Step by step instructions."),
			ArticleType:  articleTypes[i%len(articleTypes)],
			Manufacturer: ptr(manufacturers[i%len(manufacturers)]),
			SourceType:   "manual",
			IsPublished:  true,
			CreatedAt:    BaseTime.Add(-time.Duration(i) * 12 * time.Hour),
		})
	}
	return insert(ctx, dbi, &articles)
}

func loadLicenses(ctx context.Context, dbi pg.DBI) error {
	types := []LicenseType{
		{Code: "C", NameEn: "Category C", NameDe: ptr("Klasse C"), VehicleClass: "truck", Region: "europe"},
		{Code: "CE", NameEn: "Category CE", NameDe: ptr("Klasse CE"), VehicleClass: "trailer", Region: "europe"},
		{Code: "CDL-A", NameEn: "Commercial Driver's License Class A", VehicleClass: "truck", Region: "north_america"},
	}
	if err := insert(ctx, dbi, &types); err != nil {
		return err
	}

	guides := []LicenseRequirement{
		{LicenseTypeID: ptr(types[0].ID), Country: "Germany", CountryCode: "DE", RequirementsEn: ptr("Minimum age 21, medical check."), MinimumAge: ptr(21), MedicalRequired: true, ValidityYears: ptr(5)},
		{LicenseTypeID: ptr(types[1].ID), Country: "Austria", CountryCode: "AT", RequirementsEn: ptr("Category C required."), MinimumAge: ptr(21), MedicalRequired: true, ValidityYears: ptr(5)},
		{LicenseTypeID: ptr(types[0].ID), Country: "Poland", CountryCode: "PL", RequirementsEn: ptr("Minimum age 21."), MinimumAge: ptr(21), MedicalRequired: true, ValidityYears: ptr(5)},
		{LicenseTypeID: ptr(types[2].ID), Country: "USA", CountryCode: "US", RequirementsEn: ptr("Minimum age 18 intrastate, 21 interstate."), MinimumAge: ptr(18), MedicalRequired: true, ValidityYears: ptr(4)},
		{LicenseTypeID: ptr(types[2].ID), Country: "Canada", CountryCode: "CA", RequirementsEn: ptr("Class 1 equivalent."), MinimumAge: ptr(18), MedicalRequired: true},
	}
	if err := insert(ctx, dbi, &guides); err != nil {
		return err
	}

	materials := []TestMaterial{
		{LicenseTypeID: ptr(types[0].ID), Country: ptr("Germany"), TitleEn: "Theory handbook", TitleDe: ptr("Theoriehandbuch"), MaterialType: "handbook", IsOfficial: true},
		{LicenseTypeID: ptr(types[0].ID), Country: ptr("Germany"), TitleEn: "Practice test", MaterialType: "practice_test"},
		{LicenseTypeID: ptr(types[2].ID), Country: ptr("USA"), TitleEn: "CDL manual", MaterialType: "study_guide", IsOfficial: true},
	}
	return insert(ctx, dbi, &materials)
}

func loadSchools(ctx context.Context, dbi pg.DBI) error {
	schools := []DrivingSchool{
		{Name: "Fahrschule Nord", DescriptionEn: ptr("Truck school in Hamburg."), DescriptionDe: ptr("LKW-Fahrschule in Hamburg."), City: ptr("Hamburg"), Country: ptr("Germany"), CountryCode: ptr("DE"), Region: "europe", Rating: ptr(4.8), ReviewCount: 120, IsVerified: true},
		{Name: "Big Rig Academy", DescriptionEn: ptr("CDL training in Texas."), City: ptr("Dallas"), State: ptr("TX"), Country: ptr("USA"), CountryCode: ptr("US"), Region: "north_america", Rating: ptr(4.5), ReviewCount: 80},
		{Name: "Autoescuela Camiones", City: ptr("Madrid"), Country: ptr("Spain"), CountryCode: ptr("ES"), Region: "europe", Rating: ptr(4.1), ReviewCount: 30},
		{Name: "New Road School", City: ptr("Toronto"), Country: ptr("Canada"), CountryCode: ptr("CA"), Region: "north_america"},
	}
	if err := insert(ctx, dbi, &schools); err != nil {
		return err
	}

	programs := []TrainingProgram{
		{SchoolID: ptr(schools[0].ID), TitleEn: "CE full course", TitleDe: ptr("CE Komplettkurs"), LicenseType: ptr("CE"), DurationWeeks: ptr(8), Price: ptr(3500.0), Currency: ptr("EUR"), IncludesTheory: true, IncludesPractical: true, IncludesExam: true},
		{SchoolID: ptr(schools[1].ID), TitleEn: "CDL-A bootcamp", LicenseType: ptr("CDL-A"), DurationWeeks: ptr(4), Price: ptr(5000.0), Currency: ptr("USD"), IncludesTheory: true, IncludesPractical: true},
	}
	return insert(ctx, dbi, &programs)
}

func loadMechanics(ctx context.Context, dbi pg.DBI) error {
	categories := []MechanicsLessonCategory{
		{NameEn: "Engine Repair", NameDe: ptr("Motorreparatur"), Slug: "engine-repair", Icon: ptr("engine")},
		{NameEn: "Welding", NameDe: ptr("Schweißen"), Slug: "welding", Icon: ptr("flame")},
	}
	if err := insert(ctx, dbi, &categories); err != nil {
		return err
	}

	lessons := []MechanicsLesson{
		{CategoryID: ptr(categories[0].ID), TitleEn: "Replacing an injector", TitleDe: ptr("Injektor wechseln"), Difficulty: "intermediate", DurationMinutes: ptr(45), Rating: ptr(4.7), RatingCount: 12, IsPublished: true},
		{CategoryID: ptr(categories[0].ID), TitleEn: "Oil change basics", Difficulty: "beginner", DurationMinutes: ptr(20), Rating: ptr(4.2), RatingCount: 30, IsPublished: true},
		{CategoryID: ptr(categories[1].ID), TitleEn: "Chassis weld repair", Difficulty: "advanced", DurationMinutes: ptr(90), IsPublished: true},
	}
	return insert(ctx, dbi, &lessons)
}

func loadScraping(ctx context.Context, dbi pg.DBI) error {
	sources := []ScrapingSource{
		{Name: "EU truck jobs", URL: "https://jobs.truck.example/eu", SourceType: "jobs", Region: "europe", IsActive: true, ScrapeFrequency: "daily", LastScrapedAt: ptr(BaseTime)},
		{Name: "US school directory", URL: "https://schools.truck.example/us", SourceType: "schools", Region: "north_america", IsActive: true, ScrapeFrequency: "weekly"},
	}
	if err := insert(ctx, dbi, &sources); err != nil {
		return err
	}

	logs := []ScrapingLog{
		{SourceID: ptr(sources[0].ID), Status: "failed", ErrorMessage: ptr("timeout"), StartedAt: BaseTime.Add(-48 * time.Hour)},
		{SourceID: ptr(sources[0].ID), Status: "success", ItemsFound: 120, ItemsAdded: 14, StartedAt: BaseTime.Add(-24 * time.Hour), CompletedAt: ptr(BaseTime.Add(-23 * time.Hour))},
	}
	return insert(ctx, dbi, &logs)
}
