package rpc

import (
	"time"
)

// Localized title columns.
type Titles struct {
	TitleEn string  `json:"titleEn"`
	TitleDe *string `json:"titleDe"`
	TitleEs *string `json:"titleEs"`
	TitleFr *string `json:"titleFr"`
	TitleAr *string `json:"titleAr"`
}

// Localized description columns.
type Descriptions struct {
	DescriptionEn *string `json:"descriptionEn"`
	DescriptionDe *string `json:"descriptionDe"`
	DescriptionEs *string `json:"descriptionEs"`
	DescriptionFr *string `json:"descriptionFr"`
	DescriptionAr *string `json:"descriptionAr"`
}

// Localized name columns of category tables.
type Names struct {
	NameEn string  `json:"nameEn"`
	NameDe *string `json:"nameDe"`
	NameEs *string `json:"nameEs"`
	NameFr *string `json:"nameFr"`
	NameAr *string `json:"nameAr"`
}

type Category struct {
	ID int `json:"id"`
	Names
	// Name in the requested language.
	Name     string  `json:"name"`
	Slug     string  `json:"slug"`
	Icon     *string `json:"icon,omitempty"`
	ParentID *int    `json:"parentId,omitempty"`
}

type Course struct {
	ID         int  `json:"id"`
	CategoryID *int `json:"categoryId"`
	Titles
	Descriptions
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Level         string    `json:"level"`
	DurationHours *int      `json:"durationHours"`
	ImageURL      *string   `json:"imageUrl"`
	IsPublished   bool      `json:"isPublished"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
	Category      *Category `json:"category"`
}

type TrainingMaterial struct {
	ID       int  `json:"id"`
	CourseID *int `json:"courseId"`
	Titles
	Title       string    `json:"title"`
	ContentType string    `json:"contentType"`
	ContentURL  *string   `json:"contentUrl"`
	OrderIndex  int       `json:"orderIndex"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Job struct {
	ID         int  `json:"id"`
	CategoryID *int `json:"categoryId"`
	Titles
	Descriptions
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Company         *string    `json:"company"`
	Location        *string    `json:"location"`
	Country         *string    `json:"country"`
	Region          string     `json:"region"`
	SalaryMin       *float64   `json:"salaryMin"`
	SalaryMax       *float64   `json:"salaryMax"`
	SalaryCurrency  *string    `json:"salaryCurrency"`
	EmploymentType  string     `json:"employmentType"`
	ExperienceLevel string     `json:"experienceLevel"`
	SourceURL       *string    `json:"sourceUrl"`
	SourceType      string     `json:"sourceType"`
	ScrapedFrom     *string    `json:"scrapedFrom"`
	IsActive        bool       `json:"isActive"`
	PostedAt        time.Time  `json:"postedAt"`
	ExpiresAt       *time.Time `json:"expiresAt"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
	Category        *Category  `json:"category"`
}

type Listing struct {
	ID         int  `json:"id"`
	UserID     *int `json:"userId"`
	CategoryID *int `json:"categoryId"`
	Titles
	Descriptions
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Price        *float64  `json:"price"`
	Currency     *string   `json:"currency"`
	Condition    string    `json:"condition"`
	Year         *int      `json:"year"`
	Manufacturer *string   `json:"manufacturer"`
	Model        *string   `json:"model"`
	Location     *string   `json:"location"`
	Country      *string   `json:"country"`
	ImagesJSON   *string   `json:"imagesJson"`
	ContactEmail *string   `json:"contactEmail"`
	ContactPhone *string   `json:"contactPhone"`
	Status       string    `json:"status"`
	ViewCount    int       `json:"viewCount"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	Category     *Category `json:"category"`
}

type Article struct {
	ID         int  `json:"id"`
	CategoryID *int `json:"categoryId"`
	Titles
	ContentEn    *string   `json:"contentEn"`
	ContentDe    *string   `json:"contentDe"`
	ContentEs    *string   `json:"contentEs"`
	ContentFr    *string   `json:"contentFr"`
	ContentAr    *string   `json:"contentAr"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	ArticleType  string    `json:"articleType"`
	Manufacturer *string   `json:"manufacturer"`
	VehicleType  *string   `json:"vehicleType"`
	SourceURL    *string   `json:"sourceUrl"`
	SourceType   string    `json:"sourceType"`
	ScrapedFrom  *string   `json:"scrapedFrom"`
	TagsJSON     *string   `json:"tagsJson"`
	ViewCount    int       `json:"viewCount"`
	IsPublished  bool      `json:"isPublished"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	Category     *Category `json:"category"`
}

type LicenseType struct {
	ID   int    `json:"id"`
	Code string `json:"code"`
	Names
	Descriptions
	Name         string `json:"name"`
	Description  string `json:"description"`
	VehicleClass string `json:"vehicleClass"`
	Region       string `json:"region"`
}

type LicenseGuide struct {
	ID              int          `json:"id"`
	LicenseTypeID   *int         `json:"licenseTypeId"`
	Country         string       `json:"country"`
	CountryCode     string       `json:"countryCode"`
	RequirementsEn  *string      `json:"requirementsEn"`
	RequirementsDe  *string      `json:"requirementsDe"`
	RequirementsEs  *string      `json:"requirementsEs"`
	RequirementsFr  *string      `json:"requirementsFr"`
	RequirementsAr  *string      `json:"requirementsAr"`
	Requirements    string       `json:"requirements"`
	MinimumAge      *int         `json:"minimumAge"`
	MedicalRequired bool         `json:"medicalRequired"`
	TestTypesJSON   *string      `json:"testTypesJson"`
	ValidityYears   *int         `json:"validityYears"`
	RenewalProcess  *string      `json:"renewalProcess"`
	SourceURL       *string      `json:"sourceUrl"`
	SourceType      string       `json:"sourceType"`
	LastVerified    *time.Time   `json:"lastVerified"`
	CreatedAt       time.Time    `json:"createdAt"`
	UpdatedAt       time.Time    `json:"updatedAt"`
	LicenseType     *LicenseType `json:"licenseType"`
}

type TestMaterial struct {
	ID            int     `json:"id"`
	LicenseTypeID *int    `json:"licenseTypeId"`
	Country       *string `json:"country"`
	Titles
	Title        string  `json:"title"`
	MaterialType string  `json:"materialType"`
	ContentURL   *string `json:"contentUrl"`
	SourceURL    *string `json:"sourceUrl"`
	SourceType   string  `json:"sourceType"`
	IsOfficial   bool    `json:"isOfficial"`
}

type School struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Descriptions
	Description      string    `json:"description"`
	Address          *string   `json:"address"`
	City             *string   `json:"city"`
	State            *string   `json:"state"`
	Country          *string   `json:"country"`
	CountryCode      *string   `json:"countryCode"`
	Region           string    `json:"region"`
	Phone            *string   `json:"phone"`
	Email            *string   `json:"email"`
	Website          *string   `json:"website"`
	LicenseTypesJSON *string   `json:"licenseTypesJson"`
	ServicesJSON     *string   `json:"servicesJson"`
	Rating           *float64  `json:"rating"`
	ReviewCount      int       `json:"reviewCount"`
	PriceRange       *string   `json:"priceRange"`
	ImageURL         *string   `json:"imageUrl"`
	SourceURL        *string   `json:"sourceUrl"`
	SourceType       string    `json:"sourceType"`
	IsVerified       bool      `json:"isVerified"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

type TrainingProgram struct {
	ID       int  `json:"id"`
	SchoolID *int `json:"schoolId"`
	Titles
	Descriptions
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	LicenseType       *string  `json:"licenseType"`
	DurationWeeks     *int     `json:"durationWeeks"`
	Price             *float64 `json:"price"`
	Currency          *string  `json:"currency"`
	IncludesTheory    bool     `json:"includesTheory"`
	IncludesPractical bool     `json:"includesPractical"`
	IncludesExam      bool     `json:"includesExam"`
}

type Lesson struct {
	ID         int  `json:"id"`
	CategoryID *int `json:"categoryId"`
	Titles
	Descriptions
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	ContentEn       *string   `json:"contentEn"`
	Difficulty      string    `json:"difficulty"`
	DurationMinutes *int      `json:"durationMinutes"`
	Manufacturer    *string   `json:"manufacturer"`
	VehicleType     *string   `json:"vehicleType"`
	Tools           *string   `json:"tools"`
	Materials       *string   `json:"materials"`
	Rating          *float64  `json:"rating"`
	RatingCount     int       `json:"ratingCount"`
	ViewCount       int       `json:"viewCount"`
	IsPublished     bool      `json:"isPublished"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
	Category        *Category `json:"category"`
}

type User struct {
	ID                int       `json:"id"`
	OpenID            string    `json:"openId"`
	Name              *string   `json:"name"`
	Email             *string   `json:"email"`
	LoginMethod       *string   `json:"loginMethod"`
	Role              string    `json:"role"`
	PreferredLanguage *string   `json:"preferredLanguage"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
	LastSignedIn      time.Time `json:"lastSignedIn"`
}

// MutationResult is returned by every write procedure.
type MutationResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	ID      int    `json:"id,omitempty"`
}

type Stats struct {
	TotalUsers        int `json:"totalUsers"`
	ActiveCourses     int `json:"activeCourses"`
	JobListings       int `json:"jobListings"`
	MarketplaceItems  int `json:"marketplaceItems"`
	KnowledgeArticles int `json:"knowledgeArticles"`
	DrivingSchools    int `json:"drivingSchools"`
}

type ScrapingLog struct {
	ID           int        `json:"id"`
	Status       string     `json:"status"`
	ItemsFound   int        `json:"itemsFound"`
	ItemsAdded   int        `json:"itemsAdded"`
	ErrorMessage *string    `json:"errorMessage"`
	StartedAt    time.Time  `json:"startedAt"`
	CompletedAt  *time.Time `json:"completedAt"`
}

type ScrapingSource struct {
	ID              int          `json:"id"`
	Name            string       `json:"name"`
	URL             string       `json:"url"`
	SourceType      string       `json:"sourceType"`
	Region          string       `json:"region"`
	IsActive        bool         `json:"isActive"`
	LastScrapedAt   *time.Time   `json:"lastScrapedAt"`
	ScrapeFrequency string       `json:"scrapeFrequency"`
	LatestLog       *ScrapingLog `json:"latestLog"`
}
