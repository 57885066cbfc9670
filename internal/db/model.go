// nolint
//
//lint:file-ignore U1000 ignore unused code, it's generated
package db

import (
	"time"
)

var Tables = struct {
	User                    struct{ Name, Alias string }
	CourseCategory          struct{ Name, Alias string }
	Course                  struct{ Name, Alias string }
	TrainingMaterial        struct{ Name, Alias string }
	Certification           struct{ Name, Alias string }
	UserCourseProgress      struct{ Name, Alias string }
	JobCategory             struct{ Name, Alias string }
	Job                     struct{ Name, Alias string }
	SavedJob                struct{ Name, Alias string }
	ScrapingSource          struct{ Name, Alias string }
	ScrapingLog             struct{ Name, Alias string }
	EquipmentCategory       struct{ Name, Alias string }
	Listing                 struct{ Name, Alias string }
	KnowledgeCategory       struct{ Name, Alias string }
	KnowledgeArticle        struct{ Name, Alias string }
	LicenseType             struct{ Name, Alias string }
	LicenseRequirement      struct{ Name, Alias string }
	TestMaterial            struct{ Name, Alias string }
	DrivingSchool           struct{ Name, Alias string }
	TrainingProgram         struct{ Name, Alias string }
	MechanicsLessonCategory struct{ Name, Alias string }
	MechanicsLesson         struct{ Name, Alias string }
}{
	User:                    struct{ Name, Alias string }{Name: "users", Alias: "t"},
	CourseCategory:          struct{ Name, Alias string }{Name: "courseCategories", Alias: "t"},
	Course:                  struct{ Name, Alias string }{Name: "courses", Alias: "t"},
	TrainingMaterial:        struct{ Name, Alias string }{Name: "trainingMaterials", Alias: "t"},
	Certification:           struct{ Name, Alias string }{Name: "certifications", Alias: "t"},
	UserCourseProgress:      struct{ Name, Alias string }{Name: "userCourseProgress", Alias: "t"},
	JobCategory:             struct{ Name, Alias string }{Name: "jobCategories", Alias: "t"},
	Job:                     struct{ Name, Alias string }{Name: "jobs", Alias: "t"},
	SavedJob:                struct{ Name, Alias string }{Name: "savedJobs", Alias: "t"},
	ScrapingSource:          struct{ Name, Alias string }{Name: "scrapingSources", Alias: "t"},
	ScrapingLog:             struct{ Name, Alias string }{Name: "scrapingLogs", Alias: "t"},
	EquipmentCategory:       struct{ Name, Alias string }{Name: "equipmentCategories", Alias: "t"},
	Listing:                 struct{ Name, Alias string }{Name: "listings", Alias: "t"},
	KnowledgeCategory:       struct{ Name, Alias string }{Name: "knowledgeCategories", Alias: "t"},
	KnowledgeArticle:        struct{ Name, Alias string }{Name: "knowledgeArticles", Alias: "t"},
	LicenseType:             struct{ Name, Alias string }{Name: "licenseTypes", Alias: "t"},
	LicenseRequirement:      struct{ Name, Alias string }{Name: "licenseRequirements", Alias: "t"},
	TestMaterial:            struct{ Name, Alias string }{Name: "testMaterials", Alias: "t"},
	DrivingSchool:           struct{ Name, Alias string }{Name: "drivingSchools", Alias: "t"},
	TrainingProgram:         struct{ Name, Alias string }{Name: "trainingPrograms", Alias: "t"},
	MechanicsLessonCategory: struct{ Name, Alias string }{Name: "mechanicsLessonCategories", Alias: "t"},
	MechanicsLesson:         struct{ Name, Alias string }{Name: "mechanicsLessons", Alias: "t"},
}

type User struct {
	tableName struct{} `pg:"users,alias:t,discard_unknown_columns"`

	ID                int       `pg:"userId,pk"`
	OpenID            string    `pg:"openId,use_zero"`
	Name              *string   `pg:"name"`
	Email             *string   `pg:"email"`
	LoginMethod       *string   `pg:"loginMethod"`
	Role              string    `pg:"role"`
	PreferredLanguage *string   `pg:"preferredLanguage"`
	CreatedAt         time.Time `pg:"createdAt"`
	UpdatedAt         time.Time `pg:"updatedAt"`
	LastSignedIn      time.Time `pg:"lastSignedIn"`
}

type CourseCategory struct {
	tableName struct{} `pg:"courseCategories,alias:t,discard_unknown_columns"`

	ID        int       `pg:"courseCategoryId,pk"`
	NameEn    string    `pg:"nameEn,use_zero"`
	NameDe    *string   `pg:"nameDe"`
	NameEs    *string   `pg:"nameEs"`
	NameFr    *string   `pg:"nameFr"`
	NameAr    *string   `pg:"nameAr"`
	Slug      string    `pg:"slug,use_zero"`
	Icon      *string   `pg:"icon"`
	CreatedAt time.Time `pg:"createdAt"`
}

type Course struct {
	tableName struct{} `pg:"courses,alias:t,discard_unknown_columns"`

	ID            int       `pg:"courseId,pk"`
	CategoryID    *int      `pg:"categoryId"`
	TitleEn       string    `pg:"titleEn,use_zero"`
	TitleDe       *string   `pg:"titleDe"`
	TitleEs       *string   `pg:"titleEs"`
	TitleFr       *string   `pg:"titleFr"`
	TitleAr       *string   `pg:"titleAr"`
	DescriptionEn *string   `pg:"descriptionEn"`
	DescriptionDe *string   `pg:"descriptionDe"`
	DescriptionEs *string   `pg:"descriptionEs"`
	DescriptionFr *string   `pg:"descriptionFr"`
	DescriptionAr *string   `pg:"descriptionAr"`
	Level         string    `pg:"level"`
	DurationHours *int      `pg:"durationHours"`
	ImageURL      *string   `pg:"imageUrl"`
	IsPublished   bool      `pg:"isPublished,use_zero"`
	CreatedAt     time.Time `pg:"createdAt"`
	UpdatedAt     time.Time `pg:"updatedAt"`

	Category *CourseCategory `pg:"fk:categoryId,rel:has-one"`
}

type TrainingMaterial struct {
	tableName struct{} `pg:"trainingMaterials,alias:t,discard_unknown_columns"`

	ID          int       `pg:"trainingMaterialId,pk"`
	CourseID    *int      `pg:"courseId"`
	TitleEn     string    `pg:"titleEn,use_zero"`
	TitleDe     *string   `pg:"titleDe"`
	TitleEs     *string   `pg:"titleEs"`
	TitleFr     *string   `pg:"titleFr"`
	TitleAr     *string   `pg:"titleAr"`
	ContentType string    `pg:"contentType"`
	ContentURL  *string   `pg:"contentUrl"`
	OrderIndex  int       `pg:"orderIndex,use_zero"`
	CreatedAt   time.Time `pg:"createdAt"`
}

type Certification struct {
	tableName struct{} `pg:"certifications,alias:t,discard_unknown_columns"`

	ID                int        `pg:"certificationId,pk"`
	UserID            *int       `pg:"userId"`
	CourseID          *int       `pg:"courseId"`
	CertificateNumber string     `pg:"certificateNumber,use_zero"`
	IssuedAt          time.Time  `pg:"issuedAt"`
	ExpiresAt         *time.Time `pg:"expiresAt"`
	Status            string     `pg:"status"`
}

type UserCourseProgress struct {
	tableName struct{} `pg:"userCourseProgress,alias:t,discard_unknown_columns"`

	ID                 int        `pg:"userCourseProgressId,pk"`
	UserID             *int       `pg:"userId"`
	CourseID           *int       `pg:"courseId"`
	ProgressPercent    int        `pg:"progressPercent,use_zero"`
	CompletedMaterials []int      `pg:"completedMaterials,array,use_zero"`
	StartedAt          time.Time  `pg:"startedAt"`
	CompletedAt        *time.Time `pg:"completedAt"`
}

type JobCategory struct {
	tableName struct{} `pg:"jobCategories,alias:t,discard_unknown_columns"`

	ID        int       `pg:"jobCategoryId,pk"`
	NameEn    string    `pg:"nameEn,use_zero"`
	NameDe    *string   `pg:"nameDe"`
	NameEs    *string   `pg:"nameEs"`
	NameFr    *string   `pg:"nameFr"`
	NameAr    *string   `pg:"nameAr"`
	Slug      string    `pg:"slug,use_zero"`
	CreatedAt time.Time `pg:"createdAt"`
}

type Job struct {
	tableName struct{} `pg:"jobs,alias:t,discard_unknown_columns"`

	ID              int        `pg:"jobId,pk"`
	CategoryID      *int       `pg:"categoryId"`
	TitleEn         string     `pg:"titleEn,use_zero"`
	TitleDe         *string    `pg:"titleDe"`
	TitleEs         *string    `pg:"titleEs"`
	TitleFr         *string    `pg:"titleFr"`
	TitleAr         *string    `pg:"titleAr"`
	DescriptionEn   *string    `pg:"descriptionEn"`
	DescriptionDe   *string    `pg:"descriptionDe"`
	DescriptionEs   *string    `pg:"descriptionEs"`
	DescriptionFr   *string    `pg:"descriptionFr"`
	DescriptionAr   *string    `pg:"descriptionAr"`
	Company         *string    `pg:"company"`
	Location        *string    `pg:"location"`
	Country         *string    `pg:"country"`
	Region          string     `pg:"region"`
	SalaryMin       *float64   `pg:"salaryMin"`
	SalaryMax       *float64   `pg:"salaryMax"`
	SalaryCurrency  *string    `pg:"salaryCurrency"`
	EmploymentType  string     `pg:"employmentType"`
	ExperienceLevel string     `pg:"experienceLevel"`
	SourceURL       *string    `pg:"sourceUrl"`
	SourceType      string     `pg:"sourceType"`
	ScrapedFrom     *string    `pg:"scrapedFrom"`
	IsActive        bool       `pg:"isActive,use_zero"`
	PostedAt        time.Time  `pg:"postedAt"`
	ExpiresAt       *time.Time `pg:"expiresAt"`
	CreatedAt       time.Time  `pg:"createdAt"`
	UpdatedAt       time.Time  `pg:"updatedAt"`

	Category *JobCategory `pg:"fk:categoryId,rel:has-one"`
}

type SavedJob struct {
	tableName struct{} `pg:"savedJobs,alias:t,discard_unknown_columns"`

	ID        int       `pg:"savedJobId,pk"`
	UserID    int       `pg:"userId,use_zero"`
	JobID     int       `pg:"jobId,use_zero"`
	CreatedAt time.Time `pg:"createdAt"`
}

type ScrapingSource struct {
	tableName struct{} `pg:"scrapingSources,alias:t,discard_unknown_columns"`

	ID              int        `pg:"scrapingSourceId,pk"`
	Name            string     `pg:"name,use_zero"`
	URL             string     `pg:"url,use_zero"`
	SourceType      string     `pg:"sourceType,use_zero"`
	Region          string     `pg:"region"`
	IsActive        bool       `pg:"isActive,use_zero"`
	LastScrapedAt   *time.Time `pg:"lastScrapedAt"`
	ScrapeFrequency string     `pg:"scrapeFrequency"`
	ConfigJSON      *string    `pg:"configJson"`
	CreatedAt       time.Time  `pg:"createdAt"`
}

type ScrapingLog struct {
	tableName struct{} `pg:"scrapingLogs,alias:t,discard_unknown_columns"`

	ID           int        `pg:"scrapingLogId,pk"`
	SourceID     *int       `pg:"sourceId"`
	Status       string     `pg:"status,use_zero"`
	ItemsFound   int        `pg:"itemsFound,use_zero"`
	ItemsAdded   int        `pg:"itemsAdded,use_zero"`
	ErrorMessage *string    `pg:"errorMessage"`
	StartedAt    time.Time  `pg:"startedAt"`
	CompletedAt  *time.Time `pg:"completedAt"`
}

type EquipmentCategory struct {
	tableName struct{} `pg:"equipmentCategories,alias:t,discard_unknown_columns"`

	ID        int       `pg:"equipmentCategoryId,pk"`
	NameEn    string    `pg:"nameEn,use_zero"`
	NameDe    *string   `pg:"nameDe"`
	NameEs    *string   `pg:"nameEs"`
	NameFr    *string   `pg:"nameFr"`
	NameAr    *string   `pg:"nameAr"`
	Slug      string    `pg:"slug,use_zero"`
	Icon      *string   `pg:"icon"`
	CreatedAt time.Time `pg:"createdAt"`
}

type Listing struct {
	tableName struct{} `pg:"listings,alias:t,discard_unknown_columns"`

	ID            int       `pg:"listingId,pk"`
	UserID        *int      `pg:"userId"`
	CategoryID    *int      `pg:"categoryId"`
	TitleEn       string    `pg:"titleEn,use_zero"`
	TitleDe       *string   `pg:"titleDe"`
	TitleEs       *string   `pg:"titleEs"`
	TitleFr       *string   `pg:"titleFr"`
	TitleAr       *string   `pg:"titleAr"`
	DescriptionEn *string   `pg:"descriptionEn"`
	DescriptionDe *string   `pg:"descriptionDe"`
	DescriptionEs *string   `pg:"descriptionEs"`
	DescriptionFr *string   `pg:"descriptionFr"`
	DescriptionAr *string   `pg:"descriptionAr"`
	Price         *float64  `pg:"price"`
	Currency      *string   `pg:"currency"`
	Condition     string    `pg:"condition"`
	Year          *int      `pg:"year"`
	Manufacturer  *string   `pg:"manufacturer"`
	Model         *string   `pg:"model"`
	Location      *string   `pg:"location"`
	Country       *string   `pg:"country"`
	ImagesJSON    *string   `pg:"imagesJson"`
	ContactEmail  *string   `pg:"contactEmail"`
	ContactPhone  *string   `pg:"contactPhone"`
	Status        string    `pg:"status"`
	ViewCount     int       `pg:"viewCount,use_zero"`
	CreatedAt     time.Time `pg:"createdAt"`
	UpdatedAt     time.Time `pg:"updatedAt"`

	Category *EquipmentCategory `pg:"fk:categoryId,rel:has-one"`
}

type KnowledgeCategory struct {
	tableName struct{} `pg:"knowledgeCategories,alias:t,discard_unknown_columns"`

	ID        int       `pg:"knowledgeCategoryId,pk"`
	NameEn    string    `pg:"nameEn,use_zero"`
	NameDe    *string   `pg:"nameDe"`
	NameEs    *string   `pg:"nameEs"`
	NameFr    *string   `pg:"nameFr"`
	NameAr    *string   `pg:"nameAr"`
	Slug      string    `pg:"slug,use_zero"`
	ParentID  *int      `pg:"parentId"`
	Icon      *string   `pg:"icon"`
	CreatedAt time.Time `pg:"createdAt"`
}

type KnowledgeArticle struct {
	tableName struct{} `pg:"knowledgeArticles,alias:t,discard_unknown_columns"`

	ID           int       `pg:"knowledgeArticleId,pk"`
	CategoryID   *int      `pg:"categoryId"`
	TitleEn      string    `pg:"titleEn,use_zero"`
	TitleDe      *string   `pg:"titleDe"`
	TitleEs      *string   `pg:"titleEs"`
	TitleFr      *string   `pg:"titleFr"`
	TitleAr      *string   `pg:"titleAr"`
	ContentEn    *string   `pg:"contentEn"`
	ContentDe    *string   `pg:"contentDe"`
	ContentEs    *string   `pg:"contentEs"`
	ContentFr    *string   `pg:"contentFr"`
	ContentAr    *string   `pg:"contentAr"`
	ArticleType  string    `pg:"articleType"`
	Manufacturer *string   `pg:"manufacturer"`
	VehicleType  *string   `pg:"vehicleType"`
	SourceURL    *string   `pg:"sourceUrl"`
	SourceType   string    `pg:"sourceType"`
	ScrapedFrom  *string   `pg:"scrapedFrom"`
	TagsJSON     *string   `pg:"tagsJson"`
	ViewCount    int       `pg:"viewCount,use_zero"`
	IsPublished  bool      `pg:"isPublished,use_zero"`
	CreatedAt    time.Time `pg:"createdAt"`
	UpdatedAt    time.Time `pg:"updatedAt"`

	Category *KnowledgeCategory `pg:"fk:categoryId,rel:has-one"`
}

type LicenseType struct {
	tableName struct{} `pg:"licenseTypes,alias:t,discard_unknown_columns"`

	ID            int       `pg:"licenseTypeId,pk"`
	Code          string    `pg:"code,use_zero"`
	NameEn        string    `pg:"nameEn,use_zero"`
	NameDe        *string   `pg:"nameDe"`
	NameEs        *string   `pg:"nameEs"`
	NameFr        *string   `pg:"nameFr"`
	NameAr        *string   `pg:"nameAr"`
	DescriptionEn *string   `pg:"descriptionEn"`
	DescriptionDe *string   `pg:"descriptionDe"`
	DescriptionEs *string   `pg:"descriptionEs"`
	DescriptionFr *string   `pg:"descriptionFr"`
	DescriptionAr *string   `pg:"descriptionAr"`
	VehicleClass  string    `pg:"vehicleClass"`
	Region        string    `pg:"region,use_zero"`
	CreatedAt     time.Time `pg:"createdAt"`
}

type LicenseRequirement struct {
	tableName struct{} `pg:"licenseRequirements,alias:t,discard_unknown_columns"`

	ID              int        `pg:"licenseRequirementId,pk"`
	LicenseTypeID   *int       `pg:"licenseTypeId"`
	Country         string     `pg:"country,use_zero"`
	CountryCode     string     `pg:"countryCode,use_zero"`
	RequirementsEn  *string    `pg:"requirementsEn"`
	RequirementsDe  *string    `pg:"requirementsDe"`
	RequirementsEs  *string    `pg:"requirementsEs"`
	RequirementsFr  *string    `pg:"requirementsFr"`
	RequirementsAr  *string    `pg:"requirementsAr"`
	MinimumAge      *int       `pg:"minimumAge"`
	MedicalRequired bool       `pg:"medicalRequired,use_zero"`
	TestTypesJSON   *string    `pg:"testTypesJson"`
	ValidityYears   *int       `pg:"validityYears"`
	RenewalProcess  *string    `pg:"renewalProcess"`
	SourceURL       *string    `pg:"sourceUrl"`
	SourceType      string     `pg:"sourceType"`
	LastVerified    *time.Time `pg:"lastVerified"`
	CreatedAt       time.Time  `pg:"createdAt"`
	UpdatedAt       time.Time  `pg:"updatedAt"`

	LicenseType *LicenseType `pg:"fk:licenseTypeId,rel:has-one"`
}

type TestMaterial struct {
	tableName struct{} `pg:"testMaterials,alias:t,discard_unknown_columns"`

	ID            int       `pg:"testMaterialId,pk"`
	LicenseTypeID *int      `pg:"licenseTypeId"`
	Country       *string   `pg:"country"`
	TitleEn       string    `pg:"titleEn,use_zero"`
	TitleDe       *string   `pg:"titleDe"`
	TitleEs       *string   `pg:"titleEs"`
	TitleFr       *string   `pg:"titleFr"`
	TitleAr       *string   `pg:"titleAr"`
	MaterialType  string    `pg:"materialType"`
	ContentURL    *string   `pg:"contentUrl"`
	SourceURL     *string   `pg:"sourceUrl"`
	SourceType    string    `pg:"sourceType"`
	IsOfficial    bool      `pg:"isOfficial,use_zero"`
	CreatedAt     time.Time `pg:"createdAt"`
}

type DrivingSchool struct {
	tableName struct{} `pg:"drivingSchools,alias:t,discard_unknown_columns"`

	ID               int       `pg:"drivingSchoolId,pk"`
	Name             string    `pg:"name,use_zero"`
	DescriptionEn    *string   `pg:"descriptionEn"`
	DescriptionDe    *string   `pg:"descriptionDe"`
	DescriptionEs    *string   `pg:"descriptionEs"`
	DescriptionFr    *string   `pg:"descriptionFr"`
	DescriptionAr    *string   `pg:"descriptionAr"`
	Address          *string   `pg:"address"`
	City             *string   `pg:"city"`
	State            *string   `pg:"state"`
	Country          *string   `pg:"country"`
	CountryCode      *string   `pg:"countryCode"`
	Region           string    `pg:"region,use_zero"`
	Phone            *string   `pg:"phone"`
	Email            *string   `pg:"email"`
	Website          *string   `pg:"website"`
	LicenseTypesJSON *string   `pg:"licenseTypesJson"`
	ServicesJSON     *string   `pg:"servicesJson"`
	Rating           *float64  `pg:"rating"`
	ReviewCount      int       `pg:"reviewCount,use_zero"`
	PriceRange       *string   `pg:"priceRange"`
	ImageURL         *string   `pg:"imageUrl"`
	SourceURL        *string   `pg:"sourceUrl"`
	SourceType       string    `pg:"sourceType"`
	IsVerified       bool      `pg:"isVerified,use_zero"`
	CreatedAt        time.Time `pg:"createdAt"`
	UpdatedAt        time.Time `pg:"updatedAt"`
}

type TrainingProgram struct {
	tableName struct{} `pg:"trainingPrograms,alias:t,discard_unknown_columns"`

	ID                int       `pg:"trainingProgramId,pk"`
	SchoolID          *int      `pg:"schoolId"`
	TitleEn           string    `pg:"titleEn,use_zero"`
	TitleDe           *string   `pg:"titleDe"`
	TitleEs           *string   `pg:"titleEs"`
	TitleFr           *string   `pg:"titleFr"`
	TitleAr           *string   `pg:"titleAr"`
	DescriptionEn     *string   `pg:"descriptionEn"`
	DescriptionDe     *string   `pg:"descriptionDe"`
	DescriptionEs     *string   `pg:"descriptionEs"`
	DescriptionFr     *string   `pg:"descriptionFr"`
	DescriptionAr     *string   `pg:"descriptionAr"`
	LicenseType       *string   `pg:"licenseType"`
	DurationWeeks     *int      `pg:"durationWeeks"`
	Price             *float64  `pg:"price"`
	Currency          *string   `pg:"currency"`
	IncludesTheory    bool      `pg:"includesTheory,use_zero"`
	IncludesPractical bool      `pg:"includesPractical,use_zero"`
	IncludesExam      bool      `pg:"includesExam,use_zero"`
	CreatedAt         time.Time `pg:"createdAt"`
}

type MechanicsLessonCategory struct {
	tableName struct{} `pg:"mechanicsLessonCategories,alias:t,discard_unknown_columns"`

	ID            int       `pg:"mechanicsLessonCategoryId,pk"`
	NameEn        string    `pg:"nameEn,use_zero"`
	NameDe        *string   `pg:"nameDe"`
	NameEs        *string   `pg:"nameEs"`
	NameFr        *string   `pg:"nameFr"`
	NameAr        *string   `pg:"nameAr"`
	Slug          string    `pg:"slug,use_zero"`
	Icon          *string   `pg:"icon"`
	DescriptionEn *string   `pg:"descriptionEn"`
	CreatedAt     time.Time `pg:"createdAt"`
}

type MechanicsLesson struct {
	tableName struct{} `pg:"mechanicsLessons,alias:t,discard_unknown_columns"`

	ID              int       `pg:"mechanicsLessonId,pk"`
	CategoryID      *int      `pg:"categoryId"`
	TitleEn         string    `pg:"titleEn,use_zero"`
	TitleDe         *string   `pg:"titleDe"`
	TitleEs         *string   `pg:"titleEs"`
	TitleFr         *string   `pg:"titleFr"`
	TitleAr         *string   `pg:"titleAr"`
	DescriptionEn   *string   `pg:"descriptionEn"`
	DescriptionDe   *string   `pg:"descriptionDe"`
	DescriptionEs   *string   `pg:"descriptionEs"`
	DescriptionFr   *string   `pg:"descriptionFr"`
	DescriptionAr   *string   `pg:"descriptionAr"`
	ContentEn       *string   `pg:"contentEn"`
	Difficulty      string    `pg:"difficulty"`
	DurationMinutes *int      `pg:"durationMinutes"`
	Manufacturer    *string   `pg:"manufacturer"`
	VehicleType     *string   `pg:"vehicleType"`
	Tools           *string   `pg:"tools"`
	Materials       *string   `pg:"materials"`
	Rating          *float64  `pg:"rating"`
	RatingCount     int       `pg:"ratingCount,use_zero"`
	ViewCount       int       `pg:"viewCount,use_zero"`
	IsPublished     bool      `pg:"isPublished,use_zero"`
	CreatedAt       time.Time `pg:"createdAt"`
	UpdatedAt       time.Time `pg:"updatedAt"`

	Category *MechanicsLessonCategory `pg:"fk:categoryId,rel:has-one"`
}
