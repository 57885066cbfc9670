package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"

	ListingStatusActive = "active"
)

type Repository struct {
	db pg.DBI
}

func New(db pg.DBI) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		return db.Ping(ctx)
	}

	return nil
}

func (r *Repository) Close() error {
	if db, ok := r.db.(*pg.DB); ok {
		return db.Close()
	}

	return nil
}

// selectOne runs q and maps pg.ErrNoRows to nil error and false.
func selectOne(q *orm.Query) (bool, error) {
	err := q.Select()
	if errors.Is(err, pg.ErrNoRows) {
		return false, nil
	} else if err != nil {
		return false, err
	}

	return true, nil
}

// Courses returns courses matching search, newest first.
func (r *Repository) Courses(ctx context.Context, search *CourseSearch, pager Pager) ([]Course, error) {
	courses := []Course{}
	q := r.db.ModelContext(ctx, &courses).Relation("Category")
	q = pager.Apply(search.Apply(q)).
		OrderExpr(`"t"."createdAt" DESC, "t"."courseId" DESC`)

	if err := q.Select(); err != nil {
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}

	return courses, nil
}

func (r *Repository) CountCourses(ctx context.Context, search *CourseSearch) (int, error) {
	count, err := search.Apply(r.db.ModelContext(ctx, (*Course)(nil))).Count()
	if err != nil {
		return 0, fmt.Errorf("failed to count courses: %w", err)
	}

	return count, nil
}

func (r *Repository) CourseByID(ctx context.Context, courseID int) (*Course, error) {
	course := &Course{}
	ok, err := selectOne(r.db.ModelContext(ctx, course).
		Relation("Category").
		Where(`"t"."courseId" = ?`, courseID))
	if err != nil {
		return nil, fmt.Errorf("failed to get course by id: %w", err)
	} else if !ok {
		return nil, nil
	}

	return course, nil
}

func (r *Repository) CourseCategories(ctx context.Context) ([]CourseCategory, error) {
	categories := []CourseCategory{}
	err := r.db.ModelContext(ctx, &categories).
		OrderExpr(`"t"."nameEn" ASC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query course categories: %w", err)
	}

	return categories, nil
}

// TrainingMaterials returns the materials of a course in their display order.
func (r *Repository) TrainingMaterials(ctx context.Context, courseID int) ([]TrainingMaterial, error) {
	materials := []TrainingMaterial{}
	err := r.db.ModelContext(ctx, &materials).
		Where(`"t"."courseId" = ?`, courseID).
		OrderExpr(`"t"."orderIndex" ASC, "t"."trainingMaterialId" ASC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query training materials: %w", err)
	}

	return materials, nil
}

// AddCourseProgress enrolls a user into a course.
func (r *Repository) AddCourseProgress(ctx context.Context, userID, courseID int) (*UserCourseProgress, error) {
	progress := &UserCourseProgress{
		UserID:             &userID,
		CourseID:           &courseID,
		CompletedMaterials: []int{},
	}
	if _, err := r.db.ModelContext(ctx, progress).Returning("*").Insert(); err != nil {
		return nil, fmt.Errorf("failed to insert course progress: %w", err)
	}

	return progress, nil
}

// Jobs returns jobs matching search, most recently posted first.
func (r *Repository) Jobs(ctx context.Context, search *JobSearch, pager Pager) ([]Job, error) {
	jobs := []Job{}
	q := r.db.ModelContext(ctx, &jobs).Relation("Category")
	q = pager.Apply(search.Apply(q)).
		OrderExpr(`"t"."postedAt" DESC, "t"."jobId" DESC`)

	if err := q.Select(); err != nil {
		return nil, fmt.Errorf("failed to query jobs: %w", err)
	}

	return jobs, nil
}

func (r *Repository) CountJobs(ctx context.Context, search *JobSearch) (int, error) {
	count, err := search.Apply(r.db.ModelContext(ctx, (*Job)(nil))).Count()
	if err != nil {
		return 0, fmt.Errorf("failed to count jobs: %w", err)
	}

	return count, nil
}

func (r *Repository) JobByID(ctx context.Context, jobID int) (*Job, error) {
	job := &Job{}
	ok, err := selectOne(r.db.ModelContext(ctx, job).
		Relation("Category").
		Where(`"t"."jobId" = ?`, jobID))
	if err != nil {
		return nil, fmt.Errorf("failed to get job by id: %w", err)
	} else if !ok {
		return nil, nil
	}

	return job, nil
}

func (r *Repository) JobCategories(ctx context.Context) ([]JobCategory, error) {
	categories := []JobCategory{}
	err := r.db.ModelContext(ctx, &categories).
		OrderExpr(`"t"."nameEn" ASC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query job categories: %w", err)
	}

	return categories, nil
}

func (r *Repository) AddSavedJob(ctx context.Context, userID, jobID int) (*SavedJob, error) {
	saved := &SavedJob{UserID: userID, JobID: jobID}
	if _, err := r.db.ModelContext(ctx, saved).Returning("*").Insert(); err != nil {
		return nil, fmt.Errorf("failed to insert saved job: %w", err)
	}

	return saved, nil
}

// Listings returns marketplace listings matching search, newest first.
func (r *Repository) Listings(ctx context.Context, search *ListingSearch, pager Pager) ([]Listing, error) {
	listings := []Listing{}
	q := r.db.ModelContext(ctx, &listings).Relation("Category")
	q = pager.Apply(search.Apply(q)).
		OrderExpr(`"t"."createdAt" DESC, "t"."listingId" DESC`)

	if err := q.Select(); err != nil {
		return nil, fmt.Errorf("failed to query listings: %w", err)
	}

	return listings, nil
}

func (r *Repository) CountListings(ctx context.Context, search *ListingSearch) (int, error) {
	count, err := search.Apply(r.db.ModelContext(ctx, (*Listing)(nil))).Count()
	if err != nil {
		return 0, fmt.Errorf("failed to count listings: %w", err)
	}

	return count, nil
}

func (r *Repository) ListingByID(ctx context.Context, listingID int) (*Listing, error) {
	listing := &Listing{}
	ok, err := selectOne(r.db.ModelContext(ctx, listing).
		Relation("Category").
		Where(`"t"."listingId" = ?`, listingID))
	if err != nil {
		return nil, fmt.Errorf("failed to get listing by id: %w", err)
	} else if !ok {
		return nil, nil
	}

	return listing, nil
}

func (r *Repository) EquipmentCategories(ctx context.Context) ([]EquipmentCategory, error) {
	categories := []EquipmentCategory{}
	err := r.db.ModelContext(ctx, &categories).
		OrderExpr(`"t"."nameEn" ASC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query equipment categories: %w", err)
	}

	return categories, nil
}

// AddListing stores a new listing. Status defaults to active.
func (r *Repository) AddListing(ctx context.Context, listing *Listing) (*Listing, error) {
	if listing.Status == "" {
		listing.Status = ListingStatusActive
	}

	if _, err := r.db.ModelContext(ctx, listing).Returning("*").Insert(); err != nil {
		return nil, fmt.Errorf("failed to insert listing: %w", err)
	}

	return listing, nil
}

// Articles returns knowledge articles matching search, newest first.
func (r *Repository) Articles(ctx context.Context, search *ArticleSearch, pager Pager) ([]KnowledgeArticle, error) {
	articles := []KnowledgeArticle{}
	q := r.db.ModelContext(ctx, &articles).Relation("Category")
	q = pager.Apply(search.Apply(q)).
		OrderExpr(`"t"."createdAt" DESC, "t"."knowledgeArticleId" DESC`)

	if err := q.Select(); err != nil {
		return nil, fmt.Errorf("failed to query articles: %w", err)
	}

	return articles, nil
}

func (r *Repository) CountArticles(ctx context.Context, search *ArticleSearch) (int, error) {
	count, err := search.Apply(r.db.ModelContext(ctx, (*KnowledgeArticle)(nil))).Count()
	if err != nil {
		return 0, fmt.Errorf("failed to count articles: %w", err)
	}

	return count, nil
}

func (r *Repository) ArticleByID(ctx context.Context, articleID int) (*KnowledgeArticle, error) {
	article := &KnowledgeArticle{}
	ok, err := selectOne(r.db.ModelContext(ctx, article).
		Relation("Category").
		Where(`"t"."knowledgeArticleId" = ?`, articleID))
	if err != nil {
		return nil, fmt.Errorf("failed to get article by id: %w", err)
	} else if !ok {
		return nil, nil
	}

	return article, nil
}

func (r *Repository) KnowledgeCategories(ctx context.Context) ([]KnowledgeCategory, error) {
	categories := []KnowledgeCategory{}
	err := r.db.ModelContext(ctx, &categories).
		OrderExpr(`"t"."nameEn" ASC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query knowledge categories: %w", err)
	}

	return categories, nil
}

// LicenseGuides returns license requirements ordered by country name.
func (r *Repository) LicenseGuides(ctx context.Context, search *LicenseGuideSearch, pager Pager) ([]LicenseRequirement, error) {
	guides := []LicenseRequirement{}
	q := r.db.ModelContext(ctx, &guides).Relation("LicenseType")
	q = pager.Apply(search.Apply(q)).
		OrderExpr(`"t"."country" ASC, "t"."licenseRequirementId" ASC`)

	if err := q.Select(); err != nil {
		return nil, fmt.Errorf("failed to query license guides: %w", err)
	}

	return guides, nil
}

func (r *Repository) CountLicenseGuides(ctx context.Context, search *LicenseGuideSearch) (int, error) {
	count, err := search.Apply(r.db.ModelContext(ctx, (*LicenseRequirement)(nil))).Count()
	if err != nil {
		return 0, fmt.Errorf("failed to count license guides: %w", err)
	}

	return count, nil
}

// LicenseTypes returns license types, optionally limited to a region.
func (r *Repository) LicenseTypes(ctx context.Context, region *string) ([]LicenseType, error) {
	types := []LicenseType{}
	q := r.db.ModelContext(ctx, &types)
	if region != nil {
		q.Where(`"t"."region" = ?`, *region)
	}

	err := q.OrderExpr(`"t"."code" ASC, "t"."licenseTypeId" ASC`).Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query license types: %w", err)
	}

	return types, nil
}

// TestMaterials returns study materials, official ones first.
func (r *Repository) TestMaterials(ctx context.Context, search *TestMaterialSearch) ([]TestMaterial, error) {
	materials := []TestMaterial{}
	q := search.Apply(r.db.ModelContext(ctx, &materials))

	err := q.OrderExpr(`"t"."isOfficial" DESC, "t"."testMaterialId" ASC`).Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query test materials: %w", err)
	}

	return materials, nil
}

// Schools returns driving schools ordered by rating, unrated last.
func (r *Repository) Schools(ctx context.Context, search *SchoolSearch, pager Pager) ([]DrivingSchool, error) {
	schools := []DrivingSchool{}
	q := r.db.ModelContext(ctx, &schools)
	q = pager.Apply(search.Apply(q)).
		OrderExpr(`"t"."rating" DESC NULLS LAST, "t"."drivingSchoolId" ASC`)

	if err := q.Select(); err != nil {
		return nil, fmt.Errorf("failed to query schools: %w", err)
	}

	return schools, nil
}

func (r *Repository) CountSchools(ctx context.Context, search *SchoolSearch) (int, error) {
	count, err := search.Apply(r.db.ModelContext(ctx, (*DrivingSchool)(nil))).Count()
	if err != nil {
		return 0, fmt.Errorf("failed to count schools: %w", err)
	}

	return count, nil
}

func (r *Repository) SchoolByID(ctx context.Context, schoolID int) (*DrivingSchool, error) {
	school := &DrivingSchool{}
	ok, err := selectOne(r.db.ModelContext(ctx, school).
		Where(`"t"."drivingSchoolId" = ?`, schoolID))
	if err != nil {
		return nil, fmt.Errorf("failed to get school by id: %w", err)
	} else if !ok {
		return nil, nil
	}

	return school, nil
}

func (r *Repository) TrainingPrograms(ctx context.Context, schoolID int) ([]TrainingProgram, error) {
	programs := []TrainingProgram{}
	err := r.db.ModelContext(ctx, &programs).
		Where(`"t"."schoolId" = ?`, schoolID).
		OrderExpr(`"t"."trainingProgramId" ASC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query training programs: %w", err)
	}

	return programs, nil
}

// Lessons returns mechanics lessons ordered by rating, unrated last.
func (r *Repository) Lessons(ctx context.Context, search *LessonSearch, pager Pager) ([]MechanicsLesson, error) {
	lessons := []MechanicsLesson{}
	q := r.db.ModelContext(ctx, &lessons).Relation("Category")
	q = pager.Apply(search.Apply(q)).
		OrderExpr(`"t"."rating" DESC NULLS LAST, "t"."mechanicsLessonId" ASC`)

	if err := q.Select(); err != nil {
		return nil, fmt.Errorf("failed to query lessons: %w", err)
	}

	return lessons, nil
}

func (r *Repository) CountLessons(ctx context.Context, search *LessonSearch) (int, error) {
	count, err := search.Apply(r.db.ModelContext(ctx, (*MechanicsLesson)(nil))).Count()
	if err != nil {
		return 0, fmt.Errorf("failed to count lessons: %w", err)
	}

	return count, nil
}

func (r *Repository) LessonByID(ctx context.Context, lessonID int) (*MechanicsLesson, error) {
	lesson := &MechanicsLesson{}
	ok, err := selectOne(r.db.ModelContext(ctx, lesson).
		Relation("Category").
		Where(`"t"."mechanicsLessonId" = ?`, lessonID))
	if err != nil {
		return nil, fmt.Errorf("failed to get lesson by id: %w", err)
	} else if !ok {
		return nil, nil
	}

	return lesson, nil
}

func (r *Repository) LessonCategories(ctx context.Context) ([]MechanicsLessonCategory, error) {
	categories := []MechanicsLessonCategory{}
	err := r.db.ModelContext(ctx, &categories).
		OrderExpr(`"t"."nameEn" ASC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query lesson categories: %w", err)
	}

	return categories, nil
}

func (r *Repository) UserByOpenID(ctx context.Context, openID string) (*User, error) {
	user := &User{}
	ok, err := selectOne(r.db.ModelContext(ctx, user).
		Where(`"t"."openId" = ?`, openID))
	if err != nil {
		return nil, fmt.Errorf("failed to get user by open id: %w", err)
	} else if !ok {
		return nil, nil
	}

	return user, nil
}

// UpsertUser inserts a user or refreshes an existing one matched by openId.
// Empty optional fields keep their stored values; a role is only ever raised to admin.
func (r *Repository) UpsertUser(ctx context.Context, user *User) (*User, error) {
	if user.OpenID == "" {
		return nil, errors.New("user openId is required")
	}

	_, err := r.db.ModelContext(ctx, user).
		OnConflict(`("openId") DO UPDATE`).
		Set(`"name" = COALESCE(EXCLUDED."name", "t"."name")`).
		Set(`"email" = COALESCE(EXCLUDED."email", "t"."email")`).
		Set(`"loginMethod" = COALESCE(EXCLUDED."loginMethod", "t"."loginMethod")`).
		Set(`"role" = CASE WHEN EXCLUDED."role" = 'admin' THEN EXCLUDED."role" ELSE "t"."role" END`).
		Set(`"lastSignedIn" = EXCLUDED."lastSignedIn"`).
		Returning("*").
		Insert()
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}

	return user, nil
}

// Stats holds live row counts for the admin dashboard.
type Stats struct {
	Users            int
	PublishedCourses int
	ActiveJobs       int
	ActiveListings   int
	Articles         int
	Schools          int
}

func (r *Repository) Stats(ctx context.Context) (*Stats, error) {
	var (
		s   Stats
		err error
	)

	if s.Users, err = r.db.ModelContext(ctx, (*User)(nil)).Count(); err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	if s.PublishedCourses, err = r.db.ModelContext(ctx, (*Course)(nil)).Where(`"t"."isPublished" = true`).Count(); err != nil {
		return nil, fmt.Errorf("failed to count courses: %w", err)
	}

	if s.ActiveJobs, err = r.db.ModelContext(ctx, (*Job)(nil)).Where(`"t"."isActive" = true`).Count(); err != nil {
		return nil, fmt.Errorf("failed to count jobs: %w", err)
	}

	if s.ActiveListings, err = r.db.ModelContext(ctx, (*Listing)(nil)).Where(`"t"."status" = ?`, ListingStatusActive).Count(); err != nil {
		return nil, fmt.Errorf("failed to count listings: %w", err)
	}

	if s.Articles, err = r.db.ModelContext(ctx, (*KnowledgeArticle)(nil)).Where(`"t"."isPublished" = true`).Count(); err != nil {
		return nil, fmt.Errorf("failed to count articles: %w", err)
	}

	if s.Schools, err = r.db.ModelContext(ctx, (*DrivingSchool)(nil)).Count(); err != nil {
		return nil, fmt.Errorf("failed to count schools: %w", err)
	}

	return &s, nil
}

func (r *Repository) ScrapingSources(ctx context.Context) ([]ScrapingSource, error) {
	sources := []ScrapingSource{}
	err := r.db.ModelContext(ctx, &sources).
		OrderExpr(`"t"."name" ASC, "t"."scrapingSourceId" ASC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query scraping sources: %w", err)
	}

	return sources, nil
}

// LatestScrapingLogs returns the most recent log entry per source, keyed by source id.
func (r *Repository) LatestScrapingLogs(ctx context.Context, sourceIDs []int) (map[int]ScrapingLog, error) {
	if len(sourceIDs) == 0 {
		return map[int]ScrapingLog{}, nil
	}

	var logs []ScrapingLog
	err := r.db.ModelContext(ctx, &logs).
		DistinctOn(`"t"."sourceId"`).
		Where(`"t"."sourceId" IN (?)`, pg.In(sourceIDs)).
		OrderExpr(`"t"."sourceId" ASC, "t"."startedAt" DESC, "t"."scrapingLogId" DESC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query scraping logs: %w", err)
	}

	byID := make(map[int]ScrapingLog, len(logs))
	for _, l := range logs {
		if l.SourceID != nil {
			byID[*l.SourceID] = l
		}
	}

	return byID, nil
}
