//go:build integration

package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_Jobs(t *testing.T) {
	_, ctx, repo := withTx(t)

	t.Run("region filter on 500 jobs", func(t *testing.T) {
		jobs, err := repo.Jobs(ctx, &JobSearch{Region: ptr("europe")}, Pager{Limit: 10})
		require.NoError(t, err)
		require.Len(t, jobs, 10)

		for i, j := range jobs {
			assert.Equal(t, "europe", j.Region)
			if i > 0 {
				assert.False(t, j.PostedAt.After(jobs[i-1].PostedAt), "jobs must be ordered by postedAt desc")
			}
		}
		assert.Equal(t, BaseTime, jobs[0].PostedAt.UTC())
		require.NotNil(t, jobs[0].Category)
		assert.Equal(t, "Long Haul", jobs[0].Category.NameEn)
	})

	t.Run("pages are disjoint and contiguous", func(t *testing.T) {
		first, err := repo.Jobs(ctx, nil, Pager{Limit: 25})
		require.NoError(t, err)
		second, err := repo.Jobs(ctx, nil, Pager{Limit: 25, Offset: 25})
		require.NoError(t, err)
		both, err := repo.Jobs(ctx, nil, Pager{Limit: 50})
		require.NoError(t, err)

		require.Len(t, first, 25)
		require.Len(t, second, 25)

		var ids []int
		for _, j := range append(first, second...) {
			ids = append(ids, j.ID)
		}
		var want []int
		for _, j := range both {
			want = append(want, j.ID)
		}
		assert.Equal(t, want, ids)
	})

	t.Run("filters are conjunctive", func(t *testing.T) {
		count, err := repo.CountJobs(ctx, &JobSearch{Region: ptr("europe")})
		require.NoError(t, err)
		assert.Equal(t, 167, count)

		jobs, err := repo.Jobs(ctx, &JobSearch{Region: ptr("europe"), CategoryID: ptr(2)}, NewPager(nil, nil))
		require.NoError(t, err)
		assert.Empty(t, jobs)
		assert.NotNil(t, jobs)
	})

	t.Run("search is case insensitive", func(t *testing.T) {
		jobs, err := repo.Jobs(ctx, &JobSearch{Search: ptr("LONG haul #1")}, Pager{Limit: 100})
		require.NoError(t, err)
		require.NotEmpty(t, jobs)
		for _, j := range jobs {
			assert.Contains(t, j.TitleEn, "Long Haul #1")
		}
	})

	t.Run("offset past the end", func(t *testing.T) {
		jobs, err := repo.Jobs(ctx, nil, Pager{Limit: 10, Offset: FixtureJobs})
		require.NoError(t, err)
		assert.Empty(t, jobs)
	})

	t.Run("by id", func(t *testing.T) {
		job, err := repo.JobByID(ctx, 1)
		require.NoError(t, err)
		require.NotNil(t, job)
		assert.Equal(t, "Long Haul #1", job.TitleEn)

		job, err = repo.JobByID(ctx, 999999)
		require.NoError(t, err)
		assert.Nil(t, job)
	})
}

func TestRepository_SaveJob(t *testing.T) {
	_, ctx, repo := withTx(t)

	saved, err := repo.AddSavedJob(ctx, 2, 10)
	require.NoError(t, err)
	assert.NotZero(t, saved.ID)
	assert.False(t, saved.CreatedAt.IsZero())
}

func TestRepository_Courses(t *testing.T) {
	_, ctx, repo := withTx(t)

	courses, err := repo.Courses(ctx, nil, NewPager(nil, nil))
	require.NoError(t, err)
	require.Len(t, courses, 6)
	for i := 1; i < len(courses); i++ {
		assert.True(t, courses[i-1].CreatedAt.After(courses[i].CreatedAt))
	}

	courses, err = repo.Courses(ctx, &CourseSearch{Search: ptr("engine")}, NewPager(nil, nil))
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "Engine Basics", courses[0].TitleEn)
	require.NotNil(t, courses[0].TitleDe)
	assert.Equal(t, "Motorengrundlagen", *courses[0].TitleDe)

	course, err := repo.CourseByID(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, course)

	materials, err := repo.TrainingMaterials(ctx, 1)
	require.NoError(t, err)
	require.Len(t, materials, 2)
	assert.Equal(t, 0, materials[0].OrderIndex)

	progress, err := repo.AddCourseProgress(ctx, 2, 1)
	require.NoError(t, err)
	assert.NotZero(t, progress.ID)
	assert.Equal(t, 0, progress.ProgressPercent)
}

func TestRepository_Listings(t *testing.T) {
	_, ctx, repo := withTx(t)

	listings, err := repo.Listings(ctx, &ListingSearch{MinPrice: ptr(20000.0), MaxPrice: ptr(30000.0)}, NewPager(nil, nil))
	require.NoError(t, err)
	require.NotEmpty(t, listings)
	for _, l := range listings {
		require.NotNil(t, l.Price)
		assert.GreaterOrEqual(t, *l.Price, 20000.0)
		assert.LessOrEqual(t, *l.Price, 30000.0)
	}

	created, err := repo.AddListing(ctx, &Listing{
		UserID:        ptr(2),
		CategoryID:    ptr(1),
		TitleEn:       "Scania R450 2019",
		DescriptionEn: ptr("One owner, serviced at dealer."),
		Price:         ptr(52000.0),
		Currency:      ptr("EUR"),
		Condition:     "good",
		Location:      ptr("Berlin"),
		Country:       ptr("Germany"),
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, ListingStatusActive, created.Status)

	got, err := repo.ListingByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Scania R450 2019", got.TitleEn)
}

func TestRepository_LicenseGuides(t *testing.T) {
	_, ctx, repo := withTx(t)

	guides, err := repo.LicenseGuides(ctx, nil, NewPager(nil, nil))
	require.NoError(t, err)
	var countries []string
	for _, g := range guides {
		countries = append(countries, g.Country)
	}
	assert.Equal(t, []string{"Austria", "Canada", "Germany", "Poland", "USA"}, countries)

	guides, err = repo.LicenseGuides(ctx, &LicenseGuideSearch{Region: ptr("europe")}, NewPager(nil, nil))
	require.NoError(t, err)
	require.Len(t, guides, 3)
	for _, g := range guides {
		require.NotNil(t, g.LicenseType)
		assert.Equal(t, "europe", g.LicenseType.Region)
	}

	types, err := repo.LicenseTypes(ctx, ptr("north_america"))
	require.NoError(t, err)
	require.Len(t, types, 1)
	assert.Equal(t, "CDL-A", types[0].Code)

	materials, err := repo.TestMaterials(ctx, &TestMaterialSearch{LicenseTypeID: ptr(1)})
	require.NoError(t, err)
	require.Len(t, materials, 2)
	assert.True(t, materials[0].IsOfficial)
}

func TestRepository_Schools(t *testing.T) {
	_, ctx, repo := withTx(t)

	schools, err := repo.Schools(ctx, nil, NewPager(nil, nil))
	require.NoError(t, err)
	require.Len(t, schools, 4)
	assert.Equal(t, "Fahrschule Nord", schools[0].Name)
	assert.Nil(t, schools[3].Rating, "unrated schools go last")

	schools, err = repo.Schools(ctx, &SchoolSearch{Region: ptr("north_america")}, NewPager(nil, nil))
	require.NoError(t, err)
	require.Len(t, schools, 2)

	programs, err := repo.TrainingPrograms(ctx, 1)
	require.NoError(t, err)
	require.Len(t, programs, 1)
	assert.Equal(t, "CE full course", programs[0].TitleEn)
}

func TestRepository_Lessons(t *testing.T) {
	_, ctx, repo := withTx(t)

	lessons, err := repo.Lessons(ctx, &LessonSearch{CategoryID: ptr(1)}, NewPager(nil, nil))
	require.NoError(t, err)
	require.Len(t, lessons, 2)
	assert.Equal(t, "Replacing an injector", lessons[0].TitleEn)

	lesson, err := repo.LessonByID(ctx, 3)
	require.NoError(t, err)
	require.NotNil(t, lesson)
	assert.Nil(t, lesson.Rating)
}

func TestRepository_UpsertUser(t *testing.T) {
	_, ctx, repo := withTx(t)

	now := time.Now()
	user, err := repo.UpsertUser(ctx, &User{OpenID: "new-user", Name: ptr("Anna"), LoginMethod: ptr("jwt"), LastSignedIn: now})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, RoleUser, user.Role)

	again, err := repo.UpsertUser(ctx, &User{OpenID: "new-user", LastSignedIn: now.Add(time.Minute)})
	require.NoError(t, err)
	assert.Equal(t, user.ID, again.ID)
	require.NotNil(t, again.Name)
	assert.Equal(t, "Anna", *again.Name)

	promoted, err := repo.UpsertUser(ctx, &User{OpenID: "new-user", Role: RoleAdmin, LastSignedIn: now})
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, promoted.Role)

	got, err := repo.UserByOpenID(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRepository_Admin(t *testing.T) {
	_, ctx, repo := withTx(t)

	stats, err := repo.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, Stats{
		Users:            2,
		PublishedCourses: 5,
		ActiveJobs:       450,
		ActiveListings:   10,
		Articles:         10,
		Schools:          4,
	}, *stats)

	sources, err := repo.ScrapingSources(ctx)
	require.NoError(t, err)
	require.Len(t, sources, 2)

	logs, err := repo.LatestScrapingLogs(ctx, []int{sources[0].ID, sources[1].ID})
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "success", logs[sources[0].ID].Status)
}
