package portal

import (
	"github.com/daniilsolovey/truck-portal/internal/db"
)

type User struct {
	db.User
}

func (u User) IsAdmin() bool {
	return u.Role == db.RoleAdmin
}

type CourseCategory struct {
	db.CourseCategory
}

type Course struct {
	db.Course
	Category *CourseCategory
}

type TrainingMaterial struct {
	db.TrainingMaterial
}

type Enrollment struct {
	db.UserCourseProgress
}

type JobCategory struct {
	db.JobCategory
}

type Job struct {
	db.Job
	Category *JobCategory
}

type SavedJob struct {
	db.SavedJob
}

type EquipmentCategory struct {
	db.EquipmentCategory
}

type Listing struct {
	db.Listing
	Category *EquipmentCategory
}

type KnowledgeCategory struct {
	db.KnowledgeCategory
}

type Article struct {
	db.KnowledgeArticle
	Category *KnowledgeCategory
}

type LicenseType struct {
	db.LicenseType
}

// LicenseGuide is a per-country license requirement.
type LicenseGuide struct {
	db.LicenseRequirement
	LicenseType *LicenseType
}

type TestMaterial struct {
	db.TestMaterial
}

type School struct {
	db.DrivingSchool
}

type TrainingProgram struct {
	db.TrainingProgram
}

type LessonCategory struct {
	db.MechanicsLessonCategory
}

type Lesson struct {
	db.MechanicsLesson
	Category *LessonCategory
}

type Stats struct {
	db.Stats
}

type ScrapingStatus struct {
	db.ScrapingSource
	LatestLog *db.ScrapingLog
}
