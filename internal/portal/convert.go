package portal

import (
	"github.com/daniilsolovey/truck-portal/internal/db"
)

// newList converts db rows; the result is never nil.
func newList[S, T any](in []S, fn func(*S) T) []T {
	out := make([]T, len(in))
	for i := range in {
		out[i] = fn(&in[i])
	}
	return out
}

func NewUser(in *db.User) *User {
	if in == nil {
		return nil
	}
	return &User{User: *in}
}

func NewCourseCategory(in *db.CourseCategory) CourseCategory {
	return CourseCategory{CourseCategory: *in}
}

func NewCourse(in *db.Course) Course {
	c := Course{Course: *in}
	if in.Category != nil {
		cat := NewCourseCategory(in.Category)
		c.Category = &cat
	}
	return c
}

func NewTrainingMaterial(in *db.TrainingMaterial) TrainingMaterial {
	return TrainingMaterial{TrainingMaterial: *in}
}

func NewJobCategory(in *db.JobCategory) JobCategory {
	return JobCategory{JobCategory: *in}
}

func NewJob(in *db.Job) Job {
	j := Job{Job: *in}
	if in.Category != nil {
		cat := NewJobCategory(in.Category)
		j.Category = &cat
	}
	return j
}

func NewEquipmentCategory(in *db.EquipmentCategory) EquipmentCategory {
	return EquipmentCategory{EquipmentCategory: *in}
}

func NewListing(in *db.Listing) Listing {
	l := Listing{Listing: *in}
	if in.Category != nil {
		cat := NewEquipmentCategory(in.Category)
		l.Category = &cat
	}
	return l
}

func NewKnowledgeCategory(in *db.KnowledgeCategory) KnowledgeCategory {
	return KnowledgeCategory{KnowledgeCategory: *in}
}

func NewArticle(in *db.KnowledgeArticle) Article {
	a := Article{KnowledgeArticle: *in}
	if in.Category != nil {
		cat := NewKnowledgeCategory(in.Category)
		a.Category = &cat
	}
	return a
}

func NewLicenseType(in *db.LicenseType) LicenseType {
	return LicenseType{LicenseType: *in}
}

func NewLicenseGuide(in *db.LicenseRequirement) LicenseGuide {
	g := LicenseGuide{LicenseRequirement: *in}
	if in.LicenseType != nil {
		lt := NewLicenseType(in.LicenseType)
		g.LicenseType = &lt
	}
	return g
}

func NewTestMaterial(in *db.TestMaterial) TestMaterial {
	return TestMaterial{TestMaterial: *in}
}

func NewSchool(in *db.DrivingSchool) School {
	return School{DrivingSchool: *in}
}

func NewTrainingProgram(in *db.TrainingProgram) TrainingProgram {
	return TrainingProgram{TrainingProgram: *in}
}

func NewLessonCategory(in *db.MechanicsLessonCategory) LessonCategory {
	return LessonCategory{MechanicsLessonCategory: *in}
}

func NewLesson(in *db.MechanicsLesson) Lesson {
	l := Lesson{MechanicsLesson: *in}
	if in.Category != nil {
		cat := NewLessonCategory(in.Category)
		l.Category = &cat
	}
	return l
}
