package portal

import "slices"

// Enum is a closed vocabulary of a database enum type.
type Enum []string

func (e Enum) Has(v string) bool {
	return slices.Contains(e, v)
}

var (
	CourseLevels      = Enum{"beginner", "intermediate", "advanced", "expert"}
	JobRegions        = Enum{"europe", "north_america", "other"}
	EmploymentTypes   = Enum{"full_time", "part_time", "contract", "temporary"}
	ExperienceLevels  = Enum{"entry", "mid", "senior", "executive"}
	ListingConditions = Enum{"new", "like_new", "good", "fair", "parts"}
	ListingStatuses   = Enum{"active", "sold", "pending", "expired"}
	ArticleTypes      = Enum{"repair_guide", "fabrication", "maintenance", "troubleshooting", "general"}
	Regions           = Enum{"europe", "north_america"}
	LessonDifficulty  = CourseLevels
)
