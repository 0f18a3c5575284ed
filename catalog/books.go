package catalog

import "fmt"

// Subjects taught across the primary curriculum.
var Subjects = []string{"Mathematics", "English", "Kiswahili", "Science", "Social Studies", "CRE", "Creative Arts"}

// Grades covered by the platform.
var Grades = []int{1, 2, 3, 4, 5, 6, 7, 8}

func bundleName(grade int) string {
	return fmt.Sprintf("Grade %d Complete Bundle", grade)
}

// SeedBooks returns the KICD-approved seed catalog.
func SeedBooks() []Book {
	return []Book{
		{
			ID:           "math-g1-001",
			Title:        "Primary Mathematics Book 1",
			Subject:      "Mathematics",
			Grade:        1,
			ISBN:         "978-9966-25-001-1",
			Publisher:    "Kenya Literature Bureau",
			Edition:      "2024",
			KICDApproved: true,
			RetailPrice:  850,
			RentalPrice:  340,
			Stock:        145,
			Condition:    ConditionNew,
		},
		{
			ID:           "eng-g1-001",
			Title:        "English Activities Book 1",
			Subject:      "English",
			Grade:        1,
			ISBN:         "978-9966-25-002-8",
			Publisher:    "Oxford University Press",
			Edition:      "2024",
			KICDApproved: true,
			RetailPrice:  780,
			RentalPrice:  312,
			Stock:        120,
			Condition:    ConditionNew,
		},
		{
			ID:           "kis-g1-001",
			Title:        "Kiswahili Shughuli Kitabu 1",
			Subject:      "Kiswahili",
			Grade:        1,
			ISBN:         "978-9966-25-003-5",
			Publisher:    "Longhorn Publishers",
			Edition:      "2024",
			KICDApproved: true,
			RetailPrice:  720,
			RentalPrice:  288,
			Stock:        98,
			Condition:    ConditionNew,
		},
		{
			ID:           "sci-g1-001",
			Title:        "Environmental Activities Book 1",
			Subject:      "Science",
			Grade:        1,
			ISBN:         "978-9966-25-004-2",
			Publisher:    "Kenya Literature Bureau",
			Edition:      "2024",
			KICDApproved: true,
			RetailPrice:  680,
			RentalPrice:  272,
			Stock:        67,
			Condition:    ConditionNew,
		},
		{
			ID:           "math-g2-001",
			Title:        "Primary Mathematics Book 2",
			Subject:      "Mathematics",
			Grade:        2,
			ISBN:         "978-9966-25-011-0",
			Publisher:    "Kenya Literature Bureau",
			Edition:      "2024",
			KICDApproved: true,
			RetailPrice:  890,
			RentalPrice:  356,
			Stock:        134,
			Condition:    ConditionNew,
		},
		{
			ID:           "eng-g2-001",
			Title:        "English Activities Book 2",
			Subject:      "English",
			Grade:        2,
			ISBN:         "978-9966-25-012-7",
			Publisher:    "Oxford University Press",
			Edition:      "2024",
			KICDApproved: true,
			RetailPrice:  820,
			RentalPrice:  328,
			Stock:        112,
			Condition:    ConditionNew,
		},
		{
			ID:           "kis-g2-001",
			Title:        "Kiswahili Shughuli Kitabu 2",
			Subject:      "Kiswahili",
			Grade:        2,
			ISBN:         "978-9966-25-013-4",
			Publisher:    "Longhorn Publishers",
			Edition:      "2024",
			KICDApproved: true,
			RetailPrice:  760,
			RentalPrice:  304,
			Stock:        89,
			Condition:    ConditionNew,
		},
		{
			ID:           "sci-g2-001",
			Title:        "Environmental Activities Book 2",
			Subject:      "Science",
			Grade:        2,
			ISBN:         "978-9966-25-014-1",
			Publisher:    "Kenya Literature Bureau",
			Edition:      "2024",
			KICDApproved: true,
			RetailPrice:  720,
			RentalPrice:  288,
			Stock:        78,
			Condition:    ConditionNew,
		},
		{
			ID:           "math-g3-001",
			Title:        "Primary Mathematics Book 3",
			Subject:      "Mathematics",
			Grade:        3,
			ISBN:         "978-9966-25-021-9",
			Publisher:    "Kenya Literature Bureau",
			Edition:      "2024",
			KICDApproved: true,
			RetailPrice:  950,
			RentalPrice:  380,
			Stock:        156,
			Condition:    ConditionNew,
		},
		{
			ID:           "eng-g3-001",
			Title:        "English Activities Book 3",
			Subject:      "English",
			Grade:        3,
			ISBN:         "978-9966-25-022-6",
			Publisher:    "Oxford University Press",
			Edition:      "2024",
			KICDApproved: true,
			RetailPrice:  880,
			RentalPrice:  352,
			Stock:        128,
			Condition:    ConditionNew,
		},
		{
			ID:           "kis-g3-001",
			Title:        "Kiswahili Shughuli Kitabu 3",
			Subject:      "Kiswahili",
			Grade:        3,
			ISBN:         "978-9966-25-023-3",
			Publisher:    "Longhorn Publishers",
			Edition:      "2024",
			KICDApproved: true,
			RetailPrice:  800,
			RentalPrice:  320,
			Stock:        95,
			Condition:    ConditionNew,
		},
		{
			ID:           "sci-g3-001",
			Title:        "Science & Technology Book 3",
			Subject:      "Science",
			Grade:        3,
			ISBN:         "978-9966-25-024-0",
			Publisher:    "Kenya Literature Bureau",
			Edition:      "2024",
			KICDApproved: true,
			RetailPrice:  780,
			RentalPrice:  312,
			Stock:        82,
			Condition:    ConditionNew,
		},
	}
}
