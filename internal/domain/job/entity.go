package job

import (
	"time"

	"jobghar/internal/domain/user"
)

type Type string

const (
	TypeFullTime   Type = "full-time"
	TypePartTime   Type = "part-time"
	TypeRemote     Type = "remote"
	TypeInternship Type = "internship"
)

func ParseType(s string) (Type, bool) {
	switch Type(s) {
	case TypeFullTime, TypePartTime, TypeRemote, TypeInternship:
		return Type(s), true
	default:
		return "", false
	}
}

type Category string

const (
	CategoryTech      Category = "tech"
	CategoryHealth    Category = "health"
	CategoryEducation Category = "education"
	CategorySales     Category = "sales"
	CategoryFinance   Category = "finance"
)

func ParseCategory(s string) (Category, bool) {
	switch Category(s) {
	case CategoryTech, CategoryHealth, CategoryEducation, CategorySales, CategoryFinance:
		return Category(s), true
	default:
		return "", false
	}
}

type Job struct {
	ID                int64      `json:"id"`
	Title             string     `json:"title"`
	Slug              string     `json:"slug"`
	Company           string     `json:"company"`
	Description       string     `json:"description"`
	Location          string     `json:"location"`
	Salary            int64      `json:"salary"`
	JobType           Type       `json:"jobType"`
	Category          Category   `json:"category"`
	IsActive          bool       `json:"isActive"`
	EmployerID        int64      `json:"-"`
	Employer          *user.User `json:"employer,omitempty"`
	ApplicationsCount int        `json:"applicationsCount"`
	Deadline          time.Time  `json:"deadline"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}
