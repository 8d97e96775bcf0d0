// Package resume defines the curriculum vitae data model and the loader that
// turns a JSON or YAML document into it.
//
// Field names are matched case-insensitively, so "FullName", "fullname" and
// "fullName" all populate the same field. Every top-level field is required;
// lists may be empty but must be present.
//
// Example JSON:
//
//	{
//	  "fullName": "Jane Doe",
//	  "jobTitle": "Platform Engineer",
//	  "personalData": {"city": "Berlin", "email": "jane@example.com"},
//	  "profilePicturePath": "",
//	  "profileSummary": "Builds boring infrastructure.",
//	  "coreCompetencies": ["Go", "Kubernetes"],
//	  "attachments": [],
//	  "workExperience": [],
//	  "developmentAndEducation": [],
//	  "languageSkills": [{"language": "English", "level": "fluent"}],
//	  "hardSkills": ["Go", "Rust"],
//	  "softSkills": [],
//	  "driversLicense": ""
//	}
package resume

// Document is the complete data set rendered into one CV.
type Document struct {
	FullName           string           `json:"fullName"`
	JobTitle           string           `json:"jobTitle"`
	PersonalData       PersonalData     `json:"personalData"`
	ProfilePicturePath string           `json:"profilePicturePath"`
	ProfileSummary     string           `json:"profileSummary"`
	CoreCompetencies   []string         `json:"coreCompetencies"`
	Attachments        []string         `json:"attachments"`
	WorkExperience     []WorkExperience `json:"workExperience"`
	DevelopmentEntries []Development    `json:"developmentAndEducation"`
	LanguageSkills     []LanguageSkill  `json:"languageSkills"`
	HardSkills         []string         `json:"hardSkills"`
	SoftSkills         []string         `json:"softSkills"`
	DriversLicense     string           `json:"driversLicense"`
}

// PersonalData holds contact and personal details. Every field is optional.
type PersonalData struct {
	Street      string `json:"street"`
	City        string `json:"city"` // may include the postal code
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	DateOfBirth string `json:"dateOfBirth"` // free form, e.g. "1990-01-15 in Berlin"
	Nationality string `json:"nationality"`
}

// WorkExperience is one position held.
type WorkExperience struct {
	DateRange        string   `json:"dateRange"` // e.g. "07.2019 - 05.2020"
	JobTitle         string   `json:"jobTitle"`
	Company          string   `json:"company"`
	Responsibilities []string `json:"responsibilities"` // null loads as empty
}

// Development is a further education, certification or project entry.
type Development struct {
	DateRange          string `json:"dateRange"` // optional
	TitleOrDescription string `json:"titleOrDescription"`
	Details            string `json:"details"` // optional
}

// LanguageSkill pairs a language with a proficiency level.
type LanguageSkill struct {
	Language string `json:"language"`
	Level    string `json:"level"`
}
