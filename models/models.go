// Package models defines the WBSO application draft: the company section,
// the ordered project list and the hours/costs section. JSON tags follow the
// persisted draft schema, which uses Dutch field names.
package models

import "strconv"

// ApplicantType distinguishes a company with personnel from a self-employed
// applicant. The empty value means the user has not chosen yet.
type ApplicantType string

const (
	ApplicantOnderneming ApplicantType = "onderneming"
	ApplicantZZP         ApplicantType = "zzp"
)

// WorkType is the kind of S&O work a project declares.
type WorkType string

const (
	WorkTechnicalDevelopment WorkType = "technische-ontwikkeling"
	WorkScientificResearch   WorkType = "technisch-wetenschappelijk-onderzoek"
)

// CompanyData holds the company step of the application.
type CompanyData struct {
	CompanyName   string        `json:"bedrijfsnaam"`
	KvKNumber     string        `json:"kvkNummer"`
	ContactName   string        `json:"contactNaam"`
	ContactEmail  string        `json:"contactEmail"`
	ApplicantType ApplicantType `json:"typeAanvrager"`
}

// ProjectDescription is the three-part narrative of a project.
type ProjectDescription struct {
	WhatYouWillDo  string `json:"watGaJeDoen"`
	WhatIsNew      string `json:"watIsNieuw"`
	ProblemsSolved string `json:"welkeProblemenLosJeOp"`
}

// ProjectDuration holds the project's start and end as ISO dates
// (e.g. "2025-03-01"). Empty strings mean "not entered yet".
type ProjectDuration struct {
	StartDate string `json:"startDatum"`
	EndDate   string `json:"eindDatum"`
}

// Project is a single S&O project in the draft. IDs are assigned once at
// creation and stay stable across edits; the slice order in Draft.Projects is
// the canonical display and export order.
type Project struct {
	ID            string             `json:"id"`
	Title         string             `json:"titel"`
	Description   ProjectDescription `json:"beschrijving"`
	Activities    string             `json:"werkzaamheden"`
	DeclaredHours int                `json:"soUren"`
	Duration      ProjectDuration    `json:"looptijd"`
	WorkType      WorkType           `json:"typeSOWerk"`
}

// HoursCosts holds the hours/costs step. TotalHours is derived from the
// projects; EstimatedCosts is user-entered and only meaningful when the
// applicant type is "onderneming".
type HoursCosts struct {
	TotalHours     int      `json:"totalHours"`
	EstimatedCosts *float64 `json:"estimatedCosts,omitempty"`
}

// Draft is the aggregate root: the full in-progress application, persisted as
// one record.
type Draft struct {
	Company    CompanyData `json:"bedrijfsgegevens"`
	Projects   []Project   `json:"projecten"`
	HoursCosts HoursCosts  `json:"urenKosten"`
}

// CompanyPatch is a partial company update. Nil fields mean "leave unchanged".
type CompanyPatch struct {
	CompanyName   *string
	KvKNumber     *string
	ContactName   *string
	ContactEmail  *string
	ApplicantType *ApplicantType
}

// HoursCostsPatch is a partial hours/costs update. Nil fields mean "leave
// unchanged".
type HoursCostsPatch struct {
	TotalHours     *int
	EstimatedCosts *float64
}

// DefaultDraft returns an empty draft: all company fields blank, no projects,
// zeroed hours and costs.
func DefaultDraft() Draft {
	return Draft{
		Company:  CompanyData{},
		Projects: []Project{},
	}
}

// NewProject returns an empty project carrying the given id and the default
// work type, matching the shape the projects step starts from.
func NewProject(id string) Project {
	return Project{
		ID:       id,
		WorkType: WorkTechnicalDevelopment,
	}
}

// CloneProjects returns a copy of the project list that shares no memory with
// the input slice. Projects contain only value fields, so copying the slice
// elements is a full deep copy.
func CloneProjects(projects []Project) []Project {
	if projects == nil {
		return []Project{}
	}
	out := make([]Project, len(projects))
	copy(out, projects)
	return out
}

// NextProjectID returns the next counter-based project id: one past the
// highest numeric id currently in use. Non-numeric ids are ignored.
func NextProjectID(projects []Project) string {
	max := 0
	for _, p := range projects {
		if n, err := strconv.Atoi(p.ID); err == nil && n > max {
			max = n
		}
	}
	return strconv.Itoa(max + 1)
}

// ApplicantTypeValid reports whether v is one of the defined applicant types
// (the empty "not chosen" value is not valid for a committed company section).
func ApplicantTypeValid(v ApplicantType) bool {
	return v == ApplicantOnderneming || v == ApplicantZZP
}

// WorkTypeValid reports whether v is one of the two defined work types.
func WorkTypeValid(v WorkType) bool {
	return v == WorkTechnicalDevelopment || v == WorkScientificResearch
}
