package models

import (
	"time"
)

// Project statuses
const (
	ProjectStatusOnline  = "online"
	ProjectStatusOffline = "offline"
)

// Project types
const (
	ProjectTypeVisualization = "visualization"
	ProjectTypeDocument      = "document"
)

// Analysis depths
const (
	AnalysisDepthExploratory  = "exploratory"
	AnalysisDepthDiagnostic   = "diagnostic"
	AnalysisDepthPredictive   = "predictive"
	AnalysisDepthPrescriptive = "prescriptive"
)

// DefaultIndustry is used when no industry is provided
const DefaultIndustry = "other"

type Project struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	ImageURL      string    `json:"image_url"`
	Tags          []string  `json:"tags"`
	DemoURL       string    `json:"demo_url"`
	Type          string    `json:"type"`
	Date          string    `json:"date"`
	Featured      bool      `json:"featured"`
	Content       string    `json:"content"`
	Status        string    `json:"status"`
	AnalysisDepth string    `json:"analysis_depth"`
	Industry      string    `json:"industry"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Validate checks the fields required for a new project
func (p *Project) Validate() error {
	if p.Title == "" {
		return ErrProjectTitleRequired
	}
	if p.Description == "" {
		return ErrProjectDescriptionRequired
	}
	if p.ImageURL == "" {
		return ErrProjectImageRequired
	}
	if p.Tags == nil {
		return ErrProjectTagsRequired
	}
	if p.Type == "" {
		return ErrProjectTypeRequired
	}
	if !IsValidProjectType(p.Type) {
		return ErrProjectTypeInvalid
	}
	if p.Date == "" {
		return ErrProjectDateRequired
	}
	// Visualization projects are dashboard links, the demo URL is mandatory
	if p.Type == ProjectTypeVisualization && p.DemoURL == "" {
		return ErrProjectDemoURLRequired
	}
	return nil
}

// IsValidProjectStatus reports whether s is a supported visibility state
func IsValidProjectStatus(s string) bool {
	return s == ProjectStatusOnline || s == ProjectStatusOffline
}

// IsValidProjectType reports whether t is a canonical project type. Old rows
// may carry other values, but new writes are restricted to these two.
func IsValidProjectType(t string) bool {
	return t == ProjectTypeVisualization || t == ProjectTypeDocument
}

// IsValidAnalysisDepth reports whether d is a supported analysis depth
func IsValidAnalysisDepth(d string) bool {
	switch d {
	case AnalysisDepthExploratory, AnalysisDepthDiagnostic, AnalysisDepthPredictive, AnalysisDepthPrescriptive:
		return true
	}
	return false
}

// Common errors
var (
	ErrProjectTitleRequired       = &ValidationError{Field: "title", Message: "Project title is required"}
	ErrProjectDescriptionRequired = &ValidationError{Field: "description", Message: "Project description is required"}
	ErrProjectImageRequired       = &ValidationError{Field: "image_url", Message: "Project image is required"}
	ErrProjectTagsRequired        = &ValidationError{Field: "tags", Message: "Project tags are required"}
	ErrProjectTypeRequired        = &ValidationError{Field: "type", Message: "Project type is required"}
	ErrProjectDateRequired        = &ValidationError{Field: "date", Message: "Project date is required"}
	ErrProjectDemoURLRequired     = &ValidationError{Field: "demo_url", Message: "Visualization projects require a demo URL"}
	ErrProjectTypeInvalid         = &ValidationError{Field: "type", Message: "Project type must be visualization or document"}
	ErrAnalysisDepthInvalid       = &ValidationError{Field: "analysis_depth", Message: "Analysis depth must be exploratory, diagnostic, predictive or prescriptive"}
	ErrProjectStatusInvalid       = &ValidationError{Field: "status", Message: "Project status must be online or offline"}
)
