package services

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ExportService renders projects and contacts as xlsx workbooks for the
// admin panel download links.
type ExportService struct {
	projectService *ProjectService
	contactService *ContactService
}

func NewExportService(projectService *ProjectService, contactService *ContactService) *ExportService {
	return &ExportService{
		projectService: projectService,
		contactService: contactService,
	}
}

// ExportProjects builds a workbook with one row per project, all statuses
func (s *ExportService) ExportProjects() (*excelize.File, error) {
	projects, err := s.projectService.ListProjects(ListOptions{Status: StatusFilterAll})
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := "Projects"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	headers := []interface{}{"ID", "Title", "Type", "Status", "Tags", "Analysis Depth", "Industry", "Featured", "Date", "Demo URL", "Created At", "Updated At"}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return nil, err
	}

	for i, project := range projects {
		row := []interface{}{
			project.ID,
			project.Title,
			project.Type,
			project.Status,
			strings.Join(project.Tags, ", "),
			project.AnalysisDepth,
			project.Industry,
			project.Featured,
			project.Date,
			project.DemoURL,
			project.CreatedAt.Format("2006-01-02 15:04:05"),
			project.UpdatedAt.Format("2006-01-02 15:04:05"),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// ExportContacts builds a workbook with one row per contact submission
func (s *ExportService) ExportContacts() (*excelize.File, error) {
	contacts, err := s.contactService.GetAllContacts()
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := "Contacts"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	headers := []interface{}{"ID", "Name", "Email", "Company", "Channel", "Message", "Status", "Created At"}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return nil, err
	}

	for i, contact := range contacts {
		row := []interface{}{
			contact.ID,
			contact.Name,
			contact.Email,
			contact.Company,
			contact.Channel,
			contact.Message,
			contact.Status,
			contact.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}

	return f, nil
}
