package services

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

// RegistrationDetails is the profile snapshot rendered into the downloadable
// registration summary.
type RegistrationDetails struct {
	FullName       string
	Email          string
	Phone          string
	Gender         string
	DateOfBirth    string
	Address        string
	Qualifications []QualificationInput
}

// PDFService renders registration summaries as PDF documents.
type PDFService struct{}

// NewPDFService creates a new PDFService.
func NewPDFService() *PDFService {
	return &PDFService{}
}

// RenderRegistration produces the registration-details document.
func (s *PDFService) RenderRegistration(details RegistrationDetails) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "BU", 18)
	pdf.CellFormat(0, 10, "Registration Details", "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Full Name: %s", details.FullName),
		fmt.Sprintf("Email: %s", details.Email),
		fmt.Sprintf("Phone: %s", details.Phone),
		fmt.Sprintf("Gender: %s", details.Gender),
		fmt.Sprintf("DOB: %s", details.DateOfBirth),
		fmt.Sprintf("Address: %s", details.Address),
	}
	for _, line := range lines {
		pdf.CellFormat(0, 7, line, "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.CellFormat(0, 7, "Qualifications:", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	for i, q := range details.Qualifications {
		entry := fmt.Sprintf("%d. %s - %s (%s) - %s%%",
			i+1, q.Qualification, q.DegreeName, q.PassingYear, q.Percentage)
		pdf.CellFormat(0, 7, entry, "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}

	return buf.Bytes(), nil
}
