// services/export.go
package services

import (
	"fmt"
	"io"
	"time"

	"pawcare-backend/models"

	"github.com/xuri/excelize/v2"
)

// Exporter writes a snapshot of the business data as a spreadsheet.
type Exporter interface {
	Export(w io.Writer, snap *models.Snapshot) error
	Filename(now time.Time) string
	ContentType() string
}

type ExcelExporter struct{}

func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{}
}

func (e *ExcelExporter) Filename(now time.Time) string {
	return fmt.Sprintf("pawcare-data-%s.xlsx", now.Format("2006-01-02"))
}

func (e *ExcelExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

type sheet struct {
	name    string
	headers []string
	widths  []float64
	rows    [][]any
}

func (e *ExcelExporter) Export(w io.Writer, snap *models.Snapshot) error {
	f := excelize.NewFile()
	defer f.Close()

	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"4F81BD"}},
	})
	if err != nil {
		return err
	}

	for i, sh := range buildSheets(snap) {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sh.name); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(sh.name); err != nil {
			return err
		}
		if err := writeSheet(f, sh, header); err != nil {
			return fmt.Errorf("sheet %s: %w", sh.name, err)
		}
	}

	_, err = f.WriteTo(w)
	return err
}

func writeSheet(f *excelize.File, sh sheet, headerStyle int) error {
	headers := make([]any, len(sh.headers))
	for i, h := range sh.headers {
		headers[i] = h
	}
	if err := f.SetSheetRow(sh.name, "A1", &headers); err != nil {
		return err
	}

	last, err := excelize.CoordinatesToCellName(len(sh.headers), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sh.name, "A1", last, headerStyle); err != nil {
		return err
	}

	for i, width := range sh.widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sh.name, col, col, width); err != nil {
			return err
		}
	}

	for i, row := range sh.rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sh.name, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func buildSheets(snap *models.Snapshot) []sheet {
	customers := sheet{
		name:    "Customers",
		headers: []string{"ID", "Name", "Email", "Phone", "Registered", "Created At"},
		widths:  []float64{8, 25, 30, 18, 12, 20},
	}
	for _, c := range snap.Customers {
		customers.rows = append(customers.rows, []any{
			c.ID, c.Name, c.Email, c.Phone, yesNo(c.Registered), formatTime(c.CreatedAt),
		})
	}

	pets := sheet{
		name:    "Pets",
		headers: []string{"ID", "Customer ID", "Name", "Type", "Breed", "Age", "Special Needs", "Created At"},
		widths:  []float64{8, 12, 20, 15, 20, 8, 35, 20},
	}
	for _, p := range snap.Pets {
		var age any = ""
		if p.Age != nil {
			age = *p.Age
		}
		pets.rows = append(pets.rows, []any{
			p.ID, p.CustomerID, p.Name, p.Type, deref(p.Breed), age, deref(p.SpecialNeeds), formatTime(p.CreatedAt),
		})
	}

	services := sheet{
		name:    "Services",
		headers: []string{"ID", "Name", "Description", "Price", "Duration (min)"},
		widths:  []float64{8, 25, 40, 10, 15},
	}
	for _, s := range snap.Services {
		services.rows = append(services.rows, []any{s.ID, s.Name, s.Description, s.Price, s.DurationMinutes})
	}

	bookings := sheet{
		name: "Bookings",
		headers: []string{
			"ID", "Customer", "Email", "Phone", "Pet", "Pet Type", "Service", "Price",
			"Date", "Time", "Status", "Notes", "Created At",
		},
		widths: []float64{8, 25, 30, 18, 18, 15, 22, 10, 12, 10, 12, 40, 20},
	}
	for _, b := range snap.Bookings {
		bookings.rows = append(bookings.rows, []any{
			b.ID, b.CustomerName, b.CustomerEmail, b.CustomerPhone, deref(b.PetName), deref(b.PetType),
			b.ServiceName, b.ServicePrice, b.BookingDate, b.BookingTime, string(b.Status), deref(b.Notes),
			formatTime(b.CreatedAt),
		})
	}

	feedback := sheet{
		name:    "Feedback",
		headers: []string{"ID", "Name", "Email", "Rating", "Category", "Message", "Public", "Created At"},
		widths:  []float64{8, 25, 30, 8, 18, 50, 8, 20},
	}
	for _, fb := range snap.Feedback {
		feedback.rows = append(feedback.rows, []any{
			fb.ID, fb.Name, fb.Email, fb.Rating, fb.Category, fb.Message, yesNo(fb.Public), formatTime(fb.CreatedAt),
		})
	}

	return []sheet{customers, pets, services, bookings, feedback}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04:05")
}
