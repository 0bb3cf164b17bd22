package services

import (
	"bytes"
	"testing"
	"time"

	"pawcare-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExcelExporter_Export(t *testing.T) {
	email := "ana@x.com"
	age := 3
	snap := &models.Snapshot{
		Customers: []models.CustomerWithAccount{
			{Customer: models.Customer{ID: 1, Name: "Ana", Email: "ana@x.com", Phone: "9999999999"}, Registered: true, UserEmail: &email},
		},
		Pets:     []models.Pet{{ID: 1, CustomerID: 1, Name: "Rex", Type: "Dog", Age: &age}},
		Services: models.DefaultServices,
		Bookings: []models.BookingView{*sampleBooking(models.StatusPending)},
		Feedback: []models.Feedback{{ID: 1, Name: "Ana", Email: "ana@x.com", Rating: 5, Category: "general", Message: "Great"}},
	}

	var buf bytes.Buffer
	e := NewExcelExporter()
	require.NoError(t, e.Export(&buf, snap))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Customers", "Pets", "Services", "Bookings", "Feedback"}, f.GetSheetList())

	v, err := f.GetCellValue("Customers", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Ana", v)

	v, err = f.GetCellValue("Customers", "E2")
	require.NoError(t, err)
	assert.Equal(t, "Yes", v)

	rows, err := f.GetRows("Services")
	require.NoError(t, err)
	assert.Len(t, rows, len(models.DefaultServices)+1)

	v, err = f.GetCellValue("Bookings", "G2")
	require.NoError(t, err)
	assert.Equal(t, "Dog Walking", v)

	assert.Equal(t, "pawcare-data-2025-06-01.xlsx", e.Filename(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)))
}
