package reports

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"

	"fleetrental/internal/domain"
)

const reportDateLayout = "2006-01-02"

// Service renders the fleet report as a PDF document.
type Service struct {
	trailers TrailerReader
	rentals  RentalReader
	stock    StockReader
	services ServiceHistoryReader
	now      func() time.Time
}

func NewService(trailers TrailerReader, rentals RentalReader, stock StockReader, services ServiceHistoryReader) *Service {
	return &Service{
		trailers: trailers,
		rentals:  rentals,
		stock:    stock,
		services: services,
		now:      time.Now,
	}
}

// FleetReport writes a PDF with one section per data set: trailers,
// rentals, warehouse stock and service history.
func (s *Service) FleetReport(ctx context.Context, w io.Writer) error {
	trailers, err := s.trailers.List(ctx)
	if err != nil {
		return fmt.Errorf("load trailers: %w", err)
	}
	rentals, err := s.rentals.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("load rentals: %w", err)
	}
	items, err := s.stock.ListItems(ctx)
	if err != nil {
		return fmt.Errorf("load warehouse items: %w", err)
	}
	services, err := s.services.List(ctx)
	if err != nil {
		return fmt.Errorf("load service history: %w", err)
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Fleet Report", false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, "Fleet Report", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, "Generated "+s.now().UTC().Format("2006-01-02 15:04 UTC"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	s.trailerSection(pdf, trailers)
	s.rentalSection(pdf, rentals)
	s.stockSection(pdf, items)
	s.serviceSection(pdf, services)

	return pdf.Output(w)
}

func sectionHeader(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
}

func tableHeader(pdf *gofpdf.Fpdf, widths []float64, labels []string) {
	pdf.SetFont("Arial", "B", 10)
	for i, label := range labels {
		pdf.CellFormat(widths[i], 7, label, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
}

func (s *Service) trailerSection(pdf *gofpdf.Fpdf, trailers []domain.Trailer) {
	sectionHeader(pdf, "Trailers")

	widths := []float64{15, 55, 45, 45, 40, 30}
	tableHeader(pdf, widths, []string{"ID", "Name", "Serial", "Registration", "IP address", "Status"})

	for _, t := range trailers {
		pdf.CellFormat(widths[0], 7, fmt.Sprintf("%d", t.ID), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[1], 7, t.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 7, t.SerialNumber, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[3], 7, t.RegistrationNumber, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[4], 7, t.IPAddress, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[5], 7, string(t.Status), "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(6)
}

func (s *Service) rentalSection(pdf *gofpdf.Fpdf, rentals []domain.Rental) {
	sectionHeader(pdf, "Rentals")

	widths := []float64{15, 60, 60, 35, 35, 35}
	tableHeader(pdf, widths, []string{"ID", "Name", "Company", "Start", "End", "Cost"})

	for _, r := range rentals {
		company := fmt.Sprintf("#%d", r.CompanyID)
		if r.Company != nil {
			company = r.Company.Name
		}
		pdf.CellFormat(widths[0], 7, fmt.Sprintf("%d", r.ID), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[1], 7, r.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 7, company, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[3], 7, r.StartDate.Format(reportDateLayout), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[4], 7, r.EndDate.Format(reportDateLayout), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[5], 7, fmt.Sprintf("%.2f", r.Cost), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(6)
}

func (s *Service) stockSection(pdf *gofpdf.Fpdf, items []domain.WarehouseItem) {
	sectionHeader(pdf, "Warehouse")

	widths := []float64{15, 90, 30, 40}
	tableHeader(pdf, widths, []string{"ID", "Item", "Quantity", "Stocktake"})

	for _, item := range items {
		pdf.CellFormat(widths[0], 7, fmt.Sprintf("%d", item.ID), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[1], 7, item.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 7, fmt.Sprintf("%d", item.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 7, item.DateState.Format(reportDateLayout), "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(6)
}

func (s *Service) serviceSection(pdf *gofpdf.Fpdf, services []domain.ServiceHistory) {
	sectionHeader(pdf, "Service history")

	widths := []float64{15, 60, 35, 110, 30}
	tableHeader(pdf, widths, []string{"ID", "Trailer", "Date", "Description", "Cost"})

	for _, sh := range services {
		trailer := fmt.Sprintf("#%d", sh.TrailerID)
		if sh.Trailer != nil {
			trailer = sh.Trailer.Name
		}
		pdf.CellFormat(widths[0], 7, fmt.Sprintf("%d", sh.ID), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[1], 7, trailer, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 7, sh.ServiceDate.Format(reportDateLayout), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[3], 7, sh.Description, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[4], 7, fmt.Sprintf("%.2f", sh.Cost), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
}
