package usecase

import (
	"bytes"
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"
	"github.com/piresc/hubber/internal/pkg/models"
)

// renderReceipt builds a single page A4 receipt for a paid booking
func renderReceipt(detail *models.BookingDetail, issuedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking receipt "+detail.BookingReference, true)
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 10, "Booking Receipt")
	pdf.Ln(14)

	pdf.SetFont("Arial", "", 11)
	row := func(label, value string) {
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(55, 8, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 11)
		pdf.CellFormat(0, 8, value, "", 1, "L", false, 0, "")
	}

	row("Booking reference", detail.BookingReference)
	row("Status", string(detail.Status))
	row("Issued at", issuedAt.UTC().Format(time.RFC1123))
	pdf.Ln(4)

	if ride := detail.Ride; ride != nil {
		row("From", ride.Origin)
		row("To", ride.Destination)
		row("Departure", ride.DepartureTime.UTC().Format(time.RFC1123))
		row("Vehicle", string(ride.VehicleType))
		row("Price per seat", formatAmount(ride.PricePerSeat))
	}
	row("Seats", fmt.Sprintf("%d", detail.SeatsBooked))
	if detail.SpecialRequests != nil {
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(55, 8, "Special requests", "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 11)
		pdf.MultiCell(0, 8, *detail.SpecialRequests, "", "L", false)
	}
	pdf.Ln(4)

	if payment := detail.Payment; payment != nil {
		row("Transaction reference", payment.TransactionReference)
		row("Payment status", string(payment.Status))
		if payment.PaymentMethod != nil {
			row("Payment method", string(*payment.PaymentMethod))
		}
	}

	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(55, 10, "Total", "T", 0, "L", false, 0, "")
	pdf.CellFormat(0, 10, formatAmount(detail.TotalAmount), "T", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render receipt: %w", err)
	}
	return buf.Bytes(), nil
}

func formatAmount(v float64) string {
	return fmt.Sprintf("%.2f", models.RoundMoney(v))
}
