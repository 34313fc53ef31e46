package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/hubber/internal/pkg/apperror"
	"github.com/piresc/hubber/internal/pkg/logger"
	"github.com/piresc/hubber/internal/pkg/models"
	nrpkg "github.com/piresc/hubber/internal/pkg/newrelic"
	"github.com/xuri/excelize/v2"
)

const manifestSheet = "Manifest"

var manifestHeaders = []string{
	"Booking Reference", "Passenger ID", "Passenger", "Seats", "Amount",
	"Booking Status", "Payment Status", "Special Requests",
}

// ExportManifest renders the passenger manifest of a driver's ride as XLSX
func (uc *RideUC) ExportManifest(ctx context.Context, principal models.Principal, rideID uuid.UUID) ([]byte, string, error) {
	if !principal.IsDriver() {
		return nil, "", apperror.Authorization("Only drivers can export manifests")
	}

	defer nrpkg.StartSegment(nrpkg.FromContext(ctx), "RideUC.ExportManifest").End()

	ride, err := uc.ownedRide(ctx, principal, rideID)
	if err != nil {
		return nil, "", err
	}

	rows, err := uc.rideRepo.ManifestRows(ctx, rideID)
	if err != nil {
		return nil, "", fail(err)
	}

	data, err := buildManifest(ride, rows)
	if err != nil {
		return nil, "", apperror.OperationFailed(err)
	}

	logger.InfoCtx(ctx, "Ride manifest exported",
		logger.String("ride_id", ride.ID.String()),
		logger.Int("bookings", len(rows)))

	return data, fmt.Sprintf("manifest-%s.xlsx", ride.ID), nil
}

// sheetWriter keeps the first error of a run of cell writes
type sheetWriter struct {
	f     *excelize.File
	sheet string
	err   error
}

func (w *sheetWriter) set(col, row int, value interface{}) {
	if w.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		w.err = err
		return
	}
	w.err = w.f.SetCellValue(w.sheet, cell, value)
}

func (w *sheetWriter) style(fromCol, toCol, row, styleID int) {
	if w.err != nil {
		return
	}
	from, _ := excelize.CoordinatesToCellName(fromCol, row)
	to, _ := excelize.CoordinatesToCellName(toCol, row)
	w.err = w.f.SetCellStyle(w.sheet, from, to, styleID)
}

func buildManifest(ride *models.Ride, rows []*models.ManifestRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(manifestSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create manifest sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to drop default sheet: %w", err)
	}

	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create style: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create style: %w", err)
	}
	totalStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Border: []excelize.Border{{Type: "top", Color: "000000", Style: 1}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create style: %w", err)
	}

	w := &sheetWriter{f: f, sheet: manifestSheet}

	// Ride summary
	w.set(1, 1, "Ride")
	w.set(2, 1, ride.Origin+" -> "+ride.Destination)
	w.set(1, 2, "Departure")
	w.set(2, 2, models.FormatTime(ride.DepartureTime))
	w.set(1, 3, "Seats Booked")
	w.set(2, 3, fmt.Sprintf("%d / %d", ride.BookedSeats(), ride.TotalSeats))
	w.set(1, 4, "Status")
	w.set(2, 4, string(ride.Status))
	for row := 1; row <= 4; row++ {
		w.style(1, 1, row, boldStyle)
	}

	const headerRow = 6
	for i, header := range manifestHeaders {
		w.set(i+1, headerRow, header)
	}
	w.style(1, len(manifestHeaders), headerRow, headerStyle)

	row := headerRow
	var (
		seats  int
		amount float64
	)
	for _, m := range rows {
		row++
		paymentStatus := ""
		if m.PaymentStatus != nil {
			paymentStatus = *m.PaymentStatus
		}
		specialRequests := ""
		if m.SpecialRequests != nil {
			specialRequests = *m.SpecialRequests
		}
		w.set(1, row, m.BookingReference)
		w.set(2, row, m.PassengerID.String())
		w.set(3, row, m.PassengerName)
		w.set(4, row, m.SeatsBooked)
		w.set(5, row, models.RoundMoney(m.TotalAmount))
		w.set(6, row, string(m.BookingStatus))
		w.set(7, row, paymentStatus)
		w.set(8, row, specialRequests)
		seats += m.SeatsBooked
		amount += m.TotalAmount
	}

	row++
	w.set(1, row, "Total")
	w.set(4, row, seats)
	w.set(5, row, models.RoundMoney(amount))
	w.style(1, len(manifestHeaders), row, totalStyle)
	if w.err != nil {
		return nil, fmt.Errorf("failed to write manifest: %w", w.err)
	}

	if err := f.SetColWidth(manifestSheet, "A", "H", 20); err != nil {
		return nil, fmt.Errorf("failed to size columns: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render manifest: %w", err)
	}
	return buf.Bytes(), nil
}
