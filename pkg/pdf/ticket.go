package pdf

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/reach-workshop/backend/internal/domain"
	"github.com/reach-workshop/backend/pkg/logger"
	"github.com/signintech/gopdf"
	qrcode "github.com/skip2/go-qrcode"
	"go.uber.org/zap"
)

const (
	pageWidth  = 595.28 // A4 portrait, points
	pageHeight = 841.89

	qrPixels = 256
	qrSize   = 120.0
)

// TicketData is everything printed on a ticket: the registration itself plus
// the workshop branding and the precomputed verification fields.
type TicketData struct {
	Registration domain.Registration

	EventName    string
	EventDates   string
	Venue        string
	VenueAddress string
	Organizer    string
	Tagline      string

	VerificationCode string
	VerificationURL  string
}

type Generator struct {
	fontPath string
	fontName string
}

// NewGenerator locates a TTF font up front so render failures caused by a
// missing font surface at startup, not on the first download.
func NewGenerator() *Generator {
	wd, _ := os.Getwd()

	fontPaths := []string{
		filepath.Join(wd, "fonts", "DejaVuSans.ttf"),
		"./fonts/DejaVuSans.ttf",
		"fonts/DejaVuSans.ttf",
		"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
		"/System/Library/Fonts/Supplemental/Arial Unicode.ttf",
		"/Library/Fonts/Arial Unicode.ttf",
	}

	g := &Generator{fontName: "dejavu"}
	for _, path := range fontPaths {
		if _, err := os.Stat(path); err == nil {
			g.fontPath = path
			break
		}
	}

	if g.fontPath == "" {
		logger.Warn("ticket font not found, rendering will fail", zap.Strings("searched", fontPaths))
	}

	return g
}

// Render draws the full ticket. A QR encoding failure is recoverable (the
// image is omitted, everything else still renders); any other failure aborts
// the artifact.
func (g *Generator) Render(data TicketData) ([]byte, error) {
	if g.fontPath == "" {
		return nil, fmt.Errorf("no TTF font available for ticket rendering")
	}

	doc := &gopdf.GoPdf{}
	doc.Start(gopdf.Config{
		PageSize: *gopdf.PageSizeA4,
		Unit:     gopdf.Unit_PT,
	})
	doc.AddPage()

	if err := doc.AddTTFFont(g.fontName, g.fontPath); err != nil {
		return nil, fmt.Errorf("add ticket font: %w", err)
	}

	g.drawWatermark(doc, data.EventName)
	g.drawHeader(doc, data)
	g.drawSecurityNotice(doc)
	g.drawDetails(doc, data)
	g.drawSecurityFeatures(doc, data)
	g.drawQR(doc, data.VerificationURL)
	g.drawFooter(doc)

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("write ticket pdf: %w", err)
	}

	return buf.Bytes(), nil
}

func (g *Generator) drawWatermark(doc *gopdf.GoPdf, eventName string) {
	doc.SetTextColor(220, 220, 220)
	_ = doc.SetFont(g.fontName, "", 35)
	doc.Rotate(45, pageWidth*2/3, pageHeight*2/3)
	doc.SetXY(pageWidth/4, pageHeight*2/3)
	_ = doc.Cell(nil, eventName)
	doc.RotateReset()
	doc.SetTextColor(0, 0, 0)
}

func (g *Generator) drawHeader(doc *gopdf.GoPdf, data TicketData) {
	doc.SetTextColor(0, 128, 128)
	_ = doc.SetFont(g.fontName, "", 20)
	doc.SetXY(170, 70)
	_ = doc.Cell(nil, data.Organizer)

	doc.SetStrokeColor(64, 64, 64)
	doc.Line(170, 92, 350, 92)

	doc.SetTextColor(64, 64, 64)
	_ = doc.SetFont(g.fontName, "", 12)
	doc.SetXY(170, 98)
	_ = doc.Cell(nil, data.Tagline)

	doc.SetTextColor(0, 0, 0)
	doc.SetStrokeColor(0, 0, 0)
}

func (g *Generator) drawSecurityNotice(doc *gopdf.GoPdf) {
	doc.SetTextColor(128, 0, 0)
	_ = doc.SetFont(g.fontName, "", 10)
	doc.SetXY(120, 140)
	_ = doc.Cell(nil, "This is an official ticket. Any alterations will invalidate this ticket.")
	doc.SetTextColor(0, 0, 0)
}

func (g *Generator) drawDetails(doc *gopdf.GoPdf, data TicketData) {
	reg := data.Registration

	status := "PENDING"
	if reg.PaymentConfirmed {
		status = "CONFIRMED"
	}

	g.section(doc, 180, "Participant Details:", []string{
		"Name: " + reg.FullName,
		"Email: " + reg.Email,
		"Phone: " + reg.Phone,
		fmt.Sprintf("Age: %d", reg.Age),
		"Experience: " + string(reg.Experience),
	})

	g.section(doc, 330, "Workshop Details:", []string{
		"Event: " + data.EventName,
		"Dates: " + data.EventDates,
		"Venue: " + data.Venue,
		"Address: " + data.VenueAddress,
	})

	g.section(doc, 460, "Payment Verification:", []string{
		"Transaction ID: " + reg.TransactionID,
		"Payment Status: " + status,
		"Registration ID: " + reg.ID.String(),
	})
}

func (g *Generator) drawSecurityFeatures(doc *gopdf.GoPdf, data TicketData) {
	doc.SetTextColor(128, 0, 0)
	_ = doc.SetFont(g.fontName, "", 12)
	doc.SetXY(57, 580)
	_ = doc.Cell(nil, "Security Features:")

	_ = doc.SetFont(g.fontName, "", 10)
	lines := []string{
		"Verification Code: " + data.VerificationCode,
		"Generated: " + data.Registration.CreatedAt.Format("02 Jan 2006 15:04:05"),
		"Verify Online: " + data.VerificationURL,
	}
	y := 602.0
	for _, line := range lines {
		doc.SetXY(57, y)
		_ = doc.Cell(nil, line)
		y += 18
	}
	doc.SetTextColor(0, 0, 0)
}

func (g *Generator) section(doc *gopdf.GoPdf, y float64, title string, lines []string) {
	doc.SetTextColor(0, 0, 0)
	_ = doc.SetFont(g.fontName, "", 12)
	doc.SetXY(57, y)
	_ = doc.Cell(nil, title)

	doc.SetTextColor(64, 64, 64)
	_ = doc.SetFont(g.fontName, "", 10)
	lineY := y + 22
	for _, line := range lines {
		doc.SetXY(57, lineY)
		_ = doc.Cell(nil, line)
		lineY += 18
	}
	doc.SetTextColor(0, 0, 0)
}

func (g *Generator) drawQR(doc *gopdf.GoPdf, url string) {
	png, err := qrcode.Encode(url, qrcode.Medium, qrPixels)
	if err != nil {
		logger.Error("ticket qr encode failed", zap.Error(err))
		return
	}

	holder, err := gopdf.ImageHolderByBytes(png)
	if err != nil {
		logger.Error("ticket qr image holder failed", zap.Error(err))
		return
	}

	qrX := pageWidth - qrSize - 57
	qrY := pageHeight - qrSize - 115
	if err := doc.ImageByHolder(holder, qrX, qrY, &gopdf.Rect{W: qrSize, H: qrSize}); err != nil {
		logger.Error("ticket qr draw failed", zap.Error(err))
		return
	}

	_ = doc.SetFont(g.fontName, "", 8)
	doc.SetXY(qrX+14, qrY+qrSize+8)
	_ = doc.Cell(nil, "Scan to verify ticket")
}

func (g *Generator) drawFooter(doc *gopdf.GoPdf) {
	_ = doc.SetFont(g.fontName, "", 8)
	doc.SetTextColor(64, 64, 64)
	doc.SetXY(130, pageHeight-70)
	_ = doc.Cell(nil, "For verification, scan QR code or visit the verification URL above.")
	doc.SetXY(160, pageHeight-56)
	_ = doc.Cell(nil, "This ticket is valid only for the registered participant.")
	doc.SetTextColor(0, 0, 0)
}
