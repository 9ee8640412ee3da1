// Package report renders a populated checkup into a PDF document.
package report

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"time"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/jung-kurt/gofpdf"

	"github.com/Ashokchittari/dentoCare/internal/logger"
	"github.com/Ashokchittari/dentoCare/internal/models"
)

// Images are scaled to fit this bounding box, in points.
const (
	imageBoxWidth  = 500.0
	imageBoxHeight = 400.0
)

// FileResolver maps a stored image address to its bytes.
type FileResolver func(url string) ([]byte, error)

// Renderer turns checkup records into PDF bytes. It holds no state beyond
// the resolver; rendering performs no persistence and no authorization.
type Renderer struct {
	files FileResolver
}

// NewRenderer creates a renderer reading image bytes through the resolver.
func NewRenderer(files FileResolver) *Renderer {
	return &Renderer{files: files}
}

// Render produces the report document for a checkup with profiles populated.
// A single image that cannot be located or decoded is replaced with an inline
// notice; the rest of the document is still produced. The creation date is
// pinned to the record's updated_at so unchanged checkups render to
// identical bytes.
func (r *Renderer) Render(ctx context.Context, c *models.CheckupDB) ([]byte, error) {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetCreationDate(c.UpdatedAt)
	pdf.SetAutoPageBreak(true, 36)
	pdf.AddPage()

	pageWidth, pageHeight := pdf.GetPageSize()
	left, _, right, bottom := pdf.GetMargins()
	usableWidth := pageWidth - left - right

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(usableWidth, 24, "Dental Checkup Report", "", 1, "C", false, 0, "")
	pdf.Ln(12)

	writeHeading := func(text string) {
		pdf.SetFont("Helvetica", "B", 14)
		pdf.CellFormat(usableWidth, 18, text, "", 1, "L", false, 0, "")
	}
	writeLine := func(text string) {
		pdf.SetFont("Helvetica", "", 12)
		pdf.MultiCell(usableWidth, 15, text, "", "L", false)
	}

	writeHeading("Patient Information:")
	if c.Patient != nil {
		writeLine(fmt.Sprintf("Name: %s", c.Patient.Name))
		writeLine(fmt.Sprintf("Email: %s", c.Patient.Email))
	}
	pdf.Ln(12)

	writeHeading("Dentist Information:")
	if c.Dentist != nil {
		writeLine(fmt.Sprintf("Name: Dr. %s", c.Dentist.Name))
		writeLine(fmt.Sprintf("Email: %s", c.Dentist.Email))
	}
	pdf.Ln(12)

	writeHeading("Checkup Details:")
	writeLine(fmt.Sprintf("Status: %s", c.Status))
	writeLine(fmt.Sprintf("Date: %s", c.CreatedAt.Format("1/2/2006")))
	pdf.Ln(12)

	if c.Notes != "" {
		writeHeading("Notes:")
		writeLine(c.Notes)
		pdf.Ln(12)
	}

	if len(c.Images) > 0 {
		writeHeading("Images:")
		pdf.Ln(6)

		for i, img := range c.Images {
			writeLine(fmt.Sprintf("Description: %s", img.Description))

			if err := r.addImage(pdf, i, img, pageWidth, pageHeight, bottom); err != nil {
				logger.Log.Errorw("could not add image to report",
					"checkup_id", c.CheckupID,
					"url", img.URL,
					"error", err,
				)
				writeLine("Error: Could not load image")
				pdf.Ln(6)
				continue
			}

			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(usableWidth, 13, fmt.Sprintf("Uploaded: %s", formatTimestamp(img.UploadedAt)), "", "L", false)
			pdf.Ln(24)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render checkup report: %w", err)
	}
	return buf.Bytes(), nil
}

// addImage places one image scaled to fit the bounding box, centered.
// Errors are reported to the caller before anything is drawn, so a bad
// image never poisons the document.
func (r *Renderer) addImage(pdf *gofpdf.Fpdf, idx int, img models.CheckupImage, pageWidth, pageHeight, marginBottom float64) error {
	data, err := r.files(img.URL)
	if err != nil {
		return fmt.Errorf("resolve image bytes: %w", err)
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decode image: %w", err)
	}
	switch format {
	case "png", "jpeg", "gif":
	default:
		return fmt.Errorf("unsupported image format %q", format)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("image has no dimensions")
	}

	scale := imageBoxWidth / float64(cfg.Width)
	if s := imageBoxHeight / float64(cfg.Height); s < scale {
		scale = s
	}
	w := float64(cfg.Width) * scale
	h := float64(cfg.Height) * scale

	if pdf.GetY()+h > pageHeight-marginBottom {
		pdf.AddPage()
	}

	name := fmt.Sprintf("checkup-image-%d-%s", idx, img.URL)
	opts := gofpdf.ImageOptions{ImageType: format}
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
	if pdf.Err() {
		err := pdf.Error()
		pdf.ClearError()
		return err
	}

	x := (pageWidth - w) / 2
	pdf.ImageOptions(name, x, pdf.GetY(), w, h, false, opts, 0, "")
	pdf.SetY(pdf.GetY() + h + 6)
	return nil
}

func formatTimestamp(t time.Time) string {
	return t.Format("1/2/2006, 3:04:05 PM")
}
