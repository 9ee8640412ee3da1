package report

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ashokchittari/dentoCare/internal/models"
)

func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func testCheckup() *models.CheckupDB {
	created := time.Date(2025, 4, 25, 10, 30, 0, 0, time.UTC)
	return &models.CheckupDB{
		CheckupID: uuid.MustParse("3e3552f1-6f9c-48d3-9c5e-2a1f65d0a111"),
		PatientID: uuid.New(),
		DentistID: uuid.New(),
		Status:    models.StatusCompleted,
		Notes:     "Two fillings recommended.",
		CreatedAt: created,
		UpdatedAt: created.Add(48 * time.Hour),
		Patient:   &models.UserProfile{Name: "Alice", Email: "alice@example.com"},
		Dentist:   &models.UserProfile{Name: "Bob", Email: "bob@example.com"},
	}
}

func TestRenderer_Render(t *testing.T) {
	imageBytes := testPNG(t, 120, 80)
	resolver := func(url string) ([]byte, error) {
		if url == "uploads/xray.png" {
			return imageBytes, nil
		}
		return nil, errors.New("not found")
	}
	renderer := NewRenderer(resolver)

	t.Run("produces a PDF document", func(t *testing.T) {
		c := testCheckup()
		c.Images = models.CheckupImages{
			{URL: "uploads/xray.png", Description: "upper molar", UploadedAt: c.CreatedAt},
		}

		data, err := renderer.Render(context.Background(), c)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "output should start with a PDF header")
		assert.Greater(t, len(data), len(imageBytes), "embedded image should be present")
	})

	t.Run("no images", func(t *testing.T) {
		c := testCheckup()

		data, err := renderer.Render(context.Background(), c)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	})

	t.Run("missing image does not fail the document", func(t *testing.T) {
		c := testCheckup()
		c.Images = models.CheckupImages{
			{URL: "uploads/gone.png", Description: "lost", UploadedAt: c.CreatedAt},
			{URL: "uploads/xray.png", Description: "kept", UploadedAt: c.CreatedAt},
		}

		data, err := renderer.Render(context.Background(), c)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	})

	t.Run("undecodable image does not fail the document", func(t *testing.T) {
		garbageResolver := func(string) ([]byte, error) { return []byte("not an image"), nil }
		r := NewRenderer(garbageResolver)

		c := testCheckup()
		c.Images = models.CheckupImages{
			{URL: "uploads/broken.png", Description: "corrupt", UploadedAt: c.CreatedAt},
		}

		data, err := r.Render(context.Background(), c)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	})

	t.Run("unchanged checkup renders identical bytes", func(t *testing.T) {
		c := testCheckup()
		c.Images = models.CheckupImages{
			{URL: "uploads/xray.png", Description: "upper molar", UploadedAt: c.CreatedAt},
		}

		first, err := renderer.Render(context.Background(), c)
		require.NoError(t, err)
		second, err := renderer.Render(context.Background(), c)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("oversized image is scaled into the box", func(t *testing.T) {
		big := testPNG(t, 1600, 1200)
		r := NewRenderer(func(string) ([]byte, error) { return big, nil })

		c := testCheckup()
		c.Images = models.CheckupImages{
			{URL: "uploads/big.png", Description: "panoramic", UploadedAt: c.CreatedAt},
		}

		data, err := r.Render(context.Background(), c)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	})
}
