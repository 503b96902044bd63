package images

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"regexp"
	"strings"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
	"golang.org/x/image/draw"

	_ "image/gif"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

const (
	// bounds used for freshly uploaded images
	DefaultMaxWidth  = 1920
	DefaultMaxHeight = 1080
	DefaultQuality   = 80

	// tighter bounds used when shrinking images already inlined in post content
	inlineMaxWidth  = 1600
	inlineMaxHeight = 1200
	inlineQuality   = 75

	// estimated raw size (in KB) above which an inline image gets recompressed;
	// base64 inflates payloads by ~4:3, hence the *3/4 in the estimate
	MaxInlineSizeKB = 300
)

var (
	ErrUnreadableFile = errors.New("file cannot be read as an image")

	inlineImageRegex = regexp.MustCompile(`<img[^>]+src="(data:image/[^;]+;base64,[^"]+)"`)
)

// Normalizer converts raw image bytes into inline data URIs and keeps
// post content within the document store size ceiling
type Normalizer struct{}

func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// EstimatedSizeKB estimates the raw byte size of a base64 data URI
func EstimatedSizeKB(dataURI string) float64 {
	return float64(len(dataURI)) * 3 / 4 / 1024
}

// Encode returns the given image bytes as a base64 data URI, unchanged
func (n *Normalizer) Encode(data []byte) (string, error) {
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrUnreadableFile, err)
	}
	return fmt.Sprintf(
		"data:image/%s;base64,%s",
		format, base64.StdEncoding.EncodeToString(data),
	), nil
}

// Compress decodes the image, scales it down so that neither dimension
// exceeds the given bounds (aspect ratio preserved, never scales up), and
// re-encodes it as JPEG at the given quality
func (n *Normalizer) Compress(data []byte, maxWidth, maxHeight, quality int) (string, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrUnreadableFile, err)
	}

	img = scaleDown(img, maxWidth, maxHeight)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return "", fmt.Errorf("encode jpeg: %w", err)
	}

	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// CompressDefault is the path used for fresh uploads
func (n *Normalizer) CompressDefault(data []byte) (string, error) {
	return n.Compress(data, DefaultMaxWidth, DefaultMaxHeight, DefaultQuality)
}

// NormalizeContentImages rewrites inline data URI images whose estimated raw
// size exceeds MaxInlineSizeKB, recompressing them at the tighter inline
// bounds. Markup around the images is left byte-for-byte unchanged.
//
// The operation is a fixed point: an image is either already small enough
// (left alone), replaced with a small-enough payload (skipped on the next
// run), or kept as-is when recompression fails or cannot shrink it below the
// threshold. Per-image failures are collected and returned alongside the
// rewritten content, they never abort the remaining images.
func (n *Normalizer) NormalizeContentImages(html string) (string, error) {
	matches := inlineImageRegex.FindAllStringSubmatch(html, -1)
	if len(matches) == 0 {
		return html, nil
	}

	var errs error
	processed := html
	for _, match := range matches {
		dataURI := match[1]

		estimatedKB := EstimatedSizeKB(dataURI)
		if estimatedKB <= MaxInlineSizeKB {
			continue
		}

		payload, err := dataURIPayload(dataURI)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}

		compressed, err := n.Compress(payload, inlineMaxWidth, inlineMaxHeight, inlineQuality)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("compress inline image: %w", err))
			continue
		}

		if EstimatedSizeKB(compressed) > MaxInlineSizeKB {
			// cannot be shrunk below the threshold, keep the original so
			// repeated normalization does not degrade it further
			log.Warnf("inline image of ~%.0fKB still above %dKB after recompression, keeping original", estimatedKB, MaxInlineSizeKB)
			continue
		}

		log.Tracef("compressed inline image from ~%.0fKB to ~%.0fKB", estimatedKB, EstimatedSizeKB(compressed))
		processed = strings.Replace(processed, dataURI, compressed, 1)
	}

	return processed, errs
}

// dataURIPayload strips the data URI header and decodes the base64 payload
func dataURIPayload(dataURI string) ([]byte, error) {
	_, encoded, found := strings.Cut(dataURI, ",")
	if !found {
		return nil, fmt.Errorf("%w: no data URI payload", ErrUnreadableFile)
	}
	payload, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnreadableFile, err)
	}
	return payload, nil
}

func scaleDown(src image.Image, maxWidth, maxHeight int) image.Image {
	b := src.Bounds()
	width, height := b.Dx(), b.Dy()
	if width <= maxWidth && height <= maxHeight {
		return src
	}

	ratio := min(
		float64(maxWidth)/float64(width),
		float64(maxHeight)/float64(height),
	)
	newWidth := max(int(float64(width)*ratio), 1)
	newHeight := max(int(float64(height)*ratio), 1)

	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	// bilinear has a good quality / speed tradeoff
	draw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	return dst
}
