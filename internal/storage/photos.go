package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"golang.org/x/image/draw"

	"github.com/stylehub/barber-api/internal/config"
)

const (
	// Barber portraits are displayed at most at 512px in the booking UI.
	maxPhotoDim  = 512
	webpQuality  = 85
	maxUploadMiB = 8
)

// PhotoStore converts uploaded images to webp and persists them in an
// S3-compatible bucket. Works against AWS proper or MinIO via the
// endpoint override.
type PhotoStore struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

func NewPhotoStore(cfg *config.Config) *PhotoStore {
	opts := s3.Options{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey, cfg.S3SecretKey, "",
		),
	}
	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
		opts.UsePathStyle = true
	}

	publicURL := cfg.S3Endpoint
	if publicURL == "" {
		publicURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3Bucket, cfg.S3Region)
	} else {
		publicURL = strings.TrimSuffix(publicURL, "/") + "/" + cfg.S3Bucket
	}

	return &PhotoStore{
		client:    s3.New(opts),
		bucket:    cfg.S3Bucket,
		publicURL: publicURL,
	}
}

// UploadBarberPhoto decodes the incoming jpeg/png, downsizes it to fit
// maxPhotoDim and stores it as webp. Returns the public URL.
func (p *PhotoStore) UploadBarberPhoto(ctx context.Context, barberID uint, r io.Reader) (string, error) {
	limited := io.LimitReader(r, maxUploadMiB<<20)

	src, _, err := image.Decode(limited)
	if err != nil {
		return "", fmt.Errorf("decode photo: %w", err)
	}

	src = fitWithin(src, maxPhotoDim)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, src, &webp.Options{Quality: webpQuality}); err != nil {
		return "", fmt.Errorf("encode webp: %w", err)
	}

	key := fmt.Sprintf("barbers/%d/photo.webp", barberID)
	_, err = p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", fmt.Errorf("upload photo: %w", err)
	}

	return p.publicURL + "/" + key, nil
}

// DeleteBarberPhoto removes the stored portrait. Missing objects are
// not an error.
func (p *PhotoStore) DeleteBarberPhoto(ctx context.Context, barberID uint) error {
	key := fmt.Sprintf("barbers/%d/photo.webp", barberID)
	_, err := p.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(key),
	})
	return err
}

func fitWithin(src image.Image, max int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= max && h <= max {
		return src
	}

	if w > h {
		h = h * max / w
		w = max
	} else {
		w = w * max / h
		h = max
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
