package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/chai2010/webp"
	"github.com/google/uuid"
	xdraw "golang.org/x/image/draw"

	"github.com/hourbook/hourbook/internal/config"
)

// Avatars are downscaled to fit this square before upload.
const avatarMaxSize = 256

// AvatarStorage re-encodes uploaded avatars as webp and stores them on S3.
type AvatarStorage struct {
	client *s3.Client
	bucket string
	region string
}

func NewAvatarStorage(cfg *config.Config) *AvatarStorage {
	awsCfg := aws.Config{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
	}

	return &AvatarStorage{
		client: s3.NewFromConfig(awsCfg),
		bucket: cfg.S3Bucket,
		region: cfg.S3Region,
	}
}

// Upload decodes the image (jpeg/png), downscales it, converts to webp and
// uploads under a fresh key. Returns the public URL.
func (s *AvatarStorage) Upload(ctx context.Context, r io.Reader) (string, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return "", fmt.Errorf("decode avatar: %w", err)
	}

	encoded, err := encodeWebp(downscale(src))
	if err != nil {
		return "", fmt.Errorf("encode avatar: %w", err)
	}

	key := fmt.Sprintf("avatars/%s.webp", uuid.New().String())

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(encoded),
		ContentType: aws.String("image/webp"),
		ACL:         types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", fmt.Errorf("upload avatar: %w", err)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key), nil
}

func downscale(src image.Image) image.Image {
	b := src.Bounds()
	if b.Dx() <= avatarMaxSize && b.Dy() <= avatarMaxSize {
		return src
	}

	w, h := b.Dx(), b.Dy()
	if w >= h {
		h = h * avatarMaxSize / w
		w = avatarMaxSize
	} else {
		w = w * avatarMaxSize / h
		h = avatarMaxSize
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Over, nil)
	return dst
}

func encodeWebp(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: 85}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
