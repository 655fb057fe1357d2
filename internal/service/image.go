package service

import (
	"bytes"
	"context"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/dailydish/backend/config"
)

// ImageService stores recipe images in S3.
type ImageService struct {
	s3Config *config.S3Config
}

// NewImageService creates a new ImageService instance.
func NewImageService(s3Config *config.S3Config) *ImageService {
	return &ImageService{s3Config: s3Config}
}

// UploadRecipeImage uploads image data under a unique key and returns the
// public URL to store on the recipe.
func (s *ImageService) UploadRecipeImage(ctx context.Context, imageData []byte, contentType string) (string, error) {
	if contentType == "" {
		contentType = "image/jpeg"
	}
	fileName := fmt.Sprintf("recipe-images/%s", uuid.New().String())

	_, err := s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(fileName),
		Body:        bytes.NewReader(imageData),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	publicURL := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.s3Config.BucketName, fileName)
	log.Printf("[ImageService] Uploaded recipe image to %s", publicURL)
	return publicURL, nil
}
