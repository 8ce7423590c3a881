package database

import (
	"bytes"
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var S3Client *s3.Client

// Initialiser le client S3 (stockage des avatars)
func InitS3(ctx context.Context, region string) error {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return err
	}
	S3Client = s3.NewFromConfig(cfg)
	return nil
}

type BucketBasics struct {
	S3Client *s3.Client
}

// Envoyer un objet dans le bucket (upload multipart pour les gros fichiers)
func (basics BucketBasics) UploadLargeObject(ctx context.Context, bucketName string, objectKey string, data []byte) error {
	uploader := manager.NewUploader(basics.S3Client, func(u *manager.Uploader) {
		u.PartSize = 10 * 1024 * 1024
	})
	_, err := uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket: &bucketName,
		Key:    &objectKey,
		Body:   bytes.NewReader(data),
	})
	if err != nil {
		return fmt.Errorf("upload de %s dans %s échoué : %w", objectKey, bucketName, err)
	}
	return nil
}
