package services

import (
	"context"

	"backend/configs"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	pkgerrors "github.com/pkg/errors"
)

// UploadService issues presigned PUT URLs so clients upload straight to S3;
// binaries never pass through this server.
type UploadService struct {
	presigner *s3.PresignClient
	bucket    string
}

func NewUploadService(ctx context.Context, cfg *configs.Config) (*UploadService, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
	if err != nil {
		return nil, pkgerrors.Wrap(err, "load aws config")
	}
	client := s3.NewFromConfig(awsCfg)
	return &UploadService{
		presigner: s3.NewPresignClient(client),
		bucket:    cfg.AWSBucketName,
	}, nil
}

type FileSpec struct {
	FileKey     string `json:"filekey" binding:"required"`
	FileSize    string `json:"fileSize"`
	ContentType string `json:"contentType" binding:"required"`
}

// PutObjectURLs presigns one PUT URL per file, keyed under upload/.
func (s *UploadService) PutObjectURLs(ctx context.Context, files []FileSpec) ([]string, error) {
	urls := make([]string, 0, len(files))
	for _, f := range files {
		req, err := s.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(s.bucket),
			Key:         aws.String("upload/" + f.FileKey),
			ContentType: aws.String(f.ContentType),
		})
		if err != nil {
			return nil, pkgerrors.Wrapf(err, "presign %s", f.FileKey)
		}
		urls = append(urls, req.URL)
	}
	return urls, nil
}
