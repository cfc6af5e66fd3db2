package storage

import (
	"context"
	"fmt"

	"github.com/smallbiznis/staffhub/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("storage",
	fx.Provide(New),
)

const defaultLocalPath = "./storage"

// New builds the backend selected by STORAGE_TYPE.
func New(cfg config.Config, log *zap.Logger) (Storage, error) {
	sc := cfg.Storage
	switch Type(sc.Type) {
	case "", TypeLocal:
		path := sc.LocalPath
		if path == "" {
			path = defaultLocalPath
		}
		log.Info("document storage", zap.String("type", string(TypeLocal)), zap.String("path", path))
		return NewLocal(path)
	case TypeS3:
		if sc.S3Bucket == "" || sc.S3Region == "" {
			return nil, fmt.Errorf("s3 storage requires STORAGE_S3_BUCKET and STORAGE_S3_REGION")
		}
		log.Info("document storage", zap.String("type", string(TypeS3)), zap.String("bucket", sc.S3Bucket))
		return NewS3(context.Background(), sc.S3Bucket, sc.S3Region)
	default:
		return nil, fmt.Errorf("unknown storage type: %s", sc.Type)
	}
}
