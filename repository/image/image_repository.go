package image

import (
	"bytes"
	"context"
	"errors"
	"io"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no stored file matches the given id.
var ErrNotFound = errors.New("file not found")

type Mongo struct {
	bucket *gridfs.Bucket
}

type ImageRepository interface {
	Upload(ctx context.Context, filename, contentType string, data []byte) (string, error)
	Download(ctx context.Context, fileID string, w io.Writer) error
	Delete(ctx context.Context, fileID string) error
}

func NewImageRepository(db *mongo.Database) (ImageRepository, error) {
	bucket, err := gridfs.NewBucket(db)
	if err != nil {
		return nil, err
	}
	return &Mongo{bucket: bucket}, nil
}

func (r *Mongo) Upload(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	opts := options.GridFSUpload().SetMetadata(bson.M{"content_type": contentType})
	id, err := r.bucket.UploadFromStream(filename, bytes.NewReader(data), opts)
	if err != nil {
		return "", err
	}
	return id.Hex(), nil
}

func (r *Mongo) Download(ctx context.Context, fileID string, w io.Writer) error {
	oid, err := primitive.ObjectIDFromHex(fileID)
	if err != nil {
		return ErrNotFound
	}
	if _, err := r.bucket.DownloadToStream(oid, w); err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (r *Mongo) Delete(ctx context.Context, fileID string) error {
	oid, err := primitive.ObjectIDFromHex(fileID)
	if err != nil {
		return ErrNotFound
	}
	if err := r.bucket.Delete(oid); err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
