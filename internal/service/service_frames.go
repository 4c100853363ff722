package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dpanagushin/framestore/internal/logger"
	"github.com/dpanagushin/framestore/internal/objstore"
	"github.com/dpanagushin/framestore/internal/store"
	"github.com/dpanagushin/framestore/internal/utils"
	"github.com/dpanagushin/framestore/models"
)

const (
	// maxBatchSize is the per-request file limit.
	maxBatchSize = 15

	// jpegSuffix is the only accepted file name suffix, matched case-sensitively.
	jpegSuffix = ".jpg"

	requestCodeLayout = "20060102150405"
	bucketLayout      = "20060102"
	createdAtLayout   = "2006-01-02 15:04:05"
)

// frameService is the concrete implementation of FrameService. It spans the
// two stores of the system: image bytes go to the object store, metadata rows
// to PostgreSQL. The metadata commit is the point of no return; blob writes
// that precede a failed commit are logged as orphans rather than silently
// abandoned.
type frameService struct {
	authService     AuthService
	frameRepository store.FrameRepository
	objectStore     objstore.Client
	uuidGenerator   *utils.UUIDGenerator
	logger          *logger.Logger
}

// NewFrameService constructs a FrameService on top of the auth service (for
// token resolution), the frame repository and the object store client.
func NewFrameService(authService AuthService, frameRepository store.FrameRepository, objectStore objstore.Client, logger *logger.Logger) FrameService {
	return &frameService{
		authService:     authService,
		frameRepository: frameRepository,
		objectStore:     objectStore,
		uuidGenerator:   utils.NewUUIDGenerator(),
		logger:          logger,
	}
}

// Upload stores a batch of JPEG files.
//
// The gate order is fixed: token first, role second, batch validation third.
// All validation happens before any blob or database I/O, so a rejected
// request leaves both stores untouched.
//
// Every derived value of the batch (request code, bucket, created_at string)
// comes from a single UTC instant captured once, which guarantees that the
// bucket always equals the first 8 characters of the request code.
func (s *frameService) Upload(ctx context.Context, token string, files []models.FrameUpload) (models.BatchResponse, error) {
	log := logger.FromContext(ctx)

	user, err := s.authService.ResolveToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if !user.Role.CanManageFrames() {
		log.Error().Int64("user_id", user.UserID).Str("role", string(user.Role)).Msg("upload rejected: role not allowed")
		return nil, ErrNotAllowed
	}

	if len(files) == 0 || len(files) > maxBatchSize {
		log.Error().Int("files", len(files)).Msg("upload rejected: invalid batch size")
		return nil, ErrInvalidBatchSize
	}
	for _, file := range files {
		if !strings.HasSuffix(file.Name, jpegSuffix) {
			log.Error().Str("file", file.Name).Msg("upload rejected: not a jpg file")
			return nil, ErrInvalidImageFormat
		}
	}

	now := time.Now().UTC()
	requestCode := now.Format(requestCodeLayout)
	bucket := now.Format(bucketLayout)
	createdAt := now.Format(createdAtLayout)

	if err := s.ensureBucket(ctx, bucket); err != nil {
		return nil, err
	}

	frames := make([]models.Frame, 0, len(files))
	for _, file := range files {
		frame := models.Frame{
			RequestCode: requestCode,
			FileName:    s.uuidGenerator.Generate(),
			CreatedAt:   createdAt,
		}

		if err := s.objectStore.PutObject(ctx, bucket, frame.ObjectName(), file.Content); err != nil {
			s.logOrphans(ctx, bucket, frames)
			log.Err(err).Str("request_code", requestCode).Msg("upload aborted: blob write failed")
			return nil, fmt.Errorf("blob write failed: %w", err)
		}
		frames = append(frames, frame)
	}

	if err := s.frameRepository.AddFrames(ctx, frames); err != nil {
		s.logOrphans(ctx, bucket, frames)
		log.Err(err).Str("request_code", requestCode).Msg("upload aborted: metadata commit failed")
		return nil, fmt.Errorf("metadata commit failed: %w", err)
	}

	log.Info().
		Str("request_code", requestCode).
		Int("files", len(frames)).
		Msg("batch uploaded")

	return batchResponse(requestCode, frames), nil
}

// Get returns the frames of one batch. Any authenticated user may read.
func (s *frameService) Get(ctx context.Context, token string, code string) (models.BatchResponse, error) {
	log := logger.FromContext(ctx)

	if _, err := s.authService.ResolveToken(ctx, token); err != nil {
		return nil, err
	}

	frames, err := s.frameRepository.FindByRequestCode(ctx, code)
	if err != nil {
		log.Err(err).Str("request_code", code).Msg("batch lookup failed")
		return nil, fmt.Errorf("batch lookup failed: %w", err)
	}
	if len(frames) == 0 {
		return nil, ErrBatchNotFound
	}

	return batchResponse(code, frames), nil
}

// Delete removes a batch. The bucket comes from the code's date prefix, the
// way the batch was bucketed at upload time. Blob deletions are best-effort:
// a failed removal is logged and the loop continues, then the metadata rows
// are removed unconditionally so the batch stops resolving either way.
func (s *frameService) Delete(ctx context.Context, token string, code string) error {
	log := logger.FromContext(ctx)

	user, err := s.authService.ResolveToken(ctx, token)
	if err != nil {
		return err
	}
	if !user.Role.CanManageFrames() {
		log.Error().Int64("user_id", user.UserID).Str("role", string(user.Role)).Msg("delete rejected: role not allowed")
		return ErrNotAllowed
	}

	frames, err := s.frameRepository.FindByRequestCode(ctx, code)
	if err != nil {
		log.Err(err).Str("request_code", code).Msg("batch lookup failed")
		return fmt.Errorf("batch lookup failed: %w", err)
	}
	if len(frames) == 0 {
		return ErrBatchNotFound
	}

	for _, frame := range frames {
		if err := s.objectStore.RemoveObject(ctx, frame.BucketName(), frame.ObjectName()); err != nil {
			log.Warn().
				Str("bucket", frame.BucketName()).
				Str("object", frame.ObjectName()).
				Msg("blob removal failed, object left behind")
		}
	}

	deleted, err := s.frameRepository.DeleteByRequestCode(ctx, code)
	if err != nil {
		log.Err(err).Str("request_code", code).Msg("metadata removal failed")
		return fmt.Errorf("metadata removal failed: %w", err)
	}

	log.Info().
		Str("request_code", code).
		Int64("deleted", deleted).
		Msg("batch deleted")

	return nil
}

// ensureBucket makes sure the day's bucket exists. Both the existence check
// and the creation tolerate races between concurrent uploads.
func (s *frameService) ensureBucket(ctx context.Context, bucket string) error {
	log := logger.FromContext(ctx)

	exists, err := s.objectStore.BucketExists(ctx, bucket)
	if err != nil {
		log.Err(err).Str("bucket", bucket).Msg("bucket check failed")
		return fmt.Errorf("bucket check failed: %w", err)
	}
	if exists {
		return nil
	}

	if err := s.objectStore.MakeBucket(ctx, bucket); err != nil {
		log.Err(err).Str("bucket", bucket).Msg("bucket creation failed")
		return fmt.Errorf("bucket creation failed: %w", err)
	}

	return nil
}

// logOrphans records every blob already written when an upload aborts, so
// drift between the stores is visible in the logs instead of silent.
func (s *frameService) logOrphans(ctx context.Context, bucket string, frames []models.Frame) {
	log := logger.FromContext(ctx)

	for _, frame := range frames {
		log.Warn().
			Str("bucket", bucket).
			Str("object", frame.ObjectName()).
			Msg("orphan blob left in object store after aborted upload")
	}
}

func batchResponse(code string, frames []models.Frame) models.BatchResponse {
	infos := make([]models.FrameInfo, 0, len(frames))
	for _, frame := range frames {
		infos = append(infos, models.FrameInfo{
			FileName:  frame.FileName,
			CreatedAt: frame.CreatedAt,
		})
	}

	return models.BatchResponse{code: infos}
}
