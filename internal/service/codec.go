package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"huffcodec/internal/model"
	"huffcodec/internal/repo"
	"huffcodec/pkg/huffman"
	"huffcodec/pkg/logger"
)

// CodecService runs the codec and persists the resulting artifacts.
type CodecService struct {
	repo   repo.ArtifactRepo
	logger logger.Logger
}

func NewCodecService(r repo.ArtifactRepo, l logger.Logger) *CodecService {
	return &CodecService{repo: r, logger: l}
}

// Encode compresses text, stores the artifact, and returns the stored
// record together with the full encode result (frequency table, tree,
// code table) for callers that want to inspect them.
func (s *CodecService) Encode(ctx context.Context, name, text string) (*model.Artifact, *huffman.EncodeResult, error) {
	res, err := huffman.Encode(text)
	if err != nil {
		return nil, nil, err
	}
	a := &model.Artifact{
		ID:             uuid.NewString(),
		Name:           name,
		OriginalSize:   res.OriginalSize,
		CompressedSize: res.CompressedSize,
		Ratio:          res.Ratio,
		BitLength:      res.BitLength,
		Blob:           res.Artifact,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.repo.Save(ctx, a); err != nil {
		return nil, nil, err
	}
	s.logger.Infof("artifact %s stored: %d -> %d bytes (ratio %.3f)", a.ID, a.OriginalSize, a.CompressedSize, a.Ratio)
	return a, res, nil
}

// DecodeByID fetches a stored artifact and decodes it back to text.
func (s *CodecService) DecodeByID(ctx context.Context, id string) (string, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", err
	}
	text, err := huffman.Decode(a.Blob)
	if err != nil {
		s.logger.Errorf("artifact %s failed to decode: %v", id, err)
		return "", err
	}
	return text, nil
}

// DecodeBlob decodes container bytes supplied by the caller, without
// touching the store.
func (s *CodecService) DecodeBlob(blob []byte) (string, error) {
	return huffman.Decode(blob)
}

func (s *CodecService) Get(ctx context.Context, id string) (*model.Artifact, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CodecService) List(ctx context.Context) ([]*model.Artifact, error) {
	return s.repo.List(ctx)
}
