package services

import (
	"context"
	"io"
	"time"

	log "github.com/sirupsen/logrus"

	"relic-gallery-service/internal/core/domain"
	ports "relic-gallery-service/internal/core/ports/output"
)

// ArtifactUpload carries the fields of a manual artifact upload.
type ArtifactUpload struct {
	Title       string
	Artist      string
	Culture     string
	Period      string
	Medium      string
	Museum      string
	Description string
	Metadata    string
	ImageName   string
	Image       io.Reader
}

type ArtifactService struct {
	repo   ports.ArtifactRepository
	store  ports.FileStore
	museum ports.MuseumClient
}

func NewArtifactService(repo ports.ArtifactRepository, store ports.FileStore, museum ports.MuseumClient) *ArtifactService {
	return &ArtifactService{repo: repo, store: store, museum: museum}
}

func (s *ArtifactService) Create(ctx context.Context, upload ArtifactUpload) (*domain.Artifact, error) {
	if upload.Title == "" {
		return nil, domain.ErrInvalidArtifactTitle
	}
	if upload.Image == nil {
		return nil, domain.ErrImageRequired
	}

	imagePath, err := s.store.Save(ctx, ports.CategoryArtifacts, upload.ImageName, upload.Image)
	if err != nil {
		return nil, err
	}

	artifact := &domain.Artifact{
		Title:       upload.Title,
		Artist:      upload.Artist,
		Culture:     upload.Culture,
		Period:      upload.Period,
		Medium:      upload.Medium,
		Museum:      upload.Museum,
		Description: upload.Description,
		Metadata:    upload.Metadata,
		ImagePath:   imagePath,
		UploadedAt:  time.Now(),
	}

	if err := s.repo.Create(ctx, artifact); err != nil {
		if rmErr := s.store.Remove(imagePath); rmErr != nil {
			log.WithError(rmErr).WithField("path", imagePath).Warn("remove orphaned upload failed")
		}
		return nil, err
	}

	return artifact, nil
}

func (s *ArtifactService) Get(ctx context.Context, id int64) (*domain.Artifact, error) {
	return s.repo.GetByID(ctx, id)
}

// ListByIDs fetches a batch of artifacts; missing ids are silently skipped.
func (s *ArtifactService) ListByIDs(ctx context.Context, ids []int64) ([]*domain.Artifact, error) {
	return s.repo.ListByIDs(ctx, ids)
}

func (s *ArtifactService) List(ctx context.Context, filter ports.ArtifactListFilter) ([]*domain.Artifact, int, error) {
	filter.Limit = ClampPageSize(filter.Limit)
	return s.repo.List(ctx, filter)
}

func (s *ArtifactService) Update(ctx context.Context, id int64, updates map[string]interface{}) (*domain.Artifact, error) {
	artifact, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if v, ok := updates["title"]; ok && v != nil {
		if v.(string) == "" {
			return nil, domain.ErrInvalidArtifactTitle
		}
		artifact.Title = v.(string)
	}
	if v, ok := updates["artist"]; ok && v != nil {
		artifact.Artist = v.(string)
	}
	if v, ok := updates["culture"]; ok && v != nil {
		artifact.Culture = v.(string)
	}
	if v, ok := updates["period"]; ok && v != nil {
		artifact.Period = v.(string)
	}
	if v, ok := updates["medium"]; ok && v != nil {
		artifact.Medium = v.(string)
	}
	if v, ok := updates["museum"]; ok && v != nil {
		artifact.Museum = v.(string)
	}
	if v, ok := updates["description"]; ok && v != nil {
		artifact.Description = v.(string)
	}
	if v, ok := updates["metadata"]; ok && v != nil {
		artifact.Metadata = v.(string)
	}

	if err := s.repo.Update(ctx, artifact); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, id)
}

// Delete removes the artifact, its source links, and any interpolation left
// with fewer than two sources. Stored image files are removed best-effort;
// a file that cannot be deleted never fails the operation.
func (s *ArtifactService) Delete(ctx context.Context, id int64) error {
	artifact, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	droppedImages, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}

	if !artifact.IsImported() && artifact.ImagePath != "" {
		droppedImages = append(droppedImages, artifact.ImagePath)
	}
	for _, path := range droppedImages {
		if err := s.store.Remove(path); err != nil {
			log.WithError(err).WithField("path", path).Warn("remove image file failed")
		}
	}

	return nil
}

// ImportFromMuseum fetches a catalog object and stores it as an artifact.
func (s *ArtifactService) ImportFromMuseum(ctx context.Context, objectID int64) (*domain.Artifact, error) {
	if s.museum == nil || !s.museum.IsAvailable() {
		return nil, domain.ErrMuseumUnavailable
	}

	if existing, err := s.repo.GetByExternalObjectID(ctx, objectID); err == nil && existing != nil {
		return nil, domain.ErrArtifactAlreadyImported
	}

	obj, err := s.museum.GetObject(ctx, objectID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	artifact := &domain.Artifact{
		Title:                obj.Title,
		Artist:               obj.Artist,
		Culture:              obj.Culture,
		Period:               obj.Period,
		Medium:               obj.Medium,
		Museum:               obj.Museum,
		Description:          obj.Description,
		UploadedAt:           now,
		ExternalObjectID:     &obj.ObjectID,
		ObjectNumber:         obj.ObjectNumber,
		Classification:       obj.Classification,
		Dated:                obj.Dated,
		DateBegin:            obj.DateBegin,
		DateEnd:              obj.DateEnd,
		Century:              obj.Century,
		Technique:            obj.Technique,
		Dimensions:           obj.Dimensions,
		Provenance:           obj.Provenance,
		CreditLine:           obj.CreditLine,
		Department:           obj.Department,
		Division:             obj.Division,
		Copyright:            obj.Copyright,
		VerificationLevel:    obj.VerificationLevel,
		ImagePermissionLevel: obj.ImagePermissionLevel,
		AccessLevel:          obj.AccessLevel,
		CatalogURL:           obj.CatalogURL,
		PrimaryImageURL:      obj.PrimaryImageURL,
		IIIFBaseURI:          obj.IIIFBaseURI,
		LastSyncedAt:         &now,
	}

	if err := s.repo.Create(ctx, artifact); err != nil {
		return nil, err
	}

	return artifact, nil
}
