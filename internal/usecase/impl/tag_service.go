package impl

import (
	"context"
	"log/slog"

	deliverycontext "cookbook/internal/delivery/context"
	"cookbook/internal/domain/entity"
	domainerrors "cookbook/internal/domain/errors"
	"cookbook/internal/domain/repository"
	"cookbook/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// tagService implements the TagUsecase interface. Direct tag CRUD runs on
// single statements, so it needs no transaction manager.
type tagService struct {
	tagRepo repository.TagRepository
	logger  *slog.Logger
}

// TagServiceParams holds dependencies for TagService, injected by Fx.
type TagServiceParams struct {
	fx.In

	TagRepo repository.TagRepository
	Logger  *slog.Logger
}

// NewTagService is the constructor for tagService.
func NewTagService(params TagServiceParams) usecase.TagUsecase {
	return &tagService{
		tagRepo: params.TagRepo,
		logger:  params.Logger,
	}
}

func (srv *tagService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListTags retrieves the owner's tags in reverse lexicographic name order.
func (srv *tagService) ListTags(ctx context.Context, ownerID uuid.UUID) ([]*entity.Tag, error) {
	tags, err := srv.tagRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tags")
	}

	return tags, nil
}

// CreateTag creates a tag for the owner; duplicate (owner, name) is a conflict.
func (srv *tagService) CreateTag(ctx context.Context, ownerID uuid.UUID, input *usecase.UpsertTagInput) (*entity.Tag, error) {
	if err := validateName("tag", input.Name); err != nil {
		return nil, err
	}

	tag := &entity.Tag{
		ID:     uuid.New(),
		UserID: ownerID,
		Name:   input.Name,
	}

	if err := srv.tagRepo.Create(ctx, tag); err != nil {
		if errors.Is(err, repository.ErrDuplicateTag) {
			return nil, domainerrors.ErrTagAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create tag")
	}

	srv.log(ctx).Debug("Tag created", slog.Any("ownerID", ownerID), slog.String("name", tag.Name))

	return tag, nil
}

// RenameTag renames an owned tag; absent or foreign tags are not found.
func (srv *tagService) RenameTag(ctx context.Context, ownerID, tagID uuid.UUID, input *usecase.UpsertTagInput) (*entity.Tag, error) {
	if err := validateName("tag", input.Name); err != nil {
		return nil, err
	}

	tag, err := srv.tagRepo.FindByIDForOwner(ctx, ownerID, tagID)
	if err != nil {
		if errors.Is(err, repository.ErrTagNotFound) {
			return nil, domainerrors.ErrTagNotFound
		}

		return nil, errors.Wrap(err, "failed to find tag")
	}

	tag.Name = input.Name
	if err := srv.tagRepo.Update(ctx, tag); err != nil {
		if errors.Is(err, repository.ErrDuplicateTag) {
			return nil, domainerrors.ErrTagAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to rename tag")
	}

	return tag, nil
}

// DeleteTag removes an owned tag together with its recipe association rows.
func (srv *tagService) DeleteTag(ctx context.Context, ownerID, tagID uuid.UUID) error {
	tag, err := srv.tagRepo.FindByIDForOwner(ctx, ownerID, tagID)
	if err != nil {
		if errors.Is(err, repository.ErrTagNotFound) {
			return domainerrors.ErrTagNotFound
		}

		return errors.Wrap(err, "failed to find tag")
	}

	if err := srv.tagRepo.Delete(ctx, tag.ID); err != nil {
		return errors.Wrap(err, "failed to delete tag")
	}

	return nil
}
