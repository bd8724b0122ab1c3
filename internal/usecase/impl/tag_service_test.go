package impl

import (
	"context"
	"testing"

	"cookbook/internal/domain/entity"
	domainerrors "cookbook/internal/domain/errors"
	"cookbook/internal/domain/repository"
	mockRepo "cookbook/internal/mocks/repository"
	"cookbook/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// tagServiceFixtures holds all test dependencies for tag service tests.
type tagServiceFixtures struct {
	service usecase.TagUsecase
	tagRepo *mockRepo.MockTagRepository
}

func createTestTagService(t *testing.T) tagServiceFixtures {
	tagRepo := mockRepo.NewMockTagRepository(t)

	service := NewTagService(TagServiceParams{
		TagRepo: tagRepo,
		Logger:  newDiscardLogger(),
	})

	return tagServiceFixtures{
		service: service,
		tagRepo: tagRepo,
	}
}

func TestTagService_ListTags_Success(t *testing.T) {
	fx := createTestTagService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	tags := []*entity.Tag{
		{ID: uuid.New(), UserID: ownerID, Name: "Vegan"},
		{ID: uuid.New(), UserID: ownerID, Name: "Quick"},
	}

	fx.tagRepo.EXPECT().FindByOwner(ctx, ownerID).Return(tags, nil)

	got, err := fx.service.ListTags(ctx, ownerID)

	require.NoError(t, err)
	assert.Equal(t, tags, got)
}

func TestTagService_CreateTag_Success(t *testing.T) {
	fx := createTestTagService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	input := &usecase.UpsertTagInput{Name: "Vegan"}

	fx.tagRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Tag")).
		Run(func(ctx context.Context, tag *entity.Tag) {
			assert.Equal(t, ownerID, tag.UserID)
			assert.Equal(t, "Vegan", tag.Name)
		}).
		Return(nil)

	tag, err := fx.service.CreateTag(ctx, ownerID, input)

	require.NoError(t, err)
	require.NotNil(t, tag)
	assert.Equal(t, "Vegan", tag.Name)
}

func TestTagService_CreateTag_Duplicate(t *testing.T) {
	fx := createTestTagService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	input := &usecase.UpsertTagInput{Name: "Vegan"}

	fx.tagRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Tag")).
		Return(repository.ErrDuplicateTag)

	tag, err := fx.service.CreateTag(ctx, ownerID, input)

	assert.Nil(t, tag)
	assert.True(t, errors.Is(err, domainerrors.ErrTagAlreadyExists))
}

func TestTagService_CreateTag_BlankName(t *testing.T) {
	fx := createTestTagService(t)

	ctx := context.Background()
	input := &usecase.UpsertTagInput{Name: "   "}

	tag, err := fx.service.CreateTag(ctx, uuid.New(), input)

	assert.Nil(t, tag)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestTagService_RenameTag_Success(t *testing.T) {
	fx := createTestTagService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	tagID := uuid.New()
	stored := &entity.Tag{ID: tagID, UserID: ownerID, Name: "Vgan"}
	input := &usecase.UpsertTagInput{Name: "Vegan"}

	fx.tagRepo.EXPECT().FindByIDForOwner(ctx, ownerID, tagID).Return(stored, nil)
	fx.tagRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Tag")).
		Run(func(ctx context.Context, tag *entity.Tag) {
			assert.Equal(t, "Vegan", tag.Name)
		}).
		Return(nil)

	tag, err := fx.service.RenameTag(ctx, ownerID, tagID, input)

	require.NoError(t, err)
	assert.Equal(t, "Vegan", tag.Name)
}

func TestTagService_RenameTag_NotFound(t *testing.T) {
	fx := createTestTagService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	tagID := uuid.New()
	input := &usecase.UpsertTagInput{Name: "Vegan"}

	fx.tagRepo.EXPECT().
		FindByIDForOwner(ctx, ownerID, tagID).
		Return(nil, repository.ErrTagNotFound)

	tag, err := fx.service.RenameTag(ctx, ownerID, tagID, input)

	assert.Nil(t, tag)
	assert.True(t, errors.Is(err, domainerrors.ErrTagNotFound))
}

func TestTagService_RenameTag_DuplicateName(t *testing.T) {
	fx := createTestTagService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	tagID := uuid.New()
	stored := &entity.Tag{ID: tagID, UserID: ownerID, Name: "Quick"}
	input := &usecase.UpsertTagInput{Name: "Vegan"}

	fx.tagRepo.EXPECT().FindByIDForOwner(ctx, ownerID, tagID).Return(stored, nil)
	fx.tagRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Tag")).
		Return(repository.ErrDuplicateTag)

	tag, err := fx.service.RenameTag(ctx, ownerID, tagID, input)

	assert.Nil(t, tag)
	assert.True(t, errors.Is(err, domainerrors.ErrTagAlreadyExists))
}

func TestTagService_DeleteTag_Success(t *testing.T) {
	fx := createTestTagService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	tagID := uuid.New()
	stored := &entity.Tag{ID: tagID, UserID: ownerID, Name: "Vegan"}

	fx.tagRepo.EXPECT().FindByIDForOwner(ctx, ownerID, tagID).Return(stored, nil)
	fx.tagRepo.EXPECT().Delete(ctx, tagID).Return(nil)

	err := fx.service.DeleteTag(ctx, ownerID, tagID)

	require.NoError(t, err)
}

func TestTagService_DeleteTag_NotFound(t *testing.T) {
	fx := createTestTagService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	tagID := uuid.New()

	fx.tagRepo.EXPECT().
		FindByIDForOwner(ctx, ownerID, tagID).
		Return(nil, repository.ErrTagNotFound)

	err := fx.service.DeleteTag(ctx, ownerID, tagID)

	assert.True(t, errors.Is(err, domainerrors.ErrTagNotFound))
}
