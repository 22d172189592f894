package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard_backend/pkg/apperrors"
)

func TestSkillCreate_PerUserUniqueness(t *testing.T) {
	service := NewSkillService(newFakeSkillRepo())

	first, err := service.Create("user-1", "Go")
	require.NoError(t, err)
	assert.Equal(t, "Go", first.SkillName)

	_, err = service.Create("user-1", "Go")
	require.Error(t, err)
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeDuplicate, appErr.Code)

	// A different user may list the same skill.
	_, err = service.Create("user-2", "Go")
	assert.NoError(t, err)
}

func TestSkillDeleteOwn_Scoped(t *testing.T) {
	service := NewSkillService(newFakeSkillRepo())

	skill, err := service.Create("user-1", "Go")
	require.NoError(t, err)

	err = service.DeleteOwn("user-2", skill.ID)
	require.Error(t, err)
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)

	require.NoError(t, service.DeleteOwn("user-1", skill.ID))

	_, err = service.GetByID(skill.ID)
	require.Error(t, err)
}

func TestSkillGetAll_Paginated(t *testing.T) {
	service := NewSkillService(newFakeSkillRepo())

	for _, name := range []string{"Go", "SQL", "Docker"} {
		_, err := service.Create("user-1", name)
		require.NoError(t, err)
	}

	page, err := service.GetAll(1, 2)
	require.NoError(t, err)
	assert.Len(t, page.Data, 2)
	assert.Equal(t, int64(3), page.Total)
	assert.Equal(t, 2, page.TotalPages)
}
