package admin_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"go-jobboard/internal/admin"
	adminMock "go-jobboard/internal/admin/mock"
)

func TestService_Overview(t *testing.T) {
	ctx := context.Background()

	counts := admin.OverviewResponse{
		Users:          10,
		Companies:      3,
		Advertisements: 7,
		Applications:   21,
	}
	payload, _ := json.Marshal(counts)

	t.Run("Payload keeps the inherited key names", func(t *testing.T) {
		assert.JSONEq(t,
			`{"users":10,"companies":3,"advertisements":7,"applications":21}`,
			string(payload),
		)
	})

	t.Run("Cache hit skips the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := adminMock.NewMockRepository(ctrl)
		rdb, redisMock := redismock.NewClientMock()
		service := admin.NewService(mockRepo, rdb)

		redisMock.ExpectGet(admin.OverviewCacheKey).SetVal(string(payload))

		resp, err := service.Overview(ctx)
		assert.NoError(t, err)
		assert.Equal(t, counts, resp)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("Cache miss counts and fills the cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := adminMock.NewMockRepository(ctrl)
		rdb, redisMock := redismock.NewClientMock()
		service := admin.NewService(mockRepo, rdb)

		redisMock.ExpectGet(admin.OverviewCacheKey).RedisNil()
		redisMock.ExpectSet(admin.OverviewCacheKey, payload, 60*time.Second).SetVal("OK")

		mockRepo.EXPECT().
			CountOverview(ctx).
			Return(counts, nil)

		resp, err := service.Overview(ctx)
		assert.NoError(t, err)
		assert.Equal(t, counts, resp)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("Nil redis still serves counts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := adminMock.NewMockRepository(ctrl)
		service := admin.NewService(mockRepo, nil)

		mockRepo.EXPECT().
			CountOverview(ctx).
			Return(counts, nil)

		resp, err := service.Overview(ctx)
		assert.NoError(t, err)
		assert.Equal(t, counts, resp)
	})

	t.Run("Store failure surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := adminMock.NewMockRepository(ctrl)
		service := admin.NewService(mockRepo, nil)

		mockRepo.EXPECT().
			CountOverview(ctx).
			Return(admin.OverviewResponse{}, assert.AnError)

		_, err := service.Overview(ctx)
		assert.Error(t, err)
	})
}
