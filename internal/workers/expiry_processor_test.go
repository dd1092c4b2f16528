// internal/workers/expiry_processor_test.go
package workers_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/brewline/stockroom-be/internal/workers"
	"github.com/brewline/stockroom-be/test/helpers"
	"github.com/brewline/stockroom-be/test/mocks"
)

func TestExpiryProcessor_SweepExpired(t *testing.T) {
	t.Run("expired_batches_invalidate_availability", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		kitchen := mocks.NewMockKitchenRepository(ctrl)
		cache := mocks.NewMockCacheRepository(ctrl)
		processor := workers.NewExpiryProcessor(kitchen, cache, helpers.TestLogger())

		kitchen.EXPECT().MarkExpired(gomock.Any(), gomock.Any()).
			Return([]uuid.UUID{uuid.New(), uuid.New()}, nil)
		cache.EXPECT().DeletePattern(gomock.Any(), "availability:*").Return(nil)

		err := processor.SweepExpired(context.Background(), workers.NewExpirySweepTask())
		assert.NoError(t, err)
	})

	t.Run("nothing_expired_skips_cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		kitchen := mocks.NewMockKitchenRepository(ctrl)
		cache := mocks.NewMockCacheRepository(ctrl)
		processor := workers.NewExpiryProcessor(kitchen, cache, helpers.TestLogger())

		kitchen.EXPECT().MarkExpired(gomock.Any(), gomock.Any()).
			Return(nil, nil)

		err := processor.SweepExpired(context.Background(), workers.NewExpirySweepTask())
		assert.NoError(t, err)
	})

	t.Run("repository_failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		kitchen := mocks.NewMockKitchenRepository(ctrl)
		processor := workers.NewExpiryProcessor(kitchen, nil, helpers.TestLogger())

		kitchen.EXPECT().MarkExpired(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection refused"))

		err := processor.SweepExpired(context.Background(), workers.NewExpirySweepTask())
		assert.Error(t, err)
	})

	t.Run("cache_failure_is_not_fatal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		kitchen := mocks.NewMockKitchenRepository(ctrl)
		cache := mocks.NewMockCacheRepository(ctrl)
		processor := workers.NewExpiryProcessor(kitchen, cache, helpers.TestLogger())

		kitchen.EXPECT().MarkExpired(gomock.Any(), gomock.Any()).
			Return([]uuid.UUID{uuid.New()}, nil)
		cache.EXPECT().DeletePattern(gomock.Any(), "availability:*").
			Return(errors.New("connection refused"))

		err := processor.SweepExpired(context.Background(), workers.NewExpirySweepTask())
		assert.NoError(t, err)
	})
}
