package tests

import (
	"context"
	"errors"
	"testing"

	"plateshare/place-svc/internal/domain"
	"plateshare/place-svc/internal/mocks"
	"plateshare/place-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDishService_Menu_CacheMissFillsCache(t *testing.T) {
	repo := mocks.NewDishRepository(t)
	cache := mocks.NewMenuCache(t)
	svc := service.NewDishService(repo, cache, nil)
	ctx := context.Background()

	dishes := []domain.Dish{{ID: "d1", RestaurantID: "r1", Name: "Koshari", Price: 100}}

	cache.On("GetMenu", ctx, "r1").Return(nil, false).Once()
	repo.On("ListDishes", ctx, "r1").Return(dishes, nil).Once()
	cache.On("SetMenu", ctx, "r1", dishes).Return(nil).Once()

	got, err := svc.Menu(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, dishes, got)
}

func TestDishService_Menu_CacheHitSkipsStore(t *testing.T) {
	repo := mocks.NewDishRepository(t)
	cache := mocks.NewMenuCache(t)
	svc := service.NewDishService(repo, cache, nil)
	ctx := context.Background()

	dishes := []domain.Dish{{ID: "d1", RestaurantID: "r1", Name: "Koshari", Price: 100}}
	cache.On("GetMenu", ctx, "r1").Return(dishes, true).Once()

	got, err := svc.Menu(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, dishes, got)
}

func TestDishService_Create_InvalidatesMenu(t *testing.T) {
	repo := mocks.NewDishRepository(t)
	cache := mocks.NewMenuCache(t)
	svc := service.NewDishService(repo, cache, nil)
	ctx := context.Background()

	repo.On("CreateDish", ctx, mock.AnythingOfType("*domain.Dish")).Return(nil).Once()
	cache.On("Invalidate", ctx, "r1").Return(nil).Once()

	dish := &domain.Dish{RestaurantID: "r1", Name: "Falafel", Price: 15}
	require.NoError(t, svc.Create(ctx, dish))
	assert.NotEmpty(t, dish.ID)
}

func TestDishService_Popular_FallsBackToStore(t *testing.T) {
	repo := mocks.NewDishRepository(t)
	popularity := mocks.NewPopularityReader(t)
	svc := service.NewDishService(repo, nil, popularity)
	ctx := context.Background()

	expected := []domain.DishPopularity{{DishID: "d1", DishName: "Koshari", RestaurantID: "r1", Score: 12}}

	popularity.On("TopDishIDs", ctx, "r1", 10).Return(nil, nil, nil).Once()
	repo.On("TopDishesFromOrders", ctx, "r1", 10).Return(expected, nil).Once()

	top, err := svc.Popular(ctx, "r1", 0)
	require.NoError(t, err)
	assert.Equal(t, expected, top)
}

func TestDishService_Popular_UsesRanking(t *testing.T) {
	repo := mocks.NewDishRepository(t)
	popularity := mocks.NewPopularityReader(t)
	svc := service.NewDishService(repo, nil, popularity)
	ctx := context.Background()

	popularity.On("TopDishIDs", ctx, "r1", 5).
		Return([]string{"d1"}, []float64{42}, nil).Once()
	repo.On("GetDish", ctx, "r1", "d1").
		Return(&domain.Dish{ID: "d1", RestaurantID: "r1", Name: "Koshari"}, nil).Once()

	top, err := svc.Popular(ctx, "r1", 5)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, 42.0, top[0].Score)
	assert.Equal(t, "Koshari", top[0].DishName)
}

func TestReviewService_Create(t *testing.T) {
	tests := []struct {
		name          string
		review        domain.Review
		prepareMocks  func(repo *mocks.ReviewRepository, classifier *mocks.SentimentClassifier)
		expectedError error
		wantPositive  bool
	}{
		{
			name:   "positive_review",
			review: domain.Review{RestaurantID: "r1", UserID: "u1", Comment: "Amazing food", Rating: 5},
			prepareMocks: func(repo *mocks.ReviewRepository, classifier *mocks.SentimentClassifier) {
				classifier.On("Classify", mock.Anything, "Amazing food").Return(true, nil).Once()
				repo.On("InsertReview", mock.Anything, mock.AnythingOfType("*domain.Review")).Return(nil).Once()
			},
			wantPositive: true,
		},
		{
			name:   "negative_review",
			review: domain.Review{RestaurantID: "r1", UserID: "u1", Comment: "Cold and late", Rating: 2},
			prepareMocks: func(repo *mocks.ReviewRepository, classifier *mocks.SentimentClassifier) {
				classifier.On("Classify", mock.Anything, "Cold and late").Return(false, nil).Once()
				repo.On("InsertReview", mock.Anything, mock.AnythingOfType("*domain.Review")).Return(nil).Once()
			},
		},
		{
			name:   "classifier_outage_still_stores",
			review: domain.Review{RestaurantID: "r1", UserID: "u1", Comment: "Decent", Rating: 3},
			prepareMocks: func(repo *mocks.ReviewRepository, classifier *mocks.SentimentClassifier) {
				classifier.On("Classify", mock.Anything, "Decent").Return(false, errors.New("timeout")).Once()
				repo.On("InsertReview", mock.Anything, mock.AnythingOfType("*domain.Review")).Return(nil).Once()
			},
		},
		{
			name:          "anonymous_rejected",
			review:        domain.Review{RestaurantID: "r1", Comment: "Nice", Rating: 4},
			prepareMocks:  func(repo *mocks.ReviewRepository, classifier *mocks.SentimentClassifier) {},
			expectedError: service.ErrNotAuthenticated,
		},
		{
			name:          "empty_comment",
			review:        domain.Review{RestaurantID: "r1", UserID: "u1", Rating: 4},
			prepareMocks:  func(repo *mocks.ReviewRepository, classifier *mocks.SentimentClassifier) {},
			expectedError: service.ErrEmptyReview,
		},
		{
			name:          "rating_out_of_range",
			review:        domain.Review{RestaurantID: "r1", UserID: "u1", Comment: "Nice", Rating: 6},
			prepareMocks:  func(repo *mocks.ReviewRepository, classifier *mocks.SentimentClassifier) {},
			expectedError: service.ErrInvalidRating,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewReviewRepository(t)
			classifier := mocks.NewSentimentClassifier(t)
			svc := service.NewReviewService(repo, classifier)
			testCase.prepareMocks(repo, classifier)

			review := testCase.review
			err := svc.Create(context.Background(), &review)
			assert.ErrorIs(t, err, testCase.expectedError)

			if testCase.expectedError == nil {
				assert.NotEmpty(t, review.ID)
				assert.Equal(t, testCase.wantPositive, review.Positive)
				assert.False(t, review.CreatedAt.IsZero())
			}
		})
	}
}

func TestFavoriteService_Add_ChecksRestaurant(t *testing.T) {
	repo := mocks.NewFavoriteRepository(t)
	restaurants := mocks.NewRestaurantRepository(t)
	svc := service.NewFavoriteService(repo, restaurants)
	ctx := context.Background()

	restaurants.On("GetRestaurant", ctx, "ghost").Return(nil, nil).Once()

	err := svc.Add(ctx, "u1", domain.Favorite{DishID: "d1", RestaurantID: "ghost"})
	assert.ErrorIs(t, err, service.ErrRestaurantNotFound)
}

func TestFavoriteService_Add_Upserts(t *testing.T) {
	repo := mocks.NewFavoriteRepository(t)
	restaurants := mocks.NewRestaurantRepository(t)
	svc := service.NewFavoriteService(repo, restaurants)
	ctx := context.Background()

	restaurants.On("GetRestaurant", ctx, "r1").
		Return(&domain.Restaurant{ID: "r1", Name: "Cairo Kitchen"}, nil).Twice()
	repo.On("UpsertFavorite", ctx, "u1", mock.AnythingOfType("domain.Favorite")).Return(nil).Twice()

	fav := domain.Favorite{DishID: "d1", RestaurantID: "r1", DishName: "Koshari"}
	require.NoError(t, svc.Add(ctx, "u1", fav))
	require.NoError(t, svc.Add(ctx, "u1", fav))
}

func TestFavoriteService_Remove_Unknown(t *testing.T) {
	repo := mocks.NewFavoriteRepository(t)
	restaurants := mocks.NewRestaurantRepository(t)
	svc := service.NewFavoriteService(repo, restaurants)
	ctx := context.Background()

	repo.On("DeleteFavorite", ctx, "u1", "ghost").Return(int64(0), nil).Once()

	err := svc.Remove(ctx, "u1", "ghost")
	assert.ErrorIs(t, err, service.ErrFavoriteNotFound)
}

func TestRestaurantService_Get_NotFound(t *testing.T) {
	restaurants := mocks.NewRestaurantRepository(t)
	svc := service.NewRestaurantService(restaurants)
	ctx := context.Background()

	restaurants.On("GetRestaurant", ctx, "ghost").Return(nil, nil).Once()

	_, err := svc.Get(ctx, "ghost")
	assert.ErrorIs(t, err, service.ErrRestaurantNotFound)
}
