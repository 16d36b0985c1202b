package resolving

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-insights-pipeline/internal/domain"
	"github.com/vfg2006/ads-insights-pipeline/internal/usecases/resolving/mocks"
	"github.com/vfg2006/ads-insights-pipeline/pkg/parallel"
	"go.uber.org/mock/gomock"
)

func TestService_ResolveAccounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	meta := mocks.NewMockMetaAccounts(ctrl)
	service := NewService(meta, parallel.NewPool(4))

	tests := []struct {
		name     string
		source   domain.AccountSource
		setup    func()
		expected []string
		wantErr  error
	}{
		{
			name:   "Personal faz uma única chamada",
			source: domain.AccountSourcePersonal,
			setup: func() {
				meta.EXPECT().GetPersonalAdAccounts(gomock.Any()).
					Return([]domain.AdAccount{{ID: "act_1"}}, nil).
					Times(1)
			},
			expected: []string{"act_1"},
		},
		{
			name:   "Business com dois businesses retorna uma conta de cada",
			source: domain.AccountSourceBusiness,
			setup: func() {
				meta.EXPECT().GetBusinessIDs(gomock.Any()).Return([]string{"b1", "b2"}, nil)
				meta.EXPECT().GetOwnedAdAccounts(gomock.Any(), "b1").Return([]domain.AdAccount{{ID: "act_10"}}, nil)
				meta.EXPECT().GetOwnedAdAccounts(gomock.Any(), "b2").Return([]domain.AdAccount{{ID: "act_20"}}, nil)
			},
			expected: []string{"act_10", "act_20"},
		},
		{
			name:   "Business sem deduplicação além da API",
			source: domain.AccountSourceBusiness,
			setup: func() {
				meta.EXPECT().GetBusinessIDs(gomock.Any()).Return([]string{"b1", "b2"}, nil)
				meta.EXPECT().GetOwnedAdAccounts(gomock.Any(), "b1").Return([]domain.AdAccount{{ID: "act_10"}}, nil)
				meta.EXPECT().GetOwnedAdAccounts(gomock.Any(), "b2").Return([]domain.AdAccount{{ID: "act_10"}}, nil)
			},
			expected: []string{"act_10", "act_10"},
		},
		{
			name:    "Origem desconhecida",
			source:  domain.AccountSource("partner"),
			setup:   func() {},
			wantErr: domain.ErrUnknownSource,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			accounts, err := service.ResolveAccounts(context.Background(), tt.source)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			ids := make([]string, 0, len(accounts))
			for _, account := range accounts {
				ids = append(ids, account.ID)
			}
			sort.Strings(ids)
			assert.Equal(t, tt.expected, ids)
		})
	}
}

func TestService_ResolveAccountsPropagatesBusinessFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	meta := mocks.NewMockMetaAccounts(ctrl)
	authErr := &domain.AuthorizationError{Code: 190}
	meta.EXPECT().GetBusinessIDs(gomock.Any()).Return(nil, authErr)

	_, err := NewService(meta, parallel.NewPool(2)).ResolveAccounts(context.Background(), domain.AccountSourceBusiness)
	assert.True(t, errors.Is(err, authErr))
}

func TestService_ResolveAds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	meta := mocks.NewMockMetaAccounts(ctrl)
	meta.EXPECT().GetAdsByAccount(gomock.Any(), "act_1").
		Return([]domain.Ad{{ID: "ad1", AccountID: "act_1"}, {ID: "ad2"}}, nil)
	meta.EXPECT().GetAdsByAccount(gomock.Any(), "act_2").
		Return([]domain.Ad{{ID: "ad3", AccountID: "act_2"}}, nil)

	service := NewService(meta, parallel.NewPool(2))
	ads, err := service.ResolveAds(context.Background(), []domain.AdAccount{{ID: "act_1"}, {ID: "act_2"}})

	require.NoError(t, err)
	sort.Slice(ads, func(i, j int) bool { return ads[i].ID < ads[j].ID })
	assert.Equal(t, []domain.Ad{
		{ID: "ad1", AccountID: "act_1"},
		{ID: "ad2", AccountID: "act_1"},
		{ID: "ad3", AccountID: "act_2"},
	}, ads)
}

func TestService_ResolveAdsFailsWholeBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	boom := errors.New("boom")
	meta := mocks.NewMockMetaAccounts(ctrl)
	meta.EXPECT().GetAdsByAccount(gomock.Any(), "act_1").Return(nil, boom)

	ads, err := NewService(meta, parallel.NewPool(1)).ResolveAds(context.Background(), []domain.AdAccount{{ID: "act_1"}, {ID: "act_2"}})

	assert.ErrorIs(t, err, boom)
	assert.Nil(t, ads)
}
