package service

import (
	"encoding/json"
	"testing"

	"github.com/fsdevblog/jadanpay/internal/domain"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type SettingsServiceTestSuite struct {
	serviceSuite
	settingsService *SettingsService
}

func TestSettingsServiceSuite(t *testing.T) {
	suite.Run(t, new(SettingsServiceTestSuite))
}

func (s *SettingsServiceTestSuite) SetupTest() {
	s.serviceSuite.SetupTest()
	settingsService, err := NewSettingsService(s.mockUOW, testSettings())
	s.Require().NoError(err)
	s.settingsService = settingsService
}

func (s *SettingsServiceTestSuite) TestGetDefaultsWhenNothingStored() {
	s.mockSettingsRepo.EXPECT().Get(gomock.Any()).Return(nil, domain.ErrRecordNotFound).Times(1)

	settings, err := s.settingsService.Get(s.T().Context())
	s.Require().NoError(err)
	s.Equal("JadanPay", settings.AppName)

	// повторное чтение из кеша, репозиторий не вызывается.
	settings.AppName = "changed"
	again, err := s.settingsService.Get(s.T().Context())
	s.Require().NoError(err)
	s.Equal("JadanPay", again.AppName)
}

func (s *SettingsServiceTestSuite) TestGetMergesStoredOverDefaults() {
	stored := domain.Settings{
		AppName:         "Stored",
		ActiveAPIVendor: domain.VendorMaskawa,
		APIKeys:         map[domain.APIVendor]string{domain.VendorMaskawa: "mk"},
	}
	s.mockSettingsRepo.EXPECT().Get(gomock.Any()).Return(&stored, nil)

	settings, err := s.settingsService.Get(s.T().Context())
	s.Require().NoError(err)
	s.Equal("Stored", settings.AppName)
	s.Equal(domain.VendorMaskawa, settings.ActiveAPIVendor)
	s.Equal("key", settings.APIKeys[domain.VendorBilalSada])
	s.Equal("mk", settings.APIKeys[domain.VendorMaskawa])
	s.Equal(98, settings.ProviderStats[domain.ProviderMTN])
}

func (s *SettingsServiceTestSuite) TestUpdateMergesMaps() {
	s.mockSettingsRepo.EXPECT().Get(gomock.Any()).Return(nil, domain.ErrRecordNotFound)
	s.mockSettingsRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, saved domain.Settings) error {
			s.Equal("new", saved.APIKeys[domain.VendorSimHost])
			s.Equal("key", saved.APIKeys[domain.VendorBilalSada])
			return nil
		})

	patch := json.RawMessage(`{"maintenanceMode": true, "apiKeys": {"SIMHOST": "new"},
		"providerStatus": {"GLO": true}, "referralReward": "150"}`)
	updated, err := s.settingsService.Update(s.T().Context(), patch)
	s.Require().NoError(err)
	s.True(updated.MaintenanceMode)
	s.True(updated.ProviderStatus[domain.ProviderGLO])
	s.True(updated.ProviderStatus[domain.ProviderMTN])
	s.Equal("150", updated.ReferralReward.String())

	// кеш обновлен без повторного чтения.
	current, err := s.settingsService.Get(s.T().Context())
	s.Require().NoError(err)
	s.True(current.MaintenanceMode)
}

func (s *SettingsServiceTestSuite) TestUpdateRejectsInvalid() {
	s.mockSettingsRepo.EXPECT().Get(gomock.Any()).Return(nil, domain.ErrRecordNotFound)
	s.mockSettingsRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)

	cases := []struct {
		name  string
		patch string
	}{
		{name: "unknown vendor", patch: `{"activeApiVendor": "NOPE"}`},
		{name: "negative reward", patch: `{"referralReward": -1}`},
		{name: "stat out of range", patch: `{"providerStats": {"MTN": 120}}`},
		{name: "malformed", patch: `{"appName": 1`},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			_, err := s.settingsService.Update(s.T().Context(), json.RawMessage(tc.patch))
			s.Require().ErrorIs(err, ErrInvalidSettings)
		})
	}
}

func (s *SettingsServiceTestSuite) TestPublicHidesSecrets() {
	s.mockSettingsRepo.EXPECT().Get(gomock.Any()).Return(nil, domain.ErrRecordNotFound)

	public, err := s.settingsService.Public(s.T().Context())
	s.Require().NoError(err)
	s.Nil(public.APIKeys)
	s.Empty(public.PaystackSecretKey)
	s.Equal("JadanPay", public.AppName)
}

func (s *SettingsServiceTestSuite) TestInvalidate() {
	s.mockSettingsRepo.EXPECT().Get(gomock.Any()).Return(nil, domain.ErrRecordNotFound).Times(2)

	_, err := s.settingsService.Get(s.T().Context())
	s.Require().NoError(err)
	s.settingsService.Invalidate()
	_, err = s.settingsService.Get(s.T().Context())
	s.Require().NoError(err)
}
