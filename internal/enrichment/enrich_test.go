package enrichment

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/go-stormpath-config/internal/adapter"
	"github.com/MKhiriev/go-stormpath-config/internal/mock"
	"github.com/MKhiriev/go-stormpath-config/internal/utils"
	"github.com/MKhiriev/go-stormpath-config/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const appHref = "https://api.stormpath.com/v1/applications/a"

func baseConfig() models.Config {
	return models.Config{
		"application": models.Config{"href": appHref},
		"web": models.Config{
			"social": models.Config{
				"facebook": models.Config{"enabled": false},
			},
			"register": models.Config{
				"enabled":   true,
				"autoLogin": false,
			},
		},
		"cookie": models.Config{
			"domain":   "cookie_domain",
			"duration": 30 * time.Minute,
		},
	}
}

func testApplication() *models.Application {
	mainDir := &models.Directory{
		Href:     "https://api.stormpath.com/v1/directories/main",
		Name:     "Main",
		Provider: models.Resource{"href": "https://api.stormpath.com/v1/directories/main/provider", "providerId": "stormpath"},
		PasswordPolicy: &models.PasswordPolicy{
			Href: "https://api.stormpath.com/v1/passwordPolicies/main",
			Strength: models.Resource{
				"href":         "https://api.stormpath.com/v1/strength/main",
				"minSymbol":    0,
				"minUpperCase": 1,
				"minLength":    8,
				"minNumeric":   1,
				"minLowerCase": 1,
				"minDiacritic": 0,
				"maxLength":    100,
			},
			ResetEmailStatus: models.StatusEnabled,
		},
		AccountCreationPolicy: &models.AccountCreationPolicy{VerificationEmailStatus: "DISABLED"},
	}

	return &models.Application{
		Href: appHref,
		Name: "My named application",
		OAuthPolicy: models.Resource{
			"href":            "https://api.stormpath.com/v1/oAuthPolicies/a",
			"accessTokenTtl":  "PT1H",
			"refreshTokenTtl": "P60D",
			"createdAt":       "2016-01-01T00:00:00.000Z",
			"modifiedAt":      "2016-01-01T00:00:00.000Z",
		},
		AccountStoreMappings: []models.AccountStoreMapping{
			{AccountStore: models.AccountStore{Directory: &models.Directory{
				Href:     mainDir.Href,
				Provider: mainDir.Provider,
			}}},
			{AccountStore: models.AccountStore{Directory: &models.Directory{
				Href: "https://api.stormpath.com/v1/directories/google",
				Provider: models.Resource{
					"href":         "https://api.stormpath.com/v1/directories/google/provider",
					"providerId":   "google",
					"clientId":     "id",
					"clientSecret": "secret",
					"redirectUri":  "https://myapplication.com/authenticate",
					"createdAt":    "2016-01-01T00:00:00.000Z",
					"modifiedAt":   "2016-01-01T00:00:00.000Z",
				},
			}}},
			{AccountStore: models.AccountStore{Group: &models.Group{Name: "Admins"}}},
		},
		DefaultAccountStoreMapping: &models.AccountStoreMapping{
			AccountStore: models.AccountStore{Group: &models.Group{Name: "Admins", Directory: mainDir}},
		},
	}
}

func factoryFor(client adapter.APIClient) ClientFactory {
	return func(models.Config) (adapter.APIClient, error) {
		return client, nil
	}
}

// ── Process ──────────────────────────────────────────────────────────────────

func TestEnrichIntegration_Process_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock.NewMockAPIClient(ctrl)
	client.EXPECT().GetApplication(gomock.Any(), appHref).Return(testApplication(), nil).Times(1)

	cfg, err := NewEnrichIntegration(factoryFor(client), nil).Process(context.Background(), baseConfig())
	require.NoError(t, err)

	policy, _ := utils.GetPath(cfg, "application*oAuthPolicy")
	assert.Equal(t, models.Config{
		"href":            "https://api.stormpath.com/v1/oAuthPolicies/a",
		"accessTokenTtl":  3600.0,
		"refreshTokenTtl": 5184000.0,
	}, policy)

	assert.Equal(t, models.Config{
		"minSymbol":    0,
		"minUpperCase": 1,
		"minLength":    8,
		"minNumeric":   1,
		"minLowerCase": 1,
		"minDiacritic": 0,
		"maxLength":    100,
	}, cfg["passwordPolicy"])

	assert.Equal(t, models.Config{
		"social": models.Config{
			"facebook": models.Config{"enabled": false},
			"google": models.Config{
				"providerId":   "google",
				"clientId":     "id",
				"clientSecret": "secret",
				"enabled":      true,
				"uri":          "/callbacks/google",
				"redirectUri":  "https://myapplication.com/authenticate",
			},
		},
		"changePassword": models.Config{"enabled": true},
		"forgotPassword": models.Config{"enabled": true},
		"verifyEmail":    models.Config{"enabled": false},
		"register":       models.Config{"autoLogin": false, "enabled": true},
	}, cfg["web"])
}

func TestEnrichIntegration_Process_SkipRemoteConfig(t *testing.T) {
	factory := func(models.Config) (adapter.APIClient, error) {
		t.Fatal("factory must not be called")
		return nil, nil
	}

	in := models.Config{SkipRemoteConfigKey: true, "application": models.Config{"href": appHref}}
	out, err := NewEnrichIntegration(factory, nil).Process(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, models.Config{SkipRemoteConfigKey: true, "application": models.Config{"href": appHref}}, out)
}

func TestEnrichIntegration_Process_SkipRemoteConfigString(t *testing.T) {
	factory := func(models.Config) (adapter.APIClient, error) {
		t.Fatal("factory must not be called")
		return nil, nil
	}

	_, err := NewEnrichIntegration(factory, nil).Process(context.Background(), models.Config{SkipRemoteConfigKey: "true"})
	require.NoError(t, err)
}

func TestEnrichIntegration_Process_FactoryError(t *testing.T) {
	factory := func(models.Config) (adapter.APIClient, error) {
		return nil, adapter.ErrMissingAPIKey
	}

	_, err := NewEnrichIntegration(factory, nil).Process(context.Background(), baseConfig())
	require.ErrorIs(t, err, models.ErrConfiguration)
	require.ErrorIs(t, err, adapter.ErrMissingAPIKey)
}

func TestEnrichIntegration_Process_ApplicationNotResolved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock.NewMockAPIClient(ctrl)
	client.EXPECT().GetApplication(gomock.Any(), appHref).
		Return(nil, fmt.Errorf("get application: %w", adapter.ErrNotFound))

	_, err := NewEnrichIntegration(factoryFor(client), nil).Process(context.Background(), baseConfig())
	require.ErrorIs(t, err, models.ErrConfiguration)
	require.ErrorIs(t, err, adapter.ErrNotFound)

	var cfgErr *models.ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, MsgUnresolvedApplication, cfgErr.Msg)
}

func TestEnrichIntegration_Process_NilApplication(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock.NewMockAPIClient(ctrl)
	client.EXPECT().GetApplication(gomock.Any(), appHref).Return(nil, nil)

	_, err := NewEnrichIntegration(factoryFor(client), nil).Process(context.Background(), baseConfig())
	require.ErrorIs(t, err, models.ErrConfiguration)
	assert.Contains(t, err.Error(), MsgUnresolvedApplication)
}

func TestEnrichIntegration_Process_RequestID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock.NewMockAPIClient(ctrl)
	client.EXPECT().GetApplication(gomock.Any(), appHref).DoAndReturn(
		func(ctx context.Context, _ string) (*models.Application, error) {
			id, ok := utils.GetRequestIDFromContext(ctx)
			assert.True(t, ok)
			assert.Equal(t, "req-42", id)
			return testApplication(), nil
		},
	)

	ctx := utils.WithRequestID(context.Background(), "req-42")
	_, err := NewEnrichIntegration(factoryFor(client), nil).Process(ctx, baseConfig())
	require.NoError(t, err)
}

func TestEnrichIntegration_Process_GeneratesRequestID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock.NewMockAPIClient(ctrl)
	client.EXPECT().GetApplication(gomock.Any(), appHref).DoAndReturn(
		func(ctx context.Context, _ string) (*models.Application, error) {
			id, ok := utils.GetRequestIDFromContext(ctx)
			assert.True(t, ok)
			assert.NotEmpty(t, id)
			return testApplication(), nil
		},
	)

	_, err := NewEnrichIntegration(factoryFor(client), nil).Process(context.Background(), baseConfig())
	require.NoError(t, err)
}

func TestEnrichIntegration_Process_KeepsLocalSocialURI(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock.NewMockAPIClient(ctrl)
	client.EXPECT().GetApplication(gomock.Any(), appHref).Return(testApplication(), nil)

	in := baseConfig()
	utils.SetPath(in, "web*social*google", models.Config{"uri": "/oauth/google", "scope": "email"})

	cfg, err := NewEnrichIntegration(factoryFor(client), nil).Process(context.Background(), in)
	require.NoError(t, err)

	google, ok := utils.GetSection(cfg, "web*social*google")
	require.True(t, ok)
	assert.Equal(t, "/oauth/google", google["uri"])
	assert.Equal(t, "email", google["scope"])
	assert.Equal(t, "id", google["clientId"])
	assert.Equal(t, true, google["enabled"])
}

func TestEnrichIntegration_Process_ByNameSkipsEnrichment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	app := testApplication()
	client := mock.NewMockAPIClient(ctrl)
	client.EXPECT().FindApplicationByName(gomock.Any(), "My named application").Return(app, nil)

	in := baseConfig()
	in["application"] = models.Config{"name": "My named application"}
	utils.SetPath(in, "web*social*google", models.Config{"enabled": false})

	cfg, err := NewEnrichIntegration(factoryFor(client), nil).Process(context.Background(), in)
	require.NoError(t, err)
	assert.NotContains(t, cfg, "passwordPolicy")
}

func TestEnrichIntegration_Process_NullHrefResolvesByName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock.NewMockAPIClient(ctrl)
	client.EXPECT().GetApplication(gomock.Any(), gomock.Any()).Times(0)
	client.EXPECT().FindApplicationByName(gomock.Any(), "My named application").Return(testApplication(), nil)

	in := baseConfig()
	in["application"] = models.Config{"href": nil, "name": "My named application"}
	utils.SetPath(in, "web*social*google", models.Config{"enabled": false})

	cfg, err := NewEnrichIntegration(factoryFor(client), nil).Process(context.Background(), in)
	require.NoError(t, err)
	assert.NotContains(t, cfg, "passwordPolicy")
}

func TestEnrichIntegration_Process_ValidationFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock.NewMockAPIClient(ctrl)
	client.EXPECT().GetApplication(gomock.Any(), appHref).Return(testApplication(), nil)

	in := baseConfig()
	delete(in, "cookie")

	_, err := NewEnrichIntegration(factoryFor(client), nil).Process(context.Background(), in)
	require.ErrorIs(t, err, models.ErrConfiguration)
	assert.EqualError(t, err, MsgCookieEmpty)
}

// ── fragments ────────────────────────────────────────────────────────────────

func TestOAuthPolicyFragment(t *testing.T) {
	got := oauthPolicyFragment(models.Resource{
		"access_token_ttl": 2 * time.Hour,
		"idSiteTtl":        "not-a-duration",
		"created_at":       "2016-01-01",
		"tokenEndpoint":    "/oauth/token",
	})

	assert.Equal(t, models.Config{
		"accessTokenTtl": 7200.0,
		"idSiteTtl":      "not-a-duration",
		"tokenEndpoint":  "/oauth/token",
	}, got)
}

func TestDefaultDirectory(t *testing.T) {
	dir := &models.Directory{Name: "d"}

	assert.Nil(t, defaultDirectory(&models.Application{}))
	assert.Same(t, dir, defaultDirectory(&models.Application{
		DefaultAccountStoreMapping: &models.AccountStoreMapping{AccountStore: models.AccountStore{Directory: dir}},
	}))
	assert.Same(t, dir, defaultDirectory(&models.Application{
		DefaultAccountStoreMapping: &models.AccountStoreMapping{AccountStore: models.AccountStore{Group: &models.Group{Directory: dir}}},
	}))
}

func TestDirectoryPolicyFragment(t *testing.T) {
	assert.Nil(t, directoryPolicyFragment(nil))
	assert.Empty(t, directoryPolicyFragment(&models.Directory{}))

	got := directoryPolicyFragment(&models.Directory{
		AccountCreationPolicy: &models.AccountCreationPolicy{VerificationEmailStatus: models.StatusEnabled},
	})
	assert.Equal(t, models.Config{"web": models.Config{"verifyEmail": models.Config{"enabled": true}}}, got)
}

func TestSocialFragment_SkipsBuiltinProviders(t *testing.T) {
	app := &models.Application{AccountStoreMappings: []models.AccountStoreMapping{
		{AccountStore: models.AccountStore{Directory: &models.Directory{Provider: models.Resource{"providerId": "ldap"}}}},
		{AccountStore: models.AccountStore{Directory: &models.Directory{Provider: models.Resource{"providerId": "ad"}}}},
		{AccountStore: models.AccountStore{Directory: &models.Directory{}}},
		{AccountStore: models.AccountStore{Directory: &models.Directory{Provider: models.Resource{"provider_id": "github", "client_id": "x"}}}},
	}}

	got := socialFragment(models.Config{}, app)
	assert.Equal(t, models.Config{"web": models.Config{"social": models.Config{
		"github": models.Config{"providerId": "github", "clientId": "x", "enabled": true, "uri": "/callbacks/github"},
	}}}, got)
}
