// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-stormpath-config/internal/config"
	"github.com/MKhiriev/go-stormpath-config/internal/logger"
	"github.com/MKhiriev/go-stormpath-config/internal/utils"
	"github.com/MKhiriev/go-stormpath-config/models"
	"github.com/goccy/go-json"
)

const (
	// UserAgent identifies this module to the Stormpath API.
	UserAgent = "go-stormpath-config"

	// RequestIDHeader carries the request id found in the request context.
	RequestIDHeader = "X-Request-Id"

	pageLimit = 100
)

type httpAPIClient struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPAPIClient constructs an HTTP/REST implementation of [APIClient].
// It normalises and validates settings.BaseURL, authenticates every request
// with the API key pair using HTTP basic authentication, and applies the
// connection timeout and proxy settings.
//
// Returns [ErrMissingAPIKey] when the key pair is incomplete, or an error if
// the base URL cannot be parsed.
func NewHTTPAPIClient(settings config.ClientSettings, log *logger.Logger) (APIClient, error) {
	if settings.APIKey.ID == "" || settings.APIKey.Secret == "" {
		return nil, ErrMissingAPIKey
	}

	baseURL, err := normalizeBaseURL(settings.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}

	client := utils.NewHTTPClient(utils.HTTPClientConfig{
		BaseURL:   baseURL,
		Timeout:   settings.ConnectionTimeout,
		Username:  settings.APIKey.ID,
		Password:  settings.APIKey.Secret,
		UserAgent: UserAgent,
	})
	if proxy := settings.Proxy.URL(); proxy != "" {
		client.SetProxy(proxy)
	}

	if log == nil {
		log = logger.Nop()
	}
	return &httpAPIClient{client: client, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// GetApplication implements [APIClient].
func (h *httpAPIClient) GetApplication(ctx context.Context, href string) (*models.Application, error) {
	if strings.TrimSpace(href) == "" {
		return nil, fmt.Errorf("%w: empty application href", ErrInvalidHref)
	}

	var dto applicationDTO
	if err := h.get(ctx, href, map[string]string{"expand": "oAuthPolicy"}, &dto); err != nil {
		return nil, fmt.Errorf("get application: %w", err)
	}

	app := &models.Application{Href: dto.Href, Name: dto.Name}

	var err error
	if app.OAuthPolicy, err = h.expand(ctx, dto.OAuthPolicy); err != nil {
		return nil, fmt.Errorf("get oauth policy: %w", err)
	}

	if dto.AccountStoreMappings.Href != "" {
		if app.AccountStoreMappings, err = h.listAccountStoreMappings(ctx, dto.AccountStoreMappings.Href); err != nil {
			return nil, fmt.Errorf("list account store mappings: %w", err)
		}
	}

	if dto.DefaultAccountStoreMapping != nil && dto.DefaultAccountStoreMapping.Href != "" {
		var m accountStoreMappingDTO
		if err = h.get(ctx, dto.DefaultAccountStoreMapping.Href, nil, &m); err != nil {
			return nil, fmt.Errorf("get default account store mapping: %w", err)
		}

		store, err := h.resolveAccountStore(ctx, m.AccountStore.Href, true)
		if err != nil {
			return nil, fmt.Errorf("get default account store: %w", err)
		}
		app.DefaultAccountStoreMapping = &models.AccountStoreMapping{Href: m.Href, AccountStore: store}
	}

	return app, nil
}

// FindApplicationByName implements [APIClient]. It follows the current
// tenant to its applications collection and filters it by name.
func (h *httpAPIClient) FindApplicationByName(ctx context.Context, name string) (*models.Application, error) {
	var tenant tenantDTO
	if err := h.get(ctx, "/tenants/current", nil, &tenant); err != nil {
		return nil, fmt.Errorf("get current tenant: %w", err)
	}
	if tenant.Applications.Href == "" {
		return nil, fmt.Errorf("%w: tenant has no applications collection", ErrInvalidHref)
	}

	var apps collectionDTO[applicationDTO]
	if err := h.get(ctx, tenant.Applications.Href, map[string]string{"name": name}, &apps); err != nil {
		return nil, fmt.Errorf("search applications: %w", err)
	}

	for _, a := range apps.Items {
		if a.Name == name && a.Href != "" {
			return h.GetApplication(ctx, a.Href)
		}
	}
	return nil, fmt.Errorf("%w: application %q", ErrNotFound, name)
}

func (h *httpAPIClient) listAccountStoreMappings(ctx context.Context, href string) ([]models.AccountStoreMapping, error) {
	var mappings []models.AccountStoreMapping

	for offset := 0; ; {
		var page collectionDTO[accountStoreMappingDTO]
		query := map[string]string{"offset": strconv.Itoa(offset), "limit": strconv.Itoa(pageLimit)}
		if err := h.get(ctx, href, query, &page); err != nil {
			return nil, err
		}

		for _, item := range page.Items {
			store, err := h.resolveAccountStore(ctx, item.AccountStore.Href, false)
			if err != nil {
				return nil, err
			}
			mappings = append(mappings, models.AccountStoreMapping{Href: item.Href, AccountStore: store})
		}

		offset += len(page.Items)
		if len(page.Items) == 0 || offset >= page.Size {
			return mappings, nil
		}
	}
}

// resolveAccountStore fetches a directory or group by href. Policies of
// the directory (reached through the group for a group store) are fetched
// when withPolicies is set. Other store types resolve to an empty store.
func (h *httpAPIClient) resolveAccountStore(ctx context.Context, href string, withPolicies bool) (models.AccountStore, error) {
	switch {
	case strings.Contains(href, "/directories/"):
		dir, err := h.getDirectory(ctx, href, withPolicies)
		if err != nil {
			return models.AccountStore{}, err
		}
		return models.AccountStore{Directory: dir}, nil

	case strings.Contains(href, "/groups/"):
		var dto groupDTO
		if err := h.get(ctx, href, nil, &dto); err != nil {
			return models.AccountStore{}, err
		}
		group := &models.Group{Href: dto.Href, Name: dto.Name}
		if withPolicies && dto.Directory != nil && dto.Directory.Href != "" {
			dir, err := h.getDirectory(ctx, dto.Directory.Href, true)
			if err != nil {
				return models.AccountStore{}, err
			}
			group.Directory = dir
		}
		return models.AccountStore{Group: group}, nil

	default:
		h.logger.Debug().Str("href", href).Msg("skipping unsupported account store")
		return models.AccountStore{}, nil
	}
}

func (h *httpAPIClient) getDirectory(ctx context.Context, href string, withPolicies bool) (*models.Directory, error) {
	var dto directoryDTO
	if err := h.get(ctx, href, map[string]string{"expand": "provider"}, &dto); err != nil {
		return nil, err
	}

	provider, err := h.expand(ctx, dto.Provider)
	if err != nil {
		return nil, err
	}
	dir := &models.Directory{Href: dto.Href, Name: dto.Name, Provider: provider}
	if !withPolicies {
		return dir, nil
	}

	if dto.PasswordPolicy != nil && dto.PasswordPolicy.Href != "" {
		var pp passwordPolicyDTO
		if err := h.get(ctx, dto.PasswordPolicy.Href, map[string]string{"expand": "strength"}, &pp); err != nil {
			return nil, err
		}
		strength, err := h.expand(ctx, pp.Strength)
		if err != nil {
			return nil, err
		}
		dir.PasswordPolicy = &models.PasswordPolicy{Href: pp.Href, Strength: strength, ResetEmailStatus: pp.ResetEmailStatus}
	}

	if dto.AccountCreationPolicy != nil && dto.AccountCreationPolicy.Href != "" {
		var ap accountCreationPolicyDTO
		if err := h.get(ctx, dto.AccountCreationPolicy.Href, nil, &ap); err != nil {
			return nil, err
		}
		dir.AccountCreationPolicy = &models.AccountCreationPolicy{Href: ap.Href, VerificationEmailStatus: ap.VerificationEmailStatus}
	}

	return dir, nil
}

// expand fetches r when it is a bare link ({href} only) and returns it
// unchanged otherwise.
func (h *httpAPIClient) expand(ctx context.Context, r models.Resource) (models.Resource, error) {
	if len(r) != 1 || r.Href() == "" {
		return r, nil
	}

	var full models.Resource
	if err := h.get(ctx, r.Href(), nil, &full); err != nil {
		return nil, err
	}
	return full, nil
}

// get performs GET href and decodes the JSON body into out. href is either
// absolute or relative to the base URL. Numbers inside generic resources
// decode as int or float64.
func (h *httpAPIClient) get(ctx context.Context, href string, query map[string]string, out any) error {
	req := h.client.R().
		SetContext(ctx).
		SetQueryParams(query)

	requestID, ok := utils.GetRequestIDFromContext(ctx)
	if ok {
		req.SetHeader(RequestIDHeader, requestID)
	}

	h.logger.Debug().Str("href", href).Str("request_id", requestID).Msg("stormpath api request")

	resp, err := req.Get(href)
	if err != nil {
		return fmt.Errorf("get %s: %w", href, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("get %s: %w", href, err)
	}

	dec := json.NewDecoder(bytes.NewReader(resp.Body()))
	dec.UseNumber()
	if err = dec.Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", href, err)
	}
	convertResourceNumbers(out)
	return nil
}

func convertResourceNumbers(out any) {
	switch v := out.(type) {
	case *models.Resource:
		utils.ConvertNumbers(map[string]any(*v))
	case *applicationDTO:
		utils.ConvertNumbers(map[string]any(v.OAuthPolicy))
	case *directoryDTO:
		utils.ConvertNumbers(map[string]any(v.Provider))
	case *passwordPolicyDTO:
		utils.ConvertNumbers(map[string]any(v.Strength))
	}
}
