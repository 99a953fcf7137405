package adapter

import "github.com/MKhiriev/go-stormpath-config/models"

// Wire shapes of the Stormpath REST API. Links to other resources are
// objects holding only an href unless expanded.

type link struct {
	Href string `json:"href"`
}

type collectionDTO[T any] struct {
	Href   string `json:"href"`
	Offset int    `json:"offset"`
	Limit  int    `json:"limit"`
	Size   int    `json:"size"`
	Items  []T    `json:"items"`
}

type tenantDTO struct {
	Href         string `json:"href"`
	Applications link   `json:"applications"`
}

type applicationDTO struct {
	Href                       string          `json:"href"`
	Name                       string          `json:"name"`
	AccountStoreMappings       link            `json:"accountStoreMappings"`
	DefaultAccountStoreMapping *link           `json:"defaultAccountStoreMapping"`
	OAuthPolicy                models.Resource `json:"oAuthPolicy"`
}

type accountStoreMappingDTO struct {
	Href         string `json:"href"`
	AccountStore link   `json:"accountStore"`
}

type directoryDTO struct {
	Href                  string          `json:"href"`
	Name                  string          `json:"name"`
	Provider              models.Resource `json:"provider"`
	PasswordPolicy        *link           `json:"passwordPolicy"`
	AccountCreationPolicy *link           `json:"accountCreationPolicy"`
}

type groupDTO struct {
	Href      string `json:"href"`
	Name      string `json:"name"`
	Directory *link  `json:"directory"`
}

type passwordPolicyDTO struct {
	Href             string          `json:"href"`
	Strength         models.Resource `json:"strength"`
	ResetEmailStatus string          `json:"resetEmailStatus"`
}

type accountCreationPolicyDTO struct {
	Href                    string `json:"href"`
	VerificationEmailStatus string `json:"verificationEmailStatus"`
}
