// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Resource is a raw remote resource as returned by the Stormpath REST API:
// a JSON object decoded into a generic mapping. Keys keep the casing used on
// the wire.
type Resource map[string]any

// Href returns the resource locator, or an empty string.
func (r Resource) Href() string {
	s, _ := r["href"].(string)
	return s
}

// Application is a read-only projection of a remote application.
type Application struct {
	// Href is the canonical locator of the application.
	Href string

	// Name is the application name as registered remotely.
	Name string

	// AccountStoreMappings lists the account stores linked to the
	// application, in mapping order.
	AccountStoreMappings []AccountStoreMapping

	// DefaultAccountStoreMapping is the account store used for registration,
	// or nil when none is mapped.
	DefaultAccountStoreMapping *AccountStoreMapping

	// OAuthPolicy holds the raw OAuth policy resource of the application.
	OAuthPolicy Resource
}

// AccountStoreMapping links an application to one account store.
type AccountStoreMapping struct {
	Href         string
	AccountStore AccountStore
}

// AccountStore is either a directory or a group. Exactly one of the fields
// is set for a resolved store.
type AccountStore struct {
	Directory *Directory
	Group     *Group
}

// Directory is a read-only projection of a remote directory.
type Directory struct {
	Href string
	Name string

	// Provider is the raw provider resource. Its providerId distinguishes
	// built-in identity stores from social providers.
	Provider Resource

	PasswordPolicy        *PasswordPolicy
	AccountCreationPolicy *AccountCreationPolicy
}

// Group is a read-only projection of a remote group.
type Group struct {
	Href string
	Name string

	// Directory is the directory owning the group.
	Directory *Directory
}

// PasswordPolicy is a directory password policy.
type PasswordPolicy struct {
	Href string

	// Strength is the raw password strength resource.
	Strength Resource

	// ResetEmailStatus is compared against [StatusEnabled].
	ResetEmailStatus string
}

// AccountCreationPolicy is a directory account creation policy.
type AccountCreationPolicy struct {
	Href string

	// VerificationEmailStatus is compared against [StatusEnabled].
	VerificationEmailStatus string
}

// StatusEnabled is the workflow status value meaning "on".
const StatusEnabled = "ENABLED"
