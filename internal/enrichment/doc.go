// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package enrichment completes a resolved configuration with settings read
// from the Stormpath API: the OAuth policy of the application, its social
// providers and the policies of its default account store.
//
// [EnrichIntegration] is a post-processor for the loader pipeline. It ends by
// running [IntegrationValidator], which can also be used on its own.
package enrichment
