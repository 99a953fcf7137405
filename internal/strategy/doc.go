// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package strategy implements the loader and post-processing strategies of
// the configuration pipeline.
//
// Loaders produce a configuration fragment from one source and never see the
// accumulator:
//   - [FileLoader]: a YAML, JSON or properties file, optionally mandatory;
//   - [APIKeyFileLoader]: an apiKey.properties file holding apiKey.id and
//     apiKey.secret;
//   - [EnvLoader]: an injected snapshot of environment variables carrying a
//     prefix;
//   - [ExtendLoader]: an in-memory override supplied by the caller.
//
// Post-processors rewrite the accumulator in place once loading is done:
//   - [LoadAPIKeyFromConfig]: resolves client.apiKey.file;
//   - [MoveAPIKeyToClient]: relocates a top-level apiKey block;
//   - [MoveSettings]: lifts STORMPATH_* flat keys into nested settings.
//
// The static key tables shared by the environment loader and the settings
// strategies live in mappings.go.
package strategy
