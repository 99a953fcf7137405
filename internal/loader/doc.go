// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package loader orchestrates configuration loading.
//
// A [ConfigLoader] runs three ordered lists of strategies:
//
//  1. loaders, each producing a fragment that is deep-merged into an
//     accumulator, later fragments overriding earlier ones;
//  2. post-processors, each rewriting the accumulator;
//  3. validators, each accepting or rejecting the final configuration.
//
// The first error stops the run and is returned unchanged. Every Load call
// starts from an empty accumulator, so a ConfigLoader can be reused.
package loader
