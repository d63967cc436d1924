// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package appdetect finds optimizable front-end projects under a root
// directory.
//
// Directories are walked top-down, skipping build output and package cache
// directories. Every directory containing a package manifest is offered to
// the registered framework providers; the first provider that detects its
// framework claims the project.
//
// - `Detect()` to detect all projects under a root directory.
// - `ProviderByName()` to address a single provider directly.
package appdetect
