// Package config provides configuration loading, merging, and validation
// for thesisdesk.
//
// Configuration is assembled from multiple sources in the following
// priority order (earlier sources win for non-zero fields):
//  1. Explicit overrides (CLI flags)
//  2. Environment variables
//  3. JSON config file
//
// The main entry point is [Get], which accepts the override config built
// by the command layer and returns the merged, validated result.
package config
