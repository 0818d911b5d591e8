// Package fetcher performs a single status-feed request per poll cycle.
//
// The feed is a JSON object keyed by region identifiers; the fetcher extracts
// exactly one key. Every failure mode (transport error, bad response code,
// malformed payload, missing region) folds into one error return because the
// poll loop's recovery is the same for all of them: skip the cycle.
package fetcher
