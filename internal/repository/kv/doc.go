// Package kv implements the service-layer repository contracts on top of the
// storage.Gateway. Each collection lives as one JSON list under a fixed key;
// every mutation is a whole-collection replace, never a partial update.
package kv
