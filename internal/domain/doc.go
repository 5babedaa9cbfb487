// Package domain contains the core MoodLetter types shared across services.
//
// Types here are plain data structs with JSON tags matching the persisted
// storage layout (the "recipients", "recipientGroups" and "campaigns"
// collections). Business rules live in the service packages; this package
// should not import from them.
package domain
