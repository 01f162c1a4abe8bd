// Package model contains the domain models shared across layers.
// Models carry no persistence tags or business logic.
package model
