// Package util provides small generic helpers shared across imbikit
// packages and consuming services.
//
// It includes pointer helpers, checked type assertions, and common
// validation helpers.
package util
