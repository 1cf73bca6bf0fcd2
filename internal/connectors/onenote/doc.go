// Package onenote implements the Microsoft Graph OneNote connector:
// a rate-limit-aware HTTP client and the lazy traversal of the
// notebook → section group → section → page hierarchy.
package onenote
