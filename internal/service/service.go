// Package service contains the business logic between the HTTP
// handlers and the repositories: credential verification, civil-date
// resolution, and the game/plays aggregation.
package service
