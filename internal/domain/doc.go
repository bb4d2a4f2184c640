// Package domain contains the types shared by every entity package.
// Entity-specific types live in sub-packages (domain/project) and the field
// rules used by the input form live in domain/validation. This root package
// holds the sentinel errors and the ValidationError carrier that adapters map
// onto HTTP status codes.
package domain
