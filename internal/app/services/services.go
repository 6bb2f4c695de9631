// Package services holds the business logic behind the HTTP handlers.
//
//   - RegistrationService: creates a base account and its role profile atomically
//   - AccountService: reads a registered account back with its profile
package services
