package services

// Services defined in this package:
// - AuthService: registration, login and refresh token rotation
// - CoachService: coach directory, profile editing and photo uploads
// - OfferingService: session-offering CRUD with ownership checks
