// Package domain contains the core domain entities and types used by the
// application. These types represent the business concepts (such as
// subscribers and operator users) and are intentionally free of infrastructure
// concerns so they can be shared across packages.
//
// Validated value types (SubscriberName, SubscriberEmail) can only be obtained
// through their Parse constructors; once a value exists, the rest of the
// system may trust it without re-checking.
package domain
