// Package submit is a typed Go client for the DVIDS content submission API.
//
// A Client aggregates one resource client per API family behind a single
// configuration:
//
//	client := submit.New(&submit.Config{Token: "..."})
//	batch, err := client.Batches().Create(ctx, models.Batch{SendConfirmationEmail: true})
//
// Every request and response body is a JSON:API document; pkg/models holds
// the typed records and their wire mappings, pkg/connection the transport,
// and pkg/apierror the failure taxonomy. Clients are immutable: With*
// helpers return new instances, so one client can be shared across
// goroutines without locking.
//
// OAuth2 authorization-code flow against the separate auth host is exposed
// through AuthorizationURL and ExchangeCode.
package submit
