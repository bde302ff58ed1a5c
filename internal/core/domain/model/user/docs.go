// Package user contains the User aggregate: identity, credentials, role,
// account status, and the referral wallet.
package user
