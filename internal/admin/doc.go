// Package admin implements operator commands that act on the credential
// store directly, such as deactivating an account. Deactivation goes
// through the auth service so every token issued to the account is
// rejected on its next use.
package admin
