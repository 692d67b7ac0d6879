// Package account holds the login and registration records together with the
// rule tables that validate them.
//
// Registration is the context-aware case: whether a new user may register
// depends on how many users already exist, which the Service reads from a
// capacity.Service before running the rules.
package account
