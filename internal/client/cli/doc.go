// Package cli is the interactive forum client.
//
// NewApp wires configuration, the local SQLite database, the session, the
// data source (remote backend or local fallback) and the controllers. Run
// restores a previous session and starts the REPL, which blocks until the
// user types exit or input ends.
//
// Commands
//
//	help                 show commands
//	categories           list categories
//	category <key>       top threads of a category
//	downloads            list downloadable files
//	feed                 load the first page of threads
//	more                 load the next page
//	post                 create a thread
//	login | signup       authenticate
//	logout               end the session
//	profile              show the signed-in user
//	bio                  edit the bio
//	subscribe            toggle the subscription
//	avatar <path>        upload an avatar
//	upload <path>...     upload media files
//	exit | quit          leave
package cli
