// Package services holds the client controllers: the auth flow, the thread
// feed, media uploads and profile edits. Each one talks to a
// datasource.Source and keeps the signed-in user in a session.Session.
package services
