// Package models defines the records Studify persists and exchanges:
// users, study sessions, quiz scores, preferences, snapshots, and the
// trivia/quote payloads returned by external providers.
//
// All persisted records use camelCase JSON field names so that documents
// written by the store can be exported and imported unchanged.
package models
