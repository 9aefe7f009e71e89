// Package domain holds shared domain constants and sentinel errors.
package domain

// KeyPrefix namespaces every key the service writes.
const KeyPrefix = "authordex:"

// AuthorKeyPrefix prefixes author document hashes.
const AuthorKeyPrefix = KeyPrefix + "author:"

// AuthorIndexName is the FT index covering author documents.
const AuthorIndexName = KeyPrefix + "authors:idx"
