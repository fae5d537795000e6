// Package lock keeps two processes from reconciling the same resource at once.
//
// RedisLocker takes a SET NX lock with a TTL per resource key and releases it with
// a compare-and-delete script, so a lock that expired and was taken by another
// process is never released by the first holder. NopLocker is used when no redis
// is configured.
package lock
