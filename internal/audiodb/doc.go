// Package audiodb implements the TheAudioDB metadata client.
//
// The client adapts the API's heterogeneous response shapes into
// [models.Track] and tolerates partial data. Its methods never return an
// error: transport and parse failures are logged and mapped to an empty
// result, and a response without its track/trending array simply means "no
// results". Requests pass through a shared rate limiter since the public
// tier of the API is throttled.
package audiodb
