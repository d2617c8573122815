// Package meraki fetches champion reference data from the Meraki Analytics
// CDN and caches it on disk.
//
// The CDN payload is large and changes at most once per patch, so Champions
// serves from a local JSON cache until it exceeds the configured age.
package meraki
