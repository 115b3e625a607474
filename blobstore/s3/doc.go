// Package s3 implements blobstore.Store on Amazon S3.
//
// Writes go through the SDK's transfer manager, which switches to parallel
// multipart uploads above the configured part size, with CRC32C integrity
// validation. Locators are s3:// URIs; reads resolve them with ranged GETs,
// a fully independent path from the upload.
//
// Logical directories map to key prefixes under the configured root prefix,
// so data and cache areas stay independently writable within one bucket.
package s3
