// Package minio implements blobstore.Store for MinIO and other
// S3-compatible object stores via the native MinIO SDK.
//
// Locators share the s3:// scheme with the AWS-backed store, so verification
// results are comparable across the two backends. Reads resolve locators
// with ranged GETs, independent from the upload path.
package minio
